package seed

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestRef_UnmarshalYAML(t *testing.T) {
	var refs map[string]Ref
	require.NoError(t, yaml.Unmarshal([]byte("org_id: Org\nowner_id:\n  entity: User\n"), &refs))
	assert.Equal(t, map[string]Ref{"org_id": {Entity: "Org"}, "owner_id": {Entity: "User"}}, refs)
}

func TestUnit_Defaults(t *testing.T) {
	u := Unit{Entity: "User"}
	assert.Equal(t, "User", u.DisplayName())
	assert.Equal(t, "User", u.TableName())
	assert.Equal(t, DefaultConnection, u.ConnectionName())
	assert.Equal(t, []string{NoRefs}, u.RefFields())

	u = Unit{Entity: "User", Alias: "Users", Table: "app_users", Connection: "main", PathDev: "d", PathProd: "p",
		Refs: map[string]Ref{"b": {Entity: "X"}, "a": {Entity: "Y"}}}
	assert.Equal(t, "Users", u.DisplayName())
	assert.Equal(t, "app_users", u.TableName())
	assert.Equal(t, "main", u.ConnectionName())
	assert.Equal(t, "p", u.SourcePath(true))
	assert.Equal(t, "d", u.SourcePath(false))
	assert.Equal(t, []string{"a", "b"}, u.RefFields())
}

func TestConfig_Options(t *testing.T) {
	opts := Config{Production: true, MarkerField: "_id", InsertTimeoutSeconds: 3}.Options()
	assert.Equal(t, Options{Production: true, MarkerField: "_id", InsertTimeout: 3 * time.Second}, opts)
	assert.Equal(t, DefaultMarkerField, Options{}.markerField())
}
