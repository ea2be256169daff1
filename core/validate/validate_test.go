package validate

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
)

const userSchema = `
name:  string & != ""
age:   int & >=0
role:  *"member" | "admin"
email?: =~"@"
`

func TestValidate(t *testing.T) {
	v := New()

	t.Run("AllValid", func(t *testing.T) {
		records := []map[string]any{
			{"name": "ada", "age": int64(36)},
			{"name": "grace", "age": 45, "role": "admin", "email": "g@navy.mil"},
		}
		out, failures, err := v.Validate(context.Background(), userSchema, records)
		require.NoError(t, err)
		assert.Empty(t, failures)
		require.Len(t, out, 2)
		assert.Equal(t, "member", out[0]["role"], "defaults are filled in")
		assert.Equal(t, "admin", out[1]["role"])
		assert.NotContains(t, records[0], "role", "input is not modified")
	})

	t.Run("Failures", func(t *testing.T) {
		records := []map[string]any{
			{"name": "ada", "age": 1},
			{"name": "", "age": 1},
			{"name": "bob", "age": -3, "email": "nope"},
			{"name": "eve"},
		}
		out, failures, err := v.Validate(context.Background(), userSchema, records)
		require.NoError(t, err)
		assert.Nil(t, out)
		require.Len(t, failures, 3)

		assert.Equal(t, 1, failures[0].Index)
		assert.Equal(t, records[1], failures[0].Record)
		assert.Equal(t, "name", failures[0].Errors[0].Path)

		assert.Equal(t, 2, failures[1].Index)
		var paths []string
		for _, fe := range failures[1].Errors {
			paths = append(paths, fe.Path)
		}
		assert.Contains(t, paths, "age")

		assert.Equal(t, 3, failures[2].Index)
		assert.NotEmpty(t, failures[2].Summary())
	})

	t.Run("Deterministic", func(t *testing.T) {
		records := []map[string]any{{"name": 1, "age": 1}, {"name": "x", "age": 2}}
		_, first, err := v.Validate(context.Background(), userSchema, records)
		require.NoError(t, err)
		_, second, err := v.Validate(context.Background(), userSchema, records)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("InvalidSchema", func(t *testing.T) {
		_, _, err := v.Validate(context.Background(), "name: ", []map[string]any{{"name": "x"}})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "invalid schema")
	})

	t.Run("Canceled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, _, err := v.Validate(ctx, userSchema, []map[string]any{{"name": "x", "age": 1}})
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestValidate_KeepsValueTypes(t *testing.T) {
	orgID := bson.NewObjectID()
	records := []map[string]any{
		{"name": "a", "org_id": orgID, "n": int64(7), "tags": []any{int64(1), "x"}},
	}

	out, failures, err := New().Validate(context.Background(), "name: string\nrole: *\"member\" | string", records)
	require.NoError(t, err)
	require.Empty(t, failures)
	require.Len(t, out, 1)

	assert.Equal(t, orgID, out[0]["org_id"])
	assert.IsType(t, bson.ObjectID{}, out[0]["org_id"])
	assert.Equal(t, int64(7), out[0]["n"])
	assert.Equal(t, []any{int64(1), "x"}, out[0]["tags"])
	assert.Equal(t, "member", out[0]["role"])
	assert.NotContains(t, records[0], "role")
}

func TestValidator_Shared(t *testing.T) {
	var v Validator

	_, err := v.Compile(userSchema)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		out, failures, err := v.Validate(context.Background(), userSchema, []map[string]any{{"name": "ada", "age": i}})
		require.NoError(t, err)
		require.Empty(t, failures)
		assert.Equal(t, i, out[0]["age"])
	}
}

func TestFailure_Summary(t *testing.T) {
	f := Failure{Errors: []FieldError{{Path: "age", Message: "invalid value -3"}, {Message: "incomplete"}}}
	assert.Equal(t, "age: invalid value -3, incomplete", f.Summary())
}
