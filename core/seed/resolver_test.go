package seed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolver_Resolve(t *testing.T) {
	store := NewRefStore()
	store.Register("Org", "42", int64(1))
	store.Register("Org", "acme", int64(2))
	r := NewResolver(store)

	refs := map[string]Ref{"org_id": {Entity: "Org"}, "partners": {Entity: "Org"}, "parent_id": {Entity: "Org"}}

	t.Run("NumericAndStringIDsMatch", func(t *testing.T) {
		for _, v := range []any{42, int64(42), float64(42), "42"} {
			out, err := r.Resolve(Record{"org_id": v}, refs)
			require.NoError(t, err)
			assert.Equal(t, int64(1), out["org_id"])
		}
	})

	t.Run("InputNotMutated", func(t *testing.T) {
		in := Record{"org_id": "acme", "name": "x"}
		out, err := r.Resolve(in, refs)
		require.NoError(t, err)
		assert.Equal(t, "acme", in["org_id"])
		assert.Equal(t, Record{"org_id": int64(2), "name": "x"}, out)
	})

	t.Run("Lists", func(t *testing.T) {
		out, err := r.Resolve(Record{"partners": []any{"acme", 42}}, refs)
		require.NoError(t, err)
		assert.Equal(t, []any{int64(2), int64(1)}, out["partners"])
	})

	t.Run("AbsentAndNull", func(t *testing.T) {
		out, err := r.Resolve(Record{"parent_id": nil}, refs)
		require.NoError(t, err)
		assert.Equal(t, Record{"parent_id": nil}, out)
	})

	t.Run("UnknownID", func(t *testing.T) {
		_, err := r.Resolve(Record{"partners": []any{"acme", "initech"}}, refs)
		var uerr *UnresolvedReferenceError
		require.ErrorAs(t, err, &uerr)
		assert.Equal(t, "partners", uerr.Field)
		assert.Equal(t, "initech", uerr.SyntheticID)
		assert.False(t, uerr.MissingNamespace)
		assert.Equal(t, KindUnresolvedReference, uerr.Kind())
	})

	t.Run("UnknownNamespace", func(t *testing.T) {
		_, err := r.Resolve(Record{"owner": "u1"}, map[string]Ref{"owner": {Entity: "User"}})
		var uerr *UnresolvedReferenceError
		require.ErrorAs(t, err, &uerr)
		assert.True(t, uerr.MissingNamespace)
		assert.Contains(t, uerr.Error(), "no references registered for entity User")
	})
}
