package seed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRefStore(t *testing.T) {
	s := NewRefStore()

	_, err := s.Lookup("Org", "o1")
	assert.ErrorIs(t, err, ErrNamespaceNotFound)
	assert.False(t, s.HasNamespace("Org"))

	s.Register("Org", "o1", int64(7))
	s.Register("Org", "o2", int64(8))
	s.Register("Org", "o1", int64(9))

	id, err := s.Lookup("Org", "o1")
	require.NoError(t, err)
	assert.Equal(t, int64(9), id, "last write wins")
	assert.Equal(t, 2, s.Len("Org"))
	assert.True(t, s.HasNamespace("Org"))

	_, err = s.Lookup("Org", "o3")
	assert.ErrorIs(t, err, ErrReferenceNotFound)

	s.Reset()
	assert.False(t, s.HasNamespace("Org"))
	assert.Zero(t, s.Len("Org"))
}
