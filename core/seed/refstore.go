package seed

import (
	"errors"
	"fmt"
)

var (
	// ErrNamespaceNotFound is returned when no id was registered for an entity.
	ErrNamespaceNotFound = errors.New("reference namespace not found")
	// ErrReferenceNotFound is returned when a synthetic id is not registered.
	ErrReferenceNotFound = errors.New("reference not found")
)

// RefStore maps synthetic ids to real ids, namespaced by entity name.
// It is owned by a single run and is not safe for concurrent use.
type RefStore struct {
	namespaces map[string]map[string]any
}

// NewRefStore creates an empty store.
func NewRefStore() *RefStore {
	return &RefStore{namespaces: make(map[string]map[string]any)}
}

// Register records the real id assigned to a synthetic id. Last write wins.
func (s *RefStore) Register(entity, syntheticID string, realID any) {
	ns, ok := s.namespaces[entity]
	if !ok {
		ns = make(map[string]any)
		s.namespaces[entity] = ns
	}
	ns[syntheticID] = realID
}

// Lookup returns the real id for a synthetic id.
func (s *RefStore) Lookup(entity, syntheticID string) (any, error) {
	ns, ok := s.namespaces[entity]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNamespaceNotFound, entity)
	}
	realID, ok := ns[syntheticID]
	if !ok {
		return nil, fmt.Errorf("%w: %s/%s", ErrReferenceNotFound, entity, syntheticID)
	}
	return realID, nil
}

// HasNamespace reports whether any id was registered for entity.
func (s *RefStore) HasNamespace(entity string) bool {
	_, ok := s.namespaces[entity]
	return ok
}

// Len returns the number of ids registered for entity.
func (s *RefStore) Len(entity string) int {
	return len(s.namespaces[entity])
}

// Reset drops every registered id.
func (s *RefStore) Reset() {
	s.namespaces = make(map[string]map[string]any)
}
