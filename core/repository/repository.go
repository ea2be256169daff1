package repository

import (
	"context"
	"errors"
	"fmt"
	"sort"
)

// ErrUnavailable is returned when no backend serves a connection.
var ErrUnavailable = errors.New("repository unavailable")

// Handle inserts records into one table or collection.
type Handle interface {
	// InsertOne persists rec and returns the identity assigned by the backend.
	InsertOne(ctx context.Context, rec map[string]any) (any, error)
}

// Backend is a storage engine reachable under a logical connection name.
type Backend interface {
	// Handle returns an insertion handle for table.
	Handle(ctx context.Context, table string) (Handle, error)
	// Close releases the underlying connection.
	Close(ctx context.Context) error
}

// Registry maps logical connection names to backends.
type Registry struct {
	backends map[string]Backend
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{backends: make(map[string]Backend)}
}

// Register binds a backend to a connection name, replacing any previous one.
func (r *Registry) Register(connection string, b Backend) {
	r.backends[connection] = b
}

// Connections returns the registered connection names, sorted.
func (r *Registry) Connections() []string {
	names := make([]string, 0, len(r.backends))
	for name := range r.backends {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Backend returns the backend registered for connection.
func (r *Registry) Backend(connection string) (Backend, bool) {
	b, ok := r.backends[connection]
	return b, ok
}

// Handle returns an insertion handle for table on connection.
func (r *Registry) Handle(ctx context.Context, table, connection string) (Handle, error) {
	b, ok := r.backends[connection]
	if !ok {
		return nil, fmt.Errorf("%w: connection %q is not configured", ErrUnavailable, connection)
	}
	h, err := b.Handle(ctx, table)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return h, nil
}

// Close closes every backend and joins their errors.
func (r *Registry) Close(ctx context.Context) error {
	var errs []error
	for _, name := range r.Connections() {
		if err := r.backends[name].Close(ctx); err != nil {
			errs = append(errs, fmt.Errorf("close %s: %w", name, err))
		}
	}
	return errors.Join(errs...)
}
