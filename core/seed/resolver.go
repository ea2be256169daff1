package seed

import (
	"errors"
	"sort"

	"bulk-seeder/core/utils"
)

// Resolver rewrites reference fields from synthetic ids to real ids.
type Resolver struct {
	store *RefStore
}

// NewResolver creates a resolver reading from store.
func NewResolver(store *RefStore) *Resolver {
	return &Resolver{store: store}
}

// Resolve returns a copy of rec with every declared reference field replaced
// by the real id registered in the target namespace.
// Absent or null fields are left as they are. List values are resolved
// element by element.
func (r *Resolver) Resolve(rec Record, refs map[string]Ref) (Record, error) {
	out := make(Record, len(rec))
	for k, v := range rec {
		out[k] = v
	}

	fields := make([]string, 0, len(refs))
	for field := range refs {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	for _, field := range fields {
		ref := refs[field]
		value, ok := rec[field]
		if !ok || value == nil {
			continue
		}

		if list, isList := value.([]any); isList {
			resolved := make([]any, len(list))
			for i, item := range list {
				realID, err := r.lookup(field, ref.Entity, item)
				if err != nil {
					return nil, err
				}
				resolved[i] = realID
			}
			out[field] = resolved
			continue
		}

		realID, err := r.lookup(field, ref.Entity, value)
		if err != nil {
			return nil, err
		}
		out[field] = realID
	}

	return out, nil
}

func (r *Resolver) lookup(field, target string, value any) (any, error) {
	syntheticID := utils.ToString(value)
	realID, err := r.store.Lookup(target, syntheticID)
	if err != nil {
		return nil, &UnresolvedReferenceError{
			Field:            field,
			Target:           target,
			SyntheticID:      syntheticID,
			MissingNamespace: errors.Is(err, ErrNamespaceNotFound),
		}
	}
	return realID, nil
}
