package seed

import (
	"context"

	"bulk-seeder/core/repository"
	"bulk-seeder/core/source"
	"bulk-seeder/core/validate"
)

// Source reads the records of a unit.
// It must return an error wrapping source.ErrEmpty when the decoded sequence
// holds no records.
type Source interface {
	Read(ctx context.Context, path string) (*source.Result, error)
}

// Validator checks records against a schema descriptor.
// A non-empty failure list rejects the whole batch. The returned error is
// reserved for schemas that cannot be used at all.
type Validator interface {
	Validate(ctx context.Context, schema string, records []Record) ([]Record, []validate.Failure, error)
}

// Repository hands out insertion handles per table and logical connection.
type Repository interface {
	Handle(ctx context.Context, table, connection string) (repository.Handle, error)
}
