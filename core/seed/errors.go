package seed

import (
	"encoding/json"
	"fmt"
	"strings"

	"bulk-seeder/core/validate"
)

// Kind identifies the category of a unit failure.
type Kind string

const (
	// KindEmptySource means the source decoded to zero records.
	KindEmptySource Kind = "EmptySource"
	// KindSourceUnreadable means the source could not be found, read or decoded.
	KindSourceUnreadable Kind = "SourceUnreadable"
	// KindRepositoryUnavailable means no backend handle could be obtained.
	KindRepositoryUnavailable Kind = "RepositoryUnavailable"
	// KindValidationFailed means at least one record failed schema validation.
	KindValidationFailed Kind = "ValidationFailed"
	// KindUnresolvedReference means a synthetic id had no registered real id.
	KindUnresolvedReference Kind = "UnresolvedReference"
	// KindInsertFailed means the backend rejected a record.
	KindInsertFailed Kind = "InsertFailed"
)

// UnitError is the error recorded on an Outcome when a unit fails.
type UnitError interface {
	error
	Kind() Kind
}

// EmptySourceError is returned when a source holds no records.
type EmptySourceError struct {
	Path string
}

func (e *EmptySourceError) Error() string {
	return fmt.Sprintf("source %s is empty", e.Path)
}

// Kind implements UnitError.
func (e *EmptySourceError) Kind() Kind { return KindEmptySource }

// SourceError wraps a read or decode failure.
type SourceError struct {
	Path string
	Err  error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("failed to read source %s: %v", e.Path, e.Err)
}

// Kind implements UnitError.
func (e *SourceError) Kind() Kind { return KindSourceUnreadable }

func (e *SourceError) Unwrap() error { return e.Err }

// RepositoryUnavailableError is returned when the backend handle cannot be obtained.
type RepositoryUnavailableError struct {
	Connection string
	Table      string
	Err        error
}

func (e *RepositoryUnavailableError) Error() string {
	return fmt.Sprintf("repository %s on connection %s unavailable: %v", e.Table, e.Connection, e.Err)
}

// Kind implements UnitError.
func (e *RepositoryUnavailableError) Kind() Kind { return KindRepositoryUnavailable }

func (e *RepositoryUnavailableError) Unwrap() error { return e.Err }

// ValidationError carries the per-record failures of a unit.
// Err is set instead of Failures when the schema itself could not be used.
type ValidationError struct {
	Failures []validate.Failure
	Err      error
}

func (e *ValidationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("validation failed: %v", e.Err)
	}
	parts := make([]string, 0, len(e.Failures))
	for _, f := range e.Failures {
		parts = append(parts, fmt.Sprintf("record %d: %s", f.Index, f.Summary()))
	}
	return fmt.Sprintf("validation failed for %d record(s): %s", len(e.Failures), strings.Join(parts, "; "))
}

// Kind implements UnitError.
func (e *ValidationError) Kind() Kind { return KindValidationFailed }

func (e *ValidationError) Unwrap() error { return e.Err }

// Detail renders the failures as indented JSON for the report error listing.
func (e *ValidationError) Detail() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	out, err := json.MarshalIndent(e.Failures, "", "  ")
	if err != nil {
		return e.Error()
	}
	return string(out)
}

// UnresolvedReferenceError is returned when a synthetic id cannot be mapped.
type UnresolvedReferenceError struct {
	Field       string
	Target      string
	SyntheticID string
	// MissingNamespace is true when no unit registered any id for Target.
	MissingNamespace bool
}

func (e *UnresolvedReferenceError) Error() string {
	if e.MissingNamespace {
		return fmt.Sprintf("field %s: no references registered for entity %s (id %q)", e.Field, e.Target, e.SyntheticID)
	}
	return fmt.Sprintf("field %s: reference %q not registered for entity %s", e.Field, e.SyntheticID, e.Target)
}

// Kind implements UnitError.
func (e *UnresolvedReferenceError) Kind() Kind { return KindUnresolvedReference }

// InsertError is returned when the backend rejects a record.
// Records before Index were persisted and stay counted.
type InsertError struct {
	Index int
	Err   error
}

func (e *InsertError) Error() string {
	return fmt.Sprintf("insert of record %d failed: %v", e.Index, e.Err)
}

// Kind implements UnitError.
func (e *InsertError) Kind() Kind { return KindInsertFailed }

func (e *InsertError) Unwrap() error { return e.Err }
