package validate

import (
	"context"
	"fmt"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
)

// FieldError describes a single constraint violation.
type FieldError struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

// Failure holds the violations of one record.
type Failure struct {
	// Index is the position of the record in the unit.
	Index int `json:"index"`
	// Record is the record as it was submitted.
	Record map[string]any `json:"record"`
	// Errors lists every violation found.
	Errors []FieldError `json:"errors"`
}

// Summary joins the field errors into a single line.
func (f Failure) Summary() string {
	parts := make([]string, 0, len(f.Errors))
	for _, fe := range f.Errors {
		if fe.Path == "" {
			parts = append(parts, fe.Message)
			continue
		}
		parts = append(parts, fe.Path+": "+fe.Message)
	}
	return strings.Join(parts, ", ")
}

// Validator checks records against CUE schemas.
// Every call works in its own CUE context, so nothing accumulates across runs
// and a Validator may be shared.
type Validator struct{}

// New creates a validator.
func New() *Validator {
	return &Validator{}
}

// Compile builds a schema from CUE source.
func (v *Validator) Compile(schema string) (cue.Value, error) {
	return compile(cuecontext.New(), schema)
}

func compile(cctx *cue.Context, schema string) (cue.Value, error) {
	val := cctx.CompileString(schema)
	if err := val.Err(); err != nil {
		return cue.Value{}, fmt.Errorf("invalid schema: %w", err)
	}
	return val, nil
}

// Validate unifies every record with schema and requires a concrete result.
// It returns the validated records, or the failures when at least one record
// is invalid. Validated records keep every value they were given; fields the
// schema fills with a default are added.
// The error is only set when the schema cannot be compiled or ctx is done.
func (v *Validator) Validate(ctx context.Context, schema string, records []map[string]any) ([]map[string]any, []Failure, error) {
	cctx := cuecontext.New()
	schemaVal, err := compile(cctx, schema)
	if err != nil {
		return nil, nil, err
	}

	validated := make([]map[string]any, 0, len(records))
	var failures []Failure

	for i, rec := range records {
		if err := ctx.Err(); err != nil {
			return nil, nil, err
		}

		out, fieldErrs := check(cctx, schemaVal, rec)
		if len(fieldErrs) > 0 {
			failures = append(failures, Failure{Index: i, Record: rec, Errors: fieldErrs})
			continue
		}
		validated = append(validated, out)
	}

	if len(failures) > 0 {
		return nil, failures, nil
	}
	return validated, nil, nil
}

func check(cctx *cue.Context, schemaVal cue.Value, rec map[string]any) (map[string]any, []FieldError) {
	recVal := cctx.Encode(rec)
	if err := recVal.Err(); err != nil {
		return nil, fieldErrors(err)
	}

	unified := schemaVal.Unify(recVal)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return nil, fieldErrors(err)
	}

	var decoded map[string]any
	if err := unified.Decode(&decoded); err != nil {
		return nil, fieldErrors(err)
	}

	// Decoded values lose their Go types (ObjectIDs become strings, int64
	// becomes int), so only fields missing from the input are taken from it.
	out := make(map[string]any, len(decoded))
	for k, val := range decoded {
		out[k] = val
	}
	for k, val := range rec {
		out[k] = val
	}
	return out, nil
}

// fieldErrors flattens a CUE error list into field errors.
func fieldErrors(err error) []FieldError {
	list := cueerrors.Errors(err)
	if len(list) == 0 {
		return []FieldError{{Message: err.Error()}}
	}

	out := make([]FieldError, 0, len(list))
	for _, e := range list {
		format, args := e.Msg()
		out = append(out, FieldError{
			Path:    strings.Join(e.Path(), "."),
			Message: fmt.Sprintf(format, args...),
		})
	}
	return out
}
