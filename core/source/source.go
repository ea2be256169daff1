package source

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"path"
	"strings"

	"bulk-seeder/core/utils"

	"gopkg.in/yaml.v3"
)

var (
	// ErrEmpty is returned when a source decodes to zero records.
	ErrEmpty = errors.New("source is empty")
	// ErrNotFound is returned when a source does not exist.
	ErrNotFound = errors.New("source not found")
)

// Result holds the decoded records of a source and its raw size.
type Result struct {
	// Records are the decoded records in file order.
	Records []map[string]any
	// SizeKB is the raw size in kilobytes, rounded to two decimals.
	SizeKB float64
}

// Decode parses raw content according to the extension of name.
// JSON is the default; .yaml and .yml files are parsed as YAML.
// The document must be a sequence of objects.
func Decode(name string, raw []byte) (*Result, error) {
	var (
		records []map[string]any
		err     error
	)

	switch strings.ToLower(path.Ext(name)) {
	case ".yaml", ".yml":
		records, err = decodeYAML(raw)
	default:
		records, err = decodeJSON(raw)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", name, err)
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("%s: %w", name, ErrEmpty)
	}

	return &Result{
		Records: records,
		SizeKB:  utils.ToKB(int64(len(raw))),
	}, nil
}

func decodeJSON(raw []byte) ([]map[string]any, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var records []map[string]any
	if err := dec.Decode(&records); err != nil {
		return nil, err
	}
	for i, rec := range records {
		records[i] = normalizeNumbers(rec).(map[string]any)
	}
	return records, nil
}

// normalizeNumbers turns json.Number values into int64 when they are whole
// and float64 otherwise, so integer fields keep their integer type.
func normalizeNumbers(v any) any {
	switch val := v.(type) {
	case json.Number:
		if i, err := val.Int64(); err == nil {
			return i
		}
		if f, err := val.Float64(); err == nil {
			return f
		}
		return val.String()
	case map[string]any:
		for k, item := range val {
			val[k] = normalizeNumbers(item)
		}
		return val
	case []any:
		for i, item := range val {
			val[i] = normalizeNumbers(item)
		}
		return val
	default:
		return v
	}
}

func decodeYAML(raw []byte) ([]map[string]any, error) {
	var records []map[string]any
	if err := yaml.Unmarshal(raw, &records); err != nil {
		return nil, err
	}
	return records, nil
}
