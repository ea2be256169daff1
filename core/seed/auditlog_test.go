package seed

import (
	"encoding/json"
	"testing"

	"bulk-seeder/core/validate"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuditLog(t *testing.T) {
	log := NewAuditLog()
	log.Append(Outcome{CreationOrder: 1, Entity: "A", Connection: "main", Created: 3})
	log.Append(Outcome{CreationOrder: 2, Entity: "B", Connection: "docs", Err: &EmptySourceError{Path: "b.json"}})
	log.Append(Outcome{CreationOrder: 3, Entity: "C", Connection: "main", Created: 1})

	assert.Equal(t, []string{"main", "docs"}, log.Connections())
	assert.Equal(t, 3, log.Len())
	assert.Equal(t, Totals{Units: 3, Failed: 1, Created: 4}, log.Totals())

	main := log.Entries("main")
	require.Len(t, main, 2)
	assert.Equal(t, "A", main[0].Entity)
	assert.Equal(t, "C", main[1].Entity)

	// accessors return copies
	main[0].Entity = "changed"
	conns := log.Connections()
	conns[0] = "changed"
	assert.Equal(t, "A", log.Entries("main")[0].Entity)
	assert.Equal(t, "main", log.Connections()[0])

	assert.Empty(t, log.Entries("unknown"))
}

func TestAuditLog_MarshalJSON(t *testing.T) {
	log := NewAuditLog()
	log.Append(Outcome{CreationOrder: 1, Entity: "A", Connection: "main", Created: 2, FileSize: 0.25, Refs: []string{NoRefs}})
	log.Append(Outcome{CreationOrder: 2, Entity: "B", Connection: "main", Refs: []string{NoRefs}, Err: &ValidationError{
		Failures: []validate.Failure{{Index: 1, Record: map[string]any{"n": "x"}, Errors: []validate.FieldError{{Path: "n", Message: "conflicting values"}}}},
	}})

	raw, err := json.Marshal(log)
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"connections": [{
			"name": "main",
			"outcomes": [
				{"creation_order": 1, "entity": "A", "connection": "main", "created": 2, "file_size": 0.25, "refs": ["none"], "status": "OK"},
				{"creation_order": 2, "entity": "B", "connection": "main", "created": 0, "file_size": 0, "refs": ["none"], "status": "FAIL",
				 "errors": {
					"kind": "ValidationFailed",
					"message": "validation failed for 1 record(s): record 1: n: conflicting values",
					"details": [{"index": 1, "record": {"n": "x"}, "errors": [{"path": "n", "message": "conflicting values"}]}]
				 }}
			]
		}],
		"totals": {"units": 2, "failed": 1, "created": 2}
	}`, string(raw))
}
