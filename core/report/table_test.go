package report

import (
	"bytes"
	"errors"
	"testing"

	"bulk-seeder/core/seed"
	"bulk-seeder/core/validate"

	"github.com/mattn/go-runewidth"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleLog() *seed.AuditLog {
	log := seed.NewAuditLog()
	log.Append(seed.Outcome{CreationOrder: 1, Entity: "Organization", Connection: "default", Created: 2, FileSize: 0.12, Refs: []string{seed.NoRefs}})
	log.Append(seed.Outcome{CreationOrder: 2, Entity: "User", Connection: "default", FileSize: 0.5, Refs: []string{"organization_id"},
		Err: &seed.UnresolvedReferenceError{Field: "organization_id", Target: "Organization", SyntheticID: "9"}})
	log.Append(seed.Outcome{CreationOrder: 3, Entity: "Tag", Connection: "docs", Refs: []string{seed.NoRefs}})
	return log
}

func TestTable_Golden(t *testing.T) {
	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)

	tests := []struct {
		name string
		opts Options
	}{
		{"heavy", Options{}},
		{"light", Options{Light: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, NewTable(sampleLog(), tt.opts).Render(&buf))
			g.Assert(t, tt.name, buf.Bytes())
		})
	}
}

func TestTable_Color(t *testing.T) {
	out := NewTable(sampleLog(), Options{Color: true}).String()

	assert.Contains(t, out, colorGreen+pad("1", Grid[0]))
	assert.Contains(t, out, colorRed+pad("2", Grid[0]))
	assert.Contains(t, out, colorRed+"User"+colorReset+"\n")
	assert.Contains(t, out, colorYellow+`field organization_id: reference "9" not registered for entity Organization`+colorReset)
}

func TestTable_ValidationDetail(t *testing.T) {
	log := seed.NewAuditLog()
	log.Append(seed.Outcome{CreationOrder: 1, Entity: "User", Connection: "default", Err: &seed.ValidationError{
		Failures: []validate.Failure{{
			Index:  0,
			Record: map[string]any{"name": 1},
			Errors: []validate.FieldError{{Path: "name", Message: "conflicting values"}},
		}},
	}})

	out := NewTable(log, Options{}).String()
	assert.Contains(t, out, `"path": "name"`)
	assert.Contains(t, out, `"message": "conflicting values"`)
}

func TestTable_Empty(t *testing.T) {
	assert.Empty(t, NewTable(seed.NewAuditLog(), Options{}).String())
}

func TestPad(t *testing.T) {
	assert.Equal(t, "ab   ", pad("ab", 5))
	assert.Equal(t, "ab...", pad("abcdefgh", 6)[:5])
	assert.Equal(t, 6, len(pad("abcdefgh", 6)))
	assert.Equal(t, 6, runewidth.StringWidth(pad("名前", 6)))
}

func TestErrorText(t *testing.T) {
	assert.Equal(t, "plain", errorText(errors.New("plain")))
}

func TestColorEnabled(t *testing.T) {
	assert.False(t, ColorEnabled(&bytes.Buffer{}))
}
