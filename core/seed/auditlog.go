package seed

import (
	"encoding/json"
	"errors"
)

// Outcome is the result of one unit. It is never modified after being
// appended to an AuditLog.
type Outcome struct {
	CreationOrder int
	Entity        string
	Connection    string
	Created       int
	FileSize      float64
	Refs          []string
	Err           UnitError
}

// Status returns "OK" when the unit completed normally and "FAIL" otherwise.
func (o Outcome) Status() string {
	if o.Err != nil {
		return "FAIL"
	}
	return "OK"
}

// outcomeJSON is the wire form of an Outcome.
type outcomeJSON struct {
	CreationOrder int        `json:"creation_order"`
	Entity        string     `json:"entity"`
	Connection    string     `json:"connection"`
	Created       int        `json:"created"`
	FileSize      float64    `json:"file_size"`
	Refs          []string   `json:"refs"`
	Status        string     `json:"status"`
	Errors        *errorJSON `json:"errors,omitempty"`
}

type errorJSON struct {
	Kind    Kind   `json:"kind"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// MarshalJSON implements json.Marshaler.
func (o Outcome) MarshalJSON() ([]byte, error) {
	out := outcomeJSON{
		CreationOrder: o.CreationOrder,
		Entity:        o.Entity,
		Connection:    o.Connection,
		Created:       o.Created,
		FileSize:      o.FileSize,
		Refs:          o.Refs,
		Status:        o.Status(),
	}
	if o.Err != nil {
		out.Errors = &errorJSON{Kind: o.Err.Kind(), Message: o.Err.Error()}
		var verr *ValidationError
		if errors.As(o.Err, &verr) && len(verr.Failures) > 0 {
			out.Errors.Details = verr.Failures
		}
	}
	return json.Marshal(out)
}

// Totals aggregates an AuditLog.
type Totals struct {
	Units   int `json:"units"`
	Failed  int `json:"failed"`
	Created int `json:"created"`
}

// AuditLog collects outcomes per connection in insertion order.
// It is written by a single run and read once the run has returned.
type AuditLog struct {
	order   []string
	entries map[string][]Outcome
}

// NewAuditLog creates an empty log.
func NewAuditLog() *AuditLog {
	return &AuditLog{entries: make(map[string][]Outcome)}
}

// Append adds an outcome under its connection.
func (l *AuditLog) Append(o Outcome) {
	if _, ok := l.entries[o.Connection]; !ok {
		l.order = append(l.order, o.Connection)
	}
	l.entries[o.Connection] = append(l.entries[o.Connection], o)
}

// Connections returns connection names in order of first appearance.
func (l *AuditLog) Connections() []string {
	out := make([]string, len(l.order))
	copy(out, l.order)
	return out
}

// Entries returns a copy of the outcomes recorded for a connection.
func (l *AuditLog) Entries(connection string) []Outcome {
	src := l.entries[connection]
	out := make([]Outcome, len(src))
	copy(out, src)
	return out
}

// Len returns the number of outcomes across all connections.
func (l *AuditLog) Len() int {
	n := 0
	for _, list := range l.entries {
		n += len(list)
	}
	return n
}

// Totals returns aggregate counters over every outcome.
func (l *AuditLog) Totals() Totals {
	var t Totals
	for _, list := range l.entries {
		for _, o := range list {
			t.Units++
			t.Created += o.Created
			if o.Err != nil {
				t.Failed++
			}
		}
	}
	return t
}

type connectionJSON struct {
	Name     string    `json:"name"`
	Outcomes []Outcome `json:"outcomes"`
}

// MarshalJSON implements json.Marshaler.
func (l *AuditLog) MarshalJSON() ([]byte, error) {
	conns := make([]connectionJSON, 0, len(l.order))
	for _, name := range l.order {
		conns = append(conns, connectionJSON{Name: name, Outcomes: l.entries[name]})
	}
	return json.Marshal(struct {
		Connections []connectionJSON `json:"connections"`
		Totals      Totals           `json:"totals"`
	}{
		Connections: conns,
		Totals:      l.Totals(),
	})
}
