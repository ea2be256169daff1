package report

import (
	"bytes"
	"errors"
	"io"
	"os"
	"strconv"
	"strings"

	"bulk-seeder/core/seed"

	"github.com/mattn/go-isatty"
	"github.com/mattn/go-runewidth"
)

// ANSI colours used by the table.
const (
	colorReset  = "\x1b[0m"
	colorRed    = "\x1b[31m"
	colorGreen  = "\x1b[32m"
	colorYellow = "\x1b[33m"
	colorBlue   = "\x1b[34m"
	colorWhite  = "\x1b[37m"
)

// Columns are the headers of every connection block.
var Columns = []string{"Order", "Entity", "Created", "Status", "File Size"}

// Grid is the width of each column, separator space included.
var Grid = []int{8, 26, 10, 8, 14}

// Options controls table rendering.
type Options struct {
	// Light replaces the box-drawing border with blanks.
	Light bool
	// Color enables ANSI colours.
	Color bool
}

// Detailer is implemented by errors that carry a longer description for the
// error listing.
type Detailer interface {
	Detail() string
}

// Table renders an AuditLog as one bordered block per connection followed by
// the error listing of every failed unit.
type Table struct {
	log  *seed.AuditLog
	opts Options
}

// NewTable creates a table over log.
func NewTable(log *seed.AuditLog, opts Options) *Table {
	return &Table{log: log, opts: opts}
}

// ColorEnabled reports whether w is a terminal.
func ColorEnabled(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Render writes the table to w.
func (t *Table) Render(w io.Writer) error {
	_, err := io.WriteString(w, t.String())
	return err
}

// String returns the rendered table.
func (t *Table) String() string {
	var b bytes.Buffer
	var failed []seed.Outcome

	for _, conn := range t.log.Connections() {
		entries := t.log.Entries(conn)

		t.writeHeader(&b, "CONNECTION: "+conn)
		t.writeColumns(&b, Columns, colorBlue, false)
		for i, o := range entries {
			color := colorGreen
			if o.Err != nil {
				color = colorRed
				failed = append(failed, o)
			}
			t.writeColumns(&b, outcomeValues(o), color, i == len(entries)-1)
		}
	}

	for _, o := range failed {
		b.WriteString(t.paint(o.Entity, colorRed))
		b.WriteByte('\n')
		b.WriteString(t.paint(errorText(o.Err), colorYellow))
		b.WriteByte('\n')
	}

	return b.String()
}

func outcomeValues(o seed.Outcome) []string {
	return []string{
		strconv.Itoa(o.CreationOrder),
		o.Entity,
		strconv.Itoa(o.Created),
		o.Status(),
		strconv.FormatFloat(o.FileSize, 'f', -1, 64) + " Kb",
	}
}

func errorText(err error) string {
	var d Detailer
	if errors.As(err, &d) {
		return d.Detail()
	}
	return err.Error()
}

func (t *Table) writeHeader(b *bytes.Buffer, title string) {
	b.WriteByte('\n')
	b.WriteString(t.border(borderTop))
	b.WriteByte('\n')
	b.WriteString(t.margin(t.paint(pad(title, width()), colorYellow)))
	b.WriteByte('\n')
	b.WriteString(t.border(borderMid))
	b.WriteByte('\n')
}

func (t *Table) writeColumns(b *bytes.Buffer, values []string, color string, last bool) {
	var cols strings.Builder
	for i, v := range values {
		cols.WriteString(pad(v, Grid[i]))
	}
	b.WriteString(t.margin(t.paint(cols.String(), color)))
	b.WriteByte('\n')
	if last {
		b.WriteString(t.border(borderBottom))
	} else {
		b.WriteString(t.border(borderMid))
	}
	b.WriteByte('\n')
}

type borderKind int

const (
	borderTop borderKind = iota
	borderMid
	borderBottom
)

func (t *Table) border(kind borderKind) string {
	if t.opts.Light {
		return strings.Repeat(" ", width()+4)
	}
	left, right := "╠", "╣"
	switch kind {
	case borderTop:
		left, right = "╔", "╗"
	case borderBottom:
		left, right = "╚", "╝"
	}
	return t.paint(left+strings.Repeat("═", width()+2)+right, colorWhite)
}

func (t *Table) margin(value string) string {
	side := "║"
	if t.opts.Light {
		side = " "
	}
	side = t.paint(side, colorWhite)
	return side + " " + value + " " + side
}

func (t *Table) paint(value, color string) string {
	if !t.opts.Color {
		return value
	}
	return color + value + colorReset
}

// pad fits value into a cell of the given display width, truncating long
// values so a space always separates columns.
func pad(value string, cell int) string {
	if runewidth.StringWidth(value) >= cell {
		value = runewidth.Truncate(value, cell-1, "...")
	}
	return runewidth.FillRight(value, cell)
}

func width() int {
	total := 0
	for _, w := range Grid {
		total += w
	}
	return total
}
