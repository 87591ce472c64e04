package terminal

import (
	"fmt"
	"strings"
)

// OpKind identifies a recorded surface command
type OpKind uint8

const (
	OpHideCursor OpKind = iota
	OpMove
	OpColor
	OpChar
	OpClear
	OpReset
	OpFlush
)

// Op is one recorded surface command
type Op struct {
	Kind   OpKind
	Row    int
	Col    int
	Fg     Color
	Bg     Color
	Weight Weight
	Char   byte
}

func (o Op) String() string {
	switch o.Kind {
	case OpHideCursor:
		return "hide"
	case OpMove:
		return fmt.Sprintf("move(%d,%d)", o.Row, o.Col)
	case OpColor:
		return fmt.Sprintf("color(%d,%d,%d)", o.Fg, o.Bg, o.Weight)
	case OpChar:
		return fmt.Sprintf("char(%q)", o.Char)
	case OpClear:
		return "clear"
	case OpReset:
		return "reset"
	case OpFlush:
		return "flush"
	}
	return "unknown"
}

// RecordedCell is the last glyph and style written to a position
type RecordedCell struct {
	Char   byte
	Fg     Color
	Weight Weight
}

// Recorder is an in-memory Surface for tests and headless runs
// It records every command and keeps a grid of the last write per cell
type Recorder struct {
	Rows    int
	Cols    int
	SizeErr error

	Ops     []Op
	Flushes int

	grid   map[[2]int]RecordedCell
	row    int
	col    int
	fg     Color
	weight Weight

	events chan Event
	closed bool
}

// NewRecorder creates a recorder reporting the given geometry
func NewRecorder(rows, cols int) *Recorder {
	return &Recorder{
		Rows:   rows,
		Cols:   cols,
		grid:   make(map[[2]int]RecordedCell),
		events: make(chan Event, 4),
	}
}

// Post queues an event as if the terminal produced it
func (r *Recorder) Post(ev Event) {
	r.events <- ev
}

// Cell returns the last write at (row, col)
func (r *Recorder) Cell(row, col int) (RecordedCell, bool) {
	c, ok := r.grid[[2]int{row, col}]
	return c, ok
}

// Column renders rows of a column as a string, unwritten cells as '.'
func (r *Recorder) Column(col int) string {
	var sb strings.Builder
	for row := 0; row < r.Rows; row++ {
		if c, ok := r.Cell(row, col); ok {
			sb.WriteByte(c.Char)
		} else {
			sb.WriteByte('.')
		}
	}
	return sb.String()
}

// Count returns how many ops of kind were recorded
func (r *Recorder) Count(kind OpKind) int {
	n := 0
	for _, op := range r.Ops {
		if op.Kind == kind {
			n++
		}
	}
	return n
}

// ResetOps drops recorded ops, keeping the grid
func (r *Recorder) ResetOps() {
	r.Ops = r.Ops[:0]
}

func (r *Recorder) Size() (int, int, error) {
	if r.SizeErr != nil {
		return 0, 0, r.SizeErr
	}
	return r.Rows, r.Cols, nil
}

func (r *Recorder) HideCursor() {
	r.Ops = append(r.Ops, Op{Kind: OpHideCursor})
}

func (r *Recorder) MoveCursor(row, col int) {
	r.row, r.col = row, col
	r.Ops = append(r.Ops, Op{Kind: OpMove, Row: row, Col: col})
}

func (r *Recorder) SetColor(fg, bg Color, weight Weight) {
	r.fg, r.weight = fg, weight
	r.Ops = append(r.Ops, Op{Kind: OpColor, Fg: fg, Bg: bg, Weight: weight})
}

func (r *Recorder) DrawChar(c byte) {
	r.Ops = append(r.Ops, Op{Kind: OpChar, Row: r.row, Col: r.col, Char: c})
	r.grid[[2]int{r.row, r.col}] = RecordedCell{Char: c, Fg: r.fg, Weight: r.weight}
	r.col++
}

func (r *Recorder) Clear() {
	r.grid = make(map[[2]int]RecordedCell)
	r.Ops = append(r.Ops, Op{Kind: OpClear})
}

func (r *Recorder) Reset() {
	r.grid = make(map[[2]int]RecordedCell)
	r.Ops = append(r.Ops, Op{Kind: OpReset})
}

func (r *Recorder) Flush() error {
	r.Flushes++
	r.Ops = append(r.Ops, Op{Kind: OpFlush})
	return nil
}

func (r *Recorder) Events() <-chan Event {
	return r.events
}

func (r *Recorder) Close() {
	r.closed = true
}

// Closed reports whether Close was called
func (r *Recorder) Closed() bool {
	return r.closed
}
