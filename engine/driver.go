package engine

import (
	"fmt"
	"io"

	"github.com/lixenwraith/termatrix/constant"
	"github.com/lixenwraith/termatrix/glyph"
	"github.com/lixenwraith/termatrix/rain"
	"github.com/lixenwraith/termatrix/terminal"
)

// Driver owns the column array and renders one tick at a time
// Not safe for concurrent use; the Scheduler serializes all calls
type Driver struct {
	surface terminal.Surface
	source  glyph.Source
	rng     rain.Rand

	rows    int
	cols    int
	columns []*rain.Streak

	ticks uint64
}

// NewDriver creates a driver; call Reset before the first Tick
func NewDriver(surface terminal.Surface, source glyph.Source, rng rain.Rand) *Driver {
	return &Driver{
		surface: surface,
		source:  source,
		rng:     rng,
	}
}

// Reset re-reads geometry, discards every streak and clears the screen
// On error the previous state is kept
func (d *Driver) Reset() error {
	rows, cols, err := d.surface.Size()
	if err != nil {
		return fmt.Errorf("query terminal geometry: %w", err)
	}

	d.rows = rows
	d.cols = cols
	d.columns = make([]*rain.Streak, cols)

	d.surface.HideCursor()
	d.surface.Clear()
	return d.surface.Flush()
}

// Tick advances every column in index order and flushes once
func (d *Driver) Tick() error {
	for c := range d.columns {
		d.columns[c] = rain.Advance(d.columns[c], c, d.rows, d.surface, d.source, d.rng)
	}
	d.ticks++
	return d.surface.Flush()
}

// Geometry returns the rows and columns in effect
func (d *Driver) Geometry() (rows, cols int) {
	return d.rows, d.cols
}

// Streak returns the streak in column c, nil when empty or out of range
func (d *Driver) Streak(c int) *rain.Streak {
	if c < 0 || c >= len(d.columns) {
		return nil
	}
	return d.columns[c]
}

// Active counts columns whose streak occupies cells
func (d *Driver) Active() int {
	n := 0
	for _, s := range d.columns {
		if s.Active() {
			n++
		}
	}
	return n
}

// Ticks returns the number of rendered ticks
func (d *Driver) Ticks() uint64 {
	return d.ticks
}

// Shutdown resets the terminal, releases the surface and writes one farewell line to w
func (d *Driver) Shutdown(w io.Writer) (string, error) {
	d.surface.Reset()
	flushErr := d.surface.Flush()
	d.surface.Close()

	phrase := constant.Farewells[d.rng.Intn(len(constant.Farewells))]
	if _, err := fmt.Fprintln(w, phrase); err != nil {
		return phrase, fmt.Errorf("write farewell: %w", err)
	}
	return phrase, flushErr
}
