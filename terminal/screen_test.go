package terminal

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func newSimScreen(t *testing.T, cols, rows int) (*Screen, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	s, err := NewScreen(sim)
	if err != nil {
		t.Fatalf("NewScreen failed: %v", err)
	}
	sim.SetSize(cols, rows)
	t.Cleanup(s.Close)
	return s, sim
}

func TestScreen_Size(t *testing.T) {
	s, _ := newSimScreen(t, 80, 24)

	rows, cols, err := s.Size()
	if err != nil {
		t.Fatalf("Size failed: %v", err)
	}
	if rows != 24 || cols != 80 {
		t.Errorf("Expected 24 rows x 80 cols, got %dx%d", rows, cols)
	}
}

func TestScreen_DrawAdvancesColumn(t *testing.T) {
	s, sim := newSimScreen(t, 10, 5)

	s.SetColor(ColorWhite, ColorBlack, WeightNormal)
	s.MoveCursor(2, 3)
	s.DrawChar('a')
	s.DrawChar('b')
	s.Flush()

	if r, _, _, _ := sim.GetContent(3, 2); r != 'a' {
		t.Errorf("Expected 'a' at row 2 col 3, got %q", r)
	}
	if r, _, _, _ := sim.GetContent(4, 2); r != 'b' {
		t.Errorf("Expected 'b' at row 2 col 4, got %q", r)
	}
}

func TestScreen_ColorMapping(t *testing.T) {
	s, sim := newSimScreen(t, 10, 5)

	s.SetColor(ColorGreen, ColorBlack, WeightEstablished)
	s.MoveCursor(0, 0)
	s.DrawChar('g')
	s.SetColor(ColorWhite, ColorBlack, WeightNormal)
	s.DrawChar('w')

	_, _, dim, _ := sim.GetContent(0, 0)
	wantDim := tcell.StyleDefault.
		Foreground(tcell.PaletteColor(int(ColorGreen))).
		Background(tcell.PaletteColor(int(ColorBlack))).
		Bold(false)
	if dim != wantDim {
		t.Errorf("Expected established style %v, got %v", wantDim, dim)
	}

	_, _, bright, _ := sim.GetContent(1, 0)
	wantBright := tcell.StyleDefault.
		Foreground(tcell.PaletteColor(int(ColorWhite))).
		Background(tcell.PaletteColor(int(ColorBlack))).
		Bold(true)
	if bright != wantBright {
		t.Errorf("Expected bright style %v, got %v", wantBright, bright)
	}
}

func TestScreen_ClearBlanksCells(t *testing.T) {
	s, sim := newSimScreen(t, 4, 4)

	s.MoveCursor(1, 1)
	s.DrawChar('x')
	s.Clear()
	s.Flush()

	if r, _, _, _ := sim.GetContent(1, 1); r != ' ' {
		t.Errorf("Expected blank after clear, got %q", r)
	}
}

func TestIsInterruptKey(t *testing.T) {
	tests := []struct {
		name string
		key  tcell.Key
		r    rune
		want bool
	}{
		{"ctrl-c", tcell.KeyCtrlC, 0, true},
		{"escape", tcell.KeyEscape, 0, true},
		{"q", tcell.KeyRune, 'q', true},
		{"other rune", tcell.KeyRune, 'x', false},
		{"enter", tcell.KeyEnter, 0, false},
	}

	for _, tt := range tests {
		if got := isInterruptKey(tt.key, tt.r); got != tt.want {
			t.Errorf("%s: expected %v, got %v", tt.name, tt.want, got)
		}
	}
}
