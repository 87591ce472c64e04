package rain

import (
	"github.com/lixenwraith/termatrix/constant"
	"github.com/lixenwraith/termatrix/glyph"
	"github.com/lixenwraith/termatrix/terminal"
)

// Rand is the randomness consumed by the state machine
// Draw order is fixed so a seeded generator reproduces a run exactly
type Rand interface {
	Intn(n int) int
	Range(lo, hi int) int
	Chance(pct int) bool
}

// Painter receives the draw commands of one advance
type Painter interface {
	MoveCursor(row, col int)
	SetColor(fg, bg terminal.Color, weight terminal.Weight)
	DrawChar(c byte)
}

// Streak is one falling run of glyphs in a column
// Invariant: 0 <= Start <= End <= rows+1
type Streak struct {
	Start  int  // Trailing (erasing) row
	End    int  // One past the leading row
	Budget int  // Remaining growth steps before the tail starts following
	Speed  int  // Ticks per visual step
	Phase  int  // Ticks since last step, in [0, Speed)
	Last   byte // Most recent leading glyph

	// trail[r] is the glyph drawn at row r, len(trail) == min(End, rows)
	trail []byte
}

// New creates a streak at the top of a column with random speed and length
func New(rows int, rng Rand) *Streak {
	speed := rng.Range(constant.SpeedMin, constant.SpeedMax)
	budget := rng.Range(1, rows)
	return &Streak{
		Speed:  speed,
		Budget: budget,
	}
}

// Spawn runs the creation trial for an empty column
// Returns nil when the trial fails or the screen has no rows
func Spawn(rows int, rng Rand) *Streak {
	if rows <= 0 {
		return nil
	}
	if !rng.Chance(constant.NewStreakProb) {
		return nil
	}
	return New(rows, rng)
}

// Advance runs one tick for a column and returns what the column holds next
func Advance(s *Streak, col, rows int, p Painter, src glyph.Source, rng Rand) *Streak {
	if s == nil {
		return Spawn(rows, rng)
	}

	if !s.tick() {
		return s
	}

	s.step(col, rows, p, src, rng)

	if s.Start == s.End {
		return nil
	}
	return s
}

// tick counts one render tick, true when a visual step is due
func (s *Streak) tick() bool {
	s.Phase = (s.Phase + 1) % s.Speed
	return s.Phase == 0
}

// step performs one visual advance
func (s *Streak) step(col, rows int, p Painter, src glyph.Source, rng Rand) {
	// Recolor body cells; the cell just behind the head is always redrawn
	// Glyphs come from the trail, never from src
	last := min(rows, s.End)
	for r := s.Start; r < last; r++ {
		if rng.Chance(constant.LetterChangeProb) || r == s.End-1 {
			if rng.Chance(constant.DarkProb) {
				p.SetColor(terminal.ColorGreen, terminal.ColorBlack, terminal.WeightEstablished)
			} else {
				fg := terminal.ColorRed + terminal.Color(rng.Intn(constant.BrightColorCount))
				p.SetColor(fg, terminal.ColorBlack, terminal.WeightNormal)
			}
			p.MoveCursor(r, col)
			p.DrawChar(s.glyphAt(r))
		}
	}

	// Head reached the bottom: let the tail drain past the edge
	if s.End == rows {
		s.End++
	}

	if s.Budget == 0 {
		if s.Start < rows {
			p.MoveCursor(s.Start, col)
			p.DrawChar(glyph.Blank)
		}
		s.Start++
	}

	if s.End < rows {
		s.Last = src.Next()
		p.SetColor(terminal.ColorWhite, terminal.ColorBlack, terminal.WeightNormal)
		p.MoveCursor(s.End, col)
		p.DrawChar(s.Last)
		s.trail = append(s.trail, s.Last)
		s.End++
	}

	if s.Budget > 0 {
		s.Budget--
	}
}

// glyphAt returns the glyph drawn at row r
func (s *Streak) glyphAt(r int) byte {
	if r >= 0 && r < len(s.trail) {
		return s.trail[r]
	}
	return glyph.Blank
}

// Active reports whether the streak still occupies cells
func (s *Streak) Active() bool {
	return s != nil && s.Start < s.End
}
