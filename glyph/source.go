// Package glyph supplies the characters written at the leading edge of a streak.
package glyph

import (
	"github.com/lixenwraith/termatrix/constant"
	"github.com/lixenwraith/termatrix/input"
)

// Blank is returned by a buffered source with nothing to read
const Blank byte = ' '

// Source yields the next glyph to draw; it never fails
type Source interface {
	Next() byte
}

// Intner is the randomness a Random source needs
type Intner interface {
	Intn(n int) int
}

// Random picks uniformly from a fixed alphabet
type Random struct {
	alphabet string
	rng      Intner
}

// NewRandom creates a source over constant.Alphabet
func NewRandom(rng Intner) *Random {
	return NewRandomAlphabet(constant.Alphabet, rng)
}

// NewRandomAlphabet creates a source over a custom alphabet, falling back to Blank when empty
func NewRandomAlphabet(alphabet string, rng Intner) *Random {
	return &Random{alphabet: alphabet, rng: rng}
}

func (s *Random) Next() byte {
	if len(s.alphabet) == 0 {
		return Blank
	}
	return s.alphabet[s.rng.Intn(len(s.alphabet))]
}

// Buffered pops glyphs from a ring filled by input ingestion
type Buffered struct {
	ring *input.Ring
}

func NewBuffered(ring *input.Ring) *Buffered {
	return &Buffered{ring: ring}
}

// Next pops the oldest unread byte, or Blank when the ring is empty
func (s *Buffered) Next() byte {
	if b, ok := s.ring.Pop(); ok {
		return b
	}
	return Blank
}
