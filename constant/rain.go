package constant

import (
	"time"
)

// Tick timing
const (
	// TickInterval is the wall-clock period between render ticks
	TickInterval = 8000 * time.Microsecond
)

// Streak parameters (percentages are out of 100)
const (
	SpeedMin = 6  // Fastest streak: advances every 6 ticks
	SpeedMax = 16 // Slowest streak: advances every 16 ticks

	DarkProb         = 75 // Body recolor uses the established color
	NewStreakProb    = 20 // Empty column spawns a streak this tick
	LetterChangeProb = 25 // Body cell is recolored during an advance

	// BrightColorCount is the number of non-black palette entries starting at red
	BrightColorCount = 7
)

// RingCapacity is the byte capacity of the piped input ring
const RingCapacity = 102400

// IngestChunkSize bounds a single read from the piped input
const IngestChunkSize = 4096

// Alphabet is the glyph set used when stdin is interactive
const Alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz<>()[]{}.,:;!@#$%^&*-_=+|?/`~'\"\\"

// Farewells holds the phrases printed on interrupt, one chosen per exit
var Farewells = []string{
	"Wake up, Neo.",
	"There is no spoon.",
	"Follow the white rabbit.",
	"What is the matrix?",
	"Welcome to the real world.",
	"Don't think you are. Know you are.",
	"It is inevitable.",
	"Only human.",
	"Deja vu...",
}
