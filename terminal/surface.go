package terminal

// Color is one of the 8 standard ANSI palette entries
type Color uint8

const (
	ColorBlack Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
)

// Weight is the SGR intensity parameter sent with a color
// SGR 1 renders bright, 22 resets to normal intensity
type Weight uint8

const (
	WeightNormal      Weight = 1
	WeightEstablished Weight = 22
)

// EventType discriminates surface notifications
type EventType uint8

const (
	EventResize EventType = iota
	EventInterrupt
)

// Event is a notification delivered by a surface outside the draw path
type Event struct {
	Type EventType
}

// Surface accepts draw commands for one screen
// Rows and columns are 0-indexed; implementations are driven from a single goroutine
type Surface interface {
	// Size reports current geometry, an error means the screen size is unknown
	Size() (rows, cols int, err error)

	HideCursor()
	MoveCursor(row, col int)
	SetColor(fg, bg Color, weight Weight)
	// DrawChar writes c at the cursor and advances it one column
	DrawChar(c byte)
	Clear()
	// Reset returns the terminal to its initial state
	Reset()
	// Flush makes all commands since the previous flush visible together
	Flush() error

	// Events delivers resize and interrupt notifications
	Events() <-chan Event

	// Close releases surface resources. Safe to call multiple times
	Close()
}
