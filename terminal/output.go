// @lixen: #focus{sys[term,io,output]}
// @lixen: #interact{trigger[output,ansi]}
package terminal

import (
	"bufio"
	"io"
	"sync"
)

// outputBufferSize holds a full tick of draws for very large terminals
const outputBufferSize = 131072

// Sizer reports terminal geometry
type Sizer func() (rows, cols int, err error)

// ANSI is a Surface that emits the fixed escape-sequence dialect
// All commands are buffered until Flush
type ANSI struct {
	writer *bufio.Writer
	sizer  Sizer

	events chan Event
	resize *resizeHandler

	mu     sync.Mutex
	closed bool
}

// NewANSI creates a surface writing to w with geometry from sizer
func NewANSI(w io.Writer, sizer Sizer) *ANSI {
	return &ANSI{
		writer: bufio.NewWriterSize(w, outputBufferSize),
		sizer:  sizer,
		events: make(chan Event, 1),
	}
}

// WatchResize starts delivering EventResize on SIGWINCH
func (a *ANSI) WatchResize() {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.resize != nil || a.closed {
		return
	}
	a.resize = newResizeHandler(a.events)
	a.resize.start()
}

func (a *ANSI) Size() (int, int, error) {
	return a.sizer()
}

func (a *ANSI) HideCursor() {
	a.writer.Write(csiCursorHide)
}

func (a *ANSI) MoveCursor(row, col int) {
	writeCursorPos(a.writer, row, col)
}

// SetColor emits weight and foreground; the background is left to the terminal
func (a *ANSI) SetColor(fg, _ Color, weight Weight) {
	writeColor(a.writer, fg, weight)
}

func (a *ANSI) DrawChar(c byte) {
	a.writer.WriteByte(c)
}

func (a *ANSI) Clear() {
	a.writer.Write(csiClear)
}

func (a *ANSI) Reset() {
	a.writer.Write(csiRIS)
}

func (a *ANSI) Flush() error {
	return a.writer.Flush()
}

func (a *ANSI) Events() <-chan Event {
	return a.events
}

// Close stops the resize watcher and flushes pending output
func (a *ANSI) Close() {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.closed {
		return
	}
	if a.resize != nil {
		a.resize.stop()
		a.resize = nil
	}
	a.writer.Flush()
	a.closed = true
}
