package terminal

import (
	"errors"
	"fmt"
	"os"
	"runtime/debug"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
)

// Screen is a Surface backed by a tcell.Screen
// tcell owns the tty in raw mode, so Ctrl-C and Esc arrive as key events
// and are reported as EventInterrupt
type Screen struct {
	screen tcell.Screen
	style  tcell.Style
	row    int
	col    int

	events chan Event
	doneCh chan struct{}

	mu     sync.Mutex
	closed bool
}

// NewScreen initializes s and starts forwarding its events
func NewScreen(s tcell.Screen) (*Screen, error) {
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("init tcell screen: %w", err)
	}

	sc := &Screen{
		screen: s,
		style:  tcell.StyleDefault,
		events: make(chan Event, 1),
		doneCh: make(chan struct{}),
	}
	go sc.pollLoop()
	return sc, nil
}

// pollLoop translates tcell events until the screen is finalized
func (s *Screen) pollLoop() {
	defer close(s.doneCh)

	defer func() {
		if r := recover(); r != nil {
			s.screen.Fini()
			fmt.Fprintf(os.Stderr, "\n\x1b[31mEVENT POLLER CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	for {
		ev := s.screen.PollEvent()
		if ev == nil {
			return
		}

		switch ev := ev.(type) {
		case *tcell.EventResize:
			postCoalesced(s.events, Event{Type: EventResize})
		case *tcell.EventKey:
			if isInterruptKey(ev.Key(), ev.Rune()) {
				postCoalesced(s.events, Event{Type: EventInterrupt})
			}
		}
	}
}

func isInterruptKey(key tcell.Key, r rune) bool {
	switch key {
	case tcell.KeyCtrlC, tcell.KeyEscape:
		return true
	case tcell.KeyRune:
		return r == 'q'
	}
	return false
}

// pollerShutdownWait bounds how long Close waits for PollEvent to return
const pollerShutdownWait = 250 * time.Millisecond

var errNoGeometry = errors.New("screen reports no geometry")

func (s *Screen) Size() (int, int, error) {
	cols, rows := s.screen.Size()
	if cols <= 0 || rows <= 0 {
		return 0, 0, errNoGeometry
	}
	return rows, cols, nil
}

func (s *Screen) HideCursor() {
	s.screen.HideCursor()
}

func (s *Screen) MoveCursor(row, col int) {
	s.row = row
	s.col = col
}

// SetColor maps palette entries directly and SGR 1 to bold
func (s *Screen) SetColor(fg, bg Color, weight Weight) {
	s.style = tcell.StyleDefault.
		Foreground(tcell.PaletteColor(int(fg))).
		Background(tcell.PaletteColor(int(bg))).
		Bold(weight == WeightNormal)
}

func (s *Screen) DrawChar(c byte) {
	s.screen.SetContent(s.col, s.row, rune(c), nil, s.style)
	s.col++
}

func (s *Screen) Clear() {
	s.screen.Clear()
}

// Reset clears content and forces a full repaint on the next flush
func (s *Screen) Reset() {
	s.style = tcell.StyleDefault
	s.screen.Clear()
	s.screen.Sync()
}

func (s *Screen) Flush() error {
	s.screen.Show()
	return nil
}

func (s *Screen) Events() <-chan Event {
	return s.events
}

// Close finalizes the tcell screen and waits for the poller to exit
func (s *Screen) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.screen.Fini()
	select {
	case <-s.doneCh:
	case <-time.After(pollerShutdownWait):
	}
	s.closed = true
}
