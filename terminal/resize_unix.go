//go:build unix

package terminal

import (
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
)

// resizeHandler manages SIGWINCH signals
type resizeHandler struct {
	sigCh   chan os.Signal
	eventCh chan Event
	stopCh  chan struct{}
	doneCh  chan struct{}
}

// newResizeHandler creates a resize handler posting to eventCh
func newResizeHandler(eventCh chan Event) *resizeHandler {
	return &resizeHandler{
		sigCh:   make(chan os.Signal, 1),
		eventCh: eventCh,
		stopCh:  make(chan struct{}),
		doneCh:  make(chan struct{}),
	}
}

// start begins listening for SIGWINCH
func (r *resizeHandler) start() {
	signal.Notify(r.sigCh, syscall.SIGWINCH)
	go r.watchLoop()
}

// stop stops the resize handler
func (r *resizeHandler) stop() {
	signal.Stop(r.sigCh)
	close(r.stopCh)
	<-r.doneCh
}

// watchLoop monitors for resize signals
func (r *resizeHandler) watchLoop() {
	defer close(r.doneCh)

	defer func() {
		if rec := recover(); rec != nil {
			EmergencyReset(os.Stdout)
			fmt.Fprintf(os.Stderr, "\n\x1b[31mRESIZE HANDLER CRASHED: %v\x1b[0m\n", rec)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	for {
		select {
		case <-r.stopCh:
			return
		case <-r.sigCh:
			postCoalesced(r.eventCh, Event{Type: EventResize})
		}
	}
}

// postCoalesced sends ev without blocking, replacing a pending resize
// A pending interrupt is never evicted; an incoming event is dropped instead
func postCoalesced(ch chan Event, ev Event) {
	select {
	case ch <- ev:
		return
	default:
	}
	select {
	case old := <-ch:
		if old.Type == EventInterrupt {
			ev = old
		}
	default:
	}
	select {
	case ch <- ev:
	default:
	}
}
