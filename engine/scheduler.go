package engine

import (
	"context"
	"log"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/termatrix/terminal"
)

// Scheduler runs the render loop on a single goroutine
// Ticks, resizes and shutdown are handled strictly one at a time, so two
// ticks never touch the columns concurrently; a tick that fires while the
// previous one is still rendering is dropped by the ticker
type Scheduler struct {
	driver   *Driver
	events   <-chan terminal.Event
	interval time.Duration

	// newTicker is replaced in tests to drive ticks by hand
	newTicker func(time.Duration) (<-chan time.Time, func())

	// Counters for the exit log
	tickCount   atomic.Uint64
	resizeCount atomic.Uint64
	flushErrors atomic.Uint64
}

// NewScheduler creates a scheduler ticking driver every interval
func NewScheduler(driver *Driver, events <-chan terminal.Event, interval time.Duration) *Scheduler {
	return &Scheduler{
		driver:    driver,
		events:    events,
		interval:  interval,
		newTicker: realTicker,
	}
}

func realTicker(d time.Duration) (<-chan time.Time, func()) {
	t := time.NewTicker(d)
	return t.C, t.Stop
}

// Run blocks until ctx is cancelled or the surface reports an interrupt
// Both end the loop with a nil error; the caller performs the shutdown
func (s *Scheduler) Run(ctx context.Context) error {
	tickC, stop := s.newTicker(s.interval)
	defer stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev := <-s.events:
			if s.handleEvent(ev) {
				return nil
			}

		case <-tickC:
			// Shutdown and resize take precedence over a pending tick
			select {
			case <-ctx.Done():
				return nil
			case ev := <-s.events:
				if s.handleEvent(ev) {
					return nil
				}
				continue
			default:
			}

			if err := s.driver.Tick(); err != nil {
				// Presentation only, the next tick redraws
				if s.flushErrors.Add(1) == 1 {
					log.Printf("engine: flush failed: %v", err)
				}
			}
			s.tickCount.Add(1)
		}
	}
}

// handleEvent applies a surface event, true when the loop should end
func (s *Scheduler) handleEvent(ev terminal.Event) bool {
	switch ev.Type {
	case terminal.EventInterrupt:
		log.Printf("engine: interrupt received")
		return true

	case terminal.EventResize:
		s.resizeCount.Add(1)
		if err := s.driver.Reset(); err != nil {
			log.Printf("engine: resize ignored: %v", err)
			return false
		}
		rows, cols := s.driver.Geometry()
		log.Printf("engine: restarted at %dx%d", cols, rows)
	}
	return false
}

// Stats returns ticks rendered, resizes handled and failed flushes
func (s *Scheduler) Stats() (ticks, resizes, flushErrors uint64) {
	return s.tickCount.Load(), s.resizeCount.Load(), s.flushErrors.Load()
}
