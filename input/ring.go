package input

import (
	"sync"
)

// Ring is a fixed-capacity lossy byte ring
// Writers overwrite the oldest unread byte when full; readers never block
// Occupancy is tracked explicitly so a zero byte is valid data
type Ring struct {
	mu    sync.Mutex
	buf   []byte
	read  int
	write int
	count int
}

// NewRing creates a ring holding up to capacity unread bytes
func NewRing(capacity int) *Ring {
	if capacity < 1 {
		capacity = 1
	}
	return &Ring{buf: make([]byte, capacity)}
}

// Cap returns the ring capacity
func (r *Ring) Cap() int {
	return len(r.buf)
}

// Len returns the number of unread bytes
func (r *Ring) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.count
}

// Write stores p, dropping the oldest unread bytes on overflow
// Always consumes all of p
func (r *Ring) Write(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	size := len(r.buf)
	for _, b := range p {
		r.buf[r.write] = b
		r.write = (r.write + 1) % size
		if r.count == size {
			// Full: the slot just written was the oldest unread byte
			r.read = (r.read + 1) % size
		} else {
			r.count++
		}
	}
	return len(p), nil
}

// Pop removes and returns the oldest unread byte
func (r *Ring) Pop() (byte, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.count == 0 {
		return 0, false
	}
	b := r.buf[r.read]
	r.buf[r.read] = 0
	r.read = (r.read + 1) % len(r.buf)
	r.count--
	return b, true
}
