package engine

import (
	"fmt"
	"time"

	"github.com/lixenwraith/termatrix/constant"
)

// Config carries runtime tunables resolved from flags
type Config struct {
	// Interval is the render tick period
	Interval time.Duration
	// Seed for the shared random source, 0 derives one from the clock
	Seed uint64
	// Backend selects the render surface: constant.BackendANSI or constant.BackendTcell
	Backend string
	// Debug enables file logging
	Debug bool
}

// DefaultConfig returns the reference behavior
func DefaultConfig() Config {
	return Config{
		Interval: constant.TickInterval,
		Backend:  constant.BackendANSI,
	}
}

// Validate rejects configurations the scheduler cannot run
func (c Config) Validate() error {
	if c.Interval <= 0 {
		return fmt.Errorf("tick interval must be positive, got %v", c.Interval)
	}
	switch c.Backend {
	case constant.BackendANSI, constant.BackendTcell:
	default:
		return fmt.Errorf("unknown backend %q", c.Backend)
	}
	return nil
}

// ResolveSeed returns the configured seed or one derived from now
func (c Config) ResolveSeed(now time.Time) uint64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return uint64(now.UnixNano())
}
