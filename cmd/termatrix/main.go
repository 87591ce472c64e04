package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/termatrix/constant"
	"github.com/lixenwraith/termatrix/core"
	"github.com/lixenwraith/termatrix/engine"
	"github.com/lixenwraith/termatrix/glyph"
	"github.com/lixenwraith/termatrix/input"
	"github.com/lixenwraith/termatrix/terminal"
)

var (
	intervalFlag = flag.Duration("interval", constant.TickInterval, "Render tick interval")
	seedFlag     = flag.Uint64("seed", 0, "Random seed, 0 derives one from the clock")
	backendFlag  = flag.String("backend", constant.BackendANSI, "Render backend: ansi, tcell")
	debugFlag    = flag.Bool("debug", false, "Write a debug log under logs/")
)

func main() {
	// Panic Recovery: Ensure terminal is reset even if the animation crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()

	cfg := engine.DefaultConfig()
	cfg.Interval = *intervalFlag
	cfg.Seed = *seedFlag
	cfg.Backend = *backendFlag
	cfg.Debug = *debugFlag

	os.Exit(run(cfg))
}

// run wires the animation and blocks until interrupted, returning the exit status
func run(cfg engine.Config) int {
	if logFile := setupLogging(cfg.Debug); logFile != nil {
		defer logFile.Close()
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		return 1
	}

	surface, err := openSurface(cfg.Backend)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		return 1
	}
	core.SetCrashCleanup(func() {
		surface.Close()
		terminal.EmergencyReset(os.Stdout)
	})

	seed := cfg.ResolveSeed(time.Now())
	rng := core.NewFastRand(seed)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var source glyph.Source
	if input.IsPiped(os.Stdin) {
		ring := input.NewRing(constant.RingCapacity)
		source = glyph.NewBuffered(ring)
		core.Go(func() {
			if err := input.Ingest(ctx, os.Stdin, ring); err != nil {
				log.Printf("input: ingestion stopped: %v", err)
			}
		})
		log.Printf("main: piped mode")
	} else {
		source = glyph.NewRandom(rng)
		log.Printf("main: random mode")
	}

	driver := engine.NewDriver(surface, source, rng)
	if err := driver.Reset(); err != nil {
		surface.Close()
		log.Printf("main: terminal geometry: %v", err)
		if cfg.Debug {
			fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		}
		return 1
	}

	rows, cols := driver.Geometry()
	log.Printf("main: %dx%d backend=%s interval=%v seed=%d", cols, rows, cfg.Backend, cfg.Interval, seed)

	scheduler := engine.NewScheduler(driver, surface.Events(), cfg.Interval)
	if err := scheduler.Run(ctx); err != nil {
		log.Printf("main: scheduler: %v", err)
	}

	ticks, resizes, flushErrors := scheduler.Stats()
	log.Printf("main: exiting after %d ticks, %d resizes, %d failed flushes", ticks, resizes, flushErrors)

	if _, err := driver.Shutdown(os.Stdout); err != nil {
		log.Printf("main: shutdown: %v", err)
	}
	return 0
}

// openSurface creates the render surface for backend
func openSurface(backend string) (terminal.Surface, error) {
	switch backend {
	case constant.BackendTcell:
		screen, err := tcell.NewScreen()
		if err != nil {
			return nil, fmt.Errorf("create tcell screen: %w", err)
		}
		sc, err := terminal.NewScreen(screen)
		if err != nil {
			return nil, err
		}
		return sc, nil
	default:
		s := terminal.NewANSI(os.Stdout, terminal.TTYSize)
		s.WatchResize()
		return s, nil
	}
}
