// Command turmite-run drives the engine without a window, optionally
// recording per-tick telemetry.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/dustin/go-humanize"

	"turmites/internal/catalog"
	"turmites/internal/core"
	"turmites/internal/langton"
	"turmites/internal/telemetry"
)

type options struct {
	rules     string
	rule      int
	speed     int
	ticks     int
	ants      int
	spread    int
	seed      int64
	tps       int
	telemetry string
	verbose   bool
}

func main() {
	opts := options{speed: 1, ticks: 1000, ants: 1, spread: 16, seed: 1}
	flag.StringVar(&opts.rules, "rules", opts.rules, "YAML rule catalog (built-in presets when empty)")
	flag.IntVar(&opts.rule, "rule", opts.rule, "index of the rule to run")
	flag.IntVar(&opts.speed, "speed", opts.speed, "iterations per tick")
	flag.IntVar(&opts.ticks, "steps", opts.ticks, "number of ticks to run")
	flag.IntVar(&opts.ants, "ants", opts.ants, "number of ants to place")
	flag.IntVar(&opts.spread, "spread", opts.spread, "half-width of the square ants are scattered in (0 stacks them at the origin)")
	flag.Int64Var(&opts.seed, "seed", opts.seed, "placement seed")
	flag.IntVar(&opts.tps, "tps", opts.tps, "ticks per second (0 runs unpaced)")
	flag.StringVar(&opts.telemetry, "telemetry", opts.telemetry, "write zstd-compressed tick reports to this file")
	flag.BoolVar(&opts.verbose, "v", opts.verbose, "log every tick")
	flag.Parse()

	level := slog.LevelInfo
	if opts.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if err := run(opts, logger); err != nil {
		log.Fatalf("turmite-run: %v", err)
	}
}

func run(opts options, logger *slog.Logger) error {
	cfg := langton.DefaultConfig()
	cfg.Logger = logger
	cfg.Speed = opts.speed
	cfg.Paused = false
	if opts.rules != "" {
		presets, err := catalog.Load(opts.rules)
		if err != nil {
			return err
		}
		cfg.Presets = presets
	}
	if opts.rule < 0 || opts.rule >= len(cfg.Presets) {
		return fmt.Errorf("rule %d out of range [0, %d)", opts.rule, len(cfg.Presets))
	}
	cfg.Rule = opts.rule

	engine, err := langton.New(cfg)
	if err != nil {
		return err
	}
	if err := scatter(engine, opts); err != nil {
		return err
	}

	var rec *telemetry.Recorder
	if opts.telemetry != "" {
		rec, err = telemetry.Create(opts.telemetry)
		if err != nil {
			return err
		}
		defer rec.Close()
		logger.Info("recording telemetry", "path", opts.telemetry, "run", rec.RunID())
	}

	pacer := core.NewFixedStep(opts.tps)
	start := time.Now()
	for tick := 0; tick < opts.ticks; {
		if !pacer.ShouldStep() {
			time.Sleep(pacer.Interval() / 4)
			continue
		}
		engine.Tick()
		tick++
		if rec != nil {
			if err := rec.Record(engine); err != nil {
				return err
			}
		}
		logger.Debug("tick", "tick", tick, "iteration", engine.Iteration(), "cells", engine.CellCount())
	}
	if rec != nil {
		if err := rec.Close(); err != nil {
			return err
		}
	}

	elapsed := time.Since(start)
	rate := 0.0
	if s := elapsed.Seconds(); s > 0 {
		rate = float64(engine.Iteration()) / s
	}
	fmt.Printf("rule:        %s\n", engine.Rule().Name())
	fmt.Printf("iterations:  %s\n", humanize.Comma(int64(engine.Iteration())))
	fmt.Printf("ants:        %s\n", humanize.Comma(int64(engine.AntCount())))
	fmt.Printf("cells:       %s\n", humanize.Comma(int64(engine.CellCount())))
	fmt.Printf("elapsed:     %s\n", elapsed.Round(time.Millisecond))
	fmt.Printf("rate:        %s it/s\n", humanize.CommafWithDigits(rate, 0))
	return nil
}

// scatter places opts.ants ants with random headings inside the spread
// square around the origin.
func scatter(e *langton.Engine, opts options) error {
	rng := core.NewRNG(opts.seed)
	area := core.Rect{MinX: -opts.spread, MaxX: opts.spread, MinY: -opts.spread, MaxY: opts.spread}
	for i := 0; i < opts.ants; i++ {
		dir, err := langton.DirectionFromIndex(rng.IntRange(0, 3))
		if err != nil {
			return err
		}
		e.AddAnt(langton.NewAnt(rng.PointIn(area), dir))
	}
	return nil
}
