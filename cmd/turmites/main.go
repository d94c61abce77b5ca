//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"log/slog"
	"os"

	"turmites/internal/app"
	"turmites/internal/langton"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	ecfg, err := cfg.EngineConfig(logger)
	if err != nil {
		log.Fatal(err)
	}
	engine, err := langton.New(ecfg)
	if err != nil {
		log.Fatal(err)
	}

	game := app.New(engine, cfg.CellSize, cfg.Panel)

	ebiten.SetWindowTitle("turmites - " + engine.Rule().Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
