package app

import (
	"flag"
	"log/slog"

	"turmites/internal/catalog"
	"turmites/internal/langton"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Rules    string
	Rule     int
	Speed    int
	TPS      int
	Width    int
	Height   int
	CellSize int
	Panel    int
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Speed: 1, TPS: 60, Width: 1280, Height: 800, CellSize: 10, Panel: 240}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Rules, "rules", c.Rules, "YAML rule catalog (built-in presets when empty)")
	fs.IntVar(&c.Rule, "rule", c.Rule, "index of the initial rule")
	fs.IntVar(&c.Speed, "speed", c.Speed, "iterations per tick")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.IntVar(&c.Width, "width", c.Width, "window width in pixels")
	fs.IntVar(&c.Height, "height", c.Height, "window height in pixels")
	fs.IntVar(&c.CellSize, "cell", c.CellSize, "cell size in pixels at zoom 1")
	fs.IntVar(&c.Panel, "panel", c.Panel, "parameter panel width in pixels (0 hides it)")
}

// EngineConfig translates the flags into an engine configuration, loading the
// rule catalog when one was given.
func (c *Config) EngineConfig(logger *slog.Logger) (langton.Config, error) {
	cfg := langton.DefaultConfig()
	cfg.Logger = logger
	cfg.Rule = c.Rule
	cfg.Speed = c.Speed
	if c.Rules != "" {
		presets, err := catalog.Load(c.Rules)
		if err != nil {
			return cfg, err
		}
		cfg.Presets = presets
	}
	return cfg, nil
}
