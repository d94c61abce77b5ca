package langton

import (
	"log/slog"
	"strconv"
)

// Config controls the initial parameters of an Engine.
type Config struct {
	// Presets is the rule catalog. Selection is by index into this list.
	Presets []Preset
	// Rule is the index of the initially selected preset.
	Rule int
	// Speed is the number of iterations Tick performs.
	Speed int
	// MaxCursor bounds each cursor axis.
	MaxCursor int
	// Paused is the initial pause state.
	Paused bool

	Logger *slog.Logger
}

// DefaultConfig returns the standard configuration: built-in presets, first
// rule selected, paused, speed 1 and a cursor of at most 10x10.
func DefaultConfig() Config {
	return Config{
		Presets:   DefaultPresets(),
		Speed:     1,
		MaxCursor: 10,
		Paused:    true,
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["speed"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Speed = parsed
		}
	}
	if v, ok := cfg["rule"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Rule = parsed
		}
	}
	if v, ok := cfg["max_cursor"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.MaxCursor = parsed
		}
	}
	if v, ok := cfg["paused"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Paused = parsed
		}
	}
	return c
}
