package app

import (
	"flag"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

func TestConfigBind(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("turmites", flag.ContinueOnError)
	cfg.Bind(fs)
	if err := fs.Parse([]string{"-rule", "2", "-speed", "8", "-cell", "4", "-panel", "0"}); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Rule != 2 || cfg.Speed != 8 || cfg.CellSize != 4 || cfg.Panel != 0 || cfg.TPS != 60 {
		t.Fatalf("config = %+v", cfg)
	}

	ec, err := cfg.EngineConfig(slog.New(slog.NewTextHandler(io.Discard, nil)))
	if err != nil {
		t.Fatalf("EngineConfig: %v", err)
	}
	if ec.Rule != 2 || ec.Speed != 8 || len(ec.Presets) != 11 {
		t.Fatalf("engine config = %+v", ec)
	}
}

func TestEngineConfigLoadsCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yaml")
	data := "rules:\n  - name: Only\n    turns: LLRR\n    start: '#000000'\n    end: '#FFFFFF'\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	cfg := NewConfig()
	cfg.Rules = path
	ec, err := cfg.EngineConfig(nil)
	if err != nil {
		t.Fatalf("EngineConfig: %v", err)
	}
	if len(ec.Presets) != 1 || ec.Presets[0].Turns != "LLRR" {
		t.Fatalf("presets = %+v", ec.Presets)
	}

	cfg.Rules = filepath.Join(t.TempDir(), "missing.yaml")
	if _, err := cfg.EngineConfig(nil); err == nil {
		t.Fatal("missing catalog accepted")
	}
}
