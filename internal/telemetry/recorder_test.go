package telemetry

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"turmites/internal/core"
	"turmites/internal/langton"
)

func TestRecorderRoundTrip(t *testing.T) {
	cfg := langton.DefaultConfig()
	cfg.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg.Paused = false
	e, err := langton.New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	e.PlaceAnts(core.Point{})

	var buf bytes.Buffer
	rec, err := NewRecorder(&buf)
	if err != nil {
		t.Fatalf("NewRecorder: %v", err)
	}
	for i := 0; i < 3; i++ {
		e.Step(2)
		if err := rec.Record(e); err != nil {
			t.Fatalf("Record: %v", err)
		}
	}
	if err := rec.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := rec.Write(TickReport{}); err == nil {
		t.Fatal("write after close accepted")
	}

	reports, err := ReadAll(&buf)
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if len(reports) != 3 {
		t.Fatalf("got %d reports", len(reports))
	}
	last := reports[2]
	if last.RunID != rec.RunID() || last.Tick != 3 || last.Iteration != 6 || last.Delta != 2 {
		t.Fatalf("last report = %+v", last)
	}
	if last.Ants != 1 || last.Cells != e.CellCount() || last.Rule != "Classic" {
		t.Fatalf("last report = %+v", last)
	}
}

func TestCreateWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runs", "ticks.jsonl.zst")
	rec, err := Create(path)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := rec.Write(TickReport{Iteration: 9, Rule: "Brain"}); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := rec.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer f.Close()
	reports, err := ReadAll(f)
	if err != nil || len(reports) != 1 || reports[0].Iteration != 9 || reports[0].Tick != 1 {
		t.Fatalf("reports = %+v, err = %v", reports, err)
	}
}
