// Package telemetry records per-tick engine statistics as zstd-compressed
// JSON lines.
package telemetry

import (
	"bufio"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
	"github.com/klauspost/compress/zstd"

	"turmites/internal/langton"
)

// TickReport is one line of a telemetry stream.
type TickReport struct {
	RunID     string `json:"run_id"`
	Tick      uint64 `json:"tick"`
	Iteration uint64 `json:"iteration"`
	Delta     int    `json:"delta"`
	Ants      int    `json:"ants"`
	Cells     int    `json:"cells"`
	Rule      string `json:"rule"`
}

// Recorder appends TickReports to a compressed stream. Every report carries
// the recorder's run id and a tick number counted from 1.
type Recorder struct {
	runID string

	mu     sync.Mutex
	tick   uint64
	closer io.Closer
	enc    *zstd.Encoder
	w      *bufio.Writer
}

// Create opens path for writing, creating parent directories as needed.
func Create(path string) (*Recorder, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return nil, err
	}
	r, err := NewRecorder(f)
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	r.closer = f
	return r, nil
}

// NewRecorder writes to w. Closing the recorder does not close w.
func NewRecorder(w io.Writer) (*Recorder, error) {
	enc, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedFastest))
	if err != nil {
		return nil, err
	}
	return &Recorder{
		runID: uuid.NewString(),
		enc:   enc,
		w:     bufio.NewWriterSize(enc, 64*1024),
	}, nil
}

// RunID identifies the stream.
func (r *Recorder) RunID() string { return r.runID }

// Record samples the engine and writes one report.
func (r *Recorder) Record(e *langton.Engine) error {
	return r.Write(TickReport{
		Iteration: e.Iteration(),
		Delta:     e.LastDelta(),
		Ants:      e.AntCount(),
		Cells:     e.CellCount(),
		Rule:      e.Rule().Name(),
	})
}

// Write stamps rep with the run id and next tick number and appends it.
func (r *Recorder) Write(rep TickReport) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.w == nil {
		return errors.New("telemetry: recorder closed")
	}
	r.tick++
	rep.RunID = r.runID
	rep.Tick = r.tick

	b, err := json.Marshal(rep)
	if err != nil {
		return err
	}
	if _, err := r.w.Write(b); err != nil {
		return err
	}
	return r.w.WriteByte('\n')
}

// Close flushes the stream and closes the underlying file if Create opened it.
func (r *Recorder) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.w == nil {
		return nil
	}
	err := r.w.Flush()
	if cerr := r.enc.Close(); err == nil {
		err = cerr
	}
	if r.closer != nil {
		if cerr := r.closer.Close(); err == nil {
			err = cerr
		}
	}
	r.w = nil
	return err
}

// ReadAll decodes every report from a compressed stream.
func ReadAll(src io.Reader) ([]TickReport, error) {
	dec, err := zstd.NewReader(src)
	if err != nil {
		return nil, err
	}
	defer dec.Close()

	var out []TickReport
	sc := bufio.NewScanner(dec)
	for sc.Scan() {
		var rep TickReport
		if err := json.Unmarshal(sc.Bytes(), &rep); err != nil {
			return out, err
		}
		out = append(out, rep)
	}
	return out, sc.Err()
}
