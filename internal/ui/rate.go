package ui

import "time"

// RateMeter turns per-tick iteration deltas into iterations per second,
// averaged over a sliding wall-clock window.
type RateMeter struct {
	window  time.Duration
	samples []rateSample
	total   int
}

type rateSample struct {
	at    time.Time
	delta int
}

// NewRateMeter returns a meter averaging over window.
func NewRateMeter(window time.Duration) *RateMeter {
	if window <= 0 {
		window = time.Second
	}
	return &RateMeter{window: window}
}

// Add records delta iterations performed at now.
func (m *RateMeter) Add(now time.Time, delta int) {
	m.samples = append(m.samples, rateSample{at: now, delta: delta})
	m.total += delta
	m.expire(now)
}

// Rate returns the iterations per second over the window ending at now.
func (m *RateMeter) Rate(now time.Time) float64 {
	m.expire(now)
	if len(m.samples) == 0 {
		return 0
	}
	return float64(m.total) / m.window.Seconds()
}

// Reset forgets every sample.
func (m *RateMeter) Reset() {
	m.samples = m.samples[:0]
	m.total = 0
}

func (m *RateMeter) expire(now time.Time) {
	cut := 0
	for cut < len(m.samples) && now.Sub(m.samples[cut].at) >= m.window {
		m.total -= m.samples[cut].delta
		cut++
	}
	if cut > 0 {
		m.samples = append(m.samples[:0], m.samples[cut:]...)
	}
}
