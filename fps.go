package locus

import "time"

// fpsWindow is the number of frames the meter averages over.
const fpsWindow = 128

// FPSMeter tracks frame timings over a sliding window. The host calls Tick
// once per rendered frame; the summary feeds the window-title readout.
type FPSMeter struct {
	durations [fpsWindow]time.Duration
	idx       int
	count     int
	last      time.Time
}

// NewFPSMeter returns an empty meter. The window before the first Tick
// reports zero everywhere.
func NewFPSMeter() *FPSMeter { return &FPSMeter{} }

// Tick records the time since the previous Tick as one frame. The first
// call only arms the meter.
func (m *FPSMeter) Tick() {
	now := time.Now()
	if !m.last.IsZero() {
		m.Record(now.Sub(m.last))
	}
	m.last = now
}

// Record adds one frame duration to the window directly. Tick is the usual
// entry point; Record exists for hosts that measure frames themselves.
func (m *FPSMeter) Record(d time.Duration) {
	if d <= 0 {
		return
	}
	m.durations[m.idx] = d
	m.idx = (m.idx + 1) % fpsWindow
	if m.count < fpsWindow {
		m.count++
	}
}

// Last returns the most recent frame rate in frames per second.
func (m *FPSMeter) Last() float64 {
	if m.count == 0 {
		return 0
	}
	return toFPS(m.durations[(m.idx+fpsWindow-1)%fpsWindow])
}

// Min returns the lowest frame rate in the window, i.e. the worst frame.
func (m *FPSMeter) Min() float64 {
	if m.count == 0 {
		return 0
	}
	worst := time.Duration(0)
	for i := 0; i < m.count; i++ {
		if d := m.durations[i]; d > worst {
			worst = d
		}
	}
	return toFPS(worst)
}

// Avg returns the mean frame rate over the window.
func (m *FPSMeter) Avg() float64 {
	if m.count == 0 {
		return 0
	}
	var sum time.Duration
	for i := 0; i < m.count; i++ {
		sum += m.durations[i]
	}
	return toFPS(sum / time.Duration(m.count))
}

func toFPS(d time.Duration) float64 {
	if d <= 0 {
		return 0
	}
	return float64(time.Second) / float64(d)
}
