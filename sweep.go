package locus

import (
	"fmt"
	"math"
	"slices"
)

// GainSample is one point of a gain sweep: the gain K and the derived
// characteristic polynomial D + K·N.
type GainSample struct {
	// Index is the position of the sample in the sweep, starting at 0.
	Index int

	// K is the gain value.
	K float64

	// Characteristic is D + K·N for this gain.
	Characteristic Polynomial
}

// GainSweep produces gain samples in strictly increasing K order:
// kMin, kMin+step, …, with the final sample clamped to kMax (included even
// when it falls short of a full step). The sequence is lazy, finite and
// restartable.
//
// Extra gains (breakaway points) can be injected with Inject; they are
// merged into the sequence in order.
type GainSweep struct {
	tf    *TransferFunction
	kMin  float64
	kMax  float64
	step  float64
	extra []float64

	idx  int // index of the next emitted sample
	n    int // next step count on the linear grid
	e    int // next entry in extra
	done bool
}

// NewGainSweep creates a sweep over [kMin, kMax] with the given step.
// It returns ErrInvalidSweep unless step > 0, kMin <= kMax, and all bounds
// are finite.
func NewGainSweep(tf *TransferFunction, kMin, kMax, step float64) (*GainSweep, error) {
	if !isFinite(kMin) || !isFinite(kMax) || !isFinite(step) {
		return nil, fmt.Errorf("%w: non-finite bounds [%v, %v] step %v", ErrInvalidSweep, kMin, kMax, step)
	}
	if step <= 0 {
		return nil, fmt.Errorf("%w: step %v must be > 0", ErrInvalidSweep, step)
	}
	if kMin > kMax {
		return nil, fmt.Errorf("%w: kMin %v > kMax %v", ErrInvalidSweep, kMin, kMax)
	}
	return &GainSweep{tf: tf, kMin: kMin, kMax: kMax, step: step}, nil
}

// Inject merges extra gains into the sweep. Gains outside (kMin, kMax) are
// discarded; duplicates collapse. Inject resets the sweep.
func (g *GainSweep) Inject(gains ...float64) {
	for _, k := range gains {
		if k > g.kMin && k < g.kMax && isFinite(k) {
			g.extra = append(g.extra, k)
		}
	}
	slices.Sort(g.extra)
	g.extra = slices.Compact(g.extra)
	g.Reset()
}

// Reset rewinds the sweep to its first sample.
func (g *GainSweep) Reset() {
	g.idx, g.n, g.e = 0, 0, 0
	g.done = false
}

// Next returns the next sample, or ok=false when the sweep is exhausted.
func (g *GainSweep) Next() (sample GainSample, ok bool) {
	if g.done {
		return GainSample{}, false
	}

	lin := g.kMin + float64(g.n)*g.step
	if lin > g.kMax {
		lin = g.kMax
	}

	k := lin
	if g.e < len(g.extra) && g.extra[g.e] < lin {
		// Injected gain comes first.
		k = g.extra[g.e]
		g.e++
	} else {
		g.n++
		if g.e < len(g.extra) && g.extra[g.e] == lin {
			g.e++
		}
		if lin >= g.kMax {
			g.done = true
		}
	}

	sample = GainSample{
		Index:          g.idx,
		K:              k,
		Characteristic: g.tf.Characteristic(k),
	}
	g.idx++
	return sample, true
}

// isFinite reports whether x is neither infinite nor NaN.
func isFinite(x float64) bool {
	return !math.IsInf(x, 0) && !math.IsNaN(x)
}
