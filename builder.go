package locus

import (
	"fmt"
	"math"
	"sync/atomic"
	"time"
)

// Params are the inputs of a locus rebuild: the gain interval and step of
// the sweep, plus the solver precision.
type Params struct {
	// KMin and KMax bound the gain interval, KMin <= KMax.
	KMin float64
	KMax float64

	// Step is the gain increment between samples, > 0. "Interval" mode
	// adjusts this value.
	Step float64

	// Tolerance and MaxIterations configure the root solver. "Precision"
	// mode adjusts the tolerance.
	Tolerance     float64
	MaxIterations int
}

// DefaultParams returns the initial sweep parameters: gains 0 to 100 in
// steps of 0.5 at the default solver precision.
func DefaultParams() Params {
	cfg := DefaultSolverConfig()
	return Params{
		KMin:          0,
		KMax:          100,
		Step:          0.5,
		Tolerance:     cfg.Tolerance,
		MaxIterations: cfg.MaxIterations,
	}
}

func (p Params) validate() error {
	if p.Step <= 0 || p.KMin > p.KMax || !isFinite(p.KMin) || !isFinite(p.KMax) || !isFinite(p.Step) {
		return fmt.Errorf("%w: interval [%v, %v] step %v", ErrInvalidSweep, p.KMin, p.KMax, p.Step)
	}
	if p.Tolerance <= 0 || p.MaxIterations <= 0 {
		return fmt.Errorf("%w: tolerance %v, max iterations %d", ErrInvalidConfig, p.Tolerance, p.MaxIterations)
	}
	return nil
}

// LocusPoint is one (sample, branch) entry of a locus frame.
type LocusPoint struct {
	// Sample is the gain sample index.
	Sample int

	// Branch is the branch identity, stable across the sweep. Its palette
	// color is Branch % PaletteSize.
	Branch int

	// K is the sample's gain.
	K float64

	// Pos is the root position in the complex plane.
	Pos complex128
}

// LocusFrame is the authoritative snapshot of one full sweep. It is
// immutable once published and replaced wholesale by the next rebuild,
// never patched incrementally.
type LocusFrame struct {
	// Points holds Samples × Branches entries, sample-major: the point for
	// (sample s, branch b) is Points[s*Branches+b].
	Points []LocusPoint

	// Samples and Branches give the frame's dimensions.
	Samples  int
	Branches int

	// Unconverged counts the samples whose solve hit the iteration cap.
	// The jitter such samples produce in the plot is intentional: it is
	// how precision-induced instability is shown to the user.
	Unconverged int
}

// At returns the point for (sample, branch).
func (f *LocusFrame) At(sample, branch int) LocusPoint {
	return f.Points[sample*f.Branches+branch]
}

// Bounds returns the axis-aligned bounding box of every point in the frame.
// ok is false for an empty frame.
func (f *LocusFrame) Bounds() (minRe, minIm, maxRe, maxIm float64, ok bool) {
	if f == nil || len(f.Points) == 0 {
		return 0, 0, 0, 0, false
	}
	minRe, minIm = math.Inf(1), math.Inf(1)
	maxRe, maxIm = math.Inf(-1), math.Inf(-1)
	for _, p := range f.Points {
		minRe = math.Min(minRe, real(p.Pos))
		maxRe = math.Max(maxRe, real(p.Pos))
		minIm = math.Min(minIm, imag(p.Pos))
		maxIm = math.Max(maxIm, imag(p.Pos))
	}
	return minRe, minIm, maxRe, maxIm, true
}

// LocusBuilder orchestrates GainSweep, Solver and BranchTracker into locus
// frames for a fixed transfer function.
//
// Rebuilds are synchronous and run to completion; the finished frame is
// published atomically, so a consumer never observes a partial frame even
// if it reads from another goroutine. All other state is owned by the
// single UI thread.
type LocusBuilder struct {
	tf     *TransferFunction
	params Params

	frame atomic.Pointer[LocusFrame]
	dirty bool
}

// NewLocusBuilder creates a builder for the given transfer function.
// No frame exists until the first Rebuild.
func NewLocusBuilder(tf *TransferFunction, params Params) (*LocusBuilder, error) {
	if err := params.validate(); err != nil {
		return nil, err
	}
	return &LocusBuilder{tf: tf, params: params, dirty: true}, nil
}

// TransferFunction returns the transfer function being plotted.
func (b *LocusBuilder) TransferFunction() *TransferFunction { return b.tf }

// Params returns the current rebuild parameters.
func (b *LocusBuilder) Params() Params { return b.params }

// SetParams replaces the rebuild parameters and invalidates the cached
// frame. The frame itself is not recomputed until the next Rebuild or
// Frame call; until then CurrentFrame keeps returning the stale snapshot.
func (b *LocusBuilder) SetParams(p Params) error {
	if err := p.validate(); err != nil {
		return err
	}
	if p != b.params {
		b.params = p
		b.dirty = true
	}
	return nil
}

// Dirty reports whether the cached frame is stale with respect to the
// current parameters.
func (b *LocusBuilder) Dirty() bool { return b.dirty }

// CurrentFrame returns the last published frame without recomputing, or
// nil before the first successful rebuild.
func (b *LocusBuilder) CurrentFrame() *LocusFrame {
	return b.frame.Load()
}

// Frame returns a frame consistent with the current parameters, rebuilding
// first when the cache is stale. When a rebuild fails the previous good
// frame is returned and the error logged; the host keeps displaying the
// stale plot rather than crashing the session.
func (b *LocusBuilder) Frame() *LocusFrame {
	if b.dirty {
		if err := b.Rebuild(); err != nil {
			Logger().Warn("locus rebuild failed, keeping previous frame", "err", err)
		}
	}
	return b.frame.Load()
}

// Rebuild recomputes the whole sweep and publishes a new frame atomically.
// On error no frame is published and the previous one stays current.
func (b *LocusBuilder) Rebuild() error {
	start := time.Now()

	solver, err := NewSolver(SolverConfig{
		Tolerance:     b.params.Tolerance,
		MaxIterations: b.params.MaxIterations,
	})
	if err != nil {
		return err
	}

	sweep, err := NewGainSweep(b.tf, b.params.KMin, b.params.KMax, b.params.Step)
	if err != nil {
		return err
	}
	// Breakaway gains resolve the spots where branches meet or split;
	// injecting them keeps the plot crisp at coarse step sizes.
	sweep.Inject(b.tf.BreakawayGains(solver)...)
	solver.ResetJitter()

	tracker := NewBranchTracker()
	frame := &LocusFrame{}

	var prev RootSet
	branches := -1
	for {
		sample, ok := sweep.Next()
		if !ok {
			break
		}

		poly := sample.Characteristic
		if branches < 0 {
			branches = poly.Degree()
			if branches < 1 {
				return fmt.Errorf("%w: characteristic polynomial is constant", ErrInvalidTransferFunction)
			}
		}
		if poly.Degree() != branches {
			return fmt.Errorf("%w: degree %d at K=%v, expected %d",
				ErrInconsistentDegree, poly.Degree(), sample.K, branches)
		}

		var res Result
		if prev == nil {
			res, err = solver.Solve(poly)
		} else {
			res, err = solver.SolveWarm(poly, prev)
		}
		if err != nil {
			return fmt.Errorf("sample %d (K=%v): %w", sample.Index, sample.K, err)
		}
		if !res.Converged {
			frame.Unconverged++
		}

		assigned, err := tracker.Track(res.Roots)
		if err != nil {
			return fmt.Errorf("sample %d (K=%v): %w", sample.Index, sample.K, err)
		}
		prev = assigned

		for bIdx, pos := range assigned {
			frame.Points = append(frame.Points, LocusPoint{
				Sample: sample.Index,
				Branch: bIdx,
				K:      sample.K,
				Pos:    pos,
			})
		}
		frame.Samples++
	}
	frame.Branches = branches

	b.frame.Store(frame)
	b.dirty = false

	if frame.Unconverged > 0 {
		Logger().Warn("unconverged samples in sweep",
			"unconverged", frame.Unconverged, "samples", frame.Samples,
			"tolerance", b.params.Tolerance)
	}
	Logger().Debug("locus rebuilt",
		"samples", frame.Samples, "branches", frame.Branches,
		"elapsed", time.Since(start))
	return nil
}
