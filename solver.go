package locus

import (
	"fmt"
	"math"
	"math/cmplx"
	"math/rand"
)

// Simultaneous polynomial root solver (Durand–Kerner iteration).
// Every approximation is updated with the polynomial value at that
// approximation divided by the product of its differences from all other
// current approximations, scaled by the leading coefficient.
//
// Built for interactive sweeps: warm starts from the previous gain sample's
// roots make each solve cheap, and an exhausted iteration cap degrades to
// best-effort roots instead of failing the frame.

// warmSeed seeds the deterministic jitter applied to warm-started guesses,
// so repeated rebuilds with unchanged inputs produce identical frames.
const warmSeed = 4343

// SolverConfig bounds a root solve.
type SolverConfig struct {
	// Tolerance is the convergence threshold: iteration stops once the
	// largest per-root update magnitude drops below it. Must be > 0.
	Tolerance float64

	// MaxIterations caps the iteration count. Reaching the cap is not an
	// error; the best current approximations are still returned with
	// Result.Converged = false. Must be > 0.
	MaxIterations int
}

// DefaultSolverConfig returns the configuration used when the host has not
// adjusted precision: 1e-6 tolerance, 100 iterations.
func DefaultSolverConfig() SolverConfig {
	return SolverConfig{Tolerance: 1e-6, MaxIterations: 100}
}

// RootSet is the ordered roots of one polynomial, with multiplicity.
// A RootSet is produced fresh per solve and never mutated afterwards.
type RootSet []complex128

// Clone returns an independent copy of the root set.
func (r RootSet) Clone() RootSet {
	out := make(RootSet, len(r))
	copy(out, r)
	return out
}

// Result carries the outcome of one solve.
type Result struct {
	// Roots holds exactly degree-many roots, best-effort when unconverged.
	Roots RootSet

	// Iterations is the number of simultaneous update rounds performed.
	Iterations int

	// Converged reports whether the maximum update magnitude dropped below
	// the tolerance before the iteration cap. An unconverged solve is the
	// expected outcome at extreme precision settings; the instability it
	// produces in the plot is the user-visible signal.
	Converged bool
}

// Solver finds all complex roots of a polynomial.
//
// A Solver is not safe for concurrent use; the core is single-threaded by
// design.
type Solver struct {
	cfg SolverConfig
	rng *rand.Rand
}

// NewSolver creates a solver, validating the configuration.
func NewSolver(cfg SolverConfig) (*Solver, error) {
	if cfg.Tolerance <= 0 {
		return nil, fmt.Errorf("%w: tolerance %v must be > 0", ErrInvalidConfig, cfg.Tolerance)
	}
	if cfg.MaxIterations <= 0 {
		return nil, fmt.Errorf("%w: max iterations %d must be > 0", ErrInvalidConfig, cfg.MaxIterations)
	}
	return &Solver{
		cfg: cfg,
		rng: rand.New(rand.NewSource(warmSeed)),
	}, nil
}

// Config returns the solver's configuration.
func (s *Solver) Config() SolverConfig { return s.cfg }

// Solve finds all roots of p, seeding approximations evenly on a circle
// whose radius is the mean of the lower and upper root-magnitude bounds.
// p must have degree >= 1.
func (s *Solver) Solve(p Polynomial) (Result, error) {
	n := p.Degree()
	if n < 1 {
		return Result{}, fmt.Errorf("%w: cannot solve degree %d polynomial", ErrInvalidConfig, n)
	}

	lo, hi := p.RootBounds()
	radius := (lo + hi) / 2
	if radius == 0 {
		radius = 1
	}

	seeds := make(RootSet, n)
	step := 2 * math.Pi / float64(n)
	for i := range seeds {
		// The fixed angular offset keeps seeds off the real axis, where
		// real-coefficient polynomials tend to stall.
		seeds[i] = cmplx.Rect(radius, float64(i)*step+0.5)
	}
	return s.SolveFrom(p, seeds)
}

// SolveFrom finds all roots of p starting from the given approximations.
// len(seeds) must equal the degree of p; the seeds slice is not mutated.
// Coincident seeds are pulled apart by a small symmetric perturbation
// before iterating, so the update denominator never starts at zero.
func (s *Solver) SolveFrom(p Polynomial, seeds RootSet) (Result, error) {
	n := p.Degree()
	if n < 1 {
		return Result{}, fmt.Errorf("%w: cannot solve degree %d polynomial", ErrInvalidConfig, n)
	}
	if len(seeds) != n {
		return Result{}, fmt.Errorf("%w: %d seeds for a degree %d polynomial", ErrInconsistentDegree, len(seeds), n)
	}

	guesses := seeds.Clone()
	separateDuplicates(guesses)

	lead := p.Leading()
	offsets := make([]complex128, n)

	iterations := 0
	converged := false
	for iterations < s.cfg.MaxIterations {
		iterations++

		maxOff := 0.0
		for k := range guesses {
			denom := lead
			for j, g := range guesses {
				if j != k {
					denom *= guesses[k] - g
				}
			}
			if denom == 0 {
				// Approximations collided mid-flight; nudge this one and
				// let the next round pull them apart.
				guesses[k] += complex(s.cfg.Tolerance, s.cfg.Tolerance)
				offsets[k] = 0
				maxOff = math.Max(maxOff, s.cfg.Tolerance)
				continue
			}
			off := p.Evaluate(guesses[k]) / denom
			offsets[k] = off
			maxOff = math.Max(maxOff, cmplx.Abs(off))
		}

		for k := range guesses {
			guesses[k] -= offsets[k]
		}

		if maxOff < s.cfg.Tolerance {
			converged = true
			break
		}
	}

	return Result{Roots: guesses, Iterations: iterations, Converged: converged}, nil
}

// SolveWarm perturbs the previous roots with small deterministic jitter and
// solves from there. The jitter keeps the iteration from stagnating when a
// gain step leaves approximations symmetric or coincident.
func (s *Solver) SolveWarm(p Polynomial, prev RootSet) (Result, error) {
	seeds := prev.Clone()
	for i := range seeds {
		seeds[i] += complex(0.01*s.rng.Float64(), 0.01*s.rng.Float64())
	}
	return s.SolveFrom(p, seeds)
}

// ResetJitter rewinds the warm-start jitter stream. The builder calls this
// at the start of every rebuild so unchanged inputs reproduce identical
// frames.
func (s *Solver) ResetJitter() {
	s.rng = rand.New(rand.NewSource(warmSeed))
}

// separateDuplicates applies a small symmetric perturbation to coincident
// approximations.
func separateDuplicates(guesses RootSet) {
	const eps = 1e-9
	for i := range guesses {
		for j := i + 1; j < len(guesses); j++ {
			if guesses[i] == guesses[j] {
				d := complex(eps*float64(j-i), eps*float64(j-i))
				guesses[i] += d
				guesses[j] -= d
			}
		}
	}
}
