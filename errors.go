package locus

import "errors"

// Sentinel errors returned by the core.
//
// Non-fatal conditions are deliberately not errors: a solve that hits its
// iteration cap still returns best-effort roots (Result.Converged reports
// it), and degenerate camera requests are clamped or ignored.
var (
	// ErrInvalidTransferFunction reports a denominator that is identically
	// zero, or a transfer function with no coefficients at all. Fatal at
	// load time, before any sweep runs.
	ErrInvalidTransferFunction = errors.New("locus: invalid transfer function")

	// ErrInconsistentDegree reports a root count that changed between
	// consecutive gain samples. With a fixed transfer function this
	// indicates a bug in characteristic-polynomial construction, so the
	// rebuild that observes it fails as a whole.
	ErrInconsistentDegree = errors.New("locus: root count changed between samples")

	// ErrInvalidSweep reports gain sweep bounds that violate the contract
	// step > 0, kMin <= kMax.
	ErrInvalidSweep = errors.New("locus: invalid gain sweep bounds")

	// ErrInvalidConfig reports a solver or builder configuration with a
	// non-positive tolerance or iteration cap.
	ErrInvalidConfig = errors.New("locus: invalid configuration")
)
