package locus

import (
	"fmt"
	"math/cmplx"
	"sort"
)

// BranchTracker assigns consistent branch identities to the roots of
// consecutive gain samples. Sample i's unordered roots are matched against
// sample i-1's assigned roots by greedy nearest-first pairing: the smallest
// remaining pairwise distance is committed first, then both ends are removed
// from consideration. This is a deliberate O(n²) approximation of optimal
// assignment; branch crossings are visually rare, and a mismatch at a
// crossing costs only a momentary color swap.
//
// The first tracked sample has no predecessor and is assigned in index
// order: root i becomes branch i.
type BranchTracker struct {
	prev RootSet
}

// NewBranchTracker returns a tracker with no assignment history.
func NewBranchTracker() *BranchTracker {
	return &BranchTracker{}
}

// Reset discards the assignment history, so the next Track call assigns
// branches by index order again.
func (t *BranchTracker) Reset() {
	t.prev = nil
}

// Track orders the given roots so that index b continues branch b from the
// previous call. The input is not mutated; the returned RootSet becomes the
// reference for the next call.
//
// Track returns ErrInconsistentDegree when the root count differs from the
// previous sample's. The tracker's history is left untouched in that case.
func (t *BranchTracker) Track(roots RootSet) (RootSet, error) {
	if t.prev == nil {
		assigned := roots.Clone()
		t.prev = assigned
		return assigned, nil
	}
	if len(roots) != len(t.prev) {
		return nil, fmt.Errorf("%w: %d roots after %d", ErrInconsistentDegree, len(roots), len(t.prev))
	}

	n := len(roots)
	type pair struct {
		dist   float64
		branch int
		root   int
	}
	pairs := make([]pair, 0, n*n)
	for b, p := range t.prev {
		for r, c := range roots {
			pairs = append(pairs, pair{dist: cmplx.Abs(c - p), branch: b, root: r})
		}
	}
	sort.Slice(pairs, func(i, j int) bool { return pairs[i].dist < pairs[j].dist })

	assigned := make(RootSet, n)
	branchTaken := make([]bool, n)
	rootTaken := make([]bool, n)
	remaining := n
	for _, p := range pairs {
		if remaining == 0 {
			break
		}
		if branchTaken[p.branch] || rootTaken[p.root] {
			continue
		}
		assigned[p.branch] = roots[p.root]
		branchTaken[p.branch] = true
		rootTaken[p.root] = true
		remaining--
	}

	t.prev = assigned
	return assigned, nil
}
