package locus

import (
	"errors"
	"math/cmplx"
	"testing"
)

func TestBranchTracker_FirstSampleIndexOrder(t *testing.T) {
	tr := NewBranchTracker()
	roots := RootSet{complex(1, 0), complex(2, 0), complex(3, 0)}
	got, err := tr.Track(roots)
	if err != nil {
		t.Fatal(err)
	}
	for i := range roots {
		if got[i] != roots[i] {
			t.Errorf("branch %d = %v, want %v (index order on first sample)", i, got[i], roots[i])
		}
	}
}

func TestBranchTracker_ReordersToNearest(t *testing.T) {
	tr := NewBranchTracker()
	if _, err := tr.Track(RootSet{complex(-1, 0), complex(1, 0)}); err != nil {
		t.Fatal(err)
	}

	// The solver hands the next sample's roots back in swapped order; the
	// tracker must restore branch identity by proximity.
	got, err := tr.Track(RootSet{complex(1.1, 0), complex(-0.9, 0)})
	if err != nil {
		t.Fatal(err)
	}
	if got[0] != complex(-0.9, 0) || got[1] != complex(1.1, 0) {
		t.Errorf("assignment = %v, want [(-0.9+0i) (1.1+0i)]", got)
	}
}

func TestBranchTracker_GreedyResolvesConflicts(t *testing.T) {
	tr := NewBranchTracker()
	if _, err := tr.Track(RootSet{complex(0, 0), complex(10, 0)}); err != nil {
		t.Fatal(err)
	}

	// Both current roots are nearer to branch 0's position than branch 1's;
	// greedy matching assigns the closest one and forces the other away.
	got, err := tr.Track(RootSet{complex(1, 0), complex(2, 0)})
	if err != nil {
		t.Fatal(err)
	}
	if got[0] != complex(1, 0) || got[1] != complex(2, 0) {
		t.Errorf("assignment = %v, want [(1+0i) (2+0i)]", got)
	}
}

func TestBranchTracker_ContinuousTrajectories(t *testing.T) {
	// Two branches drifting apart vertically, never crossing. Branch
	// trajectories must move by no more than one sample's drift per step,
	// whatever order the roots arrive in.
	tr := NewBranchTracker()
	const steps = 50
	const drift = 0.1

	prev := make([]RootSet, 0, steps)
	for i := 0; i < steps; i++ {
		y := drift * float64(i)
		roots := RootSet{complex(-1, -y), complex(1, y)}
		if i%3 == 1 {
			roots[0], roots[1] = roots[1], roots[0]
		}
		assigned, err := tr.Track(roots)
		if err != nil {
			t.Fatal(err)
		}
		prev = append(prev, assigned)
	}

	for i := 1; i < steps; i++ {
		for b := 0; b < 2; b++ {
			jump := cmplx.Abs(prev[i][b] - prev[i-1][b])
			if jump > drift*1.001 {
				t.Fatalf("branch %d jumps %v at sample %d, max single-step movement is %v", b, jump, i, drift)
			}
		}
	}
}

func TestBranchTracker_InconsistentDegree(t *testing.T) {
	tr := NewBranchTracker()
	if _, err := tr.Track(RootSet{1, 2, 3}); err != nil {
		t.Fatal(err)
	}
	_, err := tr.Track(RootSet{1, 2})
	if !errors.Is(err, ErrInconsistentDegree) {
		t.Errorf("Track with changed cardinality = %v, want ErrInconsistentDegree", err)
	}

	// The failed call must not corrupt the history.
	got, err := tr.Track(RootSet{complex(1.01, 0), complex(2.01, 0), complex(3.01, 0)})
	if err != nil {
		t.Fatalf("tracker unusable after rejected sample: %v", err)
	}
	if len(got) != 3 {
		t.Errorf("got %d branches, want 3", len(got))
	}
}

func TestBranchTracker_Reset(t *testing.T) {
	tr := NewBranchTracker()
	if _, err := tr.Track(RootSet{1, 2}); err != nil {
		t.Fatal(err)
	}
	tr.Reset()

	// After Reset the next sample may change cardinality and is assigned
	// by index order.
	roots := RootSet{complex(5, 1), complex(6, 2), complex(7, 3)}
	got, err := tr.Track(roots)
	if err != nil {
		t.Fatal(err)
	}
	for i := range roots {
		if got[i] != roots[i] {
			t.Errorf("branch %d = %v, want %v", i, got[i], roots[i])
		}
	}
}

func TestBranchTracker_InputNotMutated(t *testing.T) {
	tr := NewBranchTracker()
	if _, err := tr.Track(RootSet{complex(-1, 0), complex(1, 0)}); err != nil {
		t.Fatal(err)
	}
	in := RootSet{complex(1.1, 0), complex(-0.9, 0)}
	orig := in.Clone()
	if _, err := tr.Track(in); err != nil {
		t.Fatal(err)
	}
	for i := range in {
		if in[i] != orig[i] {
			t.Errorf("Track mutated its input at %d: %v != %v", i, in[i], orig[i])
		}
	}
}
