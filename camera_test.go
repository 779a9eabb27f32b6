package locus

import (
	"math"
	"testing"
)

func frameFromPositions(positions []complex128) *LocusFrame {
	f := &LocusFrame{Samples: len(positions), Branches: 1}
	for i, p := range positions {
		f.Points = append(f.Points, LocusPoint{Sample: i, Pos: p})
	}
	return f
}

func TestCamera_ToNDCCenter(t *testing.T) {
	c := NewCamera(800, 600)
	c.SetView(ViewState{Center: complex(2, -1), Scale: 1})
	x, y := c.ToNDC(complex(2, -1))
	if x != 0 || y != 0 {
		t.Errorf("center maps to (%v,%v), want (0,0)", x, y)
	}
}

func TestCamera_ToNDCPreservesAspect(t *testing.T) {
	c := NewCamera(800, 400) // aspect 2
	c.SetView(ViewState{Center: 0, Scale: 1})

	// One complex unit right and one up must span the same pixel count:
	// NDC x is halved relative to NDC y at aspect 2.
	x, _ := c.ToNDC(complex(1, 0))
	_, y := c.ToNDC(complex(0, 1))
	if math.Abs(x-0.5) > 1e-12 || math.Abs(y-1) > 1e-12 {
		t.Errorf("unit offsets map to x=%v y=%v, want x=0.5 y=1", x, y)
	}
}

func TestCamera_FromNDCRoundTrip(t *testing.T) {
	c := NewCamera(1024, 768)
	c.SetView(ViewState{Center: complex(-0.5, 0.25), Scale: 3})

	for _, z := range []complex128{0, complex(1, 2), complex(-4, -0.5)} {
		x, y := c.ToNDC(z)
		back := c.FromNDC(x, y)
		if math.Abs(real(back-z)) > 1e-12 || math.Abs(imag(back-z)) > 1e-12 {
			t.Errorf("round trip of %v = %v", z, back)
		}
	}
}

func TestCamera_PanFollowsCursor(t *testing.T) {
	c := NewCamera(800, 600)
	c.SetView(ViewState{Center: 0, Scale: 1})
	before := c.View().Center

	// Dragging right moves the view center left, so the plot follows the
	// cursor; dragging down moves the center up (screen y is flipped).
	c.Pan(80, 60)
	after := c.View().Center
	if real(after) >= real(before) {
		t.Errorf("drag right: center moved from %v to %v, want left", before, after)
	}
	if imag(after) <= imag(before) {
		t.Errorf("drag down: center moved from %v to %v, want up", before, after)
	}
}

func TestCamera_PanRoundTrip(t *testing.T) {
	c := NewCamera(800, 600)
	c.SetView(ViewState{Center: complex(1, 1), Scale: 2})
	orig := c.View()

	c.Pan(37, -12)
	c.Pan(-37, 12)
	got := c.View()
	if math.Abs(real(got.Center-orig.Center)) > 1e-12 || math.Abs(imag(got.Center-orig.Center)) > 1e-12 {
		t.Errorf("opposite pans do not cancel: %v vs %v", got.Center, orig.Center)
	}
}

func TestCamera_ZoomMultiplicative(t *testing.T) {
	c := NewCamera(800, 600)
	c.SetView(ViewState{Center: 0, Scale: 1})

	c.Zoom(2, 0, 0)
	c.Zoom(2, 0, 0)
	if got := c.View().Scale; math.Abs(got-4) > 1e-12 {
		t.Errorf("scale after two 2x zooms = %v, want 4", got)
	}
}

func TestCamera_ZoomKeepsAnchorFixed(t *testing.T) {
	c := NewCamera(800, 600)
	c.SetView(ViewState{Center: complex(-0.5, 0), Scale: 1})

	const ax, ay = 0.5, -0.25
	anchor := c.FromNDC(ax, ay)
	c.Zoom(1.8, ax, ay)
	after := c.FromNDC(ax, ay)
	if math.Abs(real(after-anchor)) > 1e-9 || math.Abs(imag(after-anchor)) > 1e-9 {
		t.Errorf("anchor moved from %v to %v during zoom", anchor, after)
	}
}

func TestCamera_ZoomClamped(t *testing.T) {
	c := NewCamera(800, 600)

	for i := 0; i < 200; i++ {
		c.Zoom(10, 0, 0)
	}
	if got := c.View().Scale; got > maxZoomScale {
		t.Errorf("scale %v exceeds clamp %v", got, maxZoomScale)
	}
	for i := 0; i < 400; i++ {
		c.Zoom(0.1, 0, 0)
	}
	if got := c.View().Scale; got < minZoomScale {
		t.Errorf("scale %v below clamp %v", got, minZoomScale)
	}
}

func TestCamera_ZoomIgnoresDegenerateFactor(t *testing.T) {
	c := NewCamera(800, 600)
	orig := c.View()
	for _, f := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		c.Zoom(f, 0, 0)
		if c.View() != orig {
			t.Errorf("Zoom(%v) changed the view", f)
		}
	}
}

func TestCamera_FitContainsAllPoints(t *testing.T) {
	// Locus spanning x in [-5,5], y in [-3,3].
	f := frameFromPositions([]complex128{
		complex(-5, -3), complex(5, 3), complex(-5, 3), complex(5, -3), complex(0, 0),
	})

	c := NewCamera(800, 600)
	c.Fit(f)

	for _, p := range f.Points {
		x, y := c.ToNDC(p.Pos)
		if x < -1 || x > 1 || y < -1 || y > 1 {
			t.Errorf("point %v maps off-screen to (%v,%v)", p.Pos, x, y)
		}
	}

	// The margin must be visible: the extreme points stay strictly inside.
	x, _ := c.ToNDC(complex(5, 3))
	if x >= 1 {
		t.Errorf("fit left no margin: extreme point at NDC x=%v", x)
	}
}

func TestCamera_FitCentersBox(t *testing.T) {
	f := frameFromPositions([]complex128{complex(2, 1), complex(6, 5)})
	c := NewCamera(640, 480)
	c.Fit(f)
	if got := c.View().Center; got != complex(4, 3) {
		t.Errorf("center = %v, want (4+3i)", got)
	}
}

func TestCamera_FitDegenerateRecovers(t *testing.T) {
	c := NewCamera(800, 600)
	orig := c.View()

	// Empty frame: request ignored entirely.
	c.Fit(&LocusFrame{})
	if c.View() != orig {
		t.Error("fit of an empty frame changed the view")
	}

	// Single point: recenter only, scale untouched.
	c.Fit(frameFromPositions([]complex128{complex(3, -2)}))
	if got := c.View(); got.Center != complex(3, -2) || got.Scale != orig.Scale {
		t.Errorf("single-point fit = %+v, want recenter at (3-2i) with scale %v", got, orig.Scale)
	}

	// Purely horizontal locus: fit along the real axis only.
	c.Fit(frameFromPositions([]complex128{complex(-10, 1), complex(10, 1)}))
	for _, z := range []complex128{complex(-10, 1), complex(10, 1)} {
		x, y := c.ToNDC(z)
		if x < -1 || x > 1 || y != 0 {
			t.Errorf("point %v maps to (%v,%v) after horizontal fit", z, x, y)
		}
	}
}
