package locus

import "math"

// Zoom clamp range. Scales outside this range produce a degenerate (zero
// or infinite) view and are rejected by clamping.
const (
	minZoomScale = 1e-9
	maxZoomScale = 1e9
)

// fitMargin is the fraction of padding Fit adds around the locus bounds.
const fitMargin = 0.1

// ViewState is the camera's position in the complex plane: the point at the
// center of the viewport and the zoom scale in NDC units per complex unit
// along the imaginary axis.
type ViewState struct {
	Center complex128
	Scale  float64
}

// DefaultViewState centers slightly left of the origin, where the
// interesting part of a typical locus lives.
func DefaultViewState() ViewState {
	return ViewState{Center: complex(-0.5, 0), Scale: 1}
}

// Camera maps complex-plane coordinates to normalized device coordinates.
// It owns the pan/zoom state, which survives locus rebuilds and changes
// only through explicit pan, zoom and fit requests.
//
// The mapping preserves aspect ratio: one complex unit spans the same
// number of pixels horizontally and vertically.
type Camera struct {
	view   ViewState
	width  float64
	height float64
}

// NewCamera creates a camera for a viewport of the given pixel size.
func NewCamera(width, height int) *Camera {
	c := &Camera{view: DefaultViewState()}
	c.SetViewport(width, height)
	return c
}

// SetViewport updates the viewport pixel size on window resize.
// Non-positive dimensions are clamped to 1.
func (c *Camera) SetViewport(width, height int) {
	c.width = math.Max(float64(width), 1)
	c.height = math.Max(float64(height), 1)
}

// View returns the current view state.
func (c *Camera) View() ViewState { return c.view }

// SetView replaces the view state, clamping the scale to the valid range.
func (c *Camera) SetView(v ViewState) {
	c.view = v
	c.view.Scale = clampScale(c.view.Scale)
}

// aspect is the width/height ratio of the viewport.
func (c *Camera) aspect() float64 { return c.width / c.height }

// ToNDC maps a complex-plane point to normalized device coordinates.
// The viewport center maps to (0,0); x and y grow right and up.
func (c *Camera) ToNDC(z complex128) (x, y float64) {
	d := z - c.view.Center
	return real(d) * c.view.Scale / c.aspect(), imag(d) * c.view.Scale
}

// FromNDC maps normalized device coordinates back to the complex plane.
func (c *Camera) FromNDC(x, y float64) complex128 {
	return c.view.Center + complex(x*c.aspect()/c.view.Scale, y/c.view.Scale)
}

// Pan moves the view by a screen-space pixel delta, dragging the plot with
// the cursor: y grows downward in screen space.
func (c *Camera) Pan(dx, dy float64) {
	ndcX := 2 * dx / c.width
	ndcY := -2 * dy / c.height
	c.view.Center -= complex(ndcX*c.aspect()/c.view.Scale, ndcY/c.view.Scale)
}

// Zoom scales the view by the given multiplicative factor around an anchor
// point in NDC, so the complex-plane point under the anchor stays put.
// The resulting scale is clamped to a sane positive range; a non-positive
// or non-finite factor is ignored.
func (c *Camera) Zoom(factor float64, anchorX, anchorY float64) {
	if factor <= 0 || !isFinite(factor) {
		return
	}
	anchor := c.FromNDC(anchorX, anchorY)
	c.view.Scale = clampScale(c.view.Scale * factor)
	// Re-derive the center so the anchor's complex point maps back to the
	// same NDC position.
	c.view.Center = anchor - complex(anchorX*c.aspect()/c.view.Scale, anchorY/c.view.Scale)
}

// Fit centers and scales the view so every point of the frame fits the
// viewport with a 10% margin, preserving aspect ratio. Degenerate requests
// recover silently: an empty frame is ignored, and a zero-area bounding box
// (single point, or a purely horizontal/vertical locus) only recenters or
// fits along the non-degenerate axis.
func (c *Camera) Fit(frame *LocusFrame) {
	minRe, minIm, maxRe, maxIm, ok := frame.Bounds()
	if !ok {
		return
	}

	w := (maxRe - minRe) * (1 + fitMargin)
	h := (maxIm - minIm) * (1 + fitMargin)
	c.view.Center = complex((minRe+maxRe)/2, (minIm+maxIm)/2)

	if w <= 0 && h <= 0 {
		return
	}
	scale := math.Inf(1)
	if w > 0 {
		scale = 2 * c.aspect() / w
	}
	if h > 0 {
		scale = math.Min(scale, 2/h)
	}
	c.view.Scale = clampScale(scale)
}

func clampScale(s float64) float64 {
	if !isFinite(s) || s < minZoomScale {
		return minZoomScale
	}
	if s > maxZoomScale {
		return maxZoomScale
	}
	return s
}
