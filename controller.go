package locus

import "math"

// Mode selects what the scroll wheel adjusts. Switching cycles through the
// modes in declaration order.
type Mode int

const (
	// ModeZoom scales the view around the viewport center.
	ModeZoom Mode = iota

	// ModeInterval adjusts the gain step of the sweep.
	ModeInterval

	// ModePrecision adjusts the solver tolerance.
	ModePrecision

	numModes
)

// String returns the mode name as shown to the user.
func (m Mode) String() string {
	switch m {
	case ModeZoom:
		return "Zoom"
	case ModeInterval:
		return "Interval"
	case ModePrecision:
		return "Precision"
	}
	return "Unknown"
}

const (
	// zoomBase is the per-scroll-notch zoom factor.
	zoomBase = 1.05

	// stepBase is the per-scroll-notch multiplier for the gain step.
	stepBase = 1.25

	// minStep keeps the sweep from degenerating into millions of samples.
	minStep = 1e-6

	// minTolerance and maxTolerance bound what Precision mode may request.
	minTolerance = 1e-15
	maxTolerance = 1.0
)

// Controller routes user intents to the builder and camera. It is the single
// owner of the interaction mode; the host translates raw input events into
// Scroll, Drag, FitView and SwitchMode calls.
type Controller struct {
	builder *LocusBuilder
	camera  *Camera
	mode    Mode
}

// NewController wires a builder and camera together. The initial mode is
// ModeZoom.
func NewController(builder *LocusBuilder, camera *Camera) *Controller {
	return &Controller{builder: builder, camera: camera}
}

// Mode returns the active interaction mode.
func (c *Controller) Mode() Mode { return c.mode }

// SwitchMode advances to the next mode, wrapping Precision back to Zoom.
func (c *Controller) SwitchMode() Mode {
	c.mode = (c.mode + 1) % numModes
	Logger().Debug("mode switched", "mode", c.mode)
	return c.mode
}

// Scroll applies a wheel delta according to the active mode. Positive
// amounts zoom in, widen the gain step, or tighten the tolerance by a
// decade; negative amounts do the opposite. A zero amount is a no-op in
// every mode.
func (c *Controller) Scroll(amount float64) {
	if amount == 0 || !isFinite(amount) {
		return
	}
	switch c.mode {
	case ModeZoom:
		c.camera.Zoom(math.Pow(zoomBase, amount), 0, 0)
	case ModeInterval:
		p := c.builder.Params()
		p.Step = math.Max(p.Step*math.Pow(stepBase, amount), minStep)
		if err := c.builder.SetParams(p); err != nil {
			Logger().Warn("step adjust rejected", "step", p.Step, "err", err)
		}
	case ModePrecision:
		p := c.builder.Params()
		p.Tolerance = clampTolerance(p.Tolerance * math.Pow(10, -amount))
		if err := c.builder.SetParams(p); err != nil {
			Logger().Warn("tolerance adjust rejected", "tolerance", p.Tolerance, "err", err)
		}
	}
}

func clampTolerance(tol float64) float64 {
	return math.Min(math.Max(tol, minTolerance), maxTolerance)
}

// Drag pans the view by a pointer delta in pixels. Dragging is pan in every
// mode.
func (c *Controller) Drag(dx, dy float64) {
	c.camera.Pan(dx, dy)
}

// FitView frames the current locus in the viewport. Without a frame the
// view is left unchanged.
func (c *Controller) FitView() {
	c.camera.Fit(c.builder.Frame())
}

// Frame returns a frame consistent with the current parameters, rebuilding
// when needed.
func (c *Controller) Frame() *LocusFrame {
	return c.builder.Frame()
}

// Vertices flattens the current frame through the camera into GPU vertices
// plus one draw range per branch. Both are nil when no frame exists yet.
func (c *Controller) Vertices() ([]Vertex, []VertexRange) {
	frame := c.builder.Frame()
	return BuildVertices(frame, c.camera), BranchRanges(frame)
}
