// Command locusdemo runs a headless root-locus session: it sweeps the gain
// of a transfer function, renders the branches with the software renderer
// and reports solver and frame statistics.
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/gogpu/locus"
	"github.com/gogpu/locus/render"
)

func main() {
	var (
		width   = flag.Int("width", 800, "viewport width")
		height  = flag.Int("height", 600, "viewport height")
		zeros   = flag.String("zeros", "-1,-2", "open-loop zeros, comma-separated complex values")
		poles   = flag.String("poles", "0,-0.5,-3", "open-loop poles, comma-separated complex values")
		kmin    = flag.Float64("kmin", 0, "minimum gain")
		kmax    = flag.Float64("kmax", 100, "maximum gain")
		step    = flag.Float64("step", 0.5, "gain step")
		tol     = flag.Float64("tol", 1e-6, "solver tolerance")
		iters   = flag.Int("iters", 100, "solver iteration cap")
		frames  = flag.Int("frames", 60, "frames to simulate")
		verbose = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	if *verbose {
		locus.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	num, err := parseRoots(*zeros)
	if err != nil {
		log.Fatalf("invalid -zeros: %v", err)
	}
	den, err := parseRoots(*poles)
	if err != nil {
		log.Fatalf("invalid -poles: %v", err)
	}

	tf, err := locus.NewTransferFunction(
		locus.FromPoleZeros(1, num),
		locus.FromPoleZeros(1, den),
	)
	if err != nil {
		log.Fatalf("transfer function: %v", err)
	}

	builder, err := locus.NewLocusBuilder(tf, locus.Params{
		KMin: *kmin, KMax: *kmax, Step: *step,
		Tolerance: *tol, MaxIterations: *iters,
	})
	if err != nil {
		log.Fatalf("builder: %v", err)
	}

	camera := locus.NewCamera(*width, *height)
	ctrl := locus.NewController(builder, camera)
	renderer := render.NewSoftwareRenderer()
	target := render.NewPixmapTarget(*width, *height)
	meter := locus.NewFPSMeter()

	ctrl.FitView()

	frame := ctrl.Frame()
	log.Printf("locus: %d branches, %d samples, %d unconverged",
		frame.Branches, frame.Samples, frame.Unconverged)

	// Simulate an interactive session: pan, zoom, then tighten the step
	// and precision, re-rendering every frame.
	meter.Tick()
	for i := 0; i < *frames; i++ {
		switch {
		case i == *frames/3:
			ctrl.SwitchMode() // Interval
			ctrl.Scroll(-1)
		case i == 2*(*frames)/3:
			ctrl.SwitchMode() // Precision
			ctrl.Scroll(1)
		case i%7 == 0:
			ctrl.Drag(3, -2)
		case i%5 == 0 && ctrl.Mode() == locus.ModeZoom:
			ctrl.Scroll(0.5)
		}

		verts, ranges := ctrl.Vertices()
		if err := renderer.Render(target, verts, ranges); err != nil {
			log.Fatalf("render: %v", err)
		}
		meter.Tick()
	}

	frame = ctrl.Frame()
	log.Printf("final: %d samples at step %g, tolerance %g",
		frame.Samples, builder.Params().Step, builder.Params().Tolerance)
	log.Printf("fps: last %.0f, min %.0f, avg %.0f", meter.Last(), meter.Min(), meter.Avg())
}

// parseRoots parses a comma-separated list of complex values. Plain reals
// ("-0.5") and Go complex literals ("-2+1i") are both accepted; an empty
// string is an empty root list.
func parseRoots(s string) ([]complex128, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	roots := make([]complex128, 0, len(parts))
	for _, part := range parts {
		c, err := strconv.ParseComplex(strings.TrimSpace(part), 128)
		if err != nil {
			return nil, err
		}
		roots = append(roots, c)
	}
	return roots, nil
}
