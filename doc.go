// Package locus computes and prepares root-locus plots for rendering.
//
// # Overview
//
// locus traces the roots of the characteristic polynomial D(s) + K·N(s)
// of a linear system as the real gain K sweeps an interval. The result is
// a set of colored branches in the complex plane, delivered as a vertex
// buffer ready for GPU point/line rasterization through the GoGPU stack.
//
// # Quick Start
//
//	import "github.com/gogpu/locus"
//
//	num := locus.FromPoleZeros(1, []complex128{-1, -2, -2.5})
//	den := locus.FromPoleZeros(1, []complex128{0, 0, -0.5})
//
//	tf, err := locus.NewTransferFunction(num, den)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	builder, _ := locus.NewLocusBuilder(tf, locus.DefaultParams())
//	if err := builder.Rebuild(); err != nil {
//	    log.Fatal(err)
//	}
//
//	cam := locus.NewCamera(800, 600)
//	cam.Fit(builder.CurrentFrame())
//	verts := locus.BuildVertices(builder.CurrentFrame(), cam)
//
// # Architecture
//
// The library is organized into:
//   - Core: Polynomial, TransferFunction, Solver, GainSweep, BranchTracker,
//     LocusBuilder, Camera, Controller
//   - render/: the host integration boundary (device handles, renderers)
//   - backend/wgpu/: the WebGPU line pipeline via gogpu/wgpu
//
// The core is single-threaded and frame-driven: a parameter change marks the
// cached LocusFrame dirty, and the next render tick rebuilds it to completion
// before anything is drawn. Frames are replaced wholesale; a torn frame is
// never observable.
//
// # Coordinate System
//
// Branch positions live in the complex plane (real axis right, imaginary
// axis up). The Camera maps them to normalized device coordinates, the
// [-1,1]² space consumed by the renderer.
package locus
