// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"errors"
	"image"
	"image/color"
	"math"

	"golang.org/x/image/vector"

	"github.com/gogpu/locus"
)

// defaultLineWidth is the stroke width of locus branches in pixels.
const defaultLineWidth = 1.5

// SoftwareRenderer is a CPU-based renderer drawing locus line strips with
// golang.org/x/image/vector.
//
// Each branch is stroked as a chain of quads and filled with anti-aliased
// coverage, one rasterizer pass per branch. This is the fallback for hosts
// without a GPU and the workhorse of golden-image tests.
//
// Example:
//
//	renderer := render.NewSoftwareRenderer()
//	target := render.NewPixmapTarget(800, 600)
//
//	verts, ranges := controller.Vertices()
//	renderer.Render(target, verts, ranges)
type SoftwareRenderer struct {
	// Background is the clear color. The zero value of the renderer uses
	// the dark plot background.
	Background color.RGBA

	// LineWidth is the stroke width in pixels.
	LineWidth float64

	// ras is reused between frames.
	ras *vector.Rasterizer

	lastWidth, lastHeight int
}

// NewSoftwareRenderer creates a new CPU-based line renderer.
func NewSoftwareRenderer() *SoftwareRenderer {
	return &SoftwareRenderer{
		Background: color.RGBA{R: 12, G: 12, B: 16, A: 255},
		LineWidth:  defaultLineWidth,
	}
}

// Render clears the target and draws each branch range as a line strip;
// a single-vertex range draws as a dot.
//
// Returns an error for a nil target or one without CPU pixel access.
func (r *SoftwareRenderer) Render(target RenderTarget, verts []locus.Vertex, ranges []locus.VertexRange) error {
	if target == nil {
		return errors.New("render: nil target")
	}
	if target.Pixels() == nil {
		return errors.New("render: target does not support CPU rendering")
	}

	width := target.Width()
	height := target.Height()
	if width <= 0 || height <= 0 {
		return nil
	}

	dst := &image.RGBA{
		Pix:    target.Pixels(),
		Stride: target.Stride(),
		Rect:   image.Rect(0, 0, width, height),
	}
	clearImage(dst, r.Background)

	r.ensureRasterizer(width, height)
	for _, rng := range ranges {
		if int(rng.Start)+int(rng.Count) > len(verts) || rng.Count < 1 {
			continue
		}
		strip := verts[rng.Start : rng.Start+rng.Count]
		r.strokeStrip(dst, strip)
	}
	return nil
}

// Flush is a no-op: software rendering is synchronous.
func (r *SoftwareRenderer) Flush() error { return nil }

func (r *SoftwareRenderer) ensureRasterizer(width, height int) {
	if r.ras == nil || r.lastWidth != width || r.lastHeight != height {
		r.ras = vector.NewRasterizer(width, height)
		r.lastWidth = width
		r.lastHeight = height
	}
}

// strokeStrip rasterizes one branch as a chain of segment quads and fills
// them with the branch's palette color in a single coverage pass. A
// single-vertex strip (one gain sample) draws as a dot instead of vanishing.
func (r *SoftwareRenderer) strokeStrip(dst *image.RGBA, strip []locus.Vertex) {
	r.ras.Reset(r.lastWidth, r.lastHeight)

	half := r.LineWidth / 2
	if half <= 0 {
		half = defaultLineWidth / 2
	}

	if len(strip) == 1 {
		x, y := r.toPixel(strip[0].Position)
		d := math.Max(half, 1)
		r.ras.MoveTo(float32(x-d), float32(y-d))
		r.ras.LineTo(float32(x+d), float32(y-d))
		r.ras.LineTo(float32(x+d), float32(y+d))
		r.ras.LineTo(float32(x-d), float32(y+d))
		r.ras.ClosePath()
	}

	for i := 0; i+1 < len(strip); i++ {
		x0, y0 := r.toPixel(strip[i].Position)
		x1, y1 := r.toPixel(strip[i+1].Position)

		dx, dy := x1-x0, y1-y0
		length := math.Hypot(dx, dy)
		if length == 0 {
			continue
		}
		// Perpendicular offset of half the stroke width.
		nx := -dy / length * half
		ny := dx / length * half

		r.ras.MoveTo(float32(x0+nx), float32(y0+ny))
		r.ras.LineTo(float32(x1+nx), float32(y1+ny))
		r.ras.LineTo(float32(x1-nx), float32(y1-ny))
		r.ras.LineTo(float32(x0-nx), float32(y0-ny))
		r.ras.ClosePath()
	}

	src := image.NewUniform(paletteRGBA(strip[0].ColorIndex))
	r.ras.Draw(dst, dst.Rect, src, image.Point{})
}

// toPixel maps an NDC position to pixel coordinates, y flipped.
func (r *SoftwareRenderer) toPixel(pos [2]float32) (x, y float64) {
	x = (float64(pos[0]) + 1) / 2 * float64(r.lastWidth)
	y = (1 - float64(pos[1])) / 2 * float64(r.lastHeight)
	return x, y
}

// paletteRGBA converts a palette entry to an 8-bit color.
func paletteRGBA(index uint32) color.RGBA {
	c := locus.Palette[index%locus.PaletteSize]
	return color.RGBA{
		R: uint8(c[0]*255 + 0.5),
		G: uint8(c[1]*255 + 0.5),
		B: uint8(c[2]*255 + 0.5),
		A: uint8(c[3]*255 + 0.5),
	}
}

func clearImage(dst *image.RGBA, c color.RGBA) {
	for y := dst.Rect.Min.Y; y < dst.Rect.Max.Y; y++ {
		rowOffset := y * dst.Stride
		for x := dst.Rect.Min.X; x < dst.Rect.Max.X; x++ {
			offset := rowOffset + x*4
			dst.Pix[offset] = c.R
			dst.Pix[offset+1] = c.G
			dst.Pix[offset+2] = c.B
			dst.Pix[offset+3] = c.A
		}
	}
}

// Ensure SoftwareRenderer implements Renderer.
var _ Renderer = (*SoftwareRenderer)(nil)
