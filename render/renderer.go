// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import "github.com/gogpu/locus"

// Renderer draws locus vertex batches to a render target.
//
// The input is the flattened form the core produces: one vertex per
// (sample, branch) point with positions already in NDC, plus one draw range
// per branch. Each range is drawn as a connected line strip in its branch's
// palette color.
//
// Renderers are stateless between Render calls, allowing the same renderer
// to be used with different targets and frames.
//
// Thread Safety: Renderers are NOT thread-safe.
type Renderer interface {
	// Render draws one vertex batch to the target. Empty input clears the
	// target but draws nothing. Returns an error if the target is
	// incompatible (e.g. no CPU access for a software renderer).
	Render(target RenderTarget, verts []locus.Vertex, ranges []locus.VertexRange) error

	// Flush ensures all pending rendering operations are complete.
	//
	// For CPU renderers this is a no-op as operations are synchronous. For
	// GPU renderers this may submit command buffers and wait for completion.
	Flush() error
}
