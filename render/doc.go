// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package render provides the integration layer between the locus core and
// GPU frameworks.
//
// # Key Principle
//
// locus RECEIVES a GPU device from the host application, it does NOT create
// its own. The host (e.g. gogpu.App) implements DeviceHandle and injects it,
// so the plot shares the window's device and queue instead of managing GPU
// resources itself.
//
// # Core Interfaces
//
//   - DeviceHandle: GPU device access from the host application
//   - RenderTarget: where the plot output goes (Pixmap or host surface)
//   - Renderer: draws locus vertex batches to a target
//
// # Renderer Implementations
//
//   - SoftwareRenderer: CPU line rasterization via golang.org/x/image/vector
//   - the wgpu line pipeline lives in backend/wgpu
//
// # Usage
//
// Software rendering to a pixmap:
//
//	target := render.NewPixmapTarget(800, 600)
//	renderer := render.NewSoftwareRenderer()
//
//	verts, ranges := controller.Vertices()
//	renderer.Render(target, verts, ranges)
//	img := target.Image()
//
// # Thread Safety
//
// Renderers are NOT thread-safe. Each renderer should be used from a single
// goroutine, or external synchronization must be used.
package render
