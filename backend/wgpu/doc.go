// Package wgpu provides the GPU line pipeline for locus plots using
// gogpu/wgpu.
//
// The backend draws the flattened vertex batches the core produces: one
// vertex per (sample, branch) point, already in NDC, with a palette index.
// Branches render as line strips, one draw range per branch, colored from a
// 16-entry palette uniform shared with the CPU renderer.
//
// # Architecture Overview
//
//	LocusFrame -> BuildVertices -> vertex buffer -> LinePipeline -> surface
//
// Key components:
//
//   - LinePipeline: shader module, palette bind group layout and pipeline
//     state for line-strip drawing
//   - GPUVertex: the GPU-compatible vertex layout, mirrored by locus.wgsl
//   - standalone HAL device bring-up for headless use; hosts with a window
//     inject their own device
//
// The WGSL shader is compiled to SPIR-V at pipeline creation via gogpu/naga,
// so shader errors surface as Go errors instead of device-lost crashes.
//
// # Current Status
//
// Shader compilation, bind group layouts and the pipeline layout run against
// the real HAL device. Render pipeline creation uses stub identifiers until
// wgpu render pipeline support is complete; the data flow is in place and
// tested.
//
// # Requirements
//
//   - Go 1.25+
//   - gogpu/wgpu module (github.com/gogpu/wgpu)
//   - A GPU that supports Vulkan, Metal, or DX12
package wgpu
