package wgpu

import (
	"encoding/binary"
	"fmt"
	"math"
	"sync"

	"github.com/gogpu/wgpu/hal"
	types "github.com/gogpu/gputypes"

	"github.com/gogpu/locus"
)

// GPUVertex is the GPU-compatible vertex layout.
// Must match VertexInput in locus.wgsl.
type GPUVertex struct {
	X          float32 // NDC x
	Y          float32 // NDC y
	ColorIndex uint32  // palette index, 0..15
}

// GPUVertexStride is the byte stride of one GPUVertex in the vertex buffer.
const GPUVertexStride = 12

// paletteByteSize is the size of the palette uniform: 16 × vec4<f32>.
const paletteByteSize = locus.PaletteSize * 16

// StubPipelineID is a placeholder for actual wgpu RenderPipelineID.
// This will be replaced with core.RenderPipelineID when wgpu render
// pipeline support is complete.
type StubPipelineID uint64

// InvalidPipelineID represents an invalid/uninitialized pipeline.
const InvalidPipelineID StubPipelineID = 0

// LinePipeline owns the GPU state for drawing locus branches: the compiled
// line shader, the palette bind group layout and the line-strip pipeline.
//
// LinePipeline is safe for concurrent read access. Initialization and
// destruction are synchronized internally.
type LinePipeline struct {
	mu sync.Mutex

	device hal.Device
	queue  hal.Queue

	// instance is set only for standalone pipelines that opened their own
	// device; it is nil when the host injected one.
	instance hal.Instance

	// Shader module and compiled SPIR-V (cached for verification).
	shaderModule hal.ShaderModule
	spirvCode    []uint32

	// Palette uniform layout (group 0, binding 0).
	paletteLayout  hal.BindGroupLayout
	pipelineLayout hal.PipelineLayout

	// Render pipeline for line strips.
	linePipeline StubPipelineID

	initialized bool
}

// NewLinePipeline creates the line pipeline on a host-provided device and
// queue. The plot shares the host's GPU; it never opens a device of its own
// when one is injected.
func NewLinePipeline(device hal.Device, queue hal.Queue) (*LinePipeline, error) {
	if device == nil || queue == nil {
		return nil, fmt.Errorf("wgpu: device and queue are required")
	}

	p := &LinePipeline{device: device, queue: queue}
	if err := p.init(); err != nil {
		p.Destroy()
		return nil, err
	}
	return p, nil
}

// NewStandaloneLinePipeline opens a standalone Vulkan device and builds the
// line pipeline on it. This is the headless path; hosts with a window should
// inject their own device via NewLinePipeline.
func NewStandaloneLinePipeline() (*LinePipeline, error) {
	instance, device, queue, err := openStandaloneDevice()
	if err != nil {
		return nil, fmt.Errorf("wgpu: %w", err)
	}

	p := &LinePipeline{device: device, queue: queue, instance: instance}
	if err := p.init(); err != nil {
		p.Destroy()
		return nil, err
	}
	return p, nil
}

// init compiles the shader and creates layouts and the pipeline.
func (p *LinePipeline) init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	spirvCode, err := compileShaderToSPIRV(locusShaderWGSL)
	if err != nil {
		return fmt.Errorf("wgpu: %w", err)
	}
	p.spirvCode = spirvCode

	shaderModule, err := createShaderModule(p.device, "locus_line_shader", spirvCode)
	if err != nil {
		return fmt.Errorf("wgpu: failed to create shader module: %w", err)
	}
	p.shaderModule = shaderModule

	paletteLayout, err := p.device.CreateBindGroupLayout(&hal.BindGroupLayoutDescriptor{
		Label: "locus_palette_layout",
		Entries: []types.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: types.ShaderStageVertex,
				Buffer: &types.BufferBindingLayout{
					Type:           types.BufferBindingTypeUniform,
					MinBindingSize: paletteByteSize,
				},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("wgpu: failed to create palette bind group layout: %w", err)
	}
	p.paletteLayout = paletteLayout

	pipelineLayout, err := p.device.CreatePipelineLayout(&hal.PipelineLayoutDescriptor{
		Label:            "locus_line_pipeline_layout",
		BindGroupLayouts: []hal.BindGroupLayout{p.paletteLayout},
	})
	if err != nil {
		return fmt.Errorf("wgpu: failed to create pipeline layout: %w", err)
	}
	p.pipelineLayout = pipelineLayout

	// TODO: When wgpu render pipelines are ready, create the actual
	// line-strip pipeline:
	// desc := &types.RenderPipelineDescriptor{
	//     Layout: p.pipelineLayout,
	//     Vertex: types.VertexState{
	//         Module:     p.shaderModule,
	//         EntryPoint: "vs_main",
	//         Buffers: []types.VertexBufferLayout{{
	//             ArrayStride: GPUVertexStride,
	//             Attributes: []types.VertexAttribute{
	//                 {Format: types.VertexFormatFloat32x2, Offset: 0, ShaderLocation: 0},
	//                 {Format: types.VertexFormatUint32, Offset: 8, ShaderLocation: 1},
	//             },
	//         }},
	//     },
	//     Fragment: &types.FragmentState{Module: p.shaderModule, EntryPoint: "fs_main"},
	//     Primitive: types.PrimitiveState{Topology: types.PrimitiveTopologyLineStrip},
	// }
	// p.linePipeline, err = core.CreateRenderPipeline(p.device, desc)
	p.linePipeline = StubPipelineID(1)

	p.initialized = true
	return nil
}

// Pipeline returns the line-strip pipeline.
func (p *LinePipeline) Pipeline() StubPipelineID {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.linePipeline
}

// PaletteLayout returns the bind group layout for the palette uniform.
func (p *LinePipeline) PaletteLayout() hal.BindGroupLayout {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.paletteLayout
}

// IsInitialized returns true if the pipeline has been initialized.
func (p *LinePipeline) IsInitialized() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.initialized
}

// Destroy releases all GPU resources in the correct order.
func (p *LinePipeline) Destroy() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.device == nil {
		return
	}
	if p.pipelineLayout != nil {
		p.device.DestroyPipelineLayout(p.pipelineLayout)
		p.pipelineLayout = nil
	}
	if p.paletteLayout != nil {
		p.device.DestroyBindGroupLayout(p.paletteLayout)
		p.paletteLayout = nil
	}
	if p.shaderModule != nil {
		p.device.DestroyShaderModule(p.shaderModule)
		p.shaderModule = nil
	}
	p.linePipeline = InvalidPipelineID
	p.initialized = false
}

// ConvertVertices converts core vertices to the GPU layout.
func ConvertVertices(verts []locus.Vertex) []GPUVertex {
	if len(verts) == 0 {
		return nil
	}
	out := make([]GPUVertex, len(verts))
	for i, v := range verts {
		out[i] = GPUVertex{
			X:          v.Position[0],
			Y:          v.Position[1],
			ColorIndex: v.ColorIndex % locus.PaletteSize,
		}
	}
	return out
}

// PackVertices serializes GPU vertices into little-endian bytes for upload.
func PackVertices(verts []GPUVertex) []byte {
	buf := make([]byte, len(verts)*GPUVertexStride)
	for i, v := range verts {
		off := i * GPUVertexStride
		binary.LittleEndian.PutUint32(buf[off:], math.Float32bits(v.X))
		binary.LittleEndian.PutUint32(buf[off+4:], math.Float32bits(v.Y))
		binary.LittleEndian.PutUint32(buf[off+8:], v.ColorIndex)
	}
	return buf
}

// PackPalette serializes the shared branch palette into the uniform layout
// the shader expects: 16 consecutive vec4<f32> values.
func PackPalette() []byte {
	buf := make([]byte, paletteByteSize)
	for i, c := range locus.Palette {
		off := i * 16
		for ch := 0; ch < 4; ch++ {
			binary.LittleEndian.PutUint32(buf[off+ch*4:], math.Float32bits(c[ch]))
		}
	}
	return buf
}
