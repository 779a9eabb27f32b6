package wgpu

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/gogpu/locus"
)

// TestLocusShaderCompiles verifies the embedded WGSL compiles to SPIR-V.
func TestLocusShaderCompiles(t *testing.T) {
	spirv, err := compileShaderToSPIRV(locusShaderWGSL)
	if err != nil {
		t.Fatalf("compileShaderToSPIRV failed: %v", err)
	}
	if len(spirv) == 0 {
		t.Fatal("empty SPIR-V output")
	}
	// SPIR-V magic number.
	if spirv[0] != 0x07230203 {
		t.Errorf("SPIR-V magic = %#x, want 0x07230203", spirv[0])
	}
}

func TestNewLinePipelineRequiresDevice(t *testing.T) {
	if _, err := NewLinePipeline(nil, nil); err == nil {
		t.Error("NewLinePipeline(nil, nil) should return error")
	}
}

func TestConvertVertices(t *testing.T) {
	verts := []locus.Vertex{
		{Position: [2]float32{-0.5, 0.25}, ColorIndex: 3},
		{Position: [2]float32{0.5, -0.25}, ColorIndex: 19}, // wraps to 3
	}

	gpu := ConvertVertices(verts)
	if len(gpu) != 2 {
		t.Fatalf("expected 2 vertices, got %d", len(gpu))
	}
	if gpu[0].X != -0.5 || gpu[0].Y != 0.25 || gpu[0].ColorIndex != 3 {
		t.Errorf("vertex 0 = %+v", gpu[0])
	}
	if gpu[1].ColorIndex != 3 {
		t.Errorf("out-of-range color index not wrapped: %d", gpu[1].ColorIndex)
	}

	if ConvertVertices(nil) != nil {
		t.Error("ConvertVertices(nil) should be nil")
	}
}

func TestPackVertices(t *testing.T) {
	verts := []GPUVertex{{X: 1.5, Y: -2, ColorIndex: 7}}
	buf := PackVertices(verts)

	if len(buf) != GPUVertexStride {
		t.Fatalf("len = %d, want %d", len(buf), GPUVertexStride)
	}
	if x := math.Float32frombits(binary.LittleEndian.Uint32(buf[0:])); x != 1.5 {
		t.Errorf("x = %v, want 1.5", x)
	}
	if y := math.Float32frombits(binary.LittleEndian.Uint32(buf[4:])); y != -2 {
		t.Errorf("y = %v, want -2", y)
	}
	if idx := binary.LittleEndian.Uint32(buf[8:]); idx != 7 {
		t.Errorf("color index = %d, want 7", idx)
	}
}

func TestPackPalette(t *testing.T) {
	buf := PackPalette()
	if len(buf) != paletteByteSize {
		t.Fatalf("len = %d, want %d", len(buf), paletteByteSize)
	}

	// Entry 0 is pure red.
	r := math.Float32frombits(binary.LittleEndian.Uint32(buf[0:]))
	g := math.Float32frombits(binary.LittleEndian.Uint32(buf[4:]))
	a := math.Float32frombits(binary.LittleEndian.Uint32(buf[12:]))
	if r != 1 || g != 0 || a != 1 {
		t.Errorf("entry 0 = (r=%v g=%v a=%v), want red with alpha 1", r, g, a)
	}

	// Every entry matches the shared palette.
	for i, c := range locus.Palette {
		for ch := 0; ch < 4; ch++ {
			got := math.Float32frombits(binary.LittleEndian.Uint32(buf[i*16+ch*4:]))
			if got != c[ch] {
				t.Errorf("entry %d channel %d = %v, want %v", i, ch, got, c[ch])
			}
		}
	}
}
