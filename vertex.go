package locus

// Vertex is one entry of the renderable vertex buffer: an NDC position and
// a palette color index. The layout matters: the GPU backend uploads
// vertices as-is, so any change here must be mirrored in the line shader.
type Vertex struct {
	Position   [2]float32
	ColorIndex uint32
}

// VertexRange addresses one branch's contiguous run inside a vertex
// buffer, for a line-strip draw call per branch.
type VertexRange struct {
	Start uint32
	Count uint32
}

// BuildVertices flattens a locus frame through the camera into a vertex
// buffer. Vertices are branch-major: branch b occupies the contiguous run
// [b*Samples, (b+1)*Samples), in sample order, so each branch renders as
// one line strip. Returns nil for a nil or empty frame.
func BuildVertices(frame *LocusFrame, cam *Camera) []Vertex {
	if frame == nil || len(frame.Points) == 0 {
		return nil
	}

	verts := make([]Vertex, 0, frame.Samples*frame.Branches)
	for b := 0; b < frame.Branches; b++ {
		color := uint32(b % PaletteSize)
		for s := 0; s < frame.Samples; s++ {
			x, y := cam.ToNDC(frame.At(s, b).Pos)
			verts = append(verts, Vertex{
				Position:   [2]float32{float32(x), float32(y)},
				ColorIndex: color,
			})
		}
	}
	return verts
}

// BranchRanges returns one VertexRange per branch for a buffer produced by
// BuildVertices.
func BranchRanges(frame *LocusFrame) []VertexRange {
	if frame == nil || frame.Samples == 0 {
		return nil
	}
	ranges := make([]VertexRange, frame.Branches)
	for b := range ranges {
		ranges[b] = VertexRange{
			Start: uint32(b * frame.Samples),
			Count: uint32(frame.Samples),
		}
	}
	return ranges
}
