package locus

// PaletteSize is the number of entries in the shared branch palette.
// Branch b draws with color Palette[b%PaletteSize].
const PaletteSize = 16

// PaletteColor is one RGBA palette entry with components in [0,1].
type PaletteColor [4]float32

// Palette is the fixed branch color table. It is shared immutable data:
// the CPU renderer reads it directly and the GPU backend uploads it as a
// uniform, so branch colors can never diverge between the two.
var Palette = [PaletteSize]PaletteColor{
	{1.0, 0.0, 0.0, 1.0}, // Red
	{0.0, 1.0, 0.0, 1.0}, // Green
	{0.0, 0.0, 1.0, 1.0}, // Blue
	{1.0, 1.0, 0.0, 1.0}, // Yellow
	{1.0, 0.0, 1.0, 1.0}, // Magenta
	{0.0, 1.0, 1.0, 1.0}, // Cyan
	{0.5, 0.0, 0.0, 1.0}, // Dark Red
	{0.0, 0.5, 0.0, 1.0}, // Dark Green
	{0.0, 0.0, 0.5, 1.0}, // Dark Blue
	{1.0, 0.5, 0.0, 1.0}, // Orange
	{0.5, 0.0, 0.5, 1.0}, // Purple
	{0.0, 0.5, 0.5, 1.0}, // Teal
	{0.8, 0.4, 0.0, 1.0}, // Brown
	{0.0, 0.4, 0.8, 1.0}, // Sky Blue
	{0.4, 0.8, 0.0, 1.0}, // Lime Green
	{0.8, 0.0, 0.4, 1.0}, // Pink
}

// BranchColor returns the palette entry for a branch id.
func BranchColor(branch int) PaletteColor {
	return Palette[branch%PaletteSize]
}
