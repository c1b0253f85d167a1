package msdftext

// GlyphColor is one per-glyph color entry: a color plus an opacity
// multiplier applied on top of the material opacity.
type GlyphColor struct {
	Color   RGBA
	Opacity float64
}

// ColorList is a cyclic sequence of per-glyph colors. When the list is
// shorter than the glyph count, entries repeat modulo the list length.
type ColorList struct {
	entries []GlyphColor
}

// NewColorList builds a color list from explicit entries.
func NewColorList(entries ...GlyphColor) *ColorList {
	return &ColorList{entries: entries}
}

// ColorListFromColors builds a color list where every entry is fully
// opaque.
func ColorListFromColors(colors ...RGBA) *ColorList {
	entries := make([]GlyphColor, len(colors))
	for i, c := range colors {
		entries[i] = GlyphColor{Color: c, Opacity: 1}
	}
	return &ColorList{entries: entries}
}

// ColorListFromFloats builds a color list from interleaved RGBA
// components in [0, 1]. The trailing partial group, if any, is
// ignored.
func ColorListFromFloats(rgba ...float64) *ColorList {
	n := len(rgba) / 4
	entries := make([]GlyphColor, n)
	for i := 0; i < n; i++ {
		entries[i] = GlyphColor{
			Color: RGBA{
				R: rgba[i*4],
				G: rgba[i*4+1],
				B: rgba[i*4+2],
				A: rgba[i*4+3],
			},
			Opacity: 1,
		}
	}
	return &ColorList{entries: entries}
}

// Len returns the number of entries in the list.
func (l *ColorList) Len() int {
	if l == nil {
		return 0
	}
	return len(l.entries)
}

// At returns the entry for glyph ordinal i, cycling modulo the list
// length. An empty list yields opaque white.
func (l *ColorList) At(i int) GlyphColor {
	if l.Len() == 0 {
		return GlyphColor{Color: White, Opacity: 1}
	}
	return l.entries[i%len(l.entries)]
}
