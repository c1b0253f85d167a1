package font

// kernKey identifies a kerning pair.
type kernKey struct {
	first, second rune
}

// Index provides O(1) glyph and kerning lookup over a Descriptor.
//
// An Index is built once per Descriptor and never mutated afterwards,
// so it is safe for concurrent readers without synchronization.
type Index struct {
	glyphs  map[rune]*Char
	kerning map[kernKey]float64
	desc    *Descriptor
}

// NewIndex builds the lookup tables for a descriptor.
//
// NewIndex itself never fails: a descriptor that slipped past validation
// with duplicate glyph ids resolves last-write-wins, and kerning pairs
// referencing unknown glyph ids are registered as-is (they simply never
// match during layout).
func NewIndex(d *Descriptor) *Index {
	idx := &Index{
		glyphs:  make(map[rune]*Char, len(d.Chars)),
		kerning: make(map[kernKey]float64, len(d.Kernings)),
		desc:    d,
	}
	for i := range d.Chars {
		c := &d.Chars[i]
		idx.glyphs[c.ID] = c
	}
	for _, k := range d.Kernings {
		idx.kerning[kernKey{k.First, k.Second}] = float64(k.Amount)
	}
	return idx
}

// Glyph returns the glyph record for a code point, or false when the
// font has no glyph for it.
func (x *Index) Glyph(r rune) (*Char, bool) {
	c, ok := x.glyphs[r]
	return c, ok
}

// HasGlyph reports whether the font has a glyph for the given rune.
func (x *Index) HasGlyph(r rune) bool {
	_, ok := x.glyphs[r]
	return ok
}

// Kerning returns the adjustment between two adjacent glyphs in
// design-size pixels, or 0 when no pair is registered. Either side may
// be a code point absent from the glyph set.
func (x *Index) Kerning(first, second rune) float64 {
	return x.kerning[kernKey{first, second}]
}

// GlyphCount returns the number of distinct glyphs in the index.
func (x *Index) GlyphCount() int {
	return len(x.glyphs)
}

// Descriptor returns the descriptor this index was built from.
func (x *Index) Descriptor() *Descriptor {
	return x.desc
}
