package geometry

import "fmt"

// Vertex attribute strides, in scalar elements per vertex.
const (
	PositionStride   = 3
	UVStride         = 2
	CenterStride     = 2
	GlyphIndexStride = 1
	GlyphColorStride = 4

	// VerticesPerGlyph is the vertex count of one quad.
	VerticesPerGlyph = 4

	// IndicesPerGlyph is the index count of one quad (two triangles).
	IndicesPerGlyph = 6
)

// Buffers holds the flat renderable arrays for a block of glyph quads.
// All per-vertex arrays share the vertex count 4 x GlyphCount, and the
// index array references exactly that range. The arrays must be
// uploaded as a matched set.
//
// Buffers is single-owner mutable state: one writer, and readers must
// not observe it while a write is in flight. All mutation completes
// before the mutating call returns.
type Buffers struct {
	// Position is 3 floats per vertex (x, y, z with z = 0).
	Position []float32

	// UV is 2 floats per vertex, normalized atlas coordinates.
	UV []float32

	// Center is 2 floats per vertex: the glyph centroid repeated, for
	// effects needing a per-glyph pivot.
	Center []float32

	// GlyphIndex is the glyph ordinal broadcast to its 4 vertices.
	GlyphIndex []uint32

	// GlyphColor is 4 floats per vertex, default opaque white.
	GlyphColor []float32

	// Index holds two CCW triangles per quad.
	Index []uint32

	glyphCount int
	generation uint64
}

// ShapeMismatchError is returned when Refresh is asked to rewrite
// buffers built for a different glyph count.
type ShapeMismatchError struct {
	Have int
	Want int
}

func (e *ShapeMismatchError) Error() string {
	return fmt.Sprintf("geometry: buffers hold %d glyphs, refresh requires %d", e.Have, e.Want)
}

// GlyphCount returns the number of glyph quads in the buffers.
func (b *Buffers) GlyphCount() int {
	return b.glyphCount
}

// VertexCount returns the shared per-vertex array length in vertices.
func (b *Buffers) VertexCount() int {
	return b.glyphCount * VerticesPerGlyph
}

// IndexCount returns the number of triangle indices.
func (b *Buffers) IndexCount() int {
	return b.glyphCount * IndicesPerGlyph
}

// Generation identifies the allocation: Refresh preserves it, Rebuild
// bumps it. Holders of borrowed views compare generations to detect
// reallocation.
func (b *Buffers) Generation() uint64 {
	return b.generation
}

// SetGlyphColor overwrites the color of one glyph's 4 vertices.
// Out-of-range ordinals are a no-op: animated-effect callers may
// compute indices speculatively.
func (b *Buffers) SetGlyphColor(ordinal int, r, g, bl, a float32) {
	if ordinal < 0 || ordinal >= b.glyphCount {
		return
	}
	base := ordinal * VerticesPerGlyph * GlyphColorStride
	for v := 0; v < VerticesPerGlyph; v++ {
		off := base + v*GlyphColorStride
		b.GlyphColor[off+0] = r
		b.GlyphColor[off+1] = g
		b.GlyphColor[off+2] = bl
		b.GlyphColor[off+3] = a
	}
}

// ResetGlyphColors restores every vertex color to opaque white.
func (b *Buffers) ResetGlyphColors() {
	for i := range b.GlyphColor {
		b.GlyphColor[i] = 1
	}
}
