package geometry

import (
	"github.com/gogpu/msdftext/font"
	"github.com/gogpu/msdftext/layout"
)

// Options configures buffer construction.
type Options struct {
	// FlipY inverts the V axis of atlas UVs to match renderers whose
	// texture origin is bottom-left.
	FlipY bool

	// ColorAt supplies the color of a glyph by ordinal as r, g, b, a
	// in [0, 1]. If nil, every glyph is opaque white.
	ColorAt func(ordinal int) (r, g, b, a float32)
}

// Build allocates fresh buffers for the placed glyphs.
// The returned Buffers has generation 0; use Rebuild to replace an
// existing allocation.
func Build(glyphs []layout.Glyph, d *font.Descriptor, opts Options) *Buffers {
	n := len(glyphs)
	b := &Buffers{
		Position:   make([]float32, n*VerticesPerGlyph*PositionStride),
		UV:         make([]float32, n*VerticesPerGlyph*UVStride),
		Center:     make([]float32, n*VerticesPerGlyph*CenterStride),
		GlyphIndex: make([]uint32, n*VerticesPerGlyph*GlyphIndexStride),
		GlyphColor: make([]float32, n*VerticesPerGlyph*GlyphColorStride),
		Index:      make([]uint32, n*IndicesPerGlyph),
		glyphCount: n,
	}

	fillStatic(b)
	fillContent(b, glyphs, d, opts)
	return b
}

// Rebuild allocates fresh buffers and advances the generation counter
// past prev's. Use it when the glyph count changed and prev's arrays
// cannot be reused; prev may be nil.
func Rebuild(prev *Buffers, glyphs []layout.Glyph, d *font.Descriptor, opts Options) *Buffers {
	b := Build(glyphs, d, opts)
	if prev != nil {
		b.generation = prev.generation + 1
	}
	return b
}

// Refresh overwrites the content-dependent arrays (position, UV,
// center, color) in place, preserving slice identity and generation.
// The index and glyph-index arrays depend only on glyph count and are
// left untouched. Returns a ShapeMismatchError when the glyph count
// differs from the one the buffers were built for.
func (b *Buffers) Refresh(glyphs []layout.Glyph, d *font.Descriptor, opts Options) error {
	if len(glyphs) != b.glyphCount {
		return &ShapeMismatchError{Have: b.glyphCount, Want: len(glyphs)}
	}
	fillContent(b, glyphs, d, opts)
	return nil
}

// fillStatic writes the arrays that depend only on glyph count:
// triangle indices and the broadcast glyph ordinals.
func fillStatic(b *Buffers) {
	for i := 0; i < b.glyphCount; i++ {
		base := uint32(i * VerticesPerGlyph)
		io := i * IndicesPerGlyph

		// Two CCW triangles: (0,2,1) and (0,3,2).
		b.Index[io+0] = base
		b.Index[io+1] = base + 2
		b.Index[io+2] = base + 1
		b.Index[io+3] = base
		b.Index[io+4] = base + 3
		b.Index[io+5] = base + 2

		for v := 0; v < VerticesPerGlyph; v++ {
			b.GlyphIndex[i*VerticesPerGlyph+v] = uint32(i)
		}
	}
}

// fillContent writes position, UV, center and color for every glyph.
func fillContent(b *Buffers, glyphs []layout.Glyph, d *font.Descriptor, opts Options) {
	atlasW := float32(d.Common.ScaleW)
	atlasH := float32(d.Common.ScaleH)

	for i := range glyphs {
		g := &glyphs[i]

		x0 := float32(g.X)
		y0 := float32(g.Y)
		x1 := x0 + float32(g.Width)
		y1 := y0 + float32(g.Height)

		// Vertex order: top-left, top-right, bottom-right, bottom-left.
		po := i * VerticesPerGlyph * PositionStride
		writeVec3(b.Position[po+0:], x0, y1, 0)
		writeVec3(b.Position[po+3:], x1, y1, 0)
		writeVec3(b.Position[po+6:], x1, y0, 0)
		writeVec3(b.Position[po+9:], x0, y0, 0)

		u0 := float32(g.Char.X) / atlasW
		u1 := float32(g.Char.X+g.Char.Width) / atlasW
		vTop := float32(g.Char.Y) / atlasH
		vBottom := float32(g.Char.Y+g.Char.Height) / atlasH
		if opts.FlipY {
			vTop = 1 - vTop
			vBottom = 1 - vBottom
		}

		uo := i * VerticesPerGlyph * UVStride
		writeVec2(b.UV[uo+0:], u0, vTop)
		writeVec2(b.UV[uo+2:], u1, vTop)
		writeVec2(b.UV[uo+4:], u1, vBottom)
		writeVec2(b.UV[uo+6:], u0, vBottom)

		cx := (x0 + x1) / 2
		cy := (y0 + y1) / 2
		co := i * VerticesPerGlyph * CenterStride
		for v := 0; v < VerticesPerGlyph; v++ {
			writeVec2(b.Center[co+v*CenterStride:], cx, cy)
		}

		var r, gr, bl, a float32 = 1, 1, 1, 1
		if opts.ColorAt != nil {
			r, gr, bl, a = opts.ColorAt(i)
		}
		ko := i * VerticesPerGlyph * GlyphColorStride
		for v := 0; v < VerticesPerGlyph; v++ {
			off := ko + v*GlyphColorStride
			b.GlyphColor[off+0] = r
			b.GlyphColor[off+1] = gr
			b.GlyphColor[off+2] = bl
			b.GlyphColor[off+3] = a
		}
	}
}

func writeVec3(dst []float32, x, y, z float32) {
	dst[0] = x
	dst[1] = y
	dst[2] = z
}

func writeVec2(dst []float32, x, y float32) {
	dst[0] = x
	dst[1] = y
}
