package msdftext

import (
	"unicode"

	"golang.org/x/text/unicode/norm"

	"github.com/gogpu/msdftext/font"
	"github.com/gogpu/msdftext/geometry"
	"github.com/gogpu/msdftext/layout"
	"github.com/gogpu/msdftext/shading"
)

// Text is a laid-out block of MSDF glyph quads. It retains the current
// style, buffers and color state; Update re-runs layout with merged
// style fields, rewriting the buffers in place whenever the glyph
// count is unchanged.
//
// Text is not safe for concurrent use. Confine each instance to one
// goroutine or guard it externally.
type Text struct {
	idx      *font.Index
	measurer font.Measurer

	style  Style
	glyphs []layout.Glyph
	blockW float64
	blockH float64

	buffers *geometry.Buffers
	colors  *ColorList

	colorOverride   Override
	opacityOverride Override

	stroke       bool
	strokeOutset float64
	strokeInset  float64
	strokeColor  RGBA
}

// New builds a text block from a validated font descriptor and an
// initial style. measurer supplies the reference ascent used to anchor
// baselines against non-MSDF text; pass nil to place baselines from
// the descriptor's base metric alone.
func New(desc *font.Descriptor, measurer font.Measurer, opts ...StyleOption) (*Text, error) {
	if desc == nil {
		return nil, ErrNilDescriptor
	}
	if err := desc.Validate(); err != nil {
		return nil, err
	}

	t := &Text{
		idx:         font.NewIndex(desc),
		measurer:    measurer,
		style:       merge(DefaultStyle(), opts),
		strokeColor: White,
	}
	t.relayout()
	return t, nil
}

// Update merges the given fields into the retained style and re-runs
// layout end to end. When the new layout has the same glyph count the
// existing buffer arrays are overwritten in place, preserving slice
// identity; otherwise fresh buffers are allocated and the generation
// counter advances. Updating with no effective change is idempotent
// and produces bit-identical buffers.
func (t *Text) Update(opts ...StyleOption) {
	t.style = merge(t.style, opts)
	t.relayout()
}

// Style returns a copy of the current effective style.
func (t *Text) Style() Style {
	return t.style
}

// Buffers returns the current vertex and index arrays. The value is
// owned by the Text; Update may rewrite it in place or replace it.
func (t *Text) Buffers() *geometry.Buffers {
	return t.buffers
}

// GlyphCount returns the number of placed glyph quads.
func (t *Text) GlyphCount() int {
	return len(t.glyphs)
}

// Bounds returns the block bounding box anchored per the style's
// horizontal and vertical alignment: the anchor point is the origin,
// and the box extends from it the way the alignment dictates. Vertex
// positions stay in layout space with the first baseline's line top at
// y = 0; translate them by (MinX, MaxY) to place them in anchored
// space.
func (t *Text) Bounds() geometry.Rect {
	var ox, oy float64
	switch t.style.Align {
	case layout.AlignCenter:
		ox = -t.blockW / 2
	case layout.AlignRight, layout.AlignEnd:
		ox = -t.blockW
	}
	switch t.style.VerticalAlign {
	case layout.VerticalAlignCenter:
		oy = t.blockH / 2
	case layout.VerticalAlignBottom:
		oy = t.blockH
	}
	return geometry.Rect{MinX: ox, MinY: oy - t.blockH, MaxX: ox + t.blockW, MaxY: oy}
}

// SetGlyphColors installs per-glyph colors and rewrites the color
// buffer without re-running layout. Lists shorter than the glyph count
// cycle modulo their length. A nil list clears back to opaque white.
// Colors only reach the shader while the color override is
// OverrideFromAttribute.
func (t *Text) SetGlyphColors(colors *ColorList) {
	t.colors = colors
	if t.buffers == nil {
		return
	}
	if colors.Len() == 0 {
		t.buffers.ResetGlyphColors()
		return
	}
	for i := 0; i < t.buffers.GlyphCount(); i++ {
		e := colors.At(i)
		r, g, b, a := colorComponents(e)
		t.buffers.SetGlyphColor(i, r, g, b, a)
	}
}

// SetGlyphColor recolors the single glyph at ordinal i. Out-of-range
// ordinals are a no-op. The change does not survive a glyph-count
// change; reapply after Update when the text itself changes.
func (t *Text) SetGlyphColor(i int, c RGBA, opacity float64) {
	if t.buffers == nil {
		return
	}
	r, g, b, a := colorComponents(GlyphColor{Color: c, Opacity: opacity})
	t.buffers.SetGlyphColor(i, r, g, b, a)
}

// ClearGlyphColors resets every glyph to opaque white, falling back to
// the base material color once the color override is cleared as well.
func (t *Text) ClearGlyphColors() {
	t.colors = nil
	if t.buffers != nil {
		t.buffers.ResetGlyphColors()
	}
}

// SetStroke enables the outline pass. outset and inset are the outline
// widths in signed-distance units, growing outward and inward from the
// glyph edge.
func (t *Text) SetStroke(outset, inset float64, color RGBA) {
	t.stroke = true
	t.strokeOutset = outset
	t.strokeInset = inset
	t.strokeColor = color
}

// ClearStroke disables the outline pass.
func (t *Text) ClearStroke() {
	t.stroke = false
}

// SetColorOverride selects where the per-letter color multiplier comes
// from. Changing the override changes the emitted shader source.
func (t *Text) SetColorOverride(o Override) {
	t.colorOverride = o
}

// SetOpacityOverride selects where the per-letter opacity multiplier
// comes from. Independent of the color override.
func (t *Text) SetOpacityOverride(o Override) {
	t.opacityOverride = o
}

// ShadingParams returns the uniform values for the current style and
// stroke state. These feed the shader's uniform buffer and the CPU
// reference math in package shading.
func (t *Text) ShadingParams() shading.Params {
	return shading.Params{
		Threshold:    t.style.Threshold,
		Smooth:       t.style.smooth(),
		Stroke:       t.stroke,
		StrokeOutset: t.strokeOutset,
		StrokeInset:  t.strokeInset,
		BaseColor:    shadingColor(t.style.Color),
		StrokeColor:  shadingColor(t.strokeColor),
		Opacity:      t.style.Opacity,
	}
}

// ShaderSource emits the WGSL module for the current override and
// stroke configuration. Uniform value changes do not require
// re-emission; override or stroke changes do.
func (t *Text) ShaderSource() string {
	return shading.ShaderWGSL(shading.ShaderConfig{
		ColorMode:   t.colorOverride.Mode(),
		ColorExpr:   t.colorOverride.Expr(),
		OpacityMode: t.opacityOverride.Mode(),
		OpacityExpr: t.opacityOverride.Expr(),
		Stroke:      t.stroke,
	})
}

// relayout recomputes glyph placement and buffers from the retained
// style.
func (t *Text) relayout() {
	runes := []rune(norm.NFC.String(t.style.Text))

	if missing := t.countMissingGlyphs(runes); missing > 0 {
		Logger().Warn("runes without glyphs skipped", "count", missing)
	}

	measure := layout.NewMeasure(t.idx, t.style.FontSize, t.style.LetterSpacing)
	lines := layout.BreakLines(runes, t.style.wrapWidth(), t.style.WhiteSpace, measure)

	var ascent float64
	if t.measurer != nil {
		ascent = t.measurer.Ascent(t.style.FontSize)
	}

	t.glyphs, t.blockW, t.blockH = layout.Place(lines, runes, layout.Options{
		FontSize:      t.style.FontSize,
		LineHeight:    t.style.LineHeight,
		LetterSpacing: t.style.LetterSpacing,
		WrapWidth:     t.style.wrapWidth(),
		Align:         t.style.Align,
		Ascent:        ascent,
	}, t.idx)

	opts := geometry.Options{
		FlipY:   t.style.FlipY,
		ColorAt: t.colorAt(),
	}

	desc := t.idx.Descriptor()
	if t.buffers != nil && t.buffers.GlyphCount() == len(t.glyphs) {
		if err := t.buffers.Refresh(t.glyphs, desc, opts); err == nil {
			Logger().Debug("text refreshed",
				"glyphs", len(t.glyphs),
				"lines", len(lines),
				"generation", t.buffers.Generation())
			return
		}
	}

	t.buffers = geometry.Rebuild(t.buffers, t.glyphs, desc, opts)
	Logger().Debug("text rebuilt",
		"glyphs", len(t.glyphs),
		"lines", len(lines),
		"generation", t.buffers.Generation())
}

// countMissingGlyphs counts non-whitespace runes the descriptor has no
// glyph for. Layout skips them; the count feeds a warning so missing
// atlas coverage is diagnosable.
func (t *Text) countMissingGlyphs(runes []rune) int {
	missing := 0
	for _, r := range runes {
		if !unicode.IsSpace(r) && !t.idx.HasGlyph(r) {
			missing++
		}
	}
	return missing
}

// colorAt adapts the installed color list to the buffer builder.
func (t *Text) colorAt() func(int) (r, g, b, a float32) {
	if t.colors.Len() == 0 {
		return nil
	}
	colors := t.colors
	return func(i int) (r, g, b, a float32) {
		return colorComponents(colors.At(i))
	}
}

// colorComponents flattens one glyph color entry to premultipliable
// float32 components, folding the entry opacity into alpha.
func colorComponents(e GlyphColor) (r, g, b, a float32) {
	return float32(e.Color.R), float32(e.Color.G), float32(e.Color.B),
		float32(e.Color.A * e.Opacity)
}

// shadingColor converts the material color type to the shading
// package's value type.
func shadingColor(c RGBA) shading.Color {
	return shading.Color{R: c.R, G: c.G, B: c.B, A: c.A}
}
