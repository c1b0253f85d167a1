package layout

import (
	"math"

	"github.com/gogpu/msdftext/font"
)

// Options configures glyph placement.
type Options struct {
	// FontSize is the render size in pixels.
	FontSize float64

	// LineHeight is the baseline-to-baseline distance in pixels.
	// If 0, the descriptor's default line height is used, scaled to
	// FontSize.
	LineHeight float64

	// LetterSpacing is added to every glyph advance, in pixels.
	LetterSpacing float64

	// WrapWidth is the block width used for alignment offsets.
	// If not finite or not positive, the widest placed line is used.
	WrapWidth float64

	// Align is the per-line horizontal alignment within the block.
	Align Align

	// Ascent is the measured reference ascent at FontSize, used to
	// anchor baselines against non-MSDF reference text metrics.
	// If 0, the descriptor's scaled base metric is used unadjusted.
	Ascent float64
}

// Glyph is one placed glyph: its dense ordinal, source rune, line, and
// bottom-left anchor with size in layout units.
type Glyph struct {
	// Ordinal is the dense index over placed glyphs in the block.
	Ordinal int

	// Rune is the source code point.
	Rune rune

	// Line is the index of the line this glyph belongs to.
	Line int

	// X, Y anchor the glyph's bottom-left corner.
	X, Y float64

	// Width, Height are the glyph quad dimensions.
	Width, Height float64

	// Char is the descriptor glyph record, for atlas rect lookup.
	Char *font.Char
}

// Place converts line ranges into placed glyphs plus the laid-out
// block size.
//
// Glyph resolution and kerning mirror NewMeasure exactly. Runes without
// a glyph are skipped but still reset the kerning context; they do not
// consume an ordinal. Horizontal alignment is applied per line as a
// uniform x offset; vertical block alignment is deliberately not baked
// into positions (it is a bounding-box concern).
func Place(lines []LineRange, text []rune, opts Options, idx *font.Index) (glyphs []Glyph, blockWidth, blockHeight float64) {
	d := idx.Descriptor()
	scale := d.Scale(opts.FontSize)

	lineHeight := opts.LineHeight
	if lineHeight <= 0 {
		lineHeight = float64(d.Common.LineHeight) * scale
	}

	// Baseline anchoring: with no reference ascent the baseline falls
	// base*scale below the line top. A measured reference ascent moves
	// it so MSDF glyphs line up with conventionally rasterized text.
	baseScaled := float64(d.Common.Base) * scale
	ascent := opts.Ascent
	if ascent == 0 {
		ascent = baseScaled
	}
	baselineShift := baseScaled - ascent

	glyphs = make([]Glyph, 0, runeCount(lines))
	lineWidths := make([]float64, len(lines))
	lineStartGlyph := make([]int, len(lines))

	for li, line := range lines {
		topY := -(float64(li) * lineHeight)
		lineStartGlyph[li] = len(glyphs)

		pen := 0.0
		maxRight := 0.0
		prev := rune(-1)

		for i := line.Start; i < line.End && i < len(text); i++ {
			r := text[i]
			g, ok := idx.Glyph(r)
			if !ok {
				prev = -1
				continue
			}
			if prev >= 0 {
				pen += idx.Kerning(prev, r) * scale
			}

			w := float64(g.Width) * scale
			h := float64(g.Height) * scale
			x := pen + float64(g.XOffset)*scale
			yTop := topY - float64(g.YOffset)*scale + baselineShift

			glyphs = append(glyphs, Glyph{
				Ordinal: len(glyphs),
				Rune:    r,
				Line:    li,
				X:       x,
				Y:       yTop - h,
				Width:   w,
				Height:  h,
				Char:    g,
			})

			if right := x + w; right > maxRight {
				maxRight = right
			}
			pen += float64(g.XAdvance)*scale + opts.LetterSpacing
			prev = r
		}

		lineWidths[li] = maxRight
	}

	blockWidth = opts.WrapWidth
	if blockWidth <= 0 || math.IsInf(blockWidth, 1) {
		blockWidth = 0
		for _, w := range lineWidths {
			if w > blockWidth {
				blockWidth = w
			}
		}
	}
	blockHeight = lineHeight * float64(len(lines))

	applyAlignment(glyphs, lineStartGlyph, lineWidths, opts.Align, blockWidth)

	return glyphs, blockWidth, blockHeight
}

// applyAlignment shifts each line's glyphs by its alignment offset.
func applyAlignment(glyphs []Glyph, lineStart []int, lineWidths []float64, align Align, blockWidth float64) {
	if align == AlignLeft || align == AlignStart {
		return
	}

	for li := range lineStart {
		var offset float64
		switch align {
		case AlignCenter:
			offset = (blockWidth - lineWidths[li]) / 2
		case AlignRight, AlignEnd:
			offset = blockWidth - lineWidths[li]
		}
		if offset == 0 {
			continue
		}

		end := len(glyphs)
		if li+1 < len(lineStart) {
			end = lineStart[li+1]
		}
		for i := lineStart[li]; i < end; i++ {
			glyphs[i].X += offset
		}
	}
}

// runeCount sums the rune spans of all lines, an upper bound for the
// placed glyph count.
func runeCount(lines []LineRange) int {
	total := 0
	for _, l := range lines {
		total += l.End - l.Start
	}
	return total
}
