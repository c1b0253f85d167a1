package layout

import "github.com/gogpu/msdftext/font"

// NewMeasure returns a MeasureFunc over the given metrics index at the
// given render size.
//
// The pen advances per character exactly as Place does: resolve the
// glyph, apply the kerning adjustment against the previous resolved
// glyph, record the extent penX+offsetX+glyphWidth, then advance by
// advanceWidth+letterSpacing. Unresolvable runes contribute no width
// and reset the kerning context, so the next resolved glyph pairs with
// "no previous glyph".
func NewMeasure(idx *font.Index, fontSize, letterSpacing float64) MeasureFunc {
	scale := idx.Descriptor().Scale(fontSize)

	return func(text []rune, start, end int) float64 {
		if start < 0 {
			start = 0
		}
		if end > len(text) {
			end = len(text)
		}

		pen := 0.0
		maxRight := 0.0
		prev := rune(-1)

		for i := start; i < end; i++ {
			r := text[i]
			g, ok := idx.Glyph(r)
			if !ok {
				prev = -1
				continue
			}
			if prev >= 0 {
				pen += idx.Kerning(prev, r) * scale
			}
			right := pen + (float64(g.XOffset)+float64(g.Width))*scale
			if right > maxRight {
				maxRight = right
			}
			pen += float64(g.XAdvance)*scale + letterSpacing
			prev = r
		}

		return maxRight
	}
}
