package layout

import "unicode"

// WrapTolerance is the slack factor applied to the wrap width. A line
// is accepted while its measured extent stays within width times this
// factor; the 0.5% headroom absorbs floating-point rounding at the
// wrap boundary and prevents oscillating break points.
const WrapTolerance = 1.005

// MeasureFunc measures the pixel extent of text[start:end): the
// rightmost edge any glyph in the range reaches, with kerning and
// letter spacing applied. Unresolvable runes contribute no width.
//
// The returned extent must be monotonically non-decreasing in end for
// a fixed start; the greedy breaker relies on this to terminate.
type MeasureFunc func(text []rune, start, end int) float64

// LineRange is one laid-out line: an exclusive rune-index range plus
// the measured pixel width of its content before alignment.
type LineRange struct {
	Start int
	End   int
	Width float64
}

// BreakLines splits text into lines for the given wrap width and
// whitespace mode.
//
// In WhiteSpaceNormal, lines accumulate whitespace-delimited words
// while the measured extent stays within width*WrapTolerance; a word
// that cannot fit even alone is broken at character granularity, and a
// single glyph wider than the width is still placed on its own line
// rather than dropped. In WhiteSpacePre only newline characters break
// and no width check applies. In WhiteSpaceNoWrap the whole text is
// one line. Empty text yields exactly one empty line.
func BreakLines(text []rune, width float64, mode WhiteSpace, measure MeasureFunc) []LineRange {
	switch mode {
	case WhiteSpacePre:
		return breakPre(text, measure)
	case WhiteSpaceNoWrap:
		return []LineRange{{Start: 0, End: len(text), Width: measure(text, 0, len(text))}}
	default:
		return breakNormal(text, width, measure)
	}
}

// breakPre breaks only at explicit newlines, preserving whitespace.
func breakPre(text []rune, measure MeasureFunc) []LineRange {
	lines := make([]LineRange, 0, 4)
	start := 0
	for i, r := range text {
		if r == '\n' {
			lines = append(lines, LineRange{Start: start, End: i, Width: measure(text, start, i)})
			start = i + 1
		}
	}
	lines = append(lines, LineRange{Start: start, End: len(text), Width: measure(text, start, len(text))})
	return lines
}

// breakNormal performs greedy word wrapping with character fallback.
func breakNormal(text []rune, width float64, measure MeasureFunc) []LineRange {
	n := len(text)
	if n == 0 {
		return []LineRange{{}}
	}

	limit := width * WrapTolerance
	lines := make([]LineRange, 0, 4)
	i := 0

	for i < n {
		lineStart := i
		lineEnd := i

		for lineEnd < n {
			unitEnd := lineEnd

			if isBreakingSpace(text[unitEnd]) {
				// Whitespace runs never force a break; their advance may
				// overflow freely since they contribute no glyph extent.
				for unitEnd < n && isBreakingSpace(text[unitEnd]) {
					unitEnd++
				}
				lineEnd = unitEnd
				continue
			}

			for unitEnd < n && !isBreakingSpace(text[unitEnd]) {
				unitEnd++
			}

			if measure(text, lineStart, unitEnd) <= limit {
				lineEnd = unitEnd
				continue
			}

			// Word does not fit. Wrap before it when the line already
			// holds content.
			if trimEnd(text, lineStart, lineEnd) > lineStart {
				break
			}

			// Overlong word opening the line: fall back to character
			// granularity. At least one glyph is always placed so a
			// glyph wider than the wrap width is never dropped.
			k := lineEnd + 1
			for k < unitEnd && measure(text, lineStart, k+1) <= limit {
				k++
			}
			lineEnd = k
			break
		}

		end := trimEnd(text, lineStart, lineEnd)
		lines = append(lines, LineRange{Start: lineStart, End: end, Width: measure(text, lineStart, end)})

		i = lineEnd
		for i < n && isBreakingSpace(text[i]) {
			i++
		}
	}

	return lines
}

// trimEnd returns end moved back past trailing whitespace, never below
// start.
func trimEnd(text []rune, start, end int) int {
	for end > start && isBreakingSpace(text[end-1]) {
		end--
	}
	return end
}

// isBreakingSpace reports whether r delimits words for wrapping.
// Newlines count as plain whitespace in normal mode (CSS collapse).
func isBreakingSpace(r rune) bool {
	return unicode.IsSpace(r)
}
