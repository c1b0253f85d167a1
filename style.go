package msdftext

import (
	"math"

	"github.com/gogpu/msdftext/layout"
	"github.com/gogpu/msdftext/shading"
)

// SmoothMode controls the MSDF smoothing blend.
type SmoothMode uint8

const (
	// SmoothAuto enables smoothing when the font size is below
	// shading.SmoothCutoffSize.
	SmoothAuto SmoothMode = iota
	// SmoothOn always uses the smoothstep formula.
	SmoothOn
	// SmoothOff always uses the sharp derivative-normalized formula.
	SmoothOff
)

// String returns the string representation of the smooth mode.
func (m SmoothMode) String() string {
	switch m {
	case SmoothAuto:
		return "Auto"
	case SmoothOn:
		return "On"
	case SmoothOff:
		return "Off"
	default:
		return "Unknown"
	}
}

// Style is the full, defaulted description of one text layout pass.
// It is a plain comparable value: merging a partial update produces a
// new Style, and two equal styles always lay out to bit-identical
// buffers.
type Style struct {
	// Text is the string to lay out.
	Text string

	// Width is the wrap width in pixels. Zero or negative disables
	// wrapping; Pre and NoWrap ignore it entirely.
	Width float64

	// FontSize is the render size in pixels.
	FontSize float64

	// LineHeight is the baseline-to-baseline distance in pixels.
	// 0 selects the font's default line height scaled to FontSize.
	LineHeight float64

	// LetterSpacing is extra per-glyph advance in pixels.
	LetterSpacing float64

	// Align is the per-line horizontal alignment.
	Align layout.Align

	// VerticalAlign positions the block bounding box vertically.
	VerticalAlign layout.VerticalAlign

	// WhiteSpace selects the wrapping mode.
	WhiteSpace layout.WhiteSpace

	// Color is the base material color.
	Color RGBA

	// Opacity is the material opacity in [0, 1].
	Opacity float64

	// Smooth selects the MSDF smoothing blend.
	Smooth SmoothMode

	// Threshold is the smoothing threshold uniform in [0, 1].
	Threshold float64

	// FlipY inverts atlas V coordinates to match the rendering
	// convention of Y-up texture coordinates.
	FlipY bool
}

// DefaultStyle returns the style defaults: empty text, 16px font,
// normal wrapping, left/top alignment, opaque white, auto smoothing,
// threshold 0.2, flipped V.
func DefaultStyle() Style {
	return Style{
		FontSize:   16,
		Align:      layout.AlignLeft,
		WhiteSpace: layout.WhiteSpaceNormal,
		Color:      White,
		Opacity:    1,
		Smooth:     SmoothAuto,
		Threshold:  shading.DefaultThreshold,
		FlipY:      true,
	}
}

// StyleOption mutates one field of a Style during a merge.
type StyleOption func(*Style)

// merge returns a copy of s with the options applied. It is a pure
// function: s itself is never mutated.
func merge(s Style, opts []StyleOption) Style {
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// WithText sets the text to lay out.
func WithText(text string) StyleOption {
	return func(s *Style) { s.Text = text }
}

// WithWidth sets the wrap width in pixels.
func WithWidth(px float64) StyleOption {
	return func(s *Style) { s.Width = px }
}

// WithFontSize sets the render font size in pixels.
func WithFontSize(px float64) StyleOption {
	return func(s *Style) { s.FontSize = px }
}

// WithLineHeight sets the line height in pixels; 0 restores the font
// default.
func WithLineHeight(px float64) StyleOption {
	return func(s *Style) { s.LineHeight = px }
}

// WithLetterSpacing sets the extra per-glyph advance in pixels.
func WithLetterSpacing(px float64) StyleOption {
	return func(s *Style) { s.LetterSpacing = px }
}

// WithAlign sets the horizontal alignment.
func WithAlign(a layout.Align) StyleOption {
	return func(s *Style) { s.Align = a }
}

// WithVerticalAlign sets the vertical block alignment.
func WithVerticalAlign(v layout.VerticalAlign) StyleOption {
	return func(s *Style) { s.VerticalAlign = v }
}

// WithWhiteSpace sets the wrapping mode.
func WithWhiteSpace(w layout.WhiteSpace) StyleOption {
	return func(s *Style) { s.WhiteSpace = w }
}

// WithColor sets the base material color.
func WithColor(c RGBA) StyleOption {
	return func(s *Style) { s.Color = c }
}

// WithOpacity sets the material opacity in [0, 1].
func WithOpacity(o float64) StyleOption {
	return func(s *Style) { s.Opacity = o }
}

// WithSmooth sets the smoothing mode.
func WithSmooth(m SmoothMode) StyleOption {
	return func(s *Style) { s.Smooth = m }
}

// WithThreshold sets the smoothing threshold uniform.
func WithThreshold(t float64) StyleOption {
	return func(s *Style) { s.Threshold = t }
}

// WithFlipY sets whether atlas V coordinates are inverted.
func WithFlipY(flip bool) StyleOption {
	return func(s *Style) { s.FlipY = flip }
}

// smooth resolves the effective smoothing flag for this style.
func (s Style) smooth() bool {
	switch s.Smooth {
	case SmoothOn:
		return true
	case SmoothOff:
		return false
	default:
		return shading.AutoSmooth(s.FontSize)
	}
}

// wrapWidth returns the width handed to the line breaker: the
// configured width in Normal mode, infinite for Pre and NoWrap or when
// no width is set.
func (s Style) wrapWidth() float64 {
	if s.WhiteSpace != layout.WhiteSpaceNormal || s.Width <= 0 {
		return math.Inf(1)
	}
	return s.Width
}
