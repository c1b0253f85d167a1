package shading

import "math"

const (
	// DefaultThreshold is the default smoothing threshold uniform.
	DefaultThreshold = 0.2

	// SmoothRadius is the half-width of the smoothstep ramp around the
	// threshold in signed-distance units (sqrt(2)/2).
	SmoothRadius = math.Sqrt2 / 2

	// SmoothCutoffSize is the font size in pixels below which smoothing
	// is enabled by default. The sharp formula aliases at small sizes.
	SmoothCutoffSize = 32.0
)

// AutoSmooth reports whether smoothing should default on for the given
// font size.
func AutoSmooth(fontSize float64) bool {
	return fontSize < SmoothCutoffSize
}

// Sample is one RGB texel of the MSDF atlas, channels in [0, 1].
type Sample struct {
	R, G, B float64
}

// Color is an RGBA color with components in [0, 1].
type Color struct {
	R, G, B, A float64
}

// White is the identity per-letter color multiplier.
var White = Color{R: 1, G: 1, B: 1, A: 1}

// Median3 returns the middle value of three channel samples. It
// recovers a single signed-distance estimate from an RGB-encoded MSDF
// texel.
func Median3(r, g, b float64) float64 {
	return math.Max(math.Min(r, g), math.Min(math.Max(r, g), b))
}

// SignedDistance converts an atlas sample to a signed distance:
// negative outside the glyph, positive inside, zero on the edge.
func SignedDistance(s Sample) float64 {
	return Median3(s.R, s.G, s.B) - 0.5
}

// SharpAlpha maps a signed distance to coverage using a one-pixel ramp
// normalized by the screen-space anti-aliasing width (the local rate
// of change of the distance field across a pixel, conventionally
// fwidth of the distance).
func SharpAlpha(sigDist, aaWidth float64) float64 {
	if aaWidth <= 0 {
		if sigDist >= 0 {
			return 1
		}
		return 0
	}
	return clamp01(sigDist/aaWidth + 0.5)
}

// SmoothAlpha maps a signed distance to coverage using a fixed-width
// smoothstep ramp around the threshold, for small font sizes where the
// sharp formula aliases.
func SmoothAlpha(sigDist, threshold float64) float64 {
	return smoothstep(threshold-SmoothRadius, threshold+SmoothRadius, sigDist)
}

// Alpha blends the sharp and smooth formulas per the smooth flag.
func Alpha(sigDist, aaWidth, threshold float64, smooth bool) float64 {
	if smooth {
		return SmoothAlpha(sigDist, threshold)
	}
	return SharpAlpha(sigDist, aaWidth)
}

// Params configures the shading computation for a text block.
type Params struct {
	// Threshold is the smoothing threshold uniform in [0, 1].
	Threshold float64

	// Smooth selects the smoothstep formula instead of the sharp
	// derivative-normalized ramp.
	Smooth bool

	// Stroke enables the outline pass.
	Stroke bool

	// StrokeOutset and StrokeInset are the outline widths in
	// signed-distance units, growing outward and inward respectively.
	StrokeOutset float64
	StrokeInset  float64

	// BaseColor is the material fill color.
	BaseColor Color

	// StrokeColor is the outline color.
	StrokeColor Color

	// Opacity is the material opacity in [0, 1].
	Opacity float64
}

// DefaultParams returns shading defaults: sharp white fill at full
// opacity, threshold 0.2, no stroke.
func DefaultParams() Params {
	return Params{
		Threshold:   DefaultThreshold,
		BaseColor:   White,
		StrokeColor: White,
		Opacity:     1,
	}
}

// BorderMask computes the stroke coverage: the fill alpha recomputed
// with the distance pushed outward by half the outset width, masked by
// the inverted coverage at half the inset width. The product is a ring
// around the glyph edge.
func BorderMask(sigDist, aaWidth float64, p Params) float64 {
	if !p.Stroke {
		return 0
	}
	outset := Alpha(sigDist+p.StrokeOutset/2, aaWidth, p.Threshold, p.Smooth)
	inset := 1 - Alpha(sigDist-p.StrokeInset/2, aaWidth, p.Threshold, p.Smooth)
	return outset * inset
}

// Shade runs the full per-pixel computation for one fragment.
//
// letterColor and letterOpacity are the per-letter overrides; pass
// White and 1 when no override is installed. The returned color is the
// fill/stroke mix and alpha the composite opacity, not premultiplied.
func Shade(s Sample, aaWidth float64, p Params, letterColor Color, letterOpacity float64) (color Color, alpha float64) {
	sigDist := SignedDistance(s)
	fill := Alpha(sigDist, aaWidth, p.Threshold, p.Smooth)
	border := BorderMask(sigDist, aaWidth, p)

	base := Color{
		R: p.BaseColor.R * letterColor.R,
		G: p.BaseColor.G * letterColor.G,
		B: p.BaseColor.B * letterColor.B,
		A: p.BaseColor.A * letterColor.A,
	}
	color = Color{
		R: mix(base.R, p.StrokeColor.R, border),
		G: mix(base.G, p.StrokeColor.G, border),
		B: mix(base.B, p.StrokeColor.B, border),
		A: mix(base.A, p.StrokeColor.A, border),
	}
	alpha = clamp01(p.Opacity * letterOpacity * (fill + border))
	return color, alpha
}

// smoothstep is the Hermite interpolation of x between e0 and e1.
func smoothstep(e0, e1, x float64) float64 {
	if e1 == e0 {
		if x < e0 {
			return 0
		}
		return 1
	}
	t := clamp01((x - e0) / (e1 - e0))
	return t * t * (3 - 2*t)
}

// mix is linear interpolation from a to b by t.
func mix(a, b, t float64) float64 {
	return a + t*(b-a)
}

// clamp01 clamps v to [0, 1].
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
