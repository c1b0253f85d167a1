package shading

import (
	"math"
	"testing"
)

// TestMedian3 tests the median channel selection.
func TestMedian3(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b float64
		want    float64
	}{
		{"ascending", 0.1, 0.5, 0.9, 0.5},
		{"descending", 0.9, 0.5, 0.1, 0.5},
		{"median first", 0.5, 0.1, 0.9, 0.5},
		{"all equal", 0.3, 0.3, 0.3, 0.3},
		{"two equal low", 0.2, 0.2, 0.8, 0.2},
		{"two equal high", 0.8, 0.8, 0.2, 0.8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Median3(tt.r, tt.g, tt.b); got != tt.want {
				t.Errorf("Median3(%v, %v, %v) = %v, want %v", tt.r, tt.g, tt.b, got, tt.want)
			}
		})
	}
}

// TestSignedDistance tests the sample-to-distance conversion.
func TestSignedDistance(t *testing.T) {
	if got := SignedDistance(Sample{R: 0.5, G: 0.5, B: 0.5}); got != 0 {
		t.Errorf("SignedDistance(edge sample) = %v, want 0", got)
	}
	if got := SignedDistance(Sample{R: 1, G: 1, B: 1}); got != 0.5 {
		t.Errorf("SignedDistance(inside sample) = %v, want 0.5", got)
	}
	if got := SignedDistance(Sample{R: 0, G: 0, B: 0}); got != -0.5 {
		t.Errorf("SignedDistance(outside sample) = %v, want -0.5", got)
	}
}

// TestSharpAlpha tests the derivative-normalized coverage ramp.
func TestSharpAlpha(t *testing.T) {
	tests := []struct {
		name    string
		sigDist float64
		aaWidth float64
		want    float64
	}{
		{"on edge", 0, 0.1, 0.5},
		{"half ramp inside", 0.05, 0.1, 1},
		{"half ramp outside", -0.05, 0.1, 0},
		{"quarter inside", 0.025, 0.1, 0.75},
		{"deep inside clamps", 10, 0.1, 1},
		{"deep outside clamps", -10, 0.1, 0},
		{"zero aa width inside", 0.01, 0, 1},
		{"zero aa width outside", -0.01, 0, 0},
		{"zero aa width on edge", 0, 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SharpAlpha(tt.sigDist, tt.aaWidth)
			if math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("SharpAlpha(%v, %v) = %v, want %v", tt.sigDist, tt.aaWidth, got, tt.want)
			}
		})
	}
}

// TestSmoothAlpha tests the fixed-radius smoothstep ramp.
func TestSmoothAlpha(t *testing.T) {
	const threshold = 0.2

	// The midpoint lands one ulp off 0.5 under IEEE rounding.
	if got := SmoothAlpha(threshold, threshold); math.Abs(got-0.5) > 1e-9 {
		t.Errorf("SmoothAlpha at threshold = %v, want 0.5", got)
	}
	if got := SmoothAlpha(threshold+SmoothRadius, threshold); got != 1 {
		t.Errorf("SmoothAlpha at upper edge = %v, want 1", got)
	}
	if got := SmoothAlpha(threshold-SmoothRadius, threshold); got != 0 {
		t.Errorf("SmoothAlpha at lower edge = %v, want 0", got)
	}

	// Monotonic across the ramp.
	prev := -1.0
	for d := -1.0; d <= 1.0; d += 0.05 {
		a := SmoothAlpha(d, threshold)
		if a < prev {
			t.Fatalf("SmoothAlpha not monotonic at %v: %v < %v", d, a, prev)
		}
		prev = a
	}
}

// TestAutoSmooth tests the font-size cutoff.
func TestAutoSmooth(t *testing.T) {
	if !AutoSmooth(16) {
		t.Error("AutoSmooth(16) = false, want true")
	}
	if !AutoSmooth(31.9) {
		t.Error("AutoSmooth(31.9) = false, want true")
	}
	if AutoSmooth(SmoothCutoffSize) {
		t.Error("AutoSmooth(cutoff) = true, want false")
	}
	if AutoSmooth(72) {
		t.Error("AutoSmooth(72) = true, want false")
	}
}

// TestBorderMask tests the stroke coverage ring.
func TestBorderMask(t *testing.T) {
	p := DefaultParams()
	p.Stroke = true
	p.StrokeOutset = 0.4
	p.StrokeInset = 0.4

	const aa = 0.05

	// On the edge both the outset fill and the inverted inset are high.
	edge := BorderMask(0, aa, p)
	if edge < 0.9 {
		t.Errorf("BorderMask at edge = %v, want near 1", edge)
	}

	// Deep inside the inverted inset term kills the ring.
	inside := BorderMask(0.5, aa, p)
	if inside > 0.01 {
		t.Errorf("BorderMask deep inside = %v, want near 0", inside)
	}

	// Deep outside the outset fill kills it.
	outside := BorderMask(-0.5, aa, p)
	if outside > 0.01 {
		t.Errorf("BorderMask deep outside = %v, want near 0", outside)
	}

	// Stroke disabled yields exactly zero.
	p.Stroke = false
	if got := BorderMask(0, aa, p); got != 0 {
		t.Errorf("BorderMask with stroke off = %v, want 0", got)
	}
}

// TestShade tests the full fragment computation.
func TestShade(t *testing.T) {
	p := DefaultParams()
	p.BaseColor = Color{R: 1, G: 0, B: 0, A: 1}

	inside := Sample{R: 1, G: 1, B: 1}
	outside := Sample{R: 0, G: 0, B: 0}

	color, alpha := Shade(inside, 0.05, p, White, 1)
	if alpha != 1 {
		t.Errorf("Shade(inside) alpha = %v, want 1", alpha)
	}
	if color.R != 1 || color.G != 0 || color.B != 0 {
		t.Errorf("Shade(inside) color = %+v, want base red", color)
	}

	if _, alpha = Shade(outside, 0.05, p, White, 1); alpha != 0 {
		t.Errorf("Shade(outside) alpha = %v, want 0", alpha)
	}

	// Material opacity and letter opacity multiply.
	p.Opacity = 0.5
	if _, alpha = Shade(inside, 0.05, p, White, 0.5); alpha != 0.25 {
		t.Errorf("Shade with stacked opacity = %v, want 0.25", alpha)
	}
	p.Opacity = 1

	// Per-letter color multiplies the base color.
	color, _ = Shade(inside, 0.05, p, Color{R: 0.5, G: 1, B: 1, A: 1}, 1)
	if color.R != 0.5 {
		t.Errorf("Shade with letter color = %+v, want R 0.5", color)
	}
}

// TestShade_Stroke tests fill/stroke compositing on the glyph edge.
func TestShade_Stroke(t *testing.T) {
	p := DefaultParams()
	p.BaseColor = Color{R: 1, G: 0, B: 0, A: 1}
	p.StrokeColor = Color{R: 0, G: 0, B: 1, A: 1}
	p.Stroke = true
	p.StrokeOutset = 0.4
	p.StrokeInset = 0.4

	// On the edge the border mask dominates and the color leans to the
	// stroke blue.
	color, alpha := Shade(Sample{R: 0.5, G: 0.5, B: 0.5}, 0.05, p, White, 1)
	if color.B < color.R {
		t.Errorf("Shade on edge color = %+v, want stroke-dominated", color)
	}
	if alpha <= 0 {
		t.Errorf("Shade on edge alpha = %v, want positive", alpha)
	}

	// Alpha saturates rather than exceeding 1 where fill and border
	// overlap.
	_, alpha = Shade(Sample{R: 0.6, G: 0.6, B: 0.6}, 0.05, p, White, 1)
	if alpha > 1 {
		t.Errorf("Shade alpha = %v, want clamped to 1", alpha)
	}
}

// TestDefaultParams tests shading defaults.
func TestDefaultParams(t *testing.T) {
	p := DefaultParams()
	if p.Threshold != DefaultThreshold {
		t.Errorf("Threshold = %v, want %v", p.Threshold, DefaultThreshold)
	}
	if p.Smooth || p.Stroke {
		t.Error("Smooth/Stroke default on, want off")
	}
	if p.BaseColor != White || p.StrokeColor != White {
		t.Error("default colors are not white")
	}
	if p.Opacity != 1 {
		t.Errorf("Opacity = %v, want 1", p.Opacity)
	}
}
