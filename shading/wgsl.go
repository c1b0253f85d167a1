package shading

import (
	"fmt"
	"strings"
)

// OverrideMode selects how a per-letter value (color or opacity) is
// sourced in the generated shader. The modes are mutually exclusive
// per value; color and opacity overrides are independent of each other.
type OverrideMode uint8

const (
	// OverrideNone uses the constant material value with no per-letter
	// variation.
	OverrideNone OverrideMode = iota

	// OverrideAttribute sources the value from the per-vertex
	// glyph-color attribute (static per-glyph colors).
	OverrideAttribute

	// OverrideCustom injects a caller-supplied WGSL expression keyed by
	// the glyph-index attribute (animated per-letter effects).
	OverrideCustom
)

// String returns the string representation of the override mode.
func (m OverrideMode) String() string {
	switch m {
	case OverrideNone:
		return "None"
	case OverrideAttribute:
		return "Attribute"
	case OverrideCustom:
		return "Custom"
	default:
		return "Unknown"
	}
}

// ShaderConfig controls WGSL emission. Changing any field requires
// re-emitting and recompiling the shader; uniform values (threshold,
// colors, stroke widths) do not.
type ShaderConfig struct {
	// ColorMode selects the per-letter color source.
	ColorMode OverrideMode

	// ColorExpr is the WGSL expression used when ColorMode is
	// OverrideCustom. It must evaluate to vec4<f32> and may reference
	// `glyph_index` (u32), `center` (vec2<f32>) and `u.time`.
	ColorExpr string

	// OpacityMode selects the per-letter opacity source.
	OpacityMode OverrideMode

	// OpacityExpr is the WGSL expression used when OpacityMode is
	// OverrideCustom. It must evaluate to f32.
	OpacityExpr string

	// Stroke enables the outline pass in the fragment shader.
	Stroke bool
}

// letterColorWGSL returns the expression for the per-letter color
// multiplier.
func (c ShaderConfig) letterColorWGSL() string {
	switch c.ColorMode {
	case OverrideAttribute:
		return "in.glyph_color"
	case OverrideCustom:
		if c.ColorExpr != "" {
			return c.ColorExpr
		}
	}
	return "vec4<f32>(1.0, 1.0, 1.0, 1.0)"
}

// letterOpacityWGSL returns the expression for the per-letter opacity
// multiplier.
func (c ShaderConfig) letterOpacityWGSL() string {
	switch c.OpacityMode {
	case OverrideAttribute:
		return "in.glyph_color.a"
	case OverrideCustom:
		if c.OpacityExpr != "" {
			return c.OpacityExpr
		}
	}
	return "1.0"
}

// ShaderWGSL emits the complete WGSL module (vertex + fragment) for
// the glyph-quad vertex layout of package geometry:
//
//	location 0: position    (vec3<f32>)
//	location 1: uv          (vec2<f32>)
//	location 2: center      (vec2<f32>)
//	location 3: glyph_index (u32)
//	location 4: glyph_color (vec4<f32>)
//
// Uniform layout (binding 0): transform mat4x4, base_color vec4,
// stroke_color vec4, params vec4 (threshold, smooth flag, stroke
// outset, stroke inset), misc vec4 (opacity, time, reserved x2).
// Binding 1 is the MSDF atlas texture, binding 2 its sampler.
func ShaderWGSL(cfg ShaderConfig) string {
	var b strings.Builder

	b.WriteString(`struct TextUniforms {
    transform: mat4x4<f32>,
    base_color: vec4<f32>,
    stroke_color: vec4<f32>,
    // threshold, smooth flag, stroke outset, stroke inset
    params: vec4<f32>,
    // opacity, time, reserved, reserved
    misc: vec4<f32>,
}

@group(0) @binding(0) var<uniform> u: TextUniforms;
@group(0) @binding(1) var atlas_tex: texture_2d<f32>;
@group(0) @binding(2) var atlas_samp: sampler;

struct VertexInput {
    @location(0) position: vec3<f32>,
    @location(1) uv: vec2<f32>,
    @location(2) center: vec2<f32>,
    @location(3) glyph_index: u32,
    @location(4) glyph_color: vec4<f32>,
}

struct VertexOutput {
    @builtin(position) clip_position: vec4<f32>,
    @location(0) uv: vec2<f32>,
    @location(1) center: vec2<f32>,
    @location(2) @interpolate(flat) glyph_index: u32,
    @location(3) glyph_color: vec4<f32>,
}

@vertex
fn vs_main(in: VertexInput) -> VertexOutput {
    var out: VertexOutput;
    out.clip_position = u.transform * vec4<f32>(in.position, 1.0);
    out.uv = in.uv;
    out.center = in.center;
    out.glyph_index = in.glyph_index;
    out.glyph_color = in.glyph_color;
    return out;
}

fn median3(v: vec3<f32>) -> f32 {
    return max(min(v.r, v.g), min(max(v.r, v.g), v.b));
}

fn coverage(sig_dist: f32, aa_width: f32) -> f32 {
    let sharp = clamp(sig_dist / aa_width + 0.5, 0.0, 1.0);
    let threshold = u.params.x;
    let radius = 0.7071067811865476;
    let smooth_a = smoothstep(threshold - radius, threshold + radius, sig_dist);
    return mix(sharp, smooth_a, u.params.y);
}
`)

	b.WriteString(`
@fragment
fn fs_main(in: VertexOutput) -> @location(0) vec4<f32> {
    let glyph_index = in.glyph_index;
    let center = in.center;
    let sample = textureSample(atlas_tex, atlas_samp, in.uv).rgb;
    let sig_dist = median3(sample) - 0.5;
    let aa_width = max(fwidth(sig_dist), 1e-5);

    let fill_alpha = coverage(sig_dist, aa_width);
`)

	if cfg.Stroke {
		b.WriteString(`
    let outset_alpha = coverage(sig_dist + u.params.z * 0.5, aa_width);
    let inset_alpha = 1.0 - coverage(sig_dist - u.params.w * 0.5, aa_width);
    let border = outset_alpha * inset_alpha;
`)
	} else {
		b.WriteString(`
    let border = 0.0;
`)
	}

	fmt.Fprintf(&b, `
    let letter_color = %s;
    let letter_opacity = %s;

    let fill = u.base_color * letter_color;
    let rgb = mix(fill.rgb, u.stroke_color.rgb, border);
    let alpha = u.misc.x * letter_opacity * clamp(fill_alpha + border, 0.0, 1.0);
    return vec4<f32>(rgb * alpha, alpha);
}
`, cfg.letterColorWGSL(), cfg.letterOpacityWGSL())

	return b.String()
}
