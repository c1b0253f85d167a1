package msdftext

import "github.com/gogpu/msdftext/shading"

// Override selects where a per-letter shading input comes from.
// The three strategies are mutually exclusive for a single input, but
// the color and opacity inputs carry independent overrides.
type Override struct {
	mode shading.OverrideMode
	expr string
}

// OverrideNone uses the constant material value.
func OverrideNone() Override {
	return Override{mode: shading.OverrideNone}
}

// OverrideFromAttribute sources the value from the per-vertex
// glyph-color attribute, as written by SetGlyphColors.
func OverrideFromAttribute() Override {
	return Override{mode: shading.OverrideAttribute}
}

// OverrideCustom sources the value from a caller-supplied WGSL
// expression. See shading.ShaderConfig for the identifiers the
// expression may reference.
func OverrideCustom(expr string) Override {
	return Override{mode: shading.OverrideCustom, expr: expr}
}

// Mode returns the selected strategy.
func (o Override) Mode() shading.OverrideMode {
	return o.mode
}

// Expr returns the custom expression, empty unless the mode is
// OverrideCustom.
func (o Override) Expr() string {
	return o.expr
}
