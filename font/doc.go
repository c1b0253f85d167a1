// Package font provides the MSDF bitmap-font descriptor schema and the
// metric lookups that drive text layout.
//
// A Descriptor is the parsed form of a BMFont-style JSON file produced by
// MSDF atlas generators (msdf-bmfont-xml, msdfgen). It carries per-glyph
// atlas rectangles, offsets and advances, sparse kerning pairs, and the
// font-wide metrics (line height, baseline, atlas dimensions, design size).
//
// An Index is built once per Descriptor and provides O(1) glyph and
// kerning lookup. It is never mutated after construction and is safe for
// concurrent readers.
//
// A Measurer supplies reference (non-MSDF) ascent metrics used to align
// atlas glyphs with the metrics a conventional text rasterizer would
// produce at the same size. Two backends are available: "ximage" (the
// default, built on golang.org/x/image/font/sfnt) and "gotext" (built on
// go-text/typesetting shaping). Custom backends can be registered with
// RegisterMeasurer.
package font
