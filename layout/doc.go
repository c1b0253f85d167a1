// Package layout breaks text into lines and places glyphs against an
// MSDF bitmap-font metrics index.
//
// The pipeline is two-phase: BreakLines produces line ranges over the
// input runes using a pluggable width measurement, then Place walks
// each range and emits per-glyph anchored positions along with the
// laid-out block size. Both phases resolve glyphs and kerning through
// the same measurement logic, so wrap decisions and final positions
// cannot drift apart.
//
// Coordinates are Y-up: the top of the first line sits at y = 0 and
// lines extend into negative y. Glyph anchors are bottom-left corners.
package layout
