// Package geometry expands placed glyphs into the flat vertex and
// index arrays a renderer uploads to the GPU.
//
// Each glyph becomes one quad: 4 vertices in top-left, top-right,
// bottom-right, bottom-left order and two counter-clockwise triangles.
// Per-vertex attributes are position (3 floats), atlas UV (2 floats),
// glyph centroid (2 floats, repeated), glyph ordinal (1 uint,
// broadcast) and glyph color (4 floats, default opaque white).
//
// A Buffers value supports two update paths: Refresh overwrites the
// content-dependent arrays in place when the glyph count is unchanged,
// preserving slice identity so a renderer can keep its GPU bindings;
// Rebuild reallocates everything and bumps the generation counter.
package geometry
