package font

import (
	"encoding/json"
	"fmt"
	"os"
)

// Char describes one glyph in the atlas.
// Coordinates and metrics are in atlas pixels at the design font size
// (Info.Size); layout scales them to the requested render size.
type Char struct {
	// ID is the Unicode code point of the glyph.
	ID rune `json:"id"`

	// X, Y are the top-left corner of the glyph rectangle in the atlas.
	X int `json:"x"`

	Y int `json:"y"`

	// Width, Height are the glyph rectangle dimensions.
	Width int `json:"width"`

	Height int `json:"height"`

	// XOffset, YOffset shift the glyph rectangle relative to the pen
	// position (XOffset) and the top of the line (YOffset).
	XOffset int `json:"xoffset"`

	YOffset int `json:"yoffset"`

	// XAdvance is the pen advance after this glyph, before kerning and
	// letter spacing.
	XAdvance int `json:"xadvance"`

	// Char is the literal character, when the generator emits it.
	Char string `json:"char,omitempty"`
}

// Kerning is a per-pair horizontal adjustment applied between two
// adjacent glyphs, in design-size pixels.
type Kerning struct {
	First  rune `json:"first"`
	Second rune `json:"second"`
	Amount int  `json:"amount"`
}

// Common holds font-wide metrics shared by all glyphs.
type Common struct {
	// LineHeight is the default baseline-to-baseline distance.
	LineHeight int `json:"lineHeight"`

	// Base is the distance from the top of the line to the baseline.
	Base int `json:"base"`

	// ScaleW, ScaleH are the atlas texture dimensions in pixels.
	ScaleW int `json:"scaleW"`
	ScaleH int `json:"scaleH"`
}

// Info holds generation-time font information.
type Info struct {
	// Face is the source font family name.
	Face string `json:"face,omitempty"`

	// Size is the design font size the atlas and all metrics were
	// produced at. Layout scales metrics by renderSize / Size.
	Size int `json:"size"`
}

// Descriptor is a parsed BMFont-style JSON font descriptor.
// A Descriptor is immutable once parsed; build an Index for lookups.
type Descriptor struct {
	Chars    []Char    `json:"chars"`
	Kernings []Kerning `json:"kernings"`
	Common   Common    `json:"common"`
	Info     Info      `json:"info"`
}

// ParseDescriptor parses BMFont JSON descriptor data.
//
// The descriptor is validated after decoding: font-wide metrics must be
// positive, at least one glyph must be present, and duplicate glyph ids
// are rejected (the format defines no precedence for them). Kerning
// pairs referencing ids absent from Chars are kept; lookups tolerate
// them per the Index contract.
func ParseDescriptor(data []byte) (*Descriptor, error) {
	if len(data) == 0 {
		return nil, ErrEmptyDescriptor
	}

	var d Descriptor
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("font: failed to parse descriptor: %w", err)
	}

	if err := d.Validate(); err != nil {
		return nil, err
	}
	return &d, nil
}

// ParseDescriptorFile parses a BMFont JSON descriptor from a file path.
func ParseDescriptorFile(path string) (*Descriptor, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("font: failed to read descriptor file: %w", err)
	}
	return ParseDescriptor(data)
}

// Validate checks the descriptor invariants.
func (d *Descriptor) Validate() error {
	if len(d.Chars) == 0 {
		return ErrNoGlyphs
	}
	if d.Common.LineHeight <= 0 {
		return &DescriptorError{Field: "common.lineHeight", Reason: "must be positive"}
	}
	if d.Common.ScaleW <= 0 {
		return &DescriptorError{Field: "common.scaleW", Reason: "must be positive"}
	}
	if d.Common.ScaleH <= 0 {
		return &DescriptorError{Field: "common.scaleH", Reason: "must be positive"}
	}
	if d.Info.Size <= 0 {
		return &DescriptorError{Field: "info.size", Reason: "must be positive"}
	}

	seen := make(map[rune]struct{}, len(d.Chars))
	for i := range d.Chars {
		id := d.Chars[i].ID
		if _, dup := seen[id]; dup {
			return &DuplicateGlyphError{ID: id}
		}
		seen[id] = struct{}{}
	}
	return nil
}

// Scale returns the factor converting design-size metrics to the given
// render size in pixels.
func (d *Descriptor) Scale(fontSize float64) float64 {
	return fontSize / float64(d.Info.Size)
}
