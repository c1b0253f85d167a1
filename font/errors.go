package font

import (
	"errors"
	"fmt"
	"strconv"
)

// Sentinel errors for the font package.
var (
	// ErrEmptyDescriptor is returned when descriptor data is empty.
	ErrEmptyDescriptor = errors.New("font: empty descriptor data")

	// ErrEmptyFontData is returned when reference font data is empty.
	ErrEmptyFontData = errors.New("font: empty font data")

	// ErrNoGlyphs is returned when a descriptor defines no glyphs.
	ErrNoGlyphs = errors.New("font: descriptor defines no glyphs")
)

// DescriptorError reports an invalid field in a parsed descriptor.
type DescriptorError struct {
	Field  string
	Reason string
}

func (e *DescriptorError) Error() string {
	return "font: invalid descriptor." + e.Field + ": " + e.Reason
}

// DuplicateGlyphError is returned when a descriptor registers the same
// glyph id more than once. Duplicate ids have no defined precedence in
// the BMFont format, so they are rejected at parse time rather than
// resolved silently.
type DuplicateGlyphError struct {
	ID rune
}

func (e *DuplicateGlyphError) Error() string {
	return fmt.Sprintf("font: duplicate glyph id %d in descriptor", e.ID)
}

// UnknownMeasurerError is returned when an unregistered measurer backend
// is requested by name.
type UnknownMeasurerError struct {
	Name string
}

func (e *UnknownMeasurerError) Error() string {
	return "font: unknown measurer backend " + strconv.Quote(e.Name)
}
