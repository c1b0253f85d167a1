package layout

// unknownStr is the string returned for unknown enum values.
const unknownStr = "Unknown"

// WhiteSpace specifies how whitespace and line breaks are handled.
type WhiteSpace uint8

const (
	// WhiteSpaceNormal wraps lines at word boundaries to fit the wrap
	// width, falling back to character boundaries for overlong words.
	WhiteSpaceNormal WhiteSpace = iota

	// WhiteSpacePre breaks only at explicit newline characters;
	// width-based wrapping is disabled.
	WhiteSpacePre

	// WhiteSpaceNoWrap lays out the entire text as a single line
	// regardless of width.
	WhiteSpaceNoWrap
)

// String returns the string representation of the whitespace mode.
func (w WhiteSpace) String() string {
	switch w {
	case WhiteSpaceNormal:
		return "Normal"
	case WhiteSpacePre:
		return "Pre"
	case WhiteSpaceNoWrap:
		return "NoWrap"
	default:
		return unknownStr
	}
}

// Align specifies horizontal text alignment within the block width.
type Align uint8

const (
	// AlignLeft aligns lines to the left edge (default).
	AlignLeft Align = iota
	// AlignCenter centers lines horizontally.
	AlignCenter
	// AlignRight aligns lines to the right edge.
	AlignRight
	// AlignStart is equivalent to AlignLeft for left-to-right text.
	AlignStart
	// AlignEnd is equivalent to AlignRight for left-to-right text.
	AlignEnd
)

// String returns the string representation of the alignment.
func (a Align) String() string {
	switch a {
	case AlignLeft:
		return "Left"
	case AlignCenter:
		return "Center"
	case AlignRight:
		return "Right"
	case AlignStart:
		return "Start"
	case AlignEnd:
		return "End"
	default:
		return unknownStr
	}
}

// VerticalAlign specifies vertical block alignment. It is not baked
// into glyph positions; it only shifts the block bounding box.
type VerticalAlign uint8

const (
	// VerticalAlignTop anchors the top of the block at the origin.
	VerticalAlignTop VerticalAlign = iota
	// VerticalAlignCenter centers the block vertically about the origin.
	VerticalAlignCenter
	// VerticalAlignBottom anchors the bottom of the block at the origin.
	VerticalAlignBottom
)

// String returns the string representation of the vertical alignment.
func (v VerticalAlign) String() string {
	switch v {
	case VerticalAlignTop:
		return "Top"
	case VerticalAlignCenter:
		return "Center"
	case VerticalAlignBottom:
		return "Bottom"
	default:
		return unknownStr
	}
}
