package font

import (
	"errors"
	"strings"
	"testing"
)

const testDescriptorJSON = `{
	"info": {"face": "Test", "size": 32},
	"common": {"lineHeight": 38, "base": 30, "scaleW": 512, "scaleH": 512},
	"chars": [
		{"id": 65, "x": 0, "y": 0, "width": 20, "height": 24, "xoffset": 1, "yoffset": 6, "xadvance": 22, "char": "A"},
		{"id": 86, "x": 24, "y": 0, "width": 20, "height": 24, "xoffset": 1, "yoffset": 6, "xadvance": 22, "char": "V"},
		{"id": 32, "x": 0, "y": 0, "width": 0, "height": 0, "xoffset": 0, "yoffset": 0, "xadvance": 10, "char": " "}
	],
	"kernings": [
		{"first": 65, "second": 86, "amount": -3}
	]
}`

// TestParseDescriptor tests parsing a well-formed BMFont JSON descriptor.
func TestParseDescriptor(t *testing.T) {
	d, err := ParseDescriptor([]byte(testDescriptorJSON))
	if err != nil {
		t.Fatalf("ParseDescriptor() error = %v", err)
	}

	if d.Info.Size != 32 {
		t.Errorf("Info.Size = %d, want 32", d.Info.Size)
	}
	if d.Common.LineHeight != 38 {
		t.Errorf("Common.LineHeight = %d, want 38", d.Common.LineHeight)
	}
	if len(d.Chars) != 3 {
		t.Fatalf("len(Chars) = %d, want 3", len(d.Chars))
	}
	if d.Chars[0].ID != 'A' || d.Chars[0].XAdvance != 22 {
		t.Errorf("Chars[0] = %+v, want id 'A' xadvance 22", d.Chars[0])
	}
	if len(d.Kernings) != 1 || d.Kernings[0].Amount != -3 {
		t.Errorf("Kernings = %+v, want one entry with amount -3", d.Kernings)
	}
}

// TestParseDescriptor_Empty tests that empty data is rejected.
func TestParseDescriptor_Empty(t *testing.T) {
	_, err := ParseDescriptor(nil)
	if !errors.Is(err, ErrEmptyDescriptor) {
		t.Errorf("ParseDescriptor(nil) error = %v, want ErrEmptyDescriptor", err)
	}
}

// TestParseDescriptor_BadJSON tests that malformed JSON is rejected.
func TestParseDescriptor_BadJSON(t *testing.T) {
	_, err := ParseDescriptor([]byte(`{"chars": [`))
	if err == nil {
		t.Error("ParseDescriptor() error = nil, want parse error")
	}
}

// TestParseDescriptor_DuplicateGlyph tests that duplicate glyph ids are
// rejected at parse time.
func TestParseDescriptor_DuplicateGlyph(t *testing.T) {
	data := `{
		"info": {"size": 32},
		"common": {"lineHeight": 38, "base": 30, "scaleW": 512, "scaleH": 512},
		"chars": [
			{"id": 65, "width": 20, "height": 24, "xadvance": 22},
			{"id": 65, "width": 18, "height": 24, "xadvance": 20}
		]
	}`

	_, err := ParseDescriptor([]byte(data))
	var dup *DuplicateGlyphError
	if !errors.As(err, &dup) {
		t.Fatalf("ParseDescriptor() error = %v, want DuplicateGlyphError", err)
	}
	if dup.ID != 'A' {
		t.Errorf("DuplicateGlyphError.ID = %q, want 'A'", dup.ID)
	}
}

// TestValidate tests descriptor invariant checks.
func TestValidate(t *testing.T) {
	valid := func() *Descriptor {
		return &Descriptor{
			Chars:  []Char{{ID: 'A', Width: 20, Height: 24, XAdvance: 22}},
			Common: Common{LineHeight: 38, Base: 30, ScaleW: 512, ScaleH: 512},
			Info:   Info{Size: 32},
		}
	}

	tests := []struct {
		name   string
		mutate func(*Descriptor)
		want   string
	}{
		{"no glyphs", func(d *Descriptor) { d.Chars = nil }, "defines no glyphs"},
		{"zero line height", func(d *Descriptor) { d.Common.LineHeight = 0 }, "common.lineHeight"},
		{"zero scaleW", func(d *Descriptor) { d.Common.ScaleW = 0 }, "common.scaleW"},
		{"zero scaleH", func(d *Descriptor) { d.Common.ScaleH = 0 }, "common.scaleH"},
		{"zero size", func(d *Descriptor) { d.Info.Size = 0 }, "info.size"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := valid()
			tt.mutate(d)
			err := d.Validate()
			if err == nil {
				t.Fatal("Validate() error = nil, want error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Validate() error = %q, want it to mention %q", err, tt.want)
			}
		})
	}

	if err := valid().Validate(); err != nil {
		t.Errorf("Validate() on valid descriptor = %v, want nil", err)
	}
}

// TestScale tests the design-to-render scale factor.
func TestScale(t *testing.T) {
	d := &Descriptor{Info: Info{Size: 32}}

	tests := []struct {
		fontSize float64
		want     float64
	}{
		{32, 1},
		{16, 0.5},
		{64, 2},
	}

	for _, tt := range tests {
		if got := d.Scale(tt.fontSize); got != tt.want {
			t.Errorf("Scale(%v) = %v, want %v", tt.fontSize, got, tt.want)
		}
	}
}
