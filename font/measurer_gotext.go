package font

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"
)

func init() {
	RegisterMeasurer("gotext", newGoTextMeasurer)
}

// ascentProbe is the text shaped to obtain line bounds. Its content is
// irrelevant; LineBounds depends only on the face and size.
const ascentProbe = "Mg"

// gotextMeasurer implements Measurer using go-text/typesetting shaping.
// It reports the ascent HarfBuzz-grade shaping would use for line
// bounds, which can differ slightly from the raw sfnt hhea values.
type gotextMeasurer struct {
	font *font.Font

	// shaperPool pools HarfbuzzShaper instances; they carry internal
	// mutable state and are not safe for concurrent use.
	shaperPool sync.Pool
}

// newGoTextMeasurer parses font data with go-text/typesetting.
func newGoTextMeasurer(data []byte) (Measurer, error) {
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("font: failed to parse reference font: %w", err)
	}
	return &gotextMeasurer{
		font: face.Font,
		shaperPool: sync.Pool{
			New: func() any {
				return &shaping.HarfbuzzShaper{}
			},
		},
	}, nil
}

// Ascent implements Measurer.
func (m *gotextMeasurer) Ascent(size float64) float64 {
	// font.Face is not safe for concurrent use; create a lightweight
	// one per call around the shared thread-safe *Font.
	face := font.NewFace(m.font)

	runes := []rune(ascentProbe)
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      face,
		Size:      fixed.Int26_6(size * 64),
		Script:    language.LookupScript('M'),
		Language:  language.NewLanguage("en"),
	}

	shaper := m.shaperPool.Get().(*shaping.HarfbuzzShaper)
	output := shaper.Shape(input)
	m.shaperPool.Put(shaper)

	return fixedToFloat(output.LineBounds.Ascent)
}
