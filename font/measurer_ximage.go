package font

import (
	"fmt"
	"sync"

	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

func init() {
	RegisterMeasurer("ximage", newXImageMeasurer)
}

// ximageMeasurer implements Measurer using golang.org/x/image/font/sfnt.
type ximageMeasurer struct {
	font *opentype.Font

	// mu guards buf; sfnt.Buffer is not safe for concurrent use.
	mu  sync.Mutex
	buf sfnt.Buffer
}

// newXImageMeasurer parses font data with x/image opentype.
func newXImageMeasurer(data []byte) (Measurer, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("font: failed to parse reference font: %w", err)
	}
	return &ximageMeasurer{font: f}, nil
}

// Ascent implements Measurer.
func (m *ximageMeasurer) Ascent(size float64) float64 {
	m.mu.Lock()
	defer m.mu.Unlock()

	metrics, err := m.font.Metrics(&m.buf, fixed.Int26_6(size*64), xfont.HintingFull)
	if err != nil {
		return 0
	}
	return fixedToFloat(metrics.Ascent)
}

// fixedToFloat converts a fixed.Int26_6 value to float64.
func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}
