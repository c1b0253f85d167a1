package font

import (
	"sync"
)

// Measurer supplies reference text metrics from a conventional
// (non-MSDF) rendering of the same typeface. Layout uses the reference
// ascent to anchor atlas glyph baselines so that MSDF text lines up
// with text sized by a regular rasterizer at the same font size.
//
// Measurers must be safe for reuse across unrelated layout passes:
// no per-call state may leak between invocations.
type Measurer interface {
	// Ascent returns the reference ascent in pixels at the given
	// font size.
	Ascent(size float64) float64
}

// MeasurerFactory constructs a Measurer from raw font data (TTF or OTF).
// This abstraction allows swapping the reference metrics backend
// (e.g., golang.org/x/image/font/sfnt vs go-text/typesetting).
type MeasurerFactory func(data []byte) (Measurer, error)

var (
	measurerMu       sync.RWMutex
	measurerBackends = map[string]MeasurerFactory{}
)

// defaultMeasurerName is the backend used when none is requested.
const defaultMeasurerName = "ximage"

// RegisterMeasurer registers a measurer backend under a name.
// Registering an existing name replaces the previous factory.
func RegisterMeasurer(name string, factory MeasurerFactory) {
	measurerMu.Lock()
	defer measurerMu.Unlock()
	measurerBackends[name] = factory
}

// getMeasurerFactory returns the factory registered under name.
func getMeasurerFactory(name string) (MeasurerFactory, bool) {
	measurerMu.RLock()
	defer measurerMu.RUnlock()
	f, ok := measurerBackends[name]
	return f, ok
}

// MeasurerOption configures NewMeasurer.
type MeasurerOption func(*measurerConfig)

// measurerConfig holds configuration for NewMeasurer.
type measurerConfig struct {
	backendName string
}

// defaultMeasurerConfig returns the default measurer configuration.
func defaultMeasurerConfig() measurerConfig {
	return measurerConfig{backendName: defaultMeasurerName}
}

// WithBackend selects the measurer backend by registered name.
// The default is "ximage"; "gotext" selects the go-text/typesetting
// backend.
func WithBackend(name string) MeasurerOption {
	return func(c *measurerConfig) {
		c.backendName = name
	}
}

// NewMeasurer creates a reference measurer from font data.
//
// Construction is the fatal point of the measurement path: if the font
// data cannot be parsed, no layout metrics can ever be produced, so the
// error must be surfaced rather than deferred to measurement time.
func NewMeasurer(data []byte, opts ...MeasurerOption) (Measurer, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	config := defaultMeasurerConfig()
	for _, opt := range opts {
		opt(&config)
	}

	factory, ok := getMeasurerFactory(config.backendName)
	if !ok {
		return nil, &UnknownMeasurerError{Name: config.backendName}
	}
	return factory(data)
}

// FixedMeasurer is a Measurer with a constant ascent-to-size ratio.
// It serves embedders that already know their reference metrics, and
// tests that need deterministic values without parsing a font.
type FixedMeasurer struct {
	// Ratio is ascent divided by font size. Typical Latin fonts sit
	// around 0.75-0.95.
	Ratio float64
}

// Ascent implements Measurer.
func (m FixedMeasurer) Ascent(size float64) float64 {
	return m.Ratio * size
}
