package msdftext

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

// TestSetLogger tests logger installation and the silent default.
func TestSetLogger(t *testing.T) {
	if Logger() == nil {
		t.Fatal("Logger() = nil, want silent default")
	}

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer SetLogger(nil)

	txt := newTestText(t, WithText("ab"))
	txt.Update(WithText("abcd"))

	out := buf.String()
	if !strings.Contains(out, "text") {
		t.Errorf("log output %q, want layout diagnostics", out)
	}

	SetLogger(nil)
	if Logger() == nil {
		t.Error("Logger() = nil after reset, want nop logger")
	}
	if Logger().Enabled(t.Context(), slog.LevelError) {
		t.Error("nop logger reports enabled levels")
	}
}

// TestMissingGlyphWarning tests that layout warns about runes the
// descriptor cannot render.
func TestMissingGlyphWarning(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))
	defer SetLogger(nil)

	// The fixture font has no '¤' glyph; whitespace must not count.
	newTestText(t, WithText("a ¤¤b"))

	out := buf.String()
	if !strings.Contains(out, "level=WARN") || !strings.Contains(out, "runes without glyphs") {
		t.Fatalf("log output %q, want a missing-glyph warning", out)
	}
	if !strings.Contains(out, "count=2") {
		t.Errorf("log output %q, want count=2", out)
	}

	buf.Reset()
	newTestText(t, WithText("ab cd"))
	if strings.Contains(buf.String(), "level=WARN") {
		t.Errorf("log output %q, want no warning for fully covered text", buf.String())
	}
}
