package toolbar

import (
    "strings"
    "testing"

    "editorgrid/internal/tui/theme"
)

func TestViewNoColorMarksCurrent(t *testing.T) {
    selects := []Select{
        {Label: "# Editor Rows", Options: []string{"1", "2"}, Current: "2"},
        {Label: "Language", Options: []string{"Markdown", "Rust"}, Current: "Rust", Compact: true},
    }
    out := View(selects, theme.For(false), true)
    for _, want := range []string{"# Editor Rows:", " 1 ", "[2]", "‹ [Rust] ›", "[" + theme.DarkModeGlyph + "]", "Switch to dark mode"} {
        if !strings.Contains(out, want) {
            t.Fatalf("expected %q in %q", want, out)
        }
    }
}

func TestToggleGlyphFollowsTheme(t *testing.T) {
    out := View(nil, theme.For(true), true)
    if !strings.Contains(out, theme.LightModeGlyph) || strings.Contains(out, theme.DarkModeGlyph) {
        t.Fatalf("dark theme should show only the light-mode glyph: %q", out)
    }
}
