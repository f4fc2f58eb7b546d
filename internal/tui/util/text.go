package util

import "strings"

// Clip returns at most width runes of s starting at rune start.
func Clip(s string, width int, start int) string {
    runes := []rune(s)
    if start < 0 {
        start = 0
    }
    if start >= len(runes) || width <= 0 {
        return ""
    }
    end := start + width
    if end > len(runes) {
        end = len(runes)
    }
    return string(runes[start:end])
}

// Pad right-pads s with spaces to width runes.
func Pad(s string, width int) string {
    if w := len([]rune(s)); w < width {
        return s + strings.Repeat(" ", width-w)
    }
    return s
}

// Ellipsize shortens s to width runes, ending in "…" when cut.
func Ellipsize(s string, width int) string {
    r := []rune(s)
    if len(r) <= width {
        return s
    }
    if width <= 1 {
        return string(r[:width])
    }
    return string(r[:width-1]) + "…"
}

// FirstLine returns the first non-blank line of s, trimmed.
func FirstLine(s string) string {
    for _, ln := range strings.Split(s, "\n") {
        if t := strings.TrimSpace(ln); t != "" {
            return t
        }
    }
    return ""
}
