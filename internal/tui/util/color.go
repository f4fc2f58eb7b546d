package util

import (
    "os"

    "github.com/charmbracelet/lipgloss"
)

// NoColor returns true if color output should be disabled.
func NoColor(explicit bool) bool {
    if explicit {
        return true
    }
    return os.Getenv("NO_COLOR") != ""
}

// Palette defines the colors of one theme.
type Palette struct {
    Background lipgloss.Color
    Text       lipgloss.Color
    Primary    lipgloss.Color
    Border     lipgloss.Color
    Focus      lipgloss.Color
    Danger     lipgloss.Color
    Success    lipgloss.Color
    Muted      lipgloss.Color
    CursorLine lipgloss.Color
}

// LightPalette mirrors the "vs-light" editor theme.
func LightPalette() Palette {
    return Palette{
        Background: lipgloss.Color("#FFFFFF"),
        Text:       lipgloss.Color("#1E1E1E"),
        Primary:    lipgloss.Color("#0066B8"),
        Border:     lipgloss.Color("#9E9E9E"),
        Focus:      lipgloss.Color("#3D6DFF"),
        Danger:     lipgloss.Color("#D9534F"),
        Success:    lipgloss.Color("#2AA876"),
        Muted:      lipgloss.Color("#6C757D"),
        CursorLine: lipgloss.Color("#F0F0F0"),
    }
}

// DarkPalette mirrors the "vs-dark" editor theme.
func DarkPalette() Palette {
    return Palette{
        Background: lipgloss.Color("#1E1E1E"),
        Text:       lipgloss.Color("#D4D4D4"),
        Primary:    lipgloss.Color("#569CD6"),
        Border:     lipgloss.Color("#5A5A5A"),
        Focus:      lipgloss.Color("#3D6DFF"),
        Danger:     lipgloss.Color("#F48771"),
        Success:    lipgloss.Color("#89D185"),
        Muted:      lipgloss.Color("#858585"),
        CursorLine: lipgloss.Color("#2A2D2E"),
    }
}
