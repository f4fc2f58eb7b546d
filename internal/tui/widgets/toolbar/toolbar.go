package toolbar

import (
    "fmt"
    "strings"

    "github.com/charmbracelet/lipgloss"

    "editorgrid/internal/tui/theme"
    "editorgrid/internal/tui/util"
)

// Select is one toolbar control: a label, its fixed options and the current pick.
type Select struct {
    Label   string
    Options []string
    Current string
    Compact bool // show only the current option between arrows
}

// View renders the selects followed by the theme toggle. Colored chips are
// used unless color is disabled, in which case brackets mark the current option.
func View(selects []Select, th theme.Theme, noColor bool) string {
    noColor = util.NoColor(noColor)
    parts := make([]string, 0, len(selects)+1)
    for _, s := range selects {
        parts = append(parts, renderSelect(s, th, noColor))
    }
    parts = append(parts, renderToggle(th, noColor))
    return strings.Join(parts, "   ")
}

func renderSelect(s Select, th theme.Theme, noColor bool) string {
    label := s.Label + ":"
    if !noColor {
        label = th.Hint.Render(label)
    }
    if s.Compact {
        return fmt.Sprintf("%s ‹ %s ›", label, chip(s.Current, true, th, noColor))
    }
    opts := make([]string, 0, len(s.Options))
    for _, o := range s.Options {
        opts = append(opts, chip(o, o == s.Current, th, noColor))
    }
    return label + " " + strings.Join(opts, " ")
}

func chip(text string, selected bool, th theme.Theme, noColor bool) string {
    if noColor {
        if selected {
            return "[" + text + "]"
        }
        return " " + text + " "
    }
    if selected {
        return chipStyle(th).Render(text)
    }
    return lipgloss.NewStyle().Padding(0, 1).Render(text)
}

func chipStyle(th theme.Theme) lipgloss.Style {
    return lipgloss.NewStyle().
        Padding(0, 1).
        Bold(true).
        Background(th.Palette.Focus).
        Foreground(lipgloss.Color("#FFFFFF"))
}

func renderToggle(th theme.Theme, noColor bool) string {
    icon := th.ToggleIcon()
    if noColor {
        return fmt.Sprintf("[%s] %s", icon, th.ToggleHint())
    }
    return chipStyle(th).Render(icon) + " " + th.Hint.Render(th.ToggleHint())
}
