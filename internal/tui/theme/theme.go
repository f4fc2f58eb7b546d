package theme

import (
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/lipgloss"

	"editorgrid/internal/tui/util"
)

// Editor theme identifiers handed to every pane.
const (
	DarkID  = "vs-dark"
	LightID = "vs-light"
)

// Glyphs for the toggle control. The control shows the mode it switches to.
const (
	LightModeGlyph = "☀"
	DarkModeGlyph  = "☾"
)

// Theme is the resolved styling for one mode.
type Theme struct {
	ID      string
	Dark    bool
	Palette util.Palette

	Title     lipgloss.Style
	Hint      lipgloss.Style
	Selected  lipgloss.Style
	Error     lipgloss.Style
	PaneBox   lipgloss.Style
	FocusBox  lipgloss.Style
	PaneTitle lipgloss.Style
}

// For resolves the theme for the given mode.
func For(dark bool) Theme {
	p := util.LightPalette()
	id := LightID
	if dark {
		p = util.DarkPalette()
		id = DarkID
	}
	box := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(p.Border)
	return Theme{
		ID:        id,
		Dark:      dark,
		Palette:   p,
		Title:     lipgloss.NewStyle().Bold(true).Foreground(p.Primary),
		Hint:      lipgloss.NewStyle().Foreground(p.Muted),
		Selected:  lipgloss.NewStyle().Bold(true).Foreground(p.Focus),
		Error:     lipgloss.NewStyle().Bold(true).Foreground(p.Danger),
		PaneBox:   box,
		FocusBox:  box.BorderForeground(p.Focus),
		PaneTitle: lipgloss.NewStyle().Foreground(p.Muted),
	}
}

// ToggleIcon is the inverse of the current mode.
func (t Theme) ToggleIcon() string {
	if t.Dark {
		return LightModeGlyph
	}
	return DarkModeGlyph
}

// ToggleHint describes what the toggle will do.
func (t Theme) ToggleHint() string {
	if t.Dark {
		return "Switch to light mode"
	}
	return "Switch to dark mode"
}

// Textarea returns focused and blurred styles for the pane editor.
func (t Theme) Textarea() (focused, blurred textarea.Style) {
	p := t.Palette
	text := lipgloss.NewStyle().Foreground(p.Text)
	base := textarea.Style{
		Base:             lipgloss.NewStyle(),
		Text:             text,
		LineNumber:       lipgloss.NewStyle().Foreground(p.Muted),
		CursorLineNumber: lipgloss.NewStyle().Foreground(p.Primary),
		EndOfBuffer:      lipgloss.NewStyle().Foreground(p.Border),
		Placeholder:      lipgloss.NewStyle().Foreground(p.Muted),
		Prompt:           lipgloss.NewStyle().Foreground(p.Border),
		CursorLine:       text,
	}
	focused = base
	focused.CursorLine = text.Background(p.CursorLine)
	blurred = base
	return focused, blurred
}
