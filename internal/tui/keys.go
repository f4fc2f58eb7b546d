package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"editorgrid/internal/tui/widgets/helpoverlay"
)

// keyMap avoids the textarea's own ctrl bindings where it can; anything
// matched here never reaches the focused pane.
type keyMap struct {
	Rows     key.Binding
	Cols     key.Binding
	LangNext key.Binding
	LangPrev key.Binding
	Theme    key.Binding
	NextPane key.Binding
	PrevPane key.Binding
	Copy     key.Binding
	Diff     key.Binding
	DiffView key.Binding
	Help     key.Binding
	Close    key.Binding
	Quit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Rows: key.NewBinding(
			key.WithKeys("ctrl+r", "f2"),
			key.WithHelp("ctrl+r", "rows 1/2"),
		),
		Cols: key.NewBinding(
			key.WithKeys("ctrl+o", "f3"),
			key.WithHelp("ctrl+o", "editors per row 1/2"),
		),
		LangNext: key.NewBinding(
			key.WithKeys("ctrl+l", "f4"),
			key.WithHelp("ctrl+l", "next language"),
		),
		LangPrev: key.NewBinding(
			key.WithKeys("f5"),
			key.WithHelp("f5", "previous language"),
		),
		Theme: key.NewBinding(
			key.WithKeys("ctrl+t", "f6"),
			key.WithHelp("ctrl+t", "toggle theme"),
		),
		NextPane: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next pane"),
		),
		PrevPane: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "previous pane"),
		),
		Copy: key.NewBinding(
			key.WithKeys("ctrl+y"),
			key.WithHelp("ctrl+y", "copy pane"),
		),
		Diff: key.NewBinding(
			key.WithKeys("f7"),
			key.WithHelp("f7", "compare with next pane"),
		),
		DiffView: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "unified/side-by-side (in compare)"),
		),
		Help: key.NewBinding(
			key.WithKeys("f1"),
			key.WithHelp("f1", "help"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close overlay"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "ctrl+q"),
			key.WithHelp("ctrl+q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Rows, k.Cols, k.LangNext, k.Theme, k.NextPane, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Rows, k.Cols, k.LangNext, k.LangPrev, k.Theme},
		{k.NextPane, k.PrevPane, k.Copy},
		{k.Diff, k.DiffView, k.Help, k.Close, k.Quit},
	}
}

func (k keyMap) sections() []helpoverlay.Section {
	full := k.FullHelp()
	return []helpoverlay.Section{
		{Title: "Layout & language", Bindings: full[0]},
		{Title: "Panes", Bindings: full[1]},
		{Title: "View", Bindings: full[2]},
	}
}
