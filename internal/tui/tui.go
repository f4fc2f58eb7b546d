package tui

import (
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"editorgrid/internal/grid"
	"editorgrid/internal/tui/state"
	"editorgrid/internal/tui/theme"
	"editorgrid/internal/tui/views/selects"
	"editorgrid/internal/tui/widgets/diff"
	"editorgrid/internal/tui/widgets/helpoverlay"
	"editorgrid/internal/tui/widgets/statusbar"
	"editorgrid/internal/tui/widgets/toolbar"
)

// Options configure a session. Dark is only the initial theme; it is never saved.
type Options struct {
	Dark        bool
	LineNumbers bool
	NoColor     bool
	// Clipboard defaults to the system clipboard.
	Clipboard func(string) error
}

// Run shows the editor grid until the user quits.
func Run(ctrl *grid.Controller, opts Options) error {
	m := NewApp(ctrl, opts)
	defer m.Close()
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// toolbar + blank line above the grid, status + help below
const chromeLines = 4

type themeToggledMsg struct{}

func toggleTheme() tea.Msg { return themeToggledMsg{} }

// App is the top-level model. It exclusively owns the theme flag and hands
// it to the grid read-only.
type App struct {
	state   state.UIState
	grid    *Grid
	keys    keyMap
	help    help.Model
	noColor bool
}

func NewApp(ctrl *grid.Controller, opts Options) *App {
	copyText := opts.Clipboard
	if copyText == nil {
		copyText = clipboard.WriteAll
	}
	keys := defaultKeyMap()
	a := &App{
		state:   state.UIState{Dark: opts.Dark},
		grid:    newGrid(ctrl, keys, opts.LineNumbers, copyText, toggleTheme),
		keys:    keys,
		help:    help.New(),
		noColor: opts.NoColor,
	}
	a.state = a.grid.takeNotice(a.state)
	return a
}

// Close releases the grid's controller subscription.
func (a *App) Close() { a.grid.Close() }

// State exposes the UI state for callers embedding the model.
func (a *App) State() state.UIState { return a.state }

func (a *App) Init() tea.Cmd {
	return tea.Batch(tea.SetWindowTitle("editorgrid"), a.grid.Init())
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.state = state.Resize(a.state, msg.Width, msg.Height)
		a.help.Width = msg.Width
		a.grid.Resize(msg.Width, max(msg.Height-chromeLines, 4))
		return a, nil
	case themeToggledMsg:
		a.state = state.ToggleTheme(a.state)
		return a, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, a.keys.Quit):
			return a, tea.Quit
		case key.Matches(msg, a.keys.Help):
			a.state = state.ToggleOverlay(a.state, state.HelpOverlay)
			return a, nil
		case key.Matches(msg, a.keys.Diff):
			if _, _, ok := a.grid.Compare(a.state.Focus); !ok {
				a.state = state.Notify(a.state, "Nothing to compare: single pane", false)
				return a, nil
			}
			a.state = state.ToggleOverlay(a.state, state.DiffOverlay)
			return a, nil
		}
		if a.state.Overlay != state.NoOverlay {
			// overlays swallow keys so nothing leaks into a pane
			switch {
			case key.Matches(msg, a.keys.Close):
				a.state.Overlay = state.NoOverlay
			case a.state.Overlay == state.DiffOverlay && key.Matches(msg, a.keys.DiffView):
				a.state = state.ToggleDiffView(a.state)
			}
			return a, nil
		}
		a.state = state.ClearNotice(a.state)
	}
	var cmd tea.Cmd
	a.state, cmd = a.grid.Update(msg, a.state)
	return a, cmd
}

func (a *App) View() string {
	th := theme.For(a.state.Dark)
	cfg, language := a.grid.Layout(), a.grid.Language()

	var body string
	switch a.state.Overlay {
	case state.HelpOverlay:
		body = helpoverlay.View(a.keys.sections(), selects.Help(cfg, language), th)
	case state.DiffOverlay:
		body = a.diffView(th)
	default:
		body = a.grid.View(th)
	}

	info := statusbar.Info{Layout: cfg, Language: language, Key: a.grid.FocusedKey(a.state.Focus)}
	var b strings.Builder
	b.WriteString(toolbar.View(selects.Toolbar(cfg, language), th, a.noColor) + "\n\n")
	b.WriteString(body + "\n")
	b.WriteString(statusbar.View(a.state, info, th) + "\n")
	b.WriteString(a.help.View(a.keys))
	return b.String()
}

func (a *App) diffView(th theme.Theme) string {
	left, right, ok := a.grid.Compare(a.state.Focus)
	if !ok {
		return th.Hint.Render("Nothing to compare")
	}
	st := diff.NewStyles(th.Palette)
	var out string
	if a.state.SideBySide {
		w := (a.state.Width - 3) / 2
		out = diff.SideBySide(left.Key, left.Value(), right.Key, right.Value(), w, st)
	} else {
		out = diff.Unified(left.Key, left.Value(), right.Key, right.Value(), st)
	}
	box := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(th.Palette.Border).Padding(0, 1)
	return box.Render(strings.TrimRight(out, "\n")) + "\n" + th.Hint.Render("v: unified/side-by-side   esc: close")
}
