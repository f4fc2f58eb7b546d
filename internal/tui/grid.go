package tui

import (
	"fmt"
	"log"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"editorgrid/internal/grid"
	"editorgrid/internal/lang"
	"editorgrid/internal/layout"
	"editorgrid/internal/tui/state"
	"editorgrid/internal/tui/theme"
	"editorgrid/internal/tui/views/selects"
	"editorgrid/internal/tui/widgets/editor"
)

// Grid renders the editor panes for a controller. The theme is an input
// it never owns: View takes it as a parameter and the toggle key only
// returns onToggleTheme for the owner to handle.
type Grid struct {
	ctrl          *grid.Controller
	onToggleTheme tea.Cmd
	copyText      func(string) error
	lineNumbers   bool
	keys          keyMap

	cfg      layout.Config
	language lang.Language
	bindings []*grid.Binding
	panes    []editor.Pane
	// loadErrs marks panes whose slot could not be read; edits to them
	// are not persisted so the stored content is never clobbered.
	loadErrs []error
	pending  string
	width    int
	height   int

	cancel func()
}

func newGrid(ctrl *grid.Controller, keys keyMap, lineNumbers bool, copyText func(string) error, onToggleTheme tea.Cmd) *Grid {
	g := &Grid{
		ctrl:          ctrl,
		onToggleTheme: onToggleTheme,
		copyText:      copyText,
		lineNumbers:   lineNumbers,
		keys:          keys,
	}
	g.apply(ctrl.Snapshot(), true)
	g.cancel = ctrl.Subscribe(func(s grid.Snapshot) { g.apply(s, false) })
	return g
}

// Close drops the controller subscription.
func (g *Grid) Close() {
	if g.cancel != nil {
		g.cancel()
		g.cancel = nil
	}
}

// apply mirrors a controller snapshot. Panes are rebuilt from storage only
// when the layout changed; a language change leaves content untouched.
func (g *Grid) apply(s grid.Snapshot, force bool) {
	g.language = s.Language
	if !force && s.Layout == g.cfg {
		return
	}
	g.cfg = s.Layout
	g.bindings = g.ctrl.Bindings()
	g.panes = make([]editor.Pane, len(g.bindings))
	g.loadErrs = make([]error, len(g.bindings))
	for i, b := range g.bindings {
		content, err := b.Load()
		if err != nil {
			log.Printf("load %s: %v", b.Key(), err)
			g.loadErrs[i] = err
			g.pending = "Load failed: " + err.Error()
		}
		g.panes[i] = editor.New(b.Index(), b.Key(), content, g.lineNumbers)
	}
	g.layoutPanes()
}

// takeNotice moves a pending load failure into the status bar.
func (g *Grid) takeNotice(s state.UIState) state.UIState {
	if g.pending == "" {
		return s
	}
	s = state.Notify(s, g.pending, true)
	g.pending = ""
	return s
}

// Resize sets the area available to the panes.
func (g *Grid) Resize(w, h int) {
	g.width, g.height = w, h
	g.layoutPanes()
}

func (g *Grid) layoutPanes() {
	if g.width <= 0 || g.height <= 0 {
		return
	}
	heights := layout.Split(g.height, g.cfg.Rows)
	widths := layout.Split(g.width, g.cfg.Cols)
	for i, p := range g.cfg.Panes() {
		if i < len(g.panes) {
			g.panes[i].SetSize(widths[p.Col], heights[p.Row])
		}
	}
}

func (g *Grid) focus(i int) tea.Cmd {
	var cmd tea.Cmd
	for j := range g.panes {
		if j == i {
			cmd = g.panes[j].Focus()
		} else {
			g.panes[j].Blur()
		}
	}
	return cmd
}

// Init focuses the first pane.
func (g *Grid) Init() tea.Cmd { return g.focus(0) }

// Update handles grid keys and forwards everything else to the focused pane.
func (g *Grid) Update(msg tea.Msg, s state.UIState) (state.UIState, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(km, g.keys.Rows):
			return g.relayout(s, g.ctrl.SetRows(selects.NextCount(g.cfg.Rows)))
		case key.Matches(km, g.keys.Cols):
			return g.relayout(s, g.ctrl.SetCols(selects.NextCount(g.cfg.Cols)))
		case key.Matches(km, g.keys.LangNext):
			return g.setLanguage(s, g.language.Next())
		case key.Matches(km, g.keys.LangPrev):
			return g.setLanguage(s, g.language.Prev())
		case key.Matches(km, g.keys.Theme):
			return s, g.onToggleTheme
		case key.Matches(km, g.keys.NextPane):
			s = state.FocusNext(s, len(g.panes))
			return s, g.focus(s.Focus)
		case key.Matches(km, g.keys.PrevPane):
			s = state.FocusPrev(s, len(g.panes))
			return s, g.focus(s.Focus)
		case key.Matches(km, g.keys.Copy):
			return g.copyFocused(s), nil
		}
	}
	if s.Focus < 0 || s.Focus >= len(g.panes) {
		return s, nil
	}
	changed, cmd := g.panes[s.Focus].Update(msg)
	if changed {
		if err := g.loadErrs[s.Focus]; err != nil {
			return state.Notify(s, g.bindings[s.Focus].Key()+" not saved: "+err.Error(), true), cmd
		}
		if err := g.bindings[s.Focus].Edit(g.panes[s.Focus].Value()); err != nil {
			log.Printf("save %s: %v", g.bindings[s.Focus].Key(), err)
			s = state.Notify(s, "Save failed: "+err.Error(), true)
		} else if s.NoticeErr {
			s = state.Notify(s, "", false)
		}
	}
	return s, cmd
}

func (g *Grid) relayout(s state.UIState, err error) (state.UIState, tea.Cmd) {
	if err != nil {
		log.Printf("layout: %v", err)
		return state.Notify(s, "Layout not saved: "+err.Error(), true), nil
	}
	s = state.ClampFocus(s, len(g.panes))
	s = state.Notify(s, fmt.Sprintf("Grid %dx%d", g.cfg.Rows, g.cfg.Cols), false)
	return g.takeNotice(s), g.focus(s.Focus)
}

func (g *Grid) setLanguage(s state.UIState, l lang.Language) (state.UIState, tea.Cmd) {
	if err := g.ctrl.SetLanguage(l); err != nil {
		log.Printf("language: %v", err)
		return state.Notify(s, "Language not saved: "+err.Error(), true), nil
	}
	return state.Notify(s, "Language: "+l.Label(), false), nil
}

func (g *Grid) copyFocused(s state.UIState) state.UIState {
	if s.Focus < 0 || s.Focus >= len(g.panes) || g.copyText == nil {
		return s
	}
	p := g.panes[s.Focus]
	if err := g.copyText(p.Value()); err != nil {
		return state.Notify(s, "Copy failed: "+err.Error(), true)
	}
	return state.Notify(s, "Copied "+p.Key+" to clipboard", false)
}

// Compare returns the focused pane and the one after it, wrapping.
func (g *Grid) Compare(focus int) (left, right editor.Pane, ok bool) {
	if len(g.panes) < 2 || focus < 0 || focus >= len(g.panes) {
		return editor.Pane{}, editor.Pane{}, false
	}
	return g.panes[focus], g.panes[(focus+1)%len(g.panes)], true
}

// FocusedKey is the storage key of the focused pane.
func (g *Grid) FocusedKey(focus int) string {
	if focus < 0 || focus >= len(g.panes) {
		return ""
	}
	return g.panes[focus].Key
}

func (g *Grid) Layout() layout.Config { return g.cfg }
func (g *Grid) Language() lang.Language { return g.language }
func (g *Grid) Len() int { return len(g.panes) }

// View draws the panes row-major with the given theme.
func (g *Grid) View(th theme.Theme) string {
	rows := make([]string, 0, g.cfg.Rows)
	for r := 0; r < g.cfg.Rows; r++ {
		cells := make([]string, 0, g.cfg.Cols)
		for c := 0; c < g.cfg.Cols; c++ {
			i := layout.FlatIndex(r, c, g.cfg.Cols)
			if i < len(g.panes) {
				cells = append(cells, g.panes[i].View(th, g.language))
			}
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
