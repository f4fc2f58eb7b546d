package editor

import (
    "fmt"
    "strings"

    "github.com/charmbracelet/bubbles/textarea"
    tea "github.com/charmbracelet/bubbletea"
    "github.com/charmbracelet/lipgloss"

    "editorgrid/internal/lang"
    "editorgrid/internal/tui/theme"
    "editorgrid/internal/tui/util"
)

const (
    border = 2 // one cell on each side
    header = 1
    minW   = 8
    minH   = 1
)

// Pane is one editor in the grid. It owns the widget state only;
// content durability belongs to the grid binding.
type Pane struct {
    Index int
    Key   string
    Area  textarea.Model

    width  int
    height int
}

// New builds a pane seeded with its stored content. CRLF line endings are
// folded to LF; the textarea would otherwise count each as two lines.
func New(index int, key, content string, lineNumbers bool) Pane {
    ta := textarea.New()
    ta.ShowLineNumbers = lineNumbers
    ta.Prompt = ""
    ta.Placeholder = ""
    ta.CharLimit = 0
    ta.MaxHeight = 0
    ta.SetValue(strings.ReplaceAll(content, "\r\n", "\n"))
    return Pane{Index: index, Key: key, Area: ta}
}

// SetSize sets the outer size of the pane including its border.
func (p *Pane) SetSize(w, h int) {
    p.width, p.height = w, h
    iw := w - border
    if iw < minW {
        iw = minW
    }
    ih := h - border - header
    if ih < minH {
        ih = minH
    }
    p.Area.SetWidth(iw)
    p.Area.SetHeight(ih)
}

func (p *Pane) Focus() tea.Cmd { return p.Area.Focus() }
func (p *Pane) Blur() { p.Area.Blur() }
func (p Pane) Focused() bool { return p.Area.Focused() }
func (p Pane) Value() string { return p.Area.Value() }

// Update forwards msg to the textarea and reports whether the content changed.
func (p *Pane) Update(msg tea.Msg) (changed bool, cmd tea.Cmd) {
    before := p.Area.Value()
    p.Area, cmd = p.Area.Update(msg)
    return p.Area.Value() != before, cmd
}

// View renders the pane with the grid-wide language and theme.
func (p Pane) View(th theme.Theme, language lang.Language) string {
    ta := p.Area
    ta.FocusedStyle, ta.BlurredStyle = th.Textarea()
    // reselect the style pointer so the copy renders with the new styles
    if p.Area.Focused() {
        ta.Focus()
    } else {
        ta.Blur()
    }

    box := th.PaneBox
    if p.Area.Focused() {
        box = th.FocusBox
    }
    inner := ta.Width()
    if p.width > 0 {
        inner = max(p.width-border, minW)
    }
    title := fmt.Sprintf("%s · %s · %s", p.Key, language.Label(), th.ID)
    title = th.PaneTitle.Render(util.Ellipsize(title, inner))
    body := lipgloss.JoinVertical(lipgloss.Left, title, ta.View())
    if p.width > 0 && p.height > 0 {
        box = box.Width(p.width - border).Height(p.height - border)
    }
    return box.Render(body)
}
