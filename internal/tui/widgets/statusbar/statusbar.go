package statusbar

import (
    "fmt"
    "strings"

    "editorgrid/internal/lang"
    "editorgrid/internal/layout"
    "editorgrid/internal/tui/state"
    "editorgrid/internal/tui/theme"
)

// Info is the grid state shown alongside the UI state.
type Info struct {
    Layout   layout.Config
    Language lang.Language
    Key      string // storage key of the focused pane
}

// View composes a concise status line reflecting key UI state.
func View(s state.UIState, in Info, th theme.Theme) string {
    pos := fmt.Sprintf("Pane %d/%d", s.Focus+1, in.Layout.Len())
    grid := fmt.Sprintf("%dx%d", in.Layout.Rows, in.Layout.Cols)
    parts := []string{pos, in.Key, grid, in.Language.Label(), th.ID}
    line := th.Hint.Render(strings.Join(parts, "  "))
    if s.Notice != "" {
        if s.NoticeErr {
            line += "  " + th.Error.Render(s.Notice)
        } else {
            line += "  " + th.Selected.Render(s.Notice)
        }
    }
    return line
}
