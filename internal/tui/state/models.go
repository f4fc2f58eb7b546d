package state

// Overlay selects what, if anything, is drawn over the grid.
type Overlay int

const (
    NoOverlay Overlay = iota
    HelpOverlay
    DiffOverlay
)

// UIState holds cross-widget UI state used by the toolbar, status bar and panes.
// Dark is the session-only theme flag; it is never persisted.
type UIState struct {
    Dark bool

    // Layout
    Width  int
    Height int
    Focus  int // position of the focused pane in the current layout

    Overlay    Overlay
    SideBySide bool // diff overlay layout

    // Notices and ephemeral messages
    Notice    string
    NoticeErr bool
}
