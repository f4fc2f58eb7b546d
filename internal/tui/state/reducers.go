package state

// ToggleTheme flips between dark and light.
func ToggleTheme(s UIState) UIState {
    s.Dark = !s.Dark
    return s
}

// Resize records the terminal size.
func Resize(s UIState, width, height int) UIState {
    s.Width = width
    s.Height = height
    return s
}

// FocusNext moves focus forward over n panes, wrapping.
func FocusNext(s UIState, n int) UIState {
    if n <= 0 {
        s.Focus = 0
        return s
    }
    s.Focus = (s.Focus + 1) % n
    return s
}

// FocusPrev moves focus backward over n panes, wrapping.
func FocusPrev(s UIState, n int) UIState {
    if n <= 0 {
        s.Focus = 0
        return s
    }
    s.Focus = (s.Focus - 1 + n) % n
    return s
}

// ClampFocus keeps focus inside a layout of n panes after it shrinks.
func ClampFocus(s UIState, n int) UIState {
    if s.Focus >= n {
        s.Focus = n - 1
    }
    if s.Focus < 0 {
        s.Focus = 0
    }
    return s
}

// ToggleOverlay shows o, or hides it when it is already shown.
func ToggleOverlay(s UIState, o Overlay) UIState {
    if s.Overlay == o {
        s.Overlay = NoOverlay
    } else {
        s.Overlay = o
    }
    return s
}

// ToggleDiffView switches the diff overlay between unified and side-by-side.
func ToggleDiffView(s UIState) UIState {
    s.SideBySide = !s.SideBySide
    return s
}

// Notify sets the status notice. An error notice stays until replaced.
func Notify(s UIState, msg string, isErr bool) UIState {
    s.Notice = msg
    s.NoticeErr = isErr
    return s
}

// ClearNotice drops a non-error notice.
func ClearNotice(s UIState) UIState {
    if !s.NoticeErr {
        s.Notice = ""
    }
    return s
}
