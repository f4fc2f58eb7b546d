package state

import "testing"

func TestToggleTheme(t *testing.T) {
    s := UIState{}
    s = ToggleTheme(s)
    if !s.Dark { t.Fatalf("expected dark after toggle") }
    s = ToggleTheme(s)
    if s.Dark { t.Fatalf("expected light after second toggle") }
}

func TestFocusWraps(t *testing.T) {
    s := UIState{Focus: 3}
    s = FocusNext(s, 4)
    if s.Focus != 0 { t.Fatalf("expected wrap to 0, got %d", s.Focus) }
    s = FocusPrev(s, 4)
    if s.Focus != 3 { t.Fatalf("expected wrap to 3, got %d", s.Focus) }
    s = FocusNext(s, 0)
    if s.Focus != 0 { t.Fatalf("expected 0 with no panes") }
}

func TestClampFocus(t *testing.T) {
    s := UIState{Focus: 3}
    s = ClampFocus(s, 2)
    if s.Focus != 1 { t.Fatalf("expected clamp to 1, got %d", s.Focus) }
}

func TestToggleOverlay(t *testing.T) {
    s := UIState{}
    s = ToggleOverlay(s, HelpOverlay)
    if s.Overlay != HelpOverlay { t.Fatalf("expected help overlay") }
    s = ToggleOverlay(s, DiffOverlay)
    if s.Overlay != DiffOverlay { t.Fatalf("expected diff overlay to replace help") }
    s = ToggleOverlay(s, DiffOverlay)
    if s.Overlay != NoOverlay { t.Fatalf("expected overlay hidden") }
}

func TestNoticeErrorsStick(t *testing.T) {
    s := Notify(UIState{}, "saved", false)
    s = ClearNotice(s)
    if s.Notice != "" { t.Fatalf("expected plain notice cleared") }
    s = Notify(s, "write failed", true)
    s = ClearNotice(s)
    if s.Notice == "" { t.Fatalf("error notice should stick") }
}

func TestToggleDiffView(t *testing.T) {
    s := ToggleDiffView(UIState{})
    if !s.SideBySide { t.Fatalf("expected side-by-side") }
}
