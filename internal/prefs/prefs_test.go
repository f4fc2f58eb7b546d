package prefs

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"editorgrid/internal/lang"
)

func TestDefaultsWhenEmpty(t *testing.T) {
	p := New(NewMemory())
	if p.Rows() != 1 || p.Cols() != 1 {
		t.Fatalf("expected 1x1, got %dx%d", p.Rows(), p.Cols())
	}
	if p.Language() != lang.Markdown {
		t.Fatalf("expected markdown, got %q", p.Language())
	}
	if v, err := p.Content(0); err != nil || v != "" {
		t.Fatalf("expected empty content, got %q (%v)", v, err)
	}
}

func TestCorruptedValuesFallBack(t *testing.T) {
	m := NewMemory()
	_ = m.Set(KeyRows, "3")
	_ = m.Set(KeyCols, "two")
	_ = m.Set(KeyLanguage, "cobol")
	p := New(m)
	if p.Rows() != 1 || p.Cols() != 1 {
		t.Fatalf("expected fallback 1x1, got %dx%d", p.Rows(), p.Cols())
	}
	if p.Language() != lang.Default {
		t.Fatalf("expected default language, got %q", p.Language())
	}
}

func TestUnreadableStoreFallsBack(t *testing.T) {
	m := NewMemory()
	m.Err = errors.New("disabled")
	p := New(m)
	if p.Rows() != 1 || p.Language() != lang.Default {
		t.Fatalf("expected defaults from an unreadable store")
	}
	if _, err := p.Content(2); err == nil || !strings.Contains(err.Error(), "disabled") {
		t.Fatalf("content read error must surface, got %v", err)
	}
	if err := p.SetRows(2); err == nil {
		t.Fatalf("expected write error to surface")
	}
}

func TestSetValidates(t *testing.T) {
	p := New(NewMemory())
	if err := p.SetRows(3); !errors.Is(err, ErrUnsupported) {
		t.Fatalf("expected ErrUnsupported, got %v", err)
	}
	if err := p.SetLanguage("cobol"); !errors.Is(err, ErrUnsupported) {
		t.Fatalf("expected ErrUnsupported, got %v", err)
	}
	if err := p.SetCols(2); err != nil {
		t.Fatalf("SetCols: %v", err)
	}
	if v, _, _ := p.Store().Get(KeyCols); v != "2" {
		t.Fatalf("expected serialized \"2\", got %q", v)
	}
}

func TestLanguageIdempotent(t *testing.T) {
	m := NewMemory()
	p := New(m)
	for i := 0; i < 2; i++ {
		if err := p.SetLanguage(lang.Rust); err != nil {
			t.Fatalf("SetLanguage: %v", err)
		}
	}
	if v, _, _ := m.Get(KeyLanguage); v != "rust" {
		t.Fatalf("expected rust, got %q", v)
	}
	keys, _ := m.Keys()
	if len(keys) != 1 {
		t.Fatalf("expected a single key, got %v", keys)
	}
}

func TestContentKeys(t *testing.T) {
	if ContentKey(3) != "editor-3" {
		t.Fatalf("unexpected key %q", ContentKey(3))
	}
	for key, want := range map[string]int{"editor-0": 0, "editor-12": 12} {
		if i, ok := ParseContentKey(key); !ok || i != want {
			t.Fatalf("ParseContentKey(%q) = %d, %v", key, i, ok)
		}
	}
	for _, bad := range []string{"editor-", "editor--1", "editor-01", "numEditorRows", "editor-x"} {
		if _, ok := ParseContentKey(bad); ok {
			t.Fatalf("ParseContentKey(%q) should fail", bad)
		}
	}
}

func TestFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "prefs.json")
	f, err := OpenFile(path)
	if err != nil {
		t.Fatalf("OpenFile: %v", err)
	}
	p := New(f)
	if err := p.SetRows(2); err != nil {
		t.Fatalf("SetRows: %v", err)
	}
	if err := p.SetContent(1, "fn main() {}\n"); err != nil {
		t.Fatalf("SetContent: %v", err)
	}
	if err := p.SetContent(1, "fn main() { println!(); }\n"); err != nil {
		t.Fatalf("SetContent: %v", err)
	}

	f2, err := OpenFile(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	p2 := New(f2)
	if p2.Rows() != 2 {
		t.Fatalf("expected rows=2 after reopen, got %d", p2.Rows())
	}
	if got, _ := p2.Content(1); got != "fn main() { println!(); }\n" {
		t.Fatalf("expected last-written content, got %q", got)
	}
}

func TestOpenFileRejectsGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.json")
	_ = os.WriteFile(path, []byte("not json"), 0644)
	if _, err := OpenFile(path); err == nil || !strings.Contains(err.Error(), "parse store") {
		t.Fatalf("expected parse error, got %v", err)
	}
}

func TestFileWriteFailureKeepsPreviousValue(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "store")
	f, err := OpenFile(filepath.Join(dir, "prefs.json"))
	if err != nil {
		t.Fatalf("OpenFile: %v", err)
	}
	if err := f.Set(KeyRows, "1"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	// swap the store directory for a regular file so every flush fails
	if err := os.RemoveAll(dir); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(dir, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := f.Set(KeyRows, "2"); err == nil {
		t.Fatalf("expected write error")
	}
	if v, _, _ := f.Get(KeyRows); v != "1" {
		t.Fatalf("failed write must keep the previous value, got %q", v)
	}
	if err := f.Set(KeyLanguage, "rust"); err == nil {
		t.Fatalf("expected write error")
	}
	if _, ok, _ := f.Get(KeyLanguage); ok {
		t.Fatalf("failed write of a new key must not be visible")
	}
}

func TestOpenFileSkipsNonStringValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.json")
	_ = os.WriteFile(path, []byte(`{"numEditorRows": 2, "editorLanguage": null, "editor-0": "keep me"}`), 0644)
	f, err := OpenFile(path)
	if err != nil {
		t.Fatalf("OpenFile: %v", err)
	}
	p := New(f)
	if p.Rows() != 1 || p.Language() != lang.Default {
		t.Fatalf("bad entries should fall back to defaults, got rows=%d lang=%q", p.Rows(), p.Language())
	}
	if v, err := p.Content(0); err != nil || v != "keep me" {
		t.Fatalf("expected editor-0 to survive, got %q (%v)", v, err)
	}
}

func TestSlotsAndReset(t *testing.T) {
	m := NewMemory()
	p := New(m)
	_ = p.SetRows(2)
	_ = p.SetLanguage(lang.Python)
	_ = p.SetContent(3, "c")
	_ = p.SetContent(0, "a")
	slots, err := p.Slots()
	if err != nil {
		t.Fatalf("Slots: %v", err)
	}
	if len(slots) != 2 || slots[0] != 0 || slots[1] != 3 {
		t.Fatalf("unexpected slots %v", slots)
	}
	if err := p.Reset(); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	if keys, _ := m.Keys(); len(keys) != 0 {
		t.Fatalf("expected empty store, got %v", keys)
	}
}
