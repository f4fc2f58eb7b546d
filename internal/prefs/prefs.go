package prefs

import (
	"errors"
	"fmt"
	"log"
	"sort"
	"strconv"
	"strings"

	"editorgrid/internal/lang"
	"editorgrid/internal/layout"
)

// Persisted key space. These names are a forward-compatibility contract.
const (
	KeyRows          = "numEditorRows"
	KeyCols          = "numEditorsPerRow"
	KeyLanguage      = "editorLanguage"
	ContentKeyPrefix = "editor-"
)

// ErrUnsupported is returned when a value outside the allowed set is written.
var ErrUnsupported = errors.New("unsupported value")

// ContentKey is the storage key for pane slot i.
func ContentKey(i int) string { return ContentKeyPrefix + strconv.Itoa(i) }

// ParseContentKey extracts the slot index from a content key.
func ParseContentKey(key string) (int, bool) {
	rest, ok := strings.CutPrefix(key, ContentKeyPrefix)
	if !ok {
		return 0, false
	}
	i, err := strconv.Atoi(rest)
	if err != nil || i < 0 || strconv.Itoa(i) != rest {
		return 0, false
	}
	return i, true
}

// Prefs is a typed view over a Store. Layout and language reads never fail:
// absent, corrupted or unreadable values resolve to their defaults. Content
// reads report an unreadable store so a pane is never seeded with a blank
// that would overwrite its slot. Writes return errors.
type Prefs struct {
	store Store
}

func New(s Store) *Prefs { return &Prefs{store: s} }

func (p *Prefs) Store() Store { return p.store }

func (p *Prefs) get(key string) (string, bool) {
	v, ok, err := p.store.Get(key)
	if err != nil {
		log.Printf("prefs: read %s: %v (using default)", key, err)
		return "", false
	}
	return v, ok
}

func (p *Prefs) count(key string, def int) int {
	v, ok := p.get(key)
	if !ok {
		return def
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil || !layout.ValidCount(n) {
		log.Printf("prefs: ignoring corrupted %s=%q", key, v)
		return def
	}
	return n
}

func (p *Prefs) Rows() int { return p.count(KeyRows, layout.DefaultConfig().Rows) }
func (p *Prefs) Cols() int { return p.count(KeyCols, layout.DefaultConfig().Cols) }

// Layout reads both dimensions.
func (p *Prefs) Layout() layout.Config {
	return layout.Config{Rows: p.Rows(), Cols: p.Cols()}
}

func (p *Prefs) Language() lang.Language {
	v, ok := p.get(KeyLanguage)
	if !ok {
		return lang.Default
	}
	l, valid := lang.Parse(v)
	if !valid {
		log.Printf("prefs: ignoring corrupted %s=%q", KeyLanguage, v)
		return lang.Default
	}
	return l
}

// Content returns the text stored for slot i, or "" when none was written.
func (p *Prefs) Content(i int) (string, error) {
	v, _, err := p.store.Get(ContentKey(i))
	if err != nil {
		return "", fmt.Errorf("read %s: %w", ContentKey(i), err)
	}
	return v, nil
}

func (p *Prefs) setCount(key string, n int) error {
	if !layout.ValidCount(n) {
		return fmt.Errorf("%s=%d: %w", key, n, ErrUnsupported)
	}
	if err := p.store.Set(key, strconv.Itoa(n)); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

func (p *Prefs) SetRows(n int) error { return p.setCount(KeyRows, n) }
func (p *Prefs) SetCols(n int) error { return p.setCount(KeyCols, n) }

func (p *Prefs) SetLanguage(l lang.Language) error {
	if !l.Valid() {
		return fmt.Errorf("%s=%q: %w", KeyLanguage, l, ErrUnsupported)
	}
	if err := p.store.Set(KeyLanguage, string(l)); err != nil {
		return fmt.Errorf("save %s: %w", KeyLanguage, err)
	}
	return nil
}

func (p *Prefs) SetContent(i int, s string) error {
	if i < 0 {
		return fmt.Errorf("slot %d: %w", i, ErrUnsupported)
	}
	if err := p.store.Set(ContentKey(i), s); err != nil {
		return fmt.Errorf("save %s: %w", ContentKey(i), err)
	}
	return nil
}

// Slots returns the indices of every stored content slot in ascending order.
// Stores that cannot enumerate return nil.
func (p *Prefs) Slots() ([]int, error) {
	ls, ok := p.store.(Lister)
	if !ok {
		return nil, nil
	}
	keys, err := ls.Keys()
	if err != nil {
		return nil, err
	}
	var out []int
	for _, k := range keys {
		if i, ok := ParseContentKey(k); ok {
			out = append(out, i)
		}
	}
	sort.Ints(out)
	return out, nil
}

// Reset removes the scalar preferences and every enumerable content slot.
func (p *Prefs) Reset() error {
	for _, k := range []string{KeyRows, KeyCols, KeyLanguage} {
		if err := p.store.Remove(k); err != nil {
			return fmt.Errorf("remove %s: %w", k, err)
		}
	}
	slots, err := p.Slots()
	if err != nil {
		return err
	}
	for _, i := range slots {
		if err := p.store.Remove(ContentKey(i)); err != nil {
			return fmt.Errorf("remove %s: %w", ContentKey(i), err)
		}
	}
	return nil
}
