package grid

import "editorgrid/internal/prefs"

// Binding connects one pane to its persisted content slot.
// It never holds content itself.
type Binding struct {
	index int
	prefs *prefs.Prefs
}

func (b *Binding) Index() int { return b.index }
func (b *Binding) Key() string { return prefs.ContentKey(b.index) }

// Load returns the stored content, or "" for a slot that was never edited.
// An error means the store could not be read and the slot must not be
// overwritten from an empty pane.
func (b *Binding) Load() (string, error) { return b.prefs.Content(b.index) }

// Edit persists s. It is called on every change event, so each keystroke
// costs one store write.
func (b *Binding) Edit(s string) error { return b.prefs.SetContent(b.index, s) }
