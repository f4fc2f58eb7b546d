// Package grid keeps the editor grid's layout, language and pane contents
// write-through consistent with a preference store.
//
// Every mutation is persisted first; the in-memory mirror changes only when
// the write succeeded, and subscribers are notified afterwards.
package grid

import (
	"log"

	"editorgrid/internal/lang"
	"editorgrid/internal/layout"
	"editorgrid/internal/prefs"
)

// Snapshot is the state a renderer needs to draw the grid.
type Snapshot struct {
	Layout   layout.Config
	Language lang.Language
	Panes    []layout.Pane
}

// Controller is not safe for concurrent use; callers drive it from one
// event loop.
type Controller struct {
	prefs    *prefs.Prefs
	cfg      layout.Config
	language lang.Language
	panes    []layout.Pane

	subs   map[int]func(Snapshot)
	order  []int
	nextID int
}

// New reads the initial state from p, applying defaults for anything
// absent or corrupted.
func New(p *prefs.Prefs) *Controller {
	c := &Controller{
		prefs:    p,
		cfg:      p.Layout(),
		language: p.Language(),
		subs:     map[int]func(Snapshot){},
	}
	if !c.cfg.Valid() {
		log.Printf("layout: unsupported %dx%d, using default", c.cfg.Rows, c.cfg.Cols)
		c.cfg = layout.DefaultConfig()
	}
	c.panes = c.cfg.Panes()
	return c
}

func (c *Controller) Layout() layout.Config { return c.cfg }
func (c *Controller) Language() lang.Language { return c.language }
func (c *Controller) Panes() []layout.Pane { return append([]layout.Pane(nil), c.panes...) }

func (c *Controller) Snapshot() Snapshot {
	return Snapshot{Layout: c.cfg, Language: c.language, Panes: c.Panes()}
}

// SetRows persists and applies a new row count.
func (c *Controller) SetRows(n int) error {
	if err := c.prefs.SetRows(n); err != nil {
		return err
	}
	c.cfg.Rows = n
	c.relayout()
	return nil
}

// SetCols persists and applies a new column count.
func (c *Controller) SetCols(n int) error {
	if err := c.prefs.SetCols(n); err != nil {
		return err
	}
	c.cfg.Cols = n
	c.relayout()
	return nil
}

// SetLanguage persists and applies the grid-wide language.
func (c *Controller) SetLanguage(l lang.Language) error {
	if err := c.prefs.SetLanguage(l); err != nil {
		return err
	}
	log.Printf("Language changed to: %s", l)
	c.language = l
	c.notify()
	return nil
}

func (c *Controller) relayout() {
	c.panes = c.cfg.Panes()
	log.Printf("layout: %dx%d (%d panes)", c.cfg.Rows, c.cfg.Cols, len(c.panes))
	c.notify()
}

// Subscribe registers fn to be called with a fresh Snapshot after every
// successful mutation. The returned func removes the subscription.
func (c *Controller) Subscribe(fn func(Snapshot)) (cancel func()) {
	id := c.nextID
	c.nextID++
	c.subs[id] = fn
	c.order = append(c.order, id)
	return func() {
		delete(c.subs, id)
		for i, v := range c.order {
			if v == id {
				c.order = append(c.order[:i], c.order[i+1:]...)
				break
			}
		}
	}
}

func (c *Controller) notify() {
	s := c.Snapshot()
	for _, id := range append([]int(nil), c.order...) {
		if fn, ok := c.subs[id]; ok {
			fn(s)
		}
	}
}

// Binding returns the binding for a pane index of the current layout,
// or nil when the index is not addressed by any current pane.
func (c *Controller) Binding(index int) *Binding {
	if index < 0 || index >= len(c.panes) {
		return nil
	}
	return &Binding{index: c.panes[index].Index, prefs: c.prefs}
}

// Bindings returns one binding per current pane in layout order.
func (c *Controller) Bindings() []*Binding {
	out := make([]*Binding, len(c.panes))
	for i, p := range c.panes {
		out[i] = &Binding{index: p.Index, prefs: c.prefs}
	}
	return out
}
