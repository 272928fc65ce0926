// Package navbar keeps exactly one navigation entry active and the underline
// marker sized and positioned over it.
package navbar

import (
	"errors"
	"fmt"

	"github.com/ziadkadry99/cityclock/internal/page"
)

var (
	// ErrUnavailable is returned when the page has no navigation entries or
	// no underline marker to drive.
	ErrUnavailable = errors.New("navigation items not available")
	// ErrUnknownKey is returned when activating a key that was never rendered.
	ErrUnknownKey = errors.New("unknown navigation key")
)

// Controller owns the active marker of a rendered navigation bar.
type Controller struct {
	items     []page.Element
	underline page.Marker
	active    int
}

// New binds a controller to the rendered entries of doc.
func New(doc *page.Document) (*Controller, error) {
	items := doc.NavItems()
	if len(items) == 0 {
		return nil, ErrUnavailable
	}
	underline, ok := doc.Underline()
	if !ok {
		return nil, fmt.Errorf("%w: underline marker missing", ErrUnavailable)
	}
	return &Controller{items: items, underline: underline, active: -1}, nil
}

// Init marks the first entry in document order active.
func (c *Controller) Init() page.Element {
	c.activate(0)
	return c.items[0]
}

// Activate makes the entry with the given key the only active one and moves
// the underline under it.
func (c *Controller) Activate(key int) (page.Element, error) {
	for i, el := range c.items {
		if k, ok := el.Key(); ok && k == key {
			c.activate(i)
			return el, nil
		}
	}
	return page.Element{}, fmt.Errorf("%w: %d", ErrUnknownKey, key)
}

// Active returns the key of the active entry, or -1 before Init.
func (c *Controller) Active() int {
	if c.active < 0 {
		return -1
	}
	key, _ := c.items[c.active].Key()
	return key
}

// Len returns the number of entries under control.
func (c *Controller) Len() int { return len(c.items) }

func (c *Controller) activate(idx int) {
	for i, el := range c.items {
		el.SetActive(i == idx)
	}
	c.underline.Move(c.items[idx].Box())
	c.active = idx
}
