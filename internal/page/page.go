package page

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Selectors for the regions of the page the widget writes into.
const (
	NavContainerSelector = ".nav-items"
	NavItemSelector      = ".nav-item"
	DateSelector         = ".date"
	UnderlineSelector    = "#underline"
	ActiveClass          = "active"
)

// ErrMissingTarget is returned when a render target is absent from the page.
var ErrMissingTarget = errors.New("render target not found")

//go:embed shell.html
var defaultShell []byte

// DefaultShell returns a copy of the built-in page shell.
func DefaultShell() []byte {
	return bytes.Clone(defaultShell)
}

// Document is a parsed page whose render targets are mutated in place.
type Document struct {
	doc *goquery.Document
}

// Parse parses an HTML page shell.
func Parse(shell []byte) (*Document, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(shell))
	if err != nil {
		return nil, fmt.Errorf("parsing page shell: %w", err)
	}
	return &Document{doc: doc}, nil
}

// ReplaceNav replaces the content of the navigation container with fragment.
func (d *Document) ReplaceNav(fragment string) error {
	container := d.doc.Find(NavContainerSelector).First()
	if container.Length() == 0 {
		return fmt.Errorf("%w: %s", ErrMissingTarget, NavContainerSelector)
	}
	container.SetHtml(fragment)
	return nil
}

// NavHTML returns the inner HTML of the navigation container, or "" if the
// container is absent.
func (d *Document) NavHTML() string {
	container := d.doc.Find(NavContainerSelector).First()
	if container.Length() == 0 {
		return ""
	}
	html, err := container.Html()
	if err != nil {
		return ""
	}
	return html
}

// SetDate replaces the text of the date display element.
func (d *Document) SetDate(text string) error {
	target := d.doc.Find(DateSelector).First()
	if target.Length() == 0 {
		return fmt.Errorf("%w: %s", ErrMissingTarget, DateSelector)
	}
	target.SetText(text)
	return nil
}

// DateText returns the current text of the date display element.
func (d *Document) DateText() string {
	return d.doc.Find(DateSelector).First().Text()
}

// NavItems returns the rendered navigation elements in document order.
func (d *Document) NavItems() []Element {
	sel := d.doc.Find(NavContainerSelector).First().Find(NavItemSelector)
	items := make([]Element, 0, sel.Length())
	sel.Each(func(_ int, s *goquery.Selection) {
		items = append(items, Element{sel: s})
	})
	return items
}

// Underline returns the underline marker, if it has been rendered.
func (d *Document) Underline() (Marker, bool) {
	sel := d.doc.Find(UnderlineSelector).First()
	if sel.Length() == 0 {
		return Marker{}, false
	}
	return Marker{sel: sel}, true
}

// HTML serializes the whole page.
func (d *Document) HTML() (string, error) {
	html, err := d.doc.Html()
	if err != nil {
		return "", fmt.Errorf("serializing page: %w", err)
	}
	return html, nil
}

// Element is one rendered navigation entry.
type Element struct {
	sel *goquery.Selection
}

// Key returns the stable identifier assigned at render time.
func (e Element) Key() (int, bool) {
	v, ok := e.sel.Attr("data-key")
	if !ok {
		return 0, false
	}
	key, err := strconv.Atoi(v)
	if err != nil {
		return 0, false
	}
	return key, true
}

// Label returns the visible text of the element.
func (e Element) Label() string {
	return strings.TrimSpace(e.sel.Text())
}

// Box returns the geometry of the whole list entry, recorded at render time.
// The entry and its button share one box under the built-in shell.
func (e Element) Box() Box {
	return Box{
		Left:  intAttr(e.sel, "data-left"),
		Width: intAttr(e.sel, "data-width"),
	}
}

// Active reports whether the element carries the active marker.
func (e Element) Active() bool {
	return e.sel.HasClass(ActiveClass)
}

// SetActive adds or removes the active marker. The class attribute is
// rewritten as single-space separated tokens.
func (e Element) SetActive(active bool) {
	class, _ := e.sel.Attr("class")
	tokens := make([]string, 0, 4)
	for _, tok := range strings.Fields(class) {
		if tok != ActiveClass {
			tokens = append(tokens, tok)
		}
	}
	if active {
		tokens = append(tokens, ActiveClass)
	}
	e.sel.SetAttr("class", strings.Join(tokens, " "))
}

// Marker is the underline element that tracks the active entry.
type Marker struct {
	sel *goquery.Selection
}

// Move sizes and positions the marker to match box.
func (m Marker) Move(box Box) {
	m.sel.SetAttr("style", fmt.Sprintf("width: %dpx; left: %dpx", box.Width, box.Left))
}

// Box returns the marker's current geometry. An unpositioned marker has a
// zero box.
func (m Marker) Box() Box {
	style, ok := m.sel.Attr("style")
	if !ok {
		return Box{}
	}
	var box Box
	if _, err := fmt.Sscanf(style, "width: %dpx; left: %dpx", &box.Width, &box.Left); err != nil {
		return Box{}
	}
	return box
}

func intAttr(sel *goquery.Selection, name string) int {
	v, ok := sel.Attr(name)
	if !ok {
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0
	}
	return n
}
