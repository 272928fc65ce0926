package navigation

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/ziadkadry99/cityclock/internal/page"
)

// navTemplate renders one list entry per item followed by the underline
// marker. data-key is the identity used for activation; data-left and
// data-width carry the laid-out geometry.
var navTemplate = template.Must(template.New("nav").Parse(
	`{{range .}}<li class="nav-item" data-key="{{.Key}}" data-left="{{.Box.Left}}" data-width="{{.Box.Width}}">` +
		`<button class="{{.Section}}">{{.Label}}</button></li>{{end}}` +
		`<hr id="underline">`))

type navEntry struct {
	Key     int
	Section string
	Label   string
	Box     page.Box
}

// Render replaces the navigation container's content with the items.
func Render(doc *page.Document, items []Item, layout page.Layout) error {
	labels := make([]string, len(items))
	for i, it := range items {
		labels[i] = it.Label
	}
	boxes := layout.Boxes(labels)

	entries := make([]navEntry, len(items))
	for i, it := range items {
		entries[i] = navEntry{Key: i, Section: it.Section, Label: it.Label, Box: boxes[i]}
	}

	var sb strings.Builder
	if err := navTemplate.Execute(&sb, entries); err != nil {
		return fmt.Errorf("rendering navigation: %w", err)
	}
	if err := doc.ReplaceNav(sb.String()); err != nil {
		return fmt.Errorf("rendering navigation: %w", err)
	}
	return nil
}
