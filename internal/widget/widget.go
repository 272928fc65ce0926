// Package widget wires the navigation loader, the navbar controller and the
// clock display into one page session.
//
// A Widget is not safe for concurrent use. Each page session owns one and
// feeds it events one at a time, the way a browser's event queue would.
package widget

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/ziadkadry99/cityclock/internal/clock"
	"github.com/ziadkadry99/cityclock/internal/navbar"
	"github.com/ziadkadry99/cityclock/internal/navigation"
	"github.com/ziadkadry99/cityclock/internal/page"
)

// ErrNotInteractive is returned by Click when startup could not wire the
// navigation bar.
var ErrNotInteractive = errors.New("navigation is not interactive")

// Options holds the dependencies of a Widget.
type Options struct {
	Shell       []byte // page shell; nil means page.DefaultShell()
	Loader      *navigation.Loader
	Formatter   *clock.Formatter
	Zones       clock.Table
	DefaultZone string
	Layout      page.Layout
	Logger      *log.Logger
	Now         func() time.Time
}

// Widget is one page session.
type Widget struct {
	doc         *page.Document
	loader      *navigation.Loader
	display     *clock.Display
	zones       clock.Table
	defaultZone string
	layout      page.Layout
	logger      *log.Logger

	items []navigation.Item
	bar   *navbar.Controller
}

// New parses the shell and prepares a widget. Nothing is fetched until Start.
func New(opts Options) (*Widget, error) {
	if opts.Loader == nil {
		return nil, fmt.Errorf("widget: loader is required")
	}
	if opts.Formatter == nil {
		return nil, fmt.Errorf("widget: formatter is required")
	}

	shell := opts.Shell
	if shell == nil {
		shell = page.DefaultShell()
	}
	doc, err := page.Parse(shell)
	if err != nil {
		return nil, fmt.Errorf("widget: %w", err)
	}

	zones := opts.Zones
	if zones == nil {
		zones = clock.DefaultTable()
	}
	defaultZone := opts.DefaultZone
	if defaultZone == "" {
		defaultZone = clock.DefaultZone
	}
	layout := opts.Layout
	if layout.Measurer == nil {
		layout = page.DefaultLayout()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	return &Widget{
		doc:         doc,
		loader:      opts.Loader,
		display:     clock.NewDisplay(doc, opts.Formatter, opts.Now),
		zones:       zones,
		defaultZone: defaultZone,
		layout:      layout,
		logger:      logger,
	}, nil
}

// Start loads and renders the navigation, activates the first entry and
// shows the default zone. Load and render failures are logged and leave the
// bar empty; only a clock formatting failure is returned.
func (w *Widget) Start(ctx context.Context) error {
	items, err := w.loader.Load(ctx)
	if err != nil {
		w.logger.Printf("widget: %v", err)
	} else if err := navigation.Render(w.doc, items, w.layout); err != nil {
		w.logger.Printf("widget: %v", err)
	} else {
		w.items = items
	}

	bar, err := navbar.New(w.doc)
	if err != nil {
		w.logger.Printf("widget: %v", err)
	} else {
		bar.Init()
		w.bar = bar
	}

	if err := w.display.Show(w.defaultZone); err != nil {
		if errors.Is(err, page.ErrMissingTarget) {
			w.logger.Printf("widget: %v", err)
			return nil
		}
		return fmt.Errorf("showing default zone: %w", err)
	}
	return nil
}

// Click activates the entry with the given key and shows the time of its
// zone. An entry whose label has no known zone leaves the display unchanged.
func (w *Widget) Click(key int) error {
	if w.bar == nil {
		return ErrNotInteractive
	}
	el, err := w.bar.Activate(key)
	if err != nil {
		return err
	}

	label, zone := el.Label(), ""
	if key >= 0 && key < len(w.items) {
		label, zone = w.items[key].Label, w.items[key].Timezone
	}
	resolved, ok := w.zones.Resolve(label, zone)
	if !ok {
		return nil
	}
	if err := w.display.Show(resolved); err != nil {
		return fmt.Errorf("showing %s: %w", label, err)
	}
	return nil
}

// Interactive reports whether clicks are wired.
func (w *Widget) Interactive() bool { return w.bar != nil }

// Active returns the active entry key, or -1.
func (w *Widget) Active() int {
	if w.bar == nil {
		return -1
	}
	return w.bar.Active()
}

// Items returns the rendered navigation items.
func (w *Widget) Items() []navigation.Item {
	out := make([]navigation.Item, len(w.items))
	copy(out, w.items)
	return out
}

// DateText returns the displayed date string.
func (w *Widget) DateText() string { return w.doc.DateText() }

// NavHTML returns the rendered navigation container content.
func (w *Widget) NavHTML() string { return w.doc.NavHTML() }

// HTML serializes the whole page.
func (w *Widget) HTML() (string, error) { return w.doc.HTML() }
