package navigation

import (
	"context"
	"encoding/json"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/go-resty/resty/v2"
)

// DefaultPath is where the navigation document lives relative to the page.
const DefaultPath = "js/navigation.json"

// Item is one city entry of the navigation bar.
type Item struct {
	Section  string `json:"section" yaml:"section"`
	Label    string `json:"label" yaml:"label"`
	Timezone string `json:"timezone,omitempty" yaml:"timezone,omitempty"`
}

// Document is the shape of the navigation JSON file.
type Document struct {
	Cities []Item `json:"cities" yaml:"cities"`
}

// DefaultCities returns the stock city list.
func DefaultCities() []Item {
	return []Item{
		{Section: "cupertino", Label: "Cupertino"},
		{Section: "new-york-city", Label: "New York City"},
		{Section: "london", Label: "London"},
		{Section: "amsterdam", Label: "Amsterdam"},
		{Section: "tokyo", Label: "Tokyo"},
		{Section: "hong-kong", Label: "Hong Kong"},
		{Section: "sydney", Label: "Sydney"},
	}
}

// Find returns the first item with the given label.
func Find(items []Item, label string) (Item, bool) {
	for _, it := range items {
		if it.Label == label {
			return it, true
		}
	}
	return Item{}, false
}

// Parse decodes a navigation document. A document without a "cities" key
// yields no items and no error.
func Parse(data []byte) ([]Item, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decoding navigation: %w", err)
	}
	return doc.Cities, nil
}

// Source fetches the raw navigation document.
type Source interface {
	Fetch(ctx context.Context) ([]byte, error)
}

// FileSource reads the navigation document from a filesystem.
type FileSource struct {
	FS   fs.FS
	Path string
}

// NewFileSource returns a FileSource for a path on the local disk.
func NewFileSource(path string) *FileSource {
	path = filepath.Clean(path)
	return &FileSource{
		FS:   os.DirFS(filepath.Dir(path)),
		Path: filepath.Base(path),
	}
}

// Fetch implements Source.
func (s *FileSource) Fetch(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := fs.ReadFile(s.FS, s.Path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", s.Path, err)
	}
	return data, nil
}

// HTTPSource fetches ./js/navigation.json relative to a page URL. There are
// no retries; one failed request is final.
type HTTPSource struct {
	client *resty.Client
	url    string
}

// NewHTTPSource resolves the navigation document against pageURL.
func NewHTTPSource(pageURL string, timeout time.Duration) (*HTTPSource, error) {
	base, err := url.Parse(pageURL)
	if err != nil {
		return nil, fmt.Errorf("parsing base url %q: %w", pageURL, err)
	}
	if !base.IsAbs() {
		return nil, fmt.Errorf("base url %q is not absolute", pageURL)
	}
	ref, _ := url.Parse("./" + DefaultPath)

	client := resty.New().
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")

	return &HTTPSource{
		client: client,
		url:    base.ResolveReference(ref).String(),
	}, nil
}

// URL returns the resolved document URL.
func (s *HTTPSource) URL() string { return s.url }

// Fetch implements Source.
func (s *HTTPSource) Fetch(ctx context.Context) ([]byte, error) {
	resp, err := s.client.R().SetContext(ctx).Get(s.url)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", s.url, err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("fetching %s: unexpected status %d", s.url, resp.StatusCode())
	}
	return resp.Body(), nil
}

// Loader retrieves and decodes the navigation document.
type Loader struct {
	src Source
}

// NewLoader creates a Loader reading from src.
func NewLoader(src Source) *Loader {
	return &Loader{src: src}
}

// Source returns the underlying source.
func (l *Loader) Source() Source { return l.src }

// Load fetches and decodes the navigation items, preserving source order.
func (l *Loader) Load(ctx context.Context) ([]Item, error) {
	data, err := l.src.Fetch(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading navigation: %w", err)
	}
	items, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("loading navigation: %w", err)
	}
	return items, nil
}
