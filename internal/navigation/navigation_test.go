package navigation

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/ziadkadry99/cityclock/internal/page"
)

const sampleDoc = `{"cities":[
	{"section":"cupertino","label":"Cupertino"},
	{"section":"tokyo","label":"Tokyo","timezone":"Asia/Tokyo"},
	{"section":"sydney","label":"Sydney"}
]}`

type failingSource struct{ err error }

func (s failingSource) Fetch(context.Context) ([]byte, error) { return nil, s.err }

func TestParse(t *testing.T) {
	items, err := Parse([]byte(sampleDoc))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	want := []Item{
		{Section: "cupertino", Label: "Cupertino"},
		{Section: "tokyo", Label: "Tokyo", Timezone: "Asia/Tokyo"},
		{Section: "sydney", Label: "Sydney"},
	}
	if diff := cmp.Diff(want, items); diff != "" {
		t.Errorf("items mismatch (-want +got):\n%s", diff)
	}
}

func TestParseMissingCities(t *testing.T) {
	items, err := Parse([]byte(`{"towns":[{"label":"x"}]}`))
	if err != nil {
		t.Fatalf("expected no error for shape mismatch, got %v", err)
	}
	if len(items) != 0 {
		t.Errorf("expected no items, got %d", len(items))
	}
}

func TestParseInvalid(t *testing.T) {
	for _, input := range []string{"<html>", `{"cities":"Tokyo"}`, ""} {
		if _, err := Parse([]byte(input)); err == nil {
			t.Errorf("Parse(%q): expected error", input)
		}
	}
}

func TestFind(t *testing.T) {
	items := DefaultCities()
	it, ok := Find(items, "Hong Kong")
	if !ok || it.Section != "hong-kong" {
		t.Errorf("Find(Hong Kong) = %+v, %v", it, ok)
	}
	if _, ok := Find(items, "Paris"); ok {
		t.Error("expected Paris to be missing")
	}
}

func TestFileSource(t *testing.T) {
	src := &FileSource{
		FS:   fstest.MapFS{"js/navigation.json": {Data: []byte(sampleDoc)}},
		Path: DefaultPath,
	}
	items, err := NewLoader(src).Load(t.Context())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(items) != 3 {
		t.Errorf("expected 3 items, got %d", len(items))
	}
}

func TestNewFileSourceFromDisk(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "navigation.json")
	if err := os.WriteFile(path, []byte(sampleDoc), 0644); err != nil {
		t.Fatal(err)
	}

	data, err := NewFileSource(path).Fetch(t.Context())
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if string(data) != sampleDoc {
		t.Errorf("unexpected contents %q", data)
	}

	if _, err := NewFileSource(filepath.Join(dir, "missing.json")).Fetch(t.Context()); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestFileSourceCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	src := &FileSource{FS: fstest.MapFS{}, Path: DefaultPath}
	if _, err := src.Fetch(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestHTTPSource(t *testing.T) {
	var gotPath string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		if r.URL.Path != "/clock/js/navigation.json" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(sampleDoc))
	}))
	defer ts.Close()

	src, err := NewHTTPSource(ts.URL+"/clock/index.html", 5*time.Second)
	if err != nil {
		t.Fatalf("NewHTTPSource: %v", err)
	}
	items, err := NewLoader(src).Load(t.Context())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if gotPath != "/clock/js/navigation.json" {
		t.Errorf("requested %q", gotPath)
	}
	if len(items) != 3 || items[1].Label != "Tokyo" {
		t.Errorf("unexpected items %+v", items)
	}
}

func TestHTTPSourceErrorStatus(t *testing.T) {
	ts := httptest.NewServer(http.NotFoundHandler())
	defer ts.Close()

	src, err := NewHTTPSource(ts.URL+"/", time.Second)
	if err != nil {
		t.Fatalf("NewHTTPSource: %v", err)
	}
	_, err = src.Fetch(t.Context())
	if err == nil || !strings.Contains(err.Error(), "404") {
		t.Errorf("expected 404 error, got %v", err)
	}
}

func TestNewHTTPSourceRejectsRelative(t *testing.T) {
	if _, err := NewHTTPSource("/relative/page", time.Second); err == nil {
		t.Error("expected error for relative base url")
	}
}

func TestLoaderWrapsFetchError(t *testing.T) {
	boom := errors.New("network down")
	_, err := NewLoader(failingSource{err: boom}).Load(t.Context())
	if !errors.Is(err, boom) {
		t.Errorf("expected wrapped fetch error, got %v", err)
	}
}

func TestRender(t *testing.T) {
	doc, err := page.Parse(page.DefaultShell())
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	items := []Item{
		{Section: "cupertino", Label: "Cupertino"},
		{Section: "tokyo", Label: "Tokyo"},
		{Section: "sydney", Label: "Sydney"},
	}
	layout := page.Layout{Measurer: page.TextMeasurer{CharWidth: 10, Padding: 0}}
	if err := Render(doc, items, layout); err != nil {
		t.Fatalf("Render: %v", err)
	}

	rendered := doc.NavItems()
	if len(rendered) != len(items) {
		t.Fatalf("expected %d entries, got %d", len(items), len(rendered))
	}
	for i, el := range rendered {
		key, ok := el.Key()
		if !ok || key != i {
			t.Errorf("entry %d: key = %d, %v", i, key, ok)
		}
		if el.Label() != items[i].Label {
			t.Errorf("entry %d: label = %q, want %q", i, el.Label(), items[i].Label)
		}
		if el.Active() {
			t.Errorf("entry %d: unexpectedly active", i)
		}
	}
	if got := rendered[1].Box(); got != (page.Box{Left: 90, Width: 50}) {
		t.Errorf("entry 1 box = %+v", got)
	}
	if _, ok := doc.Underline(); !ok {
		t.Error("expected underline marker")
	}
	if n := strings.Count(doc.NavHTML(), `id="underline"`); n != 1 {
		t.Errorf("expected exactly one underline, got %d", n)
	}
	if !strings.Contains(doc.NavHTML(), `<button class="tokyo">Tokyo</button>`) {
		t.Errorf("expected section class on button, got %s", doc.NavHTML())
	}
}

func TestRenderReplacesContent(t *testing.T) {
	doc, err := page.Parse(page.DefaultShell())
	if err != nil {
		t.Fatal(err)
	}
	layout := page.DefaultLayout()
	if err := Render(doc, DefaultCities(), layout); err != nil {
		t.Fatal(err)
	}
	if err := Render(doc, DefaultCities()[:2], layout); err != nil {
		t.Fatal(err)
	}
	if n := len(doc.NavItems()); n != 2 {
		t.Errorf("expected 2 entries after re-render, got %d", n)
	}
}

func TestRenderEscapesLabels(t *testing.T) {
	doc, err := page.Parse(page.DefaultShell())
	if err != nil {
		t.Fatal(err)
	}
	items := []Item{{Section: `x" onclick="alert(1)`, Label: "<b>Rome</b>"}}
	if err := Render(doc, items, page.DefaultLayout()); err != nil {
		t.Fatal(err)
	}
	html := doc.NavHTML()
	if strings.Contains(html, "<b>") || strings.Contains(html, `onclick="alert`) {
		t.Errorf("expected escaped output, got %s", html)
	}
	if got := doc.NavItems()[0].Label(); got != "<b>Rome</b>" {
		t.Errorf("label text = %q", got)
	}
}

func TestRenderMissingContainer(t *testing.T) {
	doc, err := page.Parse([]byte(`<html><body><div class="date"></div></body></html>`))
	if err != nil {
		t.Fatal(err)
	}
	err = Render(doc, DefaultCities(), page.DefaultLayout())
	if !errors.Is(err, page.ErrMissingTarget) {
		t.Errorf("expected ErrMissingTarget, got %v", err)
	}
}
