package web

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/ziadkadry99/cityclock/internal/clock"
	"github.com/ziadkadry99/cityclock/internal/navbar"
	"github.com/ziadkadry99/cityclock/internal/navigation"
	"github.com/ziadkadry99/cityclock/internal/widget"
)

// Handler serves the clock page and its event channel. Every page view and
// every websocket connection gets its own widget.
type Handler struct {
	opts   widget.Options
	logger *log.Logger
}

// New creates a Handler that builds widgets from opts.
func New(opts widget.Options) *Handler {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	return &Handler{opts: opts, logger: logger}
}

// RegisterRoutes mounts all routes onto the given router.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.ServeIndex)
	r.Get("/js/navigation.json", h.handleNavigation)
	r.Get("/ws/clock", h.handleWebSocket)
	r.Get("/api/time", h.handleTime)
}

// startWidget builds a widget, starts it and applies the optional ?active=N
// click.
func (h *Handler) startWidget(r *http.Request) (*widget.Widget, int, error) {
	w, err := widget.New(h.opts)
	if err != nil {
		return nil, http.StatusInternalServerError, err
	}
	if err := w.Start(r.Context()); err != nil {
		return nil, http.StatusInternalServerError, err
	}

	raw := r.URL.Query().Get("active")
	if raw == "" {
		return w, http.StatusOK, nil
	}
	key, err := strconv.Atoi(raw)
	if err != nil {
		return nil, http.StatusBadRequest, errors.New("active must be an integer")
	}
	if err := w.Click(key); err != nil {
		if errors.Is(err, navbar.ErrUnknownKey) || errors.Is(err, widget.ErrNotInteractive) {
			return nil, http.StatusBadRequest, err
		}
		return nil, http.StatusInternalServerError, err
	}
	return w, http.StatusOK, nil
}

// ServeIndex renders the page after startup.
func (h *Handler) ServeIndex(w http.ResponseWriter, r *http.Request) {
	wdg, status, err := h.startWidget(r)
	if err != nil {
		h.logger.Printf("web: index: %v", err)
		http.Error(w, err.Error(), status)
		return
	}
	html, err := wdg.HTML()
	if err != nil {
		h.logger.Printf("web: index: %v", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(html))
}

func (h *Handler) handleNavigation(w http.ResponseWriter, r *http.Request) {
	data, err := h.opts.Loader.Source().Fetch(r.Context())
	if err != nil {
		h.logger.Printf("web: navigation: %v", err)
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "navigation document unavailable"})
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(data)
}

// timeResponse is the JSON response for /api/time.
type timeResponse struct {
	City    string `json:"city,omitempty"`
	Zone    string `json:"zone"`
	Display string `json:"display"`
}

func (h *Handler) handleTime(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	city, zone := q.Get("city"), q.Get("zone")

	switch {
	case zone != "":
	case city != "":
		var explicit string
		if items, err := h.opts.Loader.Load(r.Context()); err == nil {
			if it, ok := navigation.Find(items, city); ok {
				explicit = it.Timezone
			}
		}
		resolved, ok := h.zones().Resolve(city, explicit)
		if !ok {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "unknown city: " + city})
			return
		}
		zone = resolved
	default:
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "city or zone is required"})
		return
	}

	display, err := h.opts.Formatter.Format(h.now(), zone)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, timeResponse{City: city, Zone: zone, Display: display})
}

func (h *Handler) now() time.Time {
	if h.opts.Now != nil {
		return h.opts.Now()
	}
	return clock.Now()
}

func (h *Handler) zones() clock.Table {
	if h.opts.Zones == nil {
		return clock.DefaultTable()
	}
	return h.opts.Zones
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
