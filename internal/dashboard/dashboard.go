// Package dashboard renders the dependency dashboard: the card grid, the file
// tree, the reverse and code panels, and the HTTP and websocket endpoints that
// serve them.
package dashboard

import (
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/ziadkadry99/depviz/internal/watcher"
)

// Options tunes the HTTP dashboard.
type Options struct {
	Theme    string        // theme used when the browser has none stored
	Debounce time.Duration // live search debounce
}

// Dashboard serves the rendered dashboard for the current snapshot.
type Dashboard struct {
	store    *Store
	sessions *Sessions
	theme    string
	debounce time.Duration
}

// New creates a Dashboard over store.
func New(store *Store, opts Options) *Dashboard {
	if opts.Debounce <= 0 {
		opts.Debounce = watcher.DefaultDebounceDuration
	}
	return &Dashboard{
		store:    store,
		sessions: NewSessions(),
		theme:    ResolveTheme(opts.Theme, DefaultTheme),
		debounce: opts.Debounce,
	}
}

// Store returns the snapshot store the dashboard reads from.
func (d *Dashboard) Store() *Store { return d.store }

// RegisterRoutes mounts all dashboard routes onto the given router.
func (d *Dashboard) RegisterRoutes(r chi.Router) {
	r.Get("/", d.ServeIndex)
	r.Get("/api/view", d.handleView)
	r.Get("/api/code", d.handleCode)
	r.Get("/api/stats", d.handleStats)
	r.Post("/api/collapse", d.handleCollapse)
	r.Post("/api/theme", d.handleTheme)
	r.Get("/ws/live", d.handleLive)
}
