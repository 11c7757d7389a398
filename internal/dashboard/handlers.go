package dashboard

import (
	"bytes"
	"net/http"
	"strconv"
	"time"

	json "github.com/goccy/go-json"

	"github.com/ziadkadry99/depviz/internal/index"
	"github.com/ziadkadry99/depviz/internal/observability"
	"github.com/ziadkadry99/depviz/internal/viewstate"
)

// viewResponse is the JSON form of a re-render.
type viewResponse struct {
	Type        string        `json:"type,omitempty"`
	Fragment    string        `json:"fragment"`
	Grid        string        `json:"grid"`
	ResultCount string        `json:"resultCount"`
	NoResults   bool          `json:"noResults"`
	Reverse     *ReversePanel `json:"reverse"`
}

// statsResponse is the JSON response for the stats endpoint.
type statsResponse struct {
	Stats      index.Stats           `json:"stats"`
	Categories []index.CategoryShare `json:"categories"`
	TopImports []index.NameCount     `json:"top_imports"`
	GodFiles   []index.NameCount     `json:"god_files"`
	LoadedAt   time.Time             `json:"loaded_at"`
}

// readView decodes the view from the request: state from the raw query,
// collapse state from the session and the theme cookie.
func (d *Dashboard) readView(w http.ResponseWriter, r *http.Request, snap *Snapshot) View {
	id := d.sessions.Ensure(w, r)
	return View{
		State:     viewstate.Read(r.URL.RawQuery, snap.Index.Has),
		Collapsed: d.sessions.Collapsed(id),
		Theme:     themeFromRequest(r, d.theme),
	}
}

// ServeIndex renders the full dashboard page.
func (d *Dashboard) ServeIndex(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	snap := d.store.Current()
	page := Render(snap, d.readView(w, r, snap))

	var buf bytes.Buffer
	if err := WritePage(&buf, page); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	observe("page", start, page.Shown)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(buf.Bytes())
}

func (d *Dashboard) handleView(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	snap := d.store.Current()
	resp, err := renderView(snap, d.readView(w, r, snap))
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	observe("api", start, resp.shown)
	writeJSON(w, http.StatusOK, resp.viewResponse)
}

type renderedView struct {
	viewResponse
	shown int
}

func renderView(snap *Snapshot, v View) (renderedView, error) {
	page := Render(snap, v)
	var buf bytes.Buffer
	if err := WriteGrid(&buf, page); err != nil {
		return renderedView{}, err
	}
	return renderedView{
		viewResponse: viewResponse{
			Fragment:    page.Fragment,
			Grid:        buf.String(),
			ResultCount: page.ResultCount,
			NoResults:   page.NoResults,
			Reverse:     page.Reverse,
		},
		shown: page.Shown,
	}, nil
}

func (d *Dashboard) handleCode(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	file, name := q.Get("file"), q.Get("import")
	if file == "" || name == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "file and import are required"})
		return
	}
	at := Point{X: queryInt(q.Get("x")), Y: queryInt(q.Get("y"))}
	vp := Viewport{W: queryInt(q.Get("vw")), H: queryInt(q.Get("vh"))}

	panel, ok := CodeFor(d.store.Current(), file, name, at, vp)
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "no snippet recorded"})
		return
	}
	writeJSON(w, http.StatusOK, panel)
}

func (d *Dashboard) handleStats(w http.ResponseWriter, r *http.Request) {
	snap := d.store.Current()
	writeJSON(w, http.StatusOK, statsResponse{
		Stats:      snap.Index.Stats,
		Categories: snap.Index.CategoryShares(),
		TopImports: snap.Index.TopImports,
		GodFiles:   snap.Index.GodFiles,
		LoadedAt:   snap.LoadedAt,
	})
}

func (d *Dashboard) handleCollapse(w http.ResponseWriter, r *http.Request) {
	file := r.URL.Query().Get("file")
	if file == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "file is required"})
		return
	}
	id := d.sessions.Ensure(w, r)
	collapsed := d.sessions.Toggle(id, file)
	writeJSON(w, http.StatusOK, map[string]any{"file": file, "collapsed": collapsed})
}

func (d *Dashboard) handleTheme(w http.ResponseWriter, r *http.Request) {
	theme := r.FormValue("theme")
	if !ValidTheme(theme) {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "unknown theme: " + theme})
		return
	}
	setThemeCookie(w, theme)
	writeJSON(w, http.StatusOK, map[string]string{"theme": theme})
}

func queryInt(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}

func observe(surface string, start time.Time, shown int) {
	observability.RenderDuration.WithLabelValues(surface).Observe(time.Since(start).Seconds())
	observability.RenderedFiles.Set(float64(shown))
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
