package dashboard

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"

	"github.com/ziadkadry99/depviz/internal/dataset"
)

func setupTest(t *testing.T) *Dashboard {
	t.Helper()
	return New(NewStore(exampleSnapshot()), Options{Debounce: 20 * time.Millisecond})
}

func setupRouter(d *Dashboard) chi.Router {
	r := chi.NewRouter()
	d.RegisterRoutes(r)
	return r
}

func TestServeIndex(t *testing.T) {
	r := setupRouter(setupTest(t))

	req := httptest.NewRequest(http.MethodGet, "/?rev=react", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); !strings.Contains(ct, "text/html") {
		t.Errorf("expected text/html content type, got %q", ct)
	}
	body := w.Body.String()
	if !strings.Contains(body, `data-fragment="rev=react"`) {
		t.Error("expected the canonical fragment on the body")
	}
	if !strings.Contains(body, "1 of 2 files") {
		t.Error("expected the reverse selection to narrow the grid")
	}

	var session bool
	for _, c := range w.Result().Cookies() {
		if c.Name == SessionCookie && c.Value != "" {
			session = true
		}
	}
	if !session {
		t.Error("expected a session cookie")
	}
}

func TestServeIndexTheme(t *testing.T) {
	r := setupRouter(New(NewStore(exampleSnapshot()), Options{Theme: "light"}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if !strings.Contains(w.Body.String(), `data-theme="light"`) {
		t.Error("expected configured default theme")
	}

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: ThemeCookie, Value: "nord"})
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if !strings.Contains(w.Body.String(), `data-theme="nord"`) {
		t.Error("expected theme from cookie")
	}
}

func TestViewEndpoint(t *testing.T) {
	r := setupRouter(setupTest(t))

	req := httptest.NewRequest(http.MethodGet, "/api/view?view=exports&sort=bogus&rev=unknown", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var resp viewResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding view: %v", err)
	}
	if resp.Fragment != "view=exports" {
		t.Errorf("fragment = %q, want view=exports", resp.Fragment)
	}
	if resp.ResultCount != "1 of 2 files" {
		t.Errorf("result count = %q", resp.ResultCount)
	}
	if resp.Reverse != nil {
		t.Error("unknown rev must be ignored")
	}
	if !strings.Contains(resp.Grid, `data-file="b.ts"`) || strings.Contains(resp.Grid, `data-file="a.ts"`) {
		t.Errorf("unexpected grid: %s", resp.Grid)
	}
}

func TestCodeEndpoint(t *testing.T) {
	r := setupRouter(setupTest(t))

	q := url.Values{"file": {"a.ts"}, "import": {"react"}, "x": {"900"}, "y": {"50"}, "vw": {"1000"}, "vh": {"600"}}
	req := httptest.NewRequest(http.MethodGet, "/api/code?"+q.Encode(), nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var panel CodePanel
	if err := json.NewDecoder(w.Body).Decode(&panel); err != nil {
		t.Fatalf("decoding code panel: %v", err)
	}
	if panel.X != 500 || panel.Y != 60 {
		t.Errorf("position = (%d,%d), want (500,60)", panel.X, panel.Y)
	}
	if !strings.Contains(string(panel.HTML), `<span class="kw">import</span>`) {
		t.Errorf("expected highlighted snippet, got %s", panel.HTML)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/code?file=a.ts&import=./b", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 for missing snippet, got %d", w.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/code", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 without parameters, got %d", w.Code)
	}
}

func TestCollapseEndpoint(t *testing.T) {
	r := setupRouter(setupTest(t))
	cookie := &http.Cookie{Name: SessionCookie, Value: "session-1"}

	toggle := func() bool {
		req := httptest.NewRequest(http.MethodPost, "/api/collapse?file=a.ts", nil)
		req.AddCookie(cookie)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp struct {
			Collapsed bool `json:"collapsed"`
		}
		json.NewDecoder(w.Body).Decode(&resp)
		return resp.Collapsed
	}

	if !toggle() {
		t.Fatal("first toggle should collapse")
	}

	req := httptest.NewRequest(http.MethodGet, "/api/view", nil)
	req.AddCookie(cookie)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	var resp viewResponse
	json.NewDecoder(w.Body).Decode(&resp)
	if !strings.Contains(resp.Grid, `class="card collapsed" data-file="a.ts"`) {
		t.Errorf("expected a.ts to render collapsed: %s", resp.Grid)
	}

	if toggle() {
		t.Error("second toggle should expand")
	}

	req = httptest.NewRequest(http.MethodPost, "/api/collapse", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 without file, got %d", w.Code)
	}
}

func TestThemeEndpoint(t *testing.T) {
	r := setupRouter(setupTest(t))

	req := httptest.NewRequest(http.MethodPost, "/api/theme", strings.NewReader("theme=dracula"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var found bool
	for _, c := range w.Result().Cookies() {
		if c.Name == ThemeCookie && c.Value == "dracula" {
			found = true
		}
	}
	if !found {
		t.Error("expected theme cookie")
	}

	req = httptest.NewRequest(http.MethodPost, "/api/theme", strings.NewReader("theme=neon"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for unknown theme, got %d", w.Code)
	}
}

func TestStatsEndpoint(t *testing.T) {
	r := setupRouter(setupTest(t))

	req := httptest.NewRequest(http.MethodGet, "/api/stats", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp struct {
		Stats struct {
			Files   int `json:"files"`
			Imports int `json:"imports"`
		} `json:"stats"`
		Categories []struct {
			Category string `json:"category"`
			Count    int    `json:"count"`
		} `json:"categories"`
	}
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding stats: %v", err)
	}
	if resp.Stats.Files != 2 || resp.Stats.Imports != 2 {
		t.Errorf("unexpected stats: %+v", resp.Stats)
	}
	if len(resp.Categories) != 4 || resp.Categories[0].Category != "stdlib" {
		t.Errorf("unexpected categories: %+v", resp.Categories)
	}
}

func TestStoreSwapIsVisible(t *testing.T) {
	d := setupTest(t)
	r := setupRouter(d)

	d.Store().Swap(NewSnapshot(&dataset.Dataset{Files: []dataset.FileRecord{
		{File: "only.go", Imports: []dataset.ImportRecord{{Name: "fmt", Category: dataset.Stdlib}}},
	}}, Config{}))

	req := httptest.NewRequest(http.MethodGet, "/api/view", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	var resp viewResponse
	json.NewDecoder(w.Body).Decode(&resp)
	if resp.ResultCount != "1 of 1 files" {
		t.Errorf("expected swapped snapshot, got %q", resp.ResultCount)
	}
}

func dialLive(t *testing.T, srv *httptest.Server, query string) *websocket.Conn {
	t.Helper()
	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/live?" + query
	conn, resp, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("websocket dial: %v", err)
	}
	if resp.StatusCode != http.StatusSwitchingProtocols {
		t.Fatalf("expected 101, got %d", resp.StatusCode)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func TestLiveSearchDebounces(t *testing.T) {
	srv := httptest.NewServer(setupRouter(setupTest(t)))
	defer srv.Close()
	conn := dialLive(t, srv, "rev=react")

	for _, q := range []string{"f", "fo", "foo"} {
		if err := conn.WriteJSON(liveRequest{Type: "search", Q: q}); err != nil {
			t.Fatalf("write: %v", err)
		}
	}

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var resp viewResponse
	if err := conn.ReadJSON(&resp); err != nil {
		t.Fatalf("read: %v", err)
	}
	if resp.Type != "view" {
		t.Fatalf("expected view message, got %q", resp.Type)
	}
	if resp.Fragment != "q=foo" {
		t.Errorf("fragment = %q, want q=foo (search clears the reverse selection)", resp.Fragment)
	}
	if resp.ResultCount != "1 of 2 files" {
		t.Errorf("result count = %q", resp.ResultCount)
	}

	// Only the last keystroke renders.
	conn.SetReadDeadline(time.Now().Add(150 * time.Millisecond))
	if err := conn.ReadJSON(&resp); err == nil {
		t.Errorf("expected a single render, got another: %+v", resp)
	}
}

func TestLiveViewAndCollapse(t *testing.T) {
	srv := httptest.NewServer(setupRouter(setupTest(t)))
	defer srv.Close()
	conn := dialLive(t, srv, "")
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))

	if err := conn.WriteJSON(liveRequest{Type: "view", Fragment: "#cats=stdlib"}); err != nil {
		t.Fatalf("write: %v", err)
	}
	var view viewResponse
	if err := conn.ReadJSON(&view); err != nil {
		t.Fatalf("read: %v", err)
	}
	if view.Fragment != "cats=stdlib" || view.ResultCount != "1 of 2 files" {
		t.Errorf("unexpected view: %q %q", view.Fragment, view.ResultCount)
	}

	if err := conn.WriteJSON(liveRequest{Type: "collapse", File: "b.ts"}); err != nil {
		t.Fatalf("write: %v", err)
	}
	var col collapseResponse
	if err := conn.ReadJSON(&col); err != nil {
		t.Fatalf("read: %v", err)
	}
	if col.Type != "collapsed" || col.File != "b.ts" || !col.Collapsed {
		t.Errorf("unexpected collapse ack: %+v", col)
	}
}

func TestLiveUnknownType(t *testing.T) {
	srv := httptest.NewServer(setupRouter(setupTest(t)))
	defer srv.Close()
	conn := dialLive(t, srv, "")
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))

	if err := conn.WriteJSON(liveRequest{Type: "chat"}); err != nil {
		t.Fatalf("write: %v", err)
	}
	var resp errorResponse
	if err := conn.ReadJSON(&resp); err != nil {
		t.Fatalf("read: %v", err)
	}
	if resp.Type != "error" || !strings.Contains(resp.Error, "unknown message type") {
		t.Errorf("unexpected response: %+v", resp)
	}

	if err := conn.WriteMessage(websocket.TextMessage, []byte("{not json")); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := conn.ReadJSON(&resp); err != nil {
		t.Fatalf("read: %v", err)
	}
	if resp.Error != "invalid message format" {
		t.Errorf("unexpected error: %q", resp.Error)
	}
}
