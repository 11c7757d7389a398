package dashboard

import (
	"log/slog"
	"net/http"
	"sync"
	"time"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/ziadkadry99/depviz/internal/observability"
	"github.com/ziadkadry99/depviz/internal/viewstate"
	"github.com/ziadkadry99/depviz/internal/watcher"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// liveRequest is the incoming WebSocket message format.
type liveRequest struct {
	Type     string `json:"type"` // "search", "view" or "collapse"
	Q        string `json:"q,omitempty"`
	Fragment string `json:"fragment,omitempty"`
	File     string `json:"file,omitempty"`
}

// collapseResponse acknowledges a collapse toggle.
type collapseResponse struct {
	Type      string `json:"type"`
	File      string `json:"file"`
	Collapsed bool   `json:"collapsed"`
}

// errorResponse reports a rejected message.
type errorResponse struct {
	Type  string `json:"type"`
	Error string `json:"error"`
}

// liveConn is one browser's live channel. The debounced search callback runs
// on a timer goroutine, so state and writes are guarded.
type liveConn struct {
	d       *Dashboard
	conn    *websocket.Conn
	session string
	theme   string
	search  *watcher.Debouncer

	mu    sync.Mutex
	state viewstate.State

	writeMu sync.Mutex
}

func (d *Dashboard) handleLive(w http.ResponseWriter, r *http.Request) {
	session := ""
	if c, err := r.Cookie(SessionCookie); err == nil {
		session = c.Value
	}
	if session == "" {
		session = uuid.New().String()
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Warn("websocket upgrade", "component", "live", "error", err)
		return
	}
	defer conn.Close()

	lc := &liveConn{
		d:       d,
		conn:    conn,
		session: session,
		theme:   themeFromRequest(r, d.theme),
		search:  watcher.NewDebouncer(d.debounce),
		state:   viewstate.Read(r.URL.RawQuery, d.store.Current().Index.Has),
	}
	defer lc.search.Cancel()

	observability.LiveConnections.Inc()
	defer observability.LiveConnections.Dec()

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				slog.Warn("websocket read", "component", "live", "error", err)
			}
			return
		}

		var req liveRequest
		if err := json.Unmarshal(msg, &req); err != nil {
			lc.send(errorResponse{Type: "error", Error: "invalid message format"})
			continue
		}

		switch req.Type {
		case "search":
			q := req.Q
			lc.search.Trigger(func() {
				lc.mu.Lock()
				lc.state.Query = q
				lc.state.Reverse = ""
				lc.mu.Unlock()
				observability.LiveSearchesTotal.Inc()
				lc.render()
			})
		case "view":
			snap := d.store.Current()
			lc.mu.Lock()
			lc.state = viewstate.Read(req.Fragment, snap.Index.Has)
			lc.mu.Unlock()
			lc.render()
		case "collapse":
			if req.File == "" {
				lc.send(errorResponse{Type: "error", Error: "file is required"})
				continue
			}
			collapsed := d.sessions.Toggle(lc.session, req.File)
			lc.send(collapseResponse{Type: "collapsed", File: req.File, Collapsed: collapsed})
		default:
			lc.send(errorResponse{Type: "error", Error: "unknown message type: " + req.Type})
		}
	}
}

func (lc *liveConn) render() {
	start := time.Now()
	lc.mu.Lock()
	st := lc.state.Clone()
	lc.mu.Unlock()

	snap := lc.d.store.Current()
	resp, err := renderView(snap, View{
		State:     st,
		Collapsed: lc.d.sessions.Collapsed(lc.session),
		Theme:     lc.theme,
	})
	if err != nil {
		lc.send(errorResponse{Type: "error", Error: err.Error()})
		return
	}
	observe("live", start, resp.shown)
	resp.Type = "view"
	lc.send(resp.viewResponse)
}

func (lc *liveConn) send(v any) {
	lc.writeMu.Lock()
	defer lc.writeMu.Unlock()
	if err := lc.conn.WriteJSON(v); err != nil {
		slog.Warn("websocket write", "component", "live", "error", err)
	}
}
