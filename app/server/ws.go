package server

import (
	"net/http"
	"net/url"

	log "github.com/go-pkgz/lgr"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	// the page is served from the same host as the socket; reject browser
	// connections from anywhere else, allow non-browser clients (no Origin)
	CheckOrigin: func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" {
			return true
		}
		u, err := url.Parse(origin)
		return err == nil && u.Host == r.Host
	},
}

// handleThemeWS streams applied view changes to connected pages so they
// re-theme without user action when the OS signal flips under the system
// preference.
func (s *Server) handleThemeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[WARN] websocket upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	views, unsubscribe := s.theme.Subscribe()
	defer unsubscribe()

	// current state first so a late subscriber never renders stale
	if err := conn.WriteJSON(s.theme.Ready()); err != nil {
		return
	}

	// reader detects client close
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, readErr := conn.ReadMessage(); readErr != nil {
				return
			}
		}
	}()

	for {
		select {
		case <-done:
			return
		case view, ok := <-views:
			if !ok {
				return
			}
			if err := conn.WriteJSON(view); err != nil {
				log.Printf("[DEBUG] websocket write failed: %v", err)
				return
			}
		}
	}
}
