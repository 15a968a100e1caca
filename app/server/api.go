package server

import (
	"net/http"

	log "github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
)

// handleThemeState returns the freshly resolved theme state. Resolution
// happens on every call, so the response always reflects the live OS
// signal.
func (s *Server) handleThemeState(w http.ResponseWriter, _ *http.Request) {
	rest.RenderJSON(w, s.theme.Ready())
}

// handleThemeCycleAPI advances the preference and returns the new state.
func (s *Server) handleThemeCycleAPI(w http.ResponseWriter, _ *http.Request) {
	view := s.theme.Cycle()
	log.Printf("[DEBUG] theme cycled via api, preference %s", view.Preference)
	rest.RenderJSON(w, view)
}
