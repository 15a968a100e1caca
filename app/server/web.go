package server

import (
	"html/template"
	"net/http"

	log "github.com/go-pkgz/lgr"

	"github.com/VernerAnton/shade/app/theme"
)

// templateData holds data passed to templates.
type templateData struct {
	View        theme.View
	RootStyle   template.CSS // pre-paint style for the document root
	Version     string
	AuthEnabled bool
	Error       string
}

// handleIndex renders the main page with all three boot stages baked in
// server-side: the pre-paint root style, the early mode class on the body
// and the fully applied toggle state.
func (s *Server) handleIndex(w http.ResponseWriter, _ *http.Request) {
	view := s.theme.Ready()
	data := templateData{
		View:        view,
		RootStyle:   template.CSS(view.RootStyle), //nolint:gosec // fixed constant, not user input
		Version:     s.cfg.Version,
		AuthEnabled: s.auth.Enabled(),
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.tmpl.ExecuteTemplate(w, "base.html", data); err != nil {
		log.Printf("[ERROR] failed to execute template: %v", err)
	}
}

// handleThemeCycle advances the theme preference and triggers a full page
// refresh so the new mode renders flash-free from the server.
func (s *Server) handleThemeCycle(w http.ResponseWriter, _ *http.Request) {
	view := s.theme.Cycle()
	log.Printf("[DEBUG] theme cycled via web, preference %s", view.Preference)

	// trigger full page refresh
	w.Header().Set("HX-Refresh", "true")
	w.WriteHeader(http.StatusOK)
}

// handleLoginForm renders the login page.
func (s *Server) handleLoginForm(w http.ResponseWriter, _ *http.Request) {
	view := s.theme.Ready()
	data := templateData{View: view, RootStyle: template.CSS(view.RootStyle)} //nolint:gosec // fixed constant
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.tmpl.ExecuteTemplate(w, "login.html", data); err != nil {
		log.Printf("[ERROR] failed to execute login template: %v", err)
	}
}

// handleLogin processes the login form submission.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form data", http.StatusBadRequest)
		return
	}

	if !s.auth.CheckPassword(r.FormValue("password")) {
		view := s.theme.Ready()
		data := templateData{View: view, RootStyle: template.CSS(view.RootStyle), Error: "Invalid password"} //nolint:gosec // fixed constant
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusUnauthorized)
		if err := s.tmpl.ExecuteTemplate(w, "login.html", data); err != nil {
			log.Printf("[ERROR] failed to execute login template: %v", err)
		}
		return
	}

	token := s.auth.CreateSession()
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   int(s.auth.LoginTTL().Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
		Secure:   r.TLS != nil,
	})

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// handleLogout invalidates the session and clears the cookie.
func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(sessionCookie); err == nil {
		s.auth.InvalidateSession(cookie.Value)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
		Secure:   r.TLS != nil,
	})

	http.Redirect(w, r, "/login", http.StatusSeeOther)
}
