// Package server provides the HTTP server for the theme daemon: the web UI
// with the cycle toggle, the JSON API and the WebSocket push channel.
package server

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"time"

	log "github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/routegroup"

	"github.com/VernerAnton/shade/app/theme"
)

//go:embed static
var staticFS embed.FS

//go:embed templates
var templatesFS embed.FS

// ThemeService is the consumer-side interface over the theme service.
type ThemeService interface {
	Ready() theme.View
	Cycle() theme.View
	Subscribe() (<-chan theme.View, func())
}

// Config holds server configuration.
type Config struct {
	Address      string
	ReadTimeout  time.Duration
	Version      string
	PasswordHash string        // bcrypt hash for admin password (enables auth)
	LoginTTL     time.Duration // session duration
}

// Server represents the HTTP server.
type Server struct {
	theme    ThemeService
	cfg      Config
	auth     *Auth
	tmpl     *template.Template
	staticFS fs.FS
}

// New creates a new Server instance.
func New(svc ThemeService, cfg Config) (*Server, error) {
	tmpl, err := parseTemplates()
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	staticContent, err := fs.Sub(staticFS, "static")
	if err != nil {
		return nil, fmt.Errorf("failed to load static files: %w", err)
	}

	return &Server{
		theme:    svc,
		cfg:      cfg,
		auth:     NewAuth(cfg.PasswordHash, cfg.LoginTTL),
		tmpl:     tmpl,
		staticFS: staticContent,
	}, nil
}

// Run starts the HTTP server and blocks until context is canceled.
func (s *Server) Run(ctx context.Context) error {
	httpServer := &http.Server{
		Addr:              s.cfg.Address,
		Handler:           s.routes(),
		ReadHeaderTimeout: s.cfg.ReadTimeout,
	}

	if s.auth.Enabled() {
		s.auth.StartCleanup(ctx)
	}

	// graceful shutdown
	go func() {
		<-ctx.Done()
		log.Printf("[INFO] shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			log.Printf("[WARN] shutdown error: %v", err)
		}
	}()

	log.Printf("[DEBUG] started server on %s", s.cfg.Address)
	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// routes configures and returns the HTTP handler with all routes and middleware.
func (s *Server) routes() http.Handler {
	router := routegroup.New(http.NewServeMux())

	// global middleware (applies to all routes)
	router.Use(
		rest.Recoverer(log.Default()),
		rest.RealIP,
		rest.Trace,
		rest.SizeLimit(64*1024),
		rest.AppInfo("shade", "VernerAnton", s.cfg.Version),
		rest.Ping,
	)

	// public routes
	router.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.FS(s.staticFS))))

	sessionAuth := NoopAuth
	if s.auth.Enabled() {
		sessionAuth = s.auth.Middleware("/login")
		router.HandleFunc("GET /login", s.handleLoginForm)
		router.HandleFunc("POST /login", s.handleLogin)
		router.HandleFunc("POST /logout", s.handleLogout)
	}

	// web UI and API share the session auth (noop when auth disabled)
	router.Group().Route(func(protected *routegroup.Bundle) {
		protected.Use(sessionAuth)
		protected.HandleFunc("GET /{$}", s.handleIndex)
		protected.HandleFunc("POST /web/theme", s.handleThemeCycle)

		protected.Mount("/api/v1").Route(func(api *routegroup.Bundle) {
			api.HandleFunc("GET /theme", s.handleThemeState)
			api.HandleFunc("POST /theme/cycle", s.handleThemeCycleAPI)
			api.HandleFunc("GET /theme/ws", s.handleThemeWS)
		})
	})

	return router
}

// parseTemplates parses all templates from the embedded filesystem.
func parseTemplates() (*template.Template, error) {
	tmpl, err := template.ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return tmpl, nil
}
