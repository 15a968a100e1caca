package server

import (
	"context"
	"net/http"
	"strings"
	"sync"
	"time"

	log "github.com/go-pkgz/lgr"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// sessionCookie is the session cookie name.
const sessionCookie = "shade-auth"

// Auth provides optional single-admin password authentication. A daemon
// bound to localhost runs with auth disabled; set a bcrypt password hash
// to expose it further.
type Auth struct {
	passwordHash string
	loginTTL     time.Duration

	mu       sync.Mutex
	sessions map[string]time.Time // token -> expiry
}

// NewAuth creates an Auth. Empty passwordHash disables authentication.
func NewAuth(passwordHash string, loginTTL time.Duration) *Auth {
	if loginTTL <= 0 {
		loginTTL = 24 * time.Hour
	}
	return &Auth{
		passwordHash: passwordHash,
		loginTTL:     loginTTL,
		sessions:     make(map[string]time.Time),
	}
}

// Enabled reports whether authentication is configured.
func (a *Auth) Enabled() bool { return a.passwordHash != "" }

// CheckPassword verifies the admin password against the configured hash.
func (a *Auth) CheckPassword(password string) bool {
	if !a.Enabled() {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(a.passwordHash), []byte(password)) == nil
}

// CreateSession generates a new session token.
func (a *Auth) CreateSession() string {
	token := uuid.NewString()
	a.mu.Lock()
	a.sessions[token] = time.Now().Add(a.loginTTL)
	a.mu.Unlock()
	return token
}

// ValidateSession reports whether the token names a live session.
func (a *Auth) ValidateSession(token string) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	expiry, ok := a.sessions[token]
	if !ok {
		return false
	}
	if time.Now().After(expiry) {
		delete(a.sessions, token)
		return false
	}
	return true
}

// InvalidateSession removes the session for the token.
func (a *Auth) InvalidateSession(token string) {
	a.mu.Lock()
	delete(a.sessions, token)
	a.mu.Unlock()
}

// LoginTTL returns the session duration.
func (a *Auth) LoginTTL() time.Duration { return a.loginTTL }

// StartCleanup launches a goroutine pruning expired sessions until the
// context is canceled.
func (a *Auth) StartCleanup(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(10 * time.Minute)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				a.prune()
			}
		}
	}()
}

// prune drops expired sessions.
func (a *Auth) prune() {
	now := time.Now()
	a.mu.Lock()
	defer a.mu.Unlock()
	for token, expiry := range a.sessions {
		if now.After(expiry) {
			delete(a.sessions, token)
		}
	}
}

// Middleware guards routes with session authentication. Browser requests
// are redirected to loginURL, API requests get 401. Sessions are accepted
// from the cookie or an Authorization bearer token.
func (a *Auth) Middleware(loginURL string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if a.sessionFromRequest(r) {
				next.ServeHTTP(w, r)
				return
			}

			if strings.HasPrefix(r.URL.Path, "/api/") {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}
			log.Printf("[DEBUG] unauthenticated request to %s, redirecting to login", r.URL.Path)
			http.Redirect(w, r, loginURL, http.StatusSeeOther)
		})
	}
}

// sessionFromRequest checks the session cookie and the bearer token.
func (a *Auth) sessionFromRequest(r *http.Request) bool {
	if cookie, err := r.Cookie(sessionCookie); err == nil && a.ValidateSession(cookie.Value) {
		return true
	}
	if auth := r.Header.Get("Authorization"); strings.HasPrefix(auth, "Bearer ") {
		return a.ValidateSession(strings.TrimPrefix(auth, "Bearer "))
	}
	return false
}

// NoopAuth is a pass-through middleware used when auth is disabled.
func NoopAuth(next http.Handler) http.Handler { return next }
