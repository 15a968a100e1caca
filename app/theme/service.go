// Package theme resolves the stored preference and the OS dark-mode signal
// into the applied visual state, and keeps that state current when either
// input changes.
package theme

import (
	"sync"

	log "github.com/go-pkgz/lgr"

	"github.com/VernerAnton/shade/app/enum"
	"github.com/VernerAnton/shade/app/scheme"
)

// PrefStore persists the theme preference. Reads never fail: absent or
// malformed values come back as the system default.
type PrefStore interface {
	Preference() enum.Theme
	SetPreference(theme enum.Theme) error
}

// Notifier delivers OS signal change notifications. OnChange returns an
// unsubscribe function.
type Notifier interface {
	OnChange(fn func(dark bool)) func()
}

// Service owns the current view and re-derives it whenever the preference
// or the OS signal changes. All mutation goes through Apply, so repeated
// application with the same inputs is idempotent.
type Service struct {
	prefs  PrefStore
	source scheme.Source

	mu     sync.Mutex
	view   View
	subs   map[int]chan View
	nextID int
}

// New creates a theme service over the given preference store and signal
// source. The initial view is installed by Boot.
func New(prefs PrefStore, source scheme.Source) *Service {
	return &Service{
		prefs:  prefs,
		source: source,
		subs:   make(map[int]chan View),
	}
}

// Preference returns the persisted preference.
func (s *Service) Preference() enum.Theme { return s.prefs.Preference() }

// View returns the last applied view.
func (s *Service) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view
}

// Apply resolves the effective mode for pref against the current OS signal
// and installs the resulting view. Subscribers are notified only when the
// view actually changed.
func (s *Service) Apply(pref enum.Theme) View {
	view := viewFor(pref, s.source.Dark())

	s.mu.Lock()
	defer s.mu.Unlock()

	if view == s.view {
		return view
	}
	s.view = view

	for _, ch := range s.subs {
		select {
		case ch <- view:
		default: // slow consumer, drop the intermediate view
		}
	}
	return view
}

// Cycle advances the preference system -> light -> dark -> system,
// persists it and applies the result. A failed write is logged and the
// view still updates; the preference just reverts on restart.
func (s *Service) Cycle() View {
	next := s.prefs.Preference().Next()
	if err := s.prefs.SetPreference(next); err != nil {
		log.Printf("[WARN] failed to persist theme preference: %v", err)
	}
	log.Printf("[INFO] theme cycled to %s", next)
	return s.Apply(next)
}

// Watch wires the change listener: on an OS signal flip it re-reads the
// preference and re-applies only when it is system. Returns the
// unsubscribe handle; with process-lifetime scope callers may discard it.
func (s *Service) Watch(notifier Notifier) func() {
	return notifier.OnChange(func(dark bool) {
		if s.prefs.Preference() != enum.ThemeSystem {
			return
		}
		view := s.Apply(enum.ThemeSystem)
		log.Printf("[INFO] re-resolved system theme, effective %s", view.Effective)
	})
}

// Subscribe returns a channel receiving every applied view change and an
// unsubscribe function closing it.
func (s *Service) Subscribe() (<-chan View, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	ch := make(chan View, 4)
	s.subs[id] = ch

	return ch, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if c, ok := s.subs[id]; ok {
			delete(s.subs, id)
			close(c)
		}
	}
}

// Boot stages. Each recomputes the effective mode from the same two inputs
// and touches only its own slice of the page state, so the stages are
// idempotent and order-independent in their final visual outcome.

// PrePaint returns the minimal root background for the very first paint,
// before any class-driven styling exists. Empty for light mode.
func (s *Service) PrePaint() string {
	if s.prefs.Preference().Resolve(s.source.Dark()) == enum.ModeDark {
		return darkRootStyle
	}
	return ""
}

// EarlyApply returns the mode class for the body as soon as classes are
// available, before the toggle control exists.
func (s *Service) EarlyApply() string {
	return s.prefs.Preference().Resolve(s.source.Dark()).String()
}

// Ready runs the full applier once the page can render the toggle.
func (s *Service) Ready() View {
	return s.Apply(s.prefs.Preference())
}

// Boot runs the three stages in order and returns the final view.
func (s *Service) Boot() View {
	log.Printf("[DEBUG] boot stage 1: pre-paint style %q", s.PrePaint())
	log.Printf("[DEBUG] boot stage 2: early mode class %q", s.EarlyApply())
	view := s.Ready()
	log.Printf("[INFO] theme ready: preference %s, effective %s", view.Preference, view.Effective)
	return view
}
