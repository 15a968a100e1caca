package store

import (
	"errors"

	log "github.com/go-pkgz/lgr"

	"github.com/VernerAnton/shade/app/enum"
)

// prefTheme is the single well-known key the theme preference lives under.
const prefTheme = "theme"

// Preference returns the persisted theme preference. Absent, unreadable or
// malformed values all fall back to the system default; the caller never
// gets an error from a read.
func (s *Store) Preference() enum.Theme {
	value, err := s.Get(prefTheme)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			log.Printf("[WARN] failed to read theme preference: %v", err)
		}
		return enum.ThemeSystem
	}

	theme, err := enum.ParseTheme(value)
	if err != nil {
		log.Printf("[WARN] ignoring corrupt theme preference %q", value)
		return enum.ThemeSystem
	}
	return theme
}

// SetPreference persists the theme preference, overwriting any prior value.
func (s *Store) SetPreference(theme enum.Theme) error {
	return s.Set(prefTheme, theme.String())
}
