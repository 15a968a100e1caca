// Package enum provides typed enums shared across the application.
package enum

import "fmt"

// Theme is the user's stored appearance preference.
type Theme int

// Theme values, in cycle order.
const (
	ThemeSystem Theme = iota
	ThemeLight
	ThemeDark
)

// String returns the lowercase name of the theme.
func (t Theme) String() string {
	switch t {
	case ThemeLight:
		return "light"
	case ThemeDark:
		return "dark"
	default:
		return "system"
	}
}

// ParseTheme converts a string to a Theme, rejecting unknown values.
func ParseTheme(s string) (Theme, error) {
	switch s {
	case "system":
		return ThemeSystem, nil
	case "light":
		return ThemeLight, nil
	case "dark":
		return ThemeDark, nil
	}
	return ThemeSystem, fmt.Errorf("unknown theme %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (t Theme) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *Theme) UnmarshalText(data []byte) error {
	parsed, err := ParseTheme(string(data))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Mode is the effective visual mode, derived from a Theme and the OS dark
// signal. It is never persisted.
type Mode int

// Mode values.
const (
	ModeLight Mode = iota
	ModeDark
)

// String returns the lowercase name of the mode.
func (m Mode) String() string {
	if m == ModeDark {
		return "dark"
	}
	return "light"
}

// ParseMode converts a string to a Mode, rejecting unknown values.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "light":
		return ModeLight, nil
	case "dark":
		return ModeDark, nil
	}
	return ModeLight, fmt.Errorf("unknown mode %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (m Mode) MarshalText() ([]byte, error) { return []byte(m.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Mode) UnmarshalText(data []byte) error {
	parsed, err := ParseMode(string(data))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
