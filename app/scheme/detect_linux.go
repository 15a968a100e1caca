//go:build linux

package scheme

import (
	"os"
	"os/exec"
	"strings"
)

// osDark probes GNOME settings, falling back to the gtk theme name and the
// GTK_THEME environment variable.
func osDark() bool {
	// GNOME 42+ exposes an explicit color-scheme setting
	if out, err := exec.Command("gsettings", "get", "org.gnome.desktop.interface", "color-scheme").Output(); err == nil {
		if dark, ok := parseColorScheme(string(out)); ok {
			return dark
		}
	}

	// older GNOME: a "-dark" suffixed gtk theme
	if out, err := exec.Command("gsettings", "get", "org.gnome.desktop.interface", "gtk-theme").Output(); err == nil {
		if strings.Contains(strings.ToLower(string(out)), "dark") {
			return true
		}
	}

	return strings.Contains(strings.ToLower(os.Getenv("GTK_THEME")), "dark")
}

// parseColorScheme interprets gsettings color-scheme output, e.g.
// "'prefer-dark'". Returns ok=false when the value names neither scheme.
func parseColorScheme(out string) (dark, ok bool) {
	lower := strings.ToLower(out)
	switch {
	case strings.Contains(lower, "dark"):
		return true, true
	case strings.Contains(lower, "light"):
		return false, true
	}
	return false, false
}
