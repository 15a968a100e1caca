package theme

import "github.com/VernerAnton/shade/app/enum"

// darkRootStyle is the minimal dark background applied to the document
// root before any class-driven styling exists, to avoid a bright flash on
// first paint.
const darkRootStyle = "background-color:#16161d"

// toggle control labels, fixed lookup keyed by preference
const (
	glyphAuto  = "◐"
	glyphMoon  = "☾"
	glyphReset = "⟲"
)

// View is the applied visual state of the page: exactly one mode class,
// the toggle control's label pair and the inputs it was derived from. The
// loading flash guard is not part of the view; it is set in the markup and
// cleared client-side once the document is ready.
type View struct {
	RootStyle     string     `json:"root_style"`
	BodyClass     string     `json:"body_class"`
	ToggleGlyph   string     `json:"toggle_glyph"`
	ToggleTooltip string     `json:"toggle_tooltip"`
	Preference    enum.Theme `json:"preference"`
	Effective     enum.Mode  `json:"effective"`
	OSDark        bool       `json:"os_dark"`
}

// viewFor derives the full view from the preference and the OS signal.
// Pure and total: the same inputs always produce the same view.
func viewFor(pref enum.Theme, osDark bool) View {
	mode := pref.Resolve(osDark)
	v := View{
		BodyClass:  mode.String(),
		Preference: pref,
		Effective:  mode,
		OSDark:     osDark,
	}
	if mode == enum.ModeDark {
		v.RootStyle = darkRootStyle
	}

	switch pref {
	case enum.ThemeSystem:
		v.ToggleGlyph = glyphAuto
		v.ToggleTooltip = "auto (" + mode.String() + ")"
	case enum.ThemeLight:
		v.ToggleGlyph = glyphMoon
		v.ToggleTooltip = "switch to dark"
	case enum.ThemeDark:
		v.ToggleGlyph = glyphReset
		v.ToggleTooltip = "switch to system"
	}
	return v
}
