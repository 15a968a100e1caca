package enum

// Next returns the following theme in the cycle system -> light -> dark -> system.
func (t Theme) Next() Theme {
	switch t {
	case ThemeSystem:
		return ThemeLight
	case ThemeLight:
		return ThemeDark
	default:
		return ThemeSystem
	}
}

// Resolve returns the effective mode for the theme. Explicit themes ignore
// the OS signal, system follows it.
func (t Theme) Resolve(osDark bool) Mode {
	switch t {
	case ThemeLight:
		return ModeLight
	case ThemeDark:
		return ModeDark
	default:
		if osDark {
			return ModeDark
		}
		return ModeLight
	}
}
