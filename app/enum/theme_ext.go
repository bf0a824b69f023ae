package enum

// Toggle returns the opposite theme (dark↔light).
func (t Theme) Toggle() Theme {
	if t == ThemeLight {
		return ThemeDark
	}
	return ThemeLight
}

// FromDark maps a prefers-color-scheme: dark match to a theme.
func FromDark(dark bool) Theme {
	if dark {
		return ThemeDark
	}
	return ThemeLight
}
