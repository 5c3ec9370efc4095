package tui

import (
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// ValidThemes lists the accepted values of the config "theme" key.
var ValidThemes = []string{"wsi", "base", "base16", "catppuccin", "charm", "dracula"}

var themeBuilders = map[string]func() *huh.Theme{
	"wsi":        wsiTheme,
	"base":       huh.ThemeBase,
	"base16":     huh.ThemeBase16,
	"catppuccin": huh.ThemeCatppuccin,
	"charm":      huh.ThemeCharm,
	"dracula":    huh.ThemeDracula,
}

// currentTheme styles the --pick form. Nil means the wsi theme.
var currentTheme *huh.Theme

// IsValidTheme reports whether name is a known theme.
func IsValidTheme(name string) bool {
	_, ok := themeBuilders[name]
	return ok
}

// GetTheme builds the named theme, or returns nil for an unknown name.
func GetTheme(name string) *huh.Theme {
	build, ok := themeBuilders[name]
	if !ok {
		return nil
	}
	return build()
}

// SetTheme selects the theme used by the picker. Unknown or empty names
// select the wsi theme.
func SetTheme(name string) {
	currentTheme = GetTheme(name)
}

func currentThemeOrDefault() *huh.Theme {
	if currentTheme == nil {
		return wsiTheme()
	}
	return currentTheme
}

func resetTheme() {
	currentTheme = nil
}

// wsiTheme is huh's base theme with the printer's cyan accent.
func wsiTheme() *huh.Theme {
	t := huh.ThemeBase()
	accent := lipgloss.Color("6")

	t.Focused.Base = t.Focused.Base.BorderStyle(lipgloss.RoundedBorder()).BorderForeground(accent)
	t.Focused.Title = t.Focused.Title.Bold(true).Foreground(accent)
	t.Focused.SelectSelector = t.Focused.SelectSelector.Foreground(accent)
	t.Focused.MultiSelectSelector = t.Focused.MultiSelectSelector.Foreground(accent)
	t.Focused.SelectedPrefix = t.Focused.SelectedPrefix.Foreground(lipgloss.Color("2"))
	t.Focused.FocusedButton = t.Focused.FocusedButton.Bold(true).Padding(0, 1).Background(accent)
	t.Focused.BlurredButton = t.Focused.BlurredButton.Padding(0, 1)

	t.Blurred = t.Focused
	t.Blurred.Base = t.Blurred.Base.BorderStyle(lipgloss.HiddenBorder())
	return t
}
