package apptheme

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"

	"pomotick/internal/ui/preferences"
)

// Accent is the progress/primary color shared by both variants.
var Accent = color.NRGBA{R: 0x00, G: 0x7A, B: 0xFF, A: 0xFF}

// Track is the idle ring outline color.
var Track = color.NRGBA{R: 0xC0, G: 0xC0, B: 0xC0, A: 0xFF}

// Theme renders the app in a fixed light or dark variant.
type Theme struct {
	variant preferences.ThemeVariant
}

// New returns the theme for the given variant.
func New(variant preferences.ThemeVariant) fyne.Theme {
	return &Theme{variant: variant}
}

// Color overrides background, button and primary colors per variant.
func (appTheme *Theme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	if appTheme.variant == preferences.ThemeDark {
		switch name {
		case theme.ColorNameBackground:
			return color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xFF}
		case theme.ColorNameButton:
			return color.NRGBA{R: 0x55, G: 0x55, B: 0x55, A: 0xFF}
		case theme.ColorNameForeground:
			return color.NRGBA{R: 0xCC, G: 0xCC, B: 0xCC, A: 0xFF}
		case theme.ColorNamePrimary:
			return Accent
		}
		return theme.DefaultTheme().Color(name, theme.VariantDark)
	}

	switch name {
	case theme.ColorNameBackground:
		return color.NRGBA{R: 0xF2, G: 0xF2, B: 0xF7, A: 0xFF}
	case theme.ColorNamePrimary:
		return Accent
	}
	return theme.DefaultTheme().Color(name, theme.VariantLight)
}

// Font defers to the default theme.
func (appTheme *Theme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon defers to the default theme.
func (appTheme *Theme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size defers to the default theme.
func (appTheme *Theme) Size(name fyne.ThemeSizeName) float32 {
	return theme.DefaultTheme().Size(name)
}
