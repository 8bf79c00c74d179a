package apptheme

import (
	"testing"

	"fyne.io/fyne/v2/theme"

	"pomotick/internal/ui/preferences"
)

func TestVariantsDifferOnBackground(t *testing.T) {
	light := New(preferences.ThemeLight)
	dark := New(preferences.ThemeDark)

	lightBG := light.Color(theme.ColorNameBackground, theme.VariantLight)
	darkBG := dark.Color(theme.ColorNameBackground, theme.VariantLight)
	if lightBG == darkBG {
		t.Error("light and dark backgrounds must differ")
	}
}

func TestPrimaryIsAccentInBothVariants(t *testing.T) {
	for _, variant := range []preferences.ThemeVariant{preferences.ThemeLight, preferences.ThemeDark} {
		appTheme := New(variant)
		if appTheme.Color(theme.ColorNamePrimary, theme.VariantLight) != Accent {
			t.Errorf("%s: primary color is not the accent", variant)
		}
	}
}
