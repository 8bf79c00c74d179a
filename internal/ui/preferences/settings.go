package preferences

import (
	"time"

	"pomotick/internal/core/model"
)

// ThemeVariant selects the application color scheme.
type ThemeVariant string

const (
	ThemeLight ThemeVariant = "light"
	ThemeDark  ThemeVariant = "dark"
)

// Settings defines editable user preferences.
type Settings struct {
	WorkDuration       time.Duration
	ShortBreakDuration time.Duration
	LongBreakDuration  time.Duration
	LongBreakInterval  int

	Theme             ThemeVariant
	SoundEnabled      bool
	SkipLogsAbandoned bool
}

// DefaultSettings returns default settings for Pomotick.
func DefaultSettings() Settings {
	return Settings{
		WorkDuration:       25 * time.Minute,
		ShortBreakDuration: 5 * time.Minute,
		LongBreakDuration:  15 * time.Minute,
		LongBreakInterval:  4,
		Theme:              ThemeLight,
		SoundEnabled:       true,
		SkipLogsAbandoned:  true,
	}
}

// SessionConfig converts settings to the engine configuration.
func (settings Settings) SessionConfig() model.SessionConfig {
	return model.SessionConfig{
		WorkDuration:       settings.WorkDuration,
		ShortBreakDuration: settings.ShortBreakDuration,
		LongBreakDuration:  settings.LongBreakDuration,
		LongBreakInterval:  settings.LongBreakInterval,
	}
}
