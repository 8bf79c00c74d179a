package storage

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"pomotick/internal/ui/preferences"
)

func TestSettingsRoundTrip(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("test redirects XDG_CONFIG_HOME")
	}
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	settings := preferences.DefaultSettings()
	settings.WorkDuration = 50 * time.Minute
	settings.LongBreakInterval = 3
	settings.Theme = preferences.ThemeDark
	settings.SoundEnabled = false

	if err := SaveSettings("pomotick-test", settings); err != nil {
		t.Fatalf("SaveSettings failed: %v", err)
	}

	loaded, err := LoadSettings("pomotick-test")
	if err != nil {
		t.Fatalf("LoadSettings failed: %v", err)
	}

	if loaded.WorkDuration != 50*time.Minute {
		t.Errorf("WorkDuration: got %v, want 50m", loaded.WorkDuration)
	}
	if loaded.LongBreakInterval != 3 {
		t.Errorf("LongBreakInterval: got %d, want 3", loaded.LongBreakInterval)
	}
	if loaded.Theme != preferences.ThemeDark {
		t.Errorf("Theme: got %q, want dark", loaded.Theme)
	}
	if loaded.SoundEnabled {
		t.Error("SoundEnabled: got true, want false")
	}
}

func TestLoadSettingsMissingFileReturnsDefaults(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("test redirects XDG_CONFIG_HOME")
	}
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	loaded, err := LoadSettings("pomotick-test")
	if err != nil {
		t.Fatalf("LoadSettings failed: %v", err)
	}
	if loaded != preferences.DefaultSettings() {
		t.Errorf("got %+v, want defaults", loaded)
	}
}

func TestLoadSettingsPartialFileKeepsBooleanDefaults(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("test redirects XDG_CONFIG_HOME")
	}
	configHome := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", configHome)

	dir := filepath.Join(configHome, "pomotick-test")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("MkdirAll failed: %v", err)
	}
	partial := []byte("work_minutes: 40\n")
	if err := os.WriteFile(filepath.Join(dir, settingsFileName), partial, 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	loaded, err := LoadSettings("pomotick-test")
	if err != nil {
		t.Fatalf("LoadSettings failed: %v", err)
	}
	if loaded.WorkDuration != 40*time.Minute {
		t.Errorf("WorkDuration: got %v, want 40m", loaded.WorkDuration)
	}
	if !loaded.SoundEnabled {
		t.Error("SoundEnabled: got false, want default true")
	}
	if !loaded.SkipLogsAbandoned {
		t.Error("SkipLogsAbandoned: got false, want default true")
	}
}

func TestApplyYamlSettingsIgnoresBadValues(t *testing.T) {
	settings := preferences.DefaultSettings()

	applyYamlSettings(&settings, yamlSettings{
		WorkMinutes:       0,
		ShortBreakMinutes: -5,
		LongBreakMinutes:  20,
		LongBreakInterval: 0,
		Theme:             "neon",
	})

	defaults := preferences.DefaultSettings()
	if settings.WorkDuration != defaults.WorkDuration {
		t.Errorf("WorkDuration: got %v, want default %v", settings.WorkDuration, defaults.WorkDuration)
	}
	if settings.ShortBreakDuration != defaults.ShortBreakDuration {
		t.Errorf("ShortBreakDuration: got %v, want default", settings.ShortBreakDuration)
	}
	if settings.LongBreakDuration != 20*time.Minute {
		t.Errorf("LongBreakDuration: got %v, want 20m", settings.LongBreakDuration)
	}
	if settings.LongBreakInterval != defaults.LongBreakInterval {
		t.Errorf("LongBreakInterval: got %d, want default", settings.LongBreakInterval)
	}
	if settings.Theme != defaults.Theme {
		t.Errorf("Theme: got %q, want default %q", settings.Theme, defaults.Theme)
	}
}
