package preferences

import (
	"testing"
	"time"

	"fyne.io/fyne/v2/test"
)

func TestSaveStartsFromLatestSettings(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	var saved Settings
	prefs := New(app, DefaultSettings(), func(settings Settings) {
		saved = settings
	}, nil)

	// The theme can change outside this window; a later save must not
	// revert it to the value the window was created with.
	current := DefaultSettings()
	current.Theme = ThemeDark
	prefs.UpdateSettings(current)

	prefs.workDur.SetText("30")
	prefs.handleSave()

	if saved.Theme != ThemeDark {
		t.Fatalf("saved theme = %q, want %q", saved.Theme, ThemeDark)
	}
	if saved.WorkDuration != 30*time.Minute {
		t.Fatalf("saved work duration = %v, want 30m", saved.WorkDuration)
	}
}

func TestCancelRestoresShownValues(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	prefs := New(app, DefaultSettings(), nil, nil)
	prefs.workDur.SetText("99")
	prefs.UpdateSettings(prefs.settings)

	if got := prefs.workDur.Text; got != "25" {
		t.Fatalf("work entry after restore = %q, want %q", got, "25")
	}
}
