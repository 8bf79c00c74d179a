package preferences

import (
	"fmt"
	"strconv"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// Window handles the preferences UI.
type Window struct {
	window      fyne.Window
	settings    Settings
	onSave      func(Settings)
	workDur     *widget.Entry
	shortDur    *widget.Entry
	longDur     *widget.Entry
	interval    *widget.Entry
	sound       *widget.Check
	skipLogging *widget.Check
}

// New creates a preferences window.
func New(app fyne.App, settings Settings, onSave func(Settings), onTestSound func()) *Window {
	window := app.NewWindow("Pomotick Settings")

	workDur := widget.NewEntry()
	shortDur := widget.NewEntry()
	longDur := widget.NewEntry()
	interval := widget.NewEntry()

	workDur.SetText(fmt.Sprintf("%d", int(settings.WorkDuration.Minutes())))
	shortDur.SetText(fmt.Sprintf("%d", int(settings.ShortBreakDuration.Minutes())))
	longDur.SetText(fmt.Sprintf("%d", int(settings.LongBreakDuration.Minutes())))
	interval.SetText(fmt.Sprintf("%d", settings.LongBreakInterval))

	sound := widget.NewCheck("Play sound on phase change", nil)
	sound.SetChecked(settings.SoundEnabled)

	skipLogging := widget.NewCheck("Record skipped phases as abandoned", nil)
	skipLogging.SetChecked(settings.SkipLogsAbandoned)

	testSound := widget.NewButton("Test sound", func() {
		if onTestSound != nil {
			onTestSound()
		}
	})

	form := container.NewVBox(
		widget.NewLabelWithStyle("Durations", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewHBox(widget.NewLabel("Work"), workDur, widget.NewLabel("min")),
		container.NewHBox(widget.NewLabel("Short break"), shortDur, widget.NewLabel("min")),
		container.NewHBox(widget.NewLabel("Long break"), longDur, widget.NewLabel("min")),
		container.NewHBox(widget.NewLabel("Long break every"), interval, widget.NewLabel("work sessions")),
		widget.NewLabelWithStyle("Behavior", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		sound,
		skipLogging,
		testSound,
	)

	saveButton := widget.NewButton("Save", nil)
	cancelButton := widget.NewButton("Cancel", nil)
	buttons := container.NewHBox(saveButton, layout.NewSpacer(), cancelButton)

	content := container.NewBorder(nil, buttons, nil, nil, form)
	window.SetContent(content)
	window.Resize(fyne.NewSize(400, 380))
	window.SetCloseIntercept(func() {
		window.Hide()
	})

	prefs := &Window{
		window:      window,
		settings:    settings,
		onSave:      onSave,
		workDur:     workDur,
		shortDur:    shortDur,
		longDur:     longDur,
		interval:    interval,
		sound:       sound,
		skipLogging: skipLogging,
	}

	saveButton.OnTapped = prefs.handleSave
	cancelButton.OnTapped = func() {
		prefs.UpdateSettings(prefs.settings)
		window.Hide()
	}

	return prefs
}

// Show displays the preferences window.
func (prefs *Window) Show() {
	prefs.window.Show()
	prefs.window.RequestFocus()
}

// UpdateSettings replaces window values.
func (prefs *Window) UpdateSettings(settings Settings) {
	prefs.settings = settings
	prefs.workDur.SetText(fmt.Sprintf("%d", int(settings.WorkDuration.Minutes())))
	prefs.shortDur.SetText(fmt.Sprintf("%d", int(settings.ShortBreakDuration.Minutes())))
	prefs.longDur.SetText(fmt.Sprintf("%d", int(settings.LongBreakDuration.Minutes())))
	prefs.interval.SetText(fmt.Sprintf("%d", settings.LongBreakInterval))
	prefs.sound.SetChecked(settings.SoundEnabled)
	prefs.skipLogging.SetChecked(settings.SkipLogsAbandoned)
}

func (prefs *Window) handleSave() {
	settings := prefs.settings

	if minutes, ok := parsePositiveInt(prefs.workDur.Text); ok {
		settings.WorkDuration = time.Duration(minutes) * time.Minute
	}
	if minutes, ok := parsePositiveInt(prefs.shortDur.Text); ok {
		settings.ShortBreakDuration = time.Duration(minutes) * time.Minute
	}
	if minutes, ok := parsePositiveInt(prefs.longDur.Text); ok {
		settings.LongBreakDuration = time.Duration(minutes) * time.Minute
	}
	if count, ok := parsePositiveInt(prefs.interval.Text); ok {
		settings.LongBreakInterval = count
	}

	settings.SoundEnabled = prefs.sound.Checked
	settings.SkipLogsAbandoned = prefs.skipLogging.Checked

	prefs.settings = settings
	if prefs.onSave != nil {
		prefs.onSave(settings)
	}
	prefs.window.Hide()
}

func parsePositiveInt(value string) (int, bool) {
	parsed, err := strconv.Atoi(value)
	if err != nil || parsed <= 0 {
		return 0, false
	}
	return parsed, true
}
