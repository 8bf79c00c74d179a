package mainwindow

import (
	"fmt"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"pomotick/internal/core/model"
	"pomotick/internal/history"
	"pomotick/internal/ui/ring"
	"pomotick/resources"
)

// Callbacks defines handlers for main window actions.
type Callbacks struct {
	OnStart       func(goal string)
	OnPause       func()
	OnReset       func()
	OnSkip        func()
	OnToggleTheme func()
	OnPreferences func()
}

// Window is the main Pomotick window: progress ring, controls, goal entry
// and the session history pane.
type Window struct {
	window       fyne.Window
	callbacks    Callbacks
	progressRing *ring.Widget
	phaseLabel   *widget.Label
	startButton  *widget.Button
	skipButton   *widget.Button
	themeButton  *widget.Button
	goalEntry    *widget.Entry
	historyList  *widget.List
	entries      []history.Entry
	running      bool
}

// New creates the main window.
func New(app fyne.App, callbacks Callbacks) *Window {
	win := &Window{callbacks: callbacks}

	win.window = app.NewWindow("Pomotick")
	if app.Icon() != nil {
		win.window.SetIcon(app.Icon())
	}

	win.progressRing = ring.New("25:00")

	win.phaseLabel = widget.NewLabelWithStyle("Ready to focus", fyne.TextAlignCenter, fyne.TextStyle{Bold: true})

	win.goalEntry = widget.NewEntry()
	win.goalEntry.SetPlaceHolder("Enter your goal here...")

	win.startButton = widget.NewButton("Start", func() {
		if win.running {
			if win.callbacks.OnPause != nil {
				win.callbacks.OnPause()
			}
			return
		}
		if win.callbacks.OnStart != nil {
			win.callbacks.OnStart(win.goalEntry.Text)
		}
	})
	win.startButton.Importance = widget.HighImportance

	resetButton := widget.NewButton("Reset", func() {
		if win.callbacks.OnReset != nil {
			win.callbacks.OnReset()
		}
	})

	win.skipButton = widget.NewButton("Skip", func() {
		if win.callbacks.OnSkip != nil {
			win.callbacks.OnSkip()
		}
	})
	win.skipButton.Disable()

	win.themeButton = widget.NewButtonWithIcon("", resources.MustIcon("sun.png"), func() {
		if win.callbacks.OnToggleTheme != nil {
			win.callbacks.OnToggleTheme()
		}
	})

	prefsButton := widget.NewButton("Settings", func() {
		if win.callbacks.OnPreferences != nil {
			win.callbacks.OnPreferences()
		}
	})

	win.historyList = widget.NewList(
		func() int { return len(win.entries) },
		func() fyne.CanvasObject {
			return widget.NewLabel("entry")
		},
		func(index widget.ListItemID, object fyne.CanvasObject) {
			if index < 0 || index >= len(win.entries) {
				return
			}
			object.(*widget.Label).SetText(entryText(win.entries[index]))
		},
	)

	topBar := container.NewHBox(win.themeButton, layout.NewSpacer(), prefsButton)
	controls := container.NewGridWithColumns(3, win.startButton, resetButton, win.skipButton)

	upper := container.NewVBox(
		topBar,
		container.NewCenter(win.progressRing),
		win.phaseLabel,
		controls,
		win.goalEntry,
		widget.NewLabelWithStyle("History", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
	)

	content := container.NewBorder(upper, nil, nil, nil, win.historyList)
	win.window.SetContent(content)
	win.window.Resize(fyne.NewSize(500, 650))

	return win
}

// Show displays the main window.
func (win *Window) Show() {
	win.window.Show()
	win.window.RequestFocus()
}

// Native exposes the underlying fyne window.
func (win *Window) Native() fyne.Window {
	return win.window
}

// SetCountdown updates the ring label, fill fraction and phase title.
func (win *Window) SetCountdown(phase model.Phase, remaining time.Duration, progress float64) {
	win.progressRing.SetLabel(formatDuration(remaining))
	win.progressRing.SetProgress(progress)
	win.phaseLabel.SetText(phaseTitle(phase))
}

// SetRunning toggles the start button label and goal entry lock.
func (win *Window) SetRunning(running bool, phase model.Phase) {
	win.running = running
	if running {
		win.startButton.SetText("Pause")
		win.skipButton.Enable()
		win.goalEntry.Disable()
	} else {
		if phase == model.PhaseIdle {
			win.startButton.SetText("Start")
			win.skipButton.Disable()
		} else {
			win.startButton.SetText("Resume")
		}
		win.goalEntry.Enable()
	}
}

// ClearGoal empties and unlocks the goal entry for a new work session.
func (win *Window) ClearGoal() {
	win.goalEntry.SetText("")
}

// SetThemeIcon flips the theme toggle between the sun and moon icon.
func (win *Window) SetThemeIcon(dark bool) {
	if dark {
		win.themeButton.SetIcon(resources.MustIcon("moon.png"))
	} else {
		win.themeButton.SetIcon(resources.MustIcon("sun.png"))
	}
}

// SetHistory replaces the history pane contents, newest first.
func (win *Window) SetHistory(entries []history.Entry) {
	win.entries = entries
	win.historyList.Refresh()
}

// PrependHistory inserts a freshly recorded entry at the top of the pane.
func (win *Window) PrependHistory(entry history.Entry) {
	win.entries = append([]history.Entry{entry}, win.entries...)
	win.historyList.Refresh()
}

func entryText(entry history.Entry) string {
	marker := "🍅"
	if entry.Phase.IsBreak() {
		marker = "☕"
	}
	text := fmt.Sprintf("%s %s  %s", marker, phaseTitle(entry.Phase), entry.EndedAt.Format("2006-01-02 15:04:05"))
	if entry.Goal != "" {
		text += " - " + entry.Goal
	}
	if entry.Abandoned {
		text += " (skipped)"
	}
	return text
}

func phaseTitle(phase model.Phase) string {
	switch phase {
	case model.PhaseWork:
		return "Work"
	case model.PhaseShortBreak:
		return "Short break"
	case model.PhaseLongBreak:
		return "Long break"
	default:
		return "Ready to focus"
	}
}

func formatDuration(value time.Duration) string {
	if value < 0 {
		value = 0
	}
	seconds := int(value.Seconds())
	minutes := seconds / 60
	seconds = seconds % 60
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}
