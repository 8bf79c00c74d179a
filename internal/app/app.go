// Package app assembles the engine, storage, audio and UI into the
// running desktop application.
package app

import (
	"fmt"
	"log"
	"time"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"

	"pomotick/internal/audio"
	"pomotick/internal/core/engine"
	"pomotick/internal/core/model"
	"pomotick/internal/history"
	"pomotick/internal/platform"
	"pomotick/internal/storage"
	"pomotick/internal/ui/apptheme"
	"pomotick/internal/ui/mainwindow"
	"pomotick/internal/ui/preferences"
	"pomotick/internal/ui/tray"
	"pomotick/resources"
)

// Name is used for the config directory, tray menu and window titles.
const Name = "Pomotick"

const historyPaneLimit = 100

// Run starts the desktop application and blocks until it quits.
func Run() error {
	guard, err := platform.AcquireSingleInstance(Name)
	if err != nil {
		return fmt.Errorf("%s is already running", Name)
	}
	defer func() {
		_ = guard.Release()
	}()

	settings, err := storage.LoadSettings(Name)
	if err != nil {
		log.Printf("load settings: %v", err)
	}

	fyneApp := fyneapp.NewWithID("com.pomotick.app")
	fyneApp.SetIcon(mustLogo())
	fyneApp.Settings().SetTheme(apptheme.New(settings.Theme))

	eng, err := engine.New(settings.SessionConfig(), engine.Options{
		TickInterval:      time.Second,
		SkipLogsAbandoned: settings.SkipLogsAbandoned,
	})
	if err != nil {
		return fmt.Errorf("create engine: %w", err)
	}

	player, err := audio.NewPlayer(settings.SoundEnabled)
	if err != nil {
		log.Printf("audio unavailable: %v", err)
	}
	defer player.Close()

	repo := openRepository()
	if repo != nil {
		defer repo.Close()
	}

	ui := newController(fyneApp, eng, player, repo, settings)
	ui.loadHistory()

	events := eng.Subscribe(8)
	go func() {
		for event := range events {
			event := event
			fyne.Do(func() {
				ui.handleEvent(event)
			})
		}
	}()

	go eng.Run()

	ui.mainWin.Show()
	fyneApp.Run()

	eng.Stop()
	return nil
}

func openRepository() *history.Repository {
	path, err := history.DefaultPath(Name)
	if err != nil {
		log.Printf("history disabled: %v", err)
		return nil
	}
	repo, err := history.NewRepository(path)
	if err != nil {
		log.Printf("history disabled: %v", err)
		return nil
	}
	return repo
}

// controller owns the UI state shared by window, tray and event handling.
type controller struct {
	fyneApp    fyne.App
	eng        *engine.Engine
	player     *audio.Player
	repo       *history.Repository
	settings   preferences.Settings
	mainWin    *mainwindow.Window
	prefsWin   *preferences.Window
	trayMgr    *tray.Manager
	desktopApp desktop.App
}

func newController(fyneApp fyne.App, eng *engine.Engine, player *audio.Player, repo *history.Repository, settings preferences.Settings) *controller {
	ui := &controller{
		fyneApp:  fyneApp,
		eng:      eng,
		player:   player,
		repo:     repo,
		settings: settings,
	}

	ui.mainWin = mainwindow.New(fyneApp, mainwindow.Callbacks{
		OnStart: func(goal string) {
			eng.Start(goal)
		},
		OnPause:       eng.Pause,
		OnReset:       eng.Reset,
		OnSkip:        eng.Skip,
		OnToggleTheme: ui.toggleTheme,
		OnPreferences: func() {
			ui.prefsWin.Show()
		},
	})

	ui.prefsWin = preferences.New(fyneApp, settings, ui.applySettings, player.PlayCue)

	if desktopApp, ok := fyneApp.(desktop.App); ok {
		ui.desktopApp = desktopApp
		desktopApp.SetSystemTrayIcon(mustLogo())
		ui.trayMgr = tray.New(desktopApp, tray.Callbacks{
			OnOpen: ui.mainWin.Show,
			OnTogglePause: func() {
				snapshot := eng.Snapshot()
				if snapshot.Running {
					eng.Pause()
				} else if snapshot.Phase != model.PhaseIdle {
					eng.Start("")
				}
			},
			OnSkip: eng.Skip,
			OnQuit: func() {
				eng.Stop()
				fyneApp.Quit()
			},
		})
		// Closing the window keeps the timer alive in the tray.
		ui.mainWin.Native().SetCloseIntercept(func() {
			ui.mainWin.Native().Hide()
		})
	}

	ui.mainWin.SetThemeIcon(settings.Theme == preferences.ThemeDark)
	ui.mainWin.SetCountdown(model.PhaseIdle, settings.WorkDuration, 0)
	return ui
}

func (ui *controller) handleEvent(event engine.Event) {
	switch event.Type {
	case engine.EventProgress:
		ui.mainWin.SetCountdown(event.Phase, event.Remaining, event.Progress)
		ui.setTrayStatus(event.Phase, event.Remaining)
	case engine.EventStateChange:
		ui.handleStateChange(event)
	case engine.EventPhaseCompleted:
		ui.handlePhaseCompleted(event)
	case engine.EventBreakEnding:
		ui.player.PlayWarning()
		ui.fyneApp.SendNotification(fyne.NewNotification(Name,
			"Your next work session starts in a minute. Set your new goal."))
	}
}

func (ui *controller) handleStateChange(event engine.Event) {
	snapshot := ui.eng.Snapshot()
	if snapshot.Phase == model.PhaseIdle {
		ui.mainWin.SetCountdown(model.PhaseIdle, ui.settings.WorkDuration, 0)
	} else {
		progress := phaseProgress(ui.eng.Config(), snapshot.Phase, snapshot.Remaining)
		ui.mainWin.SetCountdown(snapshot.Phase, snapshot.Remaining, progress)
	}
	ui.mainWin.SetRunning(snapshot.Running, snapshot.Phase)
	paused := !snapshot.Running && snapshot.Phase != model.PhaseIdle
	if ui.trayMgr != nil {
		ui.trayMgr.SetPaused(paused)
		ui.trayMgr.SetActive(snapshot.Phase != model.PhaseIdle)
		ui.setTrayStatus(snapshot.Phase, snapshot.Remaining)
	}
	if ui.desktopApp != nil {
		if paused {
			ui.desktopApp.SetSystemTrayIcon(resources.MustLogo("tomato_paused.png"))
		} else {
			ui.desktopApp.SetSystemTrayIcon(mustLogo())
		}
	}
}

func (ui *controller) handlePhaseCompleted(event engine.Event) {
	ui.player.PlayCue()

	if event.Entry != nil {
		entry := *event.Entry
		if ui.repo != nil {
			if err := ui.repo.Insert(&entry); err != nil {
				log.Printf("record session: %v", err)
			}
		}
		ui.mainWin.PrependHistory(entry)
	}

	ui.fyneApp.SendNotification(fyne.NewNotification(Name, transitionMessage(event)))

	if event.Phase == model.PhaseWork {
		ui.mainWin.ClearGoal()
	}
	ui.mainWin.SetCountdown(event.Phase, event.Remaining, 0)
	snapshot := ui.eng.Snapshot()
	ui.mainWin.SetRunning(snapshot.Running, snapshot.Phase)
	ui.setTrayStatus(event.Phase, event.Remaining)
}

func (ui *controller) applySettings(updated preferences.Settings) {
	if err := ui.eng.Configure(updated.SessionConfig()); err != nil {
		dialog.ShowError(err, ui.mainWin.Native())
		ui.prefsWin.UpdateSettings(ui.settings)
		return
	}

	ui.settings = updated
	ui.eng.SetSkipLogsAbandoned(updated.SkipLogsAbandoned)
	ui.player.SetEnabled(updated.SoundEnabled)
	ui.saveSettings()

	if ui.eng.Snapshot().Phase == model.PhaseIdle {
		ui.mainWin.SetCountdown(model.PhaseIdle, updated.WorkDuration, 0)
	}
}

func (ui *controller) toggleTheme() {
	if ui.settings.Theme == preferences.ThemeDark {
		ui.settings.Theme = preferences.ThemeLight
	} else {
		ui.settings.Theme = preferences.ThemeDark
	}
	ui.fyneApp.Settings().SetTheme(apptheme.New(ui.settings.Theme))
	ui.mainWin.SetThemeIcon(ui.settings.Theme == preferences.ThemeDark)
	ui.prefsWin.UpdateSettings(ui.settings)
	ui.saveSettings()
}

func (ui *controller) saveSettings() {
	if err := storage.SaveSettings(Name, ui.settings); err != nil {
		log.Printf("save settings: %v", err)
	}
}

func (ui *controller) loadHistory() {
	if ui.repo == nil {
		return
	}
	entries, err := ui.repo.Recent(historyPaneLimit)
	if err != nil {
		log.Printf("load history: %v", err)
		return
	}
	ui.mainWin.SetHistory(entries)
}

func (ui *controller) setTrayStatus(phase model.Phase, remaining time.Duration) {
	if ui.trayMgr == nil {
		return
	}
	if phase == model.PhaseIdle {
		ui.trayMgr.SetStatus("idle")
		return
	}
	ui.trayMgr.SetStatus(fmt.Sprintf("%s %s", phaseStatus(phase), formatRemaining(remaining)))
}

func transitionMessage(event engine.Event) string {
	switch {
	case event.Phase == model.PhaseLongBreak:
		return "Work session complete. Time for a long break."
	case event.Phase == model.PhaseShortBreak:
		return "Work session complete. Time for a short break."
	default:
		return "Break over. Back to work."
	}
}

func phaseStatus(phase model.Phase) string {
	switch phase {
	case model.PhaseWork:
		return "work"
	case model.PhaseShortBreak:
		return "short break"
	case model.PhaseLongBreak:
		return "long break"
	default:
		return "idle"
	}
}

func phaseProgress(config model.SessionConfig, phase model.Phase, remaining time.Duration) float64 {
	total := config.PhaseDuration(phase)
	if total <= 0 {
		return 0
	}
	return float64(total-remaining) / float64(total)
}

func formatRemaining(remaining time.Duration) string {
	if remaining < 0 {
		remaining = 0
	}
	seconds := int(remaining.Seconds())
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

func mustLogo() fyne.Resource {
	return resources.MustLogo("tomato.png")
}
