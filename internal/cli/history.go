package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"pomotick/internal/app"
	"pomotick/internal/core/model"
	"pomotick/internal/history"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Print recorded sessions",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := history.DefaultPath(app.Name)
		if err != nil {
			return err
		}
		repo, err := history.NewRepository(path)
		if err != nil {
			return err
		}
		defer repo.Close()

		entries, err := repo.Recent(historyLimit)
		if err != nil {
			return err
		}
		if len(entries) == 0 {
			fmt.Println("no sessions recorded yet")
			return nil
		}

		today, err := repo.CompletedWorkSince(startOfDay(time.Now()))
		if err != nil {
			return err
		}

		for _, entry := range entries {
			fmt.Println(formatEntry(entry))
		}
		fmt.Printf("\n%d work sessions completed today\n", today)
		return nil
	},
}

func formatEntry(entry history.Entry) string {
	label := "work"
	switch entry.Phase {
	case model.PhaseShortBreak:
		label = "short break"
	case model.PhaseLongBreak:
		label = "long break"
	}
	line := fmt.Sprintf("%s  %-11s %s",
		entry.EndedAt.Local().Format("2006-01-02 15:04"),
		label,
		entry.EndedAt.Sub(entry.StartedAt).Round(time.Second),
	)
	if entry.Goal != "" {
		line += "  " + entry.Goal
	}
	if entry.Abandoned {
		line += "  (skipped)"
	}
	return line
}

func startOfDay(now time.Time) time.Time {
	year, month, day := now.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, now.Location())
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "Maximum number of sessions to print")
}
