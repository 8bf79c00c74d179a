// Package cli defines the Cobra commands for the pomotick binary.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"pomotick/internal/app"
)

var version = "dev" // set via ldflags at build time

var rootCmd = &cobra.Command{
	Use:           "pomotick",
	Short:         "A desktop pomodoro timer",
	Long:          "Pomotick cycles you through work and break intervals,\nplays a cue at each transition and records your session history.",
	Version:       version,
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return app.Run()
	},
}

// Execute runs the root command. Called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(historyCmd)
}
