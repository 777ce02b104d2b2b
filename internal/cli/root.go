// Package cli implements the Study Quest command-line interface using Cobra.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "studyquest",
	Short: "Study Quest — gamified study tracker",
	Long: `Study Quest turns studying into a game.
Complete quests and pomodoro sessions to earn XP, keep streaks alive,
hatch pets from eggs, and take down the monthly boss.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command. Called from main.go.
func Execute(version string) {
	rootCmd.Version = version

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
