package main

import (
	"context"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/mark3labs/hostwiz/internal/logger"
	"github.com/mark3labs/hostwiz/internal/tui/theme"
	"github.com/spf13/cobra"
)

const logoText = "█ █ █▀█ █▀ ▀█▀ █ █ █ █ ▀█\n█▀█ █▄█ ▄█  █  ▀▄▀▄▀ █ █▄"

// Version set via ldflags during build
var version = "dev"

func main() {
	// Ensure logger is closed on exit
	defer func() { _ = logger.Close() }()

	if err := fang.Execute(context.Background(), rootCmd, fang.WithVersion(version)); err != nil {
		logger.Error("Command execution failed: %v", err)
		_ = logger.Close()
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "hostwiz",
	Short: "Pick a profile and a host in a full-screen wizard",
	Args:  cobra.NoArgs,
	RunE:  runWizard,
}

// renderLogo creates the logo with gradient colors
func renderLogo() string {
	t := theme.Current()
	return theme.ApplyGradient(logoText, t.Primary, t.Secondary)
}

func init() {
	rootCmd.Long = renderLogo() + `

hostwiz walks you through choosing a profile, choosing an existing host or
naming a new one, and reviewing the result.

Profiles and hosts come from hostwiz.yml (see 'hostwiz setup'); without a
config file a built-in sample list is used.`

	rootCmd.Flags().BoolVar(&rootFlags.summary, "summary", false, "Print a summary after quitting from the review step")

	rootCmd.AddCommand(setupCmd)
}
