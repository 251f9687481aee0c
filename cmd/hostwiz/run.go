package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/x/term"
	"github.com/mark3labs/hostwiz/internal/config"
	"github.com/mark3labs/hostwiz/internal/logger"
	"github.com/mark3labs/hostwiz/internal/state"
	"github.com/mark3labs/hostwiz/internal/summary"
	"github.com/mark3labs/hostwiz/internal/tui/wizard"
	"github.com/spf13/cobra"
)

var rootFlags struct {
	summary bool
}

func runWizard(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	if err := logger.Configure(cfg.LogLevel, cfg.LogFile); err != nil {
		return fmt.Errorf("failed to configure logging: %w", err)
	}

	if !config.Exists() {
		logger.Debug("No config file found, using defaults (run 'hostwiz setup' to create one)")
	}
	if len(cfg.Hosts) == 0 {
		logger.Warn("No hosts configured, only %q will be offered", state.NewHostLabel)
	}

	w, err := state.New(cfg.Profiles, cfg.Hosts)
	if err != nil {
		return fmt.Errorf("failed to create wizard: %w", err)
	}

	logger.Info("Starting wizard with %d profiles and %d hosts", len(cfg.Profiles), len(cfg.Hosts))

	// The terminal is restored by the time Run returns, error or not.
	res, err := wizard.Run(w)
	if err != nil {
		return err
	}

	logger.Info("Wizard finished on %s: profile=%q host=%q new=%t",
		res.Step, res.Selection.Profile, res.Selection.Host, res.Selection.NewHost)

	if rootFlags.summary && res.Completed {
		fmt.Fprintln(cmd.OutOrStdout(), summary.Render(summary.Markdown(res.Selection), outputWidth()))
	}

	return nil
}

// outputWidth returns the stdout terminal width, or 0 when unknown.
func outputWidth() int {
	width, _, err := term.GetSize(os.Stdout.Fd())
	if err != nil {
		return 0
	}
	return width
}
