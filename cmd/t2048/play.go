package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/term2048/internal/platform/tui"
	"github.com/vovakirdan/term2048/internal/t2048"
)

func newPlayCmd(a *app) *cobra.Command {
	var logFile string

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play in a full-screen terminal UI",
		Long: `Start a full-screen game of 2048.

Controls:
  Arrows/WASD      - Slide (WASD matches the text mode keys)
  P/Esc            - Pause
  R                - Restart (after game over)
  Ctrl+S           - Save a screenshot to ~/.t2048/screenshots
  ?                - Toggle full help
  Q/Ctrl+C         - Quit

The terminal is owned by the UI, so logs are discarded unless --log-file is set.

Examples:
  t2048 play
  t2048 play --seed 7
  t2048 play --log-level debug --log-file /tmp/t2048.log`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runPlay(a, logFile)
		},
	}

	cmd.Flags().StringVar(&logFile, "log-file", "", "Write logs to this file while playing")
	return cmd
}

func runPlay(a *app, logFile string) error {
	var logger *log.Logger
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()

		logger = log.NewWithOptions(f, log.Options{
			ReportTimestamp: true,
			Prefix:          "t2048",
			Level:           a.logger.GetLevel(),
		})
	}

	cfg := runtimeConfig(a.cfg.Seed, func() (int, int, error) {
		return term.GetSize(int(os.Stdout.Fd()))
	})

	return tui.Run(t2048.New(logger), cfg, logger)
}
