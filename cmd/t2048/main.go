// t2048 is the 2048 sliding-tile puzzle for the terminal.
//
// Usage:
//
//	t2048 play     - Play in a full-screen terminal UI
//	t2048 text     - Play the line-oriented text version
//	t2048 serve    - Start an SSH server, one game per session
//
// Global flags:
//
//	--config <path>     - Config file (default search: ~/.t2048/config.yaml, ./configs/t2048.yaml)
//	--seed <value>      - RNG seed for reproducible games (0 = random based on time)
//	--log-level <level> - debug, info, warn or error
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/term2048/internal/config"
	"github.com/vovakirdan/term2048/internal/core"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// app is the state shared by all subcommands once flags and config are resolved.
type app struct {
	configPath string
	seed       int64
	logLevel   string

	cfg    config.Config
	logger *log.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "t2048",
		Short: "2048 in your terminal",
		Long: `t2048 is the 2048 sliding-tile puzzle for the terminal.

Slide the board in one of four directions; equal tiles merge and a new 2
appears after every move that changes the board. The game ends when no
move is left.

Available commands:
  play     - Full-screen terminal UI
  text     - Line-oriented text mode
  serve    - SSH server for remote play

Examples:
  t2048 play
  t2048 text --seed 42
  t2048 serve --ssh :2222`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().Int64Var(&a.seed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(newPlayCmd(a))
	rootCmd.AddCommand(newTextCmd(a))
	rootCmd.AddCommand(newServeCmd(a))

	return rootCmd
}

// setup loads the config and applies flag overrides.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("seed") {
		cfg.Seed = a.seed
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = a.logLevel
	}

	level, err := cfg.Level()
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.logger = log.NewWithOptions(cmd.ErrOrStderr(), log.Options{
		ReportTimestamp: true,
		Prefix:          "t2048",
		Level:           level,
	})
	a.logger.Debug("config loaded", "path", a.configPath, "seed", cfg.Seed, "level", level)
	return nil
}

// gameSeed returns the configured seed, or the clock when it is zero.
func (a *app) gameSeed() int64 {
	if a.cfg.Seed != 0 {
		return a.cfg.Seed
	}
	return time.Now().UnixNano()
}

// runtimeConfig builds the session config. size reports the terminal
// dimensions; a nil size or a failing one keeps the 80x24 default.
func runtimeConfig(seed int64, size func() (int, int, error)) core.RuntimeConfig {
	cfg := core.DefaultConfig()
	cfg.Seed = seed
	if size == nil {
		return cfg
	}
	if w, h, err := size(); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	return cfg
}
