package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/term2048/internal/platform/text"
	"github.com/vovakirdan/term2048/internal/t2048"
)

func newTextCmd(a *app) *cobra.Command {
	var noClear bool

	cmd := &cobra.Command{
		Use:   "text",
		Short: "Play the line-oriented text version",
		Long: `Play 2048 one command per line on stdin.

Default commands (configurable under text.keys):
  g/a/left  - Slide left
  d/right   - Slide right
  h/w/up    - Slide up
  b/s/down  - Slide down
  q/quit    - Quit

Examples:
  t2048 text
  t2048 text --no-clear --seed 42
  printf 'g\nh\nq\n' | t2048 text --no-clear`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			game := newTextGame(a)

			return text.Run(game, cmd.InOrStdin(), cmd.OutOrStdout(), text.Options{
				Clear:  a.cfg.Text.ClearScreen && !noClear,
				Keys:   a.cfg.Text.Keys.Keymap(),
				Logger: a.logger,
			})
		},
	}

	cmd.Flags().BoolVar(&noClear, "no-clear", false, "Do not clear the terminal between boards")
	return cmd
}

// newTextGame starts a session for the text loop. There is no screen to
// measure, so the session gets the default size.
func newTextGame(a *app) *t2048.Game {
	cfg := runtimeConfig(a.gameSeed(), nil)

	game := t2048.New(a.logger)
	game.Reset(cfg)
	a.logger.Debug("text mode", "seed", cfg.Seed)
	return game
}
