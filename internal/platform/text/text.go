// Package text implements the line-oriented 2048 front-end: print the board,
// read one command per line, repeat.
package text

import (
	"bufio"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/term2048/internal/config"
	"github.com/vovakirdan/term2048/internal/t2048"
)

// clearSequence moves the cursor home and clears the terminal.
const clearSequence = "\x1b[H\x1b[2J"

const (
	msgGameOver = "No space and no merge left: game over."
	msgBye      = "Bye."
	msgInvalid  = "Invalid input."
	prompt      = "Your choice: "
)

// Mover is the part of a game session the text loop drives.
type Mover interface {
	Board() t2048.Board
	Score() int
	Move(dir t2048.Direction) t2048.Outcome
}

// Options configures Run.
type Options struct {
	Clear  bool          // Clear the terminal before every board
	Keys   config.Keymap // Token to command mapping
	Logger *log.Logger   // Nil discards
}

// Run plays game until the player quits, the game ends or in is exhausted.
// Reaching EOF is not an error.
func Run(game Mover, in io.Reader, out io.Writer, opts Options) error {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	w := bufio.NewWriter(out)
	scanner := bufio.NewScanner(in)
	help := opts.Keys.Help()

	for {
		if opts.Clear {
			w.WriteString(clearSequence)
		}
		writeBoard(w, game.Score(), game.Board())
		fmt.Fprintln(w, "Commands:")
		fmt.Fprintf(w, "  %s\n", help)
		w.WriteString(prompt)
		if err := w.Flush(); err != nil {
			return fmt.Errorf("text: write: %w", err)
		}

		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("text: read input: %w", err)
			}
			logger.Debug("input closed")
			fmt.Fprintln(w)
			return w.Flush()
		}

		cmd, dir := opts.Keys.Lookup(scanner.Text())
		switch cmd {
		case config.CommandMove:
			outcome := game.Move(dir)
			if outcome.Terminal {
				if opts.Clear {
					w.WriteString(clearSequence)
				}
				writeBoard(w, game.Score(), game.Board())
				fmt.Fprintln(w, msgGameOver)
				logger.Info("game over", "score", game.Score())
				return w.Flush()
			}
		case config.CommandQuit:
			fmt.Fprintln(w, msgBye)
			return w.Flush()
		default:
			fmt.Fprintln(w, msgInvalid)
		}
	}
}

func writeBoard(w io.Writer, score int, b t2048.Board) {
	fmt.Fprintf(w, "SCORE: %d\n\n", score)
	fmt.Fprint(w, b.String())
	fmt.Fprintln(w)
}
