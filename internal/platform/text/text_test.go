package text

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/term2048/internal/config"
	"github.com/vovakirdan/term2048/internal/core"
	"github.com/vovakirdan/term2048/internal/t2048"
)

// scriptedGame replays fixed outcomes and records the directions it was asked for.
type scriptedGame struct {
	board    t2048.Board
	score    int
	outcomes []t2048.Outcome
	dirs     []t2048.Direction
}

func (g *scriptedGame) Board() t2048.Board { return g.board }
func (g *scriptedGame) Score() int         { return g.score }

func (g *scriptedGame) Move(dir t2048.Direction) t2048.Outcome {
	g.dirs = append(g.dirs, dir)
	out := t2048.Outcome{Board: g.board}
	if len(g.outcomes) > 0 {
		out = g.outcomes[0]
		g.outcomes = g.outcomes[1:]
	}
	g.board = out.Board
	g.score += out.Points
	return out
}

func defaultOptions() Options {
	return Options{Keys: config.DefaultConfig().Text.Keys.Keymap()}
}

func TestRunQuit(t *testing.T) {
	game := &scriptedGame{board: t2048.Board{{2}}}
	var out strings.Builder

	err := Run(game, strings.NewReader("q\n"), &out, defaultOptions())
	require.NoError(t, err)

	expected := "SCORE: 0\n\n" +
		game.board.String() + "\n" +
		"Commands:\n" +
		"  g = left | d = right | h = up | b = down | q = quit\n" +
		"Your choice: " +
		"Bye.\n"
	assert.Equal(t, expected, out.String())
	assert.Empty(t, game.dirs)
}

func TestRunMovesUntilEOF(t *testing.T) {
	game := &scriptedGame{}
	var out strings.Builder

	err := Run(game, strings.NewReader("g\nD\n h \nb\nleft\n"), &out, defaultOptions())
	require.NoError(t, err)

	assert.Equal(t, []t2048.Direction{
		t2048.DirLeft, t2048.DirRight, t2048.DirUp, t2048.DirDown, t2048.DirLeft,
	}, game.dirs)
	assert.Equal(t, 6, strings.Count(out.String(), "Your choice: "))
	assert.NotContains(t, out.String(), "Bye.")
}

func TestRunInvalidInput(t *testing.T) {
	game := &scriptedGame{}
	var out strings.Builder

	err := Run(game, strings.NewReader("x\n\nq\n"), &out, defaultOptions())
	require.NoError(t, err)

	assert.Equal(t, 2, strings.Count(out.String(), "Invalid input.\n"))
	assert.Empty(t, game.dirs)
	assert.True(t, strings.HasSuffix(out.String(), "Bye.\n"))
}

func TestRunGameOver(t *testing.T) {
	final := t2048.Board{
		{4, 8, 16, 2},
		{32, 64, 128, 256},
		{512, 1024, 2048, 4096},
		{8192, 16384, 32768, 65536},
	}
	game := &scriptedGame{
		outcomes: []t2048.Outcome{{Board: final, Points: 4, Terminal: true}},
	}
	var out strings.Builder

	err := Run(game, strings.NewReader("g\nd\n"), &out, defaultOptions())
	require.NoError(t, err)

	assert.Len(t, game.dirs, 1, "loop stops at game over")
	assert.True(t, strings.HasSuffix(out.String(),
		"SCORE: 4\n\n"+final.String()+"\nNo space and no merge left: game over.\n"))
}

func TestRunClearScreen(t *testing.T) {
	var cleared, plain strings.Builder

	opts := defaultOptions()
	opts.Clear = true
	require.NoError(t, Run(&scriptedGame{}, strings.NewReader("x\nq\n"), &cleared, opts))
	require.NoError(t, Run(&scriptedGame{}, strings.NewReader("x\nq\n"), &plain, defaultOptions()))

	assert.Equal(t, 2, strings.Count(cleared.String(), clearSequence))
	assert.NotContains(t, plain.String(), "\x1b[")
}

func TestRunWithRealGame(t *testing.T) {
	game := t2048.New(nil)
	game.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 1})
	var out strings.Builder

	input := strings.Repeat("g\nh\nd\nb\n", 10) + "q\n"
	require.NoError(t, Run(game, strings.NewReader(input), &out, defaultOptions()))

	if game.Over() {
		assert.Contains(t, out.String(), "game over.")
	} else {
		assert.Contains(t, out.String(), "Bye.")
	}
	assert.Contains(t, out.String(), "SCORE: ")
}
