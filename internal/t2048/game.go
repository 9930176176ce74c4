package t2048

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/term2048/internal/core"
)

// Minimum screen size: board (29x9) plus HUD and help line.
const (
	minScreenW = 31
	minScreenH = 15
)

// Game is a single 2048 session: the board plus the state a front-end needs
// around it (cumulative score, move count, pause and game-over flags).
type Game struct {
	rng    *rand.Rand
	logger *log.Logger

	board      Board
	score      int
	moves      int
	lastPoints int
	lastDir    Direction

	screenW int
	screenH int

	gameOver bool
	paused   bool
	tooSmall bool
}

// New creates a game. Call Reset before playing.
// A nil logger discards all output.
func New(logger *log.Logger) *Game {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Game{logger: logger}
}

// Reset starts a new game seeded from cfg.Seed.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.board, g.score = NewGame(g.rng)
	g.moves = 0
	g.lastPoints = 0
	g.lastDir = DirNone
	g.gameOver = IsTerminal(g.board)
	g.paused = false
	g.SetScreenSize(cfg.ScreenW, cfg.ScreenH)

	g.logger.Debug("new game", "seed", cfg.Seed, "empty", len(EmptyCells(g.board)))
}

// SetScreenSize records the screen dimensions without touching the board.
func (g *Game) SetScreenSize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.tooSmall = w < minScreenW || h < minScreenH
}

// Move applies one move and folds its outcome into the session.
// Moves after game over and unknown directions return the current board
// unchanged and leave the session untouched.
func (g *Game) Move(dir Direction) Outcome {
	if g.gameOver {
		return Outcome{Board: g.board, Terminal: true}
	}
	if dir.String() == "none" {
		return Outcome{Board: g.board}
	}

	out := ApplyMove(g.board, dir, g.rng)
	if out.Board != g.board {
		g.moves++
	}

	g.board = out.Board
	g.score += out.Points
	g.lastPoints = out.Points
	g.lastDir = dir

	if out.Terminal {
		g.gameOver = true
		g.logger.Info("game over", "score", g.score, "moves", g.moves, "max_tile", MaxTile(g.board))
	} else {
		g.logger.Debug("move", "dir", dir, "points", out.Points, "score", g.score)
	}

	return out
}

// Step processes one frame of platform input.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && !g.gameOver {
		g.paused = !g.paused
	}

	if g.paused || g.gameOver {
		return core.StepResult{State: g.State()}
	}

	switch {
	case in.Has(core.ActionUp):
		g.Move(DirUp)
	case in.Has(core.ActionDown):
		g.Move(DirDown)
	case in.Has(core.ActionLeft):
		g.Move(DirLeft)
	case in.Has(core.ActionRight):
		g.Move(DirRight)
	}

	return core.StepResult{State: g.State()}
}

// Board returns the current board.
func (g *Game) Board() Board {
	return g.board
}

// Score returns the cumulative score.
func (g *Game) Score() int {
	return g.score
}

// Over reports whether the game has ended.
func (g *Game) Over() bool {
	return g.gameOver
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
		Paused:   g.paused || g.tooSmall,
	}
}
