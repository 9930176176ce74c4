package t2048

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StatePaused      GameStateType = "paused"
	StateGameOver    GameStateType = "game_over"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the complete session state for determinism tests and replay.
type Snapshot struct {
	Moves      int
	Score      int
	LastPoints int
	LastDir    Direction
	Board      Board
	MaxTile    int
	State      GameStateType
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.gameOver:
		state = StateGameOver
	case g.paused:
		state = StatePaused
	}

	return Snapshot{
		Moves:      g.moves,
		Score:      g.score,
		LastPoints: g.lastPoints,
		LastDir:    g.lastDir,
		Board:      g.board,
		MaxTile:    MaxTile(g.board),
		State:      state,
	}
}
