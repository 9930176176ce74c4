package t2048

import "strings"

// Direction represents a move direction.
// DirNone stands for any unrecognized input and applies no move.
type Direction int

const (
	DirNone Direction = iota
	DirLeft
	DirRight
	DirUp
	DirDown
)

// String returns the lower-case direction name.
func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	default:
		return "none"
	}
}

// ParseDirection maps a direction name to a Direction.
// Unknown tokens yield DirNone.
func ParseDirection(token string) Direction {
	switch strings.ToLower(strings.TrimSpace(token)) {
	case "left":
		return DirLeft
	case "right":
		return DirRight
	case "up":
		return DirUp
	case "down":
		return DirDown
	default:
		return DirNone
	}
}

// Outcome is the result of a single move.
type Outcome struct {
	Board    Board
	Points   int  // Points scored by merges during this move
	Terminal bool // No further move can change Board
}

// NewGame returns a board holding two spawned tiles and a zero score.
func NewGame(src Source) (Board, int) {
	b := EmptyBoard()
	b = Spawn(b, src)
	b = Spawn(b, src)
	return b, 0
}

// ApplyMove moves the board in the given direction.
// A tile is spawned only when the move changed the board.
func ApplyMove(b Board, dir Direction, src Source) Outcome {
	var (
		moved  Board
		points int
	)

	switch dir {
	case DirLeft:
		moved, points = MoveLeft(b)
	case DirRight:
		moved, points = MoveRight(b)
	case DirUp:
		moved, points = MoveUp(b)
	case DirDown:
		moved, points = MoveDown(b)
	default:
		return Outcome{Board: b}
	}

	if moved != b {
		moved = Spawn(moved, src)
	}

	return Outcome{
		Board:    moved,
		Points:   points,
		Terminal: IsTerminal(moved),
	}
}
