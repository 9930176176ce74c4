// Package t2048 implements the rules of the 2048 sliding-tile puzzle and a
// playable session built on top of them.
//
// The engine functions are pure: every move returns a fresh Board and never
// touches its input. Board is an array type, so copies happen on assignment.
package t2048

import (
	"strconv"
	"strings"
)

// Size is the fixed board dimension.
const Size = 4

// SpawnValue is the value of every newly inserted tile.
const SpawnValue = 2

// Board is a Size x Size grid of tile values. Zero means empty.
type Board [Size][Size]int

// Row is a single board row.
type Row [Size]int

// Cell identifies a board position.
type Cell struct {
	Row, Col int
}

// Source is the randomness used for spawning tiles.
// *math/rand.Rand satisfies it.
type Source interface {
	// Intn returns a value in [0, n).
	Intn(n int) int
}

// EmptyBoard returns a board with every cell empty.
func EmptyBoard() Board {
	return Board{}
}

// EmptyCells returns the coordinates of all empty cells in row-major order.
func EmptyCells(b Board) []Cell {
	var cells []Cell
	for r := range Size {
		for c := range Size {
			if b[r][c] == 0 {
				cells = append(cells, Cell{Row: r, Col: c})
			}
		}
	}
	return cells
}

// Spawn places a SpawnValue tile on a uniformly chosen empty cell.
// A full board is returned unchanged and src is not consulted.
func Spawn(b Board, src Source) Board {
	empty := EmptyCells(b)
	if len(empty) == 0 {
		return b
	}

	cell := empty[src.Intn(len(empty))]
	b[cell.Row][cell.Col] = SpawnValue
	return b
}

// MaxTile returns the highest tile value on the board.
func MaxTile(b Board) int {
	maxVal := 0
	for r := range Size {
		for c := range Size {
			maxVal = max(maxVal, b[r][c])
		}
	}
	return maxVal
}

// String renders the board as tab-separated rows, with '.' for empty cells.
func (b Board) String() string {
	var sb strings.Builder
	for _, row := range b {
		for _, v := range row {
			if v == 0 {
				sb.WriteString(".")
			} else {
				sb.WriteString(strconv.Itoa(v))
			}
			sb.WriteByte('\t')
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
