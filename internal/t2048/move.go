package t2048

// MoveLeft slides and merges every row to the left.
// Returns the new board and the points scored by merges.
func MoveLeft(b Board) (Board, int) {
	var result Board
	total := 0

	for r := range Size {
		row, points := slideRowLeft(Row(b[r]))
		result[r] = row
		total += points
	}

	return result, total
}

// MoveRight mirrors every row, moves left and mirrors back.
func MoveRight(b Board) (Board, int) {
	moved, points := MoveLeft(reverseRows(b))
	return reverseRows(moved), points
}

// MoveUp transposes, moves left and transposes back.
func MoveUp(b Board) (Board, int) {
	moved, points := MoveLeft(transpose(b))
	return transpose(moved), points
}

// MoveDown transposes, moves right and transposes back.
func MoveDown(b Board) (Board, int) {
	moved, points := MoveRight(transpose(b))
	return transpose(moved), points
}

// reverseRows mirrors every row. Row order is unchanged.
func reverseRows(b Board) Board {
	var result Board
	for r := range Size {
		result[r] = reverseRow(Row(b[r]))
	}
	return result
}

// transpose returns the matrix transpose.
func transpose(b Board) Board {
	var result Board
	for r := range Size {
		for c := range Size {
			result[r][c] = b[c][r]
		}
	}
	return result
}

// IsTerminal reports whether no move can change the board.
//
// Equal neighbours are compared literally, zeros included. That case cannot
// trigger because a board with an empty cell is rejected first.
func IsTerminal(b Board) bool {
	if len(EmptyCells(b)) > 0 {
		return false
	}

	for r := range Size {
		for c := range Size {
			if c+1 < Size && b[r][c] == b[r][c+1] {
				return false
			}
			if r+1 < Size && b[r][c] == b[r+1][c] {
				return false
			}
		}
	}

	return true
}
