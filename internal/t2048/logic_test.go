package t2048

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// queueSource returns queued values from Intn and records every bound it was asked for.
type queueSource struct {
	values []int
	bounds []int
}

func (q *queueSource) Intn(n int) int {
	q.bounds = append(q.bounds, n)
	if len(q.values) == 0 {
		return 0
	}
	v := q.values[0]
	q.values = q.values[1:]
	return v
}

func TestSlideRowLeft(t *testing.T) {
	tests := []struct {
		name     string
		input    Row
		expected Row
		score    int
	}{
		{"simple merge", Row{2, 2, 0, 0}, Row{4, 0, 0, 0}, 4},
		{"merge with trailing tile", Row{2, 2, 2, 0}, Row{4, 2, 0, 0}, 4},
		{"double merge", Row{2, 2, 2, 2}, Row{4, 4, 0, 0}, 8},
		{"one merge per tile", Row{4, 4, 4, 4}, Row{8, 8, 0, 0}, 16},
		{"no merge possible", Row{2, 4, 8, 16}, Row{2, 4, 8, 16}, 0},
		{"slide with gap", Row{0, 0, 2, 2}, Row{4, 0, 0, 0}, 4},
		{"slide with multiple gaps", Row{2, 0, 0, 2}, Row{4, 0, 0, 0}, 4},
		{"merged tile does not remerge", Row{4, 2, 2, 0}, Row{4, 4, 0, 0}, 4},
		{"no change needed", Row{4, 2, 0, 0}, Row{4, 2, 0, 0}, 0},
		{"empty row", Row{0, 0, 0, 0}, Row{0, 0, 0, 0}, 0},
		{"single tile", Row{0, 4, 0, 0}, Row{4, 0, 0, 0}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, score := slideRowLeft(tt.input)
			assert.Equal(t, tt.expected, result, "slideRowLeft(%v)", tt.input)
			assert.Equal(t, tt.score, score, "slideRowLeft(%v) score", tt.input)
		})
	}
}

func TestRowPrimitives(t *testing.T) {
	assert.Equal(t, []int{2, 4, 2}, compactRow(Row{2, 0, 4, 2}))
	assert.Empty(t, compactRow(Row{}))

	merged, points := mergeTiles([]int{2, 2, 2})
	assert.Equal(t, []int{4, 2}, merged)
	assert.Equal(t, 4, points)

	merged, points = mergeTiles(nil)
	assert.Empty(t, merged)
	assert.Zero(t, points)

	assert.Equal(t, Row{8, 2, 0, 0}, padRow([]int{8, 2}))
	assert.Equal(t, Row{1, 2, 3, 4}, reverseRow(Row{4, 3, 2, 1}))
}

func TestMoveLeft(t *testing.T) {
	board := Board{
		{2, 2, 0, 0},
		{4, 0, 4, 0},
		{2, 2, 2, 2},
		{0, 0, 0, 2},
	}
	before := board

	expected := Board{
		{4, 0, 0, 0},
		{8, 0, 0, 0},
		{4, 4, 0, 0},
		{2, 0, 0, 0},
	}

	result, score := MoveLeft(board)

	assert.Equal(t, expected, result)
	assert.Equal(t, 4+8+4+4, score)
	assert.Equal(t, before, board, "input board must not change")
}

func TestMoveRight(t *testing.T) {
	board := Board{
		{2, 2, 0, 0},
		{4, 0, 4, 0},
		{2, 2, 2, 0},
		{0, 0, 0, 2},
	}

	expected := Board{
		{0, 0, 0, 4},
		{0, 0, 0, 8},
		{0, 0, 2, 4},
		{0, 0, 0, 2},
	}

	result, score := MoveRight(board)

	assert.Equal(t, expected, result)
	assert.Equal(t, 4+8+4, score)
}

func TestMoveUp(t *testing.T) {
	board := Board{
		{2, 4, 2, 0},
		{2, 0, 2, 0},
		{0, 4, 2, 0},
		{0, 0, 2, 2},
	}

	expected := Board{
		{4, 8, 4, 2},
		{0, 0, 4, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}

	result, score := MoveUp(board)

	assert.Equal(t, expected, result)
	assert.Equal(t, 4+8+4+4, score)
}

func TestMoveDown(t *testing.T) {
	board := Board{
		{2, 4, 2, 2},
		{2, 0, 2, 0},
		{0, 4, 2, 0},
		{0, 0, 2, 0},
	}

	expected := Board{
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 4, 0},
		{4, 8, 4, 2},
	}

	result, _ := MoveDown(board)

	assert.Equal(t, expected, result)
}

// randomBoard fills roughly half the cells with small powers of two.
func randomBoard(rng *rand.Rand) Board {
	var b Board
	for r := range Size {
		for c := range Size {
			if rng.Intn(2) == 0 {
				b[r][c] = 1 << (rng.Intn(4) + 1)
			}
		}
	}
	return b
}

func TestDirectionalMovesCompose(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for range 200 {
		b := randomBoard(rng)

		left, leftPts := MoveLeft(reverseRows(b))
		right, rightPts := MoveRight(b)
		require.Equal(t, reverseRows(left), right, "right on\n%v", b)
		require.Equal(t, leftPts, rightPts)

		down, downPts := MoveDown(b)
		viaRight, viaRightPts := MoveRight(transpose(b))
		require.Equal(t, transpose(viaRight), down, "down on\n%v", b)
		require.Equal(t, viaRightPts, downPts)

		up, upPts := MoveUp(b)
		viaLeft, viaLeftPts := MoveLeft(transpose(b))
		require.Equal(t, transpose(viaLeft), up, "up on\n%v", b)
		require.Equal(t, viaLeftPts, upPts)
	}
}

func TestTransposeAndReverse(t *testing.T) {
	board := Board{
		{1, 2, 3, 4},
		{5, 6, 7, 8},
		{9, 10, 11, 12},
		{13, 14, 15, 16},
	}

	assert.Equal(t, Board{
		{1, 5, 9, 13},
		{2, 6, 10, 14},
		{3, 7, 11, 15},
		{4, 8, 12, 16},
	}, transpose(board))
	assert.Equal(t, board, transpose(transpose(board)))

	assert.Equal(t, Board{
		{4, 3, 2, 1},
		{8, 7, 6, 5},
		{12, 11, 10, 9},
		{16, 15, 14, 13},
	}, reverseRows(board))
}

func TestIsTerminal(t *testing.T) {
	tests := []struct {
		name     string
		board    Board
		terminal bool
	}{
		{
			name: "full board without merges",
			board: Board{
				{2, 4, 8, 16},
				{32, 64, 128, 256},
				{512, 1024, 2048, 4096},
				{8192, 16384, 32768, 65536},
			},
			terminal: true,
		},
		{
			name: "horizontal merge available",
			board: Board{
				{2, 2, 8, 16},
				{32, 64, 128, 256},
				{512, 1024, 2048, 4096},
				{8192, 16384, 32768, 65536},
			},
		},
		{
			name: "vertical merge available",
			board: Board{
				{2, 4, 8, 16},
				{32, 64, 128, 16},
				{512, 1024, 2048, 4096},
				{8192, 16384, 32768, 65536},
			},
		},
		{
			name: "single empty cell",
			board: Board{
				{2, 4, 8, 16},
				{32, 64, 128, 256},
				{512, 1024, 0, 4096},
				{8192, 16384, 32768, 65536},
			},
		},
		{
			name:  "empty board",
			board: Board{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.terminal, IsTerminal(tt.board))
		})
	}
}

func TestEmptyCells(t *testing.T) {
	board := Board{
		{2, 0, 8, 0},
		{0, 64, 0, 256},
		{512, 0, 2048, 0},
		{0, 16, 0, 64},
	}

	cells := EmptyCells(board)

	require.Len(t, cells, 8)
	assert.Equal(t, Cell{Row: 0, Col: 1}, cells[0])
	assert.Equal(t, Cell{Row: 0, Col: 3}, cells[1])
	assert.Equal(t, Cell{Row: 3, Col: 2}, cells[7])
	assert.Len(t, EmptyCells(EmptyBoard()), Size*Size)
}

func TestSpawn(t *testing.T) {
	board := Board{
		{2, 0, 8, 0},
		{0, 64, 0, 256},
		{512, 0, 2048, 0},
		{0, 16, 0, 64},
	}
	src := &queueSource{values: []int{2}}

	result := Spawn(board, src)

	assert.Equal(t, []int{8}, src.bounds, "draw over all empty cells")
	assert.Equal(t, SpawnValue, result[1][0], "third empty cell gets the tile")
	assert.Equal(t, 0, board[1][0], "input board must not change")
	assert.Len(t, EmptyCells(result), 7)
}

func TestSpawnFullBoard(t *testing.T) {
	board := Board{
		{2, 4, 8, 16},
		{32, 64, 128, 256},
		{512, 1024, 2048, 4096},
		{8192, 16384, 32768, 65536},
	}
	src := &queueSource{}

	assert.Equal(t, board, Spawn(board, src))
	assert.Empty(t, src.bounds, "full board must not consume randomness")
}

func TestMaxTile(t *testing.T) {
	board := Board{
		{2, 4, 8, 16},
		{32, 64, 128, 256},
		{512, 1024, 2048, 4},
		{8, 16, 32, 64},
	}

	assert.Equal(t, 2048, MaxTile(board))
	assert.Zero(t, MaxTile(EmptyBoard()))
}

func TestBoardString(t *testing.T) {
	board := Board{
		{2, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 16, 0},
		{0, 0, 0, 2048},
	}

	expected := "2\t.\t.\t.\t\n" +
		".\t.\t.\t.\t\n" +
		".\t.\t16\t.\t\n" +
		".\t.\t.\t2048\t\n"

	assert.Equal(t, expected, board.String())
}
