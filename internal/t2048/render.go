package t2048

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/term2048/internal/core"
)

const (
	cellWidth  = 7 // Cell width including the left border
	cellHeight = 2 // Cell height including the top border
	hudHeight  = 3

	boardW = Size*cellWidth + 1
	boardH = Size*cellHeight + 1
)

// tileColors maps tile values to display colors. Larger tiles use ColorBrightRed.
var tileColors = map[int]core.Color{
	2:    core.ColorWhite,
	4:    core.ColorBrightWhite,
	8:    core.ColorYellow,
	16:   core.ColorBrightYellow,
	32:   core.ColorOrange,
	64:   core.ColorRed,
	128:  core.ColorMagenta,
	256:  core.ColorBrightMagenta,
	512:  core.ColorCyan,
	1024: core.ColorBrightCyan,
	2048: core.ColorBrightGreen,
}

// TileColor returns the display color for a tile value.
func TileColor(v int) core.Color {
	if c, ok := tileColors[v]; ok {
		return c
	}
	return core.ColorBrightRed
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	boardX := (dst.Width() - boardW) / 2
	boardY := hudHeight + 1

	g.renderHUD(dst, boardX)
	g.renderBoard(dst, boardX, boardY)
	g.renderOverlays(dst, core.NewRect(boardX, boardY, boardW, boardH))
}

func (g *Game) renderTooSmall(dst *core.Screen) {
	y := dst.Height() / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

// renderHUD draws the title, score and highest tile.
func (g *Game) renderHUD(dst *core.Screen, boardX int) {
	title := "2048"
	dst.DrawTextColor(boardX+(boardW-len(title))/2, 0, title, core.ColorBrightYellow)

	dst.DrawText(boardX, 1, fmt.Sprintf("Score: %d", g.score))

	maxStr := fmt.Sprintf("Max: %d", MaxTile(g.board))
	dst.DrawText(max(boardX, boardX+boardW-len(maxStr)), 1, maxStr)

	if g.lastPoints > 0 {
		gained := fmt.Sprintf("+%d", g.lastPoints)
		dst.DrawTextColor(boardX+(boardW-len(gained))/2, 2, gained, core.ColorGreen)
	}
}

// renderBoard draws the grid lines and the tiles.
func (g *Game) renderBoard(dst *core.Screen, boardX, boardY int) {
	for y := range Size + 1 {
		for x := range Size + 1 {
			px := boardX + x*cellWidth
			py := boardY + y*cellHeight

			dst.SetColor(px, py, gridCorner(x, y), core.ColorGray)

			if x < Size {
				for i := 1; i < cellWidth; i++ {
					dst.SetColor(px+i, py, '─', core.ColorGray)
				}
			}
			if y < Size {
				for i := 1; i < cellHeight; i++ {
					dst.SetColor(px, py+i, '│', core.ColorGray)
				}
			}
		}
	}

	for r := range Size {
		for c := range Size {
			val := g.board[r][c]
			if val == 0 {
				continue
			}

			valStr := strconv.Itoa(val)
			padLeft := max((cellWidth-1-len(valStr))/2, 0)
			cellX := boardX + c*cellWidth + 1
			cellY := boardY + r*cellHeight + 1
			dst.DrawTextColor(cellX+padLeft, cellY, valStr, TileColor(val))
		}
	}
}

// gridCorner picks the box-drawing rune for grid intersection (x, y).
func gridCorner(x, y int) rune {
	switch {
	case y == 0 && x == 0:
		return '┌'
	case y == 0 && x == Size:
		return '┐'
	case y == Size && x == 0:
		return '└'
	case y == Size && x == Size:
		return '┘'
	case y == 0:
		return '┬'
	case y == Size:
		return '┴'
	case x == 0:
		return '├'
	case x == Size:
		return '┤'
	default:
		return '┼'
	}
}

func (g *Game) renderOverlays(dst *core.Screen, board core.Rect) {
	switch {
	case g.gameOver:
		drawOverlay(dst, board, "GAME OVER", fmt.Sprintf("Max tile: %d", MaxTile(g.board)), "Press R to restart")
	case g.paused:
		drawOverlay(dst, board, "PAUSED", "Press P to resume")
	}
}

// drawOverlay draws a boxed message centered on the board.
func drawOverlay(dst *core.Screen, board core.Rect, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, len(line))
	}

	box := core.CenteredRect(board.W, board.H, maxLen+4, len(lines)+2)
	box.X += board.X
	box.Y += board.Y

	dst.FillRect(box, ' ')
	dst.DrawBox(box)

	centerX, _ := box.Center()
	for i, line := range lines {
		x := core.Clamp(centerX-len(line)/2, box.X+1, box.Right()-1)
		dst.DrawTextColor(x, box.Y+1+i, line, core.ColorBrightWhite)
	}
}

