package game

import (
	"fmt"

	"github.com/ametelin/gemfall/internal/core"
	"github.com/ametelin/gemfall/internal/match3"
)

const (
	cellWidth = 2 // board cell footprint in screen characters
	hudHeight = 3
)

// Gem glyphs by power-up kind.
const (
	gemChar  = '●'
	bombChar = '◆'
	lineChar = '✚'
)

// gemColors maps engine colors to screen colors.
var gemColors = map[match3.Color]core.Color{
	match3.ColorRed:    core.ColorBrightRed,
	match3.ColorGreen:  core.ColorBrightGreen,
	match3.ColorBlue:   core.ColorBrightBlue,
	match3.ColorYellow: core.ColorBrightYellow,
	match3.ColorPurple: core.ColorBrightMagenta,
}

// Render draws the current game state to the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.initErr != nil {
		dst.DrawTextCentered(g.cfg.ScreenH/2, "Config error: "+g.initErr.Error())
		return
	}
	if g.tooSmall {
		dst.DrawTextCentered(g.cfg.ScreenH/2, "Window too small")
		dst.DrawTextCentered(g.cfg.ScreenH/2+1, "Please resize terminal")
		return
	}

	board, flashing := g.displayBoard()

	boardW := board.Cols*cellWidth + 2
	boardH := board.Rows + 2
	boardX := (g.cfg.ScreenW - boardW) / 2
	boardY := hudHeight

	g.renderHUD(dst, boardX, boardW)
	dst.DrawBox(core.NewRect(boardX, boardY, boardW, boardH))
	g.renderCells(dst, board, flashing, boardX+1, boardY+1)
	g.renderOverlays(dst, boardY, boardH)
}

// renderHUD draws title, score and move counter above the board.
func (g *Game) renderHUD(dst *core.Screen, boardX, boardW int) {
	title := g.Title()
	dst.DrawText(boardX+(boardW-len(title))/2, 0, title)

	dst.DrawText(boardX, 1, fmt.Sprintf("Score: %d", g.score))

	var right string
	if g.mode == ModeMoves {
		right = fmt.Sprintf("Moves: %d", core.Max(g.movesLeft, 0))
	} else {
		right = fmt.Sprintf("Played: %d", g.movesMade)
	}
	dst.DrawText(boardX+boardW-len(right), 1, right)

	if chain := g.chainIndex(); chain > 1 {
		dst.DrawTextColored(boardX, 2, fmt.Sprintf("Chain x%d!", chain), core.ColorBrightYellow)
	}
}

// renderCells draws the gems, cursor and selection markers.
func (g *Game) renderCells(dst *core.Screen, board *match3.Board, flashing []match3.Coord, x0, y0 int) {
	flash := make(map[match3.Coord]bool, len(flashing))
	for _, c := range flashing {
		flash[c] = true
	}

	for r := 0; r < board.Rows; r++ {
		for c := 0; c < board.Cols; c++ {
			at := match3.RC(r, c)
			cell := board.At(at)
			x := x0 + c*cellWidth
			y := y0 + r

			switch {
			case flash[at]:
				dst.SetColored(x, y, '✸', core.ColorBrightWhite)
			case !cell.Filled:
				dst.Set(x, y, '·')
			default:
				glyph := gemChar
				switch cell.Power {
				case match3.PowerBomb:
					glyph = bombChar
				case match3.PowerLine:
					glyph = lineChar
				}
				dst.SetColored(x, y, glyph, gemColors[cell.Color])
			}

			// Cursor and selection markers live in the spacer column.
			idle := len(g.pending) == 0
			if idle && at == g.cursor {
				dst.SetColored(x-1, y, '[', core.ColorWhite)
				dst.SetColored(x+1, y, ']', core.ColorWhite)
			} else if idle && g.selected != nil && at == *g.selected {
				dst.SetColored(x-1, y, '(', core.ColorBrightCyan)
				dst.SetColored(x+1, y, ')', core.ColorBrightCyan)
			}
		}
	}
}

// renderOverlays draws transient banners and the game-over screen.
func (g *Game) renderOverlays(dst *core.Screen, boardY, boardH int) {
	msgY := boardY + boardH + 1

	if g.shuffleNotice > 0 {
		dst.DrawTextCentered(msgY, "No moves left - board reshuffled")
	}

	if g.paused {
		dst.DrawTextCentered(msgY, "PAUSED - press P to resume")
	}

	if g.gameOver {
		dst.DrawTextCentered(msgY, fmt.Sprintf("GAME OVER - final score %d", g.score))
		dst.DrawTextCentered(msgY+1, "R to restart, Q to quit")
	}
}
