package game

import (
	"strings"

	"github.com/mitchelldurbincs/minesweeper/internal/game/core"
)

// This file contains the terminal rendering of the board.

// ANSI color codes
const (
	ColorReset  = "\033[0m"
	ColorRed    = "\033[31m"
	ColorGreen  = "\033[32m"
	ColorYellow = "\033[33m"
	ColorBlue   = "\033[34m"
	ColorPurple = "\033[35m"
	ColorCyan   = "\033[36m"
	ColorWhite  = "\033[37m"
	ColorGray   = "\033[90m"
)

// countColors follows the classic palette: 1 blue, 2 green, 3 red and so on
var countColors = []string{
	ColorGray, ColorBlue, ColorGreen, ColorRed, ColorPurple,
	ColorYellow, ColorCyan, ColorWhite, ColorGray,
}

const (
	hiddenSymbol = "■"
	flagSymbol   = "⚑"
	mineSymbol   = "✹"
	emptySymbol  = "·"
)

// Render returns a colored text view of the board, columns left to right and
// rows top to bottom. With showAll every cell is drawn as if revealed.
func (e *Engine) Render(showAll bool) string {
	width := e.board.W
	height := e.board.H

	// ~12 bytes per cell for the symbol and color codes
	var sb strings.Builder
	sb.Grow((width*12+8)*(height+3) + 64)

	sb.WriteString("   ")
	for x := 0; x < width; x++ {
		sb.WriteString(core.IntToStringFixedWidth(x, 2))
	}
	sb.WriteString("\n")

	for y := 0; y < height; y++ {
		sb.WriteString(core.IntToStringFixedWidth(y, 2))
		sb.WriteString(" ")
		for x := 0; x < width; x++ {
			cell := e.board.C[e.board.Idx(x, y)]
			if showAll {
				cell.Revealed = true
			}
			writeCell(&sb, cell)
		}
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(hiddenSymbol + "=hidden " + flagSymbol + "=flag " + mineSymbol + "=mine " + emptySymbol + "=empty\n")
	sb.WriteString("mines left: ")
	sb.WriteString(core.IntToStringFixedWidth(e.RemainingMines(), 1))
	sb.WriteString("  state: ")
	sb.WriteString(e.Phase().String())
	sb.WriteString("\n")

	return sb.String()
}

// writeCell writes the cell directly to the strings.Builder to avoid allocations
func writeCell(sb *strings.Builder, cell core.Cell) {
	sb.WriteString(" ")
	switch sprite := cell.Sprite(); sprite {
	case core.SpriteHidden:
		sb.WriteString(ColorGray)
		sb.WriteString(hiddenSymbol)
	case core.SpriteFlag:
		sb.WriteString(ColorYellow)
		sb.WriteString(flagSymbol)
	case core.SpriteMine:
		sb.WriteString(ColorRed)
		sb.WriteString(mineSymbol)
	case core.SpriteCount0:
		sb.WriteString(ColorGray)
		sb.WriteString(emptySymbol)
	default:
		count := int(sprite - core.SpriteCount0)
		sb.WriteString(countColors[count])
		sb.WriteString(core.IntToStringFixedWidth(count, 1))
	}
	sb.WriteString(ColorReset)
}
