package renderer

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"github.com/mitchelldurbincs/minesweeper/internal/game/core"
)

var (
	HoverColor    = color.RGBA{255, 255, 255, 64} // Semi-transparent white
	LostTintColor = color.RGBA{120, 0, 0, 48}     // Semi-transparent red
	WonTintColor  = color.RGBA{0, 120, 0, 48}     // Semi-transparent green
)

// EnhancedBoardRenderer adds a hover highlight and an end-of-game tint
// on top of the base board
type EnhancedBoardRenderer struct {
	*BoardRenderer

	// Hover state
	hover    core.Coordinate
	hasHover bool

	tint *color.RGBA
}

func NewEnhancedBoardRenderer(tileSize int, f font.Face, palette Palette) *EnhancedBoardRenderer {
	return &EnhancedBoardRenderer{
		BoardRenderer: NewBoardRenderer(tileSize, f, palette),
	}
}

func (ebr *EnhancedBoardRenderer) SetHover(c core.Coordinate, ok bool) {
	ebr.hover = c
	ebr.hasHover = ok
}

// SetOutcome tints the board once the game is won or lost
func (ebr *EnhancedBoardRenderer) SetOutcome(won, lost bool) {
	switch {
	case won:
		ebr.tint = &WonTintColor
	case lost:
		ebr.tint = &LostTintColor
	default:
		ebr.tint = nil
	}
}

func (ebr *EnhancedBoardRenderer) Draw(screen *ebiten.Image, board CellSource) {
	// First draw the base board
	ebr.BoardRenderer.Draw(screen, board)

	// Then draw overlays
	ebr.drawOverlays(screen, board)
}

func (ebr *EnhancedBoardRenderer) drawOverlays(screen *ebiten.Image, board CellSource) {
	if ebr.tint != nil {
		w := float32(board.Width() * ebr.tileSize)
		h := float32(board.Height() * ebr.tileSize)
		vector.DrawFilledRect(screen, float32(ebr.offsetX), float32(ebr.offsetY), w, h, *ebr.tint, false)
		return
	}

	// Only hidden cells react to the cursor
	if ebr.hasHover && ebr.hover.IsValid(board.Width(), board.Height()) {
		cell, err := board.Cell(ebr.hover.ToIndex(board.Height()))
		if err == nil && !cell.Revealed {
			ebr.drawTileOverlay(screen, ebr.hover, HoverColor)
		}
	}
}

func (ebr *EnhancedBoardRenderer) drawTileOverlay(screen *ebiten.Image, c core.Coordinate, clr color.Color) {
	r := c.TileRect(ebr.tileSize, ebr.offsetX, ebr.offsetY)
	vector.DrawFilledRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), clr, false)
}
