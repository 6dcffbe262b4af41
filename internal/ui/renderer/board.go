package renderer

import (
	"image/color"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"github.com/mitchelldurbincs/minesweeper/internal/common"
	"github.com/mitchelldurbincs/minesweeper/internal/config"
	"github.com/mitchelldurbincs/minesweeper/internal/game/core"
)

// -----------------------------------------------------------------------------
// Colour definitions
// -----------------------------------------------------------------------------

// Palette holds the flat tile colours used when no sprite sheet is loaded
type Palette struct {
	Hidden    color.RGBA
	Revealed  color.RGBA
	GridLines color.RGBA
	Mine      color.RGBA
	Flag      color.RGBA
}

// PaletteFromConfig builds a palette from the colors.ui section
func PaletteFromConfig(c config.UIColorsConfig) Palette {
	return Palette{
		Hidden:    common.RGB(c.Hidden),
		Revealed:  common.RGB(c.Revealed),
		GridLines: common.RGB(c.GridLines),
		Mine:      common.RGB(c.Mine),
		Flag:      common.RGB(c.Flag),
	}
}

const bevelShift = 45

// -----------------------------------------------------------------------------
// Renderer
// -----------------------------------------------------------------------------

// CellSource is the read-only board view the renderer draws from
type CellSource interface {
	Width() int
	Height() int
	Cell(idx int) (core.Cell, error)
}

type BoardRenderer struct {
	tileSize    int
	offsetX     int
	offsetY     int
	defaultFont font.Face
	palette     Palette
	sprites     *SpriteSheet
	showAll     bool
}

// NewBoardRenderer returns a renderer ready to use.
func NewBoardRenderer(tileSize int, f font.Face, palette Palette) *BoardRenderer {
	return &BoardRenderer{tileSize: tileSize, defaultFont: f, palette: palette}
}

// SetSprites switches from flat tiles to the given sprite sheet; nil switches back
func (br *BoardRenderer) SetSprites(s *SpriteSheet) {
	br.sprites = s
}

// SetOffset moves the board origin, e.g. below a header bar
func (br *BoardRenderer) SetOffset(x, y int) {
	br.offsetX = x
	br.offsetY = y
}

// SetPalette replaces the flat tile colours, e.g. after a config reload
func (br *BoardRenderer) SetPalette(p Palette) {
	br.palette = p
}

// Palette returns the flat tile colours in use
func (br *BoardRenderer) Palette() Palette {
	return br.palette
}

// SetShowAll draws every cell as revealed
func (br *BoardRenderer) SetShowAll(showAll bool) {
	br.showAll = showAll
}

// Draw renders the board on the supplied Ebiten screen.
func (br *BoardRenderer) Draw(screen *ebiten.Image, board CellSource) {
	if board == nil {
		return
	}

	h := board.Height()
	for i := 0; i < board.Width()*h; i++ {
		cell, err := board.Cell(i)
		if err != nil {
			continue
		}
		if br.showAll {
			cell.Revealed = true
		}

		rect := core.FromIndex(i, h).TileRect(br.tileSize, br.offsetX, br.offsetY)
		x, y := float64(rect.Min.X), float64(rect.Min.Y)

		if br.sprites != nil {
			br.sprites.Draw(screen, cell.Sprite(), x, y, br.tileSize)
			continue
		}
		br.drawFlatCell(screen, cell, float32(x), float32(y))
	}
}

func (br *BoardRenderer) drawFlatCell(screen *ebiten.Image, cell core.Cell, x, y float32) {
	size := float32(br.tileSize)

	switch sprite := cell.Sprite(); sprite {
	case core.SpriteHidden:
		br.drawRaised(screen, x, y)

	case core.SpriteFlag:
		br.drawRaised(screen, x, y)
		pole := size / 12
		vector.DrawFilledRect(screen, x+size/2-pole/2, y+size/5, pole, size*3/5, color.Black, false)
		vector.DrawFilledRect(screen, x+size/2-size/4, y+size/5, size/4, size/5, br.palette.Flag, false)
		vector.DrawFilledRect(screen, x+size/3, y+size*4/5-pole, size/3, pole, color.Black, false)

	case core.SpriteMine:
		vector.DrawFilledRect(screen, x, y, size, size, br.palette.Mine, false)
		vector.DrawFilledCircle(screen, x+size/2, y+size/2, size/4, color.Black, true)
		vector.StrokeRect(screen, x, y, size, size, 1, br.palette.GridLines, false)

	default:
		vector.DrawFilledRect(screen, x, y, size, size, br.palette.Revealed, false)
		vector.StrokeRect(screen, x, y, size, size, 1, br.palette.GridLines, false)

		count := int(sprite - core.SpriteCount0)
		if count > 0 && br.defaultFont != nil {
			br.drawCentered(screen, strconv.Itoa(count), x, y, common.NumberColor(count))
		}
	}
}

// drawRaised draws a hidden tile with a light top-left and dark bottom-right edge
func (br *BoardRenderer) drawRaised(screen *ebiten.Image, x, y float32) {
	size := float32(br.tileSize)
	edge := size / 10
	if edge < 1 {
		edge = 1
	}

	vector.DrawFilledRect(screen, x, y, size, size, common.ShiftColor(br.palette.Hidden, -bevelShift), false)
	vector.DrawFilledRect(screen, x, y, size-edge, size-edge, common.ShiftColor(br.palette.Hidden, bevelShift), false)
	vector.DrawFilledRect(screen, x+edge, y+edge, size-2*edge, size-2*edge, br.palette.Hidden, false)
}

func (br *BoardRenderer) drawCentered(screen *ebiten.Image, s string, x, y float32, clr color.Color) {
	// text bounds in pixels
	b := text.BoundString(br.defaultFont, s)
	textW := b.Max.X - b.Min.X
	textH := b.Max.Y - b.Min.Y

	tx := int(x) + (br.tileSize-textW)/2
	ty := int(y) + (br.tileSize+textH)/2

	text.Draw(screen, s, br.defaultFont, tx, ty, clr)
}
