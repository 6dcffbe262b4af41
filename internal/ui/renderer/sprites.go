package renderer

import (
	"fmt"
	"image"
	_ "image/png"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/mitchelldurbincs/minesweeper/internal/game/core"
)

// SpriteSize is the edge length of one sprite in the sheet
const SpriteSize = 16

// sheetOrder lists the sprites left to right as they appear in the sheet
var sheetOrder = []core.Sprite{
	core.SpriteHidden,
	core.SpriteFlag,
	core.SpriteCount0,
	core.SpriteMine,
	core.SpriteCount1,
	core.SpriteCount2,
	core.SpriteCount3,
	core.SpriteCount4,
	core.SpriteCount5,
	core.SpriteCount6,
	core.SpriteCount7,
	core.SpriteCount8,
}

// SpriteSheet holds one image per cell sprite
type SpriteSheet struct {
	images map[core.Sprite]*ebiten.Image
}

// LoadSpriteSheet reads a PNG strip of SpriteSize squares
func LoadSpriteSheet(path string) (*SpriteSheet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open sprite sheet: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode sprite sheet %s: %w", path, err)
	}

	rects, err := SpriteRects(img.Bounds())
	if err != nil {
		return nil, fmt.Errorf("sprite sheet %s: %w", path, err)
	}

	sheet := ebiten.NewImageFromImage(img)
	s := &SpriteSheet{images: make(map[core.Sprite]*ebiten.Image, len(rects))}
	for i, r := range rects {
		s.images[sheetOrder[i]] = sheet.SubImage(r).(*ebiten.Image)
	}
	return s, nil
}

// SpriteRects returns the source rectangle of every sprite in sheet order
func SpriteRects(bounds image.Rectangle) ([]image.Rectangle, error) {
	need := len(sheetOrder) * SpriteSize
	if bounds.Dx() < need || bounds.Dy() < SpriteSize {
		return nil, fmt.Errorf("need at least %dx%d pixels, got %dx%d",
			need, SpriteSize, bounds.Dx(), bounds.Dy())
	}

	rects := make([]image.Rectangle, len(sheetOrder))
	for i := range sheetOrder {
		x := bounds.Min.X + i*SpriteSize
		rects[i] = image.Rect(x, bounds.Min.Y, x+SpriteSize, bounds.Min.Y+SpriteSize)
	}
	return rects, nil
}

// Draw scales the sprite to a tileSize square at (x,y)
func (s *SpriteSheet) Draw(dst *ebiten.Image, sprite core.Sprite, x, y float64, tileSize int) {
	img, ok := s.images[sprite]
	if !ok {
		return
	}
	scale := float64(tileSize) / SpriteSize
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.Filter = ebiten.FilterNearest
	dst.DrawImage(img, op)
}
