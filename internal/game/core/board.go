package core

// Cell represents a single position on the board.
// Count is the number of mines among the surrounding cells. It is only
// meaningful once the layout has been generated and is always 0 for mines.
type Cell struct {
	Mine     bool
	Revealed bool
	Flagged  bool
	Count    int
}

// Sprite identifies how a cell is drawn
type Sprite int

const (
	SpriteHidden Sprite = iota
	SpriteFlag
	SpriteMine
	SpriteCount0
	SpriteCount1
	SpriteCount2
	SpriteCount3
	SpriteCount4
	SpriteCount5
	SpriteCount6
	SpriteCount7
	SpriteCount8
)

// Sprite returns the visual representation of the cell
func (c *Cell) Sprite() Sprite {
	switch {
	case c.Revealed && c.Mine:
		return SpriteMine
	case c.Revealed:
		return SpriteCount0 + Sprite(c.Count)
	case c.Flagged:
		return SpriteFlag
	default:
		return SpriteHidden
	}
}

// Board is the cell grid. Cells are stored column-major:
// index = column*H + row.
type Board struct {
	W, H int
	C    []Cell // length = W*H
}

func NewBoard(w, h int) *Board {
	return &Board{W: w, H: h, C: make([]Cell, w*h)}
}

func (b *Board) Idx(x, y int) int      { return x*b.H + y }
func (b *Board) XY(idx int) (int, int) { return idx / b.H, idx % b.H }
func (b *Board) Len() int              { return len(b.C) }

// InBounds checks if coordinates are within board boundaries
func (b *Board) InBounds(x, y int) bool {
	return x >= 0 && x < b.W && y >= 0 && y < b.H
}

// ValidIndex checks if idx addresses a cell on the board
func (b *Board) ValidIndex(idx int) bool {
	return idx >= 0 && idx < len(b.C)
}

// GetCell safely returns a cell pointer if coordinates are valid, nil otherwise
func (b *Board) GetCell(x, y int) *Cell {
	if !b.InBounds(x, y) {
		return nil
	}
	return &b.C[b.Idx(x, y)]
}

// NeighborIndices returns the indices of the up to eight cells around idx
func (b *Board) NeighborIndices(idx int) []int {
	c := FromIndex(idx, b.H)
	neighbors := c.ValidNeighbors(b.W, b.H)
	out := make([]int, len(neighbors))
	for i, n := range neighbors {
		out[i] = n.ToIndex(b.H)
	}
	return out
}

// Clear resets every cell to its initial hidden state
func (b *Board) Clear() {
	for i := range b.C {
		b.C[i] = Cell{}
	}
}
