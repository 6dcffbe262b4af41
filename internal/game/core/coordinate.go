package core

import (
	"fmt"
	"image"
)

// Coordinate represents a cell position on the board.
// X is the column and Y is the row.
type Coordinate struct {
	X, Y int
}

// NewCoordinate creates a new coordinate with the given column and row
func NewCoordinate(x, y int) Coordinate {
	return Coordinate{X: x, Y: y}
}

// FromIndex creates a coordinate from a board index using column-major ordering
func FromIndex(idx, height int) Coordinate {
	return Coordinate{
		X: idx / height,
		Y: idx % height,
	}
}

// FromPixel maps a pixel position to the cell that contains it.
// The result is not bounds checked; use IsValid before converting it to an index.
func FromPixel(px, py, tileSize, offsetX, offsetY int) Coordinate {
	return Coordinate{
		X: floorDiv(px-offsetX, tileSize),
		Y: floorDiv(py-offsetY, tileSize),
	}
}

// IsValid checks if the coordinate is within the given bounds
func (c Coordinate) IsValid(width, height int) bool {
	return c.X >= 0 && c.X < width && c.Y >= 0 && c.Y < height
}

// ToIndex converts the coordinate to a board index using column-major ordering
func (c Coordinate) ToIndex(height int) int {
	return c.X*height + c.Y
}

// TileRect returns the pixel rectangle covered by the cell
func (c Coordinate) TileRect(tileSize, offsetX, offsetY int) image.Rectangle {
	minX := offsetX + c.X*tileSize
	minY := offsetY + c.Y*tileSize
	return image.Rect(minX, minY, minX+tileSize, minY+tileSize)
}

// neighborOffsets lists the eight surrounding positions
var neighborOffsets = [8]Coordinate{
	{X: -1, Y: -1}, {X: 0, Y: -1}, {X: 1, Y: -1},
	{X: -1, Y: 0}, {X: 1, Y: 0},
	{X: -1, Y: 1}, {X: 0, Y: 1}, {X: 1, Y: 1},
}

// ValidNeighbors returns only the neighbors that are within the given bounds
func (c Coordinate) ValidNeighbors(width, height int) []Coordinate {
	valid := make([]Coordinate, 0, len(neighborOffsets))
	for _, off := range neighborOffsets {
		n := c.Add(off)
		if n.IsValid(width, height) {
			valid = append(valid, n)
		}
	}
	return valid
}

// Add returns a new coordinate that is the sum of this coordinate and another
func (c Coordinate) Add(other Coordinate) Coordinate {
	return Coordinate{
		X: c.X + other.X,
		Y: c.Y + other.Y,
	}
}

// String returns a string representation of the coordinate
func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// floorDiv rounds toward negative infinity so pixels left of or above the
// board never land in column or row zero.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
