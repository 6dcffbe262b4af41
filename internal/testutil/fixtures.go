package testutil

import (
	"fmt"

	"github.com/mitchelldurbincs/minesweeper/internal/game/core"
)

// BoardFromRows builds a board from a picture of its rows, '*' for a mine
// and '.' for a safe cell. Neighbor counts are filled in. Every row must
// have the same length.
//
//	BoardFromRows(
//		"*..",
//		"...",
//	) // 3 wide, 2 tall, mine at (0,0)
func BoardFromRows(rows ...string) *core.Board {
	if len(rows) == 0 {
		panic("testutil: BoardFromRows needs at least one row")
	}
	width := len(rows[0])
	board := core.NewBoard(width, len(rows))

	for y, row := range rows {
		if len(row) != width {
			panic(fmt.Sprintf("testutil: row %d has length %d, want %d", y, len(row), width))
		}
		for x, ch := range row {
			switch ch {
			case '*':
				board.C[board.Idx(x, y)].Mine = true
			case '.':
			default:
				panic(fmt.Sprintf("testutil: unexpected %q at (%d,%d)", ch, x, y))
			}
		}
	}

	for i := range board.C {
		if board.C[i].Mine {
			continue
		}
		for _, n := range board.NeighborIndices(i) {
			if board.C[n].Mine {
				board.C[i].Count++
			}
		}
	}
	return board
}

// MineIndices returns the sorted indices of the mines on b
func MineIndices(b *core.Board) []int {
	var mines []int
	for i := range b.C {
		if b.C[i].Mine {
			mines = append(mines, i)
		}
	}
	return mines
}
