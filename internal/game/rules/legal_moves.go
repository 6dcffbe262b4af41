package rules

import "github.com/mitchelldurbincs/minesweeper/internal/game/core"

// LegalMoveCalculator computes which cells accept input
type LegalMoveCalculator struct{}

// NewLegalMoveCalculator creates a new legal move calculator
func NewLegalMoveCalculator() *LegalMoveCalculator {
	return &LegalMoveCalculator{}
}

// GetLegalRevealMask returns a mask indexed like the board where true marks
// a cell a reveal would change: hidden and not flagged.
// All false once the game is over.
func (lmc *LegalMoveCalculator) GetLegalRevealMask(board *core.Board, gameOver bool) []bool {
	mask := make([]bool, board.Len())
	if gameOver {
		return mask
	}
	for i := range board.C {
		mask[i] = !board.C[i].Revealed && !board.C[i].Flagged
	}
	return mask
}

// GetLegalFlagMask returns a mask where true marks a cell whose flag can be toggled
func (lmc *LegalMoveCalculator) GetLegalFlagMask(board *core.Board, gameOver bool) []bool {
	mask := make([]bool, board.Len())
	if gameOver {
		return mask
	}
	for i := range board.C {
		mask[i] = !board.C[i].Revealed
	}
	return mask
}

// LegalReveals lists the indices set in the reveal mask
func (lmc *LegalMoveCalculator) LegalReveals(board *core.Board, gameOver bool) []int {
	var out []int
	for i, ok := range lmc.GetLegalRevealMask(board, gameOver) {
		if ok {
			out = append(out, i)
		}
	}
	return out
}
