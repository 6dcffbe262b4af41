package processor

import (
	"github.com/mitchelldurbincs/minesweeper/internal/game/core"
	"github.com/rs/zerolog"
)

// RevealResult describes the cells opened by one top-level reveal
type RevealResult struct {
	// Opened lists every cell revealed, the clicked cell first
	Opened []int
	// HitMine is set when the clicked cell was a mine
	HitMine bool
}

// SafeOpened returns how many of the opened cells were not mines
func (r RevealResult) SafeOpened() int {
	if r.HitMine {
		return len(r.Opened) - 1
	}
	return len(r.Opened)
}

// RevealProcessor opens cells on a board, cascading through zero regions
type RevealProcessor struct {
	logger zerolog.Logger
	stack  []int
}

// NewRevealProcessor creates a new reveal processor
func NewRevealProcessor(logger zerolog.Logger) *RevealProcessor {
	return &RevealProcessor{
		logger: logger.With().Str("component", "RevealProcessor").Logger(),
	}
}

// ProcessReveal reveals idx. A mine stops there. A zero cell opens its
// hidden, unflagged neighbors with an explicit worklist, so connected zero
// regions of any size are opened without recursion. The caller must check
// the index and skip revealed or flagged cells.
func (rp *RevealProcessor) ProcessReveal(board *core.Board, idx int) RevealResult {
	cell := &board.C[idx]
	cell.Revealed = true
	result := RevealResult{Opened: []int{idx}}

	if cell.Mine {
		result.HitMine = true
		rp.logger.Debug().Int("index", idx).Msg("Revealed a mine")
		return result
	}
	if cell.Count != 0 {
		return result
	}

	rp.stack = append(rp.stack[:0], idx)
	for len(rp.stack) > 0 {
		current := rp.stack[len(rp.stack)-1]
		rp.stack = rp.stack[:len(rp.stack)-1]

		for _, n := range board.NeighborIndices(current) {
			neighbor := &board.C[n]
			if neighbor.Revealed || neighbor.Flagged {
				continue
			}
			// zero cells have no mine neighbors
			neighbor.Revealed = true
			result.Opened = append(result.Opened, n)
			if neighbor.Count == 0 {
				rp.stack = append(rp.stack, n)
			}
		}
	}

	rp.logger.Debug().
		Int("index", idx).
		Int("opened", len(result.Opened)).
		Msg("Cascade complete")
	return result
}

// DiscloseMines marks every mine revealed without counting it as opened.
// It returns the number of mines that were still hidden.
func (rp *RevealProcessor) DiscloseMines(board *core.Board, mines []int) int {
	disclosed := 0
	for _, idx := range mines {
		if !board.C[idx].Revealed {
			board.C[idx].Revealed = true
			disclosed++
		}
	}
	rp.logger.Debug().Int("disclosed", disclosed).Msg("Mine layout disclosed")
	return disclosed
}
