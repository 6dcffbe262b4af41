package rules

import "github.com/rs/zerolog"

// Outcome is the result of a win condition check
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeWon
	OutcomeLost
)

func (o Outcome) String() string {
	switch o {
	case OutcomeWon:
		return "won"
	case OutcomeLost:
		return "lost"
	default:
		return "none"
	}
}

// WinConditionChecker handles game over detection
type WinConditionChecker struct {
	logger    zerolog.Logger
	safeCells int
}

// NewWinConditionChecker creates a new win condition checker for a board
// with the given number of cells that are not mines
func NewWinConditionChecker(logger zerolog.Logger, width, height, mines int) *WinConditionChecker {
	return &WinConditionChecker{
		logger:    logger.With().Str("component", "WinConditionChecker").Logger(),
		safeCells: width*height - mines,
	}
}

// SafeCells returns the number of reveals needed to win
func (wc *WinConditionChecker) SafeCells() int {
	return wc.safeCells
}

// Check determines the outcome after a reveal. A revealed mine always
// loses; otherwise the board is won once every safe cell is revealed.
// Flags play no part.
func (wc *WinConditionChecker) Check(revealed int, hitMine bool) Outcome {
	outcome := OutcomeNone
	switch {
	case hitMine:
		outcome = OutcomeLost
	case revealed == wc.safeCells:
		outcome = OutcomeWon
	}

	wc.logger.Debug().
		Int("revealed", revealed).
		Int("safe_cells", wc.safeCells).
		Bool("hit_mine", hitMine).
		Str("outcome", outcome.String()).
		Msg("Win condition check complete")

	return outcome
}
