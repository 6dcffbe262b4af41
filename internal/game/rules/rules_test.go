package rules

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/mitchelldurbincs/minesweeper/internal/testutil"
)

func TestWinConditionChecker(t *testing.T) {
	wc := NewWinConditionChecker(zerolog.Nop(), 9, 9, 10)
	assert.Equal(t, 71, wc.SafeCells())

	tests := []struct {
		name     string
		revealed int
		hitMine  bool
		expected Outcome
	}{
		{"in progress", 10, false, OutcomeNone},
		{"nothing revealed", 0, false, OutcomeNone},
		{"all safe cells", 71, false, OutcomeWon},
		{"mine", 5, true, OutcomeLost},
		{"mine beats count", 71, true, OutcomeLost},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, wc.Check(tt.revealed, tt.hitMine))
		})
	}
}

func TestOutcomeString(t *testing.T) {
	assert.Equal(t, "none", OutcomeNone.String())
	assert.Equal(t, "won", OutcomeWon.String())
	assert.Equal(t, "lost", OutcomeLost.String())
}

func TestLegalMoveCalculator(t *testing.T) {
	board := testutil.BoardFromRows(
		"*..",
		"...",
	)
	board.C[board.Idx(0, 0)].Flagged = true
	board.C[board.Idx(2, 1)].Revealed = true
	lmc := NewLegalMoveCalculator()

	reveal := lmc.GetLegalRevealMask(board, false)
	flag := lmc.GetLegalFlagMask(board, false)
	for i := range board.C {
		c := board.C[i]
		assert.Equal(t, !c.Revealed && !c.Flagged, reveal[i], "reveal mask at %d", i)
		assert.Equal(t, !c.Revealed, flag[i], "flag mask at %d", i)
	}
	assert.Len(t, lmc.LegalReveals(board, false), 4)

	assert.NotContains(t, lmc.GetLegalRevealMask(board, true), true)
	assert.NotContains(t, lmc.GetLegalFlagMask(board, true), true)
	assert.Empty(t, lmc.LegalReveals(board, true))
}
