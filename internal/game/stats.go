package game

import "github.com/mitchelldurbincs/minesweeper/internal/game/processor"

// Stats counts player actions over one session. It is cleared by Reset.
type Stats struct {
	Reveals        int // top-level reveals that changed the board
	CellsOpened    int // cells opened, cascades included
	LargestCascade int
	FlagsPlaced    int
	FlagsRemoved   int
}

func (s *Stats) recordReveal(result processor.RevealResult) {
	s.Reveals++
	s.CellsOpened += len(result.Opened)
	if len(result.Opened) > s.LargestCascade {
		s.LargestCascade = len(result.Opened)
	}
}
