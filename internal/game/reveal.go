package game

import (
	"fmt"

	"github.com/mitchelldurbincs/minesweeper/internal/game/core"
	"github.com/mitchelldurbincs/minesweeper/internal/game/events"
	"github.com/mitchelldurbincs/minesweeper/internal/game/rules"
	"github.com/mitchelldurbincs/minesweeper/internal/game/states"
)

// Reveal opens the cell at idx. The first reveal of a session generates the
// mine layout with idx kept free. Revealing a mine loses the game and
// discloses every mine; revealing a zero opens its connected zero region.
// Reveals on a finished game or on revealed or flagged cells change nothing.
// An out of range idx returns core.ErrInvalidIndex.
func (e *Engine) Reveal(idx int) error {
	if !e.board.ValidIndex(idx) {
		return core.WrapCellError("reveal", idx, core.ErrInvalidIndex)
	}

	phase := e.stateMachine.CurrentPhase()
	if !phase.CanReceiveActions() {
		e.logger.Debug().Int("index", idx).Str("phase", phase.String()).Msg("Ignoring reveal on finished game")
		return nil
	}

	cell := &e.board.C[idx]
	if cell.Revealed || cell.Flagged {
		return nil
	}

	if !phase.HasLayout() {
		if err := e.generateLayout(idx); err != nil {
			return err
		}
	}

	result := e.revealProcessor.ProcessReveal(e.board, idx)
	e.revealed += result.SafeOpened()
	e.stateMachine.GetContext().Revealed = e.revealed
	e.stats.recordReveal(result)

	loc := core.FromIndex(idx, e.board.H)
	e.eventBus.Publish(events.NewCellRevealedEvent(e.gameID, loc, cell.Count, len(result.Opened)))

	switch e.winCondition.Check(e.revealed, result.HitMine) {
	case rules.OutcomeLost:
		e.lose(idx)
	case rules.OutcomeWon:
		e.win()
	}
	return nil
}

// ToggleFlag flips the flag on a hidden cell. Revealed cells and finished
// games are left unchanged. An out of range idx returns core.ErrInvalidIndex.
func (e *Engine) ToggleFlag(idx int) error {
	if !e.board.ValidIndex(idx) {
		return core.WrapCellError("flag", idx, core.ErrInvalidIndex)
	}
	if e.IsGameOver() {
		return nil
	}

	cell := &e.board.C[idx]
	if cell.Revealed {
		return nil
	}

	cell.Flagged = !cell.Flagged
	if cell.Flagged {
		e.flags++
		e.stats.FlagsPlaced++
	} else {
		e.flags--
		e.stats.FlagsRemoved++
	}

	e.eventBus.Publish(events.NewCellFlaggedEvent(e.gameID, core.FromIndex(idx, e.board.H), cell.Flagged))
	return nil
}

// generateLayout places the mines around the first revealed cell
func (e *Engine) generateLayout(excluded int) error {
	mines, err := e.generator.GenerateLayout(e.board, excluded)
	if err != nil {
		return fmt.Errorf("layout generation failed: %w", err)
	}
	e.mines = mines

	if err := e.stateMachine.TransitionTo(states.PhaseConfigured, "first reveal"); err != nil {
		return fmt.Errorf("failed to start game: %w", err)
	}

	e.logger.Debug().Int("excluded", excluded).Ints("mines", mines).Msg("Mine layout generated")
	e.eventBus.Publish(events.NewLayoutGeneratedEvent(e.gameID, core.FromIndex(excluded, e.board.H), len(mines)))
	return nil
}

func (e *Engine) lose(idx int) {
	e.revealProcessor.DiscloseMines(e.board, e.mines)

	if err := e.stateMachine.TransitionTo(states.PhaseLost, "mine revealed"); err != nil {
		e.logger.Error().Err(err).Msg("Failed to transition to Lost state")
	}

	e.eventBus.Publish(events.NewMineHitEvent(e.gameID, core.FromIndex(idx, e.board.H)))
	e.endGame(false)
}

func (e *Engine) win() {
	if err := e.stateMachine.TransitionTo(states.PhaseWon, "all safe cells revealed"); err != nil {
		e.logger.Error().Err(err).Msg("Failed to transition to Won state")
	}
	e.endGame(true)
}

func (e *Engine) endGame(won bool) {
	elapsed := e.Elapsed()
	e.logger.Info().
		Str("game_id", e.gameID).
		Bool("won", won).
		Int("revealed", e.revealed).
		Int("flags", e.flags).
		Dur("elapsed", elapsed).
		Msg("Game over")
	e.eventBus.Publish(events.NewGameEndedEvent(e.gameID, won, e.revealed, elapsed))
}
