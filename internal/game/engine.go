package game

import (
	"context"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/minesweeper/internal/game/core"
	"github.com/mitchelldurbincs/minesweeper/internal/game/events"
	"github.com/mitchelldurbincs/minesweeper/internal/game/mapgen"
	"github.com/mitchelldurbincs/minesweeper/internal/game/processor"
	"github.com/mitchelldurbincs/minesweeper/internal/game/rules"
	"github.com/mitchelldurbincs/minesweeper/internal/game/states"
)

// GameConfig holds the settings for a new board
type GameConfig struct {
	Width  int
	Height int
	Mines  int

	// Rng drives mine placement. A time-seeded source is used when nil.
	Rng *rand.Rand

	Logger zerolog.Logger

	// EventBus receives game events. A private bus is created when nil.
	EventBus *events.EventBus

	// GameID names the first session. A UUID is generated when empty.
	GameID string
}

// Engine owns the board and applies reveals and flags to it
type Engine struct {
	board  *core.Board
	config mapgen.MapConfig
	mines  []int

	revealed int
	flags    int

	generator *mapgen.Generator

	logger          zerolog.Logger
	revealProcessor *processor.RevealProcessor
	winCondition    *rules.WinConditionChecker
	legalMoves      *rules.LegalMoveCalculator

	eventBus     *events.EventBus
	stateMachine *states.StateMachine
	gameID       string

	stats Stats
}

// NewEngine creates a board waiting for its first reveal
func NewEngine(ctx context.Context, cfg GameConfig) (*Engine, error) {
	return NewEngineInitializer(cfg).Initialize(ctx)
}

// Reset starts a new session on the same configuration: a new game ID,
// every cell hidden and the layout generated again on the next reveal.
func (e *Engine) Reset() {
	previous := e.gameID
	e.gameID = uuid.New().String()

	e.board.Clear()
	e.mines = nil
	e.revealed = 0
	e.flags = 0
	e.stats = Stats{}

	gameCtx := e.stateMachine.GetContext()
	gameCtx.Rekey(e.gameID, e.logger)
	if err := e.stateMachine.Reset("board reset"); err != nil {
		e.logger.Error().Err(err).Msg("Failed to reset state machine")
	}

	e.logger.Info().
		Str("previous_game_id", previous).
		Str("game_id", e.gameID).
		Msg("Board reset")

	e.eventBus.Publish(events.NewGameStartedEvent(e.gameID, e.board.W, e.board.H, e.config.Mines))
}

// Public accessors
func (e *Engine) Width() int                   { return e.board.W }
func (e *Engine) Height() int                  { return e.board.H }
func (e *Engine) Mines() int                   { return e.config.Mines }
func (e *Engine) RevealedCount() int           { return e.revealed }
func (e *Engine) FlagCount() int               { return e.flags }
func (e *Engine) GameID() string               { return e.gameID }
func (e *Engine) EventBus() *events.EventBus   { return e.eventBus }
func (e *Engine) Phase() states.GamePhase      { return e.stateMachine.CurrentPhase() }
func (e *Engine) IsWon() bool                  { return e.Phase() == states.PhaseWon }
func (e *Engine) IsLost() bool                 { return e.Phase() == states.PhaseLost }
func (e *Engine) IsGameOver() bool             { return e.Phase().IsTerminal() }
func (e *Engine) HasLayout() bool              { return e.Phase().HasLayout() }
func (e *Engine) Stats() Stats                 { return e.stats }
func (e *Engine) Elapsed() time.Duration       { return e.stateMachine.GetContext().GetElapsedTime() }
func (e *Engine) History() []states.Transition { return e.stateMachine.GetHistory() }

// RemainingMines is the mine count minus placed flags. It goes negative
// when more flags than mines are placed.
func (e *Engine) RemainingMines() int {
	return e.config.Mines - e.flags
}

// Cell returns a copy of the cell at idx
func (e *Engine) Cell(idx int) (core.Cell, error) {
	if !e.board.ValidIndex(idx) {
		return core.Cell{}, core.WrapCellError("read", idx, core.ErrInvalidIndex)
	}
	return e.board.C[idx], nil
}

// CellAt returns a copy of the cell at column x, row y
func (e *Engine) CellAt(x, y int) (core.Cell, error) {
	cell := e.board.GetCell(x, y)
	if cell == nil {
		return core.Cell{}, core.WrapCoordinateError("read", core.NewCoordinate(x, y), core.ErrInvalidIndex)
	}
	return *cell, nil
}

// MineIndices returns the sorted mine positions, or nil before the first reveal
func (e *Engine) MineIndices() []int {
	out := make([]int, len(e.mines))
	copy(out, e.mines)
	if len(out) == 0 {
		return nil
	}
	return out
}

// LegalReveals lists the cells a reveal would change
func (e *Engine) LegalReveals() []int {
	return e.legalMoves.LegalReveals(e.board, e.IsGameOver())
}

// LegalRevealMask returns the board-indexed reveal mask
func (e *Engine) LegalRevealMask() []bool {
	return e.legalMoves.GetLegalRevealMask(e.board, e.IsGameOver())
}

// LegalFlagMask returns the board-indexed flag mask
func (e *Engine) LegalFlagMask() []bool {
	return e.legalMoves.GetLegalFlagMask(e.board, e.IsGameOver())
}

// RevealAt reveals the cell at column x, row y
func (e *Engine) RevealAt(x, y int) error {
	c := core.NewCoordinate(x, y)
	if !c.IsValid(e.board.W, e.board.H) {
		return core.WrapCoordinateError("reveal", c, core.ErrInvalidIndex)
	}
	return e.Reveal(c.ToIndex(e.board.H))
}

// ToggleFlagAt toggles the flag on the cell at column x, row y
func (e *Engine) ToggleFlagAt(x, y int) error {
	c := core.NewCoordinate(x, y)
	if !c.IsValid(e.board.W, e.board.H) {
		return core.WrapCoordinateError("flag", c, core.ErrInvalidIndex)
	}
	return e.ToggleFlag(c.ToIndex(e.board.H))
}
