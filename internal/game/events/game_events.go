package events

import (
	"time"

	"github.com/mitchelldurbincs/minesweeper/internal/game/core"
)

// Event type constants
const (
	TypeGameStarted     = "game.started"
	TypeGameEnded       = "game.ended"
	TypeLayoutGenerated = "layout.generated"
	TypeCellRevealed    = "cell.revealed"
	TypeCellFlagged     = "cell.flagged"
	TypeMineHit         = "mine.hit"
	TypeStateTransition = "state.transition"
)

var knownTypes = map[string]bool{
	TypeGameStarted:     true,
	TypeGameEnded:       true,
	TypeLayoutGenerated: true,
	TypeCellRevealed:    true,
	TypeCellFlagged:     true,
	TypeMineHit:         true,
	TypeStateTransition: true,
}

// IsKnownType reports whether eventType names one of the game events
func IsKnownType(eventType string) bool {
	return knownTypes[eventType]
}

// GameStartedEvent is published when a new session begins, including after a reset
type GameStartedEvent struct {
	BaseEvent
	Width  int
	Height int
	Mines  int
}

// NewGameStartedEvent creates a new GameStartedEvent
func NewGameStartedEvent(gameID string, width, height, mines int) *GameStartedEvent {
	return &GameStartedEvent{
		BaseEvent: newBaseEvent(TypeGameStarted, gameID),
		Width:     width,
		Height:    height,
		Mines:     mines,
	}
}

// GameEndedEvent is published once when the board is won or lost
type GameEndedEvent struct {
	BaseEvent
	Won      bool
	Revealed int
	Duration time.Duration
}

// NewGameEndedEvent creates a new GameEndedEvent
func NewGameEndedEvent(gameID string, won bool, revealed int, duration time.Duration) *GameEndedEvent {
	return &GameEndedEvent{
		BaseEvent: newBaseEvent(TypeGameEnded, gameID),
		Won:       won,
		Revealed:  revealed,
		Duration:  duration,
	}
}

// LayoutGeneratedEvent is published when mines are placed on the first reveal
type LayoutGeneratedEvent struct {
	BaseEvent
	Excluded core.Coordinate
	Mines    int
}

// NewLayoutGeneratedEvent creates a new LayoutGeneratedEvent
func NewLayoutGeneratedEvent(gameID string, excluded core.Coordinate, mines int) *LayoutGeneratedEvent {
	return &LayoutGeneratedEvent{
		BaseEvent: newBaseEvent(TypeLayoutGenerated, gameID),
		Excluded:  excluded,
		Mines:     mines,
	}
}

// CellRevealedEvent is published once per top-level reveal.
// Opened counts every cell revealed by it, cascade included.
type CellRevealedEvent struct {
	BaseEvent
	Location core.Coordinate
	Count    int
	Opened   int
}

// NewCellRevealedEvent creates a new CellRevealedEvent
func NewCellRevealedEvent(gameID string, location core.Coordinate, count, opened int) *CellRevealedEvent {
	return &CellRevealedEvent{
		BaseEvent: newBaseEvent(TypeCellRevealed, gameID),
		Location:  location,
		Count:     count,
		Opened:    opened,
	}
}

// CellFlaggedEvent is published when a flag is placed or removed
type CellFlaggedEvent struct {
	BaseEvent
	Location core.Coordinate
	Flagged  bool
}

// NewCellFlaggedEvent creates a new CellFlaggedEvent
func NewCellFlaggedEvent(gameID string, location core.Coordinate, flagged bool) *CellFlaggedEvent {
	return &CellFlaggedEvent{
		BaseEvent: newBaseEvent(TypeCellFlagged, gameID),
		Location:  location,
		Flagged:   flagged,
	}
}

// MineHitEvent is published when a mine is revealed
type MineHitEvent struct {
	BaseEvent
	Location core.Coordinate
}

// NewMineHitEvent creates a new MineHitEvent
func NewMineHitEvent(gameID string, location core.Coordinate) *MineHitEvent {
	return &MineHitEvent{
		BaseEvent: newBaseEvent(TypeMineHit, gameID),
		Location:  location,
	}
}

// StateTransitionEvent is published when the board moves between phases
type StateTransitionEvent struct {
	BaseEvent
	FromPhase string
	ToPhase   string
	Reason    string
}

// NewStateTransitionEvent creates a new StateTransitionEvent
func NewStateTransitionEvent(gameID, fromPhase, toPhase, reason string) *StateTransitionEvent {
	return &StateTransitionEvent{
		BaseEvent: newBaseEvent(TypeStateTransition, gameID),
		FromPhase: fromPhase,
		ToPhase:   toPhase,
		Reason:    reason,
	}
}
