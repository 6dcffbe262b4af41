package states

import (
	"time"

	"github.com/rs/zerolog"
)

// GameContext provides session information to states
type GameContext struct {
	// GameID uniquely identifies this game session
	GameID string

	// Logger for state-specific logging
	Logger zerolog.Logger

	// Width, Height and Mines describe the board
	Width, Height, Mines int

	// StartTime is when the layout was generated (PhaseConfigured entered)
	StartTime time.Time

	// EndTime is when the game was won or lost
	EndTime time.Time

	// Revealed is the number of safe cells revealed, kept current by the board
	Revealed int
}

// NewGameContext creates a new game context
func NewGameContext(gameID string, width, height, mines int, logger zerolog.Logger) *GameContext {
	return &GameContext{
		GameID: gameID,
		Width:  width,
		Height: height,
		Mines:  mines,
		Logger: logger.With().Str("game_id", gameID).Logger(),
	}
}

// SafeCells returns the number of cells that must be revealed to win
func (gc *GameContext) SafeCells() int {
	return gc.Width*gc.Height - gc.Mines
}

// GetElapsedTime returns the play time so far, frozen once the game ends
func (gc *GameContext) GetElapsedTime() time.Duration {
	if gc.StartTime.IsZero() {
		return 0
	}
	if !gc.EndTime.IsZero() {
		return gc.EndTime.Sub(gc.StartTime)
	}
	return time.Since(gc.StartTime)
}

// Rekey starts a new session on the same board dimensions
func (gc *GameContext) Rekey(gameID string, logger zerolog.Logger) {
	gc.GameID = gameID
	gc.Logger = logger.With().Str("game_id", gameID).Logger()
	gc.StartTime = time.Time{}
	gc.EndTime = time.Time{}
	gc.Revealed = 0
}
