package states

import (
	"fmt"
	"time"
)

// UnconfiguredState is a fresh board waiting for its first reveal
type UnconfiguredState struct{}

func NewUnconfiguredState() State {
	return &UnconfiguredState{}
}

func (s *UnconfiguredState) Phase() GamePhase {
	return PhaseUnconfigured
}

func (s *UnconfiguredState) Enter(ctx *GameContext) error {
	ctx.Logger.Debug().
		Int("width", ctx.Width).
		Int("height", ctx.Height).
		Int("mines", ctx.Mines).
		Msg("Board waiting for first reveal")
	return nil
}

func (s *UnconfiguredState) Exit(ctx *GameContext) error {
	return nil
}

func (s *UnconfiguredState) Validate(ctx *GameContext) error {
	return nil
}

// ConfiguredState is active play after the layout has been generated
type ConfiguredState struct{}

func NewConfiguredState() State {
	return &ConfiguredState{}
}

func (s *ConfiguredState) Phase() GamePhase {
	return PhaseConfigured
}

func (s *ConfiguredState) Enter(ctx *GameContext) error {
	ctx.StartTime = time.Now()
	ctx.Logger.Info().
		Time("start_time", ctx.StartTime).
		Msg("Mine layout generated, game started")
	return nil
}

func (s *ConfiguredState) Exit(ctx *GameContext) error {
	ctx.Logger.Debug().
		Dur("elapsed", ctx.GetElapsedTime()).
		Msg("Leaving play")
	return nil
}

func (s *ConfiguredState) Validate(ctx *GameContext) error {
	if ctx.Mines < 0 || ctx.Mines >= ctx.Width*ctx.Height {
		return fmt.Errorf("cannot place %d mines on a %dx%d board", ctx.Mines, ctx.Width, ctx.Height)
	}
	return nil
}

// WonState is entered when the last safe cell is revealed
type WonState struct{}

func NewWonState() State {
	return &WonState{}
}

func (s *WonState) Phase() GamePhase {
	return PhaseWon
}

func (s *WonState) Enter(ctx *GameContext) error {
	ctx.EndTime = time.Now()
	ctx.Logger.Info().
		Dur("duration", ctx.GetElapsedTime()).
		Int("revealed", ctx.Revealed).
		Msg("Game won")
	return nil
}

func (s *WonState) Exit(ctx *GameContext) error {
	return nil
}

func (s *WonState) Validate(ctx *GameContext) error {
	if ctx.Revealed != ctx.SafeCells() {
		return fmt.Errorf("won requires %d revealed cells, have %d", ctx.SafeCells(), ctx.Revealed)
	}
	return nil
}

// LostState is entered when a mine is revealed
type LostState struct{}

func NewLostState() State {
	return &LostState{}
}

func (s *LostState) Phase() GamePhase {
	return PhaseLost
}

func (s *LostState) Enter(ctx *GameContext) error {
	ctx.EndTime = time.Now()
	ctx.Logger.Info().
		Dur("duration", ctx.GetElapsedTime()).
		Int("revealed", ctx.Revealed).
		Msg("Game lost")
	return nil
}

func (s *LostState) Exit(ctx *GameContext) error {
	return nil
}

func (s *LostState) Validate(ctx *GameContext) error {
	return nil
}
