package states

import (
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mitchelldurbincs/minesweeper/internal/game/events"
)

func newTestContext() *GameContext {
	return NewGameContext("test-game", 3, 3, 1, zerolog.Nop())
}

func TestGamePhase_String(t *testing.T) {
	tests := []struct {
		phase    GamePhase
		expected string
	}{
		{PhaseUnconfigured, "Unconfigured"},
		{PhaseConfigured, "Configured"},
		{PhaseWon, "Won"},
		{PhaseLost, "Lost"},
		{GamePhase(999), "Unknown(999)"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.phase.String())
		})
	}
}

func TestGamePhase_Properties(t *testing.T) {
	t.Run("IsTerminal", func(t *testing.T) {
		assert.True(t, PhaseWon.IsTerminal())
		assert.True(t, PhaseLost.IsTerminal())
		assert.False(t, PhaseConfigured.IsTerminal())
		assert.False(t, PhaseUnconfigured.IsTerminal())
	})

	t.Run("CanReceiveActions", func(t *testing.T) {
		assert.True(t, PhaseUnconfigured.CanReceiveActions())
		assert.True(t, PhaseConfigured.CanReceiveActions())
		assert.False(t, PhaseWon.CanReceiveActions())
		assert.False(t, PhaseLost.CanReceiveActions())
	})

	t.Run("HasLayout", func(t *testing.T) {
		assert.False(t, PhaseUnconfigured.HasLayout())
		assert.True(t, PhaseConfigured.HasLayout())
		assert.True(t, PhaseLost.HasLayout())
	})
}

func TestGamePhase_Transitions(t *testing.T) {
	tests := []struct {
		from    GamePhase
		to      GamePhase
		allowed bool
	}{
		{PhaseUnconfigured, PhaseConfigured, true},
		{PhaseUnconfigured, PhaseWon, false},
		{PhaseUnconfigured, PhaseLost, false},
		{PhaseConfigured, PhaseWon, true},
		{PhaseConfigured, PhaseLost, true},
		{PhaseConfigured, PhaseUnconfigured, true},
		{PhaseWon, PhaseLost, false},
		{PhaseLost, PhaseWon, false},
		{PhaseWon, PhaseConfigured, false},
		{PhaseLost, PhaseUnconfigured, true},
	}

	for _, tt := range tests {
		t.Run(tt.from.String()+"->"+tt.to.String(), func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestStateMachine_FullGame(t *testing.T) {
	ctx := newTestContext()
	bus := events.NewEventBus(zerolog.Nop())

	var transitions []*events.StateTransitionEvent
	bus.SubscribeFunc(events.TypeStateTransition, func(e events.Event) {
		transitions = append(transitions, e.(*events.StateTransitionEvent))
	})

	sm := NewStateMachine(ctx, bus)
	assert.Equal(t, PhaseUnconfigured, sm.CurrentPhase())

	require.NoError(t, sm.TransitionTo(PhaseConfigured, "first reveal"))
	assert.False(t, ctx.StartTime.IsZero(), "start time should be set when play begins")

	ctx.Revealed = ctx.SafeCells()
	require.NoError(t, sm.TransitionTo(PhaseWon, "all safe cells revealed"))
	assert.Equal(t, PhaseWon, sm.CurrentPhase())
	assert.False(t, ctx.EndTime.IsZero())

	history := sm.GetHistory()
	require.Len(t, history, 2)
	assert.Equal(t, PhaseUnconfigured, history[0].From)
	assert.Equal(t, PhaseConfigured, history[0].To)
	assert.Equal(t, "all safe cells revealed", history[1].Reason)

	require.Len(t, transitions, 2)
	assert.Equal(t, "Configured", transitions[1].FromPhase)
	assert.Equal(t, "Won", transitions[1].ToPhase)
	assert.Equal(t, "test-game", transitions[1].GameID())
}

func TestStateMachine_InvalidTransition(t *testing.T) {
	sm := NewStateMachine(newTestContext(), nil)

	err := sm.TransitionTo(PhaseLost, "skipping ahead")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid transition from Unconfigured to Lost")
	assert.Equal(t, PhaseUnconfigured, sm.CurrentPhase())
	assert.Empty(t, sm.GetHistory())
}

func TestStateMachine_WonValidation(t *testing.T) {
	ctx := newTestContext()
	sm := NewStateMachine(ctx, nil)
	require.NoError(t, sm.TransitionTo(PhaseConfigured, "first reveal"))

	ctx.Revealed = 3
	err := sm.TransitionTo(PhaseWon, "premature")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
	assert.Equal(t, PhaseConfigured, sm.CurrentPhase())
}

func TestStateMachine_ConfiguredValidation(t *testing.T) {
	ctx := NewGameContext("bad", 2, 2, 4, zerolog.Nop())
	sm := NewStateMachine(ctx, nil)

	assert.Error(t, sm.TransitionTo(PhaseConfigured, "first reveal"))
	assert.Equal(t, PhaseUnconfigured, sm.CurrentPhase())
}

func TestStateMachine_Reset(t *testing.T) {
	ctx := newTestContext()
	sm := NewStateMachine(ctx, nil)
	require.NoError(t, sm.TransitionTo(PhaseConfigured, "first reveal"))
	require.NoError(t, sm.TransitionTo(PhaseLost, "mine revealed"))

	require.NoError(t, sm.Reset("new game"))
	assert.Equal(t, PhaseUnconfigured, sm.CurrentPhase())

	history := sm.GetHistory()
	require.Len(t, history, 1)
	assert.Equal(t, PhaseLost, history[0].From)
	assert.Equal(t, "new game", history[0].Reason)
}

type failingState struct {
	phase GamePhase
}

func (s *failingState) Phase() GamePhase { return s.phase }

func (s *failingState) Enter(ctx *GameContext) error { return errors.New("enter failed") }

func (s *failingState) Exit(ctx *GameContext) error { return errors.New("exit failed") }

func (s *failingState) Validate(ctx *GameContext) error { return nil }

func TestStateMachine_EnterFailureRollsBack(t *testing.T) {
	sm := NewStateMachine(newTestContext(), nil)
	sm.RegisterState(&failingState{phase: PhaseConfigured})

	err := sm.TransitionTo(PhaseConfigured, "first reveal")
	require.Error(t, err)
	assert.Equal(t, PhaseUnconfigured, sm.CurrentPhase())
	assert.Empty(t, sm.GetHistory())
}

func TestGameContext_ElapsedTime(t *testing.T) {
	ctx := newTestContext()
	assert.Zero(t, ctx.GetElapsedTime())

	ctx.StartTime = time.Now().Add(-2 * time.Second)
	assert.GreaterOrEqual(t, ctx.GetElapsedTime(), 2*time.Second)

	ctx.EndTime = ctx.StartTime.Add(time.Second)
	assert.Equal(t, time.Second, ctx.GetElapsedTime(), "elapsed time freezes once the game ends")
}

func TestGameContext_Rekey(t *testing.T) {
	ctx := newTestContext()
	ctx.StartTime = time.Now()
	ctx.EndTime = time.Now()
	ctx.Revealed = 5

	ctx.Rekey("next-game", zerolog.Nop())

	assert.Equal(t, "next-game", ctx.GameID)
	assert.True(t, ctx.StartTime.IsZero())
	assert.True(t, ctx.EndTime.IsZero())
	assert.Zero(t, ctx.Revealed)
	assert.Equal(t, 8, ctx.SafeCells())
}
