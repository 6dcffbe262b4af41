package states

import "fmt"

// GamePhase represents where a board is in its lifecycle
type GamePhase int

const (
	// PhaseUnconfigured - cells exist but no mines are placed yet
	PhaseUnconfigured GamePhase = iota

	// PhaseConfigured - layout generated by the first reveal, play in progress
	PhaseConfigured

	// PhaseWon - every safe cell revealed
	PhaseWon

	// PhaseLost - a mine was revealed
	PhaseLost
)

// String returns the string representation of a GamePhase
func (p GamePhase) String() string {
	switch p {
	case PhaseUnconfigured:
		return "Unconfigured"
	case PhaseConfigured:
		return "Configured"
	case PhaseWon:
		return "Won"
	case PhaseLost:
		return "Lost"
	default:
		return fmt.Sprintf("Unknown(%d)", p)
	}
}

// IsTerminal returns true once the game is won or lost
func (p GamePhase) IsTerminal() bool {
	return p == PhaseWon || p == PhaseLost
}

// CanReceiveActions returns true if reveal and flag may mutate the board
func (p GamePhase) CanReceiveActions() bool {
	return p == PhaseUnconfigured || p == PhaseConfigured
}

// HasLayout returns true if mines have been placed
func (p GamePhase) HasLayout() bool {
	return p != PhaseUnconfigured
}

// AllowedTransitions returns the valid phases this phase can transition to.
// Every phase may go back to Unconfigured when the board is reset.
func (p GamePhase) AllowedTransitions() []GamePhase {
	switch p {
	case PhaseUnconfigured:
		return []GamePhase{PhaseConfigured, PhaseUnconfigured}
	case PhaseConfigured:
		return []GamePhase{PhaseWon, PhaseLost, PhaseUnconfigured}
	case PhaseWon, PhaseLost:
		return []GamePhase{PhaseUnconfigured}
	default:
		return []GamePhase{}
	}
}

// CanTransitionTo checks if a transition from this phase to the target phase is allowed
func (p GamePhase) CanTransitionTo(target GamePhase) bool {
	for _, phase := range p.AllowedTransitions() {
		if phase == target {
			return true
		}
	}
	return false
}
