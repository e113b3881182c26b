package states

import "fmt"

// GamePhase represents the current phase of a game
type GamePhase int

const (
	// PhaseCreated - Game constructed with board, dice and players
	PhaseCreated GamePhase = iota

	// PhaseSetUp - Balances and positions reset, seating shuffled
	PhaseSetUp

	// PhaseRunning - Rounds being played
	PhaseRunning

	// PhaseFinished - Winner resolved, game is read-only
	PhaseFinished
)

// String returns the string representation of a GamePhase
func (p GamePhase) String() string {
	switch p {
	case PhaseCreated:
		return "Created"
	case PhaseSetUp:
		return "SetUp"
	case PhaseRunning:
		return "Running"
	case PhaseFinished:
		return "Finished"
	default:
		return fmt.Sprintf("Unknown(%d)", p)
	}
}

// IsTerminal returns true if the phase represents a terminal state
func (p GamePhase) IsTerminal() bool {
	return p == PhaseFinished
}

// CanPlayRounds returns true if turns may be taken in this phase
func (p GamePhase) CanPlayRounds() bool {
	return p == PhaseRunning
}

// AllowedTransitions returns the valid phases this phase can transition to.
// A finished game may be set up again and replayed.
func (p GamePhase) AllowedTransitions() []GamePhase {
	switch p {
	case PhaseCreated:
		return []GamePhase{PhaseSetUp}
	case PhaseSetUp:
		return []GamePhase{PhaseRunning}
	case PhaseRunning:
		return []GamePhase{PhaseFinished}
	case PhaseFinished:
		return []GamePhase{PhaseSetUp}
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
