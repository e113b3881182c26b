package core

import (
	"errors"
	"fmt"
)

var (
	ErrPropertyUnavailable = errors.New("property is not available")
	ErrInsufficientFunds   = errors.New("player does not have enough amount")
	ErrGameOver            = errors.New("game is over")
	ErrInvalidRoster       = errors.New("game needs at least one player")
	ErrInvalidPhase        = errors.New("operation not allowed in current phase")
	ErrInvalidDice         = errors.New("dice must roll at least 1")
)

// WrapPlayerError annotates err with the player that triggered it.
func WrapPlayerError(playerID int, operation string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("player %d %s: %w", playerID, operation, err)
}

// WrapGameStateError annotates err with the round and phase it surfaced in.
func WrapGameStateError(round int, phase string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("game round %d [%s]: %w", round, phase, err)
}

// GameError carries structured context about a failure inside a running game.
type GameError struct {
	Round     int
	PlayerID  int
	Operation string
	Err       error
}

// NewGameError creates a GameError. A negative playerID means the error is not
// tied to a single player.
func NewGameError(round, playerID int, operation string, err error) *GameError {
	return &GameError{
		Round:     round,
		PlayerID:  playerID,
		Operation: operation,
		Err:       err,
	}
}

func (e *GameError) Error() string {
	if e.PlayerID >= 0 {
		return fmt.Sprintf("round %d: player %d %s: %v", e.Round, e.PlayerID, e.Operation, e.Err)
	}
	return fmt.Sprintf("round %d: %s: %v", e.Round, e.Operation, e.Err)
}

func (e *GameError) Unwrap() error { return e.Err }
