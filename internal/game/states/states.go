package states

import (
	"fmt"
	"time"
)

// CreatedState represents a constructed game that has not been set up
type CreatedState struct{}

func NewCreatedState() State {
	return &CreatedState{}
}

func (s *CreatedState) Phase() GamePhase {
	return PhaseCreated
}

func (s *CreatedState) Enter(ctx *GameContext) error {
	return nil
}

func (s *CreatedState) Exit(ctx *GameContext) error {
	return nil
}

func (s *CreatedState) Validate(ctx *GameContext) error {
	return nil
}

// SetUpState represents a game whose players and seating have been reset
type SetUpState struct{}

func NewSetUpState() State {
	return &SetUpState{}
}

func (s *SetUpState) Phase() GamePhase {
	return PhaseSetUp
}

func (s *SetUpState) Enter(ctx *GameContext) error {
	ctx.ResetOutcome()
	ctx.Logger.Debug().Int("player_count", ctx.PlayerCount).Msg("Game set up")
	return nil
}

func (s *SetUpState) Exit(ctx *GameContext) error {
	return nil
}

func (s *SetUpState) Validate(ctx *GameContext) error {
	if !ctx.IsReady() {
		return fmt.Errorf("not enough players to set up: have %d, need at least 1", ctx.PlayerCount)
	}
	return nil
}

// RunningState represents active gameplay
type RunningState struct{}

func NewRunningState() State {
	return &RunningState{}
}

func (s *RunningState) Phase() GamePhase {
	return PhaseRunning
}

func (s *RunningState) Enter(ctx *GameContext) error {
	ctx.StartTime = time.Now()
	return nil
}

func (s *RunningState) Exit(ctx *GameContext) error {
	ctx.Logger.Debug().
		Dur("elapsed", ctx.GetElapsedTime()).
		Int("rounds", ctx.Round).
		Bool("timeout", ctx.Timeout).
		Msg("Exiting running state")
	return nil
}

func (s *RunningState) Validate(ctx *GameContext) error {
	if ctx.PlayerCount < 1 {
		return fmt.Errorf("cannot run game with no players")
	}
	return nil
}

// FinishedState represents a completed, read-only game
type FinishedState struct{}

func NewFinishedState() State {
	return &FinishedState{}
}

func (s *FinishedState) Phase() GamePhase {
	return PhaseFinished
}

func (s *FinishedState) Enter(ctx *GameContext) error {
	ctx.Logger.Debug().
		Int("winner", ctx.Winner).
		Int("rounds", ctx.Round).
		Bool("timeout", ctx.Timeout).
		Msg("Game finished")
	return nil
}

func (s *FinishedState) Exit(ctx *GameContext) error {
	return nil
}

func (s *FinishedState) Validate(ctx *GameContext) error {
	if ctx.Winner < 0 {
		return fmt.Errorf("finished state requires a winner")
	}
	return nil
}
