package states

import (
	"time"

	"github.com/rs/zerolog"
)

// GameContext provides game-specific information to states for making decisions
type GameContext struct {
	// GameID uniquely identifies this game instance
	GameID string

	// Logger for state-specific logging
	Logger zerolog.Logger

	// PlayerCount is the size of the full roster
	PlayerCount int

	// StartTime is when PhaseRunning was entered
	StartTime time.Time

	// Round is the number of completed rounds
	Round int

	// Winner is the player ID of the winner, -1 until resolved
	Winner int

	// Timeout is set when the round cap ended the game
	Timeout bool
}

// NewGameContext creates a new game context
func NewGameContext(gameID string, playerCount int, logger zerolog.Logger) *GameContext {
	return &GameContext{
		GameID:      gameID,
		PlayerCount: playerCount,
		Logger:      logger.With().Str("game_id", gameID).Logger(),
		Winner:      -1,
	}
}

// IsReady returns true if the game has enough players to start
func (gc *GameContext) IsReady() bool {
	return gc.PlayerCount >= 1
}

// ResetOutcome clears round, winner and timeout before a new playthrough
func (gc *GameContext) ResetOutcome() {
	gc.Round = 0
	gc.Winner = -1
	gc.Timeout = false
	gc.StartTime = time.Time{}
}

// GetElapsedTime returns the time elapsed since the game started running
func (gc *GameContext) GetElapsedTime() time.Duration {
	if gc.StartTime.IsZero() {
		return 0
	}
	return time.Since(gc.StartTime)
}
