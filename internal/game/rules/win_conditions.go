package rules

import (
	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/PropertyTradingSim/internal/game/core"
)

// WinConditionChecker handles termination detection and winner determination
type WinConditionChecker struct {
	logger    zerolog.Logger
	maxRounds int
}

// NewWinConditionChecker creates a new win condition checker
func NewWinConditionChecker(logger zerolog.Logger, maxRounds int) *WinConditionChecker {
	return &WinConditionChecker{
		logger:    logger.With().Str("component", "WinConditionChecker").Logger(),
		maxRounds: maxRounds,
	}
}

// MaxRounds returns the round cap after which a game times out
func (wc *WinConditionChecker) MaxRounds() int { return wc.maxRounds }

// ShouldContinue reports whether another round is played.
// Returns (continue, timeout). timeout is only true when the round cap stopped
// a game that still had more than one active player.
func (wc *WinConditionChecker) ShouldContinue(activeCount, round int) (bool, bool) {
	if activeCount <= 1 {
		return false, false
	}
	if round >= wc.maxRounds {
		wc.logger.Debug().Int("round", round).Int("active_players", activeCount).Msg("Round cap reached")
		return false, true
	}
	return true, false
}

// DetermineWinner picks the winner among active players.
// A lone survivor wins outright. Otherwise the richest player wins and ties at
// the top are broken by seating, the post-setup order of every player.
func (wc *WinConditionChecker) DetermineWinner(active, seating []*core.Player) *core.Player {
	if len(active) == 0 {
		wc.logger.Warn().Msg("No active players left, no winner")
		return nil
	}
	if len(active) == 1 {
		wc.logger.Debug().Int("winner_player_id", active[0].ID).Msg("Last player standing")
		return active[0]
	}

	best := active[0].Amount
	for _, p := range active[1:] {
		if p.Amount > best {
			best = p.Amount
		}
	}

	activeSet := make(map[*core.Player]struct{}, len(active))
	for _, p := range active {
		activeSet[p] = struct{}{}
	}

	tied := 0
	var winner *core.Player
	for _, p := range seating {
		if _, ok := activeSet[p]; !ok || p.Amount != best {
			continue
		}
		if winner == nil {
			winner = p
		}
		tied++
	}

	// A player missing from seating should never happen; fall back to active order.
	if winner == nil {
		for _, p := range active {
			if p.Amount == best {
				winner = p
				break
			}
		}
	}

	wc.logger.Debug().
		Int("winner_player_id", winner.ID).
		Int("amount", best).
		Int("tied_players", tied).
		Msg("Winner determined by amount")
	return winner
}
