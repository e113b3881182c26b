package simulation

import (
	"time"

	"github.com/mitchelldurbincs/PropertyTradingSim/internal/game"
	"github.com/mitchelldurbincs/PropertyTradingSim/internal/game/core"
)

// Results aggregates the outcome of a batch
type Results struct {
	BatchID    string
	Seed       int64
	Strategies []core.StrategyKind
	Games      []game.Result
	Duration   time.Duration
}

func (r *Results) Count() int { return len(r.Games) }

// TimeoutCount returns how many games hit the round cap
func (r *Results) TimeoutCount() int {
	n := 0
	for _, g := range r.Games {
		if g.Timeout {
			n++
		}
	}
	return n
}

// AverageRounds returns the mean round count, 0 for an empty batch
func (r *Results) AverageRounds() float64 {
	if len(r.Games) == 0 {
		return 0
	}
	total := 0
	for _, g := range r.Games {
		total += g.Rounds
	}
	return float64(total) / float64(len(r.Games))
}

// Wins counts the games won by a player of kind
func (r *Results) Wins(kind core.StrategyKind) int {
	n := 0
	for _, g := range r.Games {
		if g.WinnerID >= 0 && g.WinnerStrategy == kind {
			n++
		}
	}
	return n
}

// WinRate is Wins over the number of games, in [0,1]
func (r *Results) WinRate(kind core.StrategyKind) float64 {
	if len(r.Games) == 0 {
		return 0
	}
	return float64(r.Wins(kind)) / float64(len(r.Games))
}
