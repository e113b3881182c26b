package game

import (
	"fmt"

	"github.com/mitchelldurbincs/PropertyTradingSim/internal/config"
	"github.com/mitchelldurbincs/PropertyTradingSim/internal/game/core"
)

// Default rule values
const (
	DefaultInitialAmount          = 300
	DefaultMaxRounds              = 1000
	DefaultLapBonus               = 100
	DefaultDemandingRentThreshold = 50
	DefaultCautiousReserve        = 80
)

// Rules holds the numbers that shape a game.
type Rules struct {
	InitialAmount          int
	MaxRounds              int
	LapBonus               int
	DemandingRentThreshold int
	CautiousReserve        int
}

// DefaultRules returns the standard rule set
func DefaultRules() Rules {
	return Rules{
		InitialAmount:          DefaultInitialAmount,
		MaxRounds:              DefaultMaxRounds,
		LapBonus:               DefaultLapBonus,
		DemandingRentThreshold: DefaultDemandingRentThreshold,
		CautiousReserve:        DefaultCautiousReserve,
	}
}

// RulesFromConfig reads the game section of a loaded configuration
func RulesFromConfig(cfg *config.Config) Rules {
	return Rules{
		InitialAmount:          cfg.Game.InitialAmount,
		MaxRounds:              cfg.Game.MaxRounds,
		LapBonus:               cfg.Game.LapBonus,
		DemandingRentThreshold: cfg.Game.Strategies.DemandingRentThreshold,
		CautiousReserve:        cfg.Game.Strategies.CautiousReserve,
	}
}

func (r Rules) Validate() error {
	if r.InitialAmount < 0 {
		return fmt.Errorf("initial amount must be non-negative, got %d", r.InitialAmount)
	}
	if r.MaxRounds < 1 {
		return fmt.Errorf("max rounds must be at least 1, got %d", r.MaxRounds)
	}
	if r.LapBonus < 0 {
		return fmt.Errorf("lap bonus must be non-negative, got %d", r.LapBonus)
	}
	return nil
}

// StrategyParams returns the strategy thresholds carried by the rules
func (r Rules) StrategyParams() core.StrategyParams {
	return core.StrategyParams{
		DemandingRentThreshold: r.DemandingRentThreshold,
		CautiousReserve:        r.CautiousReserve,
	}
}
