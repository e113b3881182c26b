package core

import (
	"fmt"
	"strings"
)

// StrategyKind tags a buying policy so reports never depend on function identity.
type StrategyKind int

const (
	Impulsive StrategyKind = iota
	Demanding
	Cautious
	Random
)

// AllStrategyKinds lists every kind in reporting order.
var AllStrategyKinds = []StrategyKind{Impulsive, Demanding, Cautious, Random}

func (k StrategyKind) String() string {
	switch k {
	case Impulsive:
		return "impulsive"
	case Demanding:
		return "demanding"
	case Cautious:
		return "cautious"
	case Random:
		return "random"
	default:
		return fmt.Sprintf("unknown(%d)", int(k))
	}
}

// Label is the title-cased name used in reports.
func (k StrategyKind) Label() string {
	s := k.String()
	return strings.ToUpper(s[:1]) + s[1:]
}

// ParseStrategyKind accepts a kind name in any case.
func ParseStrategyKind(s string) (StrategyKind, error) {
	for _, k := range AllStrategyKinds {
		if strings.EqualFold(strings.TrimSpace(s), k.String()) {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown strategy %q", s)
}

// Strategy decides whether a player buys an available property it can afford.
type Strategy interface {
	Kind() StrategyKind
	ShouldBuy(player *Player, prop *Property) bool
}

// StrategyParams holds the thresholds of the parameterised policies.
type StrategyParams struct {
	DemandingRentThreshold int
	CautiousReserve        int
}

// DefaultStrategyParams returns the classic thresholds: rent above 50, reserve of 80.
func DefaultStrategyParams() StrategyParams {
	return StrategyParams{
		DemandingRentThreshold: 50,
		CautiousReserve:        80,
	}
}

type impulsiveStrategy struct{}

func (impulsiveStrategy) Kind() StrategyKind {
	return Impulsive
}

func (impulsiveStrategy) ShouldBuy(*Player, *Property) bool {
	return true
}

type demandingStrategy struct {
	rentThreshold int
}

func (demandingStrategy) Kind() StrategyKind { return Demanding }

func (s demandingStrategy) ShouldBuy(_ *Player, prop *Property) bool {
	return prop.Rent > s.rentThreshold
}

type cautiousStrategy struct {
	reserve int
}

func (cautiousStrategy) Kind() StrategyKind { return Cautious }

func (s cautiousStrategy) ShouldBuy(player *Player, prop *Property) bool {
	return player.Amount-prop.Price >= s.reserve
}

type randomStrategy struct {
	src RandomSource
}

func (randomStrategy) Kind() StrategyKind { return Random }

func (s randomStrategy) ShouldBuy(*Player, *Property) bool {
	return Coin(s.src)
}

// NewStrategy builds the policy for kind. src is only consulted by Random.
func NewStrategy(kind StrategyKind, params StrategyParams, src RandomSource) (Strategy, error) {
	switch kind {
	case Impulsive:
		return impulsiveStrategy{}, nil
	case Demanding:
		return demandingStrategy{rentThreshold: params.DemandingRentThreshold}, nil
	case Cautious:
		return cautiousStrategy{reserve: params.CautiousReserve}, nil
	case Random:
		if src == nil {
			return nil, fmt.Errorf("random strategy needs a random source")
		}
		return randomStrategy{src: src}, nil
	default:
		return nil, fmt.Errorf("unknown strategy kind %d", int(kind))
	}
}
