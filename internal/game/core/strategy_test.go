package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mitchelldurbincs/PropertyTradingSim/internal/testutil"
)

func mustStrategy(t *testing.T, kind StrategyKind, src RandomSource) Strategy {
	t.Helper()
	s, err := NewStrategy(kind, DefaultStrategyParams(), src)
	require.NoError(t, err)
	require.Equal(t, kind, s.Kind())
	return s
}

func TestStrategy_Impulsive(t *testing.T) {
	p := NewPlayer(0, mustStrategy(t, Impulsive, nil))
	p.Amount = 300

	for _, price := range []int{1, 100, 200, 1000} {
		assert.True(t, p.ShouldBuy(NewProperty(0, price)), "price %d", price)
	}
}

func TestStrategy_Demanding(t *testing.T) {
	p := NewPlayer(0, mustStrategy(t, Demanding, nil))
	p.Amount = 300

	assert.True(t, p.ShouldBuy(NewProperty(0, 510)))
	assert.False(t, p.ShouldBuy(NewProperty(0, 500)))
	assert.False(t, p.ShouldBuy(NewProperty(0, 490)))
}

func TestStrategy_Cautious(t *testing.T) {
	p := NewPlayer(0, mustStrategy(t, Cautious, nil))
	p.Amount = 300

	assert.True(t, p.ShouldBuy(NewProperty(0, 220)))
	assert.False(t, p.ShouldBuy(NewProperty(0, 221)))
}

func TestStrategy_CustomThresholds(t *testing.T) {
	params := StrategyParams{DemandingRentThreshold: 20, CautiousReserve: 0}

	demanding, err := NewStrategy(Demanding, params, nil)
	require.NoError(t, err)
	cautious, err := NewStrategy(Cautious, params, nil)
	require.NoError(t, err)

	p := NewPlayer(0, demanding)
	p.Amount = 210
	assert.True(t, demanding.ShouldBuy(p, NewProperty(0, 210)))
	assert.True(t, cautious.ShouldBuy(p, NewProperty(0, 210)))
	assert.False(t, cautious.ShouldBuy(p, NewProperty(0, 211)))
}

func TestStrategy_RandomFollowsSource(t *testing.T) {
	src := testutil.NewScriptedSource(1, 1, 0)
	p := NewPlayer(0, mustStrategy(t, Random, src))
	prop := NewProperty(0, 100)

	assert.True(t, p.ShouldBuy(prop))
	assert.True(t, p.ShouldBuy(prop))
	assert.False(t, p.ShouldBuy(prop))
	assert.Equal(t, 3, src.Calls())
}

func TestStrategy_RandomNeedsSource(t *testing.T) {
	_, err := NewStrategy(Random, DefaultStrategyParams(), nil)
	assert.Error(t, err)
}

func TestStrategy_UnknownKind(t *testing.T) {
	_, err := NewStrategy(StrategyKind(42), DefaultStrategyParams(), nil)
	assert.Error(t, err)
}

func TestStrategyKind_Labels(t *testing.T) {
	tests := []struct {
		kind  StrategyKind
		name  string
		label string
	}{
		{Impulsive, "impulsive", "Impulsive"},
		{Demanding, "demanding", "Demanding"},
		{Cautious, "cautious", "Cautious"},
		{Random, "random", "Random"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.name, tt.kind.String())
			assert.Equal(t, tt.label, tt.kind.Label())

			parsed, err := ParseStrategyKind(tt.label)
			require.NoError(t, err)
			assert.Equal(t, tt.kind, parsed)
		})
	}

	assert.Equal(t, "unknown(9)", StrategyKind(9).String())
}

func TestParseStrategyKind_Unknown(t *testing.T) {
	_, err := ParseStrategyKind("picky")
	assert.Error(t, err)
}
