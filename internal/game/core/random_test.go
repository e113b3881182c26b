package core

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mitchelldurbincs/PropertyTradingSim/internal/testutil"
)

func TestIntRange_StaysInBounds(t *testing.T) {
	rng := testutil.NewTestRNG(7)
	seen := make(map[int]bool)

	for i := 0; i < 2000; i++ {
		v := IntRange(rng, 100, 250)
		assert.GreaterOrEqual(t, v, 100)
		assert.LessOrEqual(t, v, 250)
		seen[v] = true
	}
	assert.True(t, seen[100] || seen[250], "bounds should be reachable")
}

func TestIntRange_PanicsOnInvertedRange(t *testing.T) {
	assert.Panics(t, func() { IntRange(testutil.NewTestRNG(1), 5, 4) })
}

func TestDice_Roll(t *testing.T) {
	t.Run("six sided", func(t *testing.T) {
		dice := NewDice(testutil.NewTestRNG(12345))
		counts := make(map[int]int)
		for i := 0; i < 600; i++ {
			v := dice.Roll()
			assert.GreaterOrEqual(t, v, 1)
			assert.LessOrEqual(t, v, 6)
			counts[v]++
		}
		assert.Len(t, counts, 6)
	})

	t.Run("scripted", func(t *testing.T) {
		dice := NewDice(testutil.NewScriptedSource(0, 5, 2))
		assert.Equal(t, 1, dice.Roll())
		assert.Equal(t, 6, dice.Roll())
		assert.Equal(t, 3, dice.Roll())
	})

	t.Run("custom range", func(t *testing.T) {
		dice := NewDiceRange(testutil.NewScriptedSource(18), 1, 19)
		assert.Equal(t, 19, dice.Roll())
	})
}

func TestDice_Validate(t *testing.T) {
	src := testutil.NewScriptedSource(0)

	assert.NoError(t, NewDice(src).Validate())
	assert.NoError(t, NewDiceRange(src, 1, 1).Validate())
	assert.NoError(t, NewDiceRange(src, 2, 12).Validate())

	assert.ErrorIs(t, NewDiceRange(src, -1, 0).Validate(), ErrInvalidDice)
	assert.ErrorIs(t, NewDiceRange(src, 0, 6).Validate(), ErrInvalidDice)
	assert.ErrorIs(t, NewDiceRange(src, 6, 1).Validate(), ErrInvalidDice)
}

func TestCoin(t *testing.T) {
	src := testutil.NewScriptedSource(0, 1)
	assert.False(t, Coin(src))
	assert.True(t, Coin(src))
}
