package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newImpulsivePlayer(id, amount int) *Player {
	p := NewPlayer(id, impulsiveStrategy{})
	p.Amount = amount
	return p
}

func TestPlayer_HasAmountToBuy(t *testing.T) {
	p := newImpulsivePlayer(0, 100)

	assert.True(t, p.HasAmountToBuy(NewProperty(0, 100)))
	assert.False(t, p.HasAmountToBuy(NewProperty(0, 101)))
}

func TestPlayer_Buy(t *testing.T) {
	t.Run("succeeds with exact amount", func(t *testing.T) {
		p := newImpulsivePlayer(0, 100)
		prop := NewProperty(0, 100)

		require.NoError(t, p.Buy(prop))
		assert.Equal(t, 0, p.Amount)
		assert.Same(t, p, prop.Owner)
		assert.False(t, prop.IsAvailable())
	})

	t.Run("fails without enough amount", func(t *testing.T) {
		p := newImpulsivePlayer(0, 99)
		prop := NewProperty(0, 100)

		err := p.Buy(prop)
		assert.ErrorIs(t, err, ErrInsufficientFunds)
		assert.Equal(t, 99, p.Amount)
		assert.Nil(t, prop.Owner)
	})

	t.Run("fails on owned property even when affordable", func(t *testing.T) {
		owner := newImpulsivePlayer(1, 300)
		p := newImpulsivePlayer(0, 300)
		prop := NewProperty(0, 100)
		prop.Owner = owner

		err := p.Buy(prop)
		assert.ErrorIs(t, err, ErrPropertyUnavailable)
		assert.Equal(t, 300, p.Amount)
		assert.Same(t, owner, prop.Owner)
	})

	t.Run("availability is checked before affordability", func(t *testing.T) {
		owner := newImpulsivePlayer(1, 300)
		p := newImpulsivePlayer(0, 10)
		prop := NewProperty(0, 100)
		prop.Owner = owner

		err := p.Buy(prop)
		assert.ErrorIs(t, err, ErrPropertyUnavailable)
		assert.NotErrorIs(t, err, ErrInsufficientFunds)
	})
}

func TestPlayer_PayRent(t *testing.T) {
	owner := newImpulsivePlayer(1, 300)
	p := newImpulsivePlayer(0, 100)
	prop := NewProperty(0, 100)
	prop.Owner = owner

	p.PayRent(prop)

	assert.Equal(t, 90, p.Amount)
	assert.Equal(t, 310, owner.Amount)
}

func TestPlayer_PayRentCanGoNegative(t *testing.T) {
	owner := newImpulsivePlayer(1, 0)
	p := newImpulsivePlayer(0, 5)
	prop := NewProperty(0, 250)
	prop.Owner = owner

	p.PayRent(prop)

	assert.Equal(t, -20, p.Amount)
	assert.Equal(t, 25, owner.Amount)
	assert.True(t, p.Bankrupt())
}

func TestPlayer_PayRentOnAvailablePropertyPanics(t *testing.T) {
	p := newImpulsivePlayer(0, 100)
	assert.Panics(t, func() { p.PayRent(NewProperty(0, 100)) })
}

func TestPlayer_Bankrupt(t *testing.T) {
	tests := []struct {
		amount   int
		bankrupt bool
	}{
		{amount: 10, bankrupt: false},
		{amount: 0, bankrupt: false},
		{amount: -1, bankrupt: true},
	}

	for _, tt := range tests {
		p := newImpulsivePlayer(0, tt.amount)
		assert.Equal(t, tt.bankrupt, p.Bankrupt(), "amount %d", tt.amount)
	}
}

func TestPlayer_Reset(t *testing.T) {
	p := newImpulsivePlayer(0, -40)
	p.Position = 13

	p.Reset(300)

	assert.Equal(t, 300, p.Amount)
	assert.Equal(t, 0, p.Position)
}

func TestPlayer_Kind(t *testing.T) {
	assert.Equal(t, Impulsive, newImpulsivePlayer(0, 0).Kind())
	assert.Equal(t, StrategyKind(-1), NewPlayer(1, nil).Kind())
}
