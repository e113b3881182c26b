package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewProperty_RentIsTenPercentFloored(t *testing.T) {
	tests := []struct {
		price int
		rent  int
	}{
		{100, 10},
		{109, 10},
		{110, 11},
		{249, 24},
		{250, 25},
		{1, 0},
	}

	for _, tt := range tests {
		prop := NewProperty(0, tt.price)
		assert.Equal(t, tt.rent, prop.Rent, "price %d", tt.price)
		assert.True(t, prop.IsAvailable())
	}
}

func TestNewProperty_RejectsNonPositivePrice(t *testing.T) {
	assert.Panics(t, func() { NewProperty(0, 0) })
	assert.Panics(t, func() { NewProperty(0, -5) })
}

func TestProperty_RentDoesNotChangeWithOwnership(t *testing.T) {
	prop := NewProperty(3, 180)
	p := NewPlayer(0, impulsiveStrategy{})
	p.Amount = 300

	assert.NoError(t, p.Buy(prop))
	assert.Equal(t, 18, prop.Rent)

	prop.Owner = nil
	assert.Equal(t, 18, prop.Rent)
	assert.Equal(t, "#3 $180/18 [-]", prop.String())
}
