package core

import "fmt"

const (
	DefaultDiceMin = 1
	DefaultDiceMax = 6
)

// Dice rolls a uniform value in [Min, Max].
type Dice struct {
	Min, Max int
	src      RandomSource
}

// NewDice creates a standard six-sided die.
func NewDice(src RandomSource) *Dice {
	return NewDiceRange(src, DefaultDiceMin, DefaultDiceMax)
}

// NewDiceRange creates a die with a custom inclusive range.
func NewDiceRange(src RandomSource, min, max int) *Dice {
	return &Dice{Min: min, Max: max, src: src}
}

// Validate rejects ranges that could move a player backwards or not at all.
func (d *Dice) Validate() error {
	if d.Min < 1 || d.Max < d.Min {
		return fmt.Errorf("range [%d, %d]: %w", d.Min, d.Max, ErrInvalidDice)
	}
	return nil
}

func (d *Dice) Roll() int {
	return IntRange(d.src, d.Min, d.Max)
}
