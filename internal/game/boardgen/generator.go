package boardgen

import (
	"fmt"

	"github.com/mitchelldurbincs/PropertyTradingSim/internal/game/core"
)

// Config holds configuration for board generation
type Config struct {
	PropertyCount int
	MinPrice      int
	MaxPrice      int
}

// DefaultConfig returns the classic 20-cell board priced between 100 and 250
func DefaultConfig() Config {
	return Config{
		PropertyCount: 20,
		MinPrice:      100,
		MaxPrice:      250,
	}
}

// Validate checks the configuration can produce a playable board
func (c Config) Validate() error {
	if c.PropertyCount <= 0 {
		return fmt.Errorf("property count must be positive, got %d", c.PropertyCount)
	}
	if c.MinPrice <= 0 {
		return fmt.Errorf("min price must be positive, got %d", c.MinPrice)
	}
	if c.MaxPrice < c.MinPrice {
		return fmt.Errorf("max price %d is below min price %d", c.MaxPrice, c.MinPrice)
	}
	return nil
}

// Generator handles board generation with deterministic RNG
type Generator struct {
	config Config
	src    core.RandomSource
}

// NewGenerator creates a new board generator
func NewGenerator(config Config, src core.RandomSource) *Generator {
	return &Generator{
		config: config,
		src:    src,
	}
}

// GenerateBoard draws one uniform price per cell, in cell order.
func (g *Generator) GenerateBoard() (*core.Board, error) {
	if err := g.config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid board config: %w", err)
	}

	prices := make([]int, g.config.PropertyCount)
	for i := range prices {
		prices[i] = core.IntRange(g.src, g.config.MinPrice, g.config.MaxPrice)
	}
	return core.NewBoard(prices), nil
}
