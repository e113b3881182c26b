package boardgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mitchelldurbincs/PropertyTradingSim/internal/testutil"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	assert.Equal(t, 20, config.PropertyCount)
	assert.Equal(t, 100, config.MinPrice)
	assert.Equal(t, 250, config.MaxPrice)
	assert.NoError(t, config.Validate())
}

func TestNewGenerator(t *testing.T) {
	config := DefaultConfig()
	rng := testutil.NewTestRNG(12345)
	generator := NewGenerator(config, rng)

	require.NotNil(t, generator)
	assert.Equal(t, config, generator.config)
	assert.Same(t, rng, generator.src)
}

func TestGenerateBoard(t *testing.T) {
	t.Run("prices within range", func(t *testing.T) {
		generator := NewGenerator(DefaultConfig(), testutil.NewTestRNG(12345))

		board, err := generator.GenerateBoard()
		require.NoError(t, err)
		require.Equal(t, 20, board.Len())

		for i, prop := range board.Properties {
			assert.Equal(t, i, prop.Index)
			assert.GreaterOrEqual(t, prop.Price, 100)
			assert.LessOrEqual(t, prop.Price, 250)
			assert.Equal(t, prop.Price/10, prop.Rent)
			assert.True(t, prop.IsAvailable())
		}
	})

	t.Run("scripted draws map to prices in order", func(t *testing.T) {
		config := Config{PropertyCount: 3, MinPrice: 100, MaxPrice: 250}
		generator := NewGenerator(config, testutil.NewScriptedSource(0, 150, 42))

		board, err := generator.GenerateBoard()
		require.NoError(t, err)
		assert.Equal(t, 100, board.At(0).Price)
		assert.Equal(t, 250, board.At(1).Price)
		assert.Equal(t, 142, board.At(2).Price)
	})

	t.Run("same seed same board", func(t *testing.T) {
		a, err := NewGenerator(DefaultConfig(), testutil.NewTestRNG(99)).GenerateBoard()
		require.NoError(t, err)
		b, err := NewGenerator(DefaultConfig(), testutil.NewTestRNG(99)).GenerateBoard()
		require.NoError(t, err)
		assert.Equal(t, a.String(), b.String())
	})
}

func TestGenerateBoard_InvalidConfig(t *testing.T) {
	tests := []struct {
		name   string
		config Config
	}{
		{"no properties", Config{PropertyCount: 0, MinPrice: 100, MaxPrice: 250}},
		{"zero min price", Config{PropertyCount: 20, MinPrice: 0, MaxPrice: 250}},
		{"inverted range", Config{PropertyCount: 20, MinPrice: 300, MaxPrice: 250}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewGenerator(tt.config, testutil.NewTestRNG(1)).GenerateBoard()
			assert.Error(t, err)
		})
	}
}
