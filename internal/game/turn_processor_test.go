package game

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mitchelldurbincs/PropertyTradingSim/internal/game/core"
	"github.com/mitchelldurbincs/PropertyTradingSim/internal/game/events"
	"github.com/mitchelldurbincs/PropertyTradingSim/internal/testutil"
)

func TestTurnProcessor_PlayRound_BankruptcyMidRound(t *testing.T) {
	// Rolls 1, 2, 3 in seating order
	src := testutil.NewScriptedSource(0, 1, 2)
	players := newTestPlayers(t, src, core.Impulsive, core.Impulsive, core.Impulsive)
	g := newTestGame(t, core.NewBoard(flatPrices(20, 100)), src, players, Config{})
	require.NoError(t, g.Setup())
	require.NoError(t, g.Start())

	p0, p1, p2 := players[0], players[1], players[2]
	p0.Amount = 5
	g.Board().At(1).Owner = p2

	require.NoError(t, g.turnProcessor.PlayRound(context.Background()))

	assert.Equal(t, 1, g.Round())
	assert.Equal(t, []*core.Player{p1, p2}, g.ActivePlayers())

	// The bankrupt player's rent payment stands
	assert.Equal(t, 1, p0.Position)
	assert.Equal(t, -5, p0.Amount)

	// Everyone after the bankrupt player still played
	assert.Equal(t, 2, p1.Position)
	assert.Equal(t, 200, p1.Amount)
	assert.Equal(t, 3, p2.Position)
	assert.Equal(t, 210, p2.Amount)
	assert.Equal(t, 3, src.Calls())
}

func TestTurnProcessor_PlayRound_SkipsPlayerRemovedThisRound(t *testing.T) {
	src := testutil.NewScriptedSource(0, 1)
	bus := events.NewEventBus(testutil.NopLogger())
	players := newTestPlayers(t, src, core.Demanding, core.Demanding, core.Demanding)
	g := newTestGame(t, core.NewBoard(flatPrices(20, 100)), src, players, Config{EventBus: bus})

	p0, p1, p2 := players[0], players[1], players[2]
	bus.SubscribeFunc(events.TypeDiceRolled, func(e events.Event) {
		if e.(*events.DiceRolledEvent).PlayerID == p0.ID {
			p2.Amount = -1
			g.OnPlayerBankrupt(p2)
		}
	})

	require.NoError(t, g.Setup())
	require.NoError(t, g.Start())
	require.NoError(t, g.turnProcessor.PlayRound(context.Background()))

	assert.Equal(t, 1, p0.Position)
	assert.Equal(t, 2, p1.Position)
	assert.Equal(t, 0, p2.Position, "removed player must not take a turn")
	assert.Equal(t, 2, src.Calls())
}

func TestTurnProcessor_PlayRound_Validation(t *testing.T) {
	src := testutil.NewScriptedSource(0)

	t.Run("not running", func(t *testing.T) {
		players := newTestPlayers(t, src, core.Impulsive, core.Impulsive)
		g := newTestGame(t, core.NewBoard(flatPrices(20, 100)), src, players, Config{})
		require.NoError(t, g.Setup())

		err := g.turnProcessor.PlayRound(context.Background())
		assert.ErrorIs(t, err, core.ErrInvalidPhase)
	})

	t.Run("game already decided", func(t *testing.T) {
		players := newTestPlayers(t, src, core.Impulsive, core.Impulsive)
		g := newTestGame(t, core.NewBoard(flatPrices(20, 100)), src, players, Config{})
		require.NoError(t, g.Setup())
		require.NoError(t, g.Start())
		players[0].Amount = -1
		g.OnPlayerBankrupt(players[0])

		err := g.turnProcessor.PlayRound(context.Background())
		assert.ErrorIs(t, err, core.ErrGameOver)
	})
}

func TestTurnProcessor_PlayTurn(t *testing.T) {
	// Roll of 6 from position 16 passes start and lands on 2
	src := testutil.NewScriptedSource(5)
	players := newTestPlayers(t, src, core.Impulsive, core.Impulsive)
	g := newTestGame(t, core.NewBoard(flatPrices(20, 120)), src, players, Config{})
	require.NoError(t, g.Setup())
	require.NoError(t, g.Start())

	p := players[0]
	p.Position = 16

	require.NoError(t, g.turnProcessor.PlayTurn(p))

	assert.Equal(t, 2, p.Position)
	assert.Equal(t, DefaultInitialAmount+DefaultLapBonus-120, p.Amount)
	assert.Same(t, p, g.Board().At(2).Owner)
}

func BenchmarkGameRun(b *testing.B) {
	rng := testutil.NewTestRNG(12345)
	board := core.NewBoard([]int{
		120, 180, 240, 110, 150, 200, 250, 130, 170, 210,
		100, 160, 220, 140, 190, 230, 115, 175, 205, 245,
	})
	dice := core.NewDice(rng)

	players := make([]*core.Player, len(core.AllStrategyKinds))
	for i, kind := range core.AllStrategyKinds {
		strategy, err := core.NewStrategy(kind, core.DefaultStrategyParams(), rng)
		if err != nil {
			b.Fatal(err)
		}
		players[i] = core.NewPlayer(i, strategy)
	}

	g, err := NewGame(board, dice, players, rng, Config{ID: "bench", Logger: testutil.NopLogger()})
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := g.Run(context.Background()); err != nil {
			b.Fatal(err)
		}
	}
	b.ReportMetric(float64(g.Round()), "last_rounds")
}
