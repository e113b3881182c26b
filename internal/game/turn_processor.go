package game

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/PropertyTradingSim/internal/game/core"
	"github.com/mitchelldurbincs/PropertyTradingSim/internal/game/events"
)

// TurnProcessor handles the orchestration of rounds and turns
type TurnProcessor struct {
	game   *Game
	logger zerolog.Logger
}

// NewTurnProcessor creates a new turn processor
func NewTurnProcessor(g *Game) *TurnProcessor {
	return &TurnProcessor{
		game:   g,
		logger: g.logger,
	}
}

// PlayRound gives every player active at the start of the round one turn.
// A player removed earlier in the same round is skipped.
func (tp *TurnProcessor) PlayRound(ctx context.Context) error {
	if err := tp.checkContext(ctx); err != nil {
		return core.WrapGameStateError(tp.game.round, "round", fmt.Errorf("context cancelled: %w", err))
	}
	if err := tp.validateGameState(); err != nil {
		return err
	}

	g := tp.game
	snapshot := make([]*core.Player, len(g.active))
	copy(snapshot, g.active)
	bankruptBefore := g.bankruptcies

	if g.wants(events.TypeRoundStarted) {
		g.eventBus.Publish(events.NewRoundStartedEvent(g.id, g.round+1, len(snapshot)))
	}

	for _, p := range snapshot {
		if !g.isActive(p) {
			continue
		}
		if err := tp.PlayTurn(p); err != nil {
			return err
		}
	}

	g.round++

	if g.wants(events.TypeRoundEnded) {
		g.eventBus.Publish(events.NewRoundEndedEvent(g.id, g.round, len(g.active), g.bankruptcies-bankruptBefore))
	}

	if e := tp.logger.Trace(); e.Enabled() {
		e.Int("round", g.round).Int("active_players", len(g.active)).Msg("Round finished")
	}
	return nil
}

// PlayTurn rolls, moves and resolves the landing square for p, then checks
// for bankruptcy. Effects already applied are kept when p goes bankrupt.
func (tp *TurnProcessor) PlayTurn(p *core.Player) error {
	g := tp.game

	roll := g.dice.Roll()
	if g.wants(events.TypeDiceRolled) {
		g.eventBus.Publish(events.NewDiceRolledEvent(g.id, p.ID, roll, g.round+1))
	}

	g.MovePlayer(p, roll)

	if err := g.ExecutePlayerTurn(p); err != nil {
		tp.logger.Error().Err(err).Int("player_id", p.ID).Msg("Turn failed")
		return err
	}

	if p.Bankrupt() {
		g.OnPlayerBankrupt(p)
	}
	return nil
}

// checkContext checks if the context is cancelled
func (tp *TurnProcessor) checkContext(ctx context.Context) error {
	select {
	case <-ctx.Done():
		tp.logger.Warn().
			Err(ctx.Err()).
			Int("round", tp.game.round).
			Msg("Game cancelled between rounds")
		return ctx.Err()
	default:
		return nil
	}
}

// validateGameState ensures the game can play a round
func (tp *TurnProcessor) validateGameState() error {
	phase := tp.game.Phase()
	if !phase.CanPlayRounds() {
		tp.logger.Warn().
			Str("current_phase", phase.String()).
			Int("round", tp.game.round).
			Msg("Attempted to play a round outside the running phase")
		return core.WrapGameStateError(tp.game.round, phase.String(), core.ErrInvalidPhase)
	}
	if len(tp.game.active) <= 1 {
		return core.WrapGameStateError(tp.game.round, phase.String(), core.ErrGameOver)
	}
	return nil
}
