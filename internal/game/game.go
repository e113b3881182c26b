package game

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/PropertyTradingSim/internal/game/core"
	"github.com/mitchelldurbincs/PropertyTradingSim/internal/game/events"
	"github.com/mitchelldurbincs/PropertyTradingSim/internal/game/rules"
	"github.com/mitchelldurbincs/PropertyTradingSim/internal/game/states"
)

// Game is a single playthrough. It is not safe for concurrent use, and two
// games sharing a board must not run at the same time.
type Game struct {
	id     string
	board  *core.Board
	dice   *core.Dice
	src    core.RandomSource
	rules  Rules
	logger zerolog.Logger

	eventBus      *events.EventBus
	winCondition  *rules.WinConditionChecker
	stateMachine  *states.StateMachine
	turnProcessor *TurnProcessor

	roster  []*core.Player // construction order
	players []*core.Player // seating after setup, used for tie-breaks
	active  []*core.Player

	winner       *core.Player
	round        int
	timeout      bool
	bankruptcies int
}

// Result is the outcome of a finished game
type Result struct {
	GameID         string
	WinnerID       int
	WinnerStrategy core.StrategyKind
	Rounds         int
	Timeout        bool
	FinalAmounts   map[int]int
}

// Setup resets balances, positions and board ownership, then shuffles the
// seating. It may be called on a new or a finished game.
func (g *Game) Setup() error {
	if err := g.stateMachine.TransitionTo(states.PhaseSetUp, "setup"); err != nil {
		return core.WrapGameStateError(g.round, g.Phase().String(), err)
	}

	for _, p := range g.roster {
		p.Reset(g.rules.InitialAmount)
	}
	g.board.ResetOwnership()

	g.players = make([]*core.Player, len(g.roster))
	copy(g.players, g.roster)
	g.src.Shuffle(len(g.players), func(i, j int) {
		g.players[i], g.players[j] = g.players[j], g.players[i]
	})

	g.active = make([]*core.Player, len(g.players))
	copy(g.active, g.players)

	g.winner = nil
	g.round = 0
	g.timeout = false
	g.bankruptcies = 0

	if g.wants(events.TypeGameStarted) {
		seating := make([]int, len(g.players))
		for i, p := range g.players {
			seating[i] = p.ID
		}
		g.eventBus.Publish(events.NewGameStartedEvent(g.id, seating, g.board.Len()))
	}

	return nil
}

// Start moves a set-up game into play
func (g *Game) Start() error {
	if err := g.stateMachine.TransitionTo(states.PhaseRunning, "first round"); err != nil {
		return core.WrapGameStateError(g.round, g.Phase().String(), err)
	}
	return nil
}

// Run plays a complete game: setup, rounds until ShouldContinue says stop,
// then Finish. ctx is checked between rounds.
func (g *Game) Run(ctx context.Context) error {
	if err := g.Setup(); err != nil {
		return err
	}
	if err := g.Start(); err != nil {
		return err
	}

	for g.ShouldContinue() {
		if err := g.turnProcessor.PlayRound(ctx); err != nil {
			return err
		}
	}

	return g.Finish()
}

// MovePlayer advances p by roll and credits the lap bonus for every pass over
// the start square. Returns the number of laps credited.
func (g *Game) MovePlayer(p *core.Player, roll int) int {
	size := g.board.Len()
	target := p.Position + roll
	if target < size {
		p.Position = target
		return 0
	}

	p.Position = target % size
	laps := (p.Position+roll)/size + 1
	bonus := laps * g.rules.LapBonus
	p.Amount += bonus

	if g.wants(events.TypeLapCompleted) {
		g.eventBus.Publish(events.NewLapCompletedEvent(g.id, p.ID, laps, bonus, g.round+1))
	}
	return laps
}

// ExecutePlayerTurn resolves the property p is standing on: buy it when it is
// free, affordable and the strategy agrees, or pay rent when it is owned.
// Rent is paid even on one's own property, which nets to zero.
func (g *Game) ExecutePlayerTurn(p *core.Player) error {
	prop := g.board.At(p.Position)

	if prop.IsAvailable() {
		if !p.HasAmountToBuy(prop) || !p.ShouldBuy(prop) {
			return nil
		}
		if err := p.Buy(prop); err != nil {
			return core.NewGameError(g.round+1, p.ID, "execute turn", err)
		}
		if g.wants(events.TypePropertyBought) {
			g.eventBus.Publish(events.NewPropertyBoughtEvent(g.id, p.ID, prop.Index, prop.Price, g.round+1))
		}
		return nil
	}

	owner := prop.Owner
	p.PayRent(prop)
	if g.wants(events.TypeRentPaid) {
		g.eventBus.Publish(events.NewRentPaidEvent(g.id, p.ID, owner.ID, prop.Index, prop.Rent, g.round+1))
	}
	return nil
}

// OnPlayerBankrupt removes p from the active players and releases every
// property it owned. Calling it again for the same player is a no-op.
func (g *Game) OnPlayerBankrupt(p *core.Player) {
	idx := -1
	for i, ap := range g.active {
		if ap == p {
			idx = i
			break
		}
	}
	if idx < 0 {
		return
	}

	g.active = append(g.active[:idx], g.active[idx+1:]...)
	released := g.board.ReleaseOwnedBy(p)
	g.bankruptcies++
	rank := len(g.active) + 1

	g.logger.Debug().
		Int("player_id", p.ID).
		Int("amount", p.Amount).
		Int("released", released).
		Int("rank", rank).
		Msg("Player went bankrupt")

	if g.wants(events.TypePlayerBankrupt) {
		g.eventBus.Publish(events.NewPlayerBankruptEvent(g.id, p.ID, p.Amount, released, rank, g.round+1))
	}
}

// ShouldContinue reports whether another round is played. Hitting the round
// cap with more than one active player marks the game as timed out.
func (g *Game) ShouldContinue() bool {
	cont, timeout := g.winCondition.ShouldContinue(len(g.active), g.round)
	if timeout {
		g.timeout = true
	}
	return cont
}

// Finish resolves the winner and ends the game. It is idempotent.
func (g *Game) Finish() error {
	if g.Phase() == states.PhaseFinished {
		return nil
	}
	if !g.Phase().CanPlayRounds() {
		return core.WrapGameStateError(g.round, g.Phase().String(), core.ErrInvalidPhase)
	}

	g.winner = g.winCondition.DetermineWinner(g.active, g.players)

	gc := g.stateMachine.GetContext()
	gc.Round = g.round
	gc.Timeout = g.timeout
	if g.winner != nil {
		gc.Winner = g.winner.ID
	}
	elapsed := gc.GetElapsedTime()

	if err := g.stateMachine.TransitionTo(states.PhaseFinished, g.finishReason()); err != nil {
		return core.WrapGameStateError(g.round, g.Phase().String(), err)
	}

	if g.wants(events.TypeGameEnded) {
		g.eventBus.Publish(events.NewGameEndedEvent(
			g.id,
			g.winner.ID,
			g.winner.Kind().String(),
			g.round,
			g.timeout,
			elapsed,
		))
	}
	return nil
}

func (g *Game) finishReason() string {
	if g.timeout {
		return "round cap reached"
	}
	return "one player left"
}

// wants reports whether an event of eventType has any listener
func (g *Game) wants(eventType string) bool {
	return g.eventBus != nil && g.eventBus.Wants(eventType)
}

// isActive reports whether p is still in the game
func (g *Game) isActive(p *core.Player) bool {
	for _, ap := range g.active {
		if ap == p {
			return true
		}
	}
	return false
}

// Public accessors
func (g *Game) ID() string              { return g.id }
func (g *Game) Board() *core.Board      { return g.board }
func (g *Game) Rules() Rules            { return g.rules }
func (g *Game) Round() int              { return g.round }
func (g *Game) Timeout() bool           { return g.timeout }
func (g *Game) Winner() *core.Player    { return g.winner }
func (g *Game) Phase() states.GamePhase { return g.stateMachine.CurrentPhase() }

// Players returns the seating order fixed by the last Setup
func (g *Game) Players() []*core.Player {
	out := make([]*core.Player, len(g.players))
	copy(out, g.players)
	return out
}

// ActivePlayers returns the players that have not gone bankrupt
func (g *Game) ActivePlayers() []*core.Player {
	out := make([]*core.Player, len(g.active))
	copy(out, g.active)
	return out
}

// Result summarizes a finished game
func (g *Game) Result() (Result, error) {
	if g.Phase() != states.PhaseFinished {
		return Result{}, fmt.Errorf("result requested in %s phase: %w", g.Phase(), core.ErrInvalidPhase)
	}

	res := Result{
		GameID:         g.id,
		WinnerID:       -1,
		WinnerStrategy: core.StrategyKind(-1),
		Rounds:         g.round,
		Timeout:        g.timeout,
		FinalAmounts:   make(map[int]int, len(g.players)),
	}
	if g.winner != nil {
		res.WinnerID = g.winner.ID
		res.WinnerStrategy = g.winner.Kind()
	}
	for _, p := range g.players {
		res.FinalAmounts[p.ID] = p.Amount
	}
	return res, nil
}
