package game

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/PropertyTradingSim/internal/game/core"
	"github.com/mitchelldurbincs/PropertyTradingSim/internal/game/events"
	"github.com/mitchelldurbincs/PropertyTradingSim/internal/game/rules"
	"github.com/mitchelldurbincs/PropertyTradingSim/internal/game/states"
)

// Config carries the per-game settings. Zero values fall back to defaults.
type Config struct {
	ID       string
	Rules    Rules
	Logger   zerolog.Logger
	EventBus *events.EventBus
}

// gameInitializer assembles a Game from its parts
type gameInitializer struct {
	config Config
	logger zerolog.Logger
}

// NewGame creates a game in the Created phase. The board, dice and players
// may be shared across games as long as those games never run concurrently.
func NewGame(board *core.Board, dice *core.Dice, players []*core.Player, src core.RandomSource, cfg Config) (*Game, error) {
	gi := &gameInitializer{config: cfg}
	gi.setupDefaults()

	if err := gi.validate(board, dice, players, src); err != nil {
		gi.logger.Error().Err(err).Msg("Refusing to create game")
		return nil, err
	}

	g := gi.createGame(board, dice, players, src)

	gi.logger.Debug().
		Int("players", len(players)).
		Int("board_size", board.Len()).
		Msg("Game created")

	return g, nil
}

// setupDefaults fills in missing configuration
func (gi *gameInitializer) setupDefaults() {
	if gi.config.ID == "" {
		gi.config.ID = uuid.NewString()
	}
	if gi.config.Rules == (Rules{}) {
		gi.config.Rules = DefaultRules()
	}
	gi.logger = gi.config.Logger.With().
		Str("component", "Game").
		Str("game_id", gi.config.ID).
		Logger()
}

func (gi *gameInitializer) validate(board *core.Board, dice *core.Dice, players []*core.Player, src core.RandomSource) error {
	if len(players) == 0 {
		return core.ErrInvalidRoster
	}
	for i, p := range players {
		if p == nil || p.Strategy == nil {
			return fmt.Errorf("player at seat %d has no strategy: %w", i, core.ErrInvalidRoster)
		}
	}
	if board == nil || board.Len() == 0 {
		return fmt.Errorf("board must have at least one property")
	}
	if dice == nil {
		return fmt.Errorf("dice must not be nil")
	}
	if err := dice.Validate(); err != nil {
		return err
	}
	if src == nil {
		return fmt.Errorf("random source must not be nil")
	}
	if err := gi.config.Rules.Validate(); err != nil {
		return fmt.Errorf("invalid rules: %w", err)
	}
	return nil
}

// createGame wires the game with its rule checker, state machine and turn processor
func (gi *gameInitializer) createGame(board *core.Board, dice *core.Dice, players []*core.Player, src core.RandomSource) *Game {
	roster := make([]*core.Player, len(players))
	copy(roster, players)

	gameContext := states.NewGameContext(gi.config.ID, len(roster), gi.logger)

	// A nil *EventBus must not become a non-nil Publisher
	var publisher events.Publisher
	if gi.config.EventBus != nil {
		publisher = gi.config.EventBus
	}

	g := &Game{
		id:           gi.config.ID,
		board:        board,
		dice:         dice,
		src:          src,
		rules:        gi.config.Rules,
		logger:       gi.logger,
		eventBus:     gi.config.EventBus,
		winCondition: rules.NewWinConditionChecker(gi.logger, gi.config.Rules.MaxRounds),
		stateMachine: states.NewStateMachine(gameContext, publisher),
		roster:       roster,
	}
	g.turnProcessor = NewTurnProcessor(g)
	return g
}
