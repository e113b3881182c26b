package simulation

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/exp/rand"

	"github.com/mitchelldurbincs/PropertyTradingSim/internal/config"
	"github.com/mitchelldurbincs/PropertyTradingSim/internal/game"
	"github.com/mitchelldurbincs/PropertyTradingSim/internal/game/boardgen"
	"github.com/mitchelldurbincs/PropertyTradingSim/internal/game/core"
	"github.com/mitchelldurbincs/PropertyTradingSim/internal/game/events"
)

// Config describes a batch of games
type Config struct {
	Iterations        int
	Seed              int64
	Strategies        []core.StrategyKind
	FreshBoardPerGame bool
	Board             boardgen.Config
	DiceMin           int
	DiceMax           int
	Rules             game.Rules
}

// DefaultConfig returns a 300 game batch with one player per strategy
func DefaultConfig() Config {
	strategies := make([]core.StrategyKind, len(core.AllStrategyKinds))
	copy(strategies, core.AllStrategyKinds)
	return Config{
		Iterations: 300,
		Strategies: strategies,
		Board:      boardgen.DefaultConfig(),
		DiceMin:    core.DefaultDiceMin,
		DiceMax:    core.DefaultDiceMax,
		Rules:      game.DefaultRules(),
	}
}

// FromAppConfig builds a batch config from the loaded application config
func FromAppConfig(c *config.Config) (Config, error) {
	kinds, err := c.StrategyKinds()
	if err != nil {
		return Config{}, err
	}
	cfg := Config{
		Iterations:        c.Simulation.Iterations,
		Seed:              c.Simulation.Seed,
		Strategies:        kinds,
		FreshBoardPerGame: c.Simulation.FreshBoardPerGame,
		Board: boardgen.Config{
			PropertyCount: c.Board.PropertyCount,
			MinPrice:      c.Board.MinPrice,
			MaxPrice:      c.Board.MaxPrice,
		},
		DiceMin: c.Dice.Min,
		DiceMax: c.Dice.Max,
		Rules:   game.RulesFromConfig(c),
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	if c.Iterations < 1 {
		return fmt.Errorf("iterations must be at least 1, got %d", c.Iterations)
	}
	if len(c.Strategies) == 0 {
		return fmt.Errorf("at least one strategy is required: %w", core.ErrInvalidRoster)
	}
	if err := c.Board.Validate(); err != nil {
		return fmt.Errorf("invalid board config: %w", err)
	}
	if c.DiceMin < 1 || c.DiceMax < c.DiceMin {
		return fmt.Errorf("invalid dice range [%d,%d]", c.DiceMin, c.DiceMax)
	}
	if err := c.Rules.Validate(); err != nil {
		return fmt.Errorf("invalid rules: %w", err)
	}
	return nil
}

// Option configures a Runner
type Option func(*Runner)

// WithEventBus publishes every game's events on bus
func WithEventBus(bus *events.EventBus) Option {
	return func(r *Runner) {
		r.eventBus = bus
	}
}

// WithGameHook calls fn after each finished game
func WithGameHook(fn func(game.Result)) Option {
	return func(r *Runner) {
		r.onGame = fn
	}
}

// Runner plays a batch of games one after another
type Runner struct {
	config     Config
	logger     zerolog.Logger
	gameLogger zerolog.Logger
	eventBus   *events.EventBus
	onGame     func(game.Result)
}

// NewRunner creates a runner for a validated config
func NewRunner(cfg Config, logger zerolog.Logger, opts ...Option) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	r := &Runner{
		config:     cfg,
		logger:     logger.With().Str("component", "SimulationRunner").Logger(),
		gameLogger: logger,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Run plays Iterations games. All randomness comes from a single source
// seeded with Seed, so equal configs give equal results. The board and dice
// are shared by every game unless FreshBoardPerGame is set; games never
// overlap.
func (r *Runner) Run(ctx context.Context) (*Results, error) {
	start := time.Now()
	rng := rand.New(rand.NewSource(uint64(r.config.Seed)))

	results := &Results{
		BatchID:    uuid.NewString(),
		Seed:       r.config.Seed,
		Strategies: r.config.Strategies,
		Games:      make([]game.Result, 0, r.config.Iterations),
	}
	logger := r.logger.With().Str("batch_id", results.BatchID).Logger()

	generator := boardgen.NewGenerator(r.config.Board, rng)
	board, err := generator.GenerateBoard()
	if err != nil {
		return nil, fmt.Errorf("board generation failed: %w", err)
	}
	dice := core.NewDiceRange(rng, r.config.DiceMin, r.config.DiceMax)

	logger.Info().
		Int("iterations", r.config.Iterations).
		Int64("seed", r.config.Seed).
		Int("players", len(r.config.Strategies)).
		Bool("fresh_board_per_game", r.config.FreshBoardPerGame).
		Msg("Starting simulation")

	for i := 0; i < r.config.Iterations; i++ {
		select {
		case <-ctx.Done():
			logger.Warn().Err(ctx.Err()).Int("completed", i).Msg("Simulation cancelled")
			return nil, ctx.Err()
		default:
		}

		if r.config.FreshBoardPerGame && i > 0 {
			if board, err = generator.GenerateBoard(); err != nil {
				return nil, fmt.Errorf("board generation failed: %w", err)
			}
		}

		res, err := r.playGame(ctx, board, dice, rng)
		if err != nil {
			return nil, fmt.Errorf("game %d: %w", i+1, err)
		}
		results.Games = append(results.Games, res)

		if r.onGame != nil {
			r.onGame(res)
		}
	}

	results.Duration = time.Since(start)

	logger.Info().
		Int("games", results.Count()).
		Int("timeouts", results.TimeoutCount()).
		Float64("avg_rounds", results.AverageRounds()).
		Dur("duration", results.Duration).
		Msg("Simulation finished")

	return results, nil
}

// playGame runs one game with a fresh player per configured strategy
func (r *Runner) playGame(ctx context.Context, board *core.Board, dice *core.Dice, rng *rand.Rand) (game.Result, error) {
	players, err := r.newPlayers(rng)
	if err != nil {
		return game.Result{}, err
	}

	g, err := game.NewGame(board, dice, players, rng, game.Config{
		ID:       uuid.NewString(),
		Rules:    r.config.Rules,
		Logger:   r.gameLogger,
		EventBus: r.eventBus,
	})
	if err != nil {
		return game.Result{}, err
	}

	if err := g.Run(ctx); err != nil {
		return game.Result{}, err
	}
	return g.Result()
}

func (r *Runner) newPlayers(rng *rand.Rand) ([]*core.Player, error) {
	params := r.config.Rules.StrategyParams()
	players := make([]*core.Player, len(r.config.Strategies))
	for i, kind := range r.config.Strategies {
		strategy, err := core.NewStrategy(kind, params, rng)
		if err != nil {
			return nil, err
		}
		players[i] = core.NewPlayer(i, strategy)
	}
	return players, nil
}
