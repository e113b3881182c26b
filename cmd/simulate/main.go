package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/mitchelldurbincs/PropertyTradingSim/internal/config"
	"github.com/mitchelldurbincs/PropertyTradingSim/internal/game/events"
	"github.com/mitchelldurbincs/PropertyTradingSim/internal/game/events/subscribers"
	"github.com/mitchelldurbincs/PropertyTradingSim/internal/simulation"
)

func main() {
	// Command line flags
	configPath := flag.String("config", "", "Path to config file")
	env := flag.String("env", "", "Environment overlay, loads config.<env>.yaml")
	iterations := flag.Int("iterations", 0, "Number of games to simulate (default from config)")
	seed := flag.Int64("seed", 0, "Random seed, 0 picks one from the clock (default from config)")
	logLevel := flag.String("log-level", "", "Log level (trace, debug, info, warn, error) (empty to use config default)")
	csvPath := flag.String("csv", "", "Write one row per game to this CSV file")
	freshBoard := flag.Bool("fresh-board", false, "Generate a new board for every game")
	watch := flag.Bool("watch", false, "Rerun the batch whenever the config file changes")
	flag.Parse()

	// Initialize configuration
	if err := config.Init(*configPath); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize config")
	}
	if err := config.LoadEnvironmentConfig(*env); err != nil {
		log.Fatal().Err(err).Str("env", *env).Msg("Failed to load environment config")
	}

	// Only flags given on the command line override the config
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "iterations":
			config.Set("simulation.iterations", *iterations)
		case "seed":
			config.Set("simulation.seed", *seed)
		case "log-level":
			config.Set("logging.level", *logLevel)
		case "csv":
			config.Set("simulation.output.csv_path", *csvPath)
		case "fresh-board":
			config.Set("simulation.fresh_board_per_game", *freshBoard)
		}
	})

	cfg := config.Get()
	if err := config.Validate(cfg); err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}

	setupLogging(cfg.Logging.Level, cfg.Logging.Format)

	// Setup graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		log.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	if err := runBatch(ctx, cfg); err != nil {
		log.Fatal().Err(err).Msg("Simulation failed")
	}

	if !*watch {
		return
	}
	if config.ConfigFilePath() == "" {
		log.Fatal().Msg("Watch mode needs a config file")
	}

	rerun := make(chan *config.Config, 1)
	config.WatchConfig(func(c *config.Config, err error) {
		if err != nil {
			log.Error().Err(err).Msg("Ignoring invalid config change")
			return
		}
		select {
		case rerun <- c:
		default:
			// A rerun is already queued
		}
	})
	log.Info().Str("file", config.ConfigFilePath()).Msg("Watching config for changes")

	for {
		select {
		case <-ctx.Done():
			return
		case c := <-rerun:
			setupLogging(c.Logging.Level, c.Logging.Format)
			log.Info().Msg("Config changed, rerunning simulation")
			if err := runBatch(ctx, c); err != nil {
				log.Error().Err(err).Msg("Simulation failed")
			}
		}
	}
}

// runBatch plays one batch and prints the report to stdout
func runBatch(ctx context.Context, cfg *config.Config) error {
	simCfg, err := simulation.FromAppConfig(cfg)
	if err != nil {
		return err
	}
	if simCfg.Seed == 0 {
		simCfg.Seed = time.Now().UnixNano()
	}
	log.Info().Int64("seed", simCfg.Seed).Msg("Using seed")

	var opts []simulation.Option
	if cfg.Development.LogEvents {
		bus := events.NewEventBus(log.Logger)
		eventLogger := subscribers.NewLoggerSubscriber("cli-event-logger", log.Logger, subscribers.EventLevel(zerolog.GlobalLevel()))
		eventLogger.SetEventFilter(cfg.Development.EventTypes)
		eventLogger.SetDevMode(cfg.Logging.Level == "trace")
		bus.Subscribe(eventLogger)
		opts = append(opts, simulation.WithEventBus(bus))
	}

	runner, err := simulation.NewRunner(simCfg, log.Logger, opts...)
	if err != nil {
		return err
	}

	results, err := runner.Run(ctx)
	if err != nil {
		return err
	}

	if err := simulation.WriteReport(os.Stdout, results, simCfg.Strategies); err != nil {
		return err
	}

	if path := cfg.Simulation.Output.CSVPath; path != "" {
		writer, err := simulation.NewCSVWriter(path)
		if err != nil {
			return err
		}
		if err := writer.WriteResults(results); err != nil {
			return err
		}
		log.Info().Str("path", writer.Path()).Int("games", results.Count()).Msg("Wrote game results")
	}

	return nil
}

// setupLogging configures the global logger. Logs go to stderr so the report
// on stdout stays clean.
func setupLogging(level, format string) {
	logLevel, err := zerolog.ParseLevel(level)
	if err != nil || logLevel == zerolog.NoLevel {
		logLevel = zerolog.WarnLevel
	}
	zerolog.SetGlobalLevel(logLevel)

	if format == "json" {
		log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
	} else {
		log.Logger = zerolog.New(zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.RFC3339,
		}).With().Timestamp().Logger()
	}
}
