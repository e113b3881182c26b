package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/mitchelldurbincs/PropertyTradingSim/internal/game/core"
	"github.com/mitchelldurbincs/PropertyTradingSim/internal/game/events"
)

// Config holds all configuration for the application
type Config struct {
	Game        GameConfig        `mapstructure:"game"`
	Board       BoardConfig       `mapstructure:"board"`
	Dice        DiceConfig        `mapstructure:"dice"`
	Simulation  SimulationConfig  `mapstructure:"simulation"`
	Logging     LoggingConfig     `mapstructure:"logging"`
	Development DevelopmentConfig `mapstructure:"development"`
}

// GameConfig holds game rule settings
type GameConfig struct {
	InitialAmount int              `mapstructure:"initial_amount"`
	MaxRounds     int              `mapstructure:"max_rounds"`
	LapBonus      int              `mapstructure:"lap_bonus"`
	Strategies    StrategiesConfig `mapstructure:"strategies"`
}

// StrategiesConfig holds the thresholds used by buying strategies
type StrategiesConfig struct {
	DemandingRentThreshold int `mapstructure:"demanding_rent_threshold"`
	CautiousReserve        int `mapstructure:"cautious_reserve"`
}

// BoardConfig holds board generation settings
type BoardConfig struct {
	PropertyCount int `mapstructure:"property_count"`
	MinPrice      int `mapstructure:"min_price"`
	MaxPrice      int `mapstructure:"max_price"`
}

// DiceConfig holds the inclusive dice range
type DiceConfig struct {
	Min int `mapstructure:"min"`
	Max int `mapstructure:"max"`
}

// SimulationConfig holds batch settings
type SimulationConfig struct {
	Iterations        int          `mapstructure:"iterations"`
	Seed              int64        `mapstructure:"seed"`
	Strategies        []string     `mapstructure:"strategies"`
	FreshBoardPerGame bool         `mapstructure:"fresh_board_per_game"`
	Output            OutputConfig `mapstructure:"output"`
}

// OutputConfig holds optional report artifacts
type OutputConfig struct {
	CSVPath string `mapstructure:"csv_path"`
}

// LoggingConfig holds logger settings
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// DevelopmentConfig holds development/debug settings
type DevelopmentConfig struct {
	LogEvents  bool     `mapstructure:"log_events"`
	EventTypes []string `mapstructure:"event_types"` // empty logs every event type
}

var (
	// Global config instance
	cfg *Config
	v   *viper.Viper

	// loadedFile is the base config file actually read, empty when defaults are used
	loadedFile string
	// overlayFile is the environment overlay merged by LoadEnvironmentConfig
	overlayFile string
)

// setViperDefaults sets all default values using Viper's SetDefault
func setViperDefaults(v *viper.Viper) {
	// Game defaults
	v.SetDefault("game.initial_amount", 300)
	v.SetDefault("game.max_rounds", 1000)
	v.SetDefault("game.lap_bonus", 100)
	v.SetDefault("game.strategies.demanding_rent_threshold", 50)
	v.SetDefault("game.strategies.cautious_reserve", 80)

	// Board defaults
	v.SetDefault("board.property_count", 20)
	v.SetDefault("board.min_price", 100)
	v.SetDefault("board.max_price", 250)

	// Dice defaults
	v.SetDefault("dice.min", 1)
	v.SetDefault("dice.max", 6)

	// Simulation defaults
	v.SetDefault("simulation.iterations", 300)
	v.SetDefault("simulation.seed", 0)
	v.SetDefault("simulation.strategies", []string{"impulsive", "demanding", "cautious", "random"})
	v.SetDefault("simulation.fresh_board_per_game", false)
	v.SetDefault("simulation.output.csv_path", "")

	// Logging defaults
	v.SetDefault("logging.level", "warn")
	v.SetDefault("logging.format", "console")

	// Development defaults
	v.SetDefault("development.log_events", false)
	v.SetDefault("development.event_types", []string{})
}

// Init initializes the configuration
func Init(configPath string) error {
	v = viper.New()
	loadedFile, overlayFile = "", ""

	// Set defaults before loading any config
	setViperDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		// Default config locations
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		v.AddConfigPath("/etc/property-sim")
	}

	// Set environment variable prefix
	v.SetEnvPrefix("PTS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		switch {
		case errors.As(err, &notFound):
			// No config in the default locations; use defaults
		case configPath != "" && errors.Is(err, fs.ErrNotExist):
			// Specific file requested but missing; use defaults
		default:
			return fmt.Errorf("error reading config file: %w", err)
		}
	} else {
		loadedFile = v.ConfigFileUsed()
	}

	// Unmarshal into config struct
	c := &Config{}
	if err := v.Unmarshal(c); err != nil {
		return fmt.Errorf("unable to decode config into struct: %w", err)
	}

	if err := Validate(c); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	cfg = c
	return nil
}

// Get returns the global config instance
func Get() *Config {
	if cfg == nil {
		// Initialize with defaults if not already initialized
		if err := Init(""); err != nil {
			panic("failed to initialize config with defaults: " + err.Error())
		}
	}
	return cfg
}

// LoadEnvironmentConfig merges config.<env>.yaml over the loaded config. The
// overlay is read by its own viper instance so ConfigFilePath keeps pointing
// at the base file, and it is merged again whenever the base file reloads.
func LoadEnvironmentConfig(env string) error {
	if env == "" {
		return nil
	}

	envFile := fmt.Sprintf("config.%s.yaml", env)
	if err := mergeOverlay(v, envFile); err != nil {
		return err
	}
	overlayFile = envFile

	if err := v.Unmarshal(cfg); err != nil {
		return fmt.Errorf("unable to decode merged config into struct: %w", err)
	}

	return Validate(cfg)
}

// mergeOverlay merges path into target. A missing overlay is not an error.
func mergeOverlay(target *viper.Viper, path string) error {
	overlay := viper.New()
	overlay.SetConfigFile(path)
	if err := overlay.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("error merging environment config %s: %w", path, err)
	}
	if err := target.MergeConfigMap(overlay.AllSettings()); err != nil {
		return fmt.Errorf("error merging environment config %s: %w", path, err)
	}
	return nil
}

// Set allows runtime config updates
func Set(key string, value interface{}) {
	v.Set(key, value)
	// Re-unmarshal to update struct
	_ = v.Unmarshal(cfg)
}

// ConfigFilePath returns the path of the base config file that was read, or
// "" when only defaults and environment variables are in effect
func ConfigFilePath() string {
	return loadedFile
}

// WatchConfig enables hot-reloading of the config file. onChange receives the
// reloaded config, or the validation error when the new file is rejected; in
// that case the previous config stays active.
func WatchConfig(onChange func(*Config, error)) {
	watched, overlay := v, overlayFile
	watched.OnConfigChange(func(e fsnotify.Event) {
		next, err := reload(watched, overlay)
		if err == nil {
			cfg = next
		} else {
			next = cfg
		}
		if onChange != nil {
			onChange(next, err)
		}
	})
	watched.WatchConfig()
}

// reload decodes the freshly read file plus any environment overlay
func reload(watched *viper.Viper, overlay string) (*Config, error) {
	if overlay != "" {
		if err := mergeOverlay(watched, overlay); err != nil {
			return nil, err
		}
	}
	next := &Config{}
	if err := watched.Unmarshal(next); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}
	if err := Validate(next); err != nil {
		return nil, err
	}
	return next, nil
}

// Validate validates the configuration values
func Validate(c *Config) error {
	// Validate game rules
	if c.Game.InitialAmount < 0 {
		return fmt.Errorf("game.initial_amount must be non-negative")
	}
	if c.Game.MaxRounds < 1 {
		return fmt.Errorf("game.max_rounds must be at least 1")
	}
	if c.Game.LapBonus < 0 {
		return fmt.Errorf("game.lap_bonus must be non-negative")
	}

	// Validate board generation
	if c.Board.PropertyCount < 1 {
		return fmt.Errorf("board.property_count must be at least 1")
	}
	if c.Board.MinPrice <= 0 {
		return fmt.Errorf("board.min_price must be positive")
	}
	if c.Board.MaxPrice < c.Board.MinPrice {
		return fmt.Errorf("board.max_price must be at least board.min_price")
	}

	// Validate dice
	if c.Dice.Min < 1 {
		return fmt.Errorf("dice.min must be at least 1")
	}
	if c.Dice.Max < c.Dice.Min {
		return fmt.Errorf("dice.max must be at least dice.min")
	}

	// Validate simulation
	if c.Simulation.Iterations < 1 {
		return fmt.Errorf("simulation.iterations must be at least 1")
	}
	if len(c.Simulation.Strategies) == 0 {
		return fmt.Errorf("simulation.strategies must name at least one strategy")
	}
	for _, name := range c.Simulation.Strategies {
		if _, err := core.ParseStrategyKind(name); err != nil {
			return fmt.Errorf("simulation.strategies: %w", err)
		}
	}

	// Validate logging
	if _, err := zerolog.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("logging.level: %w", err)
	}
	if c.Logging.Format != "console" && c.Logging.Format != "json" {
		return fmt.Errorf("logging.format must be console or json")
	}

	for _, eventType := range c.Development.EventTypes {
		if !events.IsKnownType(eventType) {
			return fmt.Errorf("development.event_types: unknown event type %q", eventType)
		}
	}

	return nil
}

// StrategyKinds parses simulation.strategies in order
func (c *Config) StrategyKinds() ([]core.StrategyKind, error) {
	kinds := make([]core.StrategyKind, 0, len(c.Simulation.Strategies))
	for _, name := range c.Simulation.Strategies {
		kind, err := core.ParseStrategyKind(name)
		if err != nil {
			return nil, err
		}
		kinds = append(kinds, kind)
	}
	return kinds, nil
}
