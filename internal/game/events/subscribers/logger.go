package subscribers

import (
	"encoding/json"

	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/PropertyTradingSim/internal/game/events"
)

// LoggerSubscriber logs events to structured logs
type LoggerSubscriber struct {
	id              string
	logger          zerolog.Logger
	logLevel        zerolog.Level
	eventTypeFilter map[string]bool // If non-nil, only log these event types
	devMode         bool            // If true, log full event details
}

// NewLoggerSubscriber creates a new logger subscriber
func NewLoggerSubscriber(id string, logger zerolog.Logger, logLevel zerolog.Level) *LoggerSubscriber {
	return &LoggerSubscriber{
		id:       id,
		logger:   logger.With().Str("subscriber", "event_logger").Logger(),
		logLevel: logLevel,
	}
}

// ID returns the subscriber's unique identifier
func (ls *LoggerSubscriber) ID() string {
	return ls.id
}

// SetEventFilter sets which event types to log (nil means log all)
func (ls *LoggerSubscriber) SetEventFilter(eventTypes []string) {
	if len(eventTypes) == 0 {
		ls.eventTypeFilter = nil
		return
	}

	ls.eventTypeFilter = make(map[string]bool)
	for _, eventType := range eventTypes {
		ls.eventTypeFilter[eventType] = true
	}
}

// SetDevMode enables or disables development mode logging
func (ls *LoggerSubscriber) SetDevMode(enabled bool) {
	ls.devMode = enabled
}

// InterestedIn returns true if the subscriber wants to receive this event type
func (ls *LoggerSubscriber) InterestedIn(eventType string) bool {
	if ls.eventTypeFilter == nil {
		return true
	}
	return ls.eventTypeFilter[eventType]
}

// HandleEvent processes an event by logging it
func (ls *LoggerSubscriber) HandleEvent(event events.Event) {
	logEvent := ls.logger.WithLevel(ls.logLevel)
	if !logEvent.Enabled() {
		return
	}

	logEvent.
		Str("event_type", event.Type()).
		Str("game_id", event.GameID()).
		Int("round", event.Round()).
		Time("timestamp", event.Timestamp())

	switch e := event.(type) {
	case *events.GameStartedEvent:
		logEvent.
			Int("num_players", e.NumPlayers()).
			Int("board_size", e.BoardSize).
			Ints("seating", e.Seating)

	case *events.GameEndedEvent:
		logEvent.
			Int("winner", e.Winner).
			Str("winner_strategy", e.WinnerStrategy).
			Bool("timeout", e.Timeout).
			Dur("duration", e.Duration)

	case *events.RoundStartedEvent:
		logEvent.Int("active_players", e.ActivePlayers)

	case *events.RoundEndedEvent:
		logEvent.
			Int("active_players", e.ActivePlayers).
			Int("bankruptcies", e.Bankruptcies)

	case *events.DiceRolledEvent:
		logEvent.
			Int("player_id", e.PlayerID).
			Int("value", e.Value)

	case *events.LapCompletedEvent:
		logEvent.
			Int("player_id", e.PlayerID).
			Int("laps", e.Laps).
			Int("bonus", e.Bonus)

	case *events.PropertyBoughtEvent:
		logEvent.
			Int("player_id", e.PlayerID).
			Int("property", e.Property).
			Int("price", e.Price)

	case *events.RentPaidEvent:
		logEvent.
			Int("player_id", e.PlayerID).
			Int("owner_id", e.OwnerID).
			Int("property", e.Property).
			Int("rent", e.Rent)

	case *events.PlayerBankruptEvent:
		logEvent.
			Int("player_id", e.PlayerID).
			Int("amount", e.Amount).
			Int("properties_released", e.PropertiesReleased).
			Int("final_rank", e.FinalRank)

	case *events.StateTransitionEvent:
		logEvent.
			Str("from_phase", e.FromPhase).
			Str("to_phase", e.ToPhase).
			Str("reason", e.Reason)
	}

	// In dev mode, also log the full event as JSON
	if ls.devMode {
		if jsonData, err := json.Marshal(event); err == nil {
			logEvent.RawJSON("event_data", jsonData)
		}
	}

	logEvent.Msg("Game event")
}

// EventLevel is the level game events are logged at when the logger runs at
// configured: debug, or configured when that is stricter.
func EventLevel(configured zerolog.Level) zerolog.Level {
	if configured > zerolog.DebugLevel && configured < zerolog.NoLevel {
		return configured
	}
	return zerolog.DebugLevel
}
