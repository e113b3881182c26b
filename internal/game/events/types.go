package events

import (
	"time"
)

// Event is something that happened inside one game
type Event interface {
	Type() string
	Timestamp() time.Time
	GameID() string
	// Round is the 1-based round the event belongs to, 0 outside the turn loop
	Round() int
}

// BaseEvent carries the fields every game event shares
type BaseEvent struct {
	EventType string    `json:"type"`
	Time      time.Time `json:"timestamp"`
	Game      string    `json:"game_id"`
	AtRound   int       `json:"round,omitempty"`
}

func newBaseEvent(eventType, gameID string, round int) BaseEvent {
	return BaseEvent{
		EventType: eventType,
		Time:      time.Now(),
		Game:      gameID,
		AtRound:   round,
	}
}

func (e BaseEvent) Type() string         { return e.EventType }
func (e BaseEvent) Timestamp() time.Time { return e.Time }
func (e BaseEvent) GameID() string       { return e.Game }
func (e BaseEvent) Round() int           { return e.AtRound }

// EventHandler is a function that processes events
type EventHandler func(Event)

// Subscriber receives the event types it is interested in
type Subscriber interface {
	ID() string
	HandleEvent(Event)
	InterestedIn(eventType string) bool
}

// Publisher is the side of the bus the game sees
type Publisher interface {
	Publish(Event)
}
