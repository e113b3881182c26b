package events

import (
	"sync"

	"github.com/rs/zerolog"
)

// EventBus delivers events synchronously, in the publisher's goroutine.
// Subscribers are called in the order they subscribed, then the function
// handlers registered for the event type. A panicking recipient is logged and
// skipped.
type EventBus struct {
	mu           sync.RWMutex
	subscribers  []Subscriber
	funcHandlers map[string][]EventHandler
	logger       zerolog.Logger
}

func NewEventBus(logger zerolog.Logger) *EventBus {
	return &EventBus{
		funcHandlers: make(map[string][]EventHandler),
		logger:       logger.With().Str("component", "event_bus").Logger(),
	}
}

// Subscribe adds subscriber. Subscribing the same ID again replaces it.
func (eb *EventBus) Subscribe(subscriber Subscriber) {
	eb.mu.Lock()
	defer eb.mu.Unlock()

	for i, existing := range eb.subscribers {
		if existing.ID() == subscriber.ID() {
			eb.subscribers[i] = subscriber
			return
		}
	}
	eb.subscribers = append(eb.subscribers, subscriber)
	eb.logger.Debug().Str("subscriber_id", subscriber.ID()).Msg("Subscriber added to event bus")
}

// SubscribeFunc registers handler for a single event type
func (eb *EventBus) SubscribeFunc(eventType string, handler EventHandler) {
	eb.mu.Lock()
	defer eb.mu.Unlock()

	eb.funcHandlers[eventType] = append(eb.funcHandlers[eventType], handler)
}

// Wants reports whether anyone would receive an event of eventType.
// Publishers on hot paths use it to skip building events nobody reads.
func (eb *EventBus) Wants(eventType string) bool {
	eb.mu.RLock()
	defer eb.mu.RUnlock()

	if len(eb.funcHandlers[eventType]) > 0 {
		return true
	}
	for _, subscriber := range eb.subscribers {
		if subscriber.InterestedIn(eventType) {
			return true
		}
	}
	return false
}

// Publish hands event to every interested recipient. Recipients may subscribe
// further handlers while being called; those see the next event.
func (eb *EventBus) Publish(event Event) {
	eventType := event.Type()

	eb.mu.RLock()
	var targets []Subscriber
	for _, subscriber := range eb.subscribers {
		if subscriber.InterestedIn(eventType) {
			targets = append(targets, subscriber)
		}
	}
	handlers := eb.funcHandlers[eventType]
	eb.mu.RUnlock()

	for _, subscriber := range targets {
		eb.deliver(event, subscriber.ID(), subscriber.HandleEvent)
	}
	for _, handler := range handlers {
		eb.deliver(event, "func", handler)
	}
}

func (eb *EventBus) deliver(event Event, recipient string, handle EventHandler) {
	defer func() {
		if r := recover(); r != nil {
			eb.logger.Error().
				Str("recipient", recipient).
				Str("event_type", event.Type()).
				Str("game_id", event.GameID()).
				Interface("panic", r).
				Msg("Event recipient panicked")
		}
	}()
	handle(event)
}
