package events

import (
	"time"
)

// Event type constants
const (
	TypeGameStarted     = "game.started"
	TypeGameEnded       = "game.ended"
	TypeRoundStarted    = "round.started"
	TypeRoundEnded      = "round.ended"
	TypeDiceRolled      = "dice.rolled"
	TypeLapCompleted    = "lap.completed"
	TypePropertyBought  = "property.bought"
	TypeRentPaid        = "rent.paid"
	TypePlayerBankrupt  = "player.bankrupt"
	TypeStateTransition = "state.transition"
)

// KnownTypes lists every event type a game publishes
var KnownTypes = []string{
	TypeGameStarted, TypeGameEnded,
	TypeRoundStarted, TypeRoundEnded,
	TypeDiceRolled, TypeLapCompleted,
	TypePropertyBought, TypeRentPaid, TypePlayerBankrupt,
	TypeStateTransition,
}

// IsKnownType reports whether eventType is one of KnownTypes
func IsKnownType(eventType string) bool {
	for _, t := range KnownTypes {
		if t == eventType {
			return true
		}
	}
	return false
}

// GameStartedEvent is published once seating has been shuffled
type GameStartedEvent struct {
	BaseEvent
	BoardSize int   `json:"board_size"`
	Seating   []int `json:"seating"`
}

func NewGameStartedEvent(gameID string, seating []int, boardSize int) *GameStartedEvent {
	return &GameStartedEvent{
		BaseEvent: newBaseEvent(TypeGameStarted, gameID, 0),
		BoardSize: boardSize,
		Seating:   seating,
	}
}

// NumPlayers is the size of the seating order
func (e *GameStartedEvent) NumPlayers() int { return len(e.Seating) }

// GameEndedEvent is published when a winner has been resolved. Its round is
// the number of rounds played.
type GameEndedEvent struct {
	BaseEvent
	Winner         int           `json:"winner"`
	WinnerStrategy string        `json:"winner_strategy"`
	Timeout        bool          `json:"timeout"`
	Duration       time.Duration `json:"duration"`
}

func NewGameEndedEvent(gameID string, winner int, strategy string, rounds int, timeout bool, duration time.Duration) *GameEndedEvent {
	return &GameEndedEvent{
		BaseEvent:      newBaseEvent(TypeGameEnded, gameID, rounds),
		Winner:         winner,
		WinnerStrategy: strategy,
		Timeout:        timeout,
		Duration:       duration,
	}
}

// RoundStartedEvent is published before the first turn of a round
type RoundStartedEvent struct {
	BaseEvent
	ActivePlayers int `json:"active_players"`
}

func NewRoundStartedEvent(gameID string, round, activePlayers int) *RoundStartedEvent {
	return &RoundStartedEvent{
		BaseEvent:     newBaseEvent(TypeRoundStarted, gameID, round),
		ActivePlayers: activePlayers,
	}
}

// RoundEndedEvent is published after every player in the round snapshot moved
type RoundEndedEvent struct {
	BaseEvent
	ActivePlayers int `json:"active_players"`
	Bankruptcies  int `json:"bankruptcies"`
}

func NewRoundEndedEvent(gameID string, round, activePlayers, bankruptcies int) *RoundEndedEvent {
	return &RoundEndedEvent{
		BaseEvent:     newBaseEvent(TypeRoundEnded, gameID, round),
		ActivePlayers: activePlayers,
		Bankruptcies:  bankruptcies,
	}
}

type DiceRolledEvent struct {
	BaseEvent
	PlayerID int `json:"player_id"`
	Value    int `json:"value"`
}

func NewDiceRolledEvent(gameID string, playerID, value, round int) *DiceRolledEvent {
	return &DiceRolledEvent{
		BaseEvent: newBaseEvent(TypeDiceRolled, gameID, round),
		PlayerID:  playerID,
		Value:     value,
	}
}

// LapCompletedEvent is published when a move wraps past the start square.
// Bonus is the total credited for all Laps.
type LapCompletedEvent struct {
	BaseEvent
	PlayerID int `json:"player_id"`
	Laps     int `json:"laps"`
	Bonus    int `json:"bonus"`
}

func NewLapCompletedEvent(gameID string, playerID, laps, bonus, round int) *LapCompletedEvent {
	return &LapCompletedEvent{
		BaseEvent: newBaseEvent(TypeLapCompleted, gameID, round),
		PlayerID:  playerID,
		Laps:      laps,
		Bonus:     bonus,
	}
}

type PropertyBoughtEvent struct {
	BaseEvent
	PlayerID int `json:"player_id"`
	Property int `json:"property"`
	Price    int `json:"price"`
}

func NewPropertyBoughtEvent(gameID string, playerID, property, price, round int) *PropertyBoughtEvent {
	return &PropertyBoughtEvent{
		BaseEvent: newBaseEvent(TypePropertyBought, gameID, round),
		PlayerID:  playerID,
		Property:  property,
		Price:     price,
	}
}

// RentPaidEvent is published when a player lands on an owned property.
// OwnerID equals PlayerID when the player owns the cell.
type RentPaidEvent struct {
	BaseEvent
	PlayerID int `json:"player_id"`
	OwnerID  int `json:"owner_id"`
	Property int `json:"property"`
	Rent     int `json:"rent"`
}

func NewRentPaidEvent(gameID string, playerID, ownerID, property, rent, round int) *RentPaidEvent {
	return &RentPaidEvent{
		BaseEvent: newBaseEvent(TypeRentPaid, gameID, round),
		PlayerID:  playerID,
		OwnerID:   ownerID,
		Property:  property,
		Rent:      rent,
	}
}

// PlayerBankruptEvent is published when a player is removed from play
type PlayerBankruptEvent struct {
	BaseEvent
	PlayerID           int `json:"player_id"`
	Amount             int `json:"amount"`
	PropertiesReleased int `json:"properties_released"`
	FinalRank          int `json:"final_rank"`
}

func NewPlayerBankruptEvent(gameID string, playerID, amount, released, rank, round int) *PlayerBankruptEvent {
	return &PlayerBankruptEvent{
		BaseEvent:          newBaseEvent(TypePlayerBankrupt, gameID, round),
		PlayerID:           playerID,
		Amount:             amount,
		PropertiesReleased: released,
		FinalRank:          rank,
	}
}

// StateTransitionEvent is published on every lifecycle phase change
type StateTransitionEvent struct {
	BaseEvent
	FromPhase string `json:"from_phase"`
	ToPhase   string `json:"to_phase"`
	Reason    string `json:"reason"`
}

func NewStateTransitionEvent(gameID, fromPhase, toPhase, reason string) *StateTransitionEvent {
	return &StateTransitionEvent{
		BaseEvent: newBaseEvent(TypeStateTransition, gameID, 0),
		FromPhase: fromPhase,
		ToPhase:   toPhase,
		Reason:    reason,
	}
}
