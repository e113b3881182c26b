package core

// Player is a seat at the table. Amount may go negative, which is how
// bankruptcy is signalled. Amount and Position only mean something while a
// game using this player is active.
type Player struct {
	ID       int
	Amount   int
	Position int
	Strategy Strategy
}

// NewPlayer creates a player bound to a buying strategy.
func NewPlayer(id int, strategy Strategy) *Player {
	return &Player{ID: id, Strategy: strategy}
}

// Reset puts the player back at the start square with a fresh balance.
func (p *Player) Reset(initialAmount int) {
	p.Amount = initialAmount
	p.Position = 0
}

func (p *Player) HasAmountToBuy(prop *Property) bool {
	return p.Amount >= prop.Price
}

// Buy transfers prop to the player. Availability is checked before
// affordability; on error nothing is changed.
func (p *Player) Buy(prop *Property) error {
	if !prop.IsAvailable() {
		return WrapPlayerError(p.ID, "buy", ErrPropertyUnavailable)
	}
	if !p.HasAmountToBuy(prop) {
		return WrapPlayerError(p.ID, "buy", ErrInsufficientFunds)
	}
	prop.Owner = p
	p.Amount -= prop.Price
	return nil
}

// PayRent moves prop.Rent from the player to the owner of prop. It does not
// check availability: calling it on an unowned property panics.
func (p *Player) PayRent(prop *Property) {
	prop.Owner.Amount += prop.Rent
	p.Amount -= prop.Rent
}

// ShouldBuy asks the player's strategy. Only meaningful for available
// properties the player can afford; the engine enforces that ordering.
func (p *Player) ShouldBuy(prop *Property) bool {
	return p.Strategy.ShouldBuy(p, prop)
}

// Bankrupt reports a strictly negative balance. Zero is still solvent.
func (p *Player) Bankrupt() bool { return p.Amount < 0 }

// Kind returns the strategy kind, or -1 when no strategy is assigned.
func (p *Player) Kind() StrategyKind {
	if p.Strategy == nil {
		return StrategyKind(-1)
	}
	return p.Strategy.Kind()
}
