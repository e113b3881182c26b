package core

import "fmt"

// RentDivisor turns a price into its rent: rent = price / RentDivisor.
const RentDivisor = 10

// Property is a purchasable board cell.
// Owner is nil while the property is available. The owner pointer is a
// back-reference only; the Property never outlives or manages its Player.
type Property struct {
	Index int
	Price int
	Rent  int
	Owner *Player
}

// NewProperty creates an unowned property. Rent is floor(price / 10) and is
// fixed for the lifetime of the property.
func NewProperty(index, price int) *Property {
	if price <= 0 {
		panic(fmt.Sprintf("core: property %d has non-positive price %d", index, price))
	}
	return &Property{
		Index: index,
		Price: price,
		Rent:  price / RentDivisor,
	}
}

func (p *Property) IsAvailable() bool { return p.Owner == nil }

func (p *Property) String() string {
	owner := "-"
	if p.Owner != nil {
		owner = fmt.Sprintf("P%d", p.Owner.ID)
	}
	return fmt.Sprintf("#%d $%d/%d [%s]", p.Index, p.Price, p.Rent, owner)
}
