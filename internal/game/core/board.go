package core

import (
	"fmt"
	"strings"
)

// Board is the fixed ring of properties players walk around.
type Board struct {
	Properties []*Property
}

// NewBoard builds a board from prices in cell order.
func NewBoard(prices []int) *Board {
	b := &Board{Properties: make([]*Property, len(prices))}
	for i, price := range prices {
		b.Properties[i] = NewProperty(i, price)
	}
	return b
}

// Len returns the number of cells on the board
func (b *Board) Len() int {
	return len(b.Properties)
}

// At returns the property at idx
func (b *Board) At(idx int) *Property {
	return b.Properties[idx]
}

// OwnedBy returns the properties currently owned by player, in board order.
func (b *Board) OwnedBy(player *Player) []*Property {
	var owned []*Property
	for _, prop := range b.Properties {
		if prop.Owner == player {
			owned = append(owned, prop)
		}
	}
	return owned
}

// ReleaseOwnedBy makes every property owned by player available again and
// returns how many were released.
func (b *Board) ReleaseOwnedBy(player *Player) int {
	owned := b.OwnedBy(player)
	for _, prop := range owned {
		prop.Owner = nil
	}
	return len(owned)
}

// ResetOwnership clears every owner on the board.
func (b *Board) ResetOwnership() {
	for _, prop := range b.Properties {
		prop.Owner = nil
	}
}

// OwnedCount returns how many properties have an owner.
func (b *Board) OwnedCount() int {
	n := 0
	for _, prop := range b.Properties {
		if !prop.IsAvailable() {
			n++
		}
	}
	return n
}

func (b *Board) String() string {
	var sb strings.Builder
	for _, prop := range b.Properties {
		sb.WriteString(fmt.Sprintf("%s\n", prop))
	}
	return sb.String()
}
