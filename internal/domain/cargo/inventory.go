package cargo

import (
	"github.com/galactictrader/galactic-trader-go/internal/domain/market"
)

// Inventory maps resource type to held quantity. An absent key means zero.
// The capacity invariant (total units <= cargo capacity) is enforced at every
// mutation site rather than detected after the fact.
type Inventory map[market.ResourceType]int

// NewInventory creates an empty inventory
func NewInventory() Inventory {
	return make(Inventory)
}

// Quantity returns the held amount of one resource (0 if absent)
func (i Inventory) Quantity(t market.ResourceType) int {
	return i[t]
}

// TotalUnits sums all held quantities
func (i Inventory) TotalUnits() int {
	total := 0
	for _, qty := range i {
		total += qty
	}
	return total
}

// IsEmpty checks whether nothing is held
func (i Inventory) IsEmpty() bool {
	return i.TotalUnits() == 0
}

// BaseValue values the inventory at catalog prices
func (i Inventory) BaseValue() int {
	total := 0
	for t, qty := range i {
		total += market.BasePrice(t) * qty
	}
	return total
}

// HasIllegalGoods reports whether any contraband is held
func (i Inventory) HasIllegalGoods() bool {
	for t, qty := range i {
		if t.IsIllegal() && qty > 0 {
			return true
		}
	}
	return false
}

// Add increases the held quantity of one resource
func (i Inventory) Add(t market.ResourceType, qty int) {
	if qty <= 0 {
		return
	}
	i[t] += qty
}

// Remove decreases the held quantity, floored at zero, and drops empty keys
func (i Inventory) Remove(t market.ResourceType, qty int) {
	if qty <= 0 {
		return
	}
	held := i[t]
	held -= qty
	if held <= 0 {
		delete(i, t)
		return
	}
	i[t] = held
}

// LosePercent removes the given percentage from every stocked resource,
// flooring each loss (a "random" cargo loss applies proportionally across
// the whole hold). Percent is clamped into [0, 100].
func (i Inventory) LosePercent(percent int) {
	if percent <= 0 {
		return
	}
	if percent > 100 {
		percent = 100
	}
	for t, qty := range i {
		lost := qty * percent / 100
		i.Remove(t, lost)
	}
}

// Clone returns an independent copy
func (i Inventory) Clone() Inventory {
	out := make(Inventory, len(i))
	for t, qty := range i {
		out[t] = qty
	}
	return out
}
