package cargo

import (
	"github.com/galactictrader/galactic-trader-go/internal/domain/market"
)

// RejectionReason reports why a trade was refused. Rejections are results,
// not errors: the caller's state is left unchanged.
type RejectionReason string

const (
	ReasonNone                 RejectionReason = ""
	ReasonInsufficientCredits  RejectionReason = "insufficient credits"
	ReasonInsufficientCapacity RejectionReason = "insufficient cargo space"
	ReasonInsufficientGoods    RejectionReason = "insufficient inventory"
	ReasonInvalidQuantity      RejectionReason = "invalid quantity"
	ReasonUnknownResource      RejectionReason = "unknown resource"
)

// CanBuy checks a purchase: affordable at catalog price and within capacity
func CanBuy(resource market.Resource, quantity, credits, usedCargo, capacity int) RejectionReason {
	if quantity <= 0 {
		return ReasonInvalidQuantity
	}
	if resource.BasePrice*quantity > credits {
		return ReasonInsufficientCredits
	}
	if usedCargo+quantity > capacity {
		return ReasonInsufficientCapacity
	}
	return ReasonNone
}

// CanSell checks a sale against held inventory
func CanSell(inventory Inventory, t market.ResourceType, quantity int) RejectionReason {
	if quantity <= 0 {
		return ReasonInvalidQuantity
	}
	if inventory.Quantity(t) < quantity {
		return ReasonInsufficientGoods
	}
	return ReasonNone
}
