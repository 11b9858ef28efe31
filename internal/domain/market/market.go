package market

import (
	"math"

	"github.com/galactictrader/galactic-trader-go/internal/domain/shared"
)

const (
	// minSupplyDemand is the floor applied on every mutation so the
	// demand/supply ratio can never divide by zero or go negative
	minSupplyDemand = 1

	// Randomized initial supply/demand range for a fresh market
	initialSupplyDemandMin  = 100
	initialSupplyDemandSpan = 900
)

// Market is the per-location supply/demand table, one entry per resource type.
// Prices drift as trades deplete supply and raise demand; there is no upper
// bound on the derived unit price.
type Market struct {
	resources map[ResourceType]*Resource
}

// NewMarket creates a fresh market with randomized supply and demand in
// [100, 1000) for every resource type
func NewMarket(rng shared.Rand) *Market {
	resources := make(map[ResourceType]*Resource, len(basePrices))
	for _, t := range AllResourceTypes() {
		resources[t] = &Resource{
			Type:      t,
			BasePrice: basePrices[t],
			Supply:    rng.Intn(initialSupplyDemandSpan) + initialSupplyDemandMin,
			Demand:    rng.Intn(initialSupplyDemandSpan) + initialSupplyDemandMin,
			IsIllegal: t.IsIllegal(),
		}
	}
	return &Market{resources: resources}
}

// NewMarketFromResources reconstructs a market from persisted resource state.
// Supply/demand floors are re-applied and unknown types dropped.
func NewMarketFromResources(resources []Resource) *Market {
	m := &Market{resources: make(map[ResourceType]*Resource, len(resources))}
	for i := range resources {
		r := resources[i]
		if !r.Type.IsValid() {
			continue
		}
		if r.Supply < minSupplyDemand {
			r.Supply = minSupplyDemand
		}
		if r.Demand < minSupplyDemand {
			r.Demand = minSupplyDemand
		}
		m.resources[r.Type] = &r
	}
	return m
}

// Resource returns a copy of the state for one resource type
func (m *Market) Resource(t ResourceType) (Resource, bool) {
	r, ok := m.resources[t]
	if !ok {
		return Resource{}, false
	}
	return *r, true
}

// Resources returns a copy of all resource entries in catalog order
func (m *Market) Resources() []Resource {
	out := make([]Resource, 0, len(m.resources))
	for _, t := range AllResourceTypes() {
		if r, ok := m.resources[t]; ok {
			out = append(out, *r)
		}
	}
	return out
}

// UnitPrice derives the effective price: round(basePrice * demand/supply).
// Unknown types price at 0.
func (m *Market) UnitPrice(t ResourceType) int {
	r, ok := m.resources[t]
	if !ok {
		return 0
	}
	return int(math.Round(float64(r.BasePrice) * float64(r.Demand) / float64(r.Supply)))
}

// ApplyTrade adjusts supply and demand for a completed trade. Quantity is
// signed: positive for a buy (depletes supply, raises demand), negative for
// a sell. Both counters are floored at 1.
func (m *Market) ApplyTrade(t ResourceType, quantity int) {
	r, ok := m.resources[t]
	if !ok {
		return
	}
	r.Supply -= quantity
	if r.Supply < minSupplyDemand {
		r.Supply = minSupplyDemand
	}
	r.Demand += quantity
	if r.Demand < minSupplyDemand {
		r.Demand = minSupplyDemand
	}
}
