package encounter

import (
	"fmt"

	"github.com/galactictrader/galactic-trader-go/internal/domain/shared"
	"github.com/galactictrader/galactic-trader-go/pkg/utils"
)

// Config tunes the fallback trigger probability and the type distribution
type Config struct {
	BaseProbability        float64
	DistanceFactor         float64
	CargoValueFactor       float64
	IllegalGoodsMultiplier float64
	PoliceChanceIllegal    float64
	TypeWeights            []TypeWeight
}

// TypeWeight is one entry of the cumulative-weight type draw. Order matters:
// the draw walks the slice accumulating weights.
type TypeWeight struct {
	Type   EventType
	Weight float64
}

// DefaultConfig returns the standing encounter tuning
func DefaultConfig() Config {
	return Config{
		BaseProbability:        0.05,
		DistanceFactor:         0.0005,
		CargoValueFactor:       0.00001,
		IllegalGoodsMultiplier: 2,
		PoliceChanceIllegal:    0.4,
		TypeWeights: []TypeWeight{
			{Type: Pirates, Weight: 0.4},
			{Type: Police, Weight: 0.3},
			{Type: Traders, Weight: 0.3},
		},
	}
}

// Generator decides whether and which random encounter occurs for a trip
type Generator struct {
	rng shared.Rand
	cfg Config
}

// NewGenerator creates a generator with the given tuning. Nil rng defaults
// to the real source.
func NewGenerator(rng shared.Rand, cfg Config) *Generator {
	if rng == nil {
		rng = shared.NewRealRand()
	}
	return &Generator{rng: rng, cfg: cfg}
}

// Probability computes the unforced trigger chance: a base rate plus
// distance and cargo-value factors, doubled when carrying illegal goods,
// clamped into [0, 1]
func (g *Generator) Probability(distance float64, cargoValue int, hasIllegalGoods bool) float64 {
	p := g.cfg.BaseProbability
	p += distance * g.cfg.DistanceFactor
	p += float64(cargoValue) * g.cfg.CargoValueFactor
	if hasIllegalGoods {
		p *= g.cfg.IllegalGoodsMultiplier
	}
	return utils.Clamp01(p)
}

// Generate produces an encounter, or nil when the probability gate does not
// trigger. When forced is non-nil the gate is skipped and the given type is
// used; this is the path the trip-initiation policy takes. Police never
// appear for cargo-less targets.
func (g *Generator) Generate(distance float64, cargoValue int, hasIllegalGoods bool, forced *EventType, hasCargo bool) *Event {
	if forced == nil {
		if g.rng.Float64() > g.Probability(distance, cargoValue, hasIllegalGoods) {
			return nil
		}
	}

	var eventType EventType
	switch {
	case forced != nil:
		eventType = *forced
	case !hasCargo:
		// police only act on cargo-bearing targets
		eventType = Pirates
	case hasIllegalGoods && g.rng.Float64() < g.cfg.PoliceChanceIllegal:
		eventType = Police
	default:
		eventType = g.drawWeightedType()
	}

	enemy := g.selectEnemy(eventType)
	return &Event{
		Type:        eventType,
		Enemy:       enemy,
		Description: describeEvent(eventType, enemy, hasCargo),
		HasCargo:    hasCargo,
	}
}

// drawWeightedType samples the configured cumulative distribution, falling
// back to pirates on floating-point edge cases
func (g *Generator) drawWeightedType() EventType {
	draw := g.rng.Float64()
	cumulative := 0.0
	for _, tw := range g.cfg.TypeWeights {
		cumulative += tw.Weight
		if draw <= cumulative {
			return tw.Type
		}
	}
	return Pirates
}

// selectEnemy draws uniformly from the catalog for the chosen type,
// substituting the default enemy if the catalog entry is empty
func (g *Generator) selectEnemy(t EventType) Enemy {
	enemies := enemyCatalog[t]
	if len(enemies) == 0 {
		return defaultEnemy(t)
	}
	return enemies[g.rng.Intn(len(enemies))]
}

func describeEvent(t EventType, enemy Enemy, hasCargo bool) string {
	switch t {
	case Pirates:
		if hasCargo {
			return fmt.Sprintf("A %s appears! They demand your cargo and threaten to attack.", enemy.Name)
		}
		return fmt.Sprintf("A %s appears! They demand payment and fuel, threatening to attack.", enemy.Name)
	case Police:
		return fmt.Sprintf("A %s hails you for inspection. They suspect illegal cargo.", enemy.Name)
	case Traders:
		return fmt.Sprintf("A %s crosses your path. They seem vulnerable.", enemy.Name)
	}
	return "An unexpected encounter occurs!"
}
