package encounter

import (
	"fmt"
	"math"

	"github.com/galactictrader/galactic-trader-go/internal/domain/ship"
	"github.com/galactictrader/galactic-trader-go/internal/domain/shared"
	"github.com/galactictrader/galactic-trader-go/pkg/utils"
)

// Action is the player's chosen response to an encounter
type Action string

const (
	Fight  Action = "fight"
	Flee   Action = "flee"
	Comply Action = "comply"
)

// IsValid checks membership in the action enumeration
func (a Action) IsValid() bool {
	switch a {
	case Fight, Flee, Comply:
		return true
	}
	return false
}

// CargoLoss reports a percentage of the hold lost to an outcome, applied
// proportionally across every stocked resource
type CargoLoss struct {
	Type    string `json:"type"`
	Percent int    `json:"amount"`
}

// Outcome is produced exactly once per resolved encounter and then applied
// to player state. CreditsCost is signed: negative means the player gains.
type Outcome struct {
	Success     bool       `json:"success"`
	Damage      int        `json:"damage"`
	FuelCost    int        `json:"fuelCost"`
	CreditsCost int        `json:"creditsCost"`
	CargoLost   *CargoLoss `json:"cargoLost,omitempty"`
	Message     string     `json:"message"`
}

// Resolver computes probabilistic encounter outcomes. Each encounter is
// evaluated exactly once: Presented -> {Fight | Flee | Comply} -> Resolved.
type Resolver struct {
	rng shared.Rand
}

// NewResolver creates a resolver. Nil rng defaults to the real source.
func NewResolver(rng shared.Rand) *Resolver {
	if rng == nil {
		rng = shared.NewRealRand()
	}
	return &Resolver{rng: rng}
}

// Resolve computes the outcome of the chosen action against the enemy.
// Pure aside from its internal random draws; all player-state mutation is
// the caller's to apply.
func (r *Resolver) Resolve(stats ship.CombatStats, enemy Enemy, action Action, distance float64, cargoValue int, hasCargo bool) (Outcome, error) {
	switch action {
	case Fight:
		return r.resolveFight(stats, enemy, distance, cargoValue, hasCargo), nil
	case Flee:
		return r.resolveFlee(stats, enemy, distance, cargoValue, hasCargo), nil
	case Comply:
		return r.resolveComply(enemy, distance, cargoValue, hasCargo), nil
	}
	return Outcome{}, ErrInvalidAction
}

func (r *Resolver) resolveFight(stats ship.CombatStats, enemy Enemy, distance float64, cargoValue int, hasCargo bool) Outcome {
	successChance := (stats.Attack/enemy.Power + stats.Defense/enemy.Shields) / 2
	if r.rng.Float64() < successChance {
		return Outcome{
			Success:     true,
			Damage:      round(enemy.Power * r.rng.Float64() * 0.5),
			FuelCost:    0,
			CreditsCost: -enemy.Credits,
			Message:     fmt.Sprintf("Victory! You've defeated the %s and collected %d credits.", enemy.Name, enemy.Credits),
		}
	}

	outcome := Outcome{
		Success:     false,
		Damage:      round(enemy.Power * (0.5 + r.rng.Float64()*0.5)),
		FuelCost:    round(distance * 0.2),
		CreditsCost: round(float64(cargoValue) * 0.3),
		Message:     fmt.Sprintf("Defeat! You've suffered damage and %s while retreating.", lossPhrase(hasCargo)),
	}
	if hasCargo {
		outcome.CargoLost = r.randomCargoLoss(0.3)
	} else {
		outcome.CreditsCost = utils.Max(500, round(float64(cargoValue)*0.4))
		outcome.FuelCost = round(distance * 0.3)
	}
	return outcome
}

func (r *Resolver) resolveFlee(stats ship.CombatStats, enemy Enemy, distance float64, cargoValue int, hasCargo bool) Outcome {
	if r.rng.Float64() < stats.EscapeChance {
		return Outcome{
			Success:     true,
			Damage:      round(enemy.Power * r.rng.Float64() * 0.2),
			FuelCost:    round(distance * 0.3),
			CreditsCost: 0,
			Message:     "Successful escape! Used extra fuel to get away.",
		}
	}

	outcome := Outcome{
		Success:     false,
		Damage:      round(enemy.Power * r.rng.Float64() * 0.7),
		FuelCost:    round(distance * 0.4),
		CreditsCost: round(float64(cargoValue) * 0.2),
		Message:     fmt.Sprintf("Failed to escape! Took damage and %s while retreating.", lossPhrase(hasCargo)),
	}
	if hasCargo {
		outcome.CargoLost = r.randomCargoLoss(0.2)
	} else {
		outcome.CreditsCost = utils.Max(300, round(float64(cargoValue)*0.3))
		outcome.FuelCost = round(distance * 0.5)
	}
	return outcome
}

// resolveComply is deterministic: compliance always "succeeds", the only
// question is what it costs
func (r *Resolver) resolveComply(enemy Enemy, distance float64, cargoValue int, hasCargo bool) Outcome {
	if enemy.Type == Police {
		fine := utils.Max(400, round(float64(cargoValue)*0.4))
		return Outcome{
			Success:     true,
			Damage:      0,
			FuelCost:    0,
			CreditsCost: fine,
			Message:     fmt.Sprintf("Paid the fine of %d credits and avoided conflict.", fine),
		}
	}

	if hasCargo {
		return Outcome{
			Success:     true,
			Damage:      0,
			FuelCost:    0,
			CreditsCost: round(float64(cargoValue) * 0.1),
			CargoLost:   r.randomCargoLoss(0.3),
			Message:     "Surrendered some cargo and avoided conflict.",
		}
	}

	return Outcome{
		Success:     true,
		Damage:      0,
		FuelCost:    round(distance * 0.3),
		CreditsCost: utils.Max(500, round(float64(cargoValue)*0.3)),
		Message:     "Paid a hefty sum of credits and fuel to avoid conflict.",
	}
}

// randomCargoLoss draws a loss of up to maxFraction of the hold, expressed
// as a whole percentage
func (r *Resolver) randomCargoLoss(maxFraction float64) *CargoLoss {
	return &CargoLoss{
		Type:    "random",
		Percent: round(r.rng.Float64() * maxFraction * 100),
	}
}

func lossPhrase(hasCargo bool) string {
	if hasCargo {
		return "lost cargo"
	}
	return "paid credits"
}

func round(v float64) int {
	return int(math.Round(v))
}
