package player

import (
	"github.com/galactictrader/galactic-trader-go/internal/domain/cargo"
	"github.com/galactictrader/galactic-trader-go/internal/domain/encounter"
	"github.com/galactictrader/galactic-trader-go/internal/domain/shared"
	"github.com/galactictrader/galactic-trader-go/pkg/utils"
)

// State is the player snapshot the core computes over. Credits, fuel,
// health and cargo totals are clamped at zero at every mutation site; they
// can never go negative.
type State struct {
	Position      shared.Position `json:"position"`
	Fuel          shared.Fuel     `json:"fuel"`
	Speed         float64         `json:"speed"`
	Credits       int             `json:"credits"`
	CargoCapacity int             `json:"cargoCapacity"`
	Inventory     cargo.Inventory `json:"inventory"`
	Health        int             `json:"health"`
	Reputation    int             `json:"reputation"`
}

// NewState creates a fresh player with the given starting resources
func NewState(credits int, fuel float64, health, cargoCapacity int, speed float64) State {
	return State{
		Fuel:          shared.FullTank(fuel),
		Speed:         speed,
		Credits:       credits,
		CargoCapacity: cargoCapacity,
		Inventory:     cargo.NewInventory(),
		Health:        health,
	}
}

// CargoUsed returns the occupied hold units
func (s *State) CargoUsed() int {
	return s.Inventory.TotalUnits()
}

// HasCargo checks whether anything is held
func (s *State) HasCargo() bool {
	return !s.Inventory.IsEmpty()
}

// Destroyed reports the terminal health state. The core records it and
// leaves the game-over policy to the caller.
func (s *State) Destroyed() bool {
	return s.Health <= 0
}

// SpendCredits deducts an amount, floored at zero
func (s *State) SpendCredits(amount int) {
	s.Credits = utils.Max(0, s.Credits-amount)
}

// EarnCredits adds an amount
func (s *State) EarnCredits(amount int) {
	if amount > 0 {
		s.Credits += amount
	}
}

// ConsumeFuel burns fuel, floored at empty
func (s *State) ConsumeFuel(amount float64) {
	s.Fuel = s.Fuel.Consume(amount)
}

// Refuel adds fuel, capped at the tank
func (s *State) Refuel(amount float64) {
	s.Fuel = s.Fuel.Add(amount)
}

// TakeDamage reduces health, floored at zero
func (s *State) TakeDamage(amount int) {
	if amount > 0 {
		s.Health = utils.Max(0, s.Health-amount)
	}
}

// ApplyOutcome folds an encounter outcome into the player state: signed
// credits delta, fuel cost, damage, and proportional cargo loss, all with
// zero floors
func (s *State) ApplyOutcome(outcome encounter.Outcome) {
	s.Credits = utils.Max(0, s.Credits-outcome.CreditsCost)
	if outcome.FuelCost > 0 {
		s.ConsumeFuel(float64(outcome.FuelCost))
	}
	s.TakeDamage(outcome.Damage)
	if outcome.CargoLost != nil {
		s.Inventory.LosePercent(outcome.CargoLost.Percent)
	}
}
