package ship

import (
	"fmt"
	"math"

	"github.com/galactictrader/galactic-trader-go/pkg/utils"
)

// ComponentType identifies one of the five upgradeable ship systems
type ComponentType string

const (
	Engine   ComponentType = "engine"
	Cargo    ComponentType = "cargo"
	Weapons  ComponentType = "weapons"
	Shields  ComponentType = "shields"
	FuelTank ComponentType = "fuelTank"
)

const (
	// MaxLevel is terminal: a component at MaxLevel cannot be upgraded further
	MaxLevel = 5

	// BaseUpgradeCost is the level-1 upgrade price; each level multiplies it
	BaseUpgradeCost = 500

	upgradeCostGrowth = 1.5
	statGrowth        = 1.2
)

// AllComponentTypes returns the component enumeration in catalog order
func AllComponentTypes() []ComponentType {
	return []ComponentType{Engine, Cargo, Weapons, Shields, FuelTank}
}

// IsValid checks membership in the component enumeration
func (t ComponentType) IsValid() bool {
	switch t {
	case Engine, Cargo, Weapons, Shields, FuelTank:
		return true
	}
	return false
}

// Component is the shared header of every ship component: its level and the
// cost of the next upgrade. Stat records live on the typed wrappers.
type Component struct {
	Type        ComponentType `json:"type"`
	Name        string        `json:"name"`
	Level       int           `json:"level"`
	MaxLevel    int           `json:"maxLevel"`
	UpgradeCost int           `json:"upgradeCost"`
}

// CanUpgrade checks both the level cap and affordability
func (c Component) CanUpgrade(credits int) bool {
	return c.Level < c.MaxLevel && credits >= c.UpgradeCost
}

// AtMaxLevel checks the terminal state
func (c Component) AtMaxLevel() bool {
	return c.Level >= c.MaxLevel
}

// upgraded advances the header one level. Level, stats and cost only ever
// increase; the terminal level is rejected.
func (c Component) upgraded() (Component, error) {
	if c.AtMaxLevel() {
		return c, fmt.Errorf("component %s already at max level %d", c.Type, c.MaxLevel)
	}
	c.Level++
	c.UpgradeCost = UpgradeCostAt(c.Level)
	return c, nil
}

// UpgradeCostAt returns the upgrade price at a given level:
// round(500 * 1.5^(level-1))
func UpgradeCostAt(level int) int {
	return int(math.Round(BaseUpgradeCost * math.Pow(upgradeCostGrowth, float64(level-1))))
}

// statMultiplier is the per-level stat scale: 1.2^(level-1)
func statMultiplier(level int) float64 {
	return math.Pow(statGrowth, float64(level-1))
}

func newComponent(t ComponentType, name string) Component {
	return Component{
		Type:        t,
		Name:        name,
		Level:       1,
		MaxLevel:    MaxLevel,
		UpgradeCost: UpgradeCostAt(1),
	}
}

// Per-type stat records. Each component variant carries exactly the fields
// its system has; values scale from the level-1 base and are rounded to two
// decimals.

// EngineStats drive travel time and escape chance
type EngineStats struct {
	Speed          float64 `json:"speed"`
	FuelEfficiency float64 `json:"fuelEfficiency"`
}

// CargoStats set the hold capacity
type CargoStats struct {
	Capacity float64 `json:"capacity"`
}

// WeaponStats feed the attack side of combat resolution
type WeaponStats struct {
	Power float64 `json:"power"`
	Range float64 `json:"range"`
}

// ShieldStats feed the defense side of combat resolution
type ShieldStats struct {
	Strength     float64 `json:"strength"`
	RechargeRate float64 `json:"rechargeRate"`
}

// FuelTankStats set the fuel capacity
type FuelTankStats struct {
	Capacity float64 `json:"capacity"`
}

func engineStatsAt(level int) EngineStats {
	m := statMultiplier(level)
	return EngineStats{
		Speed:          utils.Round2(10 * m),
		FuelEfficiency: utils.Round2(1 * m),
	}
}

func cargoStatsAt(level int) CargoStats {
	return CargoStats{Capacity: utils.Round2(100 * statMultiplier(level))}
}

func weaponStatsAt(level int) WeaponStats {
	m := statMultiplier(level)
	return WeaponStats{
		Power: utils.Round2(10 * m),
		Range: utils.Round2(5 * m),
	}
}

func shieldStatsAt(level int) ShieldStats {
	m := statMultiplier(level)
	return ShieldStats{
		Strength:     utils.Round2(100 * m),
		RechargeRate: utils.Round2(1 * m),
	}
}

func fuelTankStatsAt(level int) FuelTankStats {
	return FuelTankStats{Capacity: utils.Round2(1000 * statMultiplier(level))}
}

// Typed component variants

type EngineComponent struct {
	Component
	Stats EngineStats `json:"stats"`
}

type CargoComponent struct {
	Component
	Stats CargoStats `json:"stats"`
}

type WeaponsComponent struct {
	Component
	Stats WeaponStats `json:"stats"`
}

type ShieldsComponent struct {
	Component
	Stats ShieldStats `json:"stats"`
}

type FuelTankComponent struct {
	Component
	Stats FuelTankStats `json:"stats"`
}

// Upgrade returns the component advanced one level with rescaled stats
func (c EngineComponent) Upgrade() (EngineComponent, error) {
	hdr, err := c.Component.upgraded()
	if err != nil {
		return c, err
	}
	return EngineComponent{Component: hdr, Stats: engineStatsAt(hdr.Level)}, nil
}

func (c CargoComponent) Upgrade() (CargoComponent, error) {
	hdr, err := c.Component.upgraded()
	if err != nil {
		return c, err
	}
	return CargoComponent{Component: hdr, Stats: cargoStatsAt(hdr.Level)}, nil
}

func (c WeaponsComponent) Upgrade() (WeaponsComponent, error) {
	hdr, err := c.Component.upgraded()
	if err != nil {
		return c, err
	}
	return WeaponsComponent{Component: hdr, Stats: weaponStatsAt(hdr.Level)}, nil
}

func (c ShieldsComponent) Upgrade() (ShieldsComponent, error) {
	hdr, err := c.Component.upgraded()
	if err != nil {
		return c, err
	}
	return ShieldsComponent{Component: hdr, Stats: shieldStatsAt(hdr.Level)}, nil
}

func (c FuelTankComponent) Upgrade() (FuelTankComponent, error) {
	hdr, err := c.Component.upgraded()
	if err != nil {
		return c, err
	}
	return FuelTankComponent{Component: hdr, Stats: fuelTankStatsAt(hdr.Level)}, nil
}
