package ship

import "fmt"

// Components is the full loadout: one component per type
type Components struct {
	Engine   EngineComponent   `json:"engine"`
	Cargo    CargoComponent    `json:"cargo"`
	Weapons  WeaponsComponent  `json:"weapons"`
	Shields  ShieldsComponent  `json:"shields"`
	FuelTank FuelTankComponent `json:"fuelTank"`
}

// NewComponents creates the five components at level 1 with base stats
func NewComponents() Components {
	return Components{
		Engine:   EngineComponent{Component: newComponent(Engine, "Engine"), Stats: engineStatsAt(1)},
		Cargo:    CargoComponent{Component: newComponent(Cargo, "Cargo"), Stats: cargoStatsAt(1)},
		Weapons:  WeaponsComponent{Component: newComponent(Weapons, "Weapons"), Stats: weaponStatsAt(1)},
		Shields:  ShieldsComponent{Component: newComponent(Shields, "Shields"), Stats: shieldStatsAt(1)},
		FuelTank: FuelTankComponent{Component: newComponent(FuelTank, "FuelTank"), Stats: fuelTankStatsAt(1)},
	}
}

// Header returns the shared header for one component type
func (c *Components) Header(t ComponentType) (Component, error) {
	switch t {
	case Engine:
		return c.Engine.Component, nil
	case Cargo:
		return c.Cargo.Component, nil
	case Weapons:
		return c.Weapons.Component, nil
	case Shields:
		return c.Shields.Component, nil
	case FuelTank:
		return c.FuelTank.Component, nil
	}
	return Component{}, fmt.Errorf("unknown component type: %s", t)
}

// CanUpgrade checks the level cap and affordability for one component type
func (c *Components) CanUpgrade(t ComponentType, credits int) bool {
	hdr, err := c.Header(t)
	if err != nil {
		return false
	}
	return hdr.CanUpgrade(credits)
}

// Upgrade advances one component a level in place. The caller is expected to
// have checked CanUpgrade and charged the credits.
func (c *Components) Upgrade(t ComponentType) error {
	switch t {
	case Engine:
		up, err := c.Engine.Upgrade()
		if err != nil {
			return err
		}
		c.Engine = up
	case Cargo:
		up, err := c.Cargo.Upgrade()
		if err != nil {
			return err
		}
		c.Cargo = up
	case Weapons:
		up, err := c.Weapons.Upgrade()
		if err != nil {
			return err
		}
		c.Weapons = up
	case Shields:
		up, err := c.Shields.Upgrade()
		if err != nil {
			return err
		}
		c.Shields = up
	case FuelTank:
		up, err := c.FuelTank.Upgrade()
		if err != nil {
			return err
		}
		c.FuelTank = up
	default:
		return fmt.Errorf("unknown component type: %s", t)
	}
	return nil
}
