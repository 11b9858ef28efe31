package ship

import "github.com/galactictrader/galactic-trader-go/pkg/utils"

// escapeDivisor converts engine speed into an escape probability
const escapeDivisor = 20

// CombatStats are derived from the loadout at resolution time, never stored
type CombatStats struct {
	Attack       float64 `json:"attack"`
	Defense      float64 `json:"defense"`
	EscapeChance float64 `json:"escapeChance"`
}

// CombatStats derives the combat profile: attack from weapon power, defense
// from shield strength, escape chance from engine speed clamped into [0, 1]
func (c *Components) CombatStats() CombatStats {
	return CombatStats{
		Attack:       c.Weapons.Stats.Power,
		Defense:      c.Shields.Stats.Strength,
		EscapeChance: utils.Clamp01(c.Engine.Stats.Speed / escapeDivisor),
	}
}
