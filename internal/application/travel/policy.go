package travel

// EncounterPolicy is the authoritative trip-time trigger: a base chance
// with cargo and contraband bonuses, capped so an encounter never becomes
// certain. The encounter generator's internal probability formula is only
// the fallback for unforced generation.
type EncounterPolicy struct {
	BaseChance          float64
	CargoBonus          float64
	IllegalBonus        float64
	MaxChance           float64
	CargoValueThreshold int

	// PirateShare and PoliceShare partition the type draw: draws below
	// PirateShare force pirates; draws below PoliceShare force police when
	// contraband is aboard; everything else defaults to pirates
	PirateShare float64
	PoliceShare float64
}

// DefaultEncounterPolicy returns the standing trip-time tuning
func DefaultEncounterPolicy() EncounterPolicy {
	return EncounterPolicy{
		BaseChance:          0.45,
		CargoBonus:          0.10,
		IllegalBonus:        0.15,
		MaxChance:           0.75,
		CargoValueThreshold: 500,
		PirateShare:         0.6,
		PoliceShare:         0.9,
	}
}

// Chance computes the trigger probability for one trip
func (p EncounterPolicy) Chance(cargoValue int, hasCargo, hasIllegalGoods bool) float64 {
	chance := p.BaseChance
	if hasCargo && cargoValue > p.CargoValueThreshold {
		chance += p.CargoBonus
	}
	if hasIllegalGoods {
		chance += p.IllegalBonus
	}
	if chance > p.MaxChance {
		chance = p.MaxChance
	}
	return chance
}
