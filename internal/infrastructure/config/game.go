package config

// GameConfig holds new-game tuning: starting resources, world size, and
// encounter chances
type GameConfig struct {
	// Starting player resources
	StartingCredits int     `mapstructure:"starting_credits" validate:"omitempty,min=0"`
	StartingFuel    float64 `mapstructure:"starting_fuel" validate:"omitempty,min=0"`
	StartingHealth  int     `mapstructure:"starting_health" validate:"omitempty,min=1"`

	// Number of bodies in a generated galaxy
	GalaxySize int `mapstructure:"galaxy_size" validate:"omitempty,min=1"`

	// Missions offered per generation pass
	MissionCount int `mapstructure:"mission_count" validate:"omitempty,min=1"`

	// Floor on the cargo value used for encounter fines
	MinCargoValueForFines int `mapstructure:"min_cargo_value_for_fines" validate:"omitempty,min=0"`

	// Encounter trigger tuning
	Encounter EncounterConfig `mapstructure:"encounter"`
}

// EncounterConfig holds the per-trip encounter chance tuning. All values are
// probabilities in [0,1].
type EncounterConfig struct {
	BaseChance   float64 `mapstructure:"base_chance" validate:"omitempty,min=0,max=1"`
	CargoBonus   float64 `mapstructure:"cargo_bonus" validate:"omitempty,min=0,max=1"`
	IllegalBonus float64 `mapstructure:"illegal_bonus" validate:"omitempty,min=0,max=1"`
	MaxChance    float64 `mapstructure:"max_chance" validate:"omitempty,min=0,max=1"`

	// Cargo value above which the cargo bonus applies
	CargoValueThreshold int `mapstructure:"cargo_value_threshold" validate:"omitempty,min=0"`
}
