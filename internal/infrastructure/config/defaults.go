package config

import "time"

// SetDefaults sets default values for all configuration fields
func SetDefaults(cfg *Config) {
	// Database defaults
	if cfg.Database.Type == "" {
		cfg.Database.Type = "sqlite"
	}
	if cfg.Database.Host == "" {
		cfg.Database.Host = "localhost"
	}
	if cfg.Database.Port == 0 {
		cfg.Database.Port = 5432
	}
	if cfg.Database.User == "" {
		cfg.Database.User = "galactictrader"
	}
	if cfg.Database.Name == "" {
		cfg.Database.Name = "galactictrader"
	}
	if cfg.Database.SSLMode == "" {
		cfg.Database.SSLMode = "disable"
	}
	if cfg.Database.Path == "" {
		cfg.Database.Path = "galactic-trader.db"
	}
	if cfg.Database.Pool.MaxOpen == 0 {
		cfg.Database.Pool.MaxOpen = 25
	}
	if cfg.Database.Pool.MaxIdle == 0 {
		cfg.Database.Pool.MaxIdle = 5
	}
	if cfg.Database.Pool.MaxLifetime == 0 {
		cfg.Database.Pool.MaxLifetime = 5 * time.Minute
	}

	// Game defaults
	if cfg.Game.StartingCredits == 0 {
		cfg.Game.StartingCredits = 1000
	}
	if cfg.Game.StartingFuel == 0 {
		cfg.Game.StartingFuel = 100
	}
	if cfg.Game.StartingHealth == 0 {
		cfg.Game.StartingHealth = 100
	}
	if cfg.Game.GalaxySize == 0 {
		cfg.Game.GalaxySize = 10
	}
	if cfg.Game.MissionCount == 0 {
		cfg.Game.MissionCount = 3
	}
	if cfg.Game.MinCargoValueForFines == 0 {
		cfg.Game.MinCargoValueForFines = 1000
	}
	if cfg.Game.Encounter.BaseChance == 0 {
		cfg.Game.Encounter.BaseChance = 0.45
	}
	if cfg.Game.Encounter.CargoBonus == 0 {
		cfg.Game.Encounter.CargoBonus = 0.10
	}
	if cfg.Game.Encounter.IllegalBonus == 0 {
		cfg.Game.Encounter.IllegalBonus = 0.15
	}
	if cfg.Game.Encounter.MaxChance == 0 {
		cfg.Game.Encounter.MaxChance = 0.75
	}
	if cfg.Game.Encounter.CargoValueThreshold == 0 {
		cfg.Game.Encounter.CargoValueThreshold = 500
	}

	// Logging defaults
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "text"
	}
	if cfg.Logging.Output == "" {
		cfg.Logging.Output = "stdout"
	}

	// Metrics defaults
	if cfg.Metrics.Host == "" {
		cfg.Metrics.Host = "localhost"
	}
	if cfg.Metrics.Port == 0 {
		cfg.Metrics.Port = 9090
	}
	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = "/metrics"
	}
}
