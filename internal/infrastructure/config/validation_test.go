package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/galactictrader/galactic-trader-go/internal/infrastructure/config"
)

func defaultConfig() *config.Config {
	cfg := &config.Config{}
	config.SetDefaults(cfg)
	return cfg
}

func TestValidateConfig_DefaultsAreValid(t *testing.T) {
	require.NoError(t, config.ValidateConfig(defaultConfig()))
}

func TestValidateConfig_ReportsEveryBadField(t *testing.T) {
	cfg := defaultConfig()
	cfg.Logging.Level = "loud"
	cfg.Logging.Output = "pipe"
	cfg.Game.Encounter.BaseChance = 1.5

	err := config.ValidateConfig(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Logging.Level")
	assert.Contains(t, err.Error(), "Logging.Output")
	assert.Contains(t, err.Error(), "Encounter.BaseChance")
}

func TestValidateConfig_RejectsUnknownDatabaseType(t *testing.T) {
	cfg := defaultConfig()
	cfg.Database.Type = "mysql"

	err := config.ValidateConfig(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Database.Type")
}
