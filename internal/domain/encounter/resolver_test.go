package encounter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/galactictrader/galactic-trader-go/internal/domain/encounter"
	"github.com/galactictrader/galactic-trader-go/internal/domain/shared"
	"github.com/galactictrader/galactic-trader-go/internal/domain/ship"
)

func baseStats() ship.CombatStats {
	return ship.CombatStats{Attack: 10, Defense: 100, EscapeChance: 0.5}
}

func pirateRaider() encounter.Enemy {
	return encounter.Enemy{
		Name:    "Pirate Raider",
		Type:    encounter.Pirates,
		Power:   80,
		Shields: 60,
		Speed:   70,
		Credits: 1000,
	}
}

func policePatrol() encounter.Enemy {
	return encounter.Enemy{
		Name:    "Police Patrol",
		Type:    encounter.Police,
		Power:   60,
		Shields: 50,
		Speed:   90,
		Credits: 0,
	}
}

func TestResolve_InvalidAction(t *testing.T) {
	r := encounter.NewResolver(shared.NewSeededRand(1))

	_, err := r.Resolve(baseStats(), pirateRaider(), encounter.Action("negotiate"), 50, 0, false)

	assert.ErrorIs(t, err, encounter.ErrInvalidAction)
}

func TestResolve_FightVictory(t *testing.T) {
	// Success chance is (10/80 + 100/60)/2 ~ 0.90; draw 0.1 wins, damage
	// draw 0.5 yields round(80 * 0.5 * 0.5) = 20
	rng := &shared.SequenceRand{Floats: []float64{0.1, 0.5}}
	r := encounter.NewResolver(rng)

	outcome, err := r.Resolve(baseStats(), pirateRaider(), encounter.Fight, 50, 500, true)

	require.NoError(t, err)
	assert.True(t, outcome.Success)
	assert.Equal(t, 20, outcome.Damage)
	assert.Equal(t, 0, outcome.FuelCost)
	assert.Equal(t, -1000, outcome.CreditsCost)
	assert.Nil(t, outcome.CargoLost)
}

func TestResolve_FightDefeatWithCargo(t *testing.T) {
	// Draw 0.99 loses; damage draw 0.5 yields round(80 * 0.75) = 60,
	// cargo loss draw 0.5 yields 15 percent
	rng := &shared.SequenceRand{Floats: []float64{0.99, 0.5, 0.5}}
	r := encounter.NewResolver(rng)

	outcome, err := r.Resolve(baseStats(), pirateRaider(), encounter.Fight, 100, 1000, true)

	require.NoError(t, err)
	assert.False(t, outcome.Success)
	assert.Equal(t, 60, outcome.Damage)
	assert.Equal(t, 20, outcome.FuelCost)
	assert.Equal(t, 300, outcome.CreditsCost)
	require.NotNil(t, outcome.CargoLost)
	assert.Equal(t, 15, outcome.CargoLost.Percent)
}

func TestResolve_FightDefeatEmptyHold(t *testing.T) {
	rng := &shared.SequenceRand{Floats: []float64{0.99, 0.5}}
	r := encounter.NewResolver(rng)

	outcome, err := r.Resolve(baseStats(), pirateRaider(), encounter.Fight, 100, 0, false)

	require.NoError(t, err)
	assert.False(t, outcome.Success)
	// No hold to raid, so the floor payment and extra fuel apply instead
	assert.Equal(t, 500, outcome.CreditsCost)
	assert.Equal(t, 30, outcome.FuelCost)
	assert.Nil(t, outcome.CargoLost)
}

func TestResolve_FleeSuccess(t *testing.T) {
	// Escape draw 0.2 < 0.5 escapes; graze draw 0.0 means no damage
	rng := &shared.SequenceRand{Floats: []float64{0.2, 0.0}}
	r := encounter.NewResolver(rng)

	outcome, err := r.Resolve(baseStats(), pirateRaider(), encounter.Flee, 100, 500, true)

	require.NoError(t, err)
	assert.True(t, outcome.Success)
	assert.Equal(t, 0, outcome.Damage)
	assert.Equal(t, 30, outcome.FuelCost)
	assert.Equal(t, 0, outcome.CreditsCost)
}

func TestResolve_FleeFailureWithCargo(t *testing.T) {
	rng := &shared.SequenceRand{Floats: []float64{0.9, 0.5, 0.5}}
	r := encounter.NewResolver(rng)

	outcome, err := r.Resolve(baseStats(), pirateRaider(), encounter.Flee, 100, 1000, true)

	require.NoError(t, err)
	assert.False(t, outcome.Success)
	assert.Equal(t, 28, outcome.Damage)
	assert.Equal(t, 40, outcome.FuelCost)
	assert.Equal(t, 200, outcome.CreditsCost)
	require.NotNil(t, outcome.CargoLost)
	assert.Equal(t, 10, outcome.CargoLost.Percent)
}

func TestResolve_ComplyWithPoliceAppliesFloorFine(t *testing.T) {
	r := encounter.NewResolver(shared.NewSeededRand(1))

	outcome, err := r.Resolve(baseStats(), policePatrol(), encounter.Comply, 50, 100, true)

	require.NoError(t, err)
	assert.True(t, outcome.Success)
	assert.Equal(t, 0, outcome.Damage)
	assert.Equal(t, 0, outcome.FuelCost)
	assert.Equal(t, 400, outcome.CreditsCost)
	assert.Nil(t, outcome.CargoLost)
}

func TestResolve_ComplyWithPoliceScalesAboveFloor(t *testing.T) {
	r := encounter.NewResolver(shared.NewSeededRand(1))

	outcome, err := r.Resolve(baseStats(), policePatrol(), encounter.Comply, 50, 2000, true)

	require.NoError(t, err)
	assert.Equal(t, 800, outcome.CreditsCost)
}

func TestResolve_ComplyWithPiratesSurrendersCargo(t *testing.T) {
	rng := &shared.SequenceRand{Floats: []float64{0.5}}
	r := encounter.NewResolver(rng)

	outcome, err := r.Resolve(baseStats(), pirateRaider(), encounter.Comply, 50, 1000, true)

	require.NoError(t, err)
	assert.True(t, outcome.Success)
	assert.Equal(t, 100, outcome.CreditsCost)
	require.NotNil(t, outcome.CargoLost)
	assert.Equal(t, 15, outcome.CargoLost.Percent)
}

func TestResolve_ComplyWithPiratesEmptyHold(t *testing.T) {
	r := encounter.NewResolver(shared.NewSeededRand(1))

	outcome, err := r.Resolve(baseStats(), pirateRaider(), encounter.Comply, 100, 0, false)

	require.NoError(t, err)
	assert.True(t, outcome.Success)
	assert.Equal(t, 500, outcome.CreditsCost)
	assert.Equal(t, 30, outcome.FuelCost)
	assert.Nil(t, outcome.CargoLost)
}

func TestResolve_CostsNeverNegativeExceptLoot(t *testing.T) {
	r := encounter.NewResolver(shared.NewSeededRand(7))
	actions := []encounter.Action{encounter.Fight, encounter.Flee, encounter.Comply}

	for i := 0; i < 300; i++ {
		action := actions[i%len(actions)]
		outcome, err := r.Resolve(baseStats(), pirateRaider(), action, 75, 600, true)
		require.NoError(t, err)

		assert.GreaterOrEqual(t, outcome.Damage, 0)
		assert.GreaterOrEqual(t, outcome.FuelCost, 0)
		if outcome.CreditsCost < 0 {
			// Gaining credits only happens on a won fight
			assert.Equal(t, encounter.Fight, action)
			assert.True(t, outcome.Success)
		}
		if outcome.CargoLost != nil {
			assert.GreaterOrEqual(t, outcome.CargoLost.Percent, 0)
			assert.LessOrEqual(t, outcome.CargoLost.Percent, 30)
		}
	}
}
