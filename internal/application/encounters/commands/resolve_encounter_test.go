package commands_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/galactictrader/galactic-trader-go/internal/application/encounters/commands"
	"github.com/galactictrader/galactic-trader-go/internal/domain/encounter"
	"github.com/galactictrader/galactic-trader-go/internal/domain/game"
	"github.com/galactictrader/galactic-trader-go/internal/domain/market"
	"github.com/galactictrader/galactic-trader-go/internal/domain/shared"
)

func newSessionWithEvent(t *testing.T, enemy encounter.Enemy, hasCargo bool) *game.Session {
	t.Helper()
	session := game.NewSession(shared.NewSeededRand(3), nil, game.DefaultSettings())
	require.NoError(t, session.SetEvent(&encounter.Event{
		Type:     enemy.Type,
		Enemy:    enemy,
		HasCargo: hasCargo,
	}))
	return session
}

func TestResolveEncounter_ComplyWithPolice(t *testing.T) {
	enemy := encounter.Enemy{Name: "Police Patrol", Type: encounter.Police, Power: 60, Shields: 50, Speed: 90}
	session := newSessionWithEvent(t, enemy, true)
	session.Player.Inventory.Add(market.Metals, 1)

	handler := commands.NewResolveEncounterHandler(encounter.NewResolver(shared.NewSeededRand(1)), nil)
	response, err := handler.Handle(context.Background(), &commands.ResolveEncounterCommand{
		Session:  session,
		Action:   encounter.Comply,
		Distance: 50,
	})

	require.NoError(t, err)
	result := response.(*commands.ResolveEncounterResponse)
	assert.False(t, result.Rejected)
	assert.True(t, result.Outcome.Success)
	assert.Equal(t, 0, result.Outcome.Damage)
	assert.Equal(t, 0, result.Outcome.FuelCost)
	// Fine floors at 400 against a near-empty hold
	assert.Equal(t, 400, result.Outcome.CreditsCost)
	assert.False(t, result.Destroyed)

	assert.Equal(t, 600, session.Player.Credits)
	assert.False(t, session.HasPendingEvent())
}

func TestResolveEncounter_CostsUseFlooredCargoValue(t *testing.T) {
	enemy := encounter.Enemy{Name: "Pirate Raider", Type: encounter.Pirates, Power: 80, Shields: 60, Speed: 70, Credits: 1000}
	session := newSessionWithEvent(t, enemy, true)
	session.Player.Inventory.Add(market.Metals, 1)

	// Cargo worth 100 is floored to the settings minimum of 1000, so the
	// pirate tribute is 10% of 1000, not 10% of 100
	rng := &shared.SequenceRand{Floats: []float64{0.5}}
	handler := commands.NewResolveEncounterHandler(encounter.NewResolver(rng), nil)
	response, err := handler.Handle(context.Background(), &commands.ResolveEncounterCommand{
		Session:  session,
		Action:   encounter.Comply,
		Distance: 50,
	})

	require.NoError(t, err)
	result := response.(*commands.ResolveEncounterResponse)
	assert.True(t, result.Outcome.Success)
	assert.Equal(t, 100, result.Outcome.CreditsCost)
	assert.Equal(t, 900, session.Player.Credits)
}

func TestResolveEncounter_WonFightPaysOut(t *testing.T) {
	enemy := encounter.Enemy{Name: "Merchant Vessel", Type: encounter.Traders, Power: 30, Shields: 40, Speed: 50, Credits: 800}
	session := newSessionWithEvent(t, enemy, false)

	// Success draw 0.0 always wins; damage draw 0.0 leaves the hull intact
	rng := &shared.SequenceRand{Floats: []float64{0.0, 0.0}}
	handler := commands.NewResolveEncounterHandler(encounter.NewResolver(rng), nil)
	response, err := handler.Handle(context.Background(), &commands.ResolveEncounterCommand{
		Session:  session,
		Action:   encounter.Fight,
		Distance: 50,
	})

	require.NoError(t, err)
	result := response.(*commands.ResolveEncounterResponse)
	assert.True(t, result.Outcome.Success)
	assert.Equal(t, -800, result.Outcome.CreditsCost)
	assert.Equal(t, 1800, session.Player.Credits)
	assert.Equal(t, 100, session.Player.Health)
}

func TestResolveEncounter_DestroyedReported(t *testing.T) {
	enemy := encounter.Enemy{Name: "Pirate Warlord", Type: encounter.Pirates, Power: 120, Shields: 100, Speed: 60, Credits: 2000}
	session := newSessionWithEvent(t, enemy, false)
	session.Player.TakeDamage(95)

	// Fight draw 0.99 loses; damage draw 1.0 deals the full 120
	rng := &shared.SequenceRand{Floats: []float64{0.99, 1.0}, FallbackFloat: 0.5}
	handler := commands.NewResolveEncounterHandler(encounter.NewResolver(rng), nil)
	response, err := handler.Handle(context.Background(), &commands.ResolveEncounterCommand{
		Session: session,
		Action:  encounter.Fight,
	})

	require.NoError(t, err)
	result := response.(*commands.ResolveEncounterResponse)
	assert.False(t, result.Outcome.Success)
	assert.True(t, result.Destroyed)
	assert.Equal(t, 0, session.Player.Health)
	assert.False(t, session.HasPendingEvent())
}

func TestResolveEncounter_NoPendingEvent(t *testing.T) {
	session := game.NewSession(shared.NewSeededRand(3), nil, game.DefaultSettings())

	handler := commands.NewResolveEncounterHandler(encounter.NewResolver(shared.NewSeededRand(1)), nil)
	response, err := handler.Handle(context.Background(), &commands.ResolveEncounterCommand{
		Session: session,
		Action:  encounter.Flee,
	})

	require.NoError(t, err)
	result := response.(*commands.ResolveEncounterResponse)
	assert.True(t, result.Rejected)
	assert.Equal(t, encounter.ErrNoPendingEvent.Error(), result.Reason)
}

func TestResolveEncounter_InvalidActionKeepsEventPending(t *testing.T) {
	enemy := encounter.Enemy{Name: "Pirate Raider", Type: encounter.Pirates, Power: 80, Shields: 60, Speed: 70, Credits: 1000}
	session := newSessionWithEvent(t, enemy, false)

	handler := commands.NewResolveEncounterHandler(encounter.NewResolver(shared.NewSeededRand(1)), nil)
	response, err := handler.Handle(context.Background(), &commands.ResolveEncounterCommand{
		Session: session,
		Action:  encounter.Action("bribe"),
	})

	require.NoError(t, err)
	result := response.(*commands.ResolveEncounterResponse)
	assert.True(t, result.Rejected)
	assert.Equal(t, encounter.ErrInvalidAction.Error(), result.Reason)
	assert.True(t, session.HasPendingEvent())
}
