package commands_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/galactictrader/galactic-trader-go/internal/application/travel"
	"github.com/galactictrader/galactic-trader-go/internal/application/travel/commands"
	"github.com/galactictrader/galactic-trader-go/internal/domain/encounter"
	"github.com/galactictrader/galactic-trader-go/internal/domain/galaxy"
	"github.com/galactictrader/galactic-trader-go/internal/domain/game"
	"github.com/galactictrader/galactic-trader-go/internal/domain/market"
	"github.com/galactictrader/galactic-trader-go/internal/domain/shared"
)

// newTravelSession pins the galaxy to two bodies 50 units apart
func newTravelSession(t *testing.T) *game.Session {
	t.Helper()
	session := game.NewSession(shared.NewSeededRand(3), nil, game.DefaultSettings())
	session.Galaxy = []galaxy.Body{
		{ID: "body-0", Name: "planet 1", Type: galaxy.Planet, Position: shared.NewPosition(0, 0, 0)},
		{ID: "body-1", Name: "station 2", Type: galaxy.Station, Position: shared.NewPosition(30, 40, 0)},
	}
	session.CurrentBodyID = "body-0"
	session.Player.Position = shared.NewPosition(0, 0, 0)
	return session
}

func newTripHandler(rng shared.Rand, generatorRng shared.Rand) *commands.InitiateTripHandler {
	generator := encounter.NewGenerator(generatorRng, encounter.DefaultConfig())
	return commands.NewInitiateTripHandler(rng, generator, travel.DefaultEncounterPolicy(), nil)
}

func TestInitiateTrip_MovesAndConsumesFuel(t *testing.T) {
	session := newTravelSession(t)
	// Trigger draw 0.99 misses every policy chance
	handler := newTripHandler(&shared.SequenceRand{FallbackFloat: 0.99}, shared.NewSeededRand(1))

	response, err := handler.Handle(context.Background(), &commands.InitiateTripCommand{
		Session:       session,
		DestinationID: "body-1",
	})

	require.NoError(t, err)
	result := response.(*commands.InitiateTripResponse)
	assert.False(t, result.Rejected)
	assert.InDelta(t, 50.0, result.Plan.Distance, 1e-9)
	assert.InDelta(t, 5.0, result.Plan.FuelCost, 1e-9)
	assert.Nil(t, result.Event)

	assert.Equal(t, "body-1", session.CurrentBodyID)
	assert.InDelta(t, 95.0, session.Player.Fuel.Current, 1e-9)
	assert.Equal(t, shared.NewPosition(30, 40, 0), session.Player.Position)
	assert.False(t, session.HasPendingEvent())
}

func TestInitiateTrip_InsufficientFuel(t *testing.T) {
	session := newTravelSession(t)
	session.Player.ConsumeFuel(96)

	handler := newTripHandler(&shared.SequenceRand{FallbackFloat: 0.99}, shared.NewSeededRand(1))
	response, err := handler.Handle(context.Background(), &commands.InitiateTripCommand{
		Session:       session,
		DestinationID: "body-1",
	})

	require.NoError(t, err)
	result := response.(*commands.InitiateTripResponse)
	assert.True(t, result.Rejected)
	assert.Equal(t, "insufficient fuel: need 5.0, have 4.0", result.Reason)
	assert.Equal(t, "body-0", session.CurrentBodyID)
	assert.InDelta(t, 4.0, session.Player.Fuel.Current, 1e-9)
}

func TestInitiateTrip_RejectsBadDestinations(t *testing.T) {
	handler := newTripHandler(&shared.SequenceRand{FallbackFloat: 0.99}, shared.NewSeededRand(1))

	tests := []struct {
		name        string
		destination string
		reason      string
	}{
		{"unknown destination", "body-99", "unknown destination"},
		{"already docked there", "body-0", "already at destination"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			session := newTravelSession(t)

			response, err := handler.Handle(context.Background(), &commands.InitiateTripCommand{
				Session:       session,
				DestinationID: tt.destination,
			})

			require.NoError(t, err)
			result := response.(*commands.InitiateTripResponse)
			assert.True(t, result.Rejected)
			assert.Equal(t, tt.reason, result.Reason)
		})
	}
}

func TestInitiateTrip_BlockedByPendingEncounter(t *testing.T) {
	session := newTravelSession(t)
	require.NoError(t, session.SetEvent(&encounter.Event{Type: encounter.Pirates}))

	handler := newTripHandler(&shared.SequenceRand{FallbackFloat: 0.99}, shared.NewSeededRand(1))
	response, err := handler.Handle(context.Background(), &commands.InitiateTripCommand{
		Session:       session,
		DestinationID: "body-1",
	})

	require.NoError(t, err)
	result := response.(*commands.InitiateTripResponse)
	assert.True(t, result.Rejected)
	assert.Equal(t, "encounter pending", result.Reason)
	assert.Equal(t, "body-0", session.CurrentBodyID)
}

func TestInitiateTrip_TriggersPirateEncounterWithoutCargo(t *testing.T) {
	session := newTravelSession(t)
	// Trigger draw 0.0 always fires; an empty hold forces pirates
	handler := newTripHandler(&shared.SequenceRand{FallbackFloat: 0.0}, shared.NewSeededRand(1))

	response, err := handler.Handle(context.Background(), &commands.InitiateTripCommand{
		Session:       session,
		DestinationID: "body-1",
	})

	require.NoError(t, err)
	result := response.(*commands.InitiateTripResponse)
	assert.False(t, result.Rejected)
	require.NotNil(t, result.Event)
	assert.Equal(t, encounter.Pirates, result.Event.Type)
	assert.False(t, result.Event.HasCargo)

	// The trip itself completed before the ambush
	assert.Equal(t, "body-1", session.CurrentBodyID)
	assert.True(t, session.HasPendingEvent())
	assert.Same(t, result.Event, session.CurrentEvent)
}

func TestInitiateTrip_ContrabandDrawsPolice(t *testing.T) {
	session := newTravelSession(t)
	session.Player.Inventory.Add(market.Contraband, 2)
	// Trigger draw 0.0 fires; type draw 0.7 lands in the police share
	rng := &shared.SequenceRand{Floats: []float64{0.0, 0.7}}
	handler := newTripHandler(rng, shared.NewSeededRand(1))

	response, err := handler.Handle(context.Background(), &commands.InitiateTripCommand{
		Session:       session,
		DestinationID: "body-1",
	})

	require.NoError(t, err)
	result := response.(*commands.InitiateTripResponse)
	require.NotNil(t, result.Event)
	assert.Equal(t, encounter.Police, result.Event.Type)
	assert.True(t, result.Event.HasCargo)
}
