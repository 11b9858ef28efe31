package persistence_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/galactictrader/galactic-trader-go/internal/adapters/persistence"
	"github.com/galactictrader/galactic-trader-go/internal/domain/encounter"
	"github.com/galactictrader/galactic-trader-go/internal/domain/game"
	"github.com/galactictrader/galactic-trader-go/internal/domain/market"
	"github.com/galactictrader/galactic-trader-go/internal/domain/mission"
	"github.com/galactictrader/galactic-trader-go/internal/domain/shared"
	"github.com/galactictrader/galactic-trader-go/internal/domain/ship"
	"github.com/galactictrader/galactic-trader-go/test/helpers"
)

func newRepository(t *testing.T) *persistence.GormSessionRepository {
	t.Helper()
	return persistence.NewGormSessionRepository(helpers.NewTestDB(t))
}

func seedSession(t *testing.T) *game.Session {
	t.Helper()
	session := game.NewSession(shared.NewSeededRand(3), nil, game.DefaultSettings())
	session.LastSaved = time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	return session
}

func TestSaveAndFindByID_RoundTrip(t *testing.T) {
	repo := newRepository(t)
	ctx := context.Background()

	session := seedSession(t)
	session.Player.Inventory.Add(market.Metals, 7)
	session.Player.Inventory.Add(market.Contraband, 2)
	session.Player.SpendCredits(300)
	session.Player.TakeDamage(15)
	session.Player.Reputation = 12
	session.Player.ConsumeFuel(20.5)
	require.NoError(t, session.Components.Upgrade(ship.Cargo))
	require.NoError(t, session.MissionLog.Accept(mission.Mission{
		ID:         "m-1",
		Title:      "Quiet delivery",
		Type:       mission.Smuggling,
		Status:     mission.StatusAvailable,
		Reward:     mission.Reward{Credits: 2000, Reputation: 15},
		RiskLevel:  3,
		ExpiryTime: session.LastSaved.Add(24 * time.Hour),
	}))

	require.NoError(t, repo.Save(ctx, session))

	loaded, err := repo.FindByID(ctx, session.ID)
	require.NoError(t, err)

	assert.Equal(t, session.ID, loaded.ID)
	assert.Equal(t, session.Player, loaded.Player)
	assert.Equal(t, session.Components, loaded.Components)
	assert.Equal(t, session.MissionLog.Active, loaded.MissionLog.Active)
	assert.Equal(t, session.Galaxy, loaded.Galaxy)
	assert.Equal(t, session.CurrentBodyID, loaded.CurrentBodyID)
	assert.Equal(t, session.Settings, loaded.Settings)
	assert.True(t, session.LastSaved.Equal(loaded.LastSaved))
	assert.Nil(t, loaded.CurrentEvent)

	require.Len(t, loaded.Markets, len(session.Markets))
	for bodyID, m := range session.Markets {
		other, ok := loaded.Markets[bodyID]
		require.Truef(t, ok, "market for %s missing after load", bodyID)
		assert.ElementsMatch(t, m.Resources(), other.Resources())
	}
}

func TestSave_PersistsPendingEncounter(t *testing.T) {
	repo := newRepository(t)
	ctx := context.Background()

	session := seedSession(t)
	require.NoError(t, session.SetEvent(&encounter.Event{
		Type:        encounter.Pirates,
		Enemy:       encounter.Enemy{Name: "Pirate Raider", Type: encounter.Pirates, Power: 80, Shields: 60, Speed: 70, Credits: 1000},
		Description: "A Pirate Raider appears!",
		HasCargo:    true,
	}))

	require.NoError(t, repo.Save(ctx, session))

	loaded, err := repo.FindByID(ctx, session.ID)
	require.NoError(t, err)
	require.NotNil(t, loaded.CurrentEvent)
	assert.Equal(t, *session.CurrentEvent, *loaded.CurrentEvent)
}

func TestSave_UpdatesExistingSession(t *testing.T) {
	repo := newRepository(t)
	ctx := context.Background()

	session := seedSession(t)
	require.NoError(t, repo.Save(ctx, session))

	session.Player.EarnCredits(5000)
	session.CurrentBodyID = "body-4"
	require.NoError(t, repo.Save(ctx, session))

	loaded, err := repo.FindByID(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, 6000, loaded.Player.Credits)
	assert.Equal(t, "body-4", loaded.CurrentBodyID)

	sessions, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, sessions, 1)
}

func TestFindByID_NotFound(t *testing.T) {
	repo := newRepository(t)

	_, err := repo.FindByID(context.Background(), "missing")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "session not found")
}

func TestList(t *testing.T) {
	repo := newRepository(t)
	ctx := context.Background()

	first := seedSession(t)
	second := game.NewSession(shared.NewSeededRand(9), nil, game.DefaultSettings())
	require.NoError(t, repo.Save(ctx, first))
	require.NoError(t, repo.Save(ctx, second))

	sessions, err := repo.List(ctx)

	require.NoError(t, err)
	require.Len(t, sessions, 2)
	ids := []string{sessions[0].ID, sessions[1].ID}
	assert.ElementsMatch(t, []string{first.ID, second.ID}, ids)
}

func TestDelete(t *testing.T) {
	repo := newRepository(t)
	ctx := context.Background()

	session := seedSession(t)
	require.NoError(t, repo.Save(ctx, session))
	require.NoError(t, repo.Delete(ctx, session.ID))

	_, err := repo.FindByID(ctx, session.ID)
	assert.Error(t, err)

	// Deleting a missing id is not an error
	assert.NoError(t, repo.Delete(ctx, "missing"))
}
