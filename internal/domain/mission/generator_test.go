package mission_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/galactictrader/galactic-trader-go/internal/domain/galaxy"
	"github.com/galactictrader/galactic-trader-go/internal/domain/market"
	"github.com/galactictrader/galactic-trader-go/internal/domain/mission"
	"github.com/galactictrader/galactic-trader-go/internal/domain/shared"
)

func testBodies() []galaxy.Body {
	return []galaxy.Body{
		{ID: "body-0", Name: "planet 1", Type: galaxy.Planet, Position: shared.NewPosition(0, 0, 0)},
		{ID: "body-1", Name: "station 2", Type: galaxy.Station, Position: shared.NewPosition(30, 40, 0)},
		{ID: "body-2", Name: "planet 3", Type: galaxy.Planet, Position: shared.NewPosition(-10, 0, 0)},
	}
}

func TestGenerate_IsTotal(t *testing.T) {
	bodies := testBodies()
	g := mission.NewGenerator(shared.NewSeededRand(11), nil)

	for i := 0; i < 200; i++ {
		m, err := g.Generate(bodies[0], bodies, 0)
		require.NoError(t, err)

		assert.NotEmpty(t, m.ID)
		assert.NotEmpty(t, m.Title)
		assert.NotEmpty(t, m.Giver)
		assert.Equal(t, mission.StatusAvailable, m.Status)
		assert.Equal(t, 0, m.CompletionProgress)
		assert.GreaterOrEqual(t, m.RiskLevel, 1)
		assert.LessOrEqual(t, m.RiskLevel, 3)
		assert.Greater(t, m.Reward.Credits, 0)
		assert.Equal(t, m.RiskLevel*5, m.Reward.Reputation)
		assert.NotEmpty(t, m.Objectives)
	}
}

func TestGenerate_EmptyGalaxyFails(t *testing.T) {
	g := mission.NewGenerator(shared.NewSeededRand(1), nil)

	_, err := g.Generate(galaxy.Body{ID: "body-0"}, nil, 0)
	assert.ErrorIs(t, err, mission.ErrNoLocations)
}

func TestGenerate_SingleBodyGalaxyTargetsItself(t *testing.T) {
	bodies := testBodies()[:1]
	rng := &shared.SequenceRand{Ints: []int{0}}
	g := mission.NewGenerator(rng, nil)

	m, err := g.Generate(bodies[0], bodies, 0)
	require.NoError(t, err)

	assert.Equal(t, mission.Delivery, m.Type)
	require.Len(t, m.Objectives, 1)
	assert.Equal(t, "body-0", m.Objectives[0].TargetLocation)
}

func TestGenerate_SmugglingCarriesContraband(t *testing.T) {
	bodies := testBodies()
	// Type draw 1 selects smuggling; remaining draws take fallbacks
	rng := &shared.SequenceRand{Ints: []int{1}}
	g := mission.NewGenerator(rng, nil)

	m, err := g.Generate(bodies[0], bodies, 0)
	require.NoError(t, err)

	assert.Equal(t, mission.Smuggling, m.Type)
	require.Len(t, m.Objectives, 1)
	assert.Equal(t, mission.ObjectiveDeliver, m.Objectives[0].Type)
	assert.Equal(t, market.Contraband, m.Objectives[0].Resource)
}

func TestGenerate_TradeHasCollectAndDeliver(t *testing.T) {
	bodies := testBodies()
	rng := &shared.SequenceRand{Ints: []int{3}}
	g := mission.NewGenerator(rng, nil)

	m, err := g.Generate(bodies[0], bodies, 0)
	require.NoError(t, err)

	assert.Equal(t, mission.Trade, m.Type)
	require.Len(t, m.Objectives, 2)
	assert.Equal(t, mission.ObjectiveCollect, m.Objectives[0].Type)
	assert.Equal(t, mission.ObjectiveDeliver, m.Objectives[1].Type)
	assert.Equal(t, m.Objectives[0].Resource, m.Objectives[1].Resource)
}

func TestGenerate_RewardScalesWithDistanceAndRisk(t *testing.T) {
	bodies := testBodies()
	// Trade mission (risk multiplier 1.0) targeting body-1 at distance 50.
	// Risk draw 0.0 gives ceil(50/50 + 0) = 1, so no risk bonus:
	// round(800 * (1 + 50/100)) = 1200.
	rng := &shared.SequenceRand{Ints: []int{3, 0}, Floats: []float64{0.0}}
	g := mission.NewGenerator(rng, nil)

	m, err := g.Generate(bodies[0], bodies, 0)
	require.NoError(t, err)

	assert.Equal(t, mission.Trade, m.Type)
	assert.Equal(t, 1, m.RiskLevel)
	assert.Equal(t, 1200, m.Reward.Credits)
	assert.Equal(t, 0, m.RequiredReputation)
}

func TestGenerate_HighRiskRequiresReputation(t *testing.T) {
	bodies := testBodies()
	// Smuggling (risk multiplier 2.0) to body-1: ceil((1 + 0.9) * 2) = 4,
	// clamped to 3. Risk 3 gates on reputation (3-2)*10 = 10.
	rng := &shared.SequenceRand{Ints: []int{1, 0}, Floats: []float64{0.9}}
	g := mission.NewGenerator(rng, nil)

	m, err := g.Generate(bodies[0], bodies, 0)
	require.NoError(t, err)

	assert.Equal(t, 3, m.RiskLevel)
	assert.Equal(t, 10, m.RequiredReputation)
}

func TestGenerate_ExpiresIn24Hours(t *testing.T) {
	bodies := testBodies()
	start := time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)
	clock := shared.NewMockClock(start)
	g := mission.NewGenerator(shared.NewSeededRand(5), clock)

	m, err := g.Generate(bodies[0], bodies, 0)
	require.NoError(t, err)

	assert.Equal(t, start.Add(24*time.Hour), m.ExpiryTime)
	assert.False(t, m.IsExpired(start.Add(23*time.Hour)))
	assert.True(t, m.IsExpired(start.Add(25*time.Hour)))
}

func TestGenerateForLocation_BatchSize(t *testing.T) {
	bodies := testBodies()
	g := mission.NewGenerator(shared.NewSeededRand(9), nil)

	missions, err := g.GenerateForLocation(bodies[0], bodies, 0, 3)
	require.NoError(t, err)
	assert.Len(t, missions, 3)
}
