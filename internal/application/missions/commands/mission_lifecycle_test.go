package commands_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/galactictrader/galactic-trader-go/internal/application/missions/commands"
	"github.com/galactictrader/galactic-trader-go/internal/domain/game"
	"github.com/galactictrader/galactic-trader-go/internal/domain/market"
	"github.com/galactictrader/galactic-trader-go/internal/domain/mission"
	"github.com/galactictrader/galactic-trader-go/internal/domain/shared"
)

var sessionStart = time.Date(2026, 4, 1, 8, 0, 0, 0, time.UTC)

func newMissionSession(t *testing.T) *game.Session {
	t.Helper()
	return game.NewSession(shared.NewSeededRand(3), shared.NewMockClock(sessionStart), game.DefaultSettings())
}

func deliveryMission(id, target string) mission.Mission {
	return mission.Mission{
		ID:     id,
		Title:  "Supply run",
		Type:   mission.Delivery,
		Status: mission.StatusAvailable,
		Objectives: []mission.Objective{{
			Type:           mission.ObjectiveDeliver,
			Resource:       market.Food,
			Amount:         3,
			TargetLocation: target,
		}},
		Reward:     mission.Reward{Credits: 1200, Reputation: 5},
		RiskLevel:  1,
		ExpiryTime: sessionStart.Add(24 * time.Hour),
	}
}

func TestGenerateMissions(t *testing.T) {
	session := newMissionSession(t)
	handler := commands.NewGenerateMissionsHandler(mission.NewGenerator(shared.NewSeededRand(5), shared.NewMockClock(sessionStart)))

	response, err := handler.Handle(context.Background(), &commands.GenerateMissionsCommand{
		Session: session,
		Count:   5,
	})

	require.NoError(t, err)
	result := response.(*commands.GenerateMissionsResponse)
	require.Len(t, result.Missions, 5)
	for _, m := range result.Missions {
		assert.Equal(t, session.CurrentBodyID, m.Location)
		assert.Equal(t, mission.StatusAvailable, m.Status)
		assert.Equal(t, sessionStart.Add(24*time.Hour), m.ExpiryTime)
	}
	// Offers are not in the log until accepted
	assert.Empty(t, session.MissionLog.Active)
}

func TestGenerateMissions_DefaultCount(t *testing.T) {
	session := newMissionSession(t)
	handler := commands.NewGenerateMissionsHandler(mission.NewGenerator(shared.NewSeededRand(5), nil))

	response, err := handler.Handle(context.Background(), &commands.GenerateMissionsCommand{Session: session})

	require.NoError(t, err)
	assert.Len(t, response.(*commands.GenerateMissionsResponse).Missions, 3)
}

func TestAcceptMission(t *testing.T) {
	session := newMissionSession(t)
	handler := commands.NewAcceptMissionHandler(shared.NewMockClock(sessionStart), nil)

	response, err := handler.Handle(context.Background(), &commands.AcceptMissionCommand{
		Session: session,
		Mission: deliveryMission("m-1", "body-2"),
	})

	require.NoError(t, err)
	assert.False(t, response.(*commands.AcceptMissionResponse).Rejected)
	require.Len(t, session.MissionLog.Active, 1)
	assert.Equal(t, mission.StatusActive, session.MissionLog.Active[0].Status)
}

func TestAcceptMission_Rejections(t *testing.T) {
	clock := shared.NewMockClock(sessionStart)
	handler := commands.NewAcceptMissionHandler(clock, nil)

	t.Run("insufficient reputation", func(t *testing.T) {
		session := newMissionSession(t)
		m := deliveryMission("m-1", "body-2")
		m.RequiredReputation = 10

		response, err := handler.Handle(context.Background(), &commands.AcceptMissionCommand{Session: session, Mission: m})

		require.NoError(t, err)
		result := response.(*commands.AcceptMissionResponse)
		assert.True(t, result.Rejected)
		assert.Equal(t, "insufficient reputation", result.Reason)
		assert.Empty(t, session.MissionLog.Active)
	})

	t.Run("expired offer", func(t *testing.T) {
		session := newMissionSession(t)
		m := deliveryMission("m-1", "body-2")
		m.ExpiryTime = sessionStart.Add(-time.Hour)

		response, err := handler.Handle(context.Background(), &commands.AcceptMissionCommand{Session: session, Mission: m})

		require.NoError(t, err)
		result := response.(*commands.AcceptMissionResponse)
		assert.True(t, result.Rejected)
		assert.Equal(t, "mission expired", result.Reason)
	})

	t.Run("duplicate id", func(t *testing.T) {
		session := newMissionSession(t)
		first := deliveryMission("m-1", "body-2")
		_, err := handler.Handle(context.Background(), &commands.AcceptMissionCommand{Session: session, Mission: first})
		require.NoError(t, err)

		response, err := handler.Handle(context.Background(), &commands.AcceptMissionCommand{Session: session, Mission: deliveryMission("m-1", "body-3")})

		require.NoError(t, err)
		assert.True(t, response.(*commands.AcceptMissionResponse).Rejected)
		assert.Len(t, session.MissionLog.Active, 1)
	})
}

func TestUpdateMissionProgress_CompletesAndPaysOut(t *testing.T) {
	session := newMissionSession(t)
	require.NoError(t, session.MissionLog.Accept(deliveryMission("m-1", "body-2")))
	require.NoError(t, session.MissionLog.Accept(deliveryMission("m-2", "body-7")))

	session.CurrentBodyID = "body-2"
	session.Player.Inventory.Add(market.Food, 3)
	creditsBefore := session.Player.Credits

	handler := commands.NewUpdateMissionProgressHandler(nil)
	response, err := handler.Handle(context.Background(), &commands.UpdateMissionProgressCommand{Session: session})

	require.NoError(t, err)
	result := response.(*commands.UpdateMissionProgressResponse)
	require.Len(t, result.Completed, 1)
	assert.Equal(t, "m-1", result.Completed[0].ID)
	assert.Equal(t, 100, result.Completed[0].CompletionProgress)

	assert.Equal(t, creditsBefore+1200, session.Player.Credits)
	assert.Equal(t, 5, session.Player.Reputation)

	// The other delivery stays active with no progress
	require.Len(t, session.MissionLog.Active, 1)
	assert.Equal(t, "m-2", session.MissionLog.Active[0].ID)
	assert.Len(t, session.MissionLog.Completed, 1)
}

func TestUpdateMissionProgress_NoFinishersIsANoOp(t *testing.T) {
	session := newMissionSession(t)
	require.NoError(t, session.MissionLog.Accept(deliveryMission("m-1", "body-2")))
	creditsBefore := session.Player.Credits

	handler := commands.NewUpdateMissionProgressHandler(nil)
	response, err := handler.Handle(context.Background(), &commands.UpdateMissionProgressCommand{Session: session})

	require.NoError(t, err)
	assert.Empty(t, response.(*commands.UpdateMissionProgressResponse).Completed)
	assert.Equal(t, creditsBefore, session.Player.Credits)
	assert.Len(t, session.MissionLog.Active, 1)
}

func TestExpireMissions(t *testing.T) {
	session := newMissionSession(t)
	fresh := deliveryMission("fresh", "body-2")
	stale := deliveryMission("stale", "body-3")
	stale.ExpiryTime = sessionStart.Add(time.Hour)
	require.NoError(t, session.MissionLog.Accept(fresh))
	require.NoError(t, session.MissionLog.Accept(stale))

	clock := shared.NewMockClock(sessionStart)
	clock.Advance(2 * time.Hour)
	handler := commands.NewExpireMissionsHandler(clock, nil)

	response, err := handler.Handle(context.Background(), &commands.ExpireMissionsCommand{Session: session})

	require.NoError(t, err)
	result := response.(*commands.ExpireMissionsResponse)
	require.Len(t, result.Expired, 1)
	assert.Equal(t, "stale", result.Expired[0].ID)
	assert.Equal(t, mission.StatusFailed, result.Expired[0].Status)
	assert.Len(t, session.MissionLog.Active, 1)
	assert.Len(t, session.MissionLog.Failed, 1)
}
