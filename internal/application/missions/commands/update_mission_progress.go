package commands

import (
	"context"
	"fmt"

	"github.com/galactictrader/galactic-trader-go/internal/adapters/metrics"
	"github.com/galactictrader/galactic-trader-go/internal/application/common"
	"github.com/galactictrader/galactic-trader-go/internal/domain/game"
	"github.com/galactictrader/galactic-trader-go/internal/domain/mission"
)

// UpdateMissionProgressCommand recomputes progress for every active mission
// against the player's location and inventory, completing the finished ones
// and paying out their rewards
type UpdateMissionProgressCommand struct {
	Session *game.Session
}

// UpdateMissionProgressResponse lists the missions completed in this pass
type UpdateMissionProgressResponse struct {
	Completed []mission.Mission
}

// UpdateMissionProgressHandler moves finished missions active -> completed
// atomically and applies credit and reputation rewards
type UpdateMissionProgressHandler struct {
	metrics metrics.GameMetricsRecorder
}

// NewUpdateMissionProgressHandler creates the handler. Nil recorder
// disables metrics.
func NewUpdateMissionProgressHandler(recorder metrics.GameMetricsRecorder) *UpdateMissionProgressHandler {
	if recorder == nil {
		recorder = metrics.NoopRecorder{}
	}
	return &UpdateMissionProgressHandler{metrics: recorder}
}

// Handle executes the progress update command
func (h *UpdateMissionProgressHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(*UpdateMissionProgressCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type")
	}

	logger := common.LoggerFromContext(ctx)
	session := cmd.Session
	log := &session.MissionLog

	var finishedIDs []string
	for i := range log.Active {
		m := log.Active[i]
		m.UpdateProgress(session.CurrentBodyID, session.Player.Inventory)
		if m.Status == mission.StatusCompleted {
			finishedIDs = append(finishedIDs, m.ID)
			continue
		}
		if err := log.ReplaceActive(m); err != nil {
			return nil, err
		}
	}

	completed := make([]mission.Mission, 0, len(finishedIDs))
	for _, id := range finishedIDs {
		m, err := log.Complete(id)
		if err != nil {
			return nil, err
		}
		session.Player.EarnCredits(m.Reward.Credits)
		session.Player.Reputation += m.Reward.Reputation
		completed = append(completed, m)

		h.metrics.RecordMissionTransition(string(m.Type), string(mission.StatusCompleted))
		logger.Log("INFO", "Mission completed", map[string]interface{}{
			"mission": m.ID,
			"credits": m.Reward.Credits,
		})
	}

	return &UpdateMissionProgressResponse{Completed: completed}, nil
}
