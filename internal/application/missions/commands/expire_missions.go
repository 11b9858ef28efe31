package commands

import (
	"context"
	"fmt"

	"github.com/galactictrader/galactic-trader-go/internal/adapters/metrics"
	"github.com/galactictrader/galactic-trader-go/internal/application/common"
	"github.com/galactictrader/galactic-trader-go/internal/domain/game"
	"github.com/galactictrader/galactic-trader-go/internal/domain/mission"
	"github.com/galactictrader/galactic-trader-go/internal/domain/shared"
)

// ExpireMissionsCommand fails every active mission whose expiry time has
// passed. Callers run it periodically; missions never expire on their own.
type ExpireMissionsCommand struct {
	Session *game.Session
}

// ExpireMissionsResponse lists the missions failed by this sweep
type ExpireMissionsResponse struct {
	Expired []mission.Mission
}

// ExpireMissionsHandler sweeps expired missions into the failed list
type ExpireMissionsHandler struct {
	clock   shared.Clock
	metrics metrics.GameMetricsRecorder
}

// NewExpireMissionsHandler creates the handler
func NewExpireMissionsHandler(clock shared.Clock, recorder metrics.GameMetricsRecorder) *ExpireMissionsHandler {
	if clock == nil {
		clock = shared.NewRealClock()
	}
	if recorder == nil {
		recorder = metrics.NoopRecorder{}
	}
	return &ExpireMissionsHandler{clock: clock, metrics: recorder}
}

// Handle executes the expiry sweep command
func (h *ExpireMissionsHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(*ExpireMissionsCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type")
	}

	logger := common.LoggerFromContext(ctx)
	expired := cmd.Session.MissionLog.ExpireDue(h.clock.Now())
	for _, m := range expired {
		h.metrics.RecordMissionTransition(string(m.Type), string(mission.StatusFailed))
		logger.Log("INFO", "Mission expired", map[string]interface{}{
			"mission": m.ID,
			"type":    string(m.Type),
		})
	}

	return &ExpireMissionsResponse{Expired: expired}, nil
}
