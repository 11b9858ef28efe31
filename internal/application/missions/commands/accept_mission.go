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

// AcceptMissionCommand moves an offered mission into the active log
type AcceptMissionCommand struct {
	Session *game.Session
	Mission mission.Mission
}

// AcceptMissionResponse reports acceptance or the rejection reason
type AcceptMissionResponse struct {
	Rejected bool
	Reason   string
}

// AcceptMissionHandler enforces the reputation gate and the log's
// disjointness invariant
type AcceptMissionHandler struct {
	clock   shared.Clock
	metrics metrics.GameMetricsRecorder
}

// NewAcceptMissionHandler creates the handler. Nil clock/recorder default
// to the real clock and a no-op recorder.
func NewAcceptMissionHandler(clock shared.Clock, recorder metrics.GameMetricsRecorder) *AcceptMissionHandler {
	if clock == nil {
		clock = shared.NewRealClock()
	}
	if recorder == nil {
		recorder = metrics.NoopRecorder{}
	}
	return &AcceptMissionHandler{clock: clock, metrics: recorder}
}

// Handle executes the acceptance command
func (h *AcceptMissionHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(*AcceptMissionCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type")
	}

	session := cmd.Session
	m := cmd.Mission

	if session.Player.Reputation < m.RequiredReputation {
		return &AcceptMissionResponse{Rejected: true, Reason: "insufficient reputation"}, nil
	}
	if m.IsExpired(h.clock.Now()) {
		return &AcceptMissionResponse{Rejected: true, Reason: "mission expired"}, nil
	}

	if err := session.MissionLog.Accept(m); err != nil {
		return &AcceptMissionResponse{Rejected: true, Reason: err.Error()}, nil
	}

	h.metrics.RecordMissionTransition(string(m.Type), string(mission.StatusActive))
	common.LoggerFromContext(ctx).Log("INFO", "Mission accepted", map[string]interface{}{
		"mission": m.ID,
		"type":    string(m.Type),
		"risk":    m.RiskLevel,
	})
	return &AcceptMissionResponse{}, nil
}
