package commands

import (
	"context"
	"fmt"

	"github.com/galactictrader/galactic-trader-go/internal/adapters/metrics"
	"github.com/galactictrader/galactic-trader-go/internal/application/common"
	"github.com/galactictrader/galactic-trader-go/internal/domain/game"
	"github.com/galactictrader/galactic-trader-go/internal/domain/ship"
)

// Rejection reasons for upgrade commands
const (
	ReasonNone                string = ""
	ReasonAtMaxLevel          string = "component at max level"
	ReasonInsufficientCredits string = "insufficient credits"
	ReasonUnknownComponent    string = "unknown component type"
)

// UpgradeComponentCommand advances one ship component a level, charging the
// upgrade cost of the current level
type UpgradeComponentCommand struct {
	Session *game.Session
	Type    ship.ComponentType
}

// UpgradeComponentResponse reports the result of an upgrade attempt. Rejected
// upgrades are a normal outcome, not an error.
type UpgradeComponentResponse struct {
	Rejected bool
	Reason   string
	Level    int
	Cost     int
	Credits  int
}

// UpgradeComponentHandler executes component upgrades and keeps the derived
// player stats (cargo capacity, speed) in step with the new component levels
type UpgradeComponentHandler struct {
	metrics metrics.GameMetricsRecorder
}

// NewUpgradeComponentHandler creates the handler. Nil recorder disables
// metrics.
func NewUpgradeComponentHandler(recorder metrics.GameMetricsRecorder) *UpgradeComponentHandler {
	if recorder == nil {
		recorder = metrics.NoopRecorder{}
	}
	return &UpgradeComponentHandler{metrics: recorder}
}

// Handle executes the upgrade command
func (h *UpgradeComponentHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(*UpgradeComponentCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type")
	}

	logger := common.LoggerFromContext(ctx)
	session := cmd.Session
	components := &session.Components

	hdr, err := components.Header(cmd.Type)
	if err != nil {
		return h.reject(session, cmd.Type, ReasonUnknownComponent), nil
	}
	if hdr.AtMaxLevel() {
		return h.reject(session, cmd.Type, ReasonAtMaxLevel), nil
	}
	if session.Player.Credits < hdr.UpgradeCost {
		return h.reject(session, cmd.Type, ReasonInsufficientCredits), nil
	}

	cost := hdr.UpgradeCost
	session.Player.SpendCredits(cost)
	if err := components.Upgrade(cmd.Type); err != nil {
		return nil, err
	}

	// Derived stats follow the component that produces them
	switch cmd.Type {
	case ship.Cargo:
		session.Player.CargoCapacity = int(components.Cargo.Stats.Capacity)
	case ship.Engine:
		session.Player.Speed = components.Engine.Stats.Speed
	}

	upgraded, err := components.Header(cmd.Type)
	if err != nil {
		return nil, err
	}

	h.metrics.RecordUpgrade(string(cmd.Type), false)
	logger.Log("INFO", "Component upgraded", map[string]interface{}{
		"component": string(cmd.Type),
		"level":     upgraded.Level,
		"cost":      cost,
	})

	return &UpgradeComponentResponse{
		Level:   upgraded.Level,
		Cost:    cost,
		Credits: session.Player.Credits,
	}, nil
}

func (h *UpgradeComponentHandler) reject(session *game.Session, t ship.ComponentType, reason string) *UpgradeComponentResponse {
	h.metrics.RecordUpgrade(string(t), true)
	hdr, _ := session.Components.Header(t)
	return &UpgradeComponentResponse{
		Rejected: true,
		Reason:   reason,
		Level:    hdr.Level,
		Credits:  session.Player.Credits,
	}
}
