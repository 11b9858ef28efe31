package commands

import (
	"context"
	"fmt"

	"github.com/galactictrader/galactic-trader-go/internal/adapters/metrics"
	"github.com/galactictrader/galactic-trader-go/internal/application/common"
	"github.com/galactictrader/galactic-trader-go/internal/domain/cargo"
	"github.com/galactictrader/galactic-trader-go/internal/domain/game"
	"github.com/galactictrader/galactic-trader-go/internal/domain/market"
)

// ExecuteTradeCommand buys or sells one resource at the current body's
// market. Trades execute at catalog price; the market's listed unit price
// drifts with supply and demand afterwards.
type ExecuteTradeCommand struct {
	Session  *game.Session
	Resource market.ResourceType
	Quantity int
	Buying   bool
}

// ExecuteTradeResponse reports the executed (or rejected) trade. A rejected
// trade leaves the session byte-for-byte unchanged.
type ExecuteTradeResponse struct {
	Rejected  bool
	Reason    cargo.RejectionReason
	Total     int
	UnitPrice int
	Credits   int
}

// ReasonEncounterPending rejects trades while an unresolved encounter
// blocks the session
const ReasonEncounterPending cargo.RejectionReason = "encounter pending"

// ExecuteTradeHandler applies trades atomically: the affordability/capacity
// check and the state update succeed together or not at all
type ExecuteTradeHandler struct {
	metrics metrics.GameMetricsRecorder
}

// NewExecuteTradeHandler creates the handler. Nil recorder disables metrics.
func NewExecuteTradeHandler(recorder metrics.GameMetricsRecorder) *ExecuteTradeHandler {
	if recorder == nil {
		recorder = metrics.NoopRecorder{}
	}
	return &ExecuteTradeHandler{metrics: recorder}
}

// Handle executes the trade command
func (h *ExecuteTradeHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(*ExecuteTradeCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type")
	}

	logger := common.LoggerFromContext(ctx)
	session := cmd.Session

	if session.HasPendingEvent() {
		return h.reject(cmd, ReasonEncounterPending), nil
	}

	mkt, ok := session.MarketAt(session.CurrentBodyID)
	if !ok {
		// missing market is a data inconsistency, not a fatal condition
		logger.Log("WARN", "No market at current body", map[string]interface{}{
			"body": session.CurrentBodyID,
		})
		return h.reject(cmd, cargo.ReasonUnknownResource), nil
	}

	resource, ok := mkt.Resource(cmd.Resource)
	if !ok {
		logger.Log("WARN", "Resource missing from market", map[string]interface{}{
			"resource": string(cmd.Resource),
		})
		return h.reject(cmd, cargo.ReasonUnknownResource), nil
	}

	player := &session.Player
	if cmd.Buying {
		reason := cargo.CanBuy(resource, cmd.Quantity, player.Credits, player.CargoUsed(), player.CargoCapacity)
		if reason != cargo.ReasonNone {
			return h.reject(cmd, reason), nil
		}

		total := resource.BasePrice * cmd.Quantity
		player.SpendCredits(total)
		player.Inventory.Add(cmd.Resource, cmd.Quantity)
		mkt.ApplyTrade(cmd.Resource, cmd.Quantity)

		h.metrics.RecordTrade(string(cmd.Resource), true, false)
		logger.Log("INFO", "Trade executed", map[string]interface{}{
			"resource": string(cmd.Resource),
			"quantity": cmd.Quantity,
			"buying":   true,
			"total":    total,
		})
		return &ExecuteTradeResponse{
			Total:     total,
			UnitPrice: mkt.UnitPrice(cmd.Resource),
			Credits:   player.Credits,
		}, nil
	}

	reason := cargo.CanSell(player.Inventory, cmd.Resource, cmd.Quantity)
	if reason != cargo.ReasonNone {
		return h.reject(cmd, reason), nil
	}

	total := resource.BasePrice * cmd.Quantity
	player.EarnCredits(total)
	player.Inventory.Remove(cmd.Resource, cmd.Quantity)
	mkt.ApplyTrade(cmd.Resource, -cmd.Quantity)

	h.metrics.RecordTrade(string(cmd.Resource), false, false)
	logger.Log("INFO", "Trade executed", map[string]interface{}{
		"resource": string(cmd.Resource),
		"quantity": cmd.Quantity,
		"buying":   false,
		"total":    total,
	})
	return &ExecuteTradeResponse{
		Total:     total,
		UnitPrice: mkt.UnitPrice(cmd.Resource),
		Credits:   player.Credits,
	}, nil
}

func (h *ExecuteTradeHandler) reject(cmd *ExecuteTradeCommand, reason cargo.RejectionReason) *ExecuteTradeResponse {
	h.metrics.RecordTrade(string(cmd.Resource), cmd.Buying, true)
	return &ExecuteTradeResponse{
		Rejected: true,
		Reason:   reason,
		Credits:  cmd.Session.Player.Credits,
	}
}
