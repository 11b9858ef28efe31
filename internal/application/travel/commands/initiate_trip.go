package commands

import (
	"context"
	"fmt"

	"github.com/galactictrader/galactic-trader-go/internal/adapters/metrics"
	"github.com/galactictrader/galactic-trader-go/internal/application/common"
	"github.com/galactictrader/galactic-trader-go/internal/application/travel"
	"github.com/galactictrader/galactic-trader-go/internal/domain/encounter"
	"github.com/galactictrader/galactic-trader-go/internal/domain/game"
	"github.com/galactictrader/galactic-trader-go/internal/domain/ship"
	"github.com/galactictrader/galactic-trader-go/internal/domain/shared"
)

// InitiateTripCommand travels the player to another body, consuming fuel
// and possibly triggering a random encounter on arrival
type InitiateTripCommand struct {
	Session       *game.Session
	DestinationID string
}

// InitiateTripResponse reports the travel calculation and any triggered
// encounter. The encounter (if any) must be resolved before further
// operations on the session.
type InitiateTripResponse struct {
	Rejected bool
	Reason   string
	Plan     ship.TravelPlan
	Event    *encounter.Event
}

// InitiateTripHandler owns the trip-time encounter policy
type InitiateTripHandler struct {
	rng       shared.Rand
	generator *encounter.Generator
	policy    travel.EncounterPolicy
	metrics   metrics.GameMetricsRecorder
}

// NewInitiateTripHandler creates the handler. Nil rng/recorder default to
// the real source and a no-op recorder.
func NewInitiateTripHandler(rng shared.Rand, generator *encounter.Generator, policy travel.EncounterPolicy, recorder metrics.GameMetricsRecorder) *InitiateTripHandler {
	if rng == nil {
		rng = shared.NewRealRand()
	}
	if recorder == nil {
		recorder = metrics.NoopRecorder{}
	}
	return &InitiateTripHandler{
		rng:       rng,
		generator: generator,
		policy:    policy,
		metrics:   recorder,
	}
}

// Handle executes the trip command
func (h *InitiateTripHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(*InitiateTripCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type")
	}

	logger := common.LoggerFromContext(ctx)
	session := cmd.Session

	if session.HasPendingEvent() {
		return &InitiateTripResponse{Rejected: true, Reason: "encounter pending"}, nil
	}

	destination, ok := session.Body(cmd.DestinationID)
	if !ok {
		return &InitiateTripResponse{Rejected: true, Reason: "unknown destination"}, nil
	}
	if cmd.DestinationID == session.CurrentBodyID {
		return &InitiateTripResponse{Rejected: true, Reason: "already at destination"}, nil
	}

	player := &session.Player
	distance := player.Position.DistanceTo(destination.Position)
	plan := ship.PlanTravel(distance, player.Speed)

	if !player.Fuel.CanTravel(plan.FuelCost) {
		reason := shared.NewInsufficientFuelError(plan.FuelCost, player.Fuel.Current)
		return &InitiateTripResponse{Rejected: true, Reason: reason.Error(), Plan: plan}, nil
	}

	player.ConsumeFuel(plan.FuelCost)
	player.Position = destination.Position
	session.CurrentBodyID = destination.ID

	logger.Log("INFO", "Trip completed", map[string]interface{}{
		"destination": destination.ID,
		"distance":    plan.Distance,
		"fuel_cost":   plan.FuelCost,
	})

	event := h.rollEncounter(session, distance)
	if event != nil {
		if err := session.SetEvent(event); err != nil {
			return nil, err
		}
		h.metrics.RecordEncounter(string(event.Type))
		logger.Log("INFO", "Encounter triggered", map[string]interface{}{
			"type":  string(event.Type),
			"enemy": event.Enemy.Name,
		})
	}

	return &InitiateTripResponse{Plan: plan, Event: event}, nil
}

// rollEncounter applies the trip-time trigger policy and, when it fires,
// generates an event with a forced type
func (h *InitiateTripHandler) rollEncounter(session *game.Session, distance float64) *encounter.Event {
	hasCargo := session.Player.HasCargo()
	hasIllegalGoods := session.Player.Inventory.HasIllegalGoods()
	cargoValue := session.EffectiveCargoValue()

	chance := h.policy.Chance(session.CargoValue(), hasCargo, hasIllegalGoods)
	if h.rng.Float64() > chance {
		return nil
	}

	eventType := h.pickEventType(hasCargo, hasIllegalGoods)
	return h.generator.Generate(distance, cargoValue, hasIllegalGoods, &eventType, hasCargo)
}

// pickEventType biases toward pirates; police appear only against
// cargo-bearing targets carrying contraband
func (h *InitiateTripHandler) pickEventType(hasCargo, hasIllegalGoods bool) encounter.EventType {
	if !hasCargo {
		return encounter.Pirates
	}
	draw := h.rng.Float64()
	switch {
	case draw < h.policy.PirateShare:
		return encounter.Pirates
	case draw < h.policy.PoliceShare && hasIllegalGoods:
		return encounter.Police
	default:
		return encounter.Pirates
	}
}
