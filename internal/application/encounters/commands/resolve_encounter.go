package commands

import (
	"context"
	"fmt"

	"github.com/galactictrader/galactic-trader-go/internal/adapters/metrics"
	"github.com/galactictrader/galactic-trader-go/internal/application/common"
	"github.com/galactictrader/galactic-trader-go/internal/domain/encounter"
	"github.com/galactictrader/galactic-trader-go/internal/domain/game"
)

// defaultResolutionDistance stands in when the caller does not supply the
// trip distance the encounter interrupted
const defaultResolutionDistance = 100.0

// ResolveEncounterCommand resolves the session's pending encounter with the
// chosen action and applies the outcome to the player
type ResolveEncounterCommand struct {
	Session *game.Session
	Action  encounter.Action

	// Distance is the trip distance the encounter interrupted; zero means
	// the caller did not track it and the default is used
	Distance float64
}

// ResolveEncounterResponse carries the applied outcome. Destroyed reports
// the health floor being reached; the game-over policy is the caller's.
type ResolveEncounterResponse struct {
	Rejected  bool
	Reason    string
	Outcome   encounter.Outcome
	Destroyed bool
}

// ResolveEncounterHandler evaluates each pending encounter exactly once:
// resolving clears the event, and there are no retries
type ResolveEncounterHandler struct {
	resolver *encounter.Resolver
	metrics  metrics.GameMetricsRecorder
}

// NewResolveEncounterHandler creates the handler. Nil recorder disables
// metrics.
func NewResolveEncounterHandler(resolver *encounter.Resolver, recorder metrics.GameMetricsRecorder) *ResolveEncounterHandler {
	if recorder == nil {
		recorder = metrics.NoopRecorder{}
	}
	return &ResolveEncounterHandler{resolver: resolver, metrics: recorder}
}

// Handle executes the resolution command
func (h *ResolveEncounterHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(*ResolveEncounterCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type")
	}

	logger := common.LoggerFromContext(ctx)
	session := cmd.Session

	if !session.HasPendingEvent() {
		return &ResolveEncounterResponse{Rejected: true, Reason: encounter.ErrNoPendingEvent.Error()}, nil
	}
	if !cmd.Action.IsValid() {
		return &ResolveEncounterResponse{Rejected: true, Reason: encounter.ErrInvalidAction.Error()}, nil
	}

	event := session.CurrentEvent
	distance := cmd.Distance
	if distance <= 0 {
		distance = defaultResolutionDistance
	}

	stats := session.Components.CombatStats()
	outcome, err := h.resolver.Resolve(stats, event.Enemy, cmd.Action, distance, session.EffectiveCargoValue(), event.HasCargo)
	if err != nil {
		return nil, err
	}

	session.Player.ApplyOutcome(outcome)
	session.ClearEvent()

	h.metrics.RecordEncounterResolution(string(cmd.Action), outcome.Success)
	logger.Log("INFO", "Encounter resolved", map[string]interface{}{
		"action":  string(cmd.Action),
		"success": outcome.Success,
		"damage":  outcome.Damage,
		"credits": outcome.CreditsCost,
	})

	return &ResolveEncounterResponse{
		Outcome:   outcome,
		Destroyed: session.Player.Destroyed(),
	}, nil
}
