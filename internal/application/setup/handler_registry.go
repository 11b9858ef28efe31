package setup

import (
	"github.com/galactictrader/galactic-trader-go/internal/adapters/metrics"
	"github.com/galactictrader/galactic-trader-go/internal/application/common"
	encounterCommands "github.com/galactictrader/galactic-trader-go/internal/application/encounters/commands"
	missionCommands "github.com/galactictrader/galactic-trader-go/internal/application/missions/commands"
	savegameCommands "github.com/galactictrader/galactic-trader-go/internal/application/savegame/commands"
	savegameQueries "github.com/galactictrader/galactic-trader-go/internal/application/savegame/queries"
	shipCommands "github.com/galactictrader/galactic-trader-go/internal/application/ship/commands"
	tradingCommands "github.com/galactictrader/galactic-trader-go/internal/application/trading/commands"
	"github.com/galactictrader/galactic-trader-go/internal/application/travel"
	travelCommands "github.com/galactictrader/galactic-trader-go/internal/application/travel/commands"
	"github.com/galactictrader/galactic-trader-go/internal/domain/encounter"
	"github.com/galactictrader/galactic-trader-go/internal/domain/game"
	"github.com/galactictrader/galactic-trader-go/internal/domain/mission"
	"github.com/galactictrader/galactic-trader-go/internal/domain/shared"
)

// HandlerRegistry holds all application dependencies for handler creation
type HandlerRegistry struct {
	sessionRepo game.SessionRepository
	clock       shared.Clock
	rng         shared.Rand
	policy      travel.EncounterPolicy
	recorder    metrics.GameMetricsRecorder
}

// NewHandlerRegistry creates a new handler registry with required
// dependencies. Nil clock, rng and recorder fall back to real
// implementations.
func NewHandlerRegistry(
	sessionRepo game.SessionRepository,
	clock shared.Clock,
	rng shared.Rand,
	policy travel.EncounterPolicy,
	recorder metrics.GameMetricsRecorder,
) *HandlerRegistry {
	if clock == nil {
		clock = shared.NewRealClock()
	}
	if rng == nil {
		rng = shared.NewRealRand()
	}
	if recorder == nil {
		recorder = metrics.NoopRecorder{}
	}

	return &HandlerRegistry{
		sessionRepo: sessionRepo,
		clock:       clock,
		rng:         rng,
		policy:      policy,
		recorder:    recorder,
	}
}

// RegisterAll registers every game operation handler with the mediator
func (r *HandlerRegistry) RegisterAll(m common.Mediator) error {
	if err := r.RegisterTradingHandlers(m); err != nil {
		return err
	}
	if err := r.RegisterTravelHandlers(m); err != nil {
		return err
	}
	if err := r.RegisterEncounterHandlers(m); err != nil {
		return err
	}
	if err := r.RegisterMissionHandlers(m); err != nil {
		return err
	}
	if err := r.RegisterShipHandlers(m); err != nil {
		return err
	}
	return r.RegisterSavegameHandlers(m)
}

// RegisterTradingHandlers registers the buy/sell command handler
func (r *HandlerRegistry) RegisterTradingHandlers(m common.Mediator) error {
	handler := tradingCommands.NewExecuteTradeHandler(r.recorder)
	return common.RegisterHandler[*tradingCommands.ExecuteTradeCommand](m, handler)
}

// RegisterTravelHandlers registers the trip initiation handler
func (r *HandlerRegistry) RegisterTravelHandlers(m common.Mediator) error {
	generator := encounter.NewGenerator(r.rng, encounter.DefaultConfig())
	handler := travelCommands.NewInitiateTripHandler(r.rng, generator, r.policy, r.recorder)
	return common.RegisterHandler[*travelCommands.InitiateTripCommand](m, handler)
}

// RegisterEncounterHandlers registers the encounter resolution handler
func (r *HandlerRegistry) RegisterEncounterHandlers(m common.Mediator) error {
	resolver := encounter.NewResolver(r.rng)
	handler := encounterCommands.NewResolveEncounterHandler(resolver, r.recorder)
	return common.RegisterHandler[*encounterCommands.ResolveEncounterCommand](m, handler)
}

// RegisterMissionHandlers registers mission generation and lifecycle handlers
func (r *HandlerRegistry) RegisterMissionHandlers(m common.Mediator) error {
	generator := mission.NewGenerator(r.rng, r.clock)

	if err := common.RegisterHandler[*missionCommands.GenerateMissionsCommand](
		m, missionCommands.NewGenerateMissionsHandler(generator),
	); err != nil {
		return err
	}
	if err := common.RegisterHandler[*missionCommands.AcceptMissionCommand](
		m, missionCommands.NewAcceptMissionHandler(r.clock, r.recorder),
	); err != nil {
		return err
	}
	if err := common.RegisterHandler[*missionCommands.UpdateMissionProgressCommand](
		m, missionCommands.NewUpdateMissionProgressHandler(r.recorder),
	); err != nil {
		return err
	}
	return common.RegisterHandler[*missionCommands.ExpireMissionsCommand](
		m, missionCommands.NewExpireMissionsHandler(r.clock, r.recorder),
	)
}

// RegisterShipHandlers registers the component upgrade handler
func (r *HandlerRegistry) RegisterShipHandlers(m common.Mediator) error {
	handler := shipCommands.NewUpgradeComponentHandler(r.recorder)
	return common.RegisterHandler[*shipCommands.UpgradeComponentCommand](m, handler)
}

// RegisterSavegameHandlers registers save/load/list handlers when a
// repository is configured
func (r *HandlerRegistry) RegisterSavegameHandlers(m common.Mediator) error {
	if r.sessionRepo == nil {
		return nil
	}

	if err := common.RegisterHandler[*savegameCommands.SaveGameCommand](
		m, savegameCommands.NewSaveGameHandler(r.sessionRepo, r.clock),
	); err != nil {
		return err
	}
	if err := common.RegisterHandler[*savegameQueries.LoadGameQuery](
		m, savegameQueries.NewLoadGameHandler(r.sessionRepo),
	); err != nil {
		return err
	}
	return common.RegisterHandler[*savegameQueries.ListGamesQuery](
		m, savegameQueries.NewListGamesHandler(r.sessionRepo),
	)
}
