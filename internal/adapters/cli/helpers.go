package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"gorm.io/gorm"

	"github.com/galactictrader/galactic-trader-go/internal/adapters/logging"
	"github.com/galactictrader/galactic-trader-go/internal/adapters/metrics"
	"github.com/galactictrader/galactic-trader-go/internal/adapters/persistence"
	"github.com/galactictrader/galactic-trader-go/internal/application/common"
	"github.com/galactictrader/galactic-trader-go/internal/application/setup"
	"github.com/galactictrader/galactic-trader-go/internal/application/travel"
	"github.com/galactictrader/galactic-trader-go/internal/domain/game"
	"github.com/galactictrader/galactic-trader-go/internal/domain/mission"
	"github.com/galactictrader/galactic-trader-go/internal/infrastructure/config"
	"github.com/galactictrader/galactic-trader-go/internal/infrastructure/database"
)

// environment bundles everything a CLI command needs to run one operation
type environment struct {
	cfg      *config.Config
	db       *gorm.DB
	repo     game.SessionRepository
	mediator common.Mediator
}

// newEnvironment loads config, opens the database and wires every handler
// into a fresh mediator
func newEnvironment() (*environment, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	db, err := database.NewConnection(&cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	repo := persistence.NewGormSessionRepository(db)

	var recorder metrics.GameMetricsRecorder = metrics.NoopRecorder{}
	if cfg.Metrics.Enabled {
		if metrics.Registry == nil {
			metrics.InitRegistry()
		}
		collector := metrics.NewGameMetricsCollector()
		if err := collector.Register(); err != nil {
			return nil, fmt.Errorf("failed to register metrics: %w", err)
		}
		recorder = collector
	}

	policy := encounterPolicyFromConfig(&cfg.Game)
	registry := setup.NewHandlerRegistry(repo, nil, nil, policy, recorder)
	m := common.NewMediator()
	if err := registry.RegisterAll(m); err != nil {
		return nil, fmt.Errorf("failed to register handlers: %w", err)
	}

	return &environment{cfg: cfg, db: db, repo: repo, mediator: m}, nil
}

func (e *environment) close() {
	_ = database.Close(e.db)
}

// commandContext attaches a console logger so handler logs reach the
// terminal. Without --verbose only warnings and errors are shown.
func (e *environment) commandContext() context.Context {
	level := "WARN"
	if verbose {
		level = e.cfg.Logging.Level
	}
	out := io.Writer(os.Stdout)
	if e.cfg.Logging.Output == "stderr" {
		out = os.Stderr
	}
	logger := logging.NewConsoleLoggerTo(out, level, e.cfg.Logging.Format)
	return common.WithLogger(context.Background(), logger)
}

// loadSession fetches the session named by --game, or the most recently
// saved one when the flag is empty
func (e *environment) loadSession(ctx context.Context) (*game.Session, error) {
	if gameID != "" {
		return e.repo.FindByID(ctx, gameID)
	}

	sessions, err := e.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(sessions) == 0 {
		return nil, fmt.Errorf("no saved games: run 'galactic-trader new' first")
	}

	latest := sessions[0]
	for _, s := range sessions[1:] {
		if s.LastSaved.After(latest.LastSaved) {
			latest = s
		}
	}
	return latest, nil
}

// saveSession persists the session after a command mutated it
func (e *environment) saveSession(ctx context.Context, session *game.Session) error {
	return e.repo.Save(ctx, session)
}

// settingsFromConfig maps the game config section onto session settings
func settingsFromConfig(cfg *config.GameConfig) game.Settings {
	return game.Settings{
		StartingCredits:       cfg.StartingCredits,
		StartingFuel:          cfg.StartingFuel,
		StartingHealth:        cfg.StartingHealth,
		GalaxySize:            cfg.GalaxySize,
		MinCargoValueForFines: cfg.MinCargoValueForFines,
	}
}

// parseMissionOffer decodes an offer printed by 'missions generate' back
// into a mission
func parseMissionOffer(offerJSON string) (mission.Mission, error) {
	var m mission.Mission
	if err := json.Unmarshal([]byte(offerJSON), &m); err != nil {
		return mission.Mission{}, fmt.Errorf("invalid mission offer: %w", err)
	}
	return m, nil
}

func mustMissionJSON(m mission.Mission) string {
	bytes, err := json.Marshal(m)
	if err != nil {
		return "{}"
	}
	return string(bytes)
}

// encounterPolicyFromConfig maps the encounter config section onto the trip
// encounter policy
func encounterPolicyFromConfig(cfg *config.GameConfig) travel.EncounterPolicy {
	policy := travel.DefaultEncounterPolicy()
	policy.BaseChance = cfg.Encounter.BaseChance
	policy.CargoBonus = cfg.Encounter.CargoBonus
	policy.IllegalBonus = cfg.Encounter.IllegalBonus
	policy.MaxChance = cfg.Encounter.MaxChance
	policy.CargoValueThreshold = cfg.Encounter.CargoValueThreshold
	return policy
}
