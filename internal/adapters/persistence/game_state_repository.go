package persistence

import (
	"context"
	"encoding/json"
	"fmt"

	"gorm.io/gorm"

	"github.com/galactictrader/galactic-trader-go/internal/domain/cargo"
	"github.com/galactictrader/galactic-trader-go/internal/domain/encounter"
	"github.com/galactictrader/galactic-trader-go/internal/domain/galaxy"
	"github.com/galactictrader/galactic-trader-go/internal/domain/game"
	"github.com/galactictrader/galactic-trader-go/internal/domain/market"
	"github.com/galactictrader/galactic-trader-go/internal/domain/mission"
	"github.com/galactictrader/galactic-trader-go/internal/domain/player"
	"github.com/galactictrader/galactic-trader-go/internal/domain/ship"
	"github.com/galactictrader/galactic-trader-go/internal/domain/shared"
)

// GormSessionRepository implements game.SessionRepository using GORM
type GormSessionRepository struct {
	db *gorm.DB
}

// NewGormSessionRepository creates a new GORM session repository
func NewGormSessionRepository(db *gorm.DB) *GormSessionRepository {
	return &GormSessionRepository{db: db}
}

// Save persists a session, creating or updating by id
func (r *GormSessionRepository) Save(ctx context.Context, session *game.Session) error {
	model, err := r.sessionToModel(session)
	if err != nil {
		return fmt.Errorf("failed to convert session to model: %w", err)
	}

	result := r.db.WithContext(ctx).Save(model)
	if result.Error != nil {
		return fmt.Errorf("failed to save session: %w", result.Error)
	}

	return nil
}

// FindByID retrieves a session by id
func (r *GormSessionRepository) FindByID(ctx context.Context, id string) (*game.Session, error) {
	var model GameStateModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&model)
	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("session not found: %s", id)
		}
		return nil, fmt.Errorf("failed to find session: %w", result.Error)
	}

	return r.modelToSession(&model)
}

// List retrieves all saved sessions
func (r *GormSessionRepository) List(ctx context.Context) ([]*game.Session, error) {
	var models []GameStateModel
	result := r.db.WithContext(ctx).Find(&models)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", result.Error)
	}

	sessions := make([]*game.Session, 0, len(models))
	for i := range models {
		s, err := r.modelToSession(&models[i])
		if err != nil {
			continue // Skip corrupt saves
		}
		sessions = append(sessions, s)
	}

	return sessions, nil
}

// Delete removes a saved session
func (r *GormSessionRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&GameStateModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete session: %w", result.Error)
	}
	return nil
}

func (r *GormSessionRepository) sessionToModel(session *game.Session) (*GameStateModel, error) {
	inventory := make(map[string]int, len(session.Player.Inventory))
	for t, qty := range session.Player.Inventory {
		inventory[string(t)] = qty
	}
	playerJSON, err := json.Marshal(savedPlayer{
		Position:      [3]float64{session.Player.Position.X, session.Player.Position.Y, session.Player.Position.Z},
		Fuel:          session.Player.Fuel.Current,
		MaxFuel:       session.Player.Fuel.Capacity,
		Speed:         session.Player.Speed,
		Credits:       session.Player.Credits,
		CargoCapacity: session.Player.CargoCapacity,
		Inventory:     inventory,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal player: %w", err)
	}

	componentsJSON, err := json.Marshal(session.Components)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal components: %w", err)
	}

	missionLogJSON, err := json.Marshal(session.MissionLog)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal mission log: %w", err)
	}

	galaxyJSON, err := json.Marshal(session.Galaxy)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal galaxy: %w", err)
	}

	marketSnapshots := make(map[string][]market.Resource, len(session.Markets))
	for bodyID, m := range session.Markets {
		marketSnapshots[bodyID] = m.Resources()
	}
	marketsJSON, err := json.Marshal(marketSnapshots)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal markets: %w", err)
	}

	currentEventJSON := ""
	if session.CurrentEvent != nil {
		bytes, err := json.Marshal(session.CurrentEvent)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal current event: %w", err)
		}
		currentEventJSON = string(bytes)
	}

	settingsJSON, err := json.Marshal(session.Settings)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal settings: %w", err)
	}

	return &GameStateModel{
		ID:               session.ID,
		Player:           string(playerJSON),
		Components:       string(componentsJSON),
		MissionLog:       string(missionLogJSON),
		Galaxy:           string(galaxyJSON),
		Markets:          string(marketsJSON),
		CurrentBodyID:    session.CurrentBodyID,
		CurrentEvent:     currentEventJSON,
		Settings:         string(settingsJSON),
		PlayerReputation: session.Player.Reputation,
		Health:           session.Player.Health,
		Fuel:             session.Player.Fuel.Current,
		LastSaved:        session.LastSaved,
	}, nil
}

func (r *GormSessionRepository) modelToSession(model *GameStateModel) (*game.Session, error) {
	var saved savedPlayer
	if err := json.Unmarshal([]byte(model.Player), &saved); err != nil {
		return nil, fmt.Errorf("invalid player in database: %w", err)
	}

	inventory := cargo.NewInventory()
	for t, qty := range saved.Inventory {
		inventory[market.ResourceType(t)] = qty
	}

	p := player.State{
		Position:      shared.Position{X: saved.Position[0], Y: saved.Position[1], Z: saved.Position[2]},
		Fuel:          shared.Fuel{Current: saved.Fuel, Capacity: saved.MaxFuel},
		Speed:         saved.Speed,
		Credits:       saved.Credits,
		CargoCapacity: saved.CargoCapacity,
		Inventory:     inventory,
		Health:        model.Health,
		Reputation:    model.PlayerReputation,
	}

	var components ship.Components
	if err := json.Unmarshal([]byte(model.Components), &components); err != nil {
		return nil, fmt.Errorf("invalid components in database: %w", err)
	}

	var missionLog mission.Log
	if err := json.Unmarshal([]byte(model.MissionLog), &missionLog); err != nil {
		return nil, fmt.Errorf("invalid mission log in database: %w", err)
	}

	var bodies []galaxy.Body
	if err := json.Unmarshal([]byte(model.Galaxy), &bodies); err != nil {
		return nil, fmt.Errorf("invalid galaxy in database: %w", err)
	}

	var marketSnapshots map[string][]market.Resource
	if err := json.Unmarshal([]byte(model.Markets), &marketSnapshots); err != nil {
		return nil, fmt.Errorf("invalid markets in database: %w", err)
	}
	markets := make(map[string]*market.Market, len(marketSnapshots))
	for bodyID, resources := range marketSnapshots {
		markets[bodyID] = market.NewMarketFromResources(resources)
	}

	var currentEvent *encounter.Event
	if model.CurrentEvent != "" {
		var e encounter.Event
		if err := json.Unmarshal([]byte(model.CurrentEvent), &e); err != nil {
			return nil, fmt.Errorf("invalid current event in database: %w", err)
		}
		currentEvent = &e
	}

	var settings game.Settings
	if err := json.Unmarshal([]byte(model.Settings), &settings); err != nil {
		return nil, fmt.Errorf("invalid settings in database: %w", err)
	}

	return &game.Session{
		ID:            model.ID,
		Player:        p,
		Components:    components,
		MissionLog:    missionLog,
		Galaxy:        bodies,
		Markets:       markets,
		CurrentBodyID: model.CurrentBodyID,
		CurrentEvent:  currentEvent,
		Settings:      settings,
		LastSaved:     model.LastSaved,
	}, nil
}
