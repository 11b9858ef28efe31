package game

import (
	"time"

	"github.com/google/uuid"

	"github.com/galactictrader/galactic-trader-go/internal/domain/encounter"
	"github.com/galactictrader/galactic-trader-go/internal/domain/galaxy"
	"github.com/galactictrader/galactic-trader-go/internal/domain/market"
	"github.com/galactictrader/galactic-trader-go/internal/domain/mission"
	"github.com/galactictrader/galactic-trader-go/internal/domain/player"
	"github.com/galactictrader/galactic-trader-go/internal/domain/ship"
	"github.com/galactictrader/galactic-trader-go/internal/domain/shared"
	"github.com/galactictrader/galactic-trader-go/pkg/utils"
)

// Settings are the starting resources and world size for a new session
type Settings struct {
	StartingCredits int
	StartingFuel    float64
	StartingHealth  int
	GalaxySize      int

	// MinCargoValueForFines floors the cargo value used in encounter cost
	// calculations so fines never degenerate to zero
	MinCargoValueForFines int
}

// DefaultSettings returns the standing new-game tuning
func DefaultSettings() Settings {
	return Settings{
		StartingCredits:       1000,
		StartingFuel:          100,
		StartingHealth:        100,
		GalaxySize:            10,
		MinCargoValueForFines: 1000,
	}
}

// Session is the single mutable game state. The owning caller serializes
// all operations on it; the core never retains references between calls.
type Session struct {
	ID            string                         `json:"id"`
	Player        player.State                   `json:"player"`
	Components    ship.Components                `json:"components"`
	MissionLog    mission.Log                    `json:"missionLog"`
	Galaxy        []galaxy.Body                  `json:"galaxy"`
	Markets       map[string]*market.Market      `json:"-"`
	CurrentBodyID string                         `json:"currentBodyId"`
	CurrentEvent  *encounter.Event               `json:"currentEvent,omitempty"`
	Settings      Settings                       `json:"settings"`
	LastSaved     time.Time                      `json:"lastSaved"`
}

// NewSession creates a fresh game: a generated galaxy with one randomized
// market per body, level-1 components, and a player docked at the first body
func NewSession(rng shared.Rand, clock shared.Clock, settings Settings) *Session {
	if rng == nil {
		rng = shared.NewRealRand()
	}
	if clock == nil {
		clock = shared.NewRealClock()
	}

	bodies := galaxy.Generate(rng, settings.GalaxySize)
	markets := make(map[string]*market.Market, len(bodies))
	for _, b := range bodies {
		markets[b.ID] = market.NewMarket(rng)
	}

	components := ship.NewComponents()
	p := player.NewState(
		settings.StartingCredits,
		settings.StartingFuel,
		settings.StartingHealth,
		int(components.Cargo.Stats.Capacity),
		components.Engine.Stats.Speed,
	)

	currentBodyID := ""
	if len(bodies) > 0 {
		currentBodyID = bodies[0].ID
		p.Position = bodies[0].Position
	}

	return &Session{
		ID:            uuid.New().String(),
		Player:        p,
		Components:    components,
		MissionLog:    mission.NewLog(),
		Galaxy:        bodies,
		Markets:       markets,
		CurrentBodyID: currentBodyID,
		Settings:      settings,
		LastSaved:     clock.Now(),
	}
}

// Body returns a galaxy body by id
func (s *Session) Body(id string) (galaxy.Body, bool) {
	return galaxy.FindByID(s.Galaxy, id)
}

// CurrentBody returns the body the player is docked at
func (s *Session) CurrentBody() (galaxy.Body, bool) {
	return s.Body(s.CurrentBodyID)
}

// MarketAt returns the market attached to a body
func (s *Session) MarketAt(bodyID string) (*market.Market, bool) {
	m, ok := s.Markets[bodyID]
	return m, ok
}

// CargoValue values the hold at catalog prices
func (s *Session) CargoValue() int {
	return s.Player.Inventory.BaseValue()
}

// EffectiveCargoValue is the floored cargo value used for encounter fines
func (s *Session) EffectiveCargoValue() int {
	return utils.Max(s.Settings.MinCargoValueForFines, s.CargoValue())
}

// HasPendingEvent checks whether an unresolved encounter blocks the session
func (s *Session) HasPendingEvent() bool {
	return s.CurrentEvent != nil
}

// SetEvent installs the pending encounter. Generating a new event while one
// is pending is rejected; there is no queueing.
func (s *Session) SetEvent(e *encounter.Event) error {
	if s.CurrentEvent != nil {
		return encounter.ErrEventPending
	}
	s.CurrentEvent = e
	return nil
}

// ClearEvent discards the pending encounter after resolution
func (s *Session) ClearEvent() {
	s.CurrentEvent = nil
}
