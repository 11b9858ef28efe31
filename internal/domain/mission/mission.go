package mission

import (
	"math"
	"time"

	"github.com/galactictrader/galactic-trader-go/internal/domain/cargo"
	"github.com/galactictrader/galactic-trader-go/internal/domain/market"
)

// Type is the mission category; each category has its own reward template
// and objective shape
type Type string

const (
	Delivery  Type = "delivery"
	Smuggling Type = "smuggling"
	Bounty    Type = "bounty"
	Trade     Type = "trade"
)

// Status is the mission lifecycle state. Transitions are one-way:
// available -> active -> completed | failed. There are no reverse edges.
type Status string

const (
	StatusAvailable Status = "available"
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
)

// ObjectiveType identifies what an objective checks
type ObjectiveType string

const (
	ObjectiveDeliver   ObjectiveType = "deliver"
	ObjectiveCollect   ObjectiveType = "collect"
	ObjectiveEliminate ObjectiveType = "eliminate"
)

// Objective is one step of a mission, checked against the player's location
// and inventory
type Objective struct {
	Type           ObjectiveType       `json:"type"`
	Resource       market.ResourceType `json:"resource,omitempty"`
	Amount         int                 `json:"amount,omitempty"`
	TargetLocation string              `json:"targetLocation,omitempty"`
	Description    string              `json:"description"`
}

// Satisfied checks the objective against current location and inventory.
// Eliminate objectives resolve through combat, not through this check.
func (o Objective) Satisfied(currentLocation string, inventory cargo.Inventory) bool {
	switch o.Type {
	case ObjectiveDeliver:
		return currentLocation == o.TargetLocation && inventory.Quantity(o.Resource) >= o.Amount
	case ObjectiveCollect:
		return inventory.Quantity(o.Resource) >= o.Amount
	default:
		return false
	}
}

// Reward is paid out when a mission completes
type Reward struct {
	Credits    int `json:"credits"`
	Reputation int `json:"reputation"`
}

// Mission is a generated job offer with its lifecycle state
type Mission struct {
	ID                 string      `json:"id"`
	Title              string      `json:"title"`
	Type               Type        `json:"type"`
	Description        string      `json:"description"`
	Giver              string      `json:"giver"`
	Location           string      `json:"location"`
	Objectives         []Objective `json:"objectives"`
	Reward             Reward      `json:"reward"`
	Status             Status      `json:"status"`
	TimeLimit          int         `json:"timeLimit"`
	RiskLevel          int         `json:"riskLevel"`
	RequiredReputation int         `json:"requiredReputation"`
	CompletionProgress int         `json:"completionProgress"`
	ExpiryTime         time.Time   `json:"expiryTime"`
}

// Accept transitions an available mission to active
func (m *Mission) Accept() error {
	if m.Status != StatusAvailable {
		return ErrInvalidTransition
	}
	m.Status = StatusActive
	return nil
}

// IsExpired checks the wall-clock expiry. The core never polls this itself;
// callers check and fail expired missions.
func (m *Mission) IsExpired(now time.Time) bool {
	return !m.ExpiryTime.IsZero() && now.After(m.ExpiryTime)
}

// UpdateProgress recomputes the completion percentage of an active mission
// from its objectives and transitions it to completed at 100%. Non-active
// missions are left untouched.
func (m *Mission) UpdateProgress(currentLocation string, inventory cargo.Inventory) {
	if m.Status != StatusActive {
		return
	}
	if len(m.Objectives) == 0 {
		return
	}

	satisfied := 0
	for _, obj := range m.Objectives {
		if obj.Satisfied(currentLocation, inventory) {
			satisfied++
		}
	}

	m.CompletionProgress = int(math.Round(float64(satisfied) / float64(len(m.Objectives)) * 100))
	if m.CompletionProgress == 100 {
		m.Status = StatusCompleted
	}
}
