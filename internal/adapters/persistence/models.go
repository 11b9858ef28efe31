package persistence

import (
	"time"
)

// GameStateModel represents the game_states table. Structured state is
// stored as JSON text columns; reputation, health and fuel are duplicated
// as scalar columns to match the external save shape.
type GameStateModel struct {
	ID               string    `gorm:"column:id;primaryKey;not null"`
	Player           string    `gorm:"column:player;type:text;not null"`
	Components       string    `gorm:"column:components;type:text;not null"`
	MissionLog       string    `gorm:"column:mission_log;type:text;not null"`
	Galaxy           string    `gorm:"column:galaxy;type:text;not null"`
	Markets          string    `gorm:"column:markets;type:text;not null"`
	CurrentBodyID    string    `gorm:"column:current_body_id"`
	CurrentEvent     string    `gorm:"column:current_event;type:text"`
	Settings         string    `gorm:"column:settings;type:text;not null"`
	PlayerReputation int       `gorm:"column:player_reputation;not null;default:0"`
	Health           int       `gorm:"column:health;not null"`
	Fuel             float64   `gorm:"column:fuel;not null"`
	LastSaved        time.Time `gorm:"column:last_saved;not null"`
}

func (GameStateModel) TableName() string {
	return "game_states"
}

// savedPlayer is the external save shape for the player section. Position is
// a flat 3-element array there, not an object.
type savedPlayer struct {
	Position      [3]float64     `json:"position"`
	Fuel          float64        `json:"fuel"`
	MaxFuel       float64        `json:"maxFuel"`
	Speed         float64        `json:"speed"`
	Credits       int            `json:"credits"`
	CargoCapacity int            `json:"cargoCapacity"`
	Inventory     map[string]int `json:"inventory"`
}
