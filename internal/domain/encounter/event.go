package encounter

import "errors"

// EventType identifies who the player ran into
type EventType string

const (
	Pirates EventType = "pirates"
	Police  EventType = "police"
	Traders EventType = "traders"
)

// IsValid checks membership in the event enumeration
func (t EventType) IsValid() bool {
	switch t {
	case Pirates, Police, Traders:
		return true
	}
	return false
}

// Event is an ephemeral confrontation: it exists between generation and
// resolution, and a game session holds at most one at a time
type Event struct {
	Type        EventType `json:"type"`
	Enemy       Enemy     `json:"enemy"`
	Description string    `json:"description"`
	HasCargo    bool      `json:"hasCargo"`
}

var (
	// ErrNoPendingEvent is returned when resolving with no event in flight
	ErrNoPendingEvent = errors.New("no pending encounter")

	// ErrEventPending is returned when an operation is attempted while an
	// unresolved encounter blocks it
	ErrEventPending = errors.New("encounter pending resolution")

	// ErrInvalidAction is returned for an action outside fight/flee/comply
	ErrInvalidAction = errors.New("invalid encounter action")
)
