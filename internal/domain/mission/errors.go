package mission

import "errors"

// Domain errors for mission lifecycle operations

var (
	// ErrInvalidTransition is returned on any attempt to move a mission
	// backwards through its lifecycle
	ErrInvalidTransition = errors.New("invalid mission status transition")

	// ErrMissionNotFound is returned when a mission id is not in the expected list
	ErrMissionNotFound = errors.New("mission not found")

	// ErrDuplicateMission is returned when accepting a mission whose id is
	// already tracked by the log
	ErrDuplicateMission = errors.New("mission already in log")

	// ErrNoLocations is returned when generation is attempted with an empty
	// location list
	ErrNoLocations = errors.New("no locations available")
)
