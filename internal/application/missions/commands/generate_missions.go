package commands

import (
	"context"
	"fmt"

	"github.com/galactictrader/galactic-trader-go/internal/application/common"
	"github.com/galactictrader/galactic-trader-go/internal/domain/game"
	"github.com/galactictrader/galactic-trader-go/internal/domain/mission"
)

// defaultMissionCount is the board size when the caller does not ask for a
// specific number of offers
const defaultMissionCount = 3

// GenerateMissionsCommand builds a batch of mission offers at the current
// body
type GenerateMissionsCommand struct {
	Session *game.Session
	Count   int
}

// GenerateMissionsResponse carries the generated offers; they are not yet
// in the mission log (acceptance puts them there)
type GenerateMissionsResponse struct {
	Missions []mission.Mission
}

// GenerateMissionsHandler wraps the domain generator
type GenerateMissionsHandler struct {
	generator *mission.Generator
}

// NewGenerateMissionsHandler creates the handler
func NewGenerateMissionsHandler(generator *mission.Generator) *GenerateMissionsHandler {
	return &GenerateMissionsHandler{generator: generator}
}

// Handle executes the generation command
func (h *GenerateMissionsHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(*GenerateMissionsCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type")
	}

	session := cmd.Session
	current, ok := session.CurrentBody()
	if !ok {
		return nil, fmt.Errorf("current body %q not in galaxy", session.CurrentBodyID)
	}

	count := cmd.Count
	if count <= 0 {
		count = defaultMissionCount
	}

	missions, err := h.generator.GenerateForLocation(current, session.Galaxy, session.Player.Reputation, count)
	if err != nil {
		return nil, err
	}

	return &GenerateMissionsResponse{Missions: missions}, nil
}
