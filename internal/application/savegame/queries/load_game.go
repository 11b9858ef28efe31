package queries

import (
	"context"
	"fmt"

	"github.com/galactictrader/galactic-trader-go/internal/application/common"
	"github.com/galactictrader/galactic-trader-go/internal/domain/game"
)

// LoadGameQuery reconstructs a session from the repository
type LoadGameQuery struct {
	SessionID string
}

// LoadGameResponse carries the reconstructed session
type LoadGameResponse struct {
	Session *game.Session
}

// LoadGameHandler reads sessions from the configured repository
type LoadGameHandler struct {
	repository game.SessionRepository
}

// NewLoadGameHandler creates the handler
func NewLoadGameHandler(repository game.SessionRepository) *LoadGameHandler {
	return &LoadGameHandler{repository: repository}
}

// Handle executes the load query
func (h *LoadGameHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	query, ok := request.(*LoadGameQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type")
	}

	session, err := h.repository.FindByID(ctx, query.SessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load game: %w", err)
	}

	return &LoadGameResponse{Session: session}, nil
}
