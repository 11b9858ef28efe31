package queries

import (
	"context"
	"fmt"

	"github.com/galactictrader/galactic-trader-go/internal/application/common"
	"github.com/galactictrader/galactic-trader-go/internal/domain/game"
)

// ListGamesQuery fetches every saved session
type ListGamesQuery struct{}

// ListGamesResponse carries the saved sessions
type ListGamesResponse struct {
	Sessions []*game.Session
}

// ListGamesHandler reads all saves from the configured repository
type ListGamesHandler struct {
	repository game.SessionRepository
}

// NewListGamesHandler creates the handler
func NewListGamesHandler(repository game.SessionRepository) *ListGamesHandler {
	return &ListGamesHandler{repository: repository}
}

// Handle executes the list query
func (h *ListGamesHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	if _, ok := request.(*ListGamesQuery); !ok {
		return nil, fmt.Errorf("invalid request type")
	}

	sessions, err := h.repository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list games: %w", err)
	}

	return &ListGamesResponse{Sessions: sessions}, nil
}
