package commands

import (
	"context"
	"fmt"

	"github.com/galactictrader/galactic-trader-go/internal/application/common"
	"github.com/galactictrader/galactic-trader-go/internal/domain/game"
	"github.com/galactictrader/galactic-trader-go/internal/domain/shared"
)

// SaveGameCommand persists the session through the repository, stamping the
// save time
type SaveGameCommand struct {
	Session *game.Session
}

// SaveGameResponse reports the stored session id
type SaveGameResponse struct {
	SessionID string
}

// SaveGameHandler writes sessions to the configured repository
type SaveGameHandler struct {
	repository game.SessionRepository
	clock      shared.Clock
}

// NewSaveGameHandler creates the handler
func NewSaveGameHandler(repository game.SessionRepository, clock shared.Clock) *SaveGameHandler {
	if clock == nil {
		clock = shared.NewRealClock()
	}
	return &SaveGameHandler{repository: repository, clock: clock}
}

// Handle executes the save command
func (h *SaveGameHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(*SaveGameCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type")
	}

	logger := common.LoggerFromContext(ctx)
	session := cmd.Session
	session.LastSaved = h.clock.Now()

	if err := h.repository.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to save game: %w", err)
	}

	logger.Log("INFO", "Game saved", map[string]interface{}{
		"session": session.ID,
	})

	return &SaveGameResponse{SessionID: session.ID}, nil
}
