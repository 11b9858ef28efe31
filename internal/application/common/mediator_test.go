package common_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/galactictrader/galactic-trader-go/internal/application/common"
)

type pingRequest struct {
	Payload string
}

type pingResponse struct {
	Echo string
}

type pingHandler struct{}

func (h *pingHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd := request.(*pingRequest)
	return &pingResponse{Echo: cmd.Payload}, nil
}

func TestMediator_Dispatch(t *testing.T) {
	m := common.NewMediator()
	require.NoError(t, common.RegisterHandler[*pingRequest](m, &pingHandler{}))

	response, err := m.Send(context.Background(), &pingRequest{Payload: "hello"})

	require.NoError(t, err)
	assert.Equal(t, "hello", response.(*pingResponse).Echo)
}

func TestMediator_UnregisteredRequest(t *testing.T) {
	m := common.NewMediator()

	_, err := m.Send(context.Background(), &pingRequest{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no handler registered")
}

func TestMediator_NilRequest(t *testing.T) {
	m := common.NewMediator()

	_, err := m.Send(context.Background(), nil)

	assert.Error(t, err)
}

func TestMediator_DuplicateRegistration(t *testing.T) {
	m := common.NewMediator()
	require.NoError(t, common.RegisterHandler[*pingRequest](m, &pingHandler{}))

	err := common.RegisterHandler[*pingRequest](m, &pingHandler{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "already registered")
}
