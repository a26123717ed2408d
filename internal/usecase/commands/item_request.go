package commands

import (
	"context"

	"shareit/internal/domain/request"
	"shareit/internal/pkg/clock"

	"github.com/google/uuid"
)

type CreateItemRequestResult struct {
	RequestID uuid.UUID
}

type ItemRequestCommands interface {
	Create(ctx context.Context, description string, requestorID uuid.UUID) (*CreateItemRequestResult, error)
}

type itemRequestUseCaseImpl struct {
	requests ItemRequestRepository
	users    UserRepository
	clock    clock.Clock
}

func NewItemRequestUseCase(requests ItemRequestRepository, users UserRepository, clk clock.Clock) ItemRequestCommands {
	return &itemRequestUseCaseImpl{
		requests: requests,
		users:    users,
		clock:    clk,
	}
}

func (uc *itemRequestUseCaseImpl) Create(ctx context.Context, description string, requestorID uuid.UUID) (*CreateItemRequestResult, error) {
	r, err := request.NewItemRequest(requestorID, description, uc.clock.Now())
	if err != nil {
		return nil, err
	}
	if err := requireUser(ctx, uc.users, requestorID); err != nil {
		return nil, err
	}
	if err := uc.requests.Create(ctx, r); err != nil {
		return nil, err
	}
	return &CreateItemRequestResult{RequestID: r.ID()}, nil
}
