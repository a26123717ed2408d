package commands

import (
	"context"

	"shareit/internal/domain/item"
	"shareit/internal/domain/request"
	"shareit/internal/infra"
	"shareit/internal/pkg/clock"

	"github.com/google/uuid"
)

type CreateItemRequest struct {
	Name        string
	Description string
	Available   *bool
	RequestID   *uuid.UUID
}

// PatchItemRequest carries only the fields to change.
type PatchItemRequest struct {
	Name        *string
	Description *string
	Available   *bool
}

type CreateItemResult struct {
	ItemID uuid.UUID
}

type ItemCommands interface {
	Create(ctx context.Context, req CreateItemRequest, ownerID uuid.UUID) (*CreateItemResult, error)
	Patch(ctx context.Context, itemID uuid.UUID, req PatchItemRequest, actorID uuid.UUID) error
}

type itemUseCaseImpl struct {
	items ItemRepository
	users UserRepository
	clock clock.Clock
}

func NewItemUseCase(items ItemRepository, users UserRepository, clk clock.Clock) ItemCommands {
	return &itemUseCaseImpl{
		items: items,
		users: users,
		clock: clk,
	}
}

func (uc *itemUseCaseImpl) Create(ctx context.Context, req CreateItemRequest, ownerID uuid.UUID) (*CreateItemResult, error) {
	if err := requireUser(ctx, uc.users, ownerID); err != nil {
		return nil, err
	}

	it, err := item.NewItem(ownerID, req.Name, req.Description, req.Available, req.RequestID, uc.clock.Now())
	if err != nil {
		return nil, err
	}

	if err := uc.items.Create(ctx, it); err != nil {
		if infra.IsKind(err, infra.KindForeignKeyViolated) && req.RequestID != nil {
			return nil, request.ErrNotFound
		}
		return nil, err
	}
	return &CreateItemResult{ItemID: it.ID()}, nil
}

func (uc *itemUseCaseImpl) Patch(ctx context.Context, itemID uuid.UUID, req PatchItemRequest, actorID uuid.UUID) error {
	it, err := uc.items.FindByID(ctx, itemID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return item.ErrNotFound
		}
		return err
	}

	if err := it.Patch(actorID, req.Name, req.Description, req.Available, uc.clock.Now()); err != nil {
		return err
	}
	return uc.items.Update(ctx, it)
}
