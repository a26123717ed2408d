package commands

import (
	"context"

	"shareit/internal/domain/user"
	"shareit/internal/infra"
	"shareit/internal/pkg/clock"

	"github.com/google/uuid"
)

type CreateUserRequest struct {
	Name  string
	Email string
}

type PatchUserRequest struct {
	Name  *string
	Email *string
}

type CreateUserResult struct {
	UserID uuid.UUID
}

type UserCommands interface {
	Create(ctx context.Context, req CreateUserRequest) (*CreateUserResult, error)
	Patch(ctx context.Context, id uuid.UUID, req PatchUserRequest) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type userUseCaseImpl struct {
	users UserRepository
	clock clock.Clock
}

func NewUserUseCase(users UserRepository, clk clock.Clock) UserCommands {
	return &userUseCaseImpl{users: users, clock: clk}
}

func (uc *userUseCaseImpl) Create(ctx context.Context, req CreateUserRequest) (*CreateUserResult, error) {
	u, err := user.NewUser(req.Name, req.Email, uc.clock.Now())
	if err != nil {
		return nil, err
	}
	if err := uc.users.Create(ctx, u); err != nil {
		return nil, mapUserWriteErr(err)
	}
	return &CreateUserResult{UserID: u.ID()}, nil
}

func (uc *userUseCaseImpl) Patch(ctx context.Context, id uuid.UUID, req PatchUserRequest) error {
	u, err := uc.users.FindByID(ctx, id)
	if err != nil {
		return mapUserWriteErr(err)
	}
	if err := u.Patch(req.Name, req.Email, uc.clock.Now()); err != nil {
		return err
	}
	return mapUserWriteErr(uc.users.Update(ctx, u))
}

func (uc *userUseCaseImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return mapUserWriteErr(uc.users.Delete(ctx, id))
}

func mapUserWriteErr(err error) error {
	switch {
	case err == nil:
		return nil
	case infra.IsKind(err, infra.KindNotFound):
		return user.ErrNotFound
	case infra.IsKind(err, infra.KindDuplicateKey):
		return user.ErrEmailTaken
	default:
		return err
	}
}
