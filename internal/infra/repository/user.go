package repository

import (
	"context"

	"shareit/internal/domain/user"
	"shareit/internal/infra"
	"shareit/internal/infra/converter"
	"shareit/internal/infra/query"
	"shareit/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type UserWriteQueries interface {
	CreateUser(ctx context.Context, db query.DBTX, arg query.CreateUserParams) (query.Users, error)
	GetUserByID(ctx context.Context, db query.DBTX, id uuid.UUID) (query.Users, error)
	UpdateUser(ctx context.Context, db query.DBTX, arg query.UpdateUserParams) (query.Users, error)
	DeleteUser(ctx context.Context, db query.DBTX, id uuid.UUID) (int64, error)
	UserExists(ctx context.Context, db query.DBTX, id uuid.UUID) (bool, error)
}

type UserRepository struct {
	queries UserWriteQueries
	db      query.DBTX
}

func NewUserRepository(queries UserWriteQueries, db query.DBTX) *UserRepository {
	return &UserRepository{
		queries: queries,
		db:      db,
	}
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	if _, err := r.queries.CreateUser(ctx, r.db, converter.UserToCreateParams(u)); err != nil {
		return infra.WrapRepoErr("failed to create user", err)
	}
	return nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	row, err := r.queries.GetUserByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by id", err)
	}
	return converter.UserFromRow(row), nil
}

func (r *UserRepository) Update(ctx context.Context, u *user.User) error {
	params := query.UpdateUserParams{
		ID:        u.ID(),
		Name:      u.Name(),
		Email:     u.Email().Value(),
		UpdatedAt: pgconv.TimeToPgtype(u.UpdatedAt()),
	}
	if _, err := r.queries.UpdateUser(ctx, r.db, params); err != nil {
		return infra.WrapRepoErr("failed to update user", err)
	}
	return nil
}

func (r *UserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	n, err := r.queries.DeleteUser(ctx, r.db, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete user", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *UserRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	ok, err := r.queries.UserExists(ctx, r.db, id)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check user existence", err)
	}
	return ok, nil
}
