//go:build unit

package repository

import (
	"context"
	"testing"

	"shareit/internal/infra"
	"shareit/internal/infra/query"
	"shareit/tests/common/builder"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockUserWriteQueries struct {
	mock.Mock
}

func (m *MockUserWriteQueries) CreateUser(ctx context.Context, db query.DBTX, arg query.CreateUserParams) (query.Users, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(query.Users), args.Error(1)
}

func (m *MockUserWriteQueries) GetUserByID(ctx context.Context, db query.DBTX, id uuid.UUID) (query.Users, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(query.Users), args.Error(1)
}

func (m *MockUserWriteQueries) UpdateUser(ctx context.Context, db query.DBTX, arg query.UpdateUserParams) (query.Users, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(query.Users), args.Error(1)
}

func (m *MockUserWriteQueries) DeleteUser(ctx context.Context, db query.DBTX, id uuid.UUID) (int64, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserWriteQueries) UserExists(ctx context.Context, db query.DBTX, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, db, id)
	return args.Bool(0), args.Error(1)
}

func TestUserRepository_Create(t *testing.T) {
	u, err := builder.NewUserBuilder().BuildDomain()
	require.NoError(t, err)

	tests := []struct {
		name     string
		mockErr  error
		wantKind infra.RepositoryErrorKind
	}{
		{name: "success"},
		{name: "duplicate email", mockErr: &pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "users_email_key"}, wantKind: infra.KindDuplicateKey},
		{name: "database error", mockErr: assert.AnError, wantKind: infra.KindDBFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := new(MockUserWriteQueries)
			q.On("CreateUser", mock.Anything, mock.Anything, mock.MatchedBy(func(p query.CreateUserParams) bool {
				return p.ID == u.ID() && p.Email == "alice@example.com"
			})).Return(query.Users{}, tt.mockErr)

			err := NewUserRepository(q, nil).Create(context.Background(), u)

			if tt.wantKind != "" {
				assert.True(t, infra.IsKind(err, tt.wantKind))
			} else {
				assert.NoError(t, err)
			}
			q.AssertExpectations(t)
		})
	}
}

func TestUserRepository_Delete(t *testing.T) {
	id := uuid.New()

	tests := []struct {
		name     string
		affected int64
		mockErr  error
		wantKind infra.RepositoryErrorKind
	}{
		{name: "success", affected: 1},
		{name: "nothing deleted", affected: 0, wantKind: infra.KindNotFound},
		{name: "database error", mockErr: assert.AnError, wantKind: infra.KindDBFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := new(MockUserWriteQueries)
			q.On("DeleteUser", mock.Anything, mock.Anything, id).Return(tt.affected, tt.mockErr)

			err := NewUserRepository(q, nil).Delete(context.Background(), id)

			if tt.wantKind != "" {
				assert.True(t, infra.IsKind(err, tt.wantKind))
			} else {
				assert.NoError(t, err)
			}
			q.AssertExpectations(t)
		})
	}
}

func TestUserRepository_FindByID(t *testing.T) {
	b := builder.NewUserBuilder()
	q := new(MockUserWriteQueries)
	q.On("GetUserByID", mock.Anything, mock.Anything, b.ID).Return(b.BuildInfra(), nil)

	u, err := NewUserRepository(q, nil).FindByID(context.Background(), b.ID)

	require.NoError(t, err)
	assert.Equal(t, b.ID, u.ID())
	assert.Equal(t, b.Email, u.Email().Value())
	q.AssertExpectations(t)
}
