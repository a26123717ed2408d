//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"

	"shareit/internal/domain/user"
	"shareit/internal/infra"
	"shareit/internal/pkg/clock"
	"shareit/internal/usecase/commands"
	"shareit/tests/common/builder"
	commandsmock "shareit/tests/mock/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newUserUseCase(t *testing.T) (commands.UserCommands, *commandsmock.MockUserRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := commandsmock.NewMockUserRepository(ctrl)
	return commands.NewUserUseCase(repo, clock.NewMockClock(builder.NewUserBuilder().Now)), repo
}

func TestUserUseCase_Create(t *testing.T) {
	b := builder.NewUserBuilder()
	req := commands.CreateUserRequest{Name: b.Name, Email: b.Email}

	t.Run("success", func(t *testing.T) {
		uc, repo := newUserUseCase(t)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, u *user.User) error {
				assert.Equal(t, b.Email, u.Email().Value())
				assert.Equal(t, b.Now, u.CreatedAt())
				return nil
			})

		res, err := uc.Create(context.Background(), req)
		require.NoError(t, err)
		assert.NotEmpty(t, res.UserID)
	})

	t.Run("invalid email never reaches the store", func(t *testing.T) {
		uc, _ := newUserUseCase(t)

		_, err := uc.Create(context.Background(), commands.CreateUserRequest{Name: "A", Email: "nope"})
		require.ErrorIs(t, err, user.ErrInvalidEmail)
	})

	t.Run("duplicate email", func(t *testing.T) {
		uc, repo := newUserUseCase(t)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(infra.WrapRepoErr("create user", nil, infra.KindDuplicateKey))

		_, err := uc.Create(context.Background(), req)
		require.ErrorIs(t, err, user.ErrEmailTaken)
	})
}

func TestUserUseCase_Patch(t *testing.T) {
	stored := builder.NewUserBuilder().BuildStored()
	email := "new@example.com"

	t.Run("updates only present fields", func(t *testing.T) {
		uc, repo := newUserUseCase(t)
		repo.EXPECT().FindByID(gomock.Any(), stored.ID()).Return(stored, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, u *user.User) error {
				assert.Equal(t, "Alice", u.Name())
				assert.Equal(t, email, u.Email().Value())
				return nil
			})

		require.NoError(t, uc.Patch(context.Background(), stored.ID(), commands.PatchUserRequest{Email: &email}))
	})

	t.Run("missing user", func(t *testing.T) {
		uc, repo := newUserUseCase(t)
		repo.EXPECT().FindByID(gomock.Any(), stored.ID()).
			Return(nil, infra.WrapRepoErr("find user", nil, infra.KindNotFound))

		err := uc.Patch(context.Background(), stored.ID(), commands.PatchUserRequest{Email: &email})
		require.ErrorIs(t, err, user.ErrNotFound)
	})

	t.Run("email taken by another user", func(t *testing.T) {
		uc, repo := newUserUseCase(t)
		repo.EXPECT().FindByID(gomock.Any(), stored.ID()).Return(builder.NewUserBuilder().BuildStored(), nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).
			Return(infra.WrapRepoErr("update user", nil, infra.KindDuplicateKey))

		err := uc.Patch(context.Background(), stored.ID(), commands.PatchUserRequest{Email: &email})
		require.ErrorIs(t, err, user.ErrEmailTaken)
	})
}

func TestUserUseCase_Delete(t *testing.T) {
	id := builder.NewUserBuilder().ID

	uc, repo := newUserUseCase(t)
	repo.EXPECT().Delete(gomock.Any(), id).Return(infra.WrapRepoErr("delete user", nil, infra.KindNotFound))
	require.ErrorIs(t, uc.Delete(context.Background(), id), user.ErrNotFound)

	uc, repo = newUserUseCase(t)
	boom := errors.New("boom")
	repo.EXPECT().Delete(gomock.Any(), id).Return(boom)
	require.ErrorIs(t, uc.Delete(context.Background(), id), boom)
}
