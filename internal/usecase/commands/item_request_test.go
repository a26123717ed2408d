//go:build unit

package commands_test

import (
	"context"
	"testing"

	"shareit/internal/domain/request"
	"shareit/internal/domain/user"
	"shareit/internal/pkg/clock"
	"shareit/internal/usecase/commands"
	"shareit/tests/common/builder"
	commandsmock "shareit/tests/mock/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestItemRequestUseCase_Create(t *testing.T) {
	b := builder.NewItemRequestBuilder()

	setup := func(t *testing.T) (commands.ItemRequestCommands, *commandsmock.MockItemRequestRepository, *commandsmock.MockUserRepository) {
		ctrl := gomock.NewController(t)
		repo := commandsmock.NewMockItemRequestRepository(ctrl)
		users := commandsmock.NewMockUserRepository(ctrl)
		return commands.NewItemRequestUseCase(repo, users, clock.NewMockClock(b.CreatedAt)), repo, users
	}

	t.Run("success", func(t *testing.T) {
		uc, repo, users := setup(t)
		users.EXPECT().Exists(gomock.Any(), b.RequestorID).Return(true, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, r *request.ItemRequest) error {
				assert.Equal(t, b.Description, r.Description())
				assert.Equal(t, b.CreatedAt, r.CreatedAt())
				return nil
			})

		res, err := uc.Create(context.Background(), b.Description, b.RequestorID)
		require.NoError(t, err)
		assert.NotEmpty(t, res.RequestID)
	})

	t.Run("blank description is checked first", func(t *testing.T) {
		uc, _, _ := setup(t)

		_, err := uc.Create(context.Background(), "", b.RequestorID)
		require.ErrorIs(t, err, request.ErrEmptyDescription)
	})

	t.Run("unknown requestor", func(t *testing.T) {
		uc, _, users := setup(t)
		users.EXPECT().Exists(gomock.Any(), b.RequestorID).Return(false, nil)

		_, err := uc.Create(context.Background(), b.Description, b.RequestorID)
		require.ErrorIs(t, err, user.ErrNotFound)
	})
}
