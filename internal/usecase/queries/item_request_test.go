//go:build unit

package queries_test

import (
	"context"
	"testing"

	"shareit/internal/domain/request"
	"shareit/internal/domain/user"
	"shareit/internal/infra"
	"shareit/internal/usecase/queries"
	"shareit/tests/common/builder"
	queriesmock "shareit/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestItemRequestQueries(t *testing.T) {
	rb := builder.NewItemRequestBuilder()
	caller := uuid.New()

	setup := func(t *testing.T) (queries.ItemRequestQueries, *queriesmock.MockItemRequestReadStore, *queriesmock.MockUserReadStore) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockItemRequestReadStore(ctrl)
		users := queriesmock.NewMockUserReadStore(ctrl)
		return queries.NewItemRequestQueries(store, users), store, users
	}

	t.Run("get requires a known caller", func(t *testing.T) {
		q, _, users := setup(t)
		users.EXPECT().Exists(gomock.Any(), caller).Return(false, nil)

		_, err := q.GetByID(context.Background(), caller, rb.ID)
		require.ErrorIs(t, err, user.ErrNotFound)
	})

	t.Run("get missing request", func(t *testing.T) {
		q, store, users := setup(t)
		users.EXPECT().Exists(gomock.Any(), caller).Return(true, nil)
		store.EXPECT().FindByID(gomock.Any(), rb.ID).
			Return(nil, infra.WrapRepoErr("find request", nil, infra.KindNotFound))

		_, err := q.GetByID(context.Background(), caller, rb.ID)
		require.ErrorIs(t, err, request.ErrNotFound)
	})

	t.Run("list own", func(t *testing.T) {
		q, store, users := setup(t)
		users.EXPECT().Exists(gomock.Any(), caller).Return(true, nil)
		store.EXPECT().ListByRequestor(gomock.Any(), caller).Return([]*queries.ItemRequestView{rb.BuildView()}, nil)

		got, err := q.ListOwn(context.Background(), caller)
		require.NoError(t, err)
		require.Len(t, got, 1)
	})

	t.Run("list others pages by size", func(t *testing.T) {
		q, store, users := setup(t)
		users.EXPECT().Exists(gomock.Any(), caller).Return(true, nil)
		store.EXPECT().ListExcluding(gomock.Any(), caller, int32(3), int32(6)).Return([]*queries.ItemRequestView{}, nil)

		_, err := q.ListOthers(context.Background(), caller, 7, 3)
		require.NoError(t, err)
	})
}
