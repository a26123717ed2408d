//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"shareit/internal/domain/booking"
	"shareit/internal/domain/item"
	"shareit/internal/infra"
	"shareit/internal/pkg/clock"
	"shareit/internal/usecase/queries"
	"shareit/tests/common/builder"
	queriesmock "shareit/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newItemQueries(t *testing.T) (queries.ItemQueries, *queriesmock.MockItemReadStore) {
	t.Helper()
	store := queriesmock.NewMockItemReadStore(gomock.NewController(t))
	return queries.NewItemQueries(store, clock.NewMockClock(builder.NewItemBuilder().Now)), store
}

func TestItemQueries_GetByID(t *testing.T) {
	ib := builder.NewItemBuilder()
	past := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
		b.ItemID = ib.ID
		b.OwnerID = ib.OwnerID
	}).Window(-3*time.Hour, -2*time.Hour).WithStatus(booking.StatusApproved)
	future := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
		b.ItemID = ib.ID
		b.OwnerID = ib.OwnerID
	}).WithStatus(booking.StatusApproved)
	slots := map[uuid.UUID][]booking.Slot{ib.ID: {past.BuildSlot(), future.BuildSlot()}}
	comment := builder.NewCommentBuilder().With(func(c *builder.CommentBuilder) { c.ItemID = ib.ID }).BuildView()

	expectDecoration := func(store *queriesmock.MockItemReadStore) {
		store.EXPECT().SlotsByItems(gomock.Any(), []uuid.UUID{ib.ID}).Return(slots, nil)
		store.EXPECT().CommentsByItems(gomock.Any(), []uuid.UUID{ib.ID}).
			Return(map[uuid.UUID][]queries.CommentView{ib.ID: {*comment}}, nil)
	}

	t.Run("owner sees last and next bookings", func(t *testing.T) {
		q, store := newItemQueries(t)
		store.EXPECT().FindByID(gomock.Any(), ib.ID).Return(ib.BuildView(), nil)
		expectDecoration(store)

		got, err := q.GetByID(context.Background(), ib.OwnerID, ib.ID)
		require.NoError(t, err)

		require.NotNil(t, got.LastBooking)
		require.NotNil(t, got.NextBooking)
		assert.Equal(t, past.ID, got.LastBooking.ID)
		assert.Equal(t, future.ID, got.NextBooking.ID)
		assert.Len(t, got.Comments, 1)
	})

	t.Run("others see comments only", func(t *testing.T) {
		q, store := newItemQueries(t)
		store.EXPECT().FindByID(gomock.Any(), ib.ID).Return(ib.BuildView(), nil)
		expectDecoration(store)

		got, err := q.GetByID(context.Background(), uuid.New(), ib.ID)
		require.NoError(t, err)

		assert.Nil(t, got.LastBooking)
		assert.Nil(t, got.NextBooking)
		assert.Len(t, got.Comments, 1)
	})

	t.Run("missing item", func(t *testing.T) {
		q, store := newItemQueries(t)
		store.EXPECT().FindByID(gomock.Any(), ib.ID).
			Return(nil, infra.WrapRepoErr("find item", nil, infra.KindNotFound))

		_, err := q.GetByID(context.Background(), ib.OwnerID, ib.ID)
		require.ErrorIs(t, err, item.ErrNotFound)
	})
}

func TestItemQueries_ListByOwner(t *testing.T) {
	ib := builder.NewItemBuilder()

	q, store := newItemQueries(t)
	store.EXPECT().ListByOwner(gomock.Any(), ib.OwnerID, int32(10), int32(0)).
		Return([]*queries.ItemView{ib.BuildView()}, nil)
	store.EXPECT().SlotsByItems(gomock.Any(), []uuid.UUID{ib.ID}).Return(map[uuid.UUID][]booking.Slot{}, nil)
	store.EXPECT().CommentsByItems(gomock.Any(), []uuid.UUID{ib.ID}).Return(map[uuid.UUID][]queries.CommentView{}, nil)

	got, err := q.ListByOwner(context.Background(), ib.OwnerID, 0, 10)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.NotNil(t, got[0].Comments)
	assert.Empty(t, got[0].Comments)
}

func TestItemQueries_Search(t *testing.T) {
	t.Run("blank text matches nothing", func(t *testing.T) {
		q, _ := newItemQueries(t)

		got, err := q.Search(context.Background(), "   ", 0, 10)
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("trims and pages", func(t *testing.T) {
		q, store := newItemQueries(t)
		store.EXPECT().Search(gomock.Any(), "drill", int32(2), int32(4)).Return([]*queries.ItemView{}, nil)

		_, err := q.Search(context.Background(), " drill ", 5, 2)
		require.NoError(t, err)
	})

	t.Run("invalid page", func(t *testing.T) {
		q, _ := newItemQueries(t)

		_, err := q.Search(context.Background(), "drill", -1, 10)
		require.ErrorIs(t, err, queries.ErrInvalidPage)
	})
}
