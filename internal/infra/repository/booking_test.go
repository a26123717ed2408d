//go:build unit

package repository

import (
	"context"
	"testing"

	"shareit/internal/domain/booking"
	"shareit/internal/infra"
	"shareit/internal/infra/query"
	"shareit/tests/common/builder"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockBookingWriteQueries struct {
	mock.Mock
}

func (m *MockBookingWriteQueries) CreateBooking(ctx context.Context, db query.DBTX, arg query.CreateBookingParams) (query.Bookings, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(query.Bookings), args.Error(1)
}

func (m *MockBookingWriteQueries) GetBookingByID(ctx context.Context, db query.DBTX, id uuid.UUID) (query.Bookings, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(query.Bookings), args.Error(1)
}

func (m *MockBookingWriteQueries) DecideBooking(ctx context.Context, db query.DBTX, arg query.DecideBookingParams) (query.Bookings, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(query.Bookings), args.Error(1)
}

func (m *MockBookingWriteQueries) ListSlotsByBookerAndItem(ctx context.Context, db query.DBTX, arg query.ListSlotsByBookerAndItemParams) ([]query.BookingSlotRow, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).([]query.BookingSlotRow), args.Error(1)
}

func TestBookingRepository_FindByID(t *testing.T) {
	b := builder.NewBookingBuilder().WithStatus(booking.StatusApproved)

	tests := []struct {
		name     string
		row      query.Bookings
		mockErr  error
		wantKind infra.RepositoryErrorKind
	}{
		{name: "success", row: b.BuildInfra()},
		{name: "not found", mockErr: pgx.ErrNoRows, wantKind: infra.KindNotFound},
		{name: "database error", mockErr: assert.AnError, wantKind: infra.KindDBFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := new(MockBookingWriteQueries)
			q.On("GetBookingByID", mock.Anything, mock.Anything, b.ID).Return(tt.row, tt.mockErr)

			got, err := NewBookingRepository(q, nil).FindByID(context.Background(), b.ID)

			if tt.wantKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tt.wantKind))
			} else {
				require.NoError(t, err)
				assert.Equal(t, b.ID, got.ID())
				assert.Equal(t, booking.StatusApproved, got.Status())
				assert.True(t, b.Start.Equal(got.Window().Start()))
			}
			q.AssertExpectations(t)
		})
	}
}

func TestBookingRepository_SaveDecision(t *testing.T) {
	b := builder.NewBookingBuilder()
	bk := b.BuildStored()
	require.NoError(t, bk.Decide(b.OwnerID, false, b.Now))

	tests := []struct {
		name     string
		mockErr  error
		wantKind infra.RepositoryErrorKind
	}{
		{name: "success"},
		{name: "no longer waiting", mockErr: pgx.ErrNoRows, wantKind: infra.KindPreconditionFailed},
		{name: "database error", mockErr: assert.AnError, wantKind: infra.KindDBFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := new(MockBookingWriteQueries)
			q.On("DecideBooking", mock.Anything, mock.Anything, mock.MatchedBy(func(p query.DecideBookingParams) bool {
				return p.ID == b.ID && p.Status == "REJECTED"
			})).Return(query.Bookings{}, tt.mockErr)

			err := NewBookingRepository(q, nil).SaveDecision(context.Background(), bk)

			if tt.wantKind != "" {
				assert.True(t, infra.IsKind(err, tt.wantKind))
			} else {
				assert.NoError(t, err)
			}
			q.AssertExpectations(t)
		})
	}
}

func TestBookingRepository_SlotsByBookerAndItem(t *testing.T) {
	b := builder.NewBookingBuilder().WithStatus(booking.StatusApproved)
	row := b.BuildInfra()

	q := new(MockBookingWriteQueries)
	q.On("ListSlotsByBookerAndItem", mock.Anything, mock.Anything,
		query.ListSlotsByBookerAndItemParams{BookerID: b.BookerID, ItemID: b.ItemID}).
		Return([]query.BookingSlotRow{{
			ID: row.ID, ItemID: row.ItemID, BookerID: row.BookerID,
			StartAt: row.StartAt, EndAt: row.EndAt, Status: row.Status,
		}}, nil)

	slots, err := NewBookingRepository(q, nil).SlotsByBookerAndItem(context.Background(), b.BookerID, b.ItemID)

	require.NoError(t, err)
	require.Len(t, slots, 1)
	assert.Equal(t, b.ID, slots[0].ID)
	assert.Equal(t, booking.StatusApproved, slots[0].Status)
	q.AssertExpectations(t)
}
