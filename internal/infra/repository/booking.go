package repository

import (
	"context"

	"shareit/internal/domain/booking"
	"shareit/internal/infra"
	"shareit/internal/infra/converter"
	"shareit/internal/infra/query"
	"shareit/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type BookingWriteQueries interface {
	CreateBooking(ctx context.Context, db query.DBTX, arg query.CreateBookingParams) (query.Bookings, error)
	GetBookingByID(ctx context.Context, db query.DBTX, id uuid.UUID) (query.Bookings, error)
	DecideBooking(ctx context.Context, db query.DBTX, arg query.DecideBookingParams) (query.Bookings, error)
	ListSlotsByBookerAndItem(ctx context.Context, db query.DBTX, arg query.ListSlotsByBookerAndItemParams) ([]query.BookingSlotRow, error)
}

type BookingRepository struct {
	queries BookingWriteQueries
	db      query.DBTX
}

func NewBookingRepository(queries BookingWriteQueries, db query.DBTX) *BookingRepository {
	return &BookingRepository{
		queries: queries,
		db:      db,
	}
}

func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) error {
	if _, err := r.queries.CreateBooking(ctx, r.db, converter.BookingToCreateParams(b)); err != nil {
		return infra.WrapRepoErr("failed to create booking", err)
	}
	return nil
}

func (r *BookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	row, err := r.queries.GetBookingByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by id", err)
	}
	return converter.BookingFromRow(row)
}

// SaveDecision persists b's new status only if the stored booking is still
// WAITING. A lost race is reported as KindPreconditionFailed.
func (r *BookingRepository) SaveDecision(ctx context.Context, b *booking.Booking) error {
	params := query.DecideBookingParams{
		ID:        b.ID(),
		Status:    b.Status().String(),
		UpdatedAt: pgconv.TimeToPgtype(b.UpdatedAt()),
	}
	if _, err := r.queries.DecideBooking(ctx, r.db, params); err != nil {
		if pgconv.IsNoRows(err) {
			return infra.WrapRepoErr("booking is no longer waiting", err, infra.KindPreconditionFailed)
		}
		return infra.WrapRepoErr("failed to save booking decision", err)
	}
	return nil
}

func (r *BookingRepository) SlotsByBookerAndItem(ctx context.Context, bookerID, itemID uuid.UUID) ([]booking.Slot, error) {
	rows, err := r.queries.ListSlotsByBookerAndItem(ctx, r.db, query.ListSlotsByBookerAndItemParams{
		BookerID: bookerID,
		ItemID:   itemID,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list booker slots", err)
	}
	return converter.SlotsFromRows(rows)
}
