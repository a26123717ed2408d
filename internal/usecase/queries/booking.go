package queries

import (
	"context"
	"time"

	"shareit/internal/domain/booking"
	"shareit/internal/infra"
	"shareit/internal/pkg/clock"

	"github.com/google/uuid"
)

type BookingListFilter struct {
	UserID      uuid.UUID
	Perspective booking.Perspective
	State       booking.StateFilter
	Now         time.Time
	Limit       int32
	Offset      int32
}

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	List(ctx context.Context, f BookingListFilter) ([]*BookingView, error)
}

type BookingQueries interface {
	GetByID(ctx context.Context, callerID, id uuid.UUID) (*BookingView, error)
	// GetByIDSystem skips the participant check; for read-after-write only.
	GetByIDSystem(ctx context.Context, id uuid.UUID) (*BookingView, error)
	List(ctx context.Context, perspective booking.Perspective, state string, userID uuid.UUID, from, size int) ([]*BookingView, error)
}

type bookingQueriesImpl struct {
	bookings BookingReadStore
	users    UserReadStore
	clock    clock.Clock
}

func NewBookingQueries(bookings BookingReadStore, users UserReadStore, clk clock.Clock) BookingQueries {
	return &bookingQueriesImpl{
		bookings: bookings,
		users:    users,
		clock:    clk,
	}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, callerID, id uuid.UUID) (*BookingView, error) {
	v, err := q.GetByIDSystem(ctx, id)
	if err != nil {
		return nil, err
	}
	if callerID != v.Booker.ID && callerID != v.OwnerID {
		return nil, booking.ErrNotParticipant
	}
	return v, nil
}

func (q *bookingQueriesImpl) GetByIDSystem(ctx context.Context, id uuid.UUID) (*BookingView, error) {
	v, err := q.bookings.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, booking.ErrNotFound
		}
		return nil, err
	}
	return v, nil
}

// List validates the page, then the user, then the state keyword.
func (q *bookingQueriesImpl) List(ctx context.Context, perspective booking.Perspective, state string, userID uuid.UUID, from, size int) ([]*BookingView, error) {
	page, err := NewPage(from, size)
	if err != nil {
		return nil, err
	}
	if err := requireUser(ctx, q.users, userID); err != nil {
		return nil, err
	}
	filter, err := booking.ParseStateFilter(state)
	if err != nil {
		return nil, err
	}

	return q.bookings.List(ctx, BookingListFilter{
		UserID:      userID,
		Perspective: perspective,
		State:       filter,
		Now:         q.clock.Now(),
		Limit:       page.Limit(),
		Offset:      page.Offset(),
	})
}
