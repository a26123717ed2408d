package commands

import (
	"context"
	"log/slog"
	"time"

	"shareit/internal/domain/booking"
	"shareit/internal/domain/item"
	"shareit/internal/infra"
	"shareit/internal/pkg/clock"
	"shareit/internal/pkg/metrics"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	ItemID uuid.UUID
	Start  time.Time
	End    time.Time
}

type CreateBookingResult struct {
	BookingID uuid.UUID
}

type BookingCommands interface {
	Create(ctx context.Context, req CreateBookingRequest, bookerID uuid.UUID) (*CreateBookingResult, error)
	Decide(ctx context.Context, bookingID, callerID uuid.UUID, approve bool) error
}

type bookingUseCaseImpl struct {
	uow      UnitOfWork
	bookings BookingRepository
	users    UserRepository
	clock    clock.Clock
	metrics  *metrics.Metrics
}

func NewBookingUseCase(
	uow UnitOfWork,
	bookings BookingRepository,
	users UserRepository,
	clk clock.Clock,
	m *metrics.Metrics,
) BookingCommands {
	return &bookingUseCaseImpl{
		uow:      uow,
		bookings: bookings,
		users:    users,
		clock:    clk,
		metrics:  m,
	}
}

func (uc *bookingUseCaseImpl) Create(ctx context.Context, req CreateBookingRequest, bookerID uuid.UUID) (*CreateBookingResult, error) {
	if err := booking.ValidateRequest(req.ItemID, req.Start, req.End); err != nil {
		return nil, err
	}
	if err := requireUser(ctx, uc.users, bookerID); err != nil {
		return nil, err
	}

	var b *booking.Booking
	err := uc.uow.Within(ctx, func(ctx context.Context, tx Tx) error {
		it, err := tx.Items().FindByIDForShare(ctx, req.ItemID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return item.ErrNotFound
			}
			return err
		}

		spec := booking.ItemSpec{ID: it.ID(), OwnerID: it.OwnerID(), Available: it.Available()}
		b, err = booking.NewBooking(spec, bookerID, req.Start, req.End, uc.clock.Now())
		if err != nil {
			return err
		}

		if err := tx.Bookings().Create(ctx, b); err != nil {
			if infra.IsKind(err, infra.KindForeignKeyViolated) {
				return item.ErrNotFound
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	uc.metrics.BookingsCreated.Inc()

	return &CreateBookingResult{BookingID: b.ID()}, nil
}

func (uc *bookingUseCaseImpl) Decide(ctx context.Context, bookingID, callerID uuid.UUID, approve bool) error {
	b, err := uc.bookings.FindByID(ctx, bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return booking.ErrNotFound
		}
		return err
	}

	if err := b.Decide(callerID, approve, uc.clock.Now()); err != nil {
		return err
	}

	if err := uc.bookings.SaveDecision(ctx, b); err != nil {
		if infra.IsKind(err, infra.KindPreconditionFailed) {
			uc.metrics.RecordDecision(metrics.OutcomeConflict)
			slog.WarnContext(ctx, "booking decided concurrently",
				slog.String("booking_id", bookingID.String()),
			)
			return booking.ErrDecisionConflict
		}
		return err
	}

	if approve {
		uc.metrics.RecordDecision(metrics.OutcomeApproved)
	} else {
		uc.metrics.RecordDecision(metrics.OutcomeRejected)
	}
	return nil
}
