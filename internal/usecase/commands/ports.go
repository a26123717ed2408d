package commands

import (
	"context"

	"shareit/internal/domain/booking"
	"shareit/internal/domain/comment"
	"shareit/internal/domain/item"
	"shareit/internal/domain/request"
	"shareit/internal/domain/user"

	"github.com/google/uuid"
)

// Write-side ports. Implementations report failures as infra.RepositoryError.

type UserRepository interface {
	Create(ctx context.Context, u *user.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*user.User, error)
	Update(ctx context.Context, u *user.User) error
	Delete(ctx context.Context, id uuid.UUID) error
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

type ItemRepository interface {
	Create(ctx context.Context, it *item.Item) error
	FindByID(ctx context.Context, id uuid.UUID) (*item.Item, error)
	FindByIDForShare(ctx context.Context, id uuid.UUID) (*item.Item, error)
	Update(ctx context.Context, it *item.Item) error
}

type BookingRepository interface {
	Create(ctx context.Context, b *booking.Booking) error
	FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	SaveDecision(ctx context.Context, b *booking.Booking) error
	SlotsByBookerAndItem(ctx context.Context, bookerID, itemID uuid.UUID) ([]booking.Slot, error)
}

type CommentRepository interface {
	Create(ctx context.Context, c *comment.Comment) error
}

type ItemRequestRepository interface {
	Create(ctx context.Context, r *request.ItemRequest) error
}

// UnitOfWork runs fn in one database transaction. Repositories obtained from
// tx are bound to it; fn may be retried on serialization failures.
type UnitOfWork interface {
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	Items() ItemRepository
	Bookings() BookingRepository
}

func requireUser(ctx context.Context, users UserRepository, id uuid.UUID) error {
	ok, err := users.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return user.ErrNotFound
	}
	return nil
}
