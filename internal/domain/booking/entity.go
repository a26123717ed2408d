package booking

import (
	"time"

	"shareit/internal/pkg/errs"

	"github.com/google/uuid"
)

// ItemSpec is what booking creation needs to know about the target item.
type ItemSpec struct {
	ID        uuid.UUID
	OwnerID   uuid.UUID
	Available bool
}

type Booking struct {
	id        uuid.UUID
	itemID    uuid.UUID
	bookerID  uuid.UUID
	window    TimeWindow
	status    Status
	createdAt time.Time
	updatedAt time.Time
}

// ValidateRequest performs the shape checks that run before any lookup.
func ValidateRequest(itemID uuid.UUID, start, end time.Time) error {
	if itemID == uuid.Nil {
		return ErrMissingItem
	}
	if start.IsZero() || end.IsZero() {
		return errs.Mark(ErrMissingTime, errs.ErrValidation)
	}
	if start.Equal(end) {
		return errs.Mark(ErrEmptyWindow, errs.ErrValidation)
	}
	return nil
}

// NewBooking applies the creation rules in order: ownership, availability,
// then the temporal window.
func NewBooking(item ItemSpec, bookerID uuid.UUID, start, end, now time.Time) (*Booking, error) {
	if item.OwnerID == bookerID {
		return nil, ErrOwnItem
	}
	if !item.Available {
		return nil, ErrItemUnavailable
	}
	window, err := NewTimeWindow(start, end, now)
	if err != nil {
		return nil, err
	}

	return &Booking{
		id:        uuid.New(),
		itemID:    item.ID,
		bookerID:  bookerID,
		window:    window,
		status:    StatusWaiting,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructBooking(
	id, itemID, bookerID uuid.UUID,
	window TimeWindow,
	status Status,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:        id,
		itemID:    itemID,
		bookerID:  bookerID,
		window:    window,
		status:    status,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// Decide moves a waiting booking to APPROVED or REJECTED. The persisted
// transition must still be conditional on the stored status being WAITING.
func (b *Booking) Decide(actorID uuid.UUID, approve bool, now time.Time) error {
	if actorID == b.bookerID {
		return ErrSelfDecision
	}
	if b.status.IsTerminal() {
		if b.status == StatusApproved {
			return ErrAlreadyApproved
		}
		return ErrAlreadyRejected
	}

	if approve {
		b.status = StatusApproved
	} else {
		b.status = StatusRejected
	}
	b.updatedAt = now
	return nil
}

func (b *Booking) Slot() Slot {
	return Slot{
		ID:       b.id,
		BookerID: b.bookerID,
		Start:    b.window.Start(),
		End:      b.window.End(),
		Status:   b.status,
	}
}

func (b *Booking) ID() uuid.UUID        { return b.id }
func (b *Booking) ItemID() uuid.UUID    { return b.itemID }
func (b *Booking) BookerID() uuid.UUID  { return b.bookerID }
func (b *Booking) Window() TimeWindow   { return b.window }
func (b *Booking) Status() Status       { return b.status }
func (b *Booking) CreatedAt() time.Time { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time { return b.updatedAt }
