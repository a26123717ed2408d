package comment

import (
	"time"

	"shareit/internal/domain/booking"
	"shareit/internal/pkg/errs"
)

var (
	ErrItemNotBooked       = errs.Validation("item not booked by this user")
	ErrBookingNotCompleted = errs.Validation("booking has not ended yet")
)

// CheckEligibility decides whether the author of slots may comment on the
// item they were booked for. Only approved bookings count, and the one that
// ends earliest is the one that must already be over.
func CheckEligibility(slots []booking.Slot, now time.Time) error {
	var earliest *booking.Slot
	for i := range slots {
		s := slots[i]
		if s.Status != booking.StatusApproved {
			continue
		}
		if earliest == nil || s.End.Before(earliest.End) {
			earliest = &s
		}
	}

	if earliest == nil {
		return ErrItemNotBooked
	}
	if !earliest.End.Before(now) {
		return ErrBookingNotCompleted
	}
	return nil
}
