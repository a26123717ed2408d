package item

import (
	"time"

	"shareit/internal/domain/booking"

	"github.com/google/uuid"
)

// Availability is the owner-only summary of an item's surrounding bookings.
type Availability struct {
	Last *booking.Slot
	Next *booking.Slot
}

// ProjectAvailability computes the last and next booking of an item as seen
// by viewerID at now. Non-owners always get an empty projection.
//
// Last is the booking with the greatest end among those that started before
// now, whatever its status. Next is the approved booking with the smallest
// start among those starting after now.
func ProjectAvailability(ownerID, viewerID uuid.UUID, slots []booking.Slot, now time.Time) Availability {
	if viewerID != ownerID {
		return Availability{}
	}

	var last, next *booking.Slot
	for i := range slots {
		s := slots[i]
		if s.Start.Before(now) && (last == nil || s.End.After(last.End)) {
			last = &s
		}
		if s.Start.After(now) && s.Status == booking.StatusApproved && (next == nil || s.Start.Before(next.Start)) {
			next = &s
		}
	}
	return Availability{Last: last, Next: next}
}
