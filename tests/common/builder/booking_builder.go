//go:build unit || e2e

package builder

import (
	"time"

	"shareit/internal/domain/booking"
	"shareit/internal/handler/dto/request"
	"shareit/internal/infra/query"
	"shareit/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// BookingBuilder defaults to a WAITING booking one to two hours after Now.
type BookingBuilder struct {
	ID         uuid.UUID
	ItemID     uuid.UUID
	ItemName   string
	OwnerID    uuid.UUID
	BookerID   uuid.UUID
	BookerName string
	Start      time.Time
	End        time.Time
	Status     booking.Status
	Available  bool
	Now        time.Time
}

func NewBookingBuilder() *BookingBuilder {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	return &BookingBuilder{
		ID:         uuid.New(),
		ItemID:     uuid.New(),
		ItemName:   "Drill",
		OwnerID:    uuid.New(),
		BookerID:   uuid.New(),
		BookerName: "Bob",
		Start:      now.Add(time.Hour),
		End:        now.Add(2 * time.Hour),
		Status:     booking.StatusWaiting,
		Available:  true,
		Now:        now,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) ItemSpec() booking.ItemSpec {
	return booking.ItemSpec{ID: b.ItemID, OwnerID: b.OwnerID, Available: b.Available}
}

func (b *BookingBuilder) BuildDomain() (*booking.Booking, error) {
	return booking.NewBooking(b.ItemSpec(), b.BookerID, b.Start, b.End, b.Now)
}

func (b *BookingBuilder) BuildStored() *booking.Booking {
	return booking.ReconstructBooking(b.ID, b.ItemID, b.BookerID,
		booking.ReconstructTimeWindow(b.Start, b.End), b.Status, b.Now, b.Now)
}

func (b *BookingBuilder) BuildSlot() booking.Slot {
	return booking.Slot{ID: b.ID, BookerID: b.BookerID, Start: b.Start, End: b.End, Status: b.Status}
}

func (b *BookingBuilder) BuildInfra() query.Bookings {
	return query.Bookings{
		ID:        b.ID,
		ItemID:    b.ItemID,
		BookerID:  b.BookerID,
		StartAt:   pgtype.Timestamptz{Time: b.Start, Valid: true},
		EndAt:     pgtype.Timestamptz{Time: b.End, Valid: true},
		Status:    string(b.Status),
		CreatedAt: pgtype.Timestamptz{Time: b.Now, Valid: true},
		UpdatedAt: pgtype.Timestamptz{Time: b.Now, Valid: true},
	}
}

func (b *BookingBuilder) BuildViewRow() query.BookingViewRow {
	return query.BookingViewRow{
		ID:         b.ID,
		StartAt:    pgtype.Timestamptz{Time: b.Start, Valid: true},
		EndAt:      pgtype.Timestamptz{Time: b.End, Valid: true},
		Status:     string(b.Status),
		ItemID:     b.ItemID,
		ItemName:   b.ItemName,
		OwnerID:    b.OwnerID,
		BookerID:   b.BookerID,
		BookerName: b.BookerName,
	}
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	return &queries.BookingView{
		ID:      b.ID,
		Start:   b.Start,
		End:     b.End,
		Status:  string(b.Status),
		Item:    queries.RefView{ID: b.ItemID, Name: b.ItemName},
		Booker:  queries.RefView{ID: b.BookerID, Name: b.BookerName},
		OwnerID: b.OwnerID,
	}
}

func (b *BookingBuilder) BuildRequestDTO() request.CreateBookingRequest {
	return request.CreateBookingRequest{ItemID: b.ItemID, Start: b.Start, End: b.End}
}

// Window shifts the booking to [Now+from, Now+to).
func (b *BookingBuilder) Window(from, to time.Duration) *BookingBuilder {
	b.Start = b.Now.Add(from)
	b.End = b.Now.Add(to)
	return b
}

func (b *BookingBuilder) WithStatus(s booking.Status) *BookingBuilder {
	b.Status = s
	return b
}
