package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type UserView struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

type RefView struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type BookingView struct {
	ID      uuid.UUID `json:"id"`
	Start   time.Time `json:"start"`
	End     time.Time `json:"end"`
	Status  string    `json:"status"`
	Item    RefView   `json:"item"`
	Booker  RefView   `json:"booker"`
	OwnerID uuid.UUID `json:"owner_id"`
}

type BookingSlotView struct {
	ID       uuid.UUID `json:"id"`
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
	BookerID uuid.UUID `json:"booker_id"`
}

type CommentView struct {
	ID         uuid.UUID `json:"id"`
	ItemID     uuid.UUID `json:"item_id"`
	Text       string    `json:"text"`
	AuthorName string    `json:"author_name"`
	CreatedAt  time.Time `json:"created_at"`
}

type ItemView struct {
	ID          uuid.UUID        `json:"id"`
	OwnerID     uuid.UUID        `json:"owner_id"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Available   bool             `json:"available"`
	RequestID   *uuid.UUID       `json:"request_id,omitempty"`
	LastBooking *BookingSlotView `json:"last_booking,omitempty"`
	NextBooking *BookingSlotView `json:"next_booking,omitempty"`
	Comments    []CommentView    `json:"comments"`
	CreatedAt   time.Time        `json:"created_at"`
}

type ItemRequestView struct {
	ID          uuid.UUID   `json:"id"`
	RequestorID uuid.UUID   `json:"requestor_id"`
	Description string      `json:"description"`
	CreatedAt   time.Time   `json:"created_at"`
	Items       []*ItemView `json:"items"`
}
