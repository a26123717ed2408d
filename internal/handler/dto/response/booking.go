package response

import (
	"time"

	"shareit/internal/usecase/queries"

	"github.com/google/uuid"
)

type RefResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type BookingResponse struct {
	ID     uuid.UUID   `json:"id"`
	Start  time.Time   `json:"start"`
	End    time.Time   `json:"end"`
	Status string      `json:"status"`
	Item   RefResponse `json:"item"`
	Booker RefResponse `json:"booker"`
}

func FromBookingView(v *queries.BookingView) *BookingResponse {
	return &BookingResponse{
		ID:     v.ID,
		Start:  v.Start,
		End:    v.End,
		Status: v.Status,
		Item:   RefResponse{ID: v.Item.ID, Name: v.Item.Name},
		Booker: RefResponse{ID: v.Booker.ID, Name: v.Booker.Name},
	}
}

func FromBookingViews(vs []*queries.BookingView) []*BookingResponse {
	res := make([]*BookingResponse, len(vs))
	for i, v := range vs {
		res[i] = FromBookingView(v)
	}
	return res
}

type BookingSlotResponse struct {
	ID       uuid.UUID `json:"id"`
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
	BookerID uuid.UUID `json:"bookerId"`
}

func fromSlotView(v *queries.BookingSlotView) *BookingSlotResponse {
	if v == nil {
		return nil
	}
	return &BookingSlotResponse{ID: v.ID, Start: v.Start, End: v.End, BookerID: v.BookerID}
}
