package response

import (
	"time"

	"shareit/internal/usecase/queries"

	"github.com/google/uuid"
)

type CommentResponse struct {
	ID         uuid.UUID `json:"id"`
	Text       string    `json:"text"`
	AuthorName string    `json:"authorName"`
	Created    time.Time `json:"created" copier:"CreatedAt"`
}

func FromCommentView(v *queries.CommentView) (*CommentResponse, error) {
	return copyView[CommentResponse](v)
}

type ItemResponse struct {
	ID          uuid.UUID            `json:"id"`
	Name        string               `json:"name"`
	Description string               `json:"description"`
	Available   bool                 `json:"available"`
	RequestID   *uuid.UUID           `json:"requestId,omitempty"`
	LastBooking *BookingSlotResponse `json:"lastBooking,omitempty"`
	NextBooking *BookingSlotResponse `json:"nextBooking,omitempty"`
	Comments    []*CommentResponse   `json:"comments"`
}

func FromItemView(v *queries.ItemView) (*ItemResponse, error) {
	comments := make([]*CommentResponse, len(v.Comments))
	for i := range v.Comments {
		cm, err := FromCommentView(&v.Comments[i])
		if err != nil {
			return nil, err
		}
		comments[i] = cm
	}
	return &ItemResponse{
		ID:          v.ID,
		Name:        v.Name,
		Description: v.Description,
		Available:   v.Available,
		RequestID:   v.RequestID,
		LastBooking: fromSlotView(v.LastBooking),
		NextBooking: fromSlotView(v.NextBooking),
		Comments:    comments,
	}, nil
}

func FromItemViews(vs []*queries.ItemView) ([]*ItemResponse, error) {
	return mapAll(vs, FromItemView)
}
