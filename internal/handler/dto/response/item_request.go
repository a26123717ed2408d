package response

import (
	"time"

	"shareit/internal/usecase/queries"

	"github.com/google/uuid"
)

// AnswerResponse is an item offered in reply to a request.
type AnswerResponse struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Available   bool       `json:"available"`
	RequestID   *uuid.UUID `json:"requestId"`
	OwnerID     uuid.UUID  `json:"ownerId"`
}

type ItemRequestResponse struct {
	ID          uuid.UUID         `json:"id"`
	Description string            `json:"description"`
	Created     time.Time         `json:"created" copier:"CreatedAt"`
	Items       []*AnswerResponse `json:"items" copier:"-"`
}

func FromItemRequestView(v *queries.ItemRequestView) (*ItemRequestResponse, error) {
	res, err := copyView[ItemRequestResponse](v)
	if err != nil {
		return nil, err
	}
	res.Items = make([]*AnswerResponse, len(v.Items))
	for i, it := range v.Items {
		res.Items[i] = &AnswerResponse{
			ID:          it.ID,
			Name:        it.Name,
			Description: it.Description,
			Available:   it.Available,
			RequestID:   it.RequestID,
			OwnerID:     it.OwnerID,
		}
	}
	return res, nil
}

func FromItemRequestViews(vs []*queries.ItemRequestView) ([]*ItemRequestResponse, error) {
	return mapAll(vs, FromItemRequestView)
}
