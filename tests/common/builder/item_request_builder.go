//go:build unit || e2e

package builder

import (
	"time"

	"shareit/internal/handler/dto/request"
	"shareit/internal/infra/query"
	"shareit/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ItemRequestBuilder struct {
	ID          uuid.UUID
	RequestorID uuid.UUID
	Description string
	CreatedAt   time.Time
}

func NewItemRequestBuilder() *ItemRequestBuilder {
	return &ItemRequestBuilder{
		ID:          uuid.New(),
		RequestorID: uuid.New(),
		Description: "Need a ladder for the weekend",
		CreatedAt:   time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (b *ItemRequestBuilder) With(mutate func(*ItemRequestBuilder)) *ItemRequestBuilder {
	mutate(b)
	return b
}

func (b *ItemRequestBuilder) BuildInfra() query.ItemRequests {
	return query.ItemRequests{
		ID:          b.ID,
		RequestorID: b.RequestorID,
		Description: b.Description,
		CreatedAt:   pgtype.Timestamptz{Time: b.CreatedAt, Valid: true},
	}
}

func (b *ItemRequestBuilder) BuildView() *queries.ItemRequestView {
	return &queries.ItemRequestView{
		ID:          b.ID,
		RequestorID: b.RequestorID,
		Description: b.Description,
		CreatedAt:   b.CreatedAt,
		Items:       []*queries.ItemView{},
	}
}

func (b *ItemRequestBuilder) BuildRequestDTO() request.CreateItemRequestRequest {
	return request.CreateItemRequestRequest{Description: b.Description}
}
