//go:build unit || e2e

package builder

import (
	"time"

	"shareit/internal/domain/item"
	"shareit/internal/handler/dto/request"
	"shareit/internal/infra/query"
	"shareit/internal/pkg/pgconv"
	"shareit/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ItemBuilder struct {
	ID          uuid.UUID
	OwnerID     uuid.UUID
	Name        string
	Description string
	Available   *bool
	RequestID   *uuid.UUID
	Now         time.Time
}

func NewItemBuilder() *ItemBuilder {
	available := true
	return &ItemBuilder{
		ID:          uuid.New(),
		OwnerID:     uuid.New(),
		Name:        "Drill",
		Description: "Cordless drill with two batteries",
		Available:   &available,
		Now:         time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (b *ItemBuilder) With(mutate func(*ItemBuilder)) *ItemBuilder {
	mutate(b)
	return b
}

func (b *ItemBuilder) BuildDomain() (*item.Item, error) {
	return item.NewItem(b.OwnerID, b.Name, b.Description, b.Available, b.RequestID, b.Now)
}

func (b *ItemBuilder) BuildStored() *item.Item {
	return item.ReconstructItem(b.ID, b.OwnerID, b.Name, b.Description, b.available(), b.RequestID, b.Now, b.Now)
}

func (b *ItemBuilder) BuildInfra() query.Items {
	return query.Items{
		ID:          b.ID,
		OwnerID:     b.OwnerID,
		Name:        b.Name,
		Description: b.Description,
		Available:   b.available(),
		RequestID:   pgconv.UUIDPtrToPgtype(b.RequestID),
		CreatedAt:   pgtype.Timestamptz{Time: b.Now, Valid: true},
		UpdatedAt:   pgtype.Timestamptz{Time: b.Now, Valid: true},
	}
}

func (b *ItemBuilder) BuildView() *queries.ItemView {
	return &queries.ItemView{
		ID:          b.ID,
		OwnerID:     b.OwnerID,
		Name:        b.Name,
		Description: b.Description,
		Available:   b.available(),
		RequestID:   b.RequestID,
		Comments:    []queries.CommentView{},
		CreatedAt:   b.Now,
	}
}

func (b *ItemBuilder) BuildRequestDTO() request.CreateItemRequest {
	return request.CreateItemRequest{
		Name:        b.Name,
		Description: b.Description,
		Available:   b.Available,
		RequestID:   b.RequestID,
	}
}

func (b *ItemBuilder) WithAvailable(available bool) *ItemBuilder {
	b.Available = &available
	return b
}

func (b *ItemBuilder) WithOwner(ownerID uuid.UUID) *ItemBuilder {
	b.OwnerID = ownerID
	return b
}

func (b *ItemBuilder) available() bool {
	return b.Available != nil && *b.Available
}
