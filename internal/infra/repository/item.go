package repository

import (
	"context"

	"shareit/internal/domain/item"
	"shareit/internal/infra"
	"shareit/internal/infra/converter"
	"shareit/internal/infra/query"
	"shareit/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type ItemWriteQueries interface {
	CreateItem(ctx context.Context, db query.DBTX, arg query.CreateItemParams) (query.Items, error)
	GetItemByID(ctx context.Context, db query.DBTX, id uuid.UUID) (query.Items, error)
	GetItemByIDForShare(ctx context.Context, db query.DBTX, id uuid.UUID) (query.Items, error)
	UpdateItem(ctx context.Context, db query.DBTX, arg query.UpdateItemParams) (query.Items, error)
}

type ItemRepository struct {
	queries ItemWriteQueries
	db      query.DBTX
}

func NewItemRepository(queries ItemWriteQueries, db query.DBTX) *ItemRepository {
	return &ItemRepository{
		queries: queries,
		db:      db,
	}
}

func (r *ItemRepository) Create(ctx context.Context, it *item.Item) error {
	if _, err := r.queries.CreateItem(ctx, r.db, converter.ItemToCreateParams(it)); err != nil {
		return infra.WrapRepoErr("failed to create item", err)
	}
	return nil
}

func (r *ItemRepository) FindByID(ctx context.Context, id uuid.UUID) (*item.Item, error) {
	row, err := r.queries.GetItemByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("item not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find item by id", err)
	}
	return converter.ItemFromRow(row), nil
}

// FindByIDForShare holds a share lock on the item row, so availability
// cannot change until the transaction behind r.db finishes.
func (r *ItemRepository) FindByIDForShare(ctx context.Context, id uuid.UUID) (*item.Item, error) {
	row, err := r.queries.GetItemByIDForShare(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("item not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock item", err)
	}
	return converter.ItemFromRow(row), nil
}

func (r *ItemRepository) Update(ctx context.Context, it *item.Item) error {
	params := query.UpdateItemParams{
		ID:          it.ID(),
		Name:        it.Name(),
		Description: it.Description(),
		Available:   it.Available(),
		UpdatedAt:   pgconv.TimeToPgtype(it.UpdatedAt()),
	}
	if _, err := r.queries.UpdateItem(ctx, r.db, params); err != nil {
		return infra.WrapRepoErr("failed to update item", err)
	}
	return nil
}
