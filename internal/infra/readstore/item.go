package readstore

import (
	"context"

	"shareit/internal/domain/booking"
	"shareit/internal/infra"
	"shareit/internal/infra/converter"
	"shareit/internal/infra/query"
	"shareit/internal/pkg/pgconv"
	"shareit/internal/usecase/queries"

	"github.com/google/uuid"
)

type ItemViewQueries interface {
	GetItemByID(ctx context.Context, db query.DBTX, id uuid.UUID) (query.Items, error)
	ListItemsByOwner(ctx context.Context, db query.DBTX, arg query.ListItemsByOwnerParams) ([]query.Items, error)
	SearchAvailableItems(ctx context.Context, db query.DBTX, arg query.SearchAvailableItemsParams) ([]query.Items, error)
	ListSlotsByItemIDs(ctx context.Context, db query.DBTX, itemIds []uuid.UUID) ([]query.BookingSlotRow, error)
	ListCommentViewsByItemIDs(ctx context.Context, db query.DBTX, itemIds []uuid.UUID) ([]query.CommentViewRow, error)
}

type ItemReadStore struct {
	queries ItemViewQueries
	db      query.DBTX
}

func NewItemReadStore(queries ItemViewQueries, db query.DBTX) *ItemReadStore {
	return &ItemReadStore{
		queries: queries,
		db:      db,
	}
}

// FindByID returns the bare item; projection and comments are attached by
// the caller.
func (r *ItemReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ItemView, error) {
	row, err := r.queries.GetItemByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("item not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get item by id", err)
	}
	return toItemView(row), nil
}

func (r *ItemReadStore) ListByOwner(ctx context.Context, ownerID uuid.UUID, limit, offset int32) ([]*queries.ItemView, error) {
	rows, err := r.queries.ListItemsByOwner(ctx, r.db, query.ListItemsByOwnerParams{
		OwnerID: ownerID,
		Limit:   limit,
		Offset:  offset,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list items by owner", err)
	}
	return toItemViews(rows), nil
}

func (r *ItemReadStore) Search(ctx context.Context, text string, limit, offset int32) ([]*queries.ItemView, error) {
	rows, err := r.queries.SearchAvailableItems(ctx, r.db, query.SearchAvailableItemsParams{
		Text:   text,
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to search items", err)
	}
	return toItemViews(rows), nil
}

func (r *ItemReadStore) SlotsByItems(ctx context.Context, itemIDs []uuid.UUID) (map[uuid.UUID][]booking.Slot, error) {
	result := make(map[uuid.UUID][]booking.Slot, len(itemIDs))
	if len(itemIDs) == 0 {
		return result, nil
	}
	rows, err := r.queries.ListSlotsByItemIDs(ctx, r.db, itemIDs)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list booking slots", err)
	}
	for _, row := range rows {
		s, err := converter.SlotFromRow(row)
		if err != nil {
			return nil, infra.WrapRepoErr("invalid stored booking status", err)
		}
		result[row.ItemID] = append(result[row.ItemID], s)
	}
	return result, nil
}

func (r *ItemReadStore) CommentsByItems(ctx context.Context, itemIDs []uuid.UUID) (map[uuid.UUID][]queries.CommentView, error) {
	result := make(map[uuid.UUID][]queries.CommentView, len(itemIDs))
	if len(itemIDs) == 0 {
		return result, nil
	}
	rows, err := r.queries.ListCommentViewsByItemIDs(ctx, r.db, itemIDs)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list comments", err)
	}
	for _, row := range rows {
		result[row.ItemID] = append(result[row.ItemID], toCommentView(row))
	}
	return result, nil
}

func toItemView(row query.Items) *queries.ItemView {
	return &queries.ItemView{
		ID:          row.ID,
		OwnerID:     row.OwnerID,
		Name:        row.Name,
		Description: row.Description,
		Available:   row.Available,
		RequestID:   pgconv.UUIDPtrFromPgtype(row.RequestID),
		Comments:    []queries.CommentView{},
		CreatedAt:   pgconv.TimeFromPgtype(row.CreatedAt),
	}
}

func toItemViews(rows []query.Items) []*queries.ItemView {
	result := make([]*queries.ItemView, len(rows))
	for i, row := range rows {
		result[i] = toItemView(row)
	}
	return result
}
