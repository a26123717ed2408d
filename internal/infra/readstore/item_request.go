package readstore

import (
	"context"

	"shareit/internal/infra"
	"shareit/internal/infra/query"
	"shareit/internal/pkg/pgconv"
	"shareit/internal/usecase/queries"

	"github.com/google/uuid"
)

type ItemRequestViewQueries interface {
	GetItemRequestByID(ctx context.Context, db query.DBTX, id uuid.UUID) (query.ItemRequests, error)
	ListItemRequestsByRequestor(ctx context.Context, db query.DBTX, requestorID uuid.UUID) ([]query.ItemRequests, error)
	ListItemRequestsExcluding(ctx context.Context, db query.DBTX, arg query.ListItemRequestsExcludingParams) ([]query.ItemRequests, error)
	ListItemsByRequestIDs(ctx context.Context, db query.DBTX, requestIds []uuid.UUID) ([]query.Items, error)
}

type ItemRequestReadStore struct {
	queries ItemRequestViewQueries
	db      query.DBTX
}

func NewItemRequestReadStore(queries ItemRequestViewQueries, db query.DBTX) *ItemRequestReadStore {
	return &ItemRequestReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ItemRequestReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ItemRequestView, error) {
	row, err := r.queries.GetItemRequestByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("item request not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get item request by id", err)
	}
	views, err := r.withItems(ctx, []query.ItemRequests{row})
	if err != nil {
		return nil, err
	}
	return views[0], nil
}

func (r *ItemRequestReadStore) ListByRequestor(ctx context.Context, requestorID uuid.UUID) ([]*queries.ItemRequestView, error) {
	rows, err := r.queries.ListItemRequestsByRequestor(ctx, r.db, requestorID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list own item requests", err)
	}
	return r.withItems(ctx, rows)
}

func (r *ItemRequestReadStore) ListExcluding(ctx context.Context, requestorID uuid.UUID, limit, offset int32) ([]*queries.ItemRequestView, error) {
	rows, err := r.queries.ListItemRequestsExcluding(ctx, r.db, query.ListItemRequestsExcludingParams{
		RequestorID: requestorID,
		Limit:       limit,
		Offset:      offset,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list item requests", err)
	}
	return r.withItems(ctx, rows)
}

// withItems attaches the items offered in answer to each request.
func (r *ItemRequestReadStore) withItems(ctx context.Context, rows []query.ItemRequests) ([]*queries.ItemRequestView, error) {
	result := make([]*queries.ItemRequestView, len(rows))
	if len(rows) == 0 {
		return result, nil
	}

	ids := make([]uuid.UUID, len(rows))
	for i, row := range rows {
		ids[i] = row.ID
	}
	items, err := r.queries.ListItemsByRequestIDs(ctx, r.db, ids)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list items for requests", err)
	}
	byRequest := make(map[uuid.UUID][]*queries.ItemView, len(rows))
	for _, it := range items {
		if !it.RequestID.Valid {
			continue
		}
		reqID := uuid.UUID(it.RequestID.Bytes)
		byRequest[reqID] = append(byRequest[reqID], toItemView(it))
	}

	for i, row := range rows {
		answers := byRequest[row.ID]
		if answers == nil {
			answers = []*queries.ItemView{}
		}
		result[i] = &queries.ItemRequestView{
			ID:          row.ID,
			RequestorID: row.RequestorID,
			Description: row.Description,
			CreatedAt:   pgconv.TimeFromPgtype(row.CreatedAt),
			Items:       answers,
		}
	}
	return result, nil
}
