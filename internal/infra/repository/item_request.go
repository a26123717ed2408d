package repository

import (
	"context"

	"shareit/internal/domain/request"
	"shareit/internal/infra"
	"shareit/internal/infra/converter"
	"shareit/internal/infra/query"
)

type ItemRequestWriteQueries interface {
	CreateItemRequest(ctx context.Context, db query.DBTX, arg query.CreateItemRequestParams) (query.ItemRequests, error)
}

type ItemRequestRepository struct {
	queries ItemRequestWriteQueries
	db      query.DBTX
}

func NewItemRequestRepository(queries ItemRequestWriteQueries, db query.DBTX) *ItemRequestRepository {
	return &ItemRequestRepository{
		queries: queries,
		db:      db,
	}
}

func (r *ItemRequestRepository) Create(ctx context.Context, req *request.ItemRequest) error {
	if _, err := r.queries.CreateItemRequest(ctx, r.db, converter.ItemRequestToCreateParams(req)); err != nil {
		return infra.WrapRepoErr("failed to create item request", err)
	}
	return nil
}
