package queries

import (
	"context"

	"shareit/internal/domain/request"
	"shareit/internal/infra"

	"github.com/google/uuid"
)

type ItemRequestReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ItemRequestView, error)
	ListByRequestor(ctx context.Context, requestorID uuid.UUID) ([]*ItemRequestView, error)
	ListExcluding(ctx context.Context, requestorID uuid.UUID, limit, offset int32) ([]*ItemRequestView, error)
}

type ItemRequestQueries interface {
	GetByID(ctx context.Context, callerID, id uuid.UUID) (*ItemRequestView, error)
	ListOwn(ctx context.Context, callerID uuid.UUID) ([]*ItemRequestView, error)
	ListOthers(ctx context.Context, callerID uuid.UUID, from, size int) ([]*ItemRequestView, error)
}

type itemRequestQueriesImpl struct {
	requests ItemRequestReadStore
	users    UserReadStore
}

func NewItemRequestQueries(requests ItemRequestReadStore, users UserReadStore) ItemRequestQueries {
	return &itemRequestQueriesImpl{
		requests: requests,
		users:    users,
	}
}

func (q *itemRequestQueriesImpl) GetByID(ctx context.Context, callerID, id uuid.UUID) (*ItemRequestView, error) {
	if err := requireUser(ctx, q.users, callerID); err != nil {
		return nil, err
	}
	v, err := q.requests.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, request.ErrNotFound
		}
		return nil, err
	}
	return v, nil
}

func (q *itemRequestQueriesImpl) ListOwn(ctx context.Context, callerID uuid.UUID) ([]*ItemRequestView, error) {
	if err := requireUser(ctx, q.users, callerID); err != nil {
		return nil, err
	}
	return q.requests.ListByRequestor(ctx, callerID)
}

func (q *itemRequestQueriesImpl) ListOthers(ctx context.Context, callerID uuid.UUID, from, size int) ([]*ItemRequestView, error) {
	page, err := NewPage(from, size)
	if err != nil {
		return nil, err
	}
	if err := requireUser(ctx, q.users, callerID); err != nil {
		return nil, err
	}
	return q.requests.ListExcluding(ctx, callerID, page.Limit(), page.Offset())
}
