package queries

import (
	"context"

	"shareit/internal/infra"
	"shareit/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrCommentNotFound = errs.NotFound("comment not found")

type CommentReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*CommentView, error)
}

type CommentQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*CommentView, error)
}

type commentQueriesImpl struct {
	comments CommentReadStore
}

func NewCommentQueries(comments CommentReadStore) CommentQueries {
	return &commentQueriesImpl{comments: comments}
}

func (q *commentQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*CommentView, error) {
	v, err := q.comments.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCommentNotFound
		}
		return nil, err
	}
	return v, nil
}
