package readstore

import (
	"context"

	"shareit/internal/infra"
	"shareit/internal/infra/query"
	"shareit/internal/pkg/pgconv"
	"shareit/internal/usecase/queries"

	"github.com/google/uuid"
)

type CommentViewQueries interface {
	GetCommentViewByID(ctx context.Context, db query.DBTX, id uuid.UUID) (query.CommentViewRow, error)
}

type CommentReadStore struct {
	queries CommentViewQueries
	db      query.DBTX
}

func NewCommentReadStore(queries CommentViewQueries, db query.DBTX) *CommentReadStore {
	return &CommentReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *CommentReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.CommentView, error) {
	row, err := r.queries.GetCommentViewByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("comment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get comment view by id", err)
	}
	v := toCommentView(row)
	return &v, nil
}

func toCommentView(row query.CommentViewRow) queries.CommentView {
	return queries.CommentView{
		ID:         row.ID,
		ItemID:     row.ItemID,
		Text:       row.Text,
		AuthorName: row.AuthorName,
		CreatedAt:  pgconv.TimeFromPgtype(row.CreatedAt),
	}
}
