package repository

import (
	"context"

	"shareit/internal/domain/comment"
	"shareit/internal/infra"
	"shareit/internal/infra/converter"
	"shareit/internal/infra/query"
)

type CommentWriteQueries interface {
	CreateComment(ctx context.Context, db query.DBTX, arg query.CreateCommentParams) (query.Comments, error)
}

type CommentRepository struct {
	queries CommentWriteQueries
	db      query.DBTX
}

func NewCommentRepository(queries CommentWriteQueries, db query.DBTX) *CommentRepository {
	return &CommentRepository{
		queries: queries,
		db:      db,
	}
}

func (r *CommentRepository) Create(ctx context.Context, c *comment.Comment) error {
	if _, err := r.queries.CreateComment(ctx, r.db, converter.CommentToCreateParams(c)); err != nil {
		return infra.WrapRepoErr("failed to create comment", err)
	}
	return nil
}
