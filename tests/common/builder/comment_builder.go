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

type CommentBuilder struct {
	ID         uuid.UUID
	ItemID     uuid.UUID
	AuthorName string
	Text       string
	CreatedAt  time.Time
}

func NewCommentBuilder() *CommentBuilder {
	return &CommentBuilder{
		ID:         uuid.New(),
		ItemID:     uuid.New(),
		AuthorName: "Bob",
		Text:       "Worked great",
		CreatedAt:  time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (b *CommentBuilder) With(mutate func(*CommentBuilder)) *CommentBuilder {
	mutate(b)
	return b
}

func (b *CommentBuilder) BuildViewRow() query.CommentViewRow {
	return query.CommentViewRow{
		ID:         b.ID,
		ItemID:     b.ItemID,
		Text:       b.Text,
		AuthorName: b.AuthorName,
		CreatedAt:  pgtype.Timestamptz{Time: b.CreatedAt, Valid: true},
	}
}

func (b *CommentBuilder) BuildView() *queries.CommentView {
	return &queries.CommentView{
		ID:         b.ID,
		ItemID:     b.ItemID,
		Text:       b.Text,
		AuthorName: b.AuthorName,
		CreatedAt:  b.CreatedAt,
	}
}

func (b *CommentBuilder) BuildRequestDTO() request.CreateCommentRequest {
	return request.CreateCommentRequest{Text: b.Text}
}
