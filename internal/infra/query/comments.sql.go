package query

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const createComment = `-- name: CreateComment :one
INSERT INTO comments (id, item_id, author_id, text, created_at)
VALUES ($1, $2, $3, $4, $5)
RETURNING id, item_id, author_id, text, created_at
`

type CreateCommentParams struct {
	ID        uuid.UUID          `json:"id"`
	ItemID    uuid.UUID          `json:"item_id"`
	AuthorID  uuid.UUID          `json:"author_id"`
	Text      string             `json:"text"`
	CreatedAt pgtype.Timestamptz `json:"created_at"`
}

func (q *Queries) CreateComment(ctx context.Context, db DBTX, arg CreateCommentParams) (Comments, error) {
	row := db.QueryRow(ctx, createComment,
		arg.ID,
		arg.ItemID,
		arg.AuthorID,
		arg.Text,
		arg.CreatedAt,
	)
	var i Comments
	err := row.Scan(
		&i.ID,
		&i.ItemID,
		&i.AuthorID,
		&i.Text,
		&i.CreatedAt,
	)
	return i, err
}

type CommentViewRow struct {
	ID         uuid.UUID          `json:"id"`
	ItemID     uuid.UUID          `json:"item_id"`
	Text       string             `json:"text"`
	AuthorName string             `json:"author_name"`
	CreatedAt  pgtype.Timestamptz `json:"created_at"`
}

const getCommentViewByID = `-- name: GetCommentViewByID :one
SELECT c.id, c.item_id, c.text, u.name AS author_name, c.created_at
FROM comments c
JOIN users u ON u.id = c.author_id
WHERE c.id = $1
`

func (q *Queries) GetCommentViewByID(ctx context.Context, db DBTX, id uuid.UUID) (CommentViewRow, error) {
	row := db.QueryRow(ctx, getCommentViewByID, id)
	var i CommentViewRow
	err := row.Scan(
		&i.ID,
		&i.ItemID,
		&i.Text,
		&i.AuthorName,
		&i.CreatedAt,
	)
	return i, err
}

const listCommentViewsByItemIDs = `-- name: ListCommentViewsByItemIDs :many
SELECT c.id, c.item_id, c.text, u.name AS author_name, c.created_at
FROM comments c
JOIN users u ON u.id = c.author_id
WHERE c.item_id = ANY($1::uuid[])
ORDER BY c.created_at DESC, c.id
`

func (q *Queries) ListCommentViewsByItemIDs(ctx context.Context, db DBTX, itemIds []uuid.UUID) ([]CommentViewRow, error) {
	rows, err := db.Query(ctx, listCommentViewsByItemIDs, itemIds)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []CommentViewRow{}
	for rows.Next() {
		var i CommentViewRow
		if err := rows.Scan(
			&i.ID,
			&i.ItemID,
			&i.Text,
			&i.AuthorName,
			&i.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
