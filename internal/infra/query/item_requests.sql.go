package query

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const createItemRequest = `-- name: CreateItemRequest :one
INSERT INTO item_requests (id, requestor_id, description, created_at)
VALUES ($1, $2, $3, $4)
RETURNING id, requestor_id, description, created_at
`

type CreateItemRequestParams struct {
	ID          uuid.UUID          `json:"id"`
	RequestorID uuid.UUID          `json:"requestor_id"`
	Description string             `json:"description"`
	CreatedAt   pgtype.Timestamptz `json:"created_at"`
}

func (q *Queries) CreateItemRequest(ctx context.Context, db DBTX, arg CreateItemRequestParams) (ItemRequests, error) {
	row := db.QueryRow(ctx, createItemRequest,
		arg.ID,
		arg.RequestorID,
		arg.Description,
		arg.CreatedAt,
	)
	return scanItemRequest(row)
}

const getItemRequestByID = `-- name: GetItemRequestByID :one
SELECT id, requestor_id, description, created_at
FROM item_requests
WHERE id = $1
`

func (q *Queries) GetItemRequestByID(ctx context.Context, db DBTX, id uuid.UUID) (ItemRequests, error) {
	return scanItemRequest(db.QueryRow(ctx, getItemRequestByID, id))
}

const listItemRequestsByRequestor = `-- name: ListItemRequestsByRequestor :many
SELECT id, requestor_id, description, created_at
FROM item_requests
WHERE requestor_id = $1
ORDER BY created_at DESC, id
`

func (q *Queries) ListItemRequestsByRequestor(ctx context.Context, db DBTX, requestorID uuid.UUID) ([]ItemRequests, error) {
	rows, err := db.Query(ctx, listItemRequestsByRequestor, requestorID)
	if err != nil {
		return nil, err
	}
	return collectItemRequests(rows)
}

const listItemRequestsExcluding = `-- name: ListItemRequestsExcluding :many
SELECT id, requestor_id, description, created_at
FROM item_requests
WHERE requestor_id <> $1
ORDER BY created_at DESC, id
LIMIT $2 OFFSET $3
`

type ListItemRequestsExcludingParams struct {
	RequestorID uuid.UUID `json:"requestor_id"`
	Limit       int32     `json:"limit"`
	Offset      int32     `json:"offset"`
}

func (q *Queries) ListItemRequestsExcluding(ctx context.Context, db DBTX, arg ListItemRequestsExcludingParams) ([]ItemRequests, error) {
	rows, err := db.Query(ctx, listItemRequestsExcluding, arg.RequestorID, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	return collectItemRequests(rows)
}

func scanItemRequest(row rowScanner) (ItemRequests, error) {
	var i ItemRequests
	err := row.Scan(
		&i.ID,
		&i.RequestorID,
		&i.Description,
		&i.CreatedAt,
	)
	return i, err
}

func collectItemRequests(rows pgx.Rows) ([]ItemRequests, error) {
	defer rows.Close()
	items := []ItemRequests{}
	for rows.Next() {
		i, err := scanItemRequest(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
