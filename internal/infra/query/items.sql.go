package query

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const itemColumns = `id, owner_id, name, description, available, request_id, created_at, updated_at`

const createItem = `-- name: CreateItem :one
INSERT INTO items (id, owner_id, name, description, available, request_id, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING ` + itemColumns

type CreateItemParams struct {
	ID          uuid.UUID          `json:"id"`
	OwnerID     uuid.UUID          `json:"owner_id"`
	Name        string             `json:"name"`
	Description string             `json:"description"`
	Available   bool               `json:"available"`
	RequestID   pgtype.UUID        `json:"request_id"`
	CreatedAt   pgtype.Timestamptz `json:"created_at"`
	UpdatedAt   pgtype.Timestamptz `json:"updated_at"`
}

func (q *Queries) CreateItem(ctx context.Context, db DBTX, arg CreateItemParams) (Items, error) {
	row := db.QueryRow(ctx, createItem,
		arg.ID,
		arg.OwnerID,
		arg.Name,
		arg.Description,
		arg.Available,
		arg.RequestID,
		arg.CreatedAt,
		arg.UpdatedAt,
	)
	return scanItem(row)
}

const getItemByID = `-- name: GetItemByID :one
SELECT ` + itemColumns + `
FROM items
WHERE id = $1
`

func (q *Queries) GetItemByID(ctx context.Context, db DBTX, id uuid.UUID) (Items, error) {
	return scanItem(db.QueryRow(ctx, getItemByID, id))
}

const getItemByIDForShare = `-- name: GetItemByIDForShare :one
SELECT ` + itemColumns + `
FROM items
WHERE id = $1
FOR SHARE
`

// GetItemByIDForShare blocks concurrent updates of the row until the
// surrounding transaction ends.
func (q *Queries) GetItemByIDForShare(ctx context.Context, db DBTX, id uuid.UUID) (Items, error) {
	return scanItem(db.QueryRow(ctx, getItemByIDForShare, id))
}

const updateItem = `-- name: UpdateItem :one
UPDATE items
SET name = $2, description = $3, available = $4, updated_at = $5
WHERE id = $1
RETURNING ` + itemColumns

type UpdateItemParams struct {
	ID          uuid.UUID          `json:"id"`
	Name        string             `json:"name"`
	Description string             `json:"description"`
	Available   bool               `json:"available"`
	UpdatedAt   pgtype.Timestamptz `json:"updated_at"`
}

func (q *Queries) UpdateItem(ctx context.Context, db DBTX, arg UpdateItemParams) (Items, error) {
	row := db.QueryRow(ctx, updateItem,
		arg.ID,
		arg.Name,
		arg.Description,
		arg.Available,
		arg.UpdatedAt,
	)
	return scanItem(row)
}

const listItemsByOwner = `-- name: ListItemsByOwner :many
SELECT ` + itemColumns + `
FROM items
WHERE owner_id = $1
ORDER BY created_at, id
LIMIT $2 OFFSET $3
`

type ListItemsByOwnerParams struct {
	OwnerID uuid.UUID `json:"owner_id"`
	Limit   int32     `json:"limit"`
	Offset  int32     `json:"offset"`
}

func (q *Queries) ListItemsByOwner(ctx context.Context, db DBTX, arg ListItemsByOwnerParams) ([]Items, error) {
	rows, err := db.Query(ctx, listItemsByOwner, arg.OwnerID, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	return collectItems(rows)
}

const searchAvailableItems = `-- name: SearchAvailableItems :many
SELECT ` + itemColumns + `
FROM items
WHERE available
  AND (name ILIKE '%' || $1::text || '%' OR description ILIKE '%' || $1::text || '%')
ORDER BY created_at, id
LIMIT $2 OFFSET $3
`

type SearchAvailableItemsParams struct {
	Text   string `json:"text"`
	Limit  int32  `json:"limit"`
	Offset int32  `json:"offset"`
}

func (q *Queries) SearchAvailableItems(ctx context.Context, db DBTX, arg SearchAvailableItemsParams) ([]Items, error) {
	rows, err := db.Query(ctx, searchAvailableItems, arg.Text, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	return collectItems(rows)
}

const listItemsByRequestIDs = `-- name: ListItemsByRequestIDs :many
SELECT ` + itemColumns + `
FROM items
WHERE request_id = ANY($1::uuid[])
ORDER BY created_at, id
`

func (q *Queries) ListItemsByRequestIDs(ctx context.Context, db DBTX, requestIds []uuid.UUID) ([]Items, error) {
	rows, err := db.Query(ctx, listItemsByRequestIDs, requestIds)
	if err != nil {
		return nil, err
	}
	return collectItems(rows)
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanItem(row rowScanner) (Items, error) {
	var i Items
	err := row.Scan(
		&i.ID,
		&i.OwnerID,
		&i.Name,
		&i.Description,
		&i.Available,
		&i.RequestID,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

func collectItems(rows pgx.Rows) ([]Items, error) {
	defer rows.Close()
	items := []Items{}
	for rows.Next() {
		i, err := scanItem(rows)
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
