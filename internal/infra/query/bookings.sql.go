package query

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const bookingColumns = `id, item_id, booker_id, start_at, end_at, status, created_at, updated_at`

const createBooking = `-- name: CreateBooking :one
INSERT INTO bookings (id, item_id, booker_id, start_at, end_at, status, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING ` + bookingColumns

type CreateBookingParams struct {
	ID        uuid.UUID          `json:"id"`
	ItemID    uuid.UUID          `json:"item_id"`
	BookerID  uuid.UUID          `json:"booker_id"`
	StartAt   pgtype.Timestamptz `json:"start_at"`
	EndAt     pgtype.Timestamptz `json:"end_at"`
	Status    string             `json:"status"`
	CreatedAt pgtype.Timestamptz `json:"created_at"`
	UpdatedAt pgtype.Timestamptz `json:"updated_at"`
}

func (q *Queries) CreateBooking(ctx context.Context, db DBTX, arg CreateBookingParams) (Bookings, error) {
	row := db.QueryRow(ctx, createBooking,
		arg.ID,
		arg.ItemID,
		arg.BookerID,
		arg.StartAt,
		arg.EndAt,
		arg.Status,
		arg.CreatedAt,
		arg.UpdatedAt,
	)
	return scanBooking(row)
}

const getBookingByID = `-- name: GetBookingByID :one
SELECT ` + bookingColumns + `
FROM bookings
WHERE id = $1
`

func (q *Queries) GetBookingByID(ctx context.Context, db DBTX, id uuid.UUID) (Bookings, error) {
	return scanBooking(db.QueryRow(ctx, getBookingByID, id))
}

// The WHERE clause on status makes the transition a compare-and-set: a
// booking decided concurrently yields no row.
const decideBooking = `-- name: DecideBooking :one
UPDATE bookings
SET status = $2, updated_at = $3
WHERE id = $1 AND status = 'WAITING'
RETURNING ` + bookingColumns

type DecideBookingParams struct {
	ID        uuid.UUID          `json:"id"`
	Status    string             `json:"status"`
	UpdatedAt pgtype.Timestamptz `json:"updated_at"`
}

func (q *Queries) DecideBooking(ctx context.Context, db DBTX, arg DecideBookingParams) (Bookings, error) {
	return scanBooking(db.QueryRow(ctx, decideBooking, arg.ID, arg.Status, arg.UpdatedAt))
}

const bookingViewSelect = `SELECT b.id, b.start_at, b.end_at, b.status,
       i.id AS item_id, i.name AS item_name, i.owner_id,
       u.id AS booker_id, u.name AS booker_name
FROM bookings b
JOIN items i ON i.id = b.item_id
JOIN users u ON u.id = b.booker_id
`

type BookingViewRow struct {
	ID         uuid.UUID          `json:"id"`
	StartAt    pgtype.Timestamptz `json:"start_at"`
	EndAt      pgtype.Timestamptz `json:"end_at"`
	Status     string             `json:"status"`
	ItemID     uuid.UUID          `json:"item_id"`
	ItemName   string             `json:"item_name"`
	OwnerID    uuid.UUID          `json:"owner_id"`
	BookerID   uuid.UUID          `json:"booker_id"`
	BookerName string             `json:"booker_name"`
}

const getBookingViewByID = `-- name: GetBookingViewByID :one
` + bookingViewSelect + `WHERE b.id = $1
`

func (q *Queries) GetBookingViewByID(ctx context.Context, db DBTX, id uuid.UUID) (BookingViewRow, error) {
	return scanBookingView(db.QueryRow(ctx, getBookingViewByID, id))
}

// $2 selects the scope column: 'BOOKER' matches booker_id, anything else the
// item owner. $3 is the time scope keyword evaluated against $4, $5 an
// optional exact status and $6 switches the sort key to end_at.
const listBookingViews = `-- name: ListBookingViews :many
` + bookingViewSelect + `WHERE CASE WHEN $2::text = 'BOOKER' THEN b.booker_id = $1 ELSE i.owner_id = $1 END
  AND (
       $3::text = 'ALL'
    OR ($3::text = 'CURRENT' AND b.start_at <= $4 AND b.end_at >= $4)
    OR ($3::text = 'PAST' AND b.end_at < $4)
    OR ($3::text = 'FUTURE' AND b.start_at > $4)
  )
  AND ($5::text IS NULL OR b.status = $5::text)
ORDER BY CASE WHEN $6::boolean THEN b.end_at ELSE b.start_at END DESC, b.id
LIMIT $7 OFFSET $8
`

type ListBookingViewsParams struct {
	UserID      uuid.UUID          `json:"user_id"`
	Perspective string             `json:"perspective"`
	TimeScope   string             `json:"time_scope"`
	Now         pgtype.Timestamptz `json:"now"`
	Status      pgtype.Text        `json:"status"`
	OrderByEnd  bool               `json:"order_by_end"`
	Limit       int32              `json:"limit"`
	Offset      int32              `json:"offset"`
}

func (q *Queries) ListBookingViews(ctx context.Context, db DBTX, arg ListBookingViewsParams) ([]BookingViewRow, error) {
	rows, err := db.Query(ctx, listBookingViews,
		arg.UserID,
		arg.Perspective,
		arg.TimeScope,
		arg.Now,
		arg.Status,
		arg.OrderByEnd,
		arg.Limit,
		arg.Offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []BookingViewRow{}
	for rows.Next() {
		i, err := scanBookingView(rows)
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

type BookingSlotRow struct {
	ID       uuid.UUID          `json:"id"`
	ItemID   uuid.UUID          `json:"item_id"`
	BookerID uuid.UUID          `json:"booker_id"`
	StartAt  pgtype.Timestamptz `json:"start_at"`
	EndAt    pgtype.Timestamptz `json:"end_at"`
	Status   string             `json:"status"`
}

const listSlotsByItemIDs = `-- name: ListSlotsByItemIDs :many
SELECT id, item_id, booker_id, start_at, end_at, status
FROM bookings
WHERE item_id = ANY($1::uuid[])
ORDER BY start_at
`

func (q *Queries) ListSlotsByItemIDs(ctx context.Context, db DBTX, itemIds []uuid.UUID) ([]BookingSlotRow, error) {
	rows, err := db.Query(ctx, listSlotsByItemIDs, itemIds)
	if err != nil {
		return nil, err
	}
	return collectSlots(rows)
}

const listSlotsByBookerAndItem = `-- name: ListSlotsByBookerAndItem :many
SELECT id, item_id, booker_id, start_at, end_at, status
FROM bookings
WHERE booker_id = $1 AND item_id = $2
ORDER BY end_at
`

type ListSlotsByBookerAndItemParams struct {
	BookerID uuid.UUID `json:"booker_id"`
	ItemID   uuid.UUID `json:"item_id"`
}

func (q *Queries) ListSlotsByBookerAndItem(ctx context.Context, db DBTX, arg ListSlotsByBookerAndItemParams) ([]BookingSlotRow, error) {
	rows, err := db.Query(ctx, listSlotsByBookerAndItem, arg.BookerID, arg.ItemID)
	if err != nil {
		return nil, err
	}
	return collectSlots(rows)
}

func scanBooking(row rowScanner) (Bookings, error) {
	var i Bookings
	err := row.Scan(
		&i.ID,
		&i.ItemID,
		&i.BookerID,
		&i.StartAt,
		&i.EndAt,
		&i.Status,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

func scanBookingView(row rowScanner) (BookingViewRow, error) {
	var i BookingViewRow
	err := row.Scan(
		&i.ID,
		&i.StartAt,
		&i.EndAt,
		&i.Status,
		&i.ItemID,
		&i.ItemName,
		&i.OwnerID,
		&i.BookerID,
		&i.BookerName,
	)
	return i, err
}

func collectSlots(rows pgx.Rows) ([]BookingSlotRow, error) {
	defer rows.Close()
	items := []BookingSlotRow{}
	for rows.Next() {
		var i BookingSlotRow
		if err := rows.Scan(
			&i.ID,
			&i.ItemID,
			&i.BookerID,
			&i.StartAt,
			&i.EndAt,
			&i.Status,
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
