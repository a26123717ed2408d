//go:build unit || e2e

package dbtest

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

func CreateTestUser(t *testing.T, db DBLike, name, email string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO users (id, name, email, created_at, updated_at) VALUES ($1, $2, $3, now(), now())",
		userID, name, email)
	require.NoError(t, err)

	return userID
}

func CreateTestItem(t *testing.T, db DBLike, ownerID uuid.UUID, name string, available bool) uuid.UUID {
	t.Helper()

	itemID := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO items (id, owner_id, name, description, available, created_at, updated_at) VALUES ($1, $2, $3, $4, $5, now(), now())",
		itemID, ownerID, name, name+" description", available)
	require.NoError(t, err)

	return itemID
}

// CreateTestBooking inserts directly, bypassing the past-window rules, so
// finished bookings can be set up.
func CreateTestBooking(t *testing.T, db DBLike, itemID, bookerID uuid.UUID, start, end time.Time, status string) uuid.UUID {
	t.Helper()

	bookingID := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO bookings (id, item_id, booker_id, start_at, end_at, status, created_at, updated_at) VALUES ($1, $2, $3, $4, $5, $6, now(), now())",
		bookingID, itemID, bookerID, start, end, status)
	require.NoError(t, err)

	return bookingID
}

func CreateTestItemRequest(t *testing.T, db DBLike, requestorID uuid.UUID, description string) uuid.UUID {
	t.Helper()

	requestID := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO item_requests (id, requestor_id, description, created_at) VALUES ($1, $2, $3, now())",
		requestID, requestorID, description)
	require.NoError(t, err)

	return requestID
}

func CountRows(t *testing.T, db DBLike, table string) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(), "SELECT count(*) FROM "+table).Scan(&n)
	require.NoError(t, err)
	return n
}

// appTables lists every table the schema owns, children first.
var appTables = []string{"comments", "bookings", "items", "item_requests", "users"}

// ResetDB empties every application table.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	idents := make([]string, len(appTables))
	for i, name := range appTables {
		idents[i] = pgx.Identifier{"public", name}.Sanitize()
	}
	_, err := pool.Exec(ctx, "TRUNCATE "+strings.Join(idents, ", ")+" CASCADE")
	return err
}
