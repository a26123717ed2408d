package readstore

import (
	"context"

	"shareit/internal/infra"
	"shareit/internal/infra/query"
	"shareit/internal/pkg/pgconv"
	"shareit/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type BookingViewQueries interface {
	GetBookingViewByID(ctx context.Context, db query.DBTX, id uuid.UUID) (query.BookingViewRow, error)
	ListBookingViews(ctx context.Context, db query.DBTX, arg query.ListBookingViewsParams) ([]query.BookingViewRow, error)
}

type BookingReadStore struct {
	queries BookingViewQueries
	db      query.DBTX
}

func NewBookingReadStore(queries BookingViewQueries, db query.DBTX) *BookingReadStore {
	return &BookingReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	row, err := r.queries.GetBookingViewByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get booking view by id", err)
	}
	return toBookingView(row), nil
}

func (r *BookingReadStore) List(ctx context.Context, f queries.BookingListFilter) ([]*queries.BookingView, error) {
	status, byStatus := f.State.Status()
	params := query.ListBookingViewsParams{
		UserID:      f.UserID,
		Perspective: f.Perspective.String(),
		TimeScope:   f.State.TimeScope().String(),
		Now:         pgconv.TimeToPgtype(f.Now),
		Status:      pgtype.Text{String: status.String(), Valid: byStatus},
		OrderByEnd:  f.State.OrderByEnd(),
		Limit:       f.Limit,
		Offset:      f.Offset,
	}
	rows, err := r.queries.ListBookingViews(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list booking views", err)
	}
	result := make([]*queries.BookingView, len(rows))
	for i, row := range rows {
		result[i] = toBookingView(row)
	}
	return result, nil
}

func toBookingView(row query.BookingViewRow) *queries.BookingView {
	return &queries.BookingView{
		ID:      row.ID,
		Start:   pgconv.TimeFromPgtype(row.StartAt),
		End:     pgconv.TimeFromPgtype(row.EndAt),
		Status:  row.Status,
		Item:    queries.RefView{ID: row.ItemID, Name: row.ItemName},
		Booker:  queries.RefView{ID: row.BookerID, Name: row.BookerName},
		OwnerID: row.OwnerID,
	}
}
