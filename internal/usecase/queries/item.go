package queries

import (
	"context"
	"strings"

	"shareit/internal/domain/booking"
	"shareit/internal/domain/item"
	"shareit/internal/infra"
	"shareit/internal/pkg/clock"

	"github.com/google/uuid"
)

type ItemReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ItemView, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID, limit, offset int32) ([]*ItemView, error)
	Search(ctx context.Context, text string, limit, offset int32) ([]*ItemView, error)
	SlotsByItems(ctx context.Context, itemIDs []uuid.UUID) (map[uuid.UUID][]booking.Slot, error)
	CommentsByItems(ctx context.Context, itemIDs []uuid.UUID) (map[uuid.UUID][]CommentView, error)
}

type ItemQueries interface {
	GetByID(ctx context.Context, viewerID, id uuid.UUID) (*ItemView, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID, from, size int) ([]*ItemView, error)
	Search(ctx context.Context, text string, from, size int) ([]*ItemView, error)
}

type itemQueriesImpl struct {
	items ItemReadStore
	clock clock.Clock
}

func NewItemQueries(items ItemReadStore, clk clock.Clock) ItemQueries {
	return &itemQueriesImpl{
		items: items,
		clock: clk,
	}
}

func (q *itemQueriesImpl) GetByID(ctx context.Context, viewerID, id uuid.UUID) (*ItemView, error) {
	v, err := q.items.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, item.ErrNotFound
		}
		return nil, err
	}
	if err := q.decorate(ctx, viewerID, []*ItemView{v}); err != nil {
		return nil, err
	}
	return v, nil
}

func (q *itemQueriesImpl) ListByOwner(ctx context.Context, ownerID uuid.UUID, from, size int) ([]*ItemView, error) {
	page, err := NewPage(from, size)
	if err != nil {
		return nil, err
	}
	views, err := q.items.ListByOwner(ctx, ownerID, page.Limit(), page.Offset())
	if err != nil {
		return nil, err
	}
	if err := q.decorate(ctx, ownerID, views); err != nil {
		return nil, err
	}
	return views, nil
}

// Search matches available items only. Blank text matches nothing.
func (q *itemQueriesImpl) Search(ctx context.Context, text string, from, size int) ([]*ItemView, error) {
	page, err := NewPage(from, size)
	if err != nil {
		return nil, err
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return []*ItemView{}, nil
	}
	return q.items.Search(ctx, text, page.Limit(), page.Offset())
}

// decorate attaches the availability projection and comments to views as
// seen by viewerID.
func (q *itemQueriesImpl) decorate(ctx context.Context, viewerID uuid.UUID, views []*ItemView) error {
	if len(views) == 0 {
		return nil
	}
	ids := make([]uuid.UUID, len(views))
	for i, v := range views {
		ids[i] = v.ID
	}

	slots, err := q.items.SlotsByItems(ctx, ids)
	if err != nil {
		return err
	}
	comments, err := q.items.CommentsByItems(ctx, ids)
	if err != nil {
		return err
	}

	now := q.clock.Now()
	for _, v := range views {
		a := item.ProjectAvailability(v.OwnerID, viewerID, slots[v.ID], now)
		v.LastBooking = toSlotView(a.Last)
		v.NextBooking = toSlotView(a.Next)
		v.Comments = comments[v.ID]
		if v.Comments == nil {
			v.Comments = []CommentView{}
		}
	}
	return nil
}

func toSlotView(s *booking.Slot) *BookingSlotView {
	if s == nil {
		return nil
	}
	return &BookingSlotView{
		ID:       s.ID,
		Start:    s.Start,
		End:      s.End,
		BookerID: s.BookerID,
	}
}
