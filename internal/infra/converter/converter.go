package converter

import (
	"shareit/internal/domain/booking"
	"shareit/internal/domain/comment"
	"shareit/internal/domain/item"
	"shareit/internal/domain/request"
	"shareit/internal/domain/user"
	"shareit/internal/infra/query"
	"shareit/internal/pkg/pgconv"
)

func UserToCreateParams(u *user.User) query.CreateUserParams {
	return query.CreateUserParams{
		ID:        u.ID(),
		Name:      u.Name(),
		Email:     u.Email().Value(),
		CreatedAt: pgconv.TimeToPgtype(u.CreatedAt()),
		UpdatedAt: pgconv.TimeToPgtype(u.UpdatedAt()),
	}
}

func UserFromRow(row query.Users) *user.User {
	return user.ReconstructUser(
		row.ID,
		row.Name,
		user.ReconstructEmail(row.Email),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	)
}

func ItemToCreateParams(it *item.Item) query.CreateItemParams {
	return query.CreateItemParams{
		ID:          it.ID(),
		OwnerID:     it.OwnerID(),
		Name:        it.Name(),
		Description: it.Description(),
		Available:   it.Available(),
		RequestID:   pgconv.UUIDPtrToPgtype(it.RequestID()),
		CreatedAt:   pgconv.TimeToPgtype(it.CreatedAt()),
		UpdatedAt:   pgconv.TimeToPgtype(it.UpdatedAt()),
	}
}

func ItemFromRow(row query.Items) *item.Item {
	return item.ReconstructItem(
		row.ID,
		row.OwnerID,
		row.Name,
		row.Description,
		row.Available,
		pgconv.UUIDPtrFromPgtype(row.RequestID),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	)
}

func BookingToCreateParams(b *booking.Booking) query.CreateBookingParams {
	return query.CreateBookingParams{
		ID:        b.ID(),
		ItemID:    b.ItemID(),
		BookerID:  b.BookerID(),
		StartAt:   pgconv.TimeToPgtype(b.Window().Start()),
		EndAt:     pgconv.TimeToPgtype(b.Window().End()),
		Status:    b.Status().String(),
		CreatedAt: pgconv.TimeToPgtype(b.CreatedAt()),
		UpdatedAt: pgconv.TimeToPgtype(b.UpdatedAt()),
	}
}

func BookingFromRow(row query.Bookings) (*booking.Booking, error) {
	status, err := booking.ParseStatus(row.Status)
	if err != nil {
		return nil, err
	}
	return booking.ReconstructBooking(
		row.ID,
		row.ItemID,
		row.BookerID,
		booking.ReconstructTimeWindow(pgconv.TimeFromPgtype(row.StartAt), pgconv.TimeFromPgtype(row.EndAt)),
		status,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}

func SlotFromRow(row query.BookingSlotRow) (booking.Slot, error) {
	status, err := booking.ParseStatus(row.Status)
	if err != nil {
		return booking.Slot{}, err
	}
	return booking.Slot{
		ID:       row.ID,
		BookerID: row.BookerID,
		Start:    pgconv.TimeFromPgtype(row.StartAt),
		End:      pgconv.TimeFromPgtype(row.EndAt),
		Status:   status,
	}, nil
}

func SlotsFromRows(rows []query.BookingSlotRow) ([]booking.Slot, error) {
	slots := make([]booking.Slot, 0, len(rows))
	for _, row := range rows {
		s, err := SlotFromRow(row)
		if err != nil {
			return nil, err
		}
		slots = append(slots, s)
	}
	return slots, nil
}

func CommentToCreateParams(c *comment.Comment) query.CreateCommentParams {
	return query.CreateCommentParams{
		ID:        c.ID(),
		ItemID:    c.ItemID(),
		AuthorID:  c.AuthorID(),
		Text:      c.Text().String(),
		CreatedAt: pgconv.TimeToPgtype(c.CreatedAt()),
	}
}

func ItemRequestToCreateParams(r *request.ItemRequest) query.CreateItemRequestParams {
	return query.CreateItemRequestParams{
		ID:          r.ID(),
		RequestorID: r.RequestorID(),
		Description: r.Description(),
		CreatedAt:   pgconv.TimeToPgtype(r.CreatedAt()),
	}
}
