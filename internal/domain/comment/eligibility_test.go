//go:build unit

package comment_test

import (
	"strings"
	"testing"
	"time"

	"shareit/internal/domain/booking"
	"shareit/internal/domain/comment"
	"shareit/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckEligibility(t *testing.T) {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	slot := func(from, to time.Duration, st booking.Status) booking.Slot {
		return booking.Slot{ID: uuid.New(), Start: now.Add(from), End: now.Add(to), Status: st}
	}

	cases := []struct {
		name  string
		slots []booking.Slot
		errIs error
	}{
		{
			name:  "no bookings",
			errIs: comment.ErrItemNotBooked,
		},
		{
			name:  "only rejected or waiting bookings",
			slots: []booking.Slot{slot(-3*time.Hour, -2*time.Hour, booking.StatusRejected), slot(-3*time.Hour, -2*time.Hour, booking.StatusWaiting)},
			errIs: comment.ErrItemNotBooked,
		},
		{
			name:  "approved booking still running",
			slots: []booking.Slot{slot(-time.Hour, time.Hour, booking.StatusApproved)},
			errIs: comment.ErrBookingNotCompleted,
		},
		{
			name:  "approved booking ending exactly now",
			slots: []booking.Slot{slot(-time.Hour, 0, booking.StatusApproved)},
			errIs: comment.ErrBookingNotCompleted,
		},
		{
			name:  "finished approved booking",
			slots: []booking.Slot{slot(-3*time.Hour, -2*time.Hour, booking.StatusApproved)},
		},
		{
			name: "earliest ending approved booking decides",
			slots: []booking.Slot{
				slot(time.Hour, 2*time.Hour, booking.StatusApproved),
				slot(-3*time.Hour, -2*time.Hour, booking.StatusApproved),
			},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := comment.CheckEligibility(c.slots, now)
			if c.errIs == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, c.errIs)
			assert.Equal(t, errs.KindValidation, errs.KindOf(err))
		})
	}
}

func TestNewText(t *testing.T) {
	txt, err := comment.NewText("  great drill ")
	require.NoError(t, err)
	assert.Equal(t, "great drill", txt.String())

	_, err = comment.NewText(" ")
	require.ErrorIs(t, err, comment.ErrEmptyText)

	_, err = comment.NewText(strings.Repeat("a", comment.MaxTextLength+1))
	require.ErrorIs(t, err, comment.ErrTextTooLong)
}

func TestNewComment(t *testing.T) {
	now := time.Now()
	itemID, authorID := uuid.New(), uuid.New()
	txt, _ := comment.NewText("ok")

	c := comment.NewComment(itemID, authorID, txt, now)

	assert.NotEqual(t, uuid.Nil, c.ID())
	assert.Equal(t, itemID, c.ItemID())
	assert.Equal(t, authorID, c.AuthorID())
	assert.Equal(t, now, c.CreatedAt())
}
