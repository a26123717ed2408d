//go:build unit

package booking_test

import (
	"testing"
	"time"

	"shareit/internal/domain/booking"
	"shareit/internal/pkg/errs"
	"shareit/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.BookingBuilder)
	errIs  []error
	kind   errs.Kind
}

func TestNewBooking(t *testing.T) {
	t.Run("starts waiting", func(t *testing.T) {
		b := builder.NewBookingBuilder()

		got, err := b.BuildDomain()
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, got.ID())
		assert.Equal(t, booking.StatusWaiting, got.Status())
		assert.Equal(t, b.ItemID, got.ItemID())
		assert.Equal(t, b.BookerID, got.BookerID())
		assert.Equal(t, time.Hour, got.Window().End().Sub(got.Window().Start()))
	})

	runCases(t, []testCase{
		{
			name:   "start exactly now is allowed",
			mutate: func(b *builder.BookingBuilder) { b.Window(0, time.Hour) },
		},
		{
			name:   "owner cannot book own item",
			mutate: func(b *builder.BookingBuilder) { b.BookerID = b.OwnerID },
			errIs:  []error{booking.ErrOwnItem},
			kind:   errs.KindNotFound,
		},
		{
			name:   "unavailable item",
			mutate: func(b *builder.BookingBuilder) { b.Available = false },
			errIs:  []error{booking.ErrItemUnavailable},
			kind:   errs.KindValidation,
		},
		{
			name: "ownership is checked before availability",
			mutate: func(b *builder.BookingBuilder) {
				b.BookerID = b.OwnerID
				b.Available = false
			},
			errIs: []error{booking.ErrOwnItem},
			kind:  errs.KindNotFound,
		},
		{
			name:   "equal start and end",
			mutate: func(b *builder.BookingBuilder) { b.Window(time.Hour, time.Hour) },
			errIs:  []error{booking.ErrEmptyWindow},
			kind:   errs.KindValidation,
		},
		{
			name:   "missing start",
			mutate: func(b *builder.BookingBuilder) { b.Start = time.Time{} },
			errIs:  []error{booking.ErrMissingTime},
			kind:   errs.KindValidation,
		},
		{
			name:   "end before start",
			mutate: func(b *builder.BookingBuilder) { b.Window(2*time.Hour, time.Hour) },
			errIs:  []error{booking.ErrEndBeforeStart},
			kind:   errs.KindValidation,
		},
		{
			name:   "start in the past",
			mutate: func(b *builder.BookingBuilder) { b.Window(-time.Hour, time.Hour) },
			errIs:  []error{booking.ErrStartInPast},
			kind:   errs.KindValidation,
		},
		{
			name:   "every temporal violation is reported",
			mutate: func(b *builder.BookingBuilder) { b.Window(-2*time.Hour, -3*time.Hour) },
			errIs:  []error{booking.ErrEndInPast, booking.ErrEndBeforeStart, booking.ErrStartInPast},
			kind:   errs.KindValidation,
		},
	})
}

func TestValidateRequest(t *testing.T) {
	now := time.Now()

	assert.NoError(t, booking.ValidateRequest(uuid.New(), now, now.Add(time.Hour)))
	assert.ErrorIs(t, booking.ValidateRequest(uuid.Nil, now, now.Add(time.Hour)), booking.ErrMissingItem)
	assert.ErrorIs(t, booking.ValidateRequest(uuid.New(), now, now), booking.ErrEmptyWindow)
	assert.ErrorIs(t, booking.ValidateRequest(uuid.New(), time.Time{}, now), booking.ErrMissingTime)
}

func TestBooking_Decide(t *testing.T) {
	later := time.Date(2025, 1, 1, 13, 0, 0, 0, time.UTC)

	cases := []struct {
		name    string
		status  booking.Status
		approve bool
		byBook  bool
		other   bool
		want    booking.Status
		errIs   error
	}{
		{name: "approve waiting", status: booking.StatusWaiting, approve: true, want: booking.StatusApproved},
		{name: "reject waiting", status: booking.StatusWaiting, approve: false, want: booking.StatusRejected},
		{name: "any non-booker may decide", status: booking.StatusWaiting, approve: true, other: true, want: booking.StatusApproved},
		{name: "booker cannot decide", status: booking.StatusWaiting, approve: true, byBook: true, errIs: booking.ErrSelfDecision},
		{name: "already approved", status: booking.StatusApproved, approve: false, errIs: booking.ErrAlreadyApproved},
		{name: "rejected is terminal", status: booking.StatusRejected, approve: true, errIs: booking.ErrAlreadyRejected},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			b := builder.NewBookingBuilder().WithStatus(c.status)
			bk := b.BuildStored()
			actor := b.OwnerID
			if c.byBook {
				actor = b.BookerID
			}
			if c.other {
				actor = uuid.New()
			}

			err := bk.Decide(actor, c.approve, later)

			if c.errIs != nil {
				require.ErrorIs(t, err, c.errIs)
				assert.Equal(t, c.status, bk.Status())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, c.want, bk.Status())
			assert.Equal(t, later, bk.UpdatedAt())
			assert.True(t, bk.Status().IsTerminal())
		})
	}
}

func TestBooking_Slot(t *testing.T) {
	b := builder.NewBookingBuilder().WithStatus(booking.StatusApproved)

	assert.Equal(t, b.BuildSlot(), b.BuildStored().Slot())
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewBookingBuilder().With(c.mutate).BuildDomain()

			if len(c.errIs) == 0 {
				require.NoError(t, err)
				require.NotNil(t, actual)
				return
			}
			require.Nil(t, actual)
			for _, want := range c.errIs {
				require.ErrorIs(t, err, want)
			}
			assert.Equal(t, c.kind, errs.KindOf(err))
		})
	}
}
