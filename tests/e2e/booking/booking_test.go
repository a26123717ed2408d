//go:build e2e

package booking_test

import (
	"fmt"
	"net/http"
	"sync"
	"testing"
	"time"

	"shareit/internal/handler/dto/request"
	"shareit/internal/handler/dto/response"
	"shareit/tests/common/dbtest"
	"shareit/tests/common/httptest"
	"shareit/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

const (
	bookingsURL      = "/bookings"
	bookingURL       = "/bookings/%s"
	ownerBookingsURL = "/bookings/owner"
)

type BookingSuite struct {
	e2e.SharedSuite
}

func (s *BookingSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(BookingSuite))
}

type fixture struct {
	owner  uuid.UUID
	booker uuid.UUID
	item   uuid.UUID
}

func (s *BookingSuite) seed() fixture {
	t := s.T()
	owner := dbtest.CreateTestUser(t, s.DB, "Owner", "owner@example.com")
	booker := dbtest.CreateTestUser(t, s.DB, "Booker", "booker@example.com")
	item := dbtest.CreateTestItem(t, s.DB, owner, "Drill", true)
	return fixture{owner: owner, booker: booker, item: item}
}

// =============================================================================
// TestCreateBooking
// =============================================================================

func (s *BookingSuite) TestCreateBooking() {
	s.Run("Normal case: booker creates a WAITING booking", func() {
		t := s.T()
		f := s.seed()

		start := time.Now().Add(time.Hour).UTC().Truncate(time.Second)
		body := request.CreateBookingRequest{ItemID: f.item, Start: start, End: start.Add(time.Hour)}

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, body, f.booker.String())

		var got response.BookingResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &got)
		httptest.AssertLocation(t, w, bookingsURL, got.ID)

		want := response.BookingResponse{
			Start:  start,
			End:    start.Add(time.Hour),
			Status: "WAITING",
			Item:   response.RefResponse{ID: f.item, Name: "Drill"},
			Booker: response.RefResponse{ID: f.booker, Name: "Booker"},
		}
		opts := cmp.Options{
			cmpopts.IgnoreFields(response.BookingResponse{}, "ID"),
			cmpopts.EquateApproxTime(time.Second),
		}
		if diff := cmp.Diff(want, got, opts); diff != "" {
			t.Errorf("booking mismatch (-want +got):\n%s", diff)
		}
		assert.Equal(t, 1, dbtest.CountRows(t, s.DB, "bookings"))
	})

	s.Run("Error case: owner cannot book own item", func() {
		t := s.T()
		f := s.seed()

		start := time.Now().Add(time.Hour)
		body := request.CreateBookingRequest{ItemID: f.item, Start: start, End: start.Add(time.Hour)}

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, body, f.owner.String())
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "")
		assert.Equal(t, 0, dbtest.CountRows(t, s.DB, "bookings"))
	})

	s.Run("Error case: unavailable item", func() {
		t := s.T()
		f := s.seed()
		shelved := dbtest.CreateTestItem(t, s.DB, f.owner, "Ladder", false)

		start := time.Now().Add(time.Hour)
		body := request.CreateBookingRequest{ItemID: shelved, Start: start, End: start.Add(time.Hour)}

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, body, f.booker.String())
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "not available")
	})

	s.Run("Error case: window in the past", func() {
		t := s.T()
		f := s.seed()

		start := time.Now().Add(-2 * time.Hour)
		body := request.CreateBookingRequest{ItemID: f.item, Start: start, End: start.Add(time.Hour)}

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, body, f.booker.String())
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "")
	})

	s.Run("Error case: unknown booker", func() {
		t := s.T()
		f := s.seed()

		start := time.Now().Add(time.Hour)
		body := request.CreateBookingRequest{ItemID: f.item, Start: start, End: start.Add(time.Hour)}

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, body, uuid.NewString())
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "user not found")
	})

	s.Run("Error case: missing caller header", func() {
		t := s.T()
		f := s.seed()

		start := time.Now().Add(time.Hour)
		body := request.CreateBookingRequest{ItemID: f.item, Start: start, End: start.Add(time.Hour)}

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, body, "")
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Invalid X-Sharer-User-Id header")
	})
}

// =============================================================================
// TestDecideBooking
// =============================================================================

func (s *BookingSuite) TestDecideBooking() {
	s.Run("Normal case: owner approves, second decision rejected", func() {
		t := s.T()
		f := s.seed()
		start := time.Now().Add(time.Hour)
		id := dbtest.CreateTestBooking(t, s.DB, f.item, f.booker, start, start.Add(time.Hour), "WAITING")

		url := fmt.Sprintf(bookingURL, id) + "?approved=true"
		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, url, nil, f.owner.String())

		var got response.BookingResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &got)
		assert.Equal(t, "APPROVED", got.Status)

		w = httptest.PerformRequest(t, s.Router, http.MethodPatch, url, nil, f.owner.String())
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "already approved")
	})

	s.Run("Normal case: owner rejects", func() {
		t := s.T()
		f := s.seed()
		start := time.Now().Add(time.Hour)
		id := dbtest.CreateTestBooking(t, s.DB, f.item, f.booker, start, start.Add(time.Hour), "WAITING")

		url := fmt.Sprintf(bookingURL, id) + "?approved=false"
		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, url, nil, f.owner.String())

		var got response.BookingResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &got)
		assert.Equal(t, "REJECTED", got.Status)
	})

	s.Run("Error case: booker cannot decide", func() {
		t := s.T()
		f := s.seed()
		start := time.Now().Add(time.Hour)
		id := dbtest.CreateTestBooking(t, s.DB, f.item, f.booker, start, start.Add(time.Hour), "WAITING")

		url := fmt.Sprintf(bookingURL, id) + "?approved=true"
		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, url, nil, f.booker.String())
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "")
	})

	s.Run("Error case: missing approved flag", func() {
		t := s.T()
		f := s.seed()
		start := time.Now().Add(time.Hour)
		id := dbtest.CreateTestBooking(t, s.DB, f.item, f.booker, start, start.Add(time.Hour), "WAITING")

		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, fmt.Sprintf(bookingURL, id), nil, f.owner.String())
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "")
	})

	s.Run("Normal case: concurrent decisions settle exactly once", func() {
		t := s.T()
		f := s.seed()
		start := time.Now().Add(time.Hour)
		id := dbtest.CreateTestBooking(t, s.DB, f.item, f.booker, start, start.Add(time.Hour), "WAITING")

		const n = 5
		codes := make([]int, n)
		var wg sync.WaitGroup
		for i := range n {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				url := fmt.Sprintf(bookingURL, id) + fmt.Sprintf("?approved=%t", i%2 == 0)
				codes[i] = httptest.PerformRequest(t, s.Router, http.MethodPatch, url, nil, f.owner.String()).Code
			}(i)
		}
		wg.Wait()

		ok := 0
		for _, c := range codes {
			switch c {
			case http.StatusOK:
				ok++
			case http.StatusBadRequest, http.StatusConflict:
			default:
				t.Errorf("unexpected status %d", c)
			}
		}
		assert.Equal(t, 1, ok, "exactly one decision should win: %v", codes)
	})
}

// =============================================================================
// TestGetBooking
// =============================================================================

func (s *BookingSuite) TestGetBooking() {
	s.Run("Normal case: booker and owner can read", func() {
		t := s.T()
		f := s.seed()
		start := time.Now().Add(time.Hour)
		id := dbtest.CreateTestBooking(t, s.DB, f.item, f.booker, start, start.Add(time.Hour), "WAITING")

		for _, caller := range []uuid.UUID{f.booker, f.owner} {
			w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(bookingURL, id), nil, caller.String())
			var got response.BookingResponse
			httptest.AssertSuccessResponse(t, w, http.StatusOK, &got)
			assert.Equal(t, id, got.ID)
		}
	})

	s.Run("Error case: stranger gets not found", func() {
		t := s.T()
		f := s.seed()
		stranger := dbtest.CreateTestUser(t, s.DB, "Eve", "eve@example.com")
		start := time.Now().Add(time.Hour)
		id := dbtest.CreateTestBooking(t, s.DB, f.item, f.booker, start, start.Add(time.Hour), "WAITING")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(bookingURL, id), nil, stranger.String())
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "")
	})
}

// =============================================================================
// TestListBookings
// =============================================================================

func (s *BookingSuite) TestListBookings() {
	s.Run("Normal case: state filters split past, current and future", func() {
		t := s.T()
		f := s.seed()
		now := time.Now()
		past := dbtest.CreateTestBooking(t, s.DB, f.item, f.booker, now.Add(-3*time.Hour), now.Add(-2*time.Hour), "APPROVED")
		current := dbtest.CreateTestBooking(t, s.DB, f.item, f.booker, now.Add(-time.Hour), now.Add(time.Hour), "APPROVED")
		future := dbtest.CreateTestBooking(t, s.DB, f.item, f.booker, now.Add(2*time.Hour), now.Add(3*time.Hour), "WAITING")
		rejected := dbtest.CreateTestBooking(t, s.DB, f.item, f.booker, now.Add(4*time.Hour), now.Add(5*time.Hour), "REJECTED")

		cases := []struct {
			state string
			want  []uuid.UUID
		}{
			{state: "ALL", want: []uuid.UUID{rejected, future, current, past}},
			{state: "PAST", want: []uuid.UUID{past}},
			{state: "CURRENT", want: []uuid.UUID{current}},
			{state: "FUTURE", want: []uuid.UUID{rejected, future}},
			{state: "WAITING", want: []uuid.UUID{future}},
			{state: "APPROVED", want: []uuid.UUID{current, past}},
			{state: "REJECTED", want: []uuid.UUID{rejected}},
		}

		for _, c := range cases {
			for _, path := range []struct {
				url    string
				caller uuid.UUID
			}{
				{url: bookingsURL, caller: f.booker},
				{url: ownerBookingsURL, caller: f.owner},
			} {
				w := httptest.PerformRequest(t, s.Router, http.MethodGet, path.url+"?state="+c.state, nil, path.caller.String())
				var got []response.BookingResponse
				httptest.AssertSuccessResponse(t, w, http.StatusOK, &got)

				ids := make([]uuid.UUID, len(got))
				for i, b := range got {
					ids[i] = b.ID
				}
				assert.Equal(t, c.want, ids, "%s %s", path.url, c.state)
			}
		}
	})

	s.Run("Normal case: paging by from and size", func() {
		t := s.T()
		f := s.seed()
		now := time.Now()
		for i := range 3 {
			dbtest.CreateTestBooking(t, s.DB, f.item, f.booker,
				now.Add(time.Duration(i+1)*time.Hour), now.Add(time.Duration(i+1)*time.Hour+30*time.Minute), "WAITING")
		}

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL+"?from=2&size=2", nil, f.booker.String())
		var got []response.BookingResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &got)
		assert.Len(t, got, 1)
	})

	s.Run("Error case: unknown state", func() {
		t := s.T()
		f := s.seed()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL+"?state=BOGUS", nil, f.booker.String())
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Unknown state: UNSUPPORTED_STATUS")
	})

	s.Run("Error case: invalid page", func() {
		t := s.T()
		f := s.seed()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL+"?from=-1&size=10", nil, f.booker.String())
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "")
	})
}
