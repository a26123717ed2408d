//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"shareit/internal/domain/booking"
	"shareit/internal/handler/api"
	resdto "shareit/internal/handler/dto/response"
	"shareit/internal/pkg/errs"
	"shareit/internal/usecase/commands"
	"shareit/internal/usecase/queries"
	"shareit/tests/common/builder"
	"shareit/tests/common/httptest"
	"shareit/tests/common/testutil"
	commandsmock "shareit/tests/mock/commands"
	queriesmock "shareit/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockBookingQueries
}

func (s *BookingHandlerTestSuite) SetupTest() {
	s.router = newTestEngine()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	h := api.NewBookingHandler(s.mockCommands, s.mockQueries)

	g := callerGroup(s.router, "/bookings")
	g.POST("", h.Create)
	g.GET("", h.ListAsBooker)
	g.GET("/owner", h.ListAsOwner)
	g.GET("/:id", h.Get)
	g.PATCH("/:id", h.Decide)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

func (s *BookingHandlerTestSuite) TestCreate() {
	url := "/bookings"
	b := builder.NewBookingBuilder()
	reqBody := b.BuildRequestDTO()
	view := b.BuildView()
	booker := b.BookerID.String()

	s.Run("success: 201 in WAITING", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), reqBody.ToCommand(), b.BookerID).
			Return(&commands.CreateBookingResult{BookingID: view.ID}, nil).Times(1)
		s.mockQueries.EXPECT().GetByIDSystem(gomock.Any(), view.ID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, booker)

		var body resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal("WAITING", body.Status)
		s.Equal(b.ItemID, body.Item.ID)
		s.Equal(b.BookerName, body.Booker.Name)
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Location": "/bookings/" + view.ID.String()})
	})

	s.Run("error: 400 on missing fields", func() {
		for _, field := range []string{"itemId", "start", "end"} {
			s.Run(field, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
					testutil.DtoMap(s.T(), reqBody, testutil.Field(field, nil)), booker)
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
			})
		}
	})

	s.Run("error: 400 lists every temporal violation", func() {
		now := time.Now()
		_, violation := booking.NewTimeWindow(now.Add(-2*time.Hour), now.Add(-3*time.Hour), now)
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), b.BookerID).Return(nil, violation).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, booker)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, booking.ErrEndInPast.Error())
		s.Contains(rec.Body.String(), booking.ErrStartInPast.Error())
		s.Contains(rec.Body.String(), booking.ErrEndBeforeStart.Error())
	})

	s.Run("error: 404 when booking own item", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), b.BookerID).Return(nil, booking.ErrOwnItem).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, booker)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "")
	})

	s.Run("error: 400 on malformed caller", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "1")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid X-Sharer-User-Id header")
	})
}

func (s *BookingHandlerTestSuite) TestDecide() {
	b := builder.NewBookingBuilder().WithStatus(booking.StatusApproved)
	view := b.BuildView()
	url := "/bookings/" + b.ID.String()
	owner := b.OwnerID.String()

	s.Run("success: approved", func() {
		s.mockCommands.EXPECT().Decide(gomock.Any(), b.ID, b.OwnerID, true).Return(nil).Times(1)
		s.mockQueries.EXPECT().GetByIDSystem(gomock.Any(), b.ID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url+"?approved=true", nil, owner)

		var body resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("APPROVED", body.Status)
	})

	s.Run("error: 400 without approved flag", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, nil, owner)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: maps decision errors", func() {
		cases := []struct {
			name   string
			err    error
			status int
		}{
			{name: "already approved", err: booking.ErrAlreadyApproved, status: http.StatusBadRequest},
			{name: "booker decides", err: booking.ErrSelfDecision, status: http.StatusNotFound},
			{name: "concurrent decision", err: booking.ErrDecisionConflict, status: http.StatusConflict},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Decide(gomock.Any(), b.ID, b.OwnerID, false).Return(tc.err).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url+"?approved=false", nil, owner)
				httptest.AssertErrorResponse(s.T(), rec, tc.status, tc.err.Error())
			})
		}
	})
}

func (s *BookingHandlerTestSuite) TestGet() {
	b := builder.NewBookingBuilder()
	stranger := uuid.New()

	s.Run("error: 404 for non participant", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), stranger, b.ID).Return(nil, booking.ErrNotParticipant).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+b.ID.String(), nil, stranger.String())
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "")
	})
}

func (s *BookingHandlerTestSuite) TestList() {
	user := uuid.New()
	views := []*queries.BookingView{builder.NewBookingBuilder().BuildView()}

	s.Run("booker defaults to ALL", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), booking.AsBooker, "ALL", user, 0, 10).Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings", nil, user.String())

		var body []resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body, 1)
	})

	s.Run("owner with state and page", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), booking.AsOwner, "PAST", user, 2, 3).Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/owner?state=PAST&from=2&size=3", nil, user.String())
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("owner filters by APPROVED", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), booking.AsOwner, "APPROVED", user, 0, 10).Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/owner?state=APPROVED", nil, user.String())
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: unknown state", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), booking.AsBooker, "BOGUS", user, 0, 10).
			Return(nil, booking.ErrUnknownState).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings?state=BOGUS", nil, user.String())
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Unknown state: UNSUPPORTED_STATUS")
	})

	s.Run("error: internal errors are not leaked", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), booking.AsBooker, "ALL", user, 0, 10).
			Return(nil, errs.New("relation bookings does not exist")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings", nil, user.String())
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
		s.NotContains(rec.Body.String(), "relation")
	})
}
