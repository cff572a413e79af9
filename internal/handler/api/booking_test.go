//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	"hotel-booking-core/internal/domain/booking"
	"hotel-booking-core/internal/domain/user"
	"hotel-booking-core/internal/handler/api"
	resdto "hotel-booking-core/internal/handler/dto/response"
	"hotel-booking-core/internal/handler/httperr"
	"hotel-booking-core/internal/handler/middleware"
	"hotel-booking-core/internal/pkg/errs"
	"hotel-booking-core/internal/usecase/commands"
	"hotel-booking-core/internal/usecase/queries"
	"hotel-booking-core/internal/usecase/shared"
	"hotel-booking-core/tests/common/builder"
	"hotel-booking-core/tests/common/httptest"
	"hotel-booking-core/tests/common/testutil"
	commandsmock "hotel-booking-core/tests/mock/commands"
	queriesmock "hotel-booking-core/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// fakeAuth stands in for the JWT middleware: any bearer token authenticates as actor.
func fakeAuth(actor *shared.Actor) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, nil, httperr.CodeUnauthorized, "Unauthorized", nil)
			return
		}
		middleware.SetActor(c, *actor)
		c.Next()
	}
}

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockBookingQueries
	handler      *api.BookingHandler
	actor        shared.Actor
}

func (s *BookingHandlerTestSuite) SetupSuite() {
	s.Require().NoError(middleware.RegisterValidators())
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockCommands, s.mockQueries)
	s.actor = shared.Actor{UserID: uuid.New(), Role: user.RoleGuest}

	auth := fakeAuth(&s.actor)
	s.router.POST("/bookings", auth, s.handler.Create)
	s.router.GET("/bookings", auth, s.handler.List)
	s.router.GET("/bookings/:id", auth, s.handler.Get)
	s.router.POST("/bookings/:id/cancel", auth, s.handler.Cancel)
	s.router.POST("/bookings/:id/modifications", auth, s.handler.Modify)
	s.router.GET("/bookings/:id/modifications", auth, s.handler.ListModifications)
	s.router.GET("/bookings/:id/history", auth, s.handler.History)
	s.router.POST("/bookings/:id/payment-outcome", auth, s.handler.ApplyPaymentOutcome)
	s.router.POST("/bookings/:id/complete", auth, s.handler.Complete)
	s.router.POST("/bookings/:id/refunded", auth, s.handler.MarkRefunded)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

type testCaseBooking struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *BookingHandlerTestSuite) TestCreate() {
	url := "/bookings"
	key := map[string]string{api.HeaderIdempotencyKey: "key-1"}

	b := builder.NewBookingBuilder()
	reqBody := b.BuildCreateRequestDTO()
	view := b.BuildView(booking.StatusPending, booking.PaymentPending)

	s.Run("success: returns 201 Created with the booking", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), s.actor, reqBody.ToInput(), "key-1").
			Return(&commands.CreateBookingResult{Booking: view}, nil).Times(1)

		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token", key)

		var body resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(view.ID, body.ID)
		s.Equal(view.Reference, body.Reference)
		s.Equal("pending", body.Status)
		httptest.AssertHeaders(s.T(), rec, map[string]string{api.HeaderIdempotentReplayed: "false"})
	})

	s.Run("success: replay returns 200 OK with the replay header", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), s.actor, reqBody.ToInput(), "key-1").
			Return(&commands.CreateBookingResult{Booking: view, IsReplayed: true}, nil).Times(1)

		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token", key)

		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
		httptest.AssertHeaders(s.T(), rec, map[string]string{api.HeaderIdempotentReplayed: "true"})
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := []testCaseBooking{
			{name: "guests boundary OK (1)", mutate: testutil.Field("guests", 1), expectCode: http.StatusCreated},
			{name: "guests invalid (0)", mutate: testutil.Field("guests", 0), expectCode: http.StatusBadRequest},
			{name: "rooms invalid (0)", mutate: testutil.Field("rooms", 0), expectCode: http.StatusBadRequest},
			{name: "malformed check-in", mutate: testutil.Field("check_in_date", "07/01/2025"), expectCode: http.StatusBadRequest},
			{name: "malformed email", mutate: testutil.Field("guest_email", "not-an-email"), expectCode: http.StatusBadRequest},
			{name: "guest name too long", mutate: testutil.Field("guest_name", strings.Repeat("a", 201)), expectCode: http.StatusBadRequest},
			{name: "missing field: hotel_id", mutate: testutil.Field("hotel_id", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: check_out_date", mutate: testutil.Field("check_out_date", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: guest_name", mutate: testutil.Field("guest_name", nil), expectCode: http.StatusBadRequest},
		}

		for _, tc := range cases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				if tc.expectCode == http.StatusCreated {
					s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
						Return(&commands.CreateBookingResult{Booking: view}, nil).Times(1)
				}
				rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token", key)
				if tc.expectCode == http.StatusCreated {
					httptest.AssertSuccessResponse(s.T(), rec, tc.expectCode, nil)
				} else {
					httptest.AssertErrorCode(s.T(), rec, tc.expectCode, httperr.CodeValidationFailed)
				}
			})
		}
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorCode(s.T(), rec, http.StatusUnauthorized, httperr.CodeUnauthorized)
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedCode   string
		}{
			{"missing idempotency key", errs.Mark(errors.New("idempotency key is required"), errs.ErrIdempotencyKeyRequired), http.StatusBadRequest, httperr.CodeIdempotencyKeyRequired},
			{"key reused with a different body", errs.Mark(errors.New("key reused"), errs.ErrIdempotencyKeyReused), http.StatusUnprocessableEntity, httperr.CodeIdempotencyKeyReused},
			{"key in flight", errs.Mark(errors.New("in progress"), errs.ErrIdempotencyInProgress), http.StatusConflict, httperr.CodeIdempotencyInProgress},
			{"sold out", errs.Mark(errors.New("no rooms"), errs.ErrNotAvailable), http.StatusConflict, httperr.CodeNotAvailable},
			{"bad date range", errs.Mark(errors.New("check-out before check-in"), errs.ErrInvalidDateRange), http.StatusBadRequest, httperr.CodeInvalidDateRange},
			{"unknown hotel", errs.Mark(errors.New("hotel not found"), errs.ErrNotFound), http.StatusNotFound, httperr.CodeNotFound},
			{"store down", errs.Mark(errors.New("conn refused"), errs.ErrPersistenceFailure), http.StatusServiceUnavailable, httperr.CodePersistenceFailure},
			{"unclassified", errors.New("boom"), http.StatusInternalServerError, httperr.CodeInternal},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token", key)
				httptest.AssertErrorCode(s.T(), rec, tc.expectedStatus, tc.expectedCode)
			})
		}
	})

	s.Run("error: server failures hide the cause", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errors.New("pq: relation bookings does not exist")).Times(1)

		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token", key)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
		s.NotContains(rec.Body.String(), "relation bookings")
	})
}

// ================================================================================
// TestList
// ================================================================================

func (s *BookingHandlerTestSuite) TestList() {
	b := builder.NewBookingBuilder()
	views := []*queries.BookingView{
		b.BuildView(booking.StatusConfirmed, booking.PaymentPaid),
		b.BuildView(booking.StatusPending, booking.PaymentPending),
	}
	next := &queries.Cursor{After: "next-page"}

	s.Run("success: lists own bookings with cursor", func() {
		s.mockQueries.EXPECT().ListByUser(gomock.Any(), s.actor, s.actor.UserID, (*queries.Cursor)(nil), 0).
			Return(views, next, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings", nil, "bearer-token")

		var body resdto.BookingListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body.Items, 2)
		s.Equal("next-page", body.NextCursor)
	})

	s.Run("success: passes user_id, cursor and limit through", func() {
		other := uuid.New()
		s.mockQueries.EXPECT().ListByUser(gomock.Any(), s.actor, other, &queries.Cursor{After: "abc"}, 5).
			Return(nil, nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings?after=abc&limit=5&user_id="+other.String(), nil, "bearer-token")

		var body resdto.BookingListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Empty(body.Items)
		s.Empty(body.NextCursor)
	})

	s.Run("error: 400 on limit out of range", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings?limit=201", nil, "bearer-token")
		httptest.AssertErrorCode(s.T(), rec, http.StatusBadRequest, httperr.CodeValidationFailed)
	})

	s.Run("error: 403 when listing another user's bookings without staff role", func() {
		s.mockQueries.EXPECT().ListByUser(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, nil, errs.Mark(errors.New("access denied"), errs.ErrForbidden)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings?user_id="+uuid.NewString(), nil, "bearer-token")
		httptest.AssertErrorCode(s.T(), rec, http.StatusForbidden, httperr.CodeForbidden)
	})
}

// ================================================================================
// TestGet
// ================================================================================

func (s *BookingHandlerTestSuite) TestGet() {
	view := builder.NewBookingBuilder().BuildView(booking.StatusConfirmed, booking.PaymentPaid)

	s.Run("success: returns the booking", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.actor, view.ID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+view.ID.String(), nil, "bearer-token")

		var body resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(view.ID, body.ID)
		s.Equal("paid", body.PaymentStatus)
	})

	s.Run("error: 400 on malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/not-a-uuid", nil, "bearer-token")
		httptest.AssertErrorCode(s.T(), rec, http.StatusBadRequest, httperr.CodeValidationFailed)
	})

	s.Run("error: 404 when not found", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, shared.NotFound(queries.ErrBookingNotFound)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+uuid.NewString(), nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "booking not found")
	})
}

// ================================================================================
// TestCancel
// ================================================================================

func (s *BookingHandlerTestSuite) TestCancel() {
	view := builder.NewBookingBuilder().BuildView(booking.StatusCancelled, booking.PaymentPending)
	url := "/bookings/" + view.ID.String() + "/cancel"

	s.Run("success: with reason", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), s.actor, view.ID, "plans changed").Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"reason": "plans changed"}, "bearer-token")

		var body resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("cancelled", body.Status)
	})

	s.Run("success: without a body", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), s.actor, view.ID, "").Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 409 when the booking is terminal", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(booking.ErrInvalidTransition, errs.ErrInvalidTransition)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		httptest.AssertErrorCode(s.T(), rec, http.StatusConflict, httperr.CodeInvalidTransition)
	})
}

// ================================================================================
// TestModify
// ================================================================================

func (s *BookingHandlerTestSuite) TestModify() {
	view := builder.NewBookingBuilder().WithRooms(2).BuildView(booking.StatusConfirmed, booking.PaymentPaid)
	url := "/bookings/" + view.ID.String() + "/modifications"
	mod := &queries.ModificationView{
		ID:        uuid.New(),
		BookingID: view.ID,
		Type:      string(booking.ModificationRoomCount),
		Old:       queries.SnapshotView{Rooms: 1, TotalCents: 45000},
		New:       queries.SnapshotView{Rooms: 2, TotalCents: 90000},
		Status:    booking.ModificationStatusApproved,
		ActorID:   s.actor.UserID,
	}

	s.Run("success: returns booking and modification record", func() {
		rooms := 2
		s.mockCommands.EXPECT().Modify(gomock.Any(), s.actor, view.ID, commands.ModifyBookingInput{Type: "room_count", Rooms: &rooms}).
			Return(&commands.ModifyBookingResult{Booking: view, Modification: mod}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"modification_type": "room_count", "rooms": 2}, "bearer-token")

		var body resdto.ModifyBookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(2, body.Booking.Rooms)
		s.Equal(int64(90000), body.Modification.New.TotalCents)
		s.Equal(1, body.Modification.Old.Rooms)
	})

	s.Run("error: 400 on unknown modification type", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"modification_type": "upgrade"}, "bearer-token")
		httptest.AssertErrorCode(s.T(), rec, http.StatusBadRequest, httperr.CodeValidationFailed)
	})

	s.Run("error: 409 when new dates are sold out", func() {
		s.mockCommands.EXPECT().Modify(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(errors.New("no rooms"), errs.ErrNotAvailable)).Times(1)

		body := map[string]any{"modification_type": "date_change", "check_in_date": "2025-08-01", "check_out_date": "2025-08-03"}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "bearer-token")
		httptest.AssertErrorCode(s.T(), rec, http.StatusConflict, httperr.CodeNotAvailable)
	})
}

// ================================================================================
// TestReads
// ================================================================================

func (s *BookingHandlerTestSuite) TestListModificationsAndHistory() {
	id := uuid.New()
	from := "pending"

	s.Run("success: modifications", func() {
		s.mockQueries.EXPECT().ListModifications(gomock.Any(), s.actor, id).
			Return([]*queries.ModificationView{{ID: uuid.New(), BookingID: id, Type: "guest_count"}}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+id.String()+"/modifications", nil, "bearer-token")

		var body []resdto.ModificationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body, 1)
		s.Equal("guest_count", body[0].Type)
	})

	s.Run("success: history", func() {
		s.mockQueries.EXPECT().ListStatusHistory(gomock.Any(), s.actor, id).
			Return([]*queries.StatusChangeView{{To: "pending"}, {From: &from, To: "confirmed"}}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+id.String()+"/history", nil, "bearer-token")

		var body []resdto.StatusChangeResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body, 2)
		s.Nil(body[0].From)
		s.Equal("confirmed", body[1].To)
	})
}

// ================================================================================
// TestStaffTransitions
// ================================================================================

func (s *BookingHandlerTestSuite) TestApplyPaymentOutcome() {
	view := builder.NewBookingBuilder().BuildView(booking.StatusConfirmed, booking.PaymentPaid)
	url := "/bookings/" + view.ID.String() + "/payment-outcome"

	s.Run("success: paid confirms", func() {
		s.mockCommands.EXPECT().ApplyPaymentOutcome(gomock.Any(), s.actor, view.ID, "paid").Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"outcome": "paid"}, "bearer-token")

		var body resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("confirmed", body.Status)
	})

	s.Run("error: 400 on unknown outcome", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"outcome": "refunded"}, "bearer-token")
		httptest.AssertErrorCode(s.T(), rec, http.StatusBadRequest, httperr.CodeValidationFailed)
	})

	s.Run("error: 403 for guests", func() {
		s.mockCommands.EXPECT().ApplyPaymentOutcome(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(errors.New("staff only"), errs.ErrForbidden)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"outcome": "failed"}, "bearer-token")
		httptest.AssertErrorCode(s.T(), rec, http.StatusForbidden, httperr.CodeForbidden)
	})
}

func (s *BookingHandlerTestSuite) TestCompleteAndMarkRefunded() {
	completed := builder.NewBookingBuilder().BuildView(booking.StatusCompleted, booking.PaymentPaid)
	refunded := builder.NewBookingBuilder().BuildView(booking.StatusCancelled, booking.PaymentRefunded)

	s.Run("success: complete", func() {
		s.mockCommands.EXPECT().Complete(gomock.Any(), s.actor, completed.ID).Return(completed, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings/"+completed.ID.String()+"/complete", nil, "bearer-token")

		var body resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("completed", body.Status)
	})

	s.Run("success: mark refunded", func() {
		s.mockCommands.EXPECT().MarkRefunded(gomock.Any(), s.actor, refunded.ID).Return(refunded, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings/"+refunded.ID.String()+"/refunded", nil, "bearer-token")

		var body resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("refunded", body.PaymentStatus)
	})

	s.Run("error: 409 when nothing was approved", func() {
		s.mockCommands.EXPECT().MarkRefunded(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(errors.New("no approved refund"), errs.ErrInvalidTransition)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings/"+uuid.NewString()+"/refunded", nil, "bearer-token")
		httptest.AssertErrorCode(s.T(), rec, http.StatusConflict, httperr.CodeInvalidTransition)
	})
}
