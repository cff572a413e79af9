//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"hotel-booking-core/internal/domain/group"
	"hotel-booking-core/internal/domain/user"
	"hotel-booking-core/internal/handler/api"
	resdto "hotel-booking-core/internal/handler/dto/response"
	"hotel-booking-core/internal/handler/httperr"
	"hotel-booking-core/internal/handler/middleware"
	"hotel-booking-core/internal/pkg/errs"
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

type GroupHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockGroupCommands
	mockQueries  *queriesmock.MockGroupQueries
	handler      *api.GroupHandler
	actor        shared.Actor
}

func (s *GroupHandlerTestSuite) SetupSuite() {
	s.Require().NoError(middleware.RegisterValidators())
}

func (s *GroupHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockGroupCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockGroupQueries(s.mockCtrl)
	s.handler = api.NewGroupHandler(s.mockCommands, s.mockQueries)
	s.actor = shared.Actor{UserID: uuid.New(), Role: user.RoleGuest}

	auth := fakeAuth(&s.actor)
	s.router.POST("/group-bookings/quote", s.handler.Quote)
	s.router.POST("/group-bookings", auth, s.handler.Submit)
	s.router.GET("/group-bookings", auth, s.handler.List)
	s.router.GET("/group-bookings/:id", auth, s.handler.Get)
	s.router.PATCH("/group-bookings/:id/status", auth, s.handler.UpdateStatus)
}

func (s *GroupHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestGroupHandlerSuite(t *testing.T) {
	suite.Run(t, new(GroupHandlerTestSuite))
}

// ================================================================================
// TestQuote
// ================================================================================

func (s *GroupHandlerTestSuite) TestQuote() {
	g := builder.NewGroupBuilder()
	reqBody := g.BuildQuoteRequestDTO()
	in, err := reqBody.ToInput()
	s.Require().NoError(err)

	quote := &queries.GroupQuoteView{
		HotelID:             g.HotelID,
		GroupSize:           g.Size,
		Category:            g.Category,
		Nights:              3,
		RoomsRequired:       g.RoomsRequired,
		PricePerNightCents:  15000,
		BasePriceCents:      540000,
		DiscountPercent:     15,
		DiscountAmountCents: 81000,
		RoomsTotalCents:     459000,
		Services:            queries.AdditionalServicesView{MeetingRoomCents: 15000, TotalCents: 15000},
		GrandTotalCents:     474000,
		ValidUntil:          builder.BaseTime.Add(7 * 24 * time.Hour),
	}

	s.Run("success: quote needs no actor", func() {
		s.mockQueries.EXPECT().Quote(gomock.Any(), in).Return(quote, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/group-bookings/quote", reqBody, "")

		var body resdto.GroupQuoteResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(int64(474000), body.GrandTotalCents)
		s.Equal(int64(15), body.DiscountPercent)
		s.Equal(int64(15000), body.Services.MeetingRoomCents)
	})

	s.Run("error: 400 on unknown category", func() {
		body := testutil.DtoMap(s.T(), reqBody, testutil.Field("category", "festival"))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/group-bookings/quote", body, "")
		httptest.AssertErrorCode(s.T(), rec, http.StatusBadRequest, httperr.CodeValidationFailed)
	})
}

// ================================================================================
// TestSubmit
// ================================================================================

func (s *GroupHandlerTestSuite) TestSubmit() {
	g := builder.NewGroupBuilder()
	g.OrganizerID = s.actor.UserID
	reqBody := g.BuildSubmitRequestDTO()
	view := g.BuildView(group.StatusPending)

	s.Run("success: returns 201 Created", func() {
		s.mockCommands.EXPECT().Submit(gomock.Any(), s.actor, reqBody.ToInput()).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/group-bookings", reqBody, "bearer-token")

		var body resdto.GroupRequestResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(view.ID, body.ID)
		s.Equal("pending", body.Status)
	})

	s.Run("error: 400 on validation errors", func() {
		for _, mutate := range []func(map[string]any){
			testutil.Field("group_size", 0),
			testutil.Field("group_name", nil),
			testutil.Field("rooms_required", nil),
			testutil.Field("estimated_budget_cents", -1),
			testutil.Field("check_in_date", "tomorrow"),
		} {
			body := testutil.DtoMap(s.T(), reqBody, mutate)
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/group-bookings", body, "bearer-token")
			httptest.AssertErrorCode(s.T(), rec, http.StatusBadRequest, httperr.CodeValidationFailed)
		}
	})

	s.Run("error: 401 without token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/group-bookings", reqBody, "")
		httptest.AssertErrorCode(s.T(), rec, http.StatusUnauthorized, httperr.CodeUnauthorized)
	})
}

// ================================================================================
// TestReads
// ================================================================================

func (s *GroupHandlerTestSuite) TestList() {
	views := []*queries.GroupRequestView{builder.NewGroupBuilder().BuildView(group.StatusQuoted)}
	s.mockQueries.EXPECT().List(gomock.Any(), s.actor, &queries.Cursor{After: "c1"}, 10).
		Return(views, nil, nil).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/group-bookings?after=c1&limit=10", nil, "bearer-token")

	var body resdto.GroupRequestListResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
	s.Len(body.Items, 1)
	s.Empty(body.NextCursor)
}

func (s *GroupHandlerTestSuite) TestGet() {
	s.Run("success", func() {
		view := builder.NewGroupBuilder().BuildView(group.StatusPending)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.actor, view.ID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/group-bookings/"+view.ID.String(), nil, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 404 for other organizers", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(errors.New("group request not found"), errs.ErrNotFound)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/group-bookings/"+uuid.NewString(), nil, "bearer-token")
		httptest.AssertErrorCode(s.T(), rec, http.StatusNotFound, httperr.CodeNotFound)
	})
}

// ================================================================================
// TestUpdateStatus
// ================================================================================

func (s *GroupHandlerTestSuite) TestUpdateStatus() {
	id := uuid.New()
	url := "/group-bookings/" + id.String() + "/status"
	notes := "quote sent by email"

	s.Run("success", func() {
		view := builder.NewGroupBuilder().BuildView(group.StatusQuoted)
		view.AdminNotes = &notes
		s.mockCommands.EXPECT().UpdateStatus(gomock.Any(), s.actor, id, "quoted", &notes).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"status": "quoted", "admin_notes": notes}, "bearer-token")

		var body resdto.GroupRequestResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("quoted", body.Status)
		s.Equal(notes, *body.AdminNotes)
	})

	s.Run("error: 400 on unknown status", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"status": "archived"}, "bearer-token")
		httptest.AssertErrorCode(s.T(), rec, http.StatusBadRequest, httperr.CodeValidationFailed)
	})

	s.Run("error: 409 on disallowed transition", func() {
		s.mockCommands.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), gomock.Any(), "completed", (*string)(nil)).
			Return(nil, errs.Mark(group.ErrInvalidTransition, errs.ErrInvalidTransition)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"status": "completed"}, "bearer-token")
		httptest.AssertErrorCode(s.T(), rec, http.StatusConflict, httperr.CodeInvalidTransition)
	})

	s.Run("error: 403 for guests", func() {
		s.mockCommands.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(errors.New("staff only"), errs.ErrForbidden)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"status": "cancelled"}, "bearer-token")
		httptest.AssertErrorCode(s.T(), rec, http.StatusForbidden, httperr.CodeForbidden)
	})
}
