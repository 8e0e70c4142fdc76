//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"meet-scheduler/internal/domain/request"
	"meet-scheduler/internal/handler/api"
	resdto "meet-scheduler/internal/handler/dto/response"
	"meet-scheduler/internal/usecase/commands"
	"meet-scheduler/internal/usecase/queries"
	"meet-scheduler/tests/common/httptest"
	commandsmock "meet-scheduler/tests/mock/commands"
	queriesmock "meet-scheduler/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AdminHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockSchedulingCommands
	mockQueries  *queriesmock.MockSchedulingQueries
	handler      *api.AdminHandler
}

func (s *AdminHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockSchedulingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockSchedulingQueries(s.mockCtrl)
	s.handler = api.NewAdminHandler(s.mockCommands, s.mockQueries)

	s.router.POST("/api/admin/approve", s.handler.Approve)
	s.router.POST("/api/admin/deny", s.handler.Deny)
	s.router.GET("/api/admin/request", s.handler.GetRequest)
}

func (s *AdminHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAdminHandlerSuite(t *testing.T) {
	suite.Run(t, new(AdminHandlerTestSuite))
}

// ================================================================================
// TestApprove
// ================================================================================

func (s *AdminHandlerTestSuite) TestApprove() {
	url := "/api/admin/approve"
	reqBody := map[string]string{"token": "review-token"}

	s.Run("success: returns the created booking", func() {
		view := &queries.BookingView{
			ID:                "req-123",
			CancellationToken: "cancel-token",
			Status:            "approved",
		}
		s.mockCommands.EXPECT().Approve(gomock.Any(), gomock.Any()).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)

		var body resdto.ApproveResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.True(body.Success)
		s.Require().NotNil(body.Booking)
		s.Equal("cancel-token", body.Booking.CancellationToken)
	})

	s.Run("error: 400 when token missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]string{})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Token is required")
	})

	s.Run("error: 404 for an unknown token", func() {
		s.mockCommands.EXPECT().Approve(gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrRequestNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Request not found")
	})

	s.Run("error: 409 when the request was already decided", func() {
		s.mockCommands.EXPECT().Approve(gomock.Any(), gomock.Any()).
			Return(nil, &request.TerminalStateError{Status: request.StatusDenied}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "denied")
	})

	s.Run("error: reschedule validation and conflicts map to statuses", func() {
		cases := []struct {
			name           string
			commandsError  error
			expectedStatus int
		}{
			{"malformed new date", commands.ErrInvalidDate, http.StatusBadRequest},
			{"new slot outside window", commands.ErrOutsideDailyWindow, http.StatusBadRequest},
			{"new slot in blackout", commands.ErrBlackoutOverlap, http.StatusBadRequest},
			{"slot conflict", commands.ErrSlotConflict, http.StatusConflict},
			{"buffer conflict", commands.ErrBufferConflict, http.StatusConflict},
			{"storage failure", commands.ErrStorageOperationFailed, http.StatusInternalServerError},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Approve(gomock.Any(), gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, "")
			})
		}
	})
}

// ================================================================================
// TestDeny
// ================================================================================

func (s *AdminHandlerTestSuite) TestDeny() {
	url := "/api/admin/deny"
	reqBody := map[string]string{"token": "review-token", "reason": "Out of office that week"}

	s.Run("success: denies the request", func() {
		s.mockCommands.EXPECT().Deny(gomock.Any(), gomock.Any()).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)

		var body resdto.SuccessResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.True(body.Success)
	})

	s.Run("error: 400 when token missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]string{})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Token is required")
	})

	s.Run("error: 404 for an unknown token", func() {
		s.mockCommands.EXPECT().Deny(gomock.Any(), gomock.Any()).
			Return(commands.ErrRequestNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Request not found")
	})

	s.Run("error: 409 when already approved", func() {
		s.mockCommands.EXPECT().Deny(gomock.Any(), gomock.Any()).
			Return(&request.TerminalStateError{Status: request.StatusApproved}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "approved")
	})
}

// ================================================================================
// TestGetRequest
// ================================================================================

func (s *AdminHandlerTestSuite) TestGetRequest() {
	s.Run("success: returns the request view", func() {
		view := &queries.RequestView{
			ID:            "req-123",
			Token:         "review-token",
			Name:          "Ada Lovelace",
			Status:        "pending",
			RequestedDate: "2026-03-09",
			RequestedTime: "09:00",
			CreatedAt:     time.Date(2026, 2, 20, 12, 0, 0, 0, time.UTC),
		}
		s.mockQueries.EXPECT().RequestByToken(gomock.Any(), "review-token").
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/admin/request?token=review-token", nil)

		var body queries.RequestView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("req-123", body.ID)
		s.Equal("pending", body.Status)
	})

	s.Run("error: 400 without a token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/admin/request", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Token is required")
	})

	s.Run("error: 404 for an unknown token", func() {
		s.mockQueries.EXPECT().RequestByToken(gomock.Any(), "nope").
			Return(nil, queries.ErrRequestNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/admin/request?token=nope", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Request not found")
	})
}
