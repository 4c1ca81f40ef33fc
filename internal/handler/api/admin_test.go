//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"drivebook/internal/handler/api"
	reqdto "drivebook/internal/handler/dto/request"
	resdto "drivebook/internal/handler/dto/response"
	"drivebook/internal/pkg/errs"
	"drivebook/internal/usecase/queries"
	"drivebook/tests/common/httptest"
	commandsmock "drivebook/tests/mock/commands"
	queriesmock "drivebook/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AdminHandlerTestSuite struct {
	suite.Suite
	router              *gin.Engine
	mockCtrl            *gomock.Controller
	mockCourseCommands  *commandsmock.MockCourseCommands
	mockBookingCommands *commandsmock.MockBookingCommands
	mockBookingQueries  *queriesmock.MockBookingQueries
	handler             *api.AdminHandler
}

func (s *AdminHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCourseCommands = commandsmock.NewMockCourseCommands(s.mockCtrl)
	s.mockBookingCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockBookingQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.handler = api.NewAdminHandler(s.mockCourseCommands, s.mockBookingCommands, s.mockBookingQueries)

	s.router.POST("/admin/courses", s.handler.CreateCourse)
	s.router.POST("/admin/courses/:id/slots", s.handler.AddSlots)
	s.router.PUT("/admin/courses/:id/form", s.handler.ReplaceForm)
	s.router.GET("/admin/bookings", s.handler.ListBookings)
	s.router.POST("/admin/bookings/:id/verify-payment", s.handler.VerifyBookingPayment)
}

func (s *AdminHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAdminHandlerSuite(t *testing.T) {
	suite.Run(t, new(AdminHandlerTestSuite))
}

func validCourseRequest() reqdto.CreateCourseRequest {
	return reqdto.CreateCourseRequest{
		Title:      reqdto.TextPayload{EN: "Two Wheeler Basics", TA: "இரு சக்கர அடிப்படைகள்"},
		PricePaise: 450000,
		RegistrationForm: reqdto.RegistrationFormPayload{
			Steps: []reqdto.StepPayload{
				{
					Name: reqdto.TextPayload{EN: "Personal Details"},
					Fields: []reqdto.FieldPayload{
						{Type: "text", Label: reqdto.TextPayload{EN: "Full Name"}, Required: true},
					},
				},
			},
		},
	}
}

func (s *AdminHandlerTestSuite) TestCreateCourse() {
	s.Run("success: returns the new course id", func() {
		courseID := uuid.New()
		s.mockCourseCommands.EXPECT().CreateCourse(gomock.Any(), gomock.Any()).
			Return(courseID, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/courses", validCourseRequest(), "")

		var response resdto.CreateCourseResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(courseID, response.ID)
	})

	s.Run("error: 422 for a structurally broken form", func() {
		s.mockCourseCommands.EXPECT().CreateCourse(gomock.Any(), gomock.Any()).
			Return(uuid.Nil, errs.ErrInvalidForm).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/courses", validCourseRequest(), "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "Invalid registration form")
	})

	s.Run("error: 400 when required payload fields are missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/courses", map[string]any{"title": map[string]string{"en": "x"}}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})
}

func (s *AdminHandlerTestSuite) TestAddSlots() {
	courseID := uuid.New()
	reqBody := reqdto.AddSlotsRequest{
		Slots: []reqdto.SlotPayload{{Date: "2024-06-03", StartTime: "09:00", EndTime: "10:00"}},
	}

	s.Run("success: 204", func() {
		s.mockCourseCommands.EXPECT().AddSlots(gomock.Any(), courseID, gomock.Any()).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/courses/"+courseID.String()+"/slots", reqBody, "")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 404 for an unknown course", func() {
		s.mockCourseCommands.EXPECT().AddSlots(gomock.Any(), courseID, gomock.Any()).
			Return(errs.ErrCourseNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/courses/"+courseID.String()+"/slots", reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Course not found")
	})

	s.Run("error: 400 with an empty slot list", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/courses/"+courseID.String()+"/slots", reqdto.AddSlotsRequest{}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})
}

func (s *AdminHandlerTestSuite) TestListBookings() {
	s.Run("success: applies query filters", func() {
		courseID := uuid.New()
		s.mockBookingQueries.EXPECT().ListBookings(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, filter queries.BookingFilter) ([]queries.BookingView, error) {
				s.Require().NotNil(filter.CourseID)
				s.Equal(courseID, *filter.CourseID)
				s.Require().NotNil(filter.PaymentVerified)
				s.False(*filter.PaymentVerified)
				return []queries.BookingView{{ID: uuid.New(), CourseID: courseID}}, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/admin/bookings?course_id="+courseID.String()+"&payment_verified=false", nil, "")

		var response []resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 1)
	})

	s.Run("error: 400 for a bad course filter", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/bookings?course_id=junk", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid course ID")
	})
}

func (s *AdminHandlerTestSuite) TestVerifyBookingPayment() {
	bookingID := uuid.New()

	s.Run("success: 204", func() {
		s.mockBookingCommands.EXPECT().VerifyBookingPayment(gomock.Any(), bookingID).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/bookings/"+bookingID.String()+"/verify-payment", nil, "")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 404 for an unknown booking", func() {
		s.mockBookingCommands.EXPECT().VerifyBookingPayment(gomock.Any(), bookingID).
			Return(errs.ErrBookingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/bookings/"+bookingID.String()+"/verify-payment", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})
}
