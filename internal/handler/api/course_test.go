//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"drivebook/internal/handler/api"
	resdto "drivebook/internal/handler/dto/response"
	"drivebook/internal/handler/middleware"
	"drivebook/internal/pkg/errs"
	"drivebook/internal/pkg/i18n"
	"drivebook/internal/usecase/queries"
	"drivebook/tests/common/httptest"
	queriesmock "drivebook/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CourseHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockCourseQueries
	handler     *api.CourseHandler
}

func (s *CourseHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.router.Use(middleware.Locale())

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockCourseQueries(s.mockCtrl)
	s.handler = api.NewCourseHandler(s.mockQueries)

	s.router.GET("/courses", s.handler.ListCourses)
	s.router.GET("/courses/:id", s.handler.GetCourse)
}

func (s *CourseHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCourseHandlerSuite(t *testing.T) {
	suite.Run(t, new(CourseHandlerTestSuite))
}

func (s *CourseHandlerTestSuite) TestListCourses() {
	s.Run("success: defaults to english", func() {
		s.mockQueries.EXPECT().ListCourses(gomock.Any(), i18n.LangEN).
			Return([]queries.CourseSummary{
				{ID: uuid.New(), Title: "Two Wheeler Basics", AvailableDates: []string{"2024-06-01"}},
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/courses", nil, "")

		var response []resdto.CourseSummaryResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 1)
		s.Equal("Two Wheeler Basics", response[0].Title)
	})

	s.Run("success: lang query selects tamil", func() {
		s.mockQueries.EXPECT().ListCourses(gomock.Any(), i18n.LangTA).
			Return([]queries.CourseSummary{
				{ID: uuid.New(), Title: "இரு சக்கர அடிப்படைகள்"},
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/courses?lang=ta", nil, "")

		var response []resdto.CourseSummaryResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("இரு சக்கர அடிப்படைகள்", response[0].Title)
	})
}

func (s *CourseHandlerTestSuite) TestGetCourse() {
	courseID := uuid.New()

	s.Run("success: returns the booking page view", func() {
		s.mockQueries.EXPECT().GetCourse(gomock.Any(), courseID, i18n.LangEN).
			Return(&queries.CourseView{
				ID:             courseID,
				Title:          "Two Wheeler Basics",
				PricePaise:     450000,
				AvailableDates: []string{"2024-06-01"},
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/courses/"+courseID.String(), nil, "")

		var response resdto.CourseResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(courseID, response.ID)
		s.Equal(int64(450000), response.PricePaise)
	})

	s.Run("error: 404 for an unknown course", func() {
		s.mockQueries.EXPECT().GetCourse(gomock.Any(), courseID, i18n.LangEN).
			Return(nil, errs.ErrCourseNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/courses/"+courseID.String(), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Course not found")
	})

	s.Run("error: 400 for a malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/courses/not-a-uuid", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid course ID")
	})
}
