package api

import (
	"errors"
	"net/http"

	resdto "drivebook/internal/handler/dto/response"
	"drivebook/internal/handler/middleware"
	"drivebook/internal/pkg/errs"
	"drivebook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CourseHandler struct {
	courseQueries queries.CourseQueries
}

func NewCourseHandler(courseQueries queries.CourseQueries) *CourseHandler {
	return &CourseHandler{
		courseQueries: courseQueries,
	}
}

// @Summary List courses
// @Description List all courses with localized content and available dates
// @Tags courses
// @Produce json
// @Param lang query string false "Language (en or ta)"
// @Success 200 {array} resdto.CourseSummaryResponse
// @Router /courses [get]
func (h *CourseHandler) ListCourses(c *gin.Context) {
	lang := middleware.GetLanguage(c)

	summaries, err := h.courseQueries.ListCourses(c.Request.Context(), lang)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	resp, err := resdto.FromCourseSummaries(summaries)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Get course
// @Description Get a course's booking page payload: localized content, registration form, slot availability
// @Tags courses
// @Produce json
// @Param id path string true "Course ID"
// @Param lang query string false "Language (en or ta)"
// @Success 200 {object} resdto.CourseResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /courses/{id} [get]
func (h *CourseHandler) GetCourse(c *gin.Context) {
	courseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid course ID",
		})
		return
	}

	lang := middleware.GetLanguage(c)

	view, err := h.courseQueries.GetCourse(c.Request.Context(), courseID, lang)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrCourseNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Course not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	resp, err := resdto.FromCourseView(view)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resp)
}
