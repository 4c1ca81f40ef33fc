package api

import (
	"errors"
	"net/http"
	"strconv"

	reqdto "drivebook/internal/handler/dto/request"
	resdto "drivebook/internal/handler/dto/response"
	"drivebook/internal/pkg/errs"
	"drivebook/internal/usecase/commands"
	"drivebook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AdminHandler is the back-office surface: course authoring, slot
// management, form building, and booking oversight. All routes require
// the admin role.
type AdminHandler struct {
	courseCommands  commands.CourseCommands
	bookingCommands commands.BookingCommands
	bookingQueries  queries.BookingQueries
}

func NewAdminHandler(
	courseCommands commands.CourseCommands,
	bookingCommands commands.BookingCommands,
	bookingQueries queries.BookingQueries,
) *AdminHandler {
	return &AdminHandler{
		courseCommands:  courseCommands,
		bookingCommands: bookingCommands,
		bookingQueries:  bookingQueries,
	}
}

// @Summary Create course
// @Description Create a course with bilingual content and a registration form
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateCourseRequest true "Course request"
// @Success 201 {object} resdto.CreateCourseResponse
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /admin/courses [post]
func (h *AdminHandler) CreateCourse(c *gin.Context) {
	var req reqdto.CreateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	courseID, err := h.courseCommands.CreateCourse(c.Request.Context(), req.ToParams())
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrInvalidForm):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Invalid registration form: " + err.Error(),
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.CreateCourseResponse{ID: courseID})
}

// @Summary Add slots
// @Description Append bookable slots to a course
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Course ID"
// @Param request body reqdto.AddSlotsRequest true "Slots request"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/courses/{id}/slots [post]
func (h *AdminHandler) AddSlots(c *gin.Context) {
	courseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid course ID",
		})
		return
	}

	var req reqdto.AddSlotsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.courseCommands.AddSlots(c.Request.Context(), courseID, req.ToParams()); err != nil {
		h.writeCourseError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Replace registration form
// @Description Replace a course's registration form after structural validation
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Course ID"
// @Param request body reqdto.ReplaceFormRequest true "Form request"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /admin/courses/{id}/form [put]
func (h *AdminHandler) ReplaceForm(c *gin.Context) {
	courseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid course ID",
		})
		return
	}

	var req reqdto.ReplaceFormRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.courseCommands.ReplaceForm(c.Request.Context(), courseID, req.RegistrationForm.ToDomain()); err != nil {
		switch {
		case errors.Is(err, errs.ErrInvalidForm):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Invalid registration form: " + err.Error(),
			})
		default:
			h.writeCourseError(c, err)
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary List bookings
// @Description List bookings, optionally filtered by course and payment status
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param course_id query string false "Course ID filter"
// @Param payment_verified query bool false "Payment verification filter"
// @Success 200 {array} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Router /admin/bookings [get]
func (h *AdminHandler) ListBookings(c *gin.Context) {
	var filter queries.BookingFilter

	if raw := c.Query("course_id"); raw != "" {
		courseID, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid course ID",
			})
			return
		}
		filter.CourseID = &courseID
	}

	if raw := c.Query("payment_verified"); raw != "" {
		verified, err := strconv.ParseBool(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid payment_verified filter",
			})
			return
		}
		filter.PaymentVerified = &verified
	}

	views, err := h.bookingQueries.ListBookings(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingViews(views))
}

// @Summary Get booking
// @Description Get a booking by ID
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/bookings/{id} [get]
func (h *AdminHandler) GetBooking(c *gin.Context) {
	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking ID",
		})
		return
	}

	view, err := h.bookingQueries.GetBooking(c.Request.Context(), bookingID)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Booking not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary Verify booking payment
// @Description Mark a booking's payment as verified (idempotent)
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/bookings/{id}/verify-payment [post]
func (h *AdminHandler) VerifyBookingPayment(c *gin.Context) {
	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking ID",
		})
		return
	}

	if err := h.bookingCommands.VerifyBookingPayment(c.Request.Context(), bookingID); err != nil {
		switch {
		case errors.Is(err, errs.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Booking not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *AdminHandler) writeCourseError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrCourseNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Course not found",
		})
	case errors.Is(err, errs.ErrVersionConflict):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Course was modified concurrently, retry",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
