package api

import (
	"errors"
	"net/http"

	reqdto "drivebook/internal/handler/dto/request"
	resdto "drivebook/internal/handler/dto/response"
	"drivebook/internal/handler/middleware"
	"drivebook/internal/pkg/config"
	"drivebook/internal/pkg/errs"
	"drivebook/internal/pkg/i18n"
	"drivebook/internal/usecase"
	"drivebook/internal/usecase/commands"
	"drivebook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	bookingCommands commands.BookingCommands
	courseQueries   queries.CourseQueries
	gateway         usecase.PaymentGateway
	paymentCfg      config.PaymentConfig
}

func NewBookingHandler(
	bookingCommands commands.BookingCommands,
	courseQueries queries.CourseQueries,
	gateway usecase.PaymentGateway,
	cfg config.Config,
) *BookingHandler {
	return &BookingHandler{
		bookingCommands: bookingCommands,
		courseQueries:   courseQueries,
		gateway:         gateway,
		paymentCfg:      cfg.Payment,
	}
}

// @Summary Create payment order
// @Description Create a gateway order for a course's price ahead of checkout
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body reqdto.CreateOrderRequest true "Order request"
// @Success 201 {object} resdto.OrderResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /orders [post]
func (h *BookingHandler) CreateOrder(c *gin.Context) {
	var req reqdto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.courseQueries.GetCourse(c.Request.Context(), req.CourseID, i18n.LangEN)
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

	order, err := h.gateway.CreateOrder(c.Request.Context(), view.PricePaise)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "Payment gateway unavailable",
		})
		return
	}

	c.JSON(http.StatusCreated, resdto.FromPaymentOrder(order, h.paymentCfg.KeyID))
}

// @Summary Book a slot
// @Description Verify the checkout signature, then atomically reserve the slot and record the booking
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.CreateBookingResponse
// @Failure 400 {object} map[string]string
// @Failure 402 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /bookings [post]
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	// Signature check happens before any storage access; a forged or
	// mismatched attestation never reaches the booking transaction.
	if !h.gateway.VerifySignature(req.Payment.OrderID, req.Payment.PaymentID, req.Payment.Signature) {
		c.JSON(http.StatusPaymentRequired, gin.H{
			"error": "Payment verification failed",
		})
		return
	}

	var userID *uuid.UUID
	if id, ok := middleware.GetUserID(c); ok {
		userID = &id
	}

	bookingID, err := h.bookingCommands.BookSlot(c.Request.Context(), commands.BookSlotParams{
		CourseID:      req.CourseID,
		SlotID:        req.SlotID,
		UserID:        userID,
		FormData:      req.FormData,
		TransactionID: req.Payment.PaymentID,
	})
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrCourseNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Course not found",
			})
		case errors.Is(err, errs.ErrSlotNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Slot not found",
			})
		case errors.Is(err, errs.ErrSlotAlreadyBooked):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Slot is already booked",
			})
		case errors.Is(err, errs.ErrVersionConflict):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Booking request is currently being processed",
			})
		case errors.Is(err, errs.ErrPaymentVerificationFailed):
			c.JSON(http.StatusPaymentRequired, gin.H{
				"error": "Payment verification failed",
			})
		case errors.Is(err, errs.ErrDomainValidation):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Domain validation failed",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.CreateBookingResponse{BookingID: bookingID})
}
