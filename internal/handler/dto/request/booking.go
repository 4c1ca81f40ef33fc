package request

import (
	"github.com/google/uuid"
)

type CreateOrderRequest struct {
	CourseID uuid.UUID `json:"course_id" binding:"required"`
}

// PaymentAttestation is the provider's checkout result. The signature is
// verified against the shared key secret before any booking write happens.
type PaymentAttestation struct {
	OrderID   string `json:"order_id" binding:"required"`
	PaymentID string `json:"payment_id" binding:"required"`
	Signature string `json:"signature" binding:"required"`
}

type CreateBookingRequest struct {
	CourseID uuid.UUID          `json:"course_id" binding:"required"`
	SlotID   uuid.UUID          `json:"slot_id" binding:"required"`
	FormData map[string]string  `json:"form_data"`
	Payment  PaymentAttestation `json:"payment" binding:"required"`
}
