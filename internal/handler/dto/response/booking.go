package response

import (
	"time"

	"drivebook/internal/usecase"
	"drivebook/internal/usecase/queries"

	"github.com/google/uuid"
)

type OrderResponse struct {
	OrderID  string `json:"orderId"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	KeyID    string `json:"keyId"`
}

func FromPaymentOrder(order *usecase.PaymentOrder, keyID string) *OrderResponse {
	return &OrderResponse{
		OrderID:  order.ID,
		Amount:   order.Amount,
		Currency: order.Currency,
		KeyID:    keyID,
	}
}

type CreateBookingResponse struct {
	BookingID uuid.UUID `json:"bookingId"`
}

type BookingResponse struct {
	ID              uuid.UUID         `json:"id"`
	UserID          *uuid.UUID        `json:"userId,omitempty"`
	CourseID        uuid.UUID         `json:"courseId"`
	CourseTitle     string            `json:"courseTitle"`
	SlotID          uuid.UUID         `json:"slotId"`
	SlotDate        string            `json:"slotDate"`
	SlotStartTime   string            `json:"slotStartTime"`
	SlotEndTime     string            `json:"slotEndTime"`
	FormData        map[string]string `json:"formData"`
	SubmittedAt     time.Time         `json:"submittedAt"`
	TransactionID   string            `json:"transactionId"`
	PaymentVerified bool              `json:"paymentVerified"`
}

func FromBookingView(rm *queries.BookingView) *BookingResponse {
	return &BookingResponse{
		ID:              rm.ID,
		UserID:          rm.UserID,
		CourseID:        rm.CourseID,
		CourseTitle:     rm.CourseTitle,
		SlotID:          rm.SlotID,
		SlotDate:        rm.SlotDate,
		SlotStartTime:   rm.SlotStartTime,
		SlotEndTime:     rm.SlotEndTime,
		FormData:        rm.FormData,
		SubmittedAt:     rm.SubmittedAt,
		TransactionID:   rm.TransactionID,
		PaymentVerified: rm.PaymentVerified,
	}
}

func FromBookingViews(rms []queries.BookingView) []BookingResponse {
	resp := make([]BookingResponse, 0, len(rms))
	for i := range rms {
		resp = append(resp, *FromBookingView(&rms[i]))
	}
	return resp
}
