package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type BookingFilter struct {
	CourseID        *uuid.UUID
	PaymentVerified *bool
}

type BookingView struct {
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

type BookingReadStore interface {
	List(ctx context.Context, filter BookingFilter) ([]BookingView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
}

//go:generate mockgen -destination=../../../tests/mock/queries/booking_mock.go -package=queriesmock drivebook/internal/usecase/queries BookingQueries
type BookingQueries interface {
	ListBookings(ctx context.Context, filter BookingFilter) ([]BookingView, error)
	GetBooking(ctx context.Context, id uuid.UUID) (*BookingView, error)
}

type bookingQueriesImpl struct {
	store BookingReadStore
}

func NewBookingQueries(store BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{store: store}
}

func (q *bookingQueriesImpl) ListBookings(ctx context.Context, filter BookingFilter) ([]BookingView, error) {
	return q.store.List(ctx, filter)
}

func (q *bookingQueriesImpl) GetBooking(ctx context.Context, id uuid.UUID) (*BookingView, error) {
	return q.store.FindByID(ctx, id)
}
