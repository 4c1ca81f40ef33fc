//go:build unit || e2e

package builder

import (
	"time"

	"drivebook/internal/domain/booking"
	"drivebook/internal/domain/course"
	"drivebook/internal/pkg/clock"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	UserID        *uuid.UUID
	CourseID      uuid.UUID
	CourseTitle   string
	Slot          course.Slot
	FormData      map[string]string
	TransactionID string
	Now           time.Time
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		CourseID:    uuid.New(),
		CourseTitle: "Two Wheeler Basics",
		Slot: course.Slot{
			ID:        uuid.New(),
			Date:      "2024-06-01",
			StartTime: "09:00",
			EndTime:   "10:00",
		},
		FormData: map[string]string{
			"Full Name": "Anand Kumar",
		},
		TransactionID: "pay_test_001",
		Now:           time.Date(2024, 5, 20, 10, 0, 0, 0, time.UTC),
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) BuildDomain() (*booking.Booking, error) {
	services := &booking.Services{Clock: clock.NewFixedClock(b.Now)}
	return booking.NewBooking(
		services,
		b.UserID,
		b.CourseID,
		b.CourseTitle,
		b.Slot,
		b.FormData,
		b.TransactionID,
	)
}
