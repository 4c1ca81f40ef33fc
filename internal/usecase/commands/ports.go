package commands

import (
	"context"

	"drivebook/internal/domain/booking"
	"drivebook/internal/domain/course"

	"github.com/google/uuid"
)

// CourseDocument is a course read together with the storage version used
// for the compare-and-swap write-back.
type CourseDocument struct {
	Course  course.Course
	Version int64
}

// Tx exposes the repositories bound to one storage transaction. The course
// update and the booking insert either both commit or neither does.
type Tx interface {
	Courses() CourseTxRepository
	Bookings() BookingTxRepository
}

// UnitOfWork runs fn inside the store's atomic transaction primitive.
// Version conflicts and serialization failures rerun fn from scratch with
// bounded retries; fn must therefore be safe to re-execute.
type UnitOfWork interface {
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type CourseTxRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*CourseDocument, error)
	// UpdateWithVersion persists the document only if the stored version
	// still matches; a concurrent write surfaces errs.ErrVersionConflict.
	UpdateWithVersion(ctx context.Context, c *course.Course, expectedVersion int64) error
	Create(ctx context.Context, c *course.Course) error
}

type BookingTxRepository interface {
	Create(ctx context.Context, b *booking.Booking) error
	FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	SetPaymentVerified(ctx context.Context, id uuid.UUID) error
}

// CourseCache invalidates cached course views after a write. Failures are
// logged, never propagated; the cache is read-through.
type CourseCache interface {
	Invalidate(ctx context.Context, courseID uuid.UUID) error
}
