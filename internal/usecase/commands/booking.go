package commands

import (
	"context"
	"log/slog"

	"drivebook/internal/domain/booking"
	"drivebook/internal/domain/course"
	"drivebook/internal/pkg/clock"
	"drivebook/internal/pkg/errs"
	"drivebook/internal/pkg/i18n"

	"github.com/google/uuid"
)

type BookSlotParams struct {
	CourseID uuid.UUID
	SlotID   uuid.UUID
	// UserID is nil for guest bookings.
	UserID        *uuid.UUID
	FormData      map[string]string
	TransactionID string
}

//go:generate mockgen -destination=../../../tests/mock/commands/booking_mock.go -package=commandsmock drivebook/internal/usecase/commands BookingCommands
type BookingCommands interface {
	// BookSlot atomically reserves one slot: it reads the course inside the
	// transaction boundary, refuses booked or missing slots, and commits the
	// booking record together with the updated slot list. Of N concurrent
	// calls on the same slot exactly one succeeds; the rest observe
	// errs.ErrSlotAlreadyBooked.
	BookSlot(ctx context.Context, params BookSlotParams) (uuid.UUID, error)
	// VerifyBookingPayment flips the booking's payment-verified flag.
	// Idempotent: verifying an already-verified booking is a no-op.
	VerifyBookingPayment(ctx context.Context, bookingID uuid.UUID) error
}

type bookingCommandsImpl struct {
	uow      UnitOfWork
	cache    CourseCache
	services *booking.Services
}

func NewBookingCommands(uow UnitOfWork, cache CourseCache, clk clock.Clock) BookingCommands {
	return &bookingCommandsImpl{
		uow:      uow,
		cache:    cache,
		services: &booking.Services{Clock: clk},
	}
}

func (u *bookingCommandsImpl) BookSlot(ctx context.Context, params BookSlotParams) (uuid.UUID, error) {
	if params.TransactionID == "" {
		return uuid.Nil, errs.ErrPaymentVerificationFailed
	}

	var bookingID uuid.UUID
	err := u.uow.Within(ctx, func(ctx context.Context, tx Tx) error {
		doc, err := tx.Courses().FindByID(ctx, params.CourseID)
		if err != nil {
			return err
		}
		c := doc.Course

		_, slot := c.SlotByID(params.SlotID)
		if slot == nil {
			return errs.ErrSlotNotFound
		}
		if slot.IsBooked() {
			return errs.ErrSlotAlreadyBooked
		}

		record, err := booking.NewBooking(
			u.services,
			params.UserID,
			c.ID,
			i18n.Resolve(c.Title, i18n.LangEN),
			*slot,
			params.FormData,
			params.TransactionID,
		)
		if err != nil {
			return errs.Mark(err, errs.ErrDomainValidation)
		}

		if err := c.Hold(params.SlotID, course.SlotHold{
			Name:      record.HolderName(),
			BookingID: record.ID(),
		}); err != nil {
			return errs.Wrap(err, "failed to hold slot")
		}

		if err := tx.Bookings().Create(ctx, record); err != nil {
			return err
		}
		if err := tx.Courses().UpdateWithVersion(ctx, &c, doc.Version); err != nil {
			return err
		}

		bookingID = record.ID()
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}

	u.invalidate(ctx, params.CourseID)
	return bookingID, nil
}

func (u *bookingCommandsImpl) VerifyBookingPayment(ctx context.Context, bookingID uuid.UUID) error {
	return u.uow.Within(ctx, func(ctx context.Context, tx Tx) error {
		record, err := tx.Bookings().FindByID(ctx, bookingID)
		if err != nil {
			return err
		}
		if record.PaymentVerified() {
			return nil
		}
		return tx.Bookings().SetPaymentVerified(ctx, bookingID)
	})
}

func (u *bookingCommandsImpl) invalidate(ctx context.Context, courseID uuid.UUID) {
	if u.cache == nil {
		return
	}
	if err := u.cache.Invalidate(ctx, courseID); err != nil {
		slog.Warn("failed to invalidate course cache", "course_id", courseID, "error", err)
	}
}
