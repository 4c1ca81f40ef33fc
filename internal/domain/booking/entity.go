package booking

import (
	"errors"
	"time"

	"drivebook/internal/domain/course"
	"drivebook/internal/pkg/clock"

	"github.com/google/uuid"
)

var (
	ErrMissingSlot          = errors.New("booking requires a slot")
	ErrMissingTransactionID = errors.New("booking requires a payment transaction id")
	ErrAlreadyVerified      = errors.New("payment already verified")
)

// GuestName is the hold name when the form captured no usable name.
const GuestName = "Guest"

type Services struct {
	Clock clock.Clock
}

// Booking is the persisted record of a completed slot reservation.
// PaymentVerified starts false and is flipped exactly once by an explicit
// admin action.
type Booking struct {
	id              uuid.UUID
	userID          *uuid.UUID
	courseID        uuid.UUID
	courseTitle     string
	slotID          uuid.UUID
	slotDate        string
	slotStartTime   string
	slotEndTime     string
	formData        map[string]string
	submittedAt     time.Time
	transactionID   string
	paymentVerified bool
}

// NewBooking creates the record for one reserved slot. userID is nil for
// guest bookings.
func NewBooking(
	services *Services,
	userID *uuid.UUID,
	courseID uuid.UUID,
	courseTitle string,
	slot course.Slot,
	formData map[string]string,
	transactionID string,
) (*Booking, error) {
	if slot.ID == uuid.Nil {
		return nil, ErrMissingSlot
	}
	if transactionID == "" {
		return nil, ErrMissingTransactionID
	}

	data := make(map[string]string, len(formData))
	for k, v := range formData {
		data[k] = v
	}

	return &Booking{
		id:            uuid.New(),
		userID:        userID,
		courseID:      courseID,
		courseTitle:   courseTitle,
		slotID:        slot.ID,
		slotDate:      slot.Date,
		slotStartTime: slot.StartTime,
		slotEndTime:   slot.EndTime,
		formData:      data,
		submittedAt:   services.Clock.Now(),
		transactionID: transactionID,
	}, nil
}

func ReconstructBooking(
	id uuid.UUID,
	userID *uuid.UUID,
	courseID uuid.UUID,
	courseTitle string,
	slotID uuid.UUID,
	slotDate, slotStartTime, slotEndTime string,
	formData map[string]string,
	submittedAt time.Time,
	transactionID string,
	paymentVerified bool,
) *Booking {
	return &Booking{
		id:              id,
		userID:          userID,
		courseID:        courseID,
		courseTitle:     courseTitle,
		slotID:          slotID,
		slotDate:        slotDate,
		slotStartTime:   slotStartTime,
		slotEndTime:     slotEndTime,
		formData:        formData,
		submittedAt:     submittedAt,
		transactionID:   transactionID,
		paymentVerified: paymentVerified,
	}
}

// HolderName derives the display name written onto the booked slot. The
// literal "Full Name"/"Name" key scan is a compatibility convention carried
// over from the original booking forms.
func (b *Booking) HolderName() string {
	if name := b.formData["Full Name"]; name != "" {
		return name
	}
	if name := b.formData["Name"]; name != "" {
		return name
	}
	return GuestName
}

// VerifyPayment flips the verified flag. Verifying twice is not an error so
// the admin action stays idempotent.
func (b *Booking) VerifyPayment() {
	b.paymentVerified = true
}

func (b *Booking) ID() uuid.UUID              { return b.id }
func (b *Booking) UserID() *uuid.UUID         { return b.userID }
func (b *Booking) CourseID() uuid.UUID        { return b.courseID }
func (b *Booking) CourseTitle() string        { return b.courseTitle }
func (b *Booking) SlotID() uuid.UUID          { return b.slotID }
func (b *Booking) SlotDate() string           { return b.slotDate }
func (b *Booking) SlotStartTime() string      { return b.slotStartTime }
func (b *Booking) SlotEndTime() string        { return b.slotEndTime }
func (b *Booking) FormData() map[string]string { return b.formData }
func (b *Booking) SubmittedAt() time.Time     { return b.submittedAt }
func (b *Booking) TransactionID() string      { return b.transactionID }
func (b *Booking) PaymentVerified() bool      { return b.paymentVerified }
