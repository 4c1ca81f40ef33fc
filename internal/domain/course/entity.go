package course

import (
	"errors"

	"drivebook/internal/domain/form"
	"drivebook/internal/pkg/i18n"

	"github.com/google/uuid"
)

var (
	ErrSlotNotFound      = errors.New("slot not found in course")
	ErrSlotAlreadyBooked = errors.New("slot is already booked")
)

// SlotHold records who holds a booked slot. A slot moves from nil to a
// non-nil hold exactly once, only through the booking transaction.
type SlotHold struct {
	Name      string    `json:"name"`
	BookingID uuid.UUID `json:"bookingId"`
}

// Slot is a bookable date/time window belonging to one course. Booked slots
// are never deleted; they stay attached as historical record until the
// whole course is removed.
type Slot struct {
	ID        uuid.UUID `json:"id"`
	Date      string    `json:"date"`      // 2006-01-02
	StartTime string    `json:"startTime"` // 15:04
	EndTime   string    `json:"endTime"`   // 15:04
	BookedBy  *SlotHold `json:"bookedBy"`
}

func (s Slot) IsBooked() bool {
	return s.BookedBy != nil
}

// Course is the aggregate root owning its registration form and slot list.
// Nothing mutates Slots except the booking transaction and admin slot
// management, both of which go through the course document store.
type Course struct {
	ID               uuid.UUID             `json:"id"`
	Title            i18n.Text             `json:"title"`
	Description      i18n.Text             `json:"description"`
	PricePaise       int64                 `json:"pricePaise"`
	RegistrationForm form.RegistrationForm `json:"registrationForm"`
	Slots            []Slot                `json:"slots"`
}

func (c *Course) SlotByID(id uuid.UUID) (int, *Slot) {
	for i := range c.Slots {
		if c.Slots[i].ID == id {
			return i, &c.Slots[i]
		}
	}
	return -1, nil
}

// Hold marks the slot as booked. It is the only mutation path for a slot's
// hold and refuses to overwrite an existing one.
func (c *Course) Hold(slotID uuid.UUID, hold SlotHold) error {
	idx, slot := c.SlotByID(slotID)
	if slot == nil {
		return ErrSlotNotFound
	}
	if slot.IsBooked() {
		return ErrSlotAlreadyBooked
	}
	c.Slots[idx].BookedBy = &hold
	return nil
}

func (c *Course) AddSlots(slots []Slot) {
	c.Slots = append(c.Slots, slots...)
}
