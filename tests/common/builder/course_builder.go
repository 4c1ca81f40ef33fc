//go:build unit || e2e

package builder

import (
	"drivebook/internal/domain/course"
	"drivebook/internal/pkg/i18n"

	"github.com/google/uuid"
)

type CourseBuilder struct {
	ID          uuid.UUID
	Title       i18n.Text
	Description i18n.Text
	PricePaise  int64
	Form        *FormBuilder
	Slots       []course.Slot
}

func NewCourseBuilder() *CourseBuilder {
	return &CourseBuilder{
		ID:          uuid.New(),
		Title:       i18n.NewText("Two Wheeler Basics", "இரு சக்கர அடிப்படைகள்"),
		Description: i18n.NewText("Beginner riding course", "தொடக்கநிலை ஓட்டுநர் பயிற்சி"),
		PricePaise:  450000,
		Form:        NewFormBuilder(),
		Slots: []course.Slot{
			{ID: uuid.New(), Date: "2024-06-01", StartTime: "09:00", EndTime: "10:00"},
			{ID: uuid.New(), Date: "2024-06-01", StartTime: "10:00", EndTime: "11:00"},
			{ID: uuid.New(), Date: "2024-06-02", StartTime: "09:00", EndTime: "10:00"},
		},
	}
}

func (b *CourseBuilder) With(mutate func(*CourseBuilder)) *CourseBuilder {
	mutate(b)
	return b
}

func (b *CourseBuilder) WithBookedSlot(idx int, name string) *CourseBuilder {
	b.Slots[idx].BookedBy = &course.SlotHold{Name: name, BookingID: uuid.New()}
	return b
}

func (b *CourseBuilder) Build() course.Course {
	return course.Course{
		ID:               b.ID,
		Title:            b.Title,
		Description:      b.Description,
		PricePaise:       b.PricePaise,
		RegistrationForm: b.Form.Build(),
		Slots:            b.Slots,
	}
}
