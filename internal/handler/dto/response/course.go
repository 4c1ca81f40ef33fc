package response

import (
	"drivebook/internal/domain/form"
	"drivebook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type CourseSummaryResponse struct {
	ID             uuid.UUID `json:"id"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	PricePaise     int64     `json:"pricePaise"`
	AvailableDates []string  `json:"availableDates"`
}

type CourseResponse struct {
	ID             uuid.UUID                     `json:"id"`
	Title          string                        `json:"title"`
	Description    string                        `json:"description"`
	PricePaise     int64                         `json:"pricePaise"`
	Form           form.RegistrationForm         `json:"registrationForm"`
	SlotsByDate    map[string][]queries.SlotView `json:"slotsByDate"`
	AvailableDates []string                      `json:"availableDates"`
}

type CreateCourseResponse struct {
	ID uuid.UUID `json:"id"`
}

func FromCourseSummaries(rms []queries.CourseSummary) ([]CourseSummaryResponse, error) {
	resp := make([]CourseSummaryResponse, 0, len(rms))
	if err := copier.Copy(&resp, &rms); err != nil {
		return nil, err
	}
	return resp, nil
}

func FromCourseView(rm *queries.CourseView) (*CourseResponse, error) {
	var resp CourseResponse
	if err := copier.Copy(&resp, rm); err != nil {
		return nil, err
	}
	return &resp, nil
}
