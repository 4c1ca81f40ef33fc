package queries

import (
	"context"
	"log/slog"

	"drivebook/internal/domain/course"
	"drivebook/internal/domain/form"
	"drivebook/internal/pkg/i18n"

	"github.com/google/uuid"
)

type SlotView struct {
	ID        uuid.UUID `json:"id"`
	Date      string    `json:"date"`
	StartTime string    `json:"startTime"`
	EndTime   string    `json:"endTime"`
	Booked    bool      `json:"booked"`
}

type CourseSummary struct {
	ID             uuid.UUID `json:"id"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	PricePaise     int64     `json:"pricePaise"`
	AvailableDates []string  `json:"availableDates"`
}

// CourseView is the localized booking-page payload: resolved content, the
// registration form, and the slot availability index.
type CourseView struct {
	ID             uuid.UUID             `json:"id"`
	Title          string                `json:"title"`
	Description    string                `json:"description"`
	PricePaise     int64                 `json:"pricePaise"`
	Form           form.RegistrationForm `json:"registrationForm"`
	SlotsByDate    map[string][]SlotView `json:"slotsByDate"`
	AvailableDates []string              `json:"availableDates"`
}

type CourseReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*course.Course, error)
	List(ctx context.Context) ([]course.Course, error)
}

// CourseViewCache is a read-through cache over rendered course views. A
// miss returns (nil, nil); failures degrade to the store.
type CourseViewCache interface {
	Get(ctx context.Context, id uuid.UUID, lang i18n.Language) (*CourseView, error)
	Set(ctx context.Context, view *CourseView, lang i18n.Language) error
}

//go:generate mockgen -destination=../../../tests/mock/queries/course_mock.go -package=queriesmock drivebook/internal/usecase/queries CourseQueries
type CourseQueries interface {
	ListCourses(ctx context.Context, lang i18n.Language) ([]CourseSummary, error)
	GetCourse(ctx context.Context, id uuid.UUID, lang i18n.Language) (*CourseView, error)
}

type courseQueriesImpl struct {
	store CourseReadStore
	cache CourseViewCache
}

func NewCourseQueries(store CourseReadStore, cache CourseViewCache) CourseQueries {
	return &courseQueriesImpl{store: store, cache: cache}
}

func (q *courseQueriesImpl) ListCourses(ctx context.Context, lang i18n.Language) ([]CourseSummary, error) {
	courses, err := q.store.List(ctx)
	if err != nil {
		return nil, err
	}

	summaries := make([]CourseSummary, 0, len(courses))
	for _, c := range courses {
		availability := course.IndexSlots(c.Slots)
		summaries = append(summaries, CourseSummary{
			ID:             c.ID,
			Title:          i18n.Resolve(c.Title, lang),
			Description:    i18n.Resolve(c.Description, lang),
			PricePaise:     c.PricePaise,
			AvailableDates: availability.AvailableDates,
		})
	}
	return summaries, nil
}

func (q *courseQueriesImpl) GetCourse(ctx context.Context, id uuid.UUID, lang i18n.Language) (*CourseView, error) {
	if q.cache != nil {
		cached, err := q.cache.Get(ctx, id, lang)
		if err != nil {
			slog.Warn("course cache read failed", "course_id", id, "error", err)
		} else if cached != nil {
			return cached, nil
		}
	}

	c, err := q.store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	view := buildCourseView(c, lang)

	if q.cache != nil {
		if err := q.cache.Set(ctx, view, lang); err != nil {
			slog.Warn("course cache write failed", "course_id", id, "error", err)
		}
	}
	return view, nil
}

func buildCourseView(c *course.Course, lang i18n.Language) *CourseView {
	availability := course.IndexSlots(c.Slots)

	byDate := make(map[string][]SlotView, len(availability.ByDate))
	for date, slots := range availability.ByDate {
		views := make([]SlotView, 0, len(slots))
		for _, s := range slots {
			views = append(views, SlotView{
				ID:        s.ID,
				Date:      s.Date,
				StartTime: s.StartTime,
				EndTime:   s.EndTime,
				Booked:    s.IsBooked(),
			})
		}
		byDate[date] = views
	}

	return &CourseView{
		ID:             c.ID,
		Title:          i18n.Resolve(c.Title, lang),
		Description:    i18n.Resolve(c.Description, lang),
		PricePaise:     c.PricePaise,
		Form:           c.RegistrationForm,
		SlotsByDate:    byDate,
		AvailableDates: availability.AvailableDates,
	}
}
