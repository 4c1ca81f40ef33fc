package commands

import (
	"context"
	"log/slog"

	"drivebook/internal/domain/course"
	"drivebook/internal/domain/form"
	"drivebook/internal/pkg/errs"
	"drivebook/internal/pkg/i18n"

	"github.com/google/uuid"
)

type CreateCourseParams struct {
	Title       i18n.Text
	Description i18n.Text
	PricePaise  int64
	Form        form.RegistrationForm
}

type NewSlotParams struct {
	Date      string
	StartTime string
	EndTime   string
}

//go:generate mockgen -destination=../../../tests/mock/commands/course_mock.go -package=commandsmock drivebook/internal/usecase/commands CourseCommands
type CourseCommands interface {
	CreateCourse(ctx context.Context, params CreateCourseParams) (uuid.UUID, error)
	AddSlots(ctx context.Context, courseID uuid.UUID, slots []NewSlotParams) error
	// ReplaceForm swaps a course's registration form after structural
	// validation; the same validator guards the public booking flow.
	ReplaceForm(ctx context.Context, courseID uuid.UUID, f form.RegistrationForm) error
}

type courseCommandsImpl struct {
	uow   UnitOfWork
	cache CourseCache
}

func NewCourseCommands(uow UnitOfWork, cache CourseCache) CourseCommands {
	return &courseCommandsImpl{uow: uow, cache: cache}
}

func (u *courseCommandsImpl) CreateCourse(ctx context.Context, params CreateCourseParams) (uuid.UUID, error) {
	if structural := form.Validate(params.Form); len(structural) > 0 {
		return uuid.Nil, errs.Mark(structural[0], errs.ErrInvalidForm)
	}

	c := course.Course{
		ID:               uuid.New(),
		Title:            params.Title,
		Description:      params.Description,
		PricePaise:       params.PricePaise,
		RegistrationForm: params.Form,
		Slots:            []course.Slot{},
	}

	err := u.uow.Within(ctx, func(ctx context.Context, tx Tx) error {
		return tx.Courses().Create(ctx, &c)
	})
	if err != nil {
		return uuid.Nil, err
	}
	return c.ID, nil
}

func (u *courseCommandsImpl) AddSlots(ctx context.Context, courseID uuid.UUID, slots []NewSlotParams) error {
	err := u.uow.Within(ctx, func(ctx context.Context, tx Tx) error {
		doc, err := tx.Courses().FindByID(ctx, courseID)
		if err != nil {
			return err
		}
		c := doc.Course

		added := make([]course.Slot, 0, len(slots))
		for _, s := range slots {
			added = append(added, course.Slot{
				ID:        uuid.New(),
				Date:      s.Date,
				StartTime: s.StartTime,
				EndTime:   s.EndTime,
			})
		}
		c.AddSlots(added)

		return tx.Courses().UpdateWithVersion(ctx, &c, doc.Version)
	})
	if err != nil {
		return err
	}

	u.invalidate(ctx, courseID)
	return nil
}

func (u *courseCommandsImpl) ReplaceForm(ctx context.Context, courseID uuid.UUID, f form.RegistrationForm) error {
	if structural := form.Validate(f); len(structural) > 0 {
		return errs.Mark(structural[0], errs.ErrInvalidForm)
	}

	err := u.uow.Within(ctx, func(ctx context.Context, tx Tx) error {
		doc, err := tx.Courses().FindByID(ctx, courseID)
		if err != nil {
			return err
		}
		c := doc.Course
		c.RegistrationForm = f

		return tx.Courses().UpdateWithVersion(ctx, &c, doc.Version)
	})
	if err != nil {
		return err
	}

	u.invalidate(ctx, courseID)
	return nil
}

func (u *courseCommandsImpl) invalidate(ctx context.Context, courseID uuid.UUID) {
	if u.cache == nil {
		return
	}
	if err := u.cache.Invalidate(ctx, courseID); err != nil {
		slog.Warn("failed to invalidate course cache", "course_id", courseID, "error", err)
	}
}
