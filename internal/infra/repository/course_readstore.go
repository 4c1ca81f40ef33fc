package repository

import (
	"context"

	"drivebook/internal/domain/course"

	"github.com/google/uuid"
)

// CourseReadStore is the query-side view over the same course documents,
// reading through the pool with implicit transactions.
type CourseReadStore struct {
	repo *CourseRepository
}

func NewCourseReadStore(db DBTX) *CourseReadStore {
	return &CourseReadStore{repo: NewCourseRepository(db)}
}

func (s *CourseReadStore) FindByID(ctx context.Context, id uuid.UUID) (*course.Course, error) {
	doc, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &doc.Course, nil
}

func (s *CourseReadStore) List(ctx context.Context) ([]course.Course, error) {
	return s.repo.List(ctx)
}
