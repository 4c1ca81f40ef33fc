package repository

import (
	"context"
	"encoding/json"
	"errors"

	"drivebook/internal/domain/course"
	"drivebook/internal/infra"
	"drivebook/internal/pkg/errs"
	"drivebook/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// CourseRepository stores each course as one JSONB document row. The
// version column is the compare-and-swap token: every write bumps it and
// predicates on the value it read, so two writers racing on the same course
// cannot both win.
type CourseRepository struct {
	db DBTX
}

func NewCourseRepository(db DBTX) *CourseRepository {
	return &CourseRepository{db: db}
}

func (r *CourseRepository) FindByID(ctx context.Context, id uuid.UUID) (*commands.CourseDocument, error) {
	const query = `SELECT document, version FROM courses WHERE id = $1`

	var raw []byte
	var version int64
	err := r.db.QueryRow(ctx, query, id).Scan(&raw, &version)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.ErrCourseNotFound
		}
		return nil, infra.WrapRepoErr("failed to read course", err)
	}

	var c course.Course
	if err := json.Unmarshal(raw, &c); err != nil {
		return nil, infra.WrapRepoErr("failed to decode course document", err)
	}

	return &commands.CourseDocument{Course: c, Version: version}, nil
}

func (r *CourseRepository) Create(ctx context.Context, c *course.Course) error {
	const query = `INSERT INTO courses (id, document, version) VALUES ($1, $2, 1)`

	raw, err := json.Marshal(c)
	if err != nil {
		return infra.WrapRepoErr("failed to encode course document", err)
	}

	if _, err := r.db.Exec(ctx, query, c.ID, raw); err != nil {
		return infra.WrapRepoErr("failed to create course", err)
	}
	return nil
}

// UpdateWithVersion writes the document back only if no concurrent write
// landed since the read. Zero rows affected means the version moved;
// the unit of work reruns the whole transaction on that signal.
func (r *CourseRepository) UpdateWithVersion(ctx context.Context, c *course.Course, expectedVersion int64) error {
	const query = `
		UPDATE courses
		SET document = $2, version = version + 1, updated_at = now()
		WHERE id = $1 AND version = $3`

	raw, err := json.Marshal(c)
	if err != nil {
		return infra.WrapRepoErr("failed to encode course document", err)
	}

	tag, err := r.db.Exec(ctx, query, c.ID, raw, expectedVersion)
	if err != nil {
		return infra.WrapRepoErr("failed to update course", err)
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrVersionConflict
	}
	return nil
}

func (r *CourseRepository) List(ctx context.Context) ([]course.Course, error) {
	const query = `SELECT document FROM courses ORDER BY created_at`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list courses", err)
	}
	defer rows.Close()

	var courses []course.Course
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return nil, infra.WrapRepoErr("failed to scan course row", err)
		}
		var c course.Course
		if err := json.Unmarshal(raw, &c); err != nil {
			return nil, infra.WrapRepoErr("failed to decode course document", err)
		}
		courses = append(courses, c)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate course rows", err)
	}
	return courses, nil
}
