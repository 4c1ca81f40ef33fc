//go:build unit

package commands_test

import (
	"context"
	"errors"
	"sync"

	"drivebook/internal/domain/booking"
	"drivebook/internal/domain/course"
	"drivebook/internal/pkg/errs"
	"drivebook/internal/usecase/commands"

	"github.com/google/uuid"
)

// memStore is an in-memory course/booking store with the same optimistic
// versioning contract as the postgres implementation.
type memStore struct {
	mu       sync.Mutex
	courses  map[uuid.UUID]memCourseRow
	bookings map[uuid.UUID]*booking.Booking

	failBookingCreate error
}

type memCourseRow struct {
	course  course.Course
	version int64
}

func newMemStore() *memStore {
	return &memStore{
		courses:  make(map[uuid.UUID]memCourseRow),
		bookings: make(map[uuid.UUID]*booking.Booking),
	}
}

func (s *memStore) seedCourse(c course.Course) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.courses[c.ID] = memCourseRow{course: cloneCourse(c), version: 1}
}

func (s *memStore) courseRow(id uuid.UUID) (memCourseRow, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	row, ok := s.courses[id]
	if !ok {
		return memCourseRow{}, false
	}
	return memCourseRow{course: cloneCourse(row.course), version: row.version}, true
}

func cloneCourse(c course.Course) course.Course {
	out := c
	out.Slots = make([]course.Slot, len(c.Slots))
	copy(out.Slots, c.Slots)
	for i, s := range out.Slots {
		if s.BookedBy != nil {
			hold := *s.BookedBy
			out.Slots[i].BookedBy = &hold
		}
	}
	return out
}

// memUoW mirrors the retry-on-conflict behaviour of the postgres unit of
// work: read freely, stage writes, commit under lock with a version check.
type memUoW struct {
	store *memStore
}

func (u *memUoW) Within(ctx context.Context, fn func(ctx context.Context, tx commands.Tx) error) error {
	var err error
	for attempt := 1; attempt <= 3; attempt++ {
		err = u.runOnce(ctx, fn)
		if !errors.Is(err, errs.ErrVersionConflict) {
			return err
		}
	}
	return err
}

func (u *memUoW) runOnce(ctx context.Context, fn func(ctx context.Context, tx commands.Tx) error) error {
	tx := &memTx{store: u.store}
	if err := fn(ctx, tx); err != nil {
		return err
	}
	return tx.commit()
}

type memTx struct {
	store *memStore

	stagedCourse        *course.Course
	stagedVersion       int64
	stagedCourseCreate  *course.Course
	stagedBookings      []*booking.Booking
	stagedVerifications []uuid.UUID
}

func (t *memTx) Courses() commands.CourseTxRepository   { return (*memCourseRepo)(t) }
func (t *memTx) Bookings() commands.BookingTxRepository { return (*memBookingRepo)(t) }

func (t *memTx) commit() error {
	t.store.mu.Lock()
	defer t.store.mu.Unlock()

	if t.stagedCourse != nil {
		row, ok := t.store.courses[t.stagedCourse.ID]
		if !ok {
			return errs.ErrCourseNotFound
		}
		if row.version != t.stagedVersion {
			return errs.ErrVersionConflict
		}
		t.store.courses[t.stagedCourse.ID] = memCourseRow{
			course:  cloneCourse(*t.stagedCourse),
			version: row.version + 1,
		}
	}
	if t.stagedCourseCreate != nil {
		t.store.courses[t.stagedCourseCreate.ID] = memCourseRow{
			course:  cloneCourse(*t.stagedCourseCreate),
			version: 1,
		}
	}
	for _, b := range t.stagedBookings {
		t.store.bookings[b.ID()] = b
	}
	for _, id := range t.stagedVerifications {
		if b, ok := t.store.bookings[id]; ok {
			b.VerifyPayment()
		}
	}
	return nil
}

type memCourseRepo memTx

func (r *memCourseRepo) FindByID(_ context.Context, id uuid.UUID) (*commands.CourseDocument, error) {
	row, ok := r.store.courseRow(id)
	if !ok {
		return nil, errs.ErrCourseNotFound
	}
	return &commands.CourseDocument{Course: row.course, Version: row.version}, nil
}

func (r *memCourseRepo) UpdateWithVersion(_ context.Context, c *course.Course, expectedVersion int64) error {
	r.stagedCourse = c
	r.stagedVersion = expectedVersion
	return nil
}

func (r *memCourseRepo) Create(_ context.Context, c *course.Course) error {
	r.stagedCourseCreate = c
	return nil
}

type memBookingRepo memTx

func (r *memBookingRepo) Create(_ context.Context, b *booking.Booking) error {
	if r.store.failBookingCreate != nil {
		return r.store.failBookingCreate
	}
	r.stagedBookings = append(r.stagedBookings, b)
	return nil
}

func (r *memBookingRepo) FindByID(_ context.Context, id uuid.UUID) (*booking.Booking, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	b, ok := r.store.bookings[id]
	if !ok {
		return nil, errs.ErrBookingNotFound
	}
	return b, nil
}

func (r *memBookingRepo) SetPaymentVerified(_ context.Context, id uuid.UUID) error {
	r.store.mu.Lock()
	_, ok := r.store.bookings[id]
	r.store.mu.Unlock()
	if !ok {
		return errs.ErrBookingNotFound
	}
	r.stagedVerifications = append(r.stagedVerifications, id)
	return nil
}

// recordingCache counts invalidations per course.
type recordingCache struct {
	mu    sync.Mutex
	calls map[uuid.UUID]int
	err   error
}

func newRecordingCache() *recordingCache {
	return &recordingCache{calls: make(map[uuid.UUID]int)}
}

func (c *recordingCache) Invalidate(_ context.Context, courseID uuid.UUID) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls[courseID]++
	return c.err
}

func (c *recordingCache) count(courseID uuid.UUID) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.calls[courseID]
}
