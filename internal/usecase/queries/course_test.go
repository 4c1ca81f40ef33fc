//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"

	"drivebook/internal/domain/course"
	"drivebook/internal/pkg/errs"
	"drivebook/internal/pkg/i18n"
	"drivebook/internal/usecase/queries"
	"drivebook/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	courses map[uuid.UUID]course.Course
	reads   int
}

func (s *fakeStore) FindByID(_ context.Context, id uuid.UUID) (*course.Course, error) {
	s.reads++
	c, ok := s.courses[id]
	if !ok {
		return nil, errs.ErrCourseNotFound
	}
	return &c, nil
}

func (s *fakeStore) List(_ context.Context) ([]course.Course, error) {
	out := make([]course.Course, 0, len(s.courses))
	for _, c := range s.courses {
		out = append(out, c)
	}
	return out, nil
}

type fakeCache struct {
	views map[string]*queries.CourseView
	err   error
}

func cacheKey(id uuid.UUID, lang i18n.Language) string {
	return id.String() + ":" + lang.String()
}

func (c *fakeCache) Get(_ context.Context, id uuid.UUID, lang i18n.Language) (*queries.CourseView, error) {
	if c.err != nil {
		return nil, c.err
	}
	return c.views[cacheKey(id, lang)], nil
}

func (c *fakeCache) Set(_ context.Context, view *queries.CourseView, lang i18n.Language) error {
	if c.err != nil {
		return c.err
	}
	c.views[cacheKey(view.ID, lang)] = view
	return nil
}

func newQueryHarness(cs ...course.Course) (*fakeStore, *fakeCache, queries.CourseQueries) {
	store := &fakeStore{courses: make(map[uuid.UUID]course.Course)}
	for _, c := range cs {
		store.courses[c.ID] = c
	}
	cache := &fakeCache{views: make(map[string]*queries.CourseView)}
	return store, cache, queries.NewCourseQueries(store, cache)
}

func TestGetCourse(t *testing.T) {
	t.Run("localizes content and indexes slots", func(t *testing.T) {
		c := builder.NewCourseBuilder().WithBookedSlot(2, "Anand").Build()
		_, _, q := newQueryHarness(c)

		view, err := q.GetCourse(context.Background(), c.ID, i18n.LangTA)
		require.NoError(t, err)

		assert.Equal(t, "இரு சக்கர அடிப்படைகள்", view.Title)
		assert.Equal(t, []string{"2024-06-01"}, view.AvailableDates)
		require.Len(t, view.SlotsByDate["2024-06-02"], 1)
		assert.True(t, view.SlotsByDate["2024-06-02"][0].Booked)
	})

	t.Run("second read is served from cache", func(t *testing.T) {
		c := builder.NewCourseBuilder().Build()
		store, _, q := newQueryHarness(c)

		first, err := q.GetCourse(context.Background(), c.ID, i18n.LangEN)
		require.NoError(t, err)
		second, err := q.GetCourse(context.Background(), c.ID, i18n.LangEN)
		require.NoError(t, err)

		assert.Equal(t, 1, store.reads)
		if diff := cmp.Diff(first, second); diff != "" {
			t.Errorf("cached view mismatch (-first +second):\n%s", diff)
		}
	})

	t.Run("cache failure degrades to the store", func(t *testing.T) {
		c := builder.NewCourseBuilder().Build()
		store, cache, q := newQueryHarness(c)
		cache.err = errors.New("redis down")

		view, err := q.GetCourse(context.Background(), c.ID, i18n.LangEN)
		require.NoError(t, err)
		assert.Equal(t, "Two Wheeler Basics", view.Title)
		assert.Equal(t, 1, store.reads)
	})

	t.Run("unknown course", func(t *testing.T) {
		_, _, q := newQueryHarness()
		_, err := q.GetCourse(context.Background(), uuid.New(), i18n.LangEN)
		assert.ErrorIs(t, err, errs.ErrCourseNotFound)
	})
}

func TestListCourses(t *testing.T) {
	t.Run("summaries carry localized text and open dates", func(t *testing.T) {
		c := builder.NewCourseBuilder().
			WithBookedSlot(0, "Anand").
			WithBookedSlot(1, "Priya").
			Build()
		_, _, q := newQueryHarness(c)

		summaries, err := q.ListCourses(context.Background(), i18n.LangEN)
		require.NoError(t, err)
		require.Len(t, summaries, 1)

		expected := queries.CourseSummary{
			ID:             c.ID,
			Title:          "Two Wheeler Basics",
			Description:    "Beginner riding course",
			PricePaise:     450000,
			AvailableDates: []string{"2024-06-02"},
		}
		if diff := cmp.Diff(expected, summaries[0]); diff != "" {
			t.Errorf("summary mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("tamil falls back to english where missing", func(t *testing.T) {
		c := builder.NewCourseBuilder().With(func(b *builder.CourseBuilder) {
			b.Description = i18n.NewText("English only", "")
		}).Build()
		_, _, q := newQueryHarness(c)

		summaries, err := q.ListCourses(context.Background(), i18n.LangTA)
		require.NoError(t, err)
		assert.Equal(t, "English only", summaries[0].Description)
	})
}
