//go:build unit

package commands_test

import (
	"context"
	"testing"

	"drivebook/internal/pkg/errs"
	"drivebook/internal/pkg/i18n"
	"drivebook/internal/usecase/commands"
	"drivebook/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCourseHarness(t *testing.T) (*memStore, *recordingCache, commands.CourseCommands) {
	t.Helper()
	store := newMemStore()
	cache := newRecordingCache()
	return store, cache, commands.NewCourseCommands(&memUoW{store: store}, cache)
}

func TestCreateCourse(t *testing.T) {
	t.Run("creates a course with its form", func(t *testing.T) {
		store, _, cmds := newCourseHarness(t)

		id, err := cmds.CreateCourse(context.Background(), commands.CreateCourseParams{
			Title:       i18n.NewText("Two Wheeler Basics", "இரு சக்கர அடிப்படைகள்"),
			Description: i18n.NewText("Beginner riding course", ""),
			PricePaise:  450000,
			Form:        builder.NewFormBuilder().Build(),
		})
		require.NoError(t, err)
		require.NotEqual(t, uuid.Nil, id)

		row, ok := store.courseRow(id)
		require.True(t, ok)
		assert.Equal(t, "Two Wheeler Basics", row.course.Title.EN)
		assert.Len(t, row.course.RegistrationForm.Steps, 3)
		assert.Empty(t, row.course.Slots)
		assert.Equal(t, int64(1), row.version)
	})

	t.Run("structurally broken form is rejected before storage", func(t *testing.T) {
		store, _, cmds := newCourseHarness(t)

		f := builder.NewFormBuilder().Build()
		f.Steps[0].NavigationRules[0].NextStepID = uuid.New()

		_, err := cmds.CreateCourse(context.Background(), commands.CreateCourseParams{
			Title:      i18n.NewText("Broken", ""),
			PricePaise: 100,
			Form:       f,
		})
		assert.ErrorIs(t, err, errs.ErrInvalidForm)
		assert.Empty(t, store.courses)
	})
}

func TestAddSlots(t *testing.T) {
	t.Run("appends slots and bumps the version", func(t *testing.T) {
		store, cache, cmds := newCourseHarness(t)
		c := builder.NewCourseBuilder().Build()
		store.seedCourse(c)

		err := cmds.AddSlots(context.Background(), c.ID, []commands.NewSlotParams{
			{Date: "2024-06-03", StartTime: "09:00", EndTime: "10:00"},
			{Date: "2024-06-03", StartTime: "10:00", EndTime: "11:00"},
		})
		require.NoError(t, err)

		row, _ := store.courseRow(c.ID)
		require.Len(t, row.course.Slots, 5)
		assert.Equal(t, "2024-06-03", row.course.Slots[3].Date)
		assert.NotEqual(t, uuid.Nil, row.course.Slots[3].ID)
		assert.Equal(t, int64(2), row.version)
		assert.Equal(t, 1, cache.count(c.ID))
	})

	t.Run("unknown course", func(t *testing.T) {
		_, _, cmds := newCourseHarness(t)
		err := cmds.AddSlots(context.Background(), uuid.New(), []commands.NewSlotParams{
			{Date: "2024-06-03", StartTime: "09:00", EndTime: "10:00"},
		})
		assert.ErrorIs(t, err, errs.ErrCourseNotFound)
	})
}

func TestReplaceForm(t *testing.T) {
	t.Run("swaps the registration form", func(t *testing.T) {
		store, cache, cmds := newCourseHarness(t)
		c := builder.NewCourseBuilder().Build()
		store.seedCourse(c)

		replacement := builder.NewFormBuilder().With(func(b *builder.FormBuilder) {
			b.SkipRule = false
		}).Build()

		require.NoError(t, cmds.ReplaceForm(context.Background(), c.ID, replacement))

		row, _ := store.courseRow(c.ID)
		assert.Empty(t, row.course.RegistrationForm.Steps[0].NavigationRules)
		assert.Equal(t, 1, cache.count(c.ID))
	})

	t.Run("broken form leaves the existing one untouched", func(t *testing.T) {
		store, cache, cmds := newCourseHarness(t)
		c := builder.NewCourseBuilder().Build()
		store.seedCourse(c)

		broken := builder.NewFormBuilder().Build()
		broken.Steps[0].Fields[3].Options = nil

		err := cmds.ReplaceForm(context.Background(), c.ID, broken)
		assert.ErrorIs(t, err, errs.ErrInvalidForm)

		row, _ := store.courseRow(c.ID)
		assert.NotEmpty(t, row.course.RegistrationForm.Steps[0].Fields[3].Options)
		assert.Equal(t, 0, cache.count(c.ID))
	})
}
