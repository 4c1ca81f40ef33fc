//go:build unit

package form_test

import (
	"testing"

	"drivebook/internal/domain/form"
	"drivebook/internal/pkg/i18n"
	"drivebook/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stepOneValues(b *builder.FormBuilder, lang i18n.Language, license string) map[string]string {
	suffix := "-" + lang.String()
	return map[string]string{
		b.NameFieldID.String() + suffix:    "Anand Kumar",
		b.EmailFieldID.String() + suffix:   "anand@example.com",
		b.LicenseFieldID.String() + suffix: license,
	}
}

func TestNavigator(t *testing.T) {
	t.Run("empty form is rejected", func(t *testing.T) {
		_, err := form.NewNavigator(form.RegistrationForm{}, i18n.LangEN)
		assert.ErrorIs(t, err, form.ErrEmptyForm)
	})

	t.Run("matching rule jumps to its target", func(t *testing.T) {
		b := builder.NewFormBuilder()
		nav, err := form.NewNavigator(b.Build(), i18n.LangEN)
		require.NoError(t, err)

		res := nav.SubmitStep(stepOneValues(b, i18n.LangEN, "Two Wheeler"))
		assert.Empty(t, res.FieldErrors)
		assert.Equal(t, 2, res.StepIndex)
		assert.False(t, res.Done)
	})

	t.Run("no matching rule advances linearly", func(t *testing.T) {
		b := builder.NewFormBuilder()
		nav, err := form.NewNavigator(b.Build(), i18n.LangEN)
		require.NoError(t, err)

		res := nav.SubmitStep(stepOneValues(b, i18n.LangEN, "Four Wheeler"))
		assert.Empty(t, res.FieldErrors)
		assert.Equal(t, 1, res.StepIndex)
	})

	t.Run("rules compare on the english option even in tamil sessions", func(t *testing.T) {
		b := builder.NewFormBuilder()
		nav, err := form.NewNavigator(b.Build(), i18n.LangTA)
		require.NoError(t, err)

		res := nav.SubmitStep(stepOneValues(b, i18n.LangTA, "இரு சக்கர வாகனம்"))
		assert.Empty(t, res.FieldErrors)
		assert.Equal(t, 2, res.StepIndex)
	})

	t.Run("validation failure keeps the machine in place", func(t *testing.T) {
		b := builder.NewFormBuilder()
		nav, err := form.NewNavigator(b.Build(), i18n.LangEN)
		require.NoError(t, err)

		values := stepOneValues(b, i18n.LangEN, "Two Wheeler")
		delete(values, b.EmailFieldID.String()+"-en")

		res := nav.SubmitStep(values)
		assert.Contains(t, res.FieldErrors, b.EmailFieldID.String()+"-en")
		assert.Equal(t, 0, res.StepIndex)
		assert.Equal(t, 0, nav.CurrentIndex())
	})

	t.Run("stale rule target falls back to linear advance", func(t *testing.T) {
		b := builder.NewFormBuilder()
		f := b.Build()
		f.Steps[0].NavigationRules[0].NextStepID = uuid.New()

		nav, err := form.NewNavigator(f, i18n.LangEN)
		require.NoError(t, err)

		res := nav.SubmitStep(stepOneValues(b, i18n.LangEN, "Two Wheeler"))
		assert.Equal(t, 1, res.StepIndex)
	})

	t.Run("submitting the last step completes the form", func(t *testing.T) {
		b := builder.NewFormBuilder()
		nav, err := form.NewNavigator(b.Build(), i18n.LangEN)
		require.NoError(t, err)

		nav.SubmitStep(stepOneValues(b, i18n.LangEN, "Two Wheeler"))
		res := nav.SubmitStep(nil)
		assert.True(t, res.Done)
		assert.True(t, nav.Done())
	})

	t.Run("going back keeps captured values and resumes forward", func(t *testing.T) {
		b := builder.NewFormBuilder()
		nav, err := form.NewNavigator(b.Build(), i18n.LangEN)
		require.NoError(t, err)

		nav.SubmitStep(stepOneValues(b, i18n.LangEN, "Four Wheeler"))
		require.Equal(t, 1, nav.CurrentIndex())

		nav.PreviousStep()
		assert.Equal(t, 0, nav.CurrentIndex())
		assert.Equal(t, "anand@example.com", nav.Values()[b.EmailFieldID.String()+"-en"])

		// Re-submitting without re-entering anything still passes because
		// earlier values were retained.
		res := nav.SubmitStep(nil)
		assert.Empty(t, res.FieldErrors)
		assert.Equal(t, 1, res.StepIndex)
	})

	t.Run("previous step is floored at the first", func(t *testing.T) {
		b := builder.NewFormBuilder()
		nav, err := form.NewNavigator(b.Build(), i18n.LangEN)
		require.NoError(t, err)

		nav.PreviousStep()
		assert.Equal(t, 0, nav.CurrentIndex())
	})

	t.Run("identical answers always walk the same path", func(t *testing.T) {
		b := builder.NewFormBuilder()
		f := b.Build()

		var paths [][]int
		for i := 0; i < 3; i++ {
			nav, err := form.NewNavigator(f, i18n.LangEN)
			require.NoError(t, err)

			var path []int
			res := nav.SubmitStep(stepOneValues(b, i18n.LangEN, "Two Wheeler"))
			path = append(path, res.StepIndex)
			res = nav.SubmitStep(nil)
			path = append(path, res.StepIndex)
			paths = append(paths, path)
		}
		assert.Equal(t, paths[0], paths[1])
		assert.Equal(t, paths[1], paths[2])
	})
}
