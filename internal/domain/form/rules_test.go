//go:build unit

package form_test

import (
	"testing"

	"drivebook/internal/domain/form"
	"drivebook/internal/pkg/i18n"
	"drivebook/tests/common/builder"

	"github.com/stretchr/testify/assert"
)

func TestFieldValidator(t *testing.T) {
	b := builder.NewFormBuilder()
	step := b.Build().Steps[0]

	nameKey := b.NameFieldID.String() + "-en"
	emailKey := b.EmailFieldID.String() + "-en"
	phoneKey := b.PhoneFieldID.String() + "-en"
	licenseKey := b.LicenseFieldID.String() + "-en"

	valid := map[string]string{
		nameKey:    "Anand Kumar",
		emailKey:   "anand@example.com",
		phoneKey:   "+919876543210",
		licenseKey: "Two Wheeler",
	}

	t.Run("all fields valid", func(t *testing.T) {
		v := form.BuildValidator(step.Fields, i18n.LangEN)
		assert.Empty(t, v.Validate(valid))
	})

	t.Run("missing required fields", func(t *testing.T) {
		v := form.BuildValidator(step.Fields, i18n.LangEN)
		failures := v.Validate(map[string]string{})

		assert.Equal(t, "Full Name is required.", failures[nameKey])
		assert.Equal(t, "Email is required.", failures[emailKey])
		assert.Equal(t, "License Type is required.", failures[licenseKey])
		assert.NotContains(t, failures, phoneKey)
	})

	t.Run("required message uses resolved label", func(t *testing.T) {
		v := form.BuildValidator(step.Fields, i18n.LangTA)
		failures := v.Validate(map[string]string{})

		taNameKey := b.NameFieldID.String() + "-ta"
		assert.Equal(t, "முழு பெயர் is required.", failures[taNameKey])
	})

	t.Run("invalid email", func(t *testing.T) {
		v := form.BuildValidator(step.Fields, i18n.LangEN)
		values := cloneValues(valid)
		values[emailKey] = "not-an-email"

		failures := v.Validate(values)
		assert.Equal(t, "Enter a valid email address.", failures[emailKey])
	})

	t.Run("phone numbers", func(t *testing.T) {
		cases := []struct {
			value string
			ok    bool
		}{
			{"+919876543210", true},
			{"9876543210", true},
			{"1234567", true},
			{"123", false},
			{"0123456789", false},
			{"not-a-number", false},
			{"+0123", false},
		}
		for _, tc := range cases {
			v := form.BuildValidator(step.Fields, i18n.LangEN)
			values := cloneValues(valid)
			values[phoneKey] = tc.value

			failures := v.Validate(values)
			if tc.ok {
				assert.NotContains(t, failures, phoneKey, tc.value)
			} else {
				assert.Equal(t, "Enter a valid phone number.", failures[phoneKey], tc.value)
			}
		}
	})

	t.Run("empty optional field passes regardless of type", func(t *testing.T) {
		v := form.BuildValidator(step.Fields, i18n.LangEN)
		values := cloneValues(valid)
		values[phoneKey] = ""

		assert.Empty(t, v.Validate(values))
	})

	t.Run("whitespace only counts as empty", func(t *testing.T) {
		v := form.BuildValidator(step.Fields, i18n.LangEN)
		values := cloneValues(valid)
		values[nameKey] = "   "

		failures := v.Validate(values)
		assert.Equal(t, "Full Name is required.", failures[nameKey])
	})

	t.Run("tamil validation messages", func(t *testing.T) {
		v := form.BuildValidator(step.Fields, i18n.LangTA)
		taEmailKey := b.EmailFieldID.String() + "-ta"
		taPhoneKey := b.PhoneFieldID.String() + "-ta"

		failures := v.Validate(map[string]string{
			b.NameFieldID.String() + "-ta":    "ஆனந்த்",
			taEmailKey:                        "broken",
			taPhoneKey:                        "xyz",
			b.LicenseFieldID.String() + "-ta": "இரு சக்கர வாகனம்",
		})

		assert.Equal(t, "சரியான மின்னஞ்சல் முகவரியை உள்ளிடவும்.", failures[taEmailKey])
		assert.Equal(t, "சரியான தொலைபேசி எண்ணை உள்ளிடவும்.", failures[taPhoneKey])
	})
}

func cloneValues(values map[string]string) map[string]string {
	out := make(map[string]string, len(values))
	for k, v := range values {
		out[k] = v
	}
	return out
}
