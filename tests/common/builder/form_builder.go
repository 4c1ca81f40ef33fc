//go:build unit || e2e

package builder

import (
	"drivebook/internal/domain/form"
	"drivebook/internal/pkg/i18n"

	"github.com/google/uuid"
)

// FormBuilder assembles the three-step registration form most tests use:
// personal details with a license-type select, a four-wheeler experience
// step, and a schedule preference step. A navigation rule skips the
// experience step for two-wheeler learners.
type FormBuilder struct {
	StepOneID   uuid.UUID
	StepTwoID   uuid.UUID
	StepThreeID uuid.UUID

	NameFieldID    uuid.UUID
	EmailFieldID   uuid.UUID
	PhoneFieldID   uuid.UUID
	LicenseFieldID uuid.UUID

	SkipRule bool
}

func NewFormBuilder() *FormBuilder {
	return &FormBuilder{
		StepOneID:      uuid.New(),
		StepTwoID:      uuid.New(),
		StepThreeID:    uuid.New(),
		NameFieldID:    uuid.New(),
		EmailFieldID:   uuid.New(),
		PhoneFieldID:   uuid.New(),
		LicenseFieldID: uuid.New(),
		SkipRule:       true,
	}
}

func (b *FormBuilder) With(mutate func(*FormBuilder)) *FormBuilder {
	mutate(b)
	return b
}

func (b *FormBuilder) Build() form.RegistrationForm {
	var rules []form.NavigationRule
	if b.SkipRule {
		rules = []form.NavigationRule{
			{
				FieldID:    b.LicenseFieldID,
				Value:      "Two Wheeler",
				NextStepID: b.StepThreeID,
			},
		}
	}

	return form.RegistrationForm{
		Steps: []form.Step{
			{
				ID:   b.StepOneID,
				Name: i18n.NewText("Personal Details", "தனிப்பட்ட விவரங்கள்"),
				Fields: []form.Field{
					{
						ID:       b.NameFieldID,
						Type:     form.FieldText,
						Label:    i18n.NewText("Full Name", "முழு பெயர்"),
						Required: true,
					},
					{
						ID:       b.EmailFieldID,
						Type:     form.FieldEmail,
						Label:    i18n.NewText("Email", "மின்னஞ்சல்"),
						Required: true,
					},
					{
						ID:    b.PhoneFieldID,
						Type:  form.FieldTel,
						Label: i18n.NewText("Phone", "தொலைபேசி"),
					},
					{
						ID:       b.LicenseFieldID,
						Type:     form.FieldSelect,
						Label:    i18n.NewText("License Type", "உரிம வகை"),
						Required: true,
						Options: []i18n.Text{
							i18n.NewText("Two Wheeler", "இரு சக்கர வாகனம்"),
							i18n.NewText("Four Wheeler", "நான்கு சக்கர வாகனம்"),
						},
					},
				},
				NavigationRules: rules,
			},
			{
				ID:   b.StepTwoID,
				Name: i18n.NewText("Driving Experience", "ஓட்டுநர் அனுபவம்"),
				Fields: []form.Field{
					{
						ID:    uuid.New(),
						Type:  form.FieldTextarea,
						Label: i18n.NewText("Prior Experience", "முந்தைய அனுபவம்"),
					},
				},
			},
			{
				ID:   b.StepThreeID,
				Name: i18n.NewText("Schedule Preference", "அட்டவணை விருப்பம்"),
				Fields: []form.Field{
					{
						ID:    uuid.New(),
						Type:  form.FieldText,
						Label: i18n.NewText("Preferred Time", "விருப்பமான நேரம்"),
					},
				},
			},
		},
	}
}
