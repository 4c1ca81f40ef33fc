package form

import (
	"drivebook/internal/pkg/i18n"

	"github.com/google/uuid"
)

// NavigationRule selects the next step when the referenced select field's
// captured value equals Value (compared on the English-resolved option).
type NavigationRule struct {
	FieldID    uuid.UUID `json:"fieldId"`
	Value      string    `json:"value"`
	NextStepID uuid.UUID `json:"nextStepId"`
}

// Step is one page of a multi-step registration form. Field order is
// display and validation order. Step identity is by ID, not position, so
// steps may be reordered without breaking rule references.
type Step struct {
	ID              uuid.UUID        `json:"id"`
	Name            i18n.Text        `json:"name"`
	Fields          []Field          `json:"fields"`
	NavigationRules []NavigationRule `json:"navigationRules,omitempty"`
}

func (s Step) FieldByID(id uuid.UUID) (Field, bool) {
	for _, f := range s.Fields {
		if f.ID == id {
			return f, true
		}
	}
	return Field{}, false
}

// RegistrationForm is the ordered step sequence; the first step is index 0.
// Shared between the admin form builder and the public booking flow.
type RegistrationForm struct {
	Steps []Step `json:"steps"`
}

func (f RegistrationForm) StepIndexByID(id uuid.UUID) (int, bool) {
	for i, s := range f.Steps {
		if s.ID == id {
			return i, true
		}
	}
	return 0, false
}
