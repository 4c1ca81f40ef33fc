package form

import (
	"fmt"

	"github.com/google/uuid"
)

// StructuralError describes one authoring mistake in a registration form.
type StructuralError struct {
	StepID  uuid.UUID
	FieldID uuid.UUID
	Message string
}

func (e StructuralError) Error() string {
	return fmt.Sprintf("step %s: %s", e.StepID, e.Message)
}

// Validate checks the structural invariants of a form:
//   - every navigation rule references a select field within the same step
//   - every rule target resolves to a step id present in the form
//   - a step may not target itself
//   - select fields carry at least one option, other types carry none
//
// Both the admin authoring surface and the runtime engine call this; it is
// the single definition of a valid form.
func Validate(f RegistrationForm) []StructuralError {
	var errs []StructuralError

	stepIDs := make(map[uuid.UUID]struct{}, len(f.Steps))
	for _, s := range f.Steps {
		stepIDs[s.ID] = struct{}{}
	}

	for _, s := range f.Steps {
		for _, field := range s.Fields {
			if !field.Type.IsValid() {
				errs = append(errs, StructuralError{
					StepID:  s.ID,
					FieldID: field.ID,
					Message: fmt.Sprintf("unknown field type %q", field.Type),
				})
			}
			switch {
			case field.Type == FieldSelect && len(field.Options) == 0:
				errs = append(errs, StructuralError{
					StepID:  s.ID,
					FieldID: field.ID,
					Message: "select field must have at least one option",
				})
			case field.Type != FieldSelect && len(field.Options) > 0:
				errs = append(errs, StructuralError{
					StepID:  s.ID,
					FieldID: field.ID,
					Message: fmt.Sprintf("%s field must not have options", field.Type),
				})
			}
		}

		for _, rule := range s.NavigationRules {
			field, ok := s.FieldByID(rule.FieldID)
			if !ok {
				errs = append(errs, StructuralError{
					StepID:  s.ID,
					FieldID: rule.FieldID,
					Message: "navigation rule references a field not in this step",
				})
			} else if field.Type != FieldSelect {
				errs = append(errs, StructuralError{
					StepID:  s.ID,
					FieldID: rule.FieldID,
					Message: "navigation rule must reference a select field",
				})
			}

			if rule.NextStepID == s.ID {
				errs = append(errs, StructuralError{
					StepID:  s.ID,
					Message: "navigation rule may not target its own step",
				})
			} else if _, ok := stepIDs[rule.NextStepID]; !ok {
				errs = append(errs, StructuralError{
					StepID:  s.ID,
					Message: fmt.Sprintf("navigation rule targets unknown step %s", rule.NextStepID),
				})
			}
		}
	}

	return errs
}
