package form

import (
	"errors"

	"drivebook/internal/pkg/i18n"
)

var ErrEmptyForm = errors.New("registration form has no steps")

// Navigator is the state machine stepping a client session through a
// registration form. State is the current step index plus every value
// captured so far; values from visited steps are never discarded, so going
// back and forward keeps prior answers intact. The state is scoped to one
// session and never persisted.
type Navigator struct {
	form   RegistrationForm
	lang   i18n.Language
	index  int
	values map[string]string
	done   bool
}

// SubmitResult reports the outcome of one step submission. When FieldErrors
// is non-empty the machine did not move.
type SubmitResult struct {
	FieldErrors map[string]string
	Done        bool
	StepIndex   int
}

func NewNavigator(f RegistrationForm, lang i18n.Language) (*Navigator, error) {
	if len(f.Steps) == 0 {
		return nil, ErrEmptyForm
	}
	return &Navigator{
		form:   f,
		lang:   lang,
		values: make(map[string]string),
	}, nil
}

func (n *Navigator) CurrentIndex() int {
	return n.index
}

func (n *Navigator) CurrentStep() Step {
	return n.form.Steps[n.index]
}

func (n *Navigator) Done() bool {
	return n.done
}

// Values returns a copy of every captured value across visited steps.
func (n *Navigator) Values() map[string]string {
	out := make(map[string]string, len(n.values))
	for k, v := range n.values {
		out[k] = v
	}
	return out
}

// SubmitStep validates the current step's fields only. Any failure keeps
// the machine on the current step and surfaces all field errors at once.
// On success the next step is chosen by the step's navigation rules in
// order; without a match the machine advances linearly. Submitting the last
// step successfully exits the machine into the external payment flow.
func (n *Navigator) SubmitStep(values map[string]string) SubmitResult {
	if n.done {
		return SubmitResult{Done: true, StepIndex: n.index}
	}

	for k, v := range values {
		n.values[k] = v
	}

	step := n.CurrentStep()
	failures := BuildValidator(step.Fields, n.lang).Validate(n.values)
	if len(failures) > 0 {
		return SubmitResult{FieldErrors: failures, StepIndex: n.index}
	}

	if n.index == len(n.form.Steps)-1 {
		n.done = true
		return SubmitResult{Done: true, StepIndex: n.index}
	}

	n.index = n.nextIndex(step)
	return SubmitResult{StepIndex: n.index}
}

// PreviousStep moves back one step, floored at the first. It neither
// re-validates nor clears captured values.
func (n *Navigator) PreviousStep() {
	n.done = false
	if n.index > 0 {
		n.index--
	}
}

func (n *Navigator) nextIndex(step Step) int {
	for _, rule := range step.NavigationRules {
		field, ok := step.FieldByID(rule.FieldID)
		if !ok {
			continue
		}
		captured := n.values[field.ValueKey(n.lang)]
		if n.englishValue(field, captured) != rule.Value {
			continue
		}
		// Stale target after a form edit falls back to linear advance.
		if target, ok := n.form.StepIndexByID(rule.NextStepID); ok {
			return target
		}
		break
	}
	return n.index + 1
}

// englishValue maps a captured option value back to its English-resolved
// representation; navigation rules always compare against English.
func (n *Navigator) englishValue(field Field, captured string) string {
	if n.lang == i18n.LangEN {
		return captured
	}
	for _, opt := range field.Options {
		if i18n.Resolve(opt, n.lang) == captured {
			return i18n.Resolve(opt, i18n.LangEN)
		}
	}
	return captured
}
