package form

import (
	"drivebook/internal/pkg/i18n"

	"github.com/google/uuid"
)

type FieldType string

const (
	FieldText     FieldType = "text"
	FieldEmail    FieldType = "email"
	FieldTel      FieldType = "tel"
	FieldTextarea FieldType = "textarea"
	FieldSelect   FieldType = "select"
)

func (t FieldType) IsValid() bool {
	switch t {
	case FieldText, FieldEmail, FieldTel, FieldTextarea, FieldSelect:
		return true
	default:
		return false
	}
}

// Field is a single input of a registration form step. Options is populated
// only for select fields.
type Field struct {
	ID          uuid.UUID   `json:"id"`
	Type        FieldType   `json:"type"`
	Label       i18n.Text   `json:"label"`
	Placeholder i18n.Text   `json:"placeholder,omitempty"`
	Required    bool        `json:"required"`
	Options     []i18n.Text `json:"options,omitempty"`
}

// ValueKey is the key the rendering layer uses for this field's control in
// the active language. Validation results must be keyed identically so
// errors bind to the right control.
func (f Field) ValueKey(lang i18n.Language) string {
	return f.ID.String() + "-" + lang.String()
}

// OptionValue reports whether raw matches one of the field's options by its
// English-resolved representation. Navigation rules compare on this form.
func (f Field) OptionValue(raw string) bool {
	for _, opt := range f.Options {
		if i18n.Resolve(opt, i18n.LangEN) == raw {
			return true
		}
	}
	return false
}
