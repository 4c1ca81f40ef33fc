package form

import (
	"regexp"
	"strings"

	"drivebook/internal/pkg/i18n"

	"github.com/go-playground/validator/v10"
)

// E.164-like, no leading zero, 7 to 15 digits. validator/v10's e164 tag
// demands a leading "+", the booking forms accept it as optional, so the
// pattern stays explicit. The minimum length rejects short fragments like
// "123" that are never dialable numbers.
var telPattern = regexp.MustCompile(`^\+?[1-9]\d{6,14}$`)

var (
	msgInvalidEmail = i18n.NewText("Enter a valid email address.", "சரியான மின்னஞ்சல் முகவரியை உள்ளிடவும்.")
	msgInvalidTel   = i18n.NewText("Enter a valid phone number.", "சரியான தொலைபேசி எண்ணை உள்ளிடவும்.")
)

type fieldRule struct {
	field Field
	label string
}

// FieldValidator is a ruleset built at runtime from a step's field list,
// since fields are not known until course data loads. Rules are keyed
// "{fieldID}-{lang}" to match the keys the rendering layer produces.
type FieldValidator struct {
	lang  i18n.Language
	rules map[string]fieldRule
	keys  []string
	vd    *validator.Validate
}

// BuildValidator constructs the per-field ruleset for one step in the
// active language.
func BuildValidator(fields []Field, lang i18n.Language) *FieldValidator {
	fv := &FieldValidator{
		lang:  lang,
		rules: make(map[string]fieldRule, len(fields)),
		keys:  make([]string, 0, len(fields)),
		vd:    validator.New(),
	}
	for _, f := range fields {
		key := f.ValueKey(lang)
		fv.rules[key] = fieldRule{
			field: f,
			label: i18n.Resolve(f.Label, lang),
		}
		fv.keys = append(fv.keys, key)
	}
	return fv
}

// Validate checks values against the ruleset and returns a message per
// failing field key. Fields absent from the result passed. An empty value
// on an optional field is always valid regardless of type pattern.
func (v *FieldValidator) Validate(values map[string]string) map[string]string {
	failures := make(map[string]string)

	for _, key := range v.keys {
		rule := v.rules[key]
		value := strings.TrimSpace(values[key])

		if value == "" {
			if rule.field.Required {
				failures[key] = rule.label + " is required."
			}
			continue
		}

		switch rule.field.Type {
		case FieldEmail:
			if err := v.vd.Var(value, "email"); err != nil {
				failures[key] = i18n.Resolve(msgInvalidEmail, v.lang)
			}
		case FieldTel:
			if !telPattern.MatchString(value) {
				failures[key] = i18n.Resolve(msgInvalidTel, v.lang)
			}
		}
	}

	return failures
}
