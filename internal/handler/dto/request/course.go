package request

import (
	"drivebook/internal/domain/form"
	"drivebook/internal/pkg/i18n"
	"drivebook/internal/usecase/commands"

	"github.com/google/uuid"
)

// TextPayload carries a bilingual string. Tamil is optional; rendering
// falls back to English when it is empty.
type TextPayload struct {
	EN string `json:"en" binding:"required"`
	TA string `json:"ta"`
}

func (t TextPayload) ToDomain() i18n.Text {
	return i18n.NewText(t.EN, t.TA)
}

type FieldPayload struct {
	ID          uuid.UUID     `json:"id"`
	Type        string        `json:"type" binding:"required"`
	Label       TextPayload   `json:"label" binding:"required"`
	Placeholder TextPayload   `json:"placeholder"`
	Required    bool          `json:"required"`
	Options     []TextPayload `json:"options"`
}

type NavigationRulePayload struct {
	FieldID    uuid.UUID `json:"fieldId" binding:"required"`
	Value      string    `json:"value" binding:"required"`
	NextStepID uuid.UUID `json:"nextStepId" binding:"required"`
}

type StepPayload struct {
	ID              uuid.UUID               `json:"id"`
	Name            TextPayload             `json:"name" binding:"required"`
	Fields          []FieldPayload          `json:"fields" binding:"required,min=1"`
	NavigationRules []NavigationRulePayload `json:"navigationRules"`
}

type RegistrationFormPayload struct {
	Steps []StepPayload `json:"steps" binding:"required,min=1,dive"`
}

// ToDomain builds the form aggregate, minting IDs for steps and fields the
// client did not assign. Rule references are validated structurally in the
// usecase layer, not here.
func (p RegistrationFormPayload) ToDomain() form.RegistrationForm {
	steps := make([]form.Step, 0, len(p.Steps))
	for _, sp := range p.Steps {
		stepID := sp.ID
		if stepID == uuid.Nil {
			stepID = uuid.New()
		}

		fields := make([]form.Field, 0, len(sp.Fields))
		for _, fp := range sp.Fields {
			fieldID := fp.ID
			if fieldID == uuid.Nil {
				fieldID = uuid.New()
			}

			options := make([]i18n.Text, 0, len(fp.Options))
			for _, op := range fp.Options {
				options = append(options, op.ToDomain())
			}

			fields = append(fields, form.Field{
				ID:          fieldID,
				Type:        form.FieldType(fp.Type),
				Label:       fp.Label.ToDomain(),
				Placeholder: fp.Placeholder.ToDomain(),
				Required:    fp.Required,
				Options:     options,
			})
		}

		rules := make([]form.NavigationRule, 0, len(sp.NavigationRules))
		for _, rp := range sp.NavigationRules {
			rules = append(rules, form.NavigationRule{
				FieldID:    rp.FieldID,
				Value:      rp.Value,
				NextStepID: rp.NextStepID,
			})
		}

		steps = append(steps, form.Step{
			ID:              stepID,
			Name:            sp.Name.ToDomain(),
			Fields:          fields,
			NavigationRules: rules,
		})
	}
	return form.RegistrationForm{Steps: steps}
}

type CreateCourseRequest struct {
	Title            TextPayload             `json:"title" binding:"required"`
	Description      TextPayload             `json:"description"`
	PricePaise       int64                   `json:"pricePaise" binding:"required,gt=0"`
	RegistrationForm RegistrationFormPayload `json:"registrationForm" binding:"required"`
}

func (r CreateCourseRequest) ToParams() commands.CreateCourseParams {
	return commands.CreateCourseParams{
		Title:       r.Title.ToDomain(),
		Description: r.Description.ToDomain(),
		PricePaise:  r.PricePaise,
		Form:        r.RegistrationForm.ToDomain(),
	}
}

type SlotPayload struct {
	Date      string `json:"date" binding:"required"`
	StartTime string `json:"startTime" binding:"required"`
	EndTime   string `json:"endTime" binding:"required"`
}

type AddSlotsRequest struct {
	Slots []SlotPayload `json:"slots" binding:"required,min=1,dive"`
}

func (r AddSlotsRequest) ToParams() []commands.NewSlotParams {
	params := make([]commands.NewSlotParams, 0, len(r.Slots))
	for _, s := range r.Slots {
		params = append(params, commands.NewSlotParams{
			Date:      s.Date,
			StartTime: s.StartTime,
			EndTime:   s.EndTime,
		})
	}
	return params
}

type ReplaceFormRequest struct {
	RegistrationForm RegistrationFormPayload `json:"registrationForm" binding:"required"`
}
