package domain

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// TaskInput is the form payload for creating or editing a task.
type TaskInput struct {
	Title          string     `validate:"required"`
	Description    string     `validate:"required"`
	Assignee       string     `validate:"required"`
	Priority       Priority   `validate:"required,oneof=low medium high critical"`
	Status         Status     `validate:"required,oneof=open in-progress pending-approval closed"`
	DueDate        *time.Time `validate:"-"`
	EstimatedHours *float64   `validate:"omitempty,gte=0"`
	Tags           []string   `validate:"-"`
}

var taskValidator = validator.New()

// ValidateTask checks a task form payload and returns a field-keyed error,
// or nil when the input is acceptable.
func ValidateTask(in TaskInput) *ValidationError {
	err := taskValidator.Struct(in)
	if err == nil {
		return nil
	}

	verr := &ValidationError{}
	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		verr.add("form", err.Error())
		return verr
	}
	for _, fe := range fieldErrs {
		field := strings.ToLower(fe.Field()[:1]) + fe.Field()[1:]
		switch fe.Tag() {
		case "required":
			verr.add(field, fe.Field()+" is required")
		case "gte":
			verr.add(field, fe.Field()+" must not be negative")
		case "oneof":
			verr.add(field, fe.Field()+" has an unknown value")
		default:
			verr.add(field, fe.Field()+" failed on '"+fe.Tag()+"' validation")
		}
	}
	return verr
}
