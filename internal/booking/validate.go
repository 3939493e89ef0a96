package booking

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/go-playground/validator/v10"

	"appointment-booking-app/internal/models"
)

// Rejection is the single human readable reason a draft was refused.
type Rejection string

func (r Rejection) Error() string { return string(r) }

const (
	RejectFieldsRequired Rejection = "All fields are required."
	RejectInvalidPhone   Rejection = "Invalid phone number"
	RejectInvalidTime    Rejection = "Invalid time format"
)

var (
	phonePattern     = regexp.MustCompile(`^\d{10}$`)
	visitTimePattern = regexp.MustCompile(`(?i)^(0?[1-9]|1[0-2]):[0-5][0-9] (AM|PM)$`)
)

// ruleOrder maps a failing validator tag to its rejection. Rules are checked
// in slice order and the first one with a failure wins.
var ruleOrder = []struct {
	tag    string
	reason Rejection
}{
	{"required", RejectFieldsRequired},
	{"phone10", RejectInvalidPhone},
	{"time12h", RejectInvalidTime},
}

var draftValidator = newDraftValidator()

func newDraftValidator() *validator.Validate {
	v := validator.New()
	patterns := map[string]*regexp.Regexp{
		"phone10": phonePattern,
		"time12h": visitTimePattern,
	}
	for tag, pattern := range patterns {
		if err := v.RegisterValidation(tag, matches(pattern)); err != nil {
			panic(fmt.Sprintf("booking: register %s validation: %v", tag, err))
		}
	}
	return v
}

func matches(pattern *regexp.Regexp) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return pattern.MatchString(fl.Field().String())
	}
}

// Validate checks a draft. It returns nil when the draft may be stored, or a
// Rejection carrying exactly one reason.
func Validate(fields models.AppointmentFields) error {
	err := draftValidator.Struct(fields)
	if err == nil {
		return nil
	}

	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		return err
	}

	failed := make(map[string]bool, len(errs))
	for _, e := range errs {
		failed[e.Tag()] = true
	}
	for _, rule := range ruleOrder {
		if failed[rule.tag] {
			return rule.reason
		}
	}
	return err
}
