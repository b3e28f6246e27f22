package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/XiaoConstantine/pareto-go/pkg/errors"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Tag     string
	Value   interface{}
	Message string
}

func (e *ValidationError) Error() string {
	if e.Message != "" {
		return e.Message
	}

	switch e.Tag {
	case "required":
		return fmt.Sprintf("%s is required", e.Field)
	case "min":
		return fmt.Sprintf("%s is below the minimum", e.Field)
	case "gte":
		return fmt.Sprintf("%s must be non-negative", e.Field)
	case "oneof":
		return fmt.Sprintf("%s must be one of the allowed values", e.Field)
	case "unique":
		return fmt.Sprintf("%s contains duplicates", e.Field)
	default:
		return fmt.Sprintf("%s failed validation", e.Field)
	}
}

// ValidationErrors represents multiple validation errors.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	var messages []string
	for _, err := range e {
		messages = append(messages, err.Error())
	}
	return fmt.Sprintf("validation failed: %s", strings.Join(messages, "; "))
}

// Validator provides configuration validation.
type Validator struct {
	validate *validator.Validate
}

// NewValidator creates a new configuration validator.
func NewValidator() (*Validator, error) {
	return &Validator{validate: validator.New()}, nil
}

// ValidateConfig validates a frontier configuration struct, including
// cross-field invariants the tag grammar cannot express.
func (v *Validator) ValidateConfig(cfg *FrontierConfig) error {
	if cfg == nil {
		return errors.New(errors.InvalidInput, "config cannot be nil")
	}

	if err := v.validate.Struct(cfg); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok {
			out := make(ValidationErrors, 0, len(verrs))
			for _, ve := range verrs {
				out = append(out, ValidationError{
					Field: ve.Field(),
					Tag:   ve.Tag(),
					Value: ve.Value(),
				})
			}
			return errors.Wrap(out, errors.ValidationFailed, "invalid frontier config")
		}
		return errors.Wrap(err, errors.ValidationFailed, "invalid frontier config")
	}

	// Every declared objective needs a direction.
	for _, name := range cfg.Objectives {
		if _, ok := cfg.Directions[name]; !ok {
			return errors.WithFields(
				errors.Newf(errors.InvalidObjective, "objective %q has no declared direction", name),
				errors.Fields{"objective": name},
			)
		}
	}

	// An explicit reference point must cover the declared objectives.
	if cfg.ReferencePoint != nil {
		for _, name := range cfg.Objectives {
			if _, ok := cfg.ReferencePoint[name]; !ok {
				return errors.WithFields(
					errors.Newf(errors.InvalidObjective, "reference point missing objective %q", name),
					errors.Fields{"objective": name},
				)
			}
		}
	}

	return nil
}
