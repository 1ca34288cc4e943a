package usecase

import (
	"fmt"
	"strings"
)

type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func ValidateSubmitSignupInput(input SubmitSignupInput) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(input.Name) == "" {
		errors = append(errors, ValidationError{"name", "is required"})
	}

	if strings.TrimSpace(input.Email) == "" {
		errors = append(errors, ValidationError{"email", "is required"})
	} else if !strings.Contains(input.Email, "@") {
		errors = append(errors, ValidationError{"email", "is invalid"})
	}

	if strings.TrimSpace(input.Message) == "" {
		errors = append(errors, ValidationError{"message", "is required"})
	}

	return errors
}

func ValidateCaptureLeadInput(input CaptureLeadInput) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(input.Salutation) == "" {
		errors = append(errors, ValidationError{"salutation", "is required"})
	}

	if strings.TrimSpace(input.Name) == "" {
		errors = append(errors, ValidationError{"name", "is required"})
	}

	if strings.TrimSpace(input.Email) == "" {
		errors = append(errors, ValidationError{"email", "is required"})
	} else if !strings.Contains(input.Email, "@") {
		errors = append(errors, ValidationError{"email", "is invalid"})
	}

	if strings.TrimSpace(input.Address) == "" {
		errors = append(errors, ValidationError{"address", "is required"})
	}

	return errors
}

func ValidateApplyFollowupInput(input ApplyFollowupInput) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(input.Name) == "" {
		errors = append(errors, ValidationError{"name", "is required"})
	}

	if strings.TrimSpace(input.Email) == "" {
		errors = append(errors, ValidationError{"email", "is required"})
	}

	if strings.TrimSpace(input.FollowupIntent) == "" {
		errors = append(errors, ValidationError{"followup_intent", "is required"})
	}

	if strings.TrimSpace(input.FollowupValue) == "" {
		errors = append(errors, ValidationError{"followup_value", "is required"})
	}

	return errors
}

func validationMessage(errors []ValidationError) string {
	msg := "validation failed: "
	for _, e := range errors {
		msg += e.Field + " (" + e.Message + "), "
	}
	return strings.TrimSuffix(msg, ", ")
}
