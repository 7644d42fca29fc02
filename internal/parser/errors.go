package parser

import (
	"fmt"
	"strings"

	"github.com/manav03panchal/clubportal/internal/errors"
)

// TimeParseError represents a date parsing error with helpful suggestions.
type TimeParseError struct {
	Input      string
	Field      string
	Message    string
	Examples   []string
	Suggestion string
}

func (e *TimeParseError) Error() string {
	return fmt.Sprintf("invalid %s '%s': %s", e.Field, e.Input, e.Message)
}

// Unwrap lets errors.Is match ErrInvalidDate.
func (e *TimeParseError) Unwrap() error {
	return errors.ErrInvalidDate
}

// DateExamples provides example date formats.
var DateExamples = []string{
	"2025-09-01",
	"today",
	"tomorrow",
	"+2w",
	"next friday",
	"1 Oct 2025",
}

// NewDateError creates a date parse error with standard examples.
func NewDateError(field, input string) *TimeParseError {
	if field == "" {
		field = "date"
	}
	return &TimeParseError{
		Input:      input,
		Field:      field,
		Message:    "could not parse date",
		Examples:   DateExamples,
		Suggestion: "Dates can be ISO (2025-09-01), relative (+3d), or natural language (next friday).",
	}
}

// FormatWithExamples returns the error message with example suggestions.
func (e *TimeParseError) FormatWithExamples() string {
	var sb strings.Builder
	sb.WriteString(e.Error())

	if len(e.Examples) > 0 {
		sb.WriteString("\n\nValid examples:\n")
		for _, ex := range e.Examples {
			sb.WriteString("  - ")
			sb.WriteString(ex)
			sb.WriteString("\n")
		}
	}

	if e.Suggestion != "" {
		sb.WriteString("\n")
		sb.WriteString(e.Suggestion)
	}

	return sb.String()
}

// ToUserError converts a TimeParseError to a UserError for consistent handling.
func (e *TimeParseError) ToUserError() *errors.UserError {
	suggestion := e.Suggestion
	if len(e.Examples) > 0 && suggestion == "" {
		suggestion = fmt.Sprintf("Try: %s", strings.Join(e.Examples[:min(3, len(e.Examples))], ", "))
	}

	ue := errors.NewUserErrorWithField(e.Field, e.Input, e.Message, suggestion)
	ue.Cause = errors.ErrInvalidDate
	return ue
}
