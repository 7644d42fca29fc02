package errors

import "errors"

// Suggestions maps common errors to helpful suggestions.
var Suggestions = map[error]string{
	ErrNameRequired:        "Please enter your name.",
	ErrProjectNameRequired: "Give the project a name before adding it.",
	ErrInvalidStatus:       "Status must be one of: Planned, In Progress, Blocked, Completed.",
	ErrInvalidDate:         "Use YYYY-MM-DD or a phrase like 'next friday'.",

	ErrMalformedTable:   "The backing CSV file has unexpected contents. Fix or move it aside and try again.",
	ErrDiskFull:         "Free up disk space and try again. Nothing was written.",
	ErrPermissionDenied: "Check file permissions in your data directory (~/.local/share/clubportal/).",
}

// GetSuggestion returns a suggestion for an error, if available.
func GetSuggestion(err error) string {
	if err == nil {
		return ""
	}

	for knownErr, suggestion := range Suggestions {
		if errors.Is(err, knownErr) {
			return suggestion
		}
	}

	if ue, ok := AsUserError(err); ok && ue.Suggestion != "" {
		return ue.Suggestion
	}
	if IsPermission(err) {
		return Suggestions[ErrPermissionDenied]
	}

	return ""
}

// GetCategorySuggestion returns a generic suggestion based on error category.
func GetCategorySuggestion(err error) string {
	switch Classify(err) {
	case CategoryUser:
		return "Check your input and try again. Use --help for usage information."
	case CategorySystem:
		return "This is a system error. Check the data directory and try again."
	}
	return ""
}

// CommandExamples provides example commands for common errors.
var CommandExamples = map[error][]string{
	ErrNameRequired: {
		"clubportal attend \"Ada Lovelace\"",
	},
	ErrProjectNameRequired: {
		"clubportal project add \"Website Refresh\" --owner \"Team Web\"",
		"clubportal project add \"Hack Night\" --status planned --due 2025-10-05",
	},
	ErrInvalidDate: {
		"clubportal project add \"Demo Day\" --start today --due \"next friday\"",
	},
}

// GetExamples returns example commands for an error.
func GetExamples(err error) []string {
	for knownErr, examples := range CommandExamples {
		if errors.Is(err, knownErr) {
			return examples
		}
	}
	return nil
}
