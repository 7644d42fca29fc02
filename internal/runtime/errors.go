package runtime

import (
	"github.com/manav03panchal/clubportal/internal/errors"
)

// GetSuggestion returns a suggestion for an error, falling back to a generic
// hint for its category.
func GetSuggestion(err error) string {
	if s := errors.GetSuggestion(err); s != "" {
		return s
	}
	return errors.GetCategorySuggestion(err)
}

// FormatError formats an error for the terminal. Debug mode shows the whole
// wrap chain instead of the friendly form.
func FormatError(err error, debug bool) string {
	if debug {
		return errors.FormatDebugError(err)
	}
	return errors.FormatUserError(err)
}
