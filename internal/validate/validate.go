// Package validate provides input checks for the club portal forms.
//
// The only rule the portal enforces is presence: a check-in needs a name and
// a project needs a project name. Everything else is stored as typed.
package validate

import (
	"github.com/manav03panchal/clubportal/internal/errors"
)

// Required trims value and returns it, or a UserError matching sentinel when
// nothing is left.
func Required(field, value string, sentinel error) (string, error) {
	value = Trim(value)
	if value == "" {
		return "", errors.Required(field, sentinel)
	}
	return value, nil
}

// OneOf validates that value is one of allowed.
func OneOf(field, value string, allowed ...string) error {
	for _, a := range allowed {
		if value == a {
			return nil
		}
	}
	return errors.NewUserErrorWithField(field, value,
		"Unsupported "+field,
		"Use one of: "+join(allowed))
}

func join(values []string) string {
	out := ""
	for i, v := range values {
		if i > 0 {
			out += ", "
		}
		out += v
	}
	return out
}
