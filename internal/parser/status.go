package parser

import (
	"strings"

	"github.com/manav03panchal/clubportal/internal/errors"
	"github.com/manav03panchal/clubportal/internal/model"
)

// ParseStatus maps a status flag or form value onto one of the known
// statuses. An empty value returns the empty status so the tracker can apply
// its default.
func ParseStatus(input string) (model.Status, error) {
	if strings.TrimSpace(input) == "" {
		return "", nil
	}
	st, ok := model.ParseStatus(input)
	if !ok {
		labels := make([]string, len(model.Statuses))
		for i, s := range model.Statuses {
			labels[i] = "'" + s.String() + "'"
		}
		ue := errors.NewUserErrorWithField("status", input,
			errors.ErrInvalidStatus.Error(),
			"Use one of "+strings.Join(labels, ", "))
		ue.Cause = errors.ErrInvalidStatus
		return "", ue
	}
	return st, nil
}
