// Package parser turns form and flag input into domain values.
package parser

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/markusmobius/go-dateparser"

	"github.com/manav03panchal/clubportal/internal/model"
)

// relativeRegex matches day offsets like "+3d" or "+2w".
var relativeRegex = regexp.MustCompile(`^\+(\d+)([dw])$`)

// ParseDate parses a date field relative to now. It accepts:
//   - "2025-09-01" (ISO, tried first)
//   - "today", "tomorrow", "yesterday"
//   - "+3d", "+2w" (offsets from today)
//   - anything go-dateparser understands ("next friday", "1 Oct 2025")
//
// An empty input returns the zero time, which callers treat as "today".
// The result is truncated to the calendar day.
func ParseDate(field, input string, now time.Time) (time.Time, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return time.Time{}, nil
	}

	if t, err := time.ParseInLocation(model.DateLayout, input, now.Location()); err == nil {
		return t, nil
	}

	today := model.DateOf(now)
	switch strings.ToLower(input) {
	case "today", "now":
		return today, nil
	case "tomorrow":
		return today.AddDate(0, 0, 1), nil
	case "yesterday":
		return today.AddDate(0, 0, -1), nil
	}

	if match := relativeRegex.FindStringSubmatch(input); match != nil {
		n, err := strconv.Atoi(match[1])
		if err != nil {
			return time.Time{}, NewDateError(field, input)
		}
		if match[2] == "w" {
			n *= 7
		}
		return today.AddDate(0, 0, n), nil
	}

	cfg := &dateparser.Configuration{
		CurrentTime: now,
	}
	result, err := dateparser.Parse(cfg, input)
	if err != nil || result.Time.IsZero() {
		return time.Time{}, NewDateError(field, input)
	}
	return model.DateOf(result.Time.In(now.Location())), nil
}
