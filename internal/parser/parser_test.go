package parser

import (
	"testing"
	"time"

	"github.com/manav03panchal/clubportal/internal/errors"
	"github.com/manav03panchal/clubportal/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Friday 2025-09-12, early evening.
var now = time.Date(2025, 9, 12, 18, 30, 0, 0, time.Local)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"iso", "2025-10-05", "2025-10-05"},
		{"iso_padded", "  2025-10-05 ", "2025-10-05"},
		{"today", "today", "2025-09-12"},
		{"today_caps", "Today", "2025-09-12"},
		{"tomorrow", "tomorrow", "2025-09-13"},
		{"yesterday", "yesterday", "2025-09-11"},
		{"plus_days", "+3d", "2025-09-15"},
		{"plus_weeks", "+2w", "2025-09-26"},
		{"month_rollover", "+20d", "2025-10-02"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate("due", tt.input, now)
			require.NoError(t, err)
			assert.Equal(t, tt.want, model.FormatDate(got))
			assert.Equal(t, 0, got.Hour())
		})
	}
}

func TestParseDateEmpty(t *testing.T) {
	got, err := ParseDate("start", "   ", now)
	require.NoError(t, err)
	assert.True(t, got.IsZero())
}

func TestParseDateNaturalLanguage(t *testing.T) {
	got, err := ParseDate("due", "1 October 2025", now)
	require.NoError(t, err)
	assert.Equal(t, "2025-10-01", model.FormatDate(got))
	assert.Equal(t, 0, got.Hour(), "truncated to the day")
}

func TestParseDateInvalid(t *testing.T) {
	_, err := ParseDate("due", "definitely not a date", now)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrInvalidDate))

	var tpe *TimeParseError
	require.ErrorAs(t, err, &tpe)
	assert.Equal(t, "due", tpe.Field)
	assert.Equal(t, "definitely not a date", tpe.Input)
}

func TestParseStatus(t *testing.T) {
	tests := []struct {
		input   string
		want    model.Status
		wantErr bool
	}{
		{"", "", false},
		{"planned", model.StatusPlanned, false},
		{"In Progress", model.StatusInProgress, false},
		{"in-progress", model.StatusInProgress, false},
		{"in_progress", model.StatusInProgress, false},
		{"BLOCKED", model.StatusBlocked, false},
		{"completed", model.StatusCompleted, false},
		{"done", "", true},
		{"on hold", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseStatus(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, errors.ErrInvalidStatus))
				assert.True(t, errors.IsUserError(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeParseErrorError(t *testing.T) {
	err := NewDateError("due", "someday")
	assert.Contains(t, err.Error(), "invalid due")
	assert.Contains(t, err.Error(), "someday")
}

func TestNewDateErrorDefaultField(t *testing.T) {
	assert.Equal(t, "date", NewDateError("", "x").Field)
}

func TestFormatWithExamples(t *testing.T) {
	result := NewDateError("start", "badday").FormatWithExamples()
	assert.Contains(t, result, "Valid examples:")
	assert.Contains(t, result, "next friday")
	assert.Contains(t, result, "ISO")
}

func TestToUserError(t *testing.T) {
	ue := NewDateError("due", "badday").ToUserError()
	assert.Equal(t, "due", ue.Field)
	assert.Equal(t, "badday", ue.Value)
	assert.NotEmpty(t, ue.Suggestion)
	assert.True(t, errors.Is(ue, errors.ErrInvalidDate))

	bare := &TimeParseError{Field: "due", Input: "x", Message: "bad", Examples: DateExamples}
	assert.Contains(t, bare.ToUserError().Suggestion, "Try: 2025-09-01")
}
