package validate

import (
	"strings"
	"testing"

	"github.com/manav03panchal/clubportal/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequired(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    string
		wantErr bool
	}{
		{"plain", "Sam", "Sam", false},
		{"padded", "  Sam  ", "Sam", false},
		{"inner_space", "Sam Lee", "Sam Lee", false},
		{"tabs_and_newlines", "\tSam\n", "Sam", false},
		{"empty", "", "", true},
		{"spaces_only", "   ", "", true},
		{"control_only", "\x00\r\n", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Required("name", tt.value, errors.ErrNameRequired)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, errors.ErrNameRequired))
				assert.True(t, errors.IsUserError(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRequired_CarriesSuggestion(t *testing.T) {
	_, err := Required("name", " ", errors.ErrNameRequired)
	ue, ok := errors.AsUserError(err)
	require.True(t, ok)
	assert.Equal(t, "name", ue.Field)
	assert.Equal(t, "name is required", ue.Message)
	assert.NotEmpty(t, ue.Suggestion)
}

func TestOneOf(t *testing.T) {
	assert.NoError(t, OneOf("format", "csv", "csv", "json", "xlsx"))

	err := OneOf("format", "pdf", "csv", "json", "xlsx")
	require.Error(t, err)
	ue, ok := errors.AsUserError(err)
	require.True(t, ok)
	assert.Equal(t, "pdf", ue.Value)
	assert.Contains(t, ue.Suggestion, "csv, json, xlsx")
}

func TestStripControlChars(t *testing.T) {
	assert.Equal(t, "Sam", StripControlChars("S\x00a\x1bm"))
	assert.Equal(t, "Hack Night", StripControlChars("Hack Night"))
	assert.Equal(t, "ab", StripControlChars("a\r\nb"))
}

func TestSafeFilename(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"attendance", "attendance"},
		{"a/b\\c", "a_b_c"},
		{"  .hidden.  ", "hidden"},
		{"what?*", "what__"},
		{strings.Repeat("x", 250), strings.Repeat("x", 200)},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SafeFilename(tt.in), tt.in)
	}
}
