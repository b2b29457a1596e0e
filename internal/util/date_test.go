package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDateFormats(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  time.Time
		ok    bool
	}{
		{"day first slash", "31/12/2024", time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC), true},
		{"iso", "2024-12-31", time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC), true},
		{"month first only valid reading", "12/25/2024", time.Date(2024, 12, 25, 0, 0, 0, 0, time.UTC), true},
		{"day first dash", "31-12-2024", time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC), true},
		{"ambiguous prefers day first", "03/04/2024", time.Date(2024, 4, 3, 0, 0, 0, 0, time.UTC), true},
		{"single digit day and month", "3/4/2024", time.Date(2024, 4, 3, 0, 0, 0, 0, time.UTC), true},
		{"surrounding whitespace", "  31/12/2024  ", time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC), true},
		{"blank", "", time.Time{}, false},
		{"whitespace only", "   ", time.Time{}, false},
		{"garbage", "not-a-date", time.Time{}, false},
		{"partial", "31/12", time.Time{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseDate(tt.input)
			require.Equal(t, tt.ok, ok)
			if ok {
				assert.True(t, SameDay(tt.want, got), "got %v want %v", got, tt.want)
			}
		})
	}
}

func TestParseDateDeterministic(t *testing.T) {
	a, okA := ParseDate("03/04/2024")
	b, okB := ParseDate("03/04/2024")
	require.True(t, okA)
	require.True(t, okB)
	assert.Equal(t, a, b)
}

func TestFormatDateRoundTrip(t *testing.T) {
	d := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)
	text := FormatDate(d)
	assert.Equal(t, "01/09/2025", text)

	parsed, ok := ParseDate(text)
	require.True(t, ok)
	assert.True(t, SameDay(d, parsed))
}
