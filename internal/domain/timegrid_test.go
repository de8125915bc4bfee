package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimeToSlot(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  TimeSlot
	}{
		{name: "full hour", input: "12:00", want: 12},
		{name: "half hour", input: "12:30", want: 12.5},
		{name: "minutes before half are truncated", input: "12:29", want: 12},
		{name: "minutes after half are truncated", input: "12:59", want: 12.5},
		{name: "single digit hour", input: "9:00", want: 9},
		{name: "midnight", input: "00:00", want: 0},
		{name: "last slot of the day", input: "23:30", want: 23.5},
		{name: "surrounding spaces", input: " 18:00 ", want: 18},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTimeToSlot(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseTimeToSlot_Errors(t *testing.T) {
	inputs := []string{"", "12", "ab:00", "12:xx", "24:00", "-1:00", "12:60", "12:-5", "1200"}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			_, err := ParseTimeToSlot(input)
			assert.ErrorIs(t, err, ErrParse)
		})
	}
}

func TestTimeSlotString(t *testing.T) {
	assert.Equal(t, "12:00", TimeSlot(12).String())
	assert.Equal(t, "12:30", TimeSlot(12.5).String())
	assert.Equal(t, "09:30", TimeSlot(9.5).String())
	assert.Equal(t, "00:00", TimeSlot(0).String())
}

func TestParseDate(t *testing.T) {
	date, err := ParseDate("2024-05-01")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC), date)

	_, err = ParseDate("01.05.2024")
	assert.ErrorIs(t, err, ErrParse)

	_, err = ParseDate("2024-02-30")
	assert.ErrorIs(t, err, ErrParse)

	key, err := ParseDateKey("2024-05-01")
	require.NoError(t, err)
	assert.Equal(t, DateKey("2024-05-01"), key)
}

func TestAddDays(t *testing.T) {
	tests := []struct {
		name  string
		start time.Time
		days  int
		want  DateKey
	}{
		{name: "same month", start: time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC), days: 1, want: "2024-05-02"},
		{name: "month rollover", start: time.Date(2024, time.May, 31, 0, 0, 0, 0, time.UTC), days: 1, want: "2024-06-01"},
		{name: "leap day", start: time.Date(2024, time.February, 28, 0, 0, 0, 0, time.UTC), days: 1, want: "2024-02-29"},
		{name: "year rollover", start: time.Date(2024, time.December, 31, 0, 0, 0, 0, time.UTC), days: 1, want: "2025-01-01"},
		{name: "backwards", start: time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC), days: -1, want: "2024-02-29"},
		{name: "time of day dropped", start: time.Date(2024, time.May, 1, 23, 45, 0, 0, time.UTC), days: 0, want: "2024-05-01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AddDays(tt.start, tt.days)
			assert.Equal(t, tt.want, FormatDate(got))
			assert.Equal(t, 0, got.Hour())
		})
	}
}

func TestDateKeyOrderIsChronological(t *testing.T) {
	start := time.Date(2024, time.December, 25, 0, 0, 0, 0, time.UTC)
	prev := FormatDate(start)
	for i := 1; i < 60; i++ {
		next := FormatDate(AddDays(start, i))
		assert.Less(t, string(prev), string(next))
		prev = next
	}
}

func TestDateWindow(t *testing.T) {
	now := time.Date(2024, time.June, 1, 15, 20, 0, 0, time.UTC)
	window := NewDateWindow(now, 14)

	assert.Equal(t, DateKey("2024-06-01"), FormatDate(window.Min))
	assert.Equal(t, DateKey("2024-06-15"), FormatDate(window.Max))
	assert.Equal(t, 15, window.Days())
	assert.False(t, window.IsEmpty())
	assert.Equal(t, "2024-06-01..2024-06-15", window.String())

	inverted := DateWindow{Min: window.Max, Max: window.Min}
	assert.True(t, inverted.IsEmpty())
	assert.Equal(t, 0, inverted.Days())
}
