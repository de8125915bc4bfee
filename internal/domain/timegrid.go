package domain

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// TimeSlot is a position on the venue's half-hour grid: 12:00 is 12, 12:30 is 12.5
type TimeSlot float64

// SlotStep is the grid resolution in hours
const SlotStep TimeSlot = 0.5

// ParseTimeToSlot converts an "HH:MM" string into a TimeSlot.
// Minutes are truncated to the grid: 00-29 map to the full hour, 30-59 to the half hour.
func ParseTimeToSlot(text string) (TimeSlot, error) {
	hourPart, minutePart, ok := strings.Cut(strings.TrimSpace(text), ":")
	if !ok {
		return 0, fmt.Errorf("%w: time %q is not in HH:MM format", ErrParse, text)
	}

	hour, err := strconv.Atoi(hourPart)
	if err != nil {
		return 0, fmt.Errorf("%w: time %q has non-numeric hour", ErrParse, text)
	}
	if hour < 0 || hour >= 24 {
		return 0, fmt.Errorf("%w: time %q has hour outside [0,24)", ErrParse, text)
	}

	minute, err := strconv.Atoi(minutePart)
	if err != nil {
		return 0, fmt.Errorf("%w: time %q has non-numeric minute", ErrParse, text)
	}
	if minute < 0 || minute >= 60 {
		return 0, fmt.Errorf("%w: time %q has minute outside [0,60)", ErrParse, text)
	}

	slot := TimeSlot(hour)
	if minute >= 30 {
		slot += SlotStep
	}
	return slot, nil
}

// String renders the slot back as HH:MM
func (s TimeSlot) String() string {
	hour := math.Floor(float64(s))
	minute := math.Round((float64(s) - hour) * 60)
	return fmt.Sprintf("%02d:%02d", int(hour), int(minute))
}

// DateKey is a canonical YYYY-MM-DD date. Lexicographic order matches chronological order.
type DateKey string

// FormatDate returns the DateKey of the calendar day t falls on, in t's own location
func FormatDate(t time.Time) DateKey {
	return DateKey(t.Format(DateFormat))
}

// ParseDate parses a YYYY-MM-DD string into midnight UTC of that day
func ParseDate(text string) (time.Time, error) {
	date, err := time.Parse(DateFormat, strings.TrimSpace(text))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: date %q is not in YYYY-MM-DD format", ErrParse, text)
	}
	return date, nil
}

// ParseDateKey validates text and returns it as a DateKey
func ParseDateKey(text string) (DateKey, error) {
	date, err := ParseDate(text)
	if err != nil {
		return "", err
	}
	return FormatDate(date), nil
}

// AddDays shifts date by n calendar days and truncates it to midnight.
// Month and year boundaries roll over; the location is kept as is.
func AddDays(date time.Time, n int) time.Time {
	year, month, day := date.Date()
	return time.Date(year, month, day+n, 0, 0, 0, 0, date.Location())
}

// StartOfDay truncates t to midnight in its own location
func StartOfDay(t time.Time) time.Time {
	return AddDays(t, 0)
}

// DateWindow is the inclusive range of dates repeating events are expanded over
type DateWindow struct {
	Min time.Time
	Max time.Time
}

// NewDateWindow returns [today, today+days] relative to now
func NewDateWindow(now time.Time, days int) DateWindow {
	today := StartOfDay(now)
	return DateWindow{
		Min: today,
		Max: AddDays(today, days),
	}
}

// IsEmpty returns true if Min is after Max, in which case nothing is expanded
func (w DateWindow) IsEmpty() bool {
	return StartOfDay(w.Min).After(StartOfDay(w.Max))
}

// Days returns the number of dates covered by the window
func (w DateWindow) Days() int {
	if w.IsEmpty() {
		return 0
	}
	count := 0
	for date, last := StartOfDay(w.Min), StartOfDay(w.Max); !date.After(last); date = AddDays(date, 1) {
		count++
	}
	return count
}

// String renders the window as "min..max"
func (w DateWindow) String() string {
	return fmt.Sprintf("%s..%s", FormatDate(w.Min), FormatDate(w.Max))
}
