package services

import (
	"errors"
	"strings"
	"time"
)

// NoDateLabel is shown wherever a callback has no usable meeting date
const NoDateLabel = "No date specified"

// DisplayDateLayout renders labels like "Oct 5, 2:00 PM"
const DisplayDateLayout = "Jan 2, 3:04 PM"

// ErrInvalidMeetingDate is returned when a meeting date cannot be parsed
var ErrInvalidMeetingDate = errors.New("invalid meeting date")

// DisplayLocation is the zone naive meeting dates are read in and labels are rendered in.
// Set once at startup from DISPLAY_TIMEZONE.
var DisplayLocation = time.UTC

// Layouts carrying their own offset
var zonedLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02 15:04:05.999999Z07:00",
	"2006-01-02 15:04:05-07",
	"2006-01-02 15:04:05.999999-07",
}

// Layouts without an offset, read in DisplayLocation
var naiveLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04",
	"2006-01-02",
}

// ParseMeetingDate parses a meeting date as stored in the call history table.
// It centralizes every format the source has been seen to produce: RFC 3339 from PostgREST,
// Postgres text timestamps, and naive local date-times typed in by hand.
func ParseMeetingDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, ErrInvalidMeetingDate
	}

	for _, layout := range zonedLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	for _, layout := range naiveLayouts {
		if t, err := time.ParseInLocation(layout, value, DisplayLocation); err == nil {
			return t, nil
		}
	}

	return time.Time{}, ErrInvalidMeetingDate
}

// FormatDisplayDate returns a short label for a meeting date, or NoDateLabel when
// the value is empty or unparsable
func FormatDisplayDate(value string) string {
	t, err := ParseMeetingDate(value)
	if err != nil {
		return NoDateLabel
	}
	return t.In(DisplayLocation).Format(DisplayDateLayout)
}
