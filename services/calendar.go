package services

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"recall/models"

	"github.com/google/uuid"
)

// CallbackDuration is the length of every calendar event created for a callback
const CallbackDuration = 30 * time.Minute

// calendarDateFormat is the compact UTC form used by both Google Calendar and ICS (YYYYMMDDTHHMMSSZ)
const calendarDateFormat = "20060102T150405Z"

// CalendarBaseURL is the event template endpoint of the external calendar service
var CalendarBaseURL = "https://www.google.com/calendar/render"

// ErrNoScheduledTime is returned when a callback has no parsable meeting date
var ErrNoScheduledTime = errors.New("callback has no valid scheduled time")

// CallbackWindow returns the start and end of the calendar event for a call
func CallbackWindow(call models.CallLog) (time.Time, time.Time, error) {
	start, err := ParseMeetingDate(call.ScheduledTime)
	if err != nil {
		return time.Time{}, time.Time{}, ErrNoScheduledTime
	}
	return start.UTC(), start.UTC().Add(CallbackDuration), nil
}

// BuildCalendarLink builds a Google Calendar "create event" URL prefilled with the callback
func BuildCalendarLink(call models.CallLog) (string, error) {
	start, end, err := CallbackWindow(call)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString(CalendarBaseURL)
	b.WriteString("?action=TEMPLATE")
	b.WriteString("&text=" + encodeURIComponent("Callback: "+call.CallerName))
	b.WriteString("&dates=" + start.Format(calendarDateFormat) + "/" + end.Format(calendarDateFormat))
	b.WriteString("&details=" + encodeURIComponent(callbackDetails(call)))
	b.WriteString("&location=" + encodeURIComponent(call.CallerPhone))
	return b.String(), nil
}

func callbackDetails(call models.CallLog) string {
	return call.Summary + "\n\nPhone: " + call.CallerPhone
}

// uriComponentUnescaper restores the characters encodeURIComponent leaves alone
// but url.QueryEscape escapes
var uriComponentUnescaper = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// encodeURIComponent escapes a query value the way JavaScript's encodeURIComponent does
func encodeURIComponent(s string) string {
	return uriComponentUnescaper.Replace(url.QueryEscape(s))
}

// GenerateCallbackICS generates an ICS file content for a callback
func GenerateCallbackICS(call models.CallLog, organizerName, organizerEmail string) ([]byte, error) {
	start, end, err := CallbackWindow(call)
	if err != nil {
		return nil, err
	}

	dtStamp := time.Now().UTC().Format(calendarDateFormat)
	uid := uuid.NewSHA1(uuid.NameSpaceURL, []byte(fmt.Sprintf("recall-callback-%d", call.ID))).String()

	const icsTemplate = "BEGIN:VCALENDAR\r\n" +
		"VERSION:2.0\r\n" +
		"PRODID:-//Recall//Callback//EN\r\n" +
		"CALSCALE:GREGORIAN\r\n" +
		"METHOD:PUBLISH\r\n" +
		"BEGIN:VEVENT\r\n" +
		"UID:%s\r\n" +
		"DTSTAMP:%s\r\n" +
		"DTSTART:%s\r\n" +
		"DTEND:%s\r\n" +
		"SUMMARY:%s\r\n" +
		"DESCRIPTION:%s\r\n" +
		"LOCATION:%s\r\n" +
		"ORGANIZER;CN=\"%s\":mailto:%s\r\n" +
		"STATUS:CONFIRMED\r\n" +
		"END:VEVENT\r\n" +
		"END:VCALENDAR\r\n"

	icsContent := fmt.Sprintf(icsTemplate,
		uid,
		dtStamp,
		start.Format(calendarDateFormat),
		end.Format(calendarDateFormat),
		escapeICSText("Callback: "+call.CallerName),
		escapeICSText(callbackDetails(call)),
		escapeICSText(call.CallerPhone),
		organizerName,
		organizerEmail,
	)

	return []byte(icsContent), nil
}

// escapeICSText escapes TEXT values per RFC 5545 (backslash first)
func escapeICSText(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, ";", "\\;")
	s = strings.ReplaceAll(s, ",", "\\,")
	s = strings.ReplaceAll(s, "\r\n", "\\n")
	s = strings.ReplaceAll(s, "\n", "\\n")
	return s
}
