// Package calendar renders a single listing entry as importable
// calendar artifacts: an iCalendar (RFC5545) payload and a Google
// Calendar template link.
//
// Start and end stamps are wall-clock, YYYYMMDDTHHMMSS with no zone
// suffix and no timezone conversion, and both artifacts derive them
// from the same function so they can never disagree.
package calendar

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/citybeat/citybeat/internal/listing"
	"github.com/google/uuid"
)

const prodID = "-//citybeat//listings//EN"

// Entry is the one record a calendar artifact is built from.
type Entry struct {
	Title     string
	Date      string
	TimeStart string
	TimeEnd   string
	Descr     string
	Location  string
	Link      string
}

// FromItem flattens a listing item, preferring the street address as
// the location and falling back to the place name.
func FromItem(it listing.Item) Entry {
	location := it.Place.Address
	if location == "" {
		location = it.Place.Name
	}
	return Entry{
		Title:     it.Title,
		Date:      it.Date,
		TimeStart: it.TimeStart,
		TimeEnd:   it.TimeEnd,
		Descr:     it.Descr,
		Location:  location,
		Link:      it.Link,
	}
}

// FormatStamp builds the shared YYYYMMDDTHHMMSS stamp from a calendar
// date and a clock string. An unparseable clock counts as midnight; an
// unparseable date yields "".
func FormatStamp(date, clock string) string {
	var y, m, d int
	if _, err := fmt.Sscanf(date, "%d-%d-%d", &y, &m, &d); err != nil {
		return ""
	}
	var hour, minute int
	fmt.Sscanf(clock, "%d:%d", &hour, &minute)
	return fmt.Sprintf("%04d%02d%02dT%02d%02d00", y, m, d, hour, minute)
}

// escapeText escapes TEXT property values per RFC5545 3.3.11.
func escapeText(s string) string {
	r := strings.NewReplacer(
		"\\", "\\\\",
		";", "\\;",
		",", "\\,",
		"\r\n", "\\n",
		"\n", "\\n",
	)
	return r.Replace(s)
}

// ICS renders a VCALENDAR/VEVENT block with CRLF line endings. now
// feeds DTSTAMP only.
func ICS(e Entry, now time.Time) string {
	lines := []string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"PRODID:" + prodID,
		"BEGIN:VEVENT",
		"UID:" + uuid.NewString() + "@citybeat",
		"DTSTAMP:" + now.UTC().Format("20060102T150405Z"),
		"DTSTART:" + FormatStamp(e.Date, e.TimeStart),
		"DTEND:" + FormatStamp(e.Date, e.TimeEnd),
		"SUMMARY:" + escapeText(e.Title),
		"DESCRIPTION:" + escapeText(e.Descr),
		"LOCATION:" + escapeText(e.Location),
	}
	if e.Link != "" {
		lines = append(lines, "URL:"+e.Link)
	}
	lines = append(lines, "END:VEVENT", "END:VCALENDAR")
	return strings.Join(lines, "\r\n") + "\r\n"
}

// GoogleLink builds the prefilled Google Calendar URL for an entry.
func GoogleLink(e Entry) string {
	q := url.Values{}
	q.Set("action", "TEMPLATE")
	q.Set("text", e.Title)
	q.Set("dates", FormatStamp(e.Date, e.TimeStart)+"/"+FormatStamp(e.Date, e.TimeEnd))
	q.Set("details", e.Descr)
	q.Set("location", e.Location)
	q.Set("sf", "true")
	q.Set("output", "xml")
	return "https://www.google.com/calendar/render?" + q.Encode()
}

// Filename names the .ics download after the entry title, spaces
// replaced with underscores.
func Filename(title string) string {
	return strings.Join(strings.Fields(title), "_") + ".ics"
}
