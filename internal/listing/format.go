package listing

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Time-of-day buckets, minutes since midnight, upper bound exclusive.
// 10:00 is Midday, 14:00 is Afternoon, 18:00 is Evening.
const (
	morningEnd   = 600
	middayEnd    = 840
	afternoonEnd = 1080
)

// parseDate splits "2006-01-02" into its components without going
// through a UTC-normalizing constructor.
func parseDate(date string) (year, month, day int, ok bool) {
	parts := strings.Split(date, "-")
	if len(parts) != 3 {
		return 0, 0, 0, false
	}
	year, err1 := strconv.Atoi(parts[0])
	month, err2 := strconv.Atoi(parts[1])
	day, err3 := strconv.Atoi(parts[2])
	if err1 != nil || err2 != nil || err3 != nil {
		return 0, 0, 0, false
	}
	return year, month, day, true
}

// minutesOfDay converts "15:04" to minutes since midnight.
func minutesOfDay(clock string) (int, bool) {
	parts := strings.SplitN(clock, ":", 2)
	if len(parts) != 2 {
		return 0, false
	}
	hour, err1 := strconv.Atoi(parts[0])
	minute, err2 := strconv.Atoi(parts[1])
	if err1 != nil || err2 != nil {
		return 0, false
	}
	return hour*60 + minute, true
}

// localDate builds the wall-clock calendar date. The zero time.Time
// never reaches callers; ok gates every use.
func localDate(date string) (time.Time, bool) {
	y, m, d, ok := parseDate(date)
	if !ok {
		return time.Time{}, false
	}
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.Local), true
}

// Weekday names the day a calendar date falls on ("Sunday"). Returns ""
// for unparseable input.
func Weekday(date string) string {
	t, ok := localDate(date)
	if !ok {
		return ""
	}
	return t.Weekday().String()
}

// TimeBucket assigns a start time to Morning/Midday/Afternoon/Evening.
// Returns "" for unparseable input, which matches no bucket filter.
func TimeBucket(clock string) string {
	mins, ok := minutesOfDay(clock)
	if !ok {
		return ""
	}
	switch {
	case mins < morningEnd:
		return "Morning"
	case mins < middayEnd:
		return "Midday"
	case mins < afternoonEnd:
		return "Afternoon"
	default:
		return "Evening"
	}
}

// FormatTime12h renders "19:30" as "7:30PM" and "22:00" as "10PM",
// dropping :00 minutes. Returns "" for anything it cannot parse.
func FormatTime12h(clock string) string {
	parts := strings.SplitN(clock, ":", 2)
	if len(parts) != 2 {
		return ""
	}
	hour, err1 := strconv.Atoi(parts[0])
	minute, err2 := strconv.Atoi(parts[1])
	if err1 != nil || err2 != nil {
		return ""
	}
	suffix := "AM"
	if hour >= 12 {
		suffix = "PM"
	}
	display := hour % 12
	if display == 0 {
		display = 12
	}
	if minute == 0 {
		return fmt.Sprintf("%d%s", display, suffix)
	}
	return fmt.Sprintf("%d:%s%s", display, parts[1], suffix)
}

// FormatTimeRange joins start and end as shown in listings, e.g.
// "7:30PM – 10PM". Either side may come out empty.
func FormatTimeRange(start, end string) string {
	s, e := FormatTime12h(start), FormatTime12h(end)
	if s == "" && e == "" {
		return ""
	}
	return fmt.Sprintf("%s – %s", s, e)
}

// FormatDateLong renders a date heading, "Sunday, June 1, 2025".
func FormatDateLong(date string) string {
	t, ok := localDate(date)
	if !ok {
		return ""
	}
	return t.Format("Monday, January 2, 2006")
}
