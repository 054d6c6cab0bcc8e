package listing

import (
	"time"
)

// Criteria is the user-selected filter state. Facets combine with AND;
// values within a facet combine with OR. An empty facet matches all.
type Criteria struct {
	Hoods       []string
	Types       []string
	Weekdays    []string
	TimeBuckets []string
	OnDate      string
}

func (c Criteria) IsZero() bool {
	return len(c.Hoods) == 0 && len(c.Types) == 0 && len(c.Weekdays) == 0 &&
		len(c.TimeBuckets) == 0 && c.OnDate == ""
}

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

func containsAny(set []string, vs []string) bool {
	for _, v := range vs {
		if contains(set, v) {
			return true
		}
	}
	return false
}

// Matches reports whether an item passes every specified facet.
func (c Criteria) Matches(it Item) bool {
	if len(c.Hoods) > 0 && !contains(c.Hoods, it.Place.Hood) {
		return false
	}
	if len(c.Types) > 0 && !containsAny(c.Types, it.Types) {
		return false
	}
	if len(c.Weekdays) > 0 && !contains(c.Weekdays, Weekday(it.Date)) {
		return false
	}
	if len(c.TimeBuckets) > 0 && !contains(c.TimeBuckets, TimeBucket(it.TimeStart)) {
		return false
	}
	if c.OnDate != "" && it.Date != c.OnDate {
		return false
	}
	return true
}

// Filter returns the items matching the criteria, in input order.
func Filter(items []Item, c Criteria) []Item {
	if c.IsZero() {
		return items
	}
	out := make([]Item, 0, len(items))
	for _, it := range items {
		if c.Matches(it) {
			out = append(out, it)
		}
	}
	return out
}

// Upcoming keeps items whose date, taken to end of day, is not yet
// past. Items with unparseable dates drop out here: they have no
// defensible place on a chronological listing.
func Upcoming(items []Item, now time.Time) []Item {
	out := make([]Item, 0, len(items))
	for _, it := range items {
		y, m, d, ok := parseDate(it.Date)
		if !ok {
			continue
		}
		endOfDay := time.Date(y, time.Month(m), d, 23, 59, 59, 0, now.Location())
		if !endOfDay.Before(now) {
			out = append(out, it)
		}
	}
	return out
}

// Past is the complement of Upcoming over parseable dates, used by
// venue and gallery detail pages.
func Past(items []Item, now time.Time) []Item {
	out := make([]Item, 0, len(items))
	for _, it := range items {
		y, m, d, ok := parseDate(it.Date)
		if !ok {
			continue
		}
		endOfDay := time.Date(y, time.Month(m), d, 23, 59, 59, 0, now.Location())
		if endOfDay.Before(now) {
			out = append(out, it)
		}
	}
	return out
}
