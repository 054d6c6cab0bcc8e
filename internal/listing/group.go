package listing

import (
	"sort"
)

// ItemView is the rendered form of one listing row.
type ItemView struct {
	Slug  string   `json:"slug"`
	Title string   `json:"title"`
	Time  string   `json:"time"`
	Place string   `json:"place"`
	Hood  string   `json:"hood"`
	Types []string `json:"types"`
	Descr string   `json:"descr"`
	Link  string   `json:"link,omitempty"`
}

// Group is one date section of a listing.
type Group struct {
	Date    string     `json:"date"`
	Heading string     `json:"heading"`
	Events  []ItemView `json:"events"`
}

// View renders a single item for display.
func View(it Item) ItemView {
	return ItemView{
		Slug:  EffectiveSlug(it.Slug, it.Title),
		Title: it.Title,
		Time:  FormatTimeRange(it.TimeStart, it.TimeEnd),
		Place: it.Place.Name,
		Hood:  it.Place.Hood,
		Types: it.Types,
		Descr: it.Descr,
		Link:  it.Link,
	}
}

// GroupByDate buckets items under their raw calendar date, orders the
// groups ascending by date and each group's items ascending by start
// time. Unparseable start times sort as midnight; ties keep input order.
func GroupByDate(items []Item) []Group {
	byDate := make(map[string][]Item)
	for _, it := range items {
		byDate[it.Date] = append(byDate[it.Date], it)
	}

	dates := make([]string, 0, len(byDate))
	for date := range byDate {
		dates = append(dates, date)
	}
	// ISO dates order chronologically as plain strings.
	sort.Strings(dates)

	groups := make([]Group, 0, len(dates))
	for _, date := range dates {
		group := byDate[date]
		sort.SliceStable(group, func(i, j int) bool {
			a, _ := minutesOfDay(group[i].TimeStart)
			b, _ := minutesOfDay(group[j].TimeStart)
			return a < b
		})

		views := make([]ItemView, 0, len(group))
		for _, it := range group {
			views = append(views, View(it))
		}
		groups = append(groups, Group{
			Date:    date,
			Heading: FormatDateLong(date),
			Events:  views,
		})
	}
	return groups
}

// Facets derives the distinct hood and type values present in a
// collection, sorted, for filter controls. Empty values are skipped.
func Facets(items []Item) (hoods, types []string) {
	hoodSet := make(map[string]struct{})
	typeSet := make(map[string]struct{})
	for _, it := range items {
		if it.Place.Hood != "" {
			hoodSet[it.Place.Hood] = struct{}{}
		}
		for _, t := range it.Types {
			if t != "" {
				typeSet[t] = struct{}{}
			}
		}
	}
	for h := range hoodSet {
		hoods = append(hoods, h)
	}
	for t := range typeSet {
		types = append(types, t)
	}
	sort.Strings(hoods)
	sort.Strings(types)
	return hoods, types
}
