package listing

import (
	"testing"
	"time"
)

func sampleItems() []Item {
	return []Item{
		{
			Title: "Jazz Night", Date: "2025-06-01", TimeStart: "19:30", TimeEnd: "22:00",
			Types: []string{"music"}, Slug: "jazz-night",
			Place: Place{Name: "The Hideout", Hood: "Westside"},
		},
		{
			Title: "Morning Sketching", Date: "2025-06-01", TimeStart: "09:00", TimeEnd: "11:00",
			Types: []string{"art", "workshop"},
			Place: Place{Name: "White Cube", Hood: "Riverside"},
		},
		{
			Title: "Pottery Fair", Date: "2025-06-03", TimeStart: "11:00", TimeEnd: "16:00",
			Types: []string{"market"},
			Place: Place{Name: "Old Mill", Hood: "Westside"},
		},
		{
			Title: "Mystery Hour", Date: "2025-06-03", TimeStart: "??", TimeEnd: "",
			Types: []string{"music"},
			Place: Place{Name: "The Hideout", Hood: "Westside"},
		},
	}
}

func titles(items []Item) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.Title)
	}
	return out
}

func TestFilterEmptyCriteriaMatchesAll(t *testing.T) {
	items := sampleItems()
	got := Filter(items, Criteria{})
	if len(got) != len(items) {
		t.Errorf("empty criteria kept %d of %d items", len(got), len(items))
	}
}

func TestCriteriaIsZero(t *testing.T) {
	if !(Criteria{}).IsZero() {
		t.Error("zero criteria should report IsZero")
	}
	nonZero := []Criteria{
		{Hoods: []string{"Westside"}},
		{Types: []string{"music"}},
		{Weekdays: []string{"Sunday"}},
		{TimeBuckets: []string{"Evening"}},
		{OnDate: "2025-06-01"},
	}
	for _, c := range nonZero {
		if c.IsZero() {
			t.Errorf("criteria %+v should not report IsZero", c)
		}
	}
}

func TestFilterFacetsAndAcrossOrWithin(t *testing.T) {
	items := sampleItems()

	// OR within a facet.
	got := Filter(items, Criteria{Hoods: []string{"Westside", "Riverside"}})
	if len(got) != 4 {
		t.Errorf("hood OR: got %d items, want 4", len(got))
	}

	// AND across facets.
	got = Filter(items, Criteria{Hoods: []string{"Westside"}, Types: []string{"music"}})
	if len(got) != 2 {
		t.Fatalf("hood AND type: got %v", titles(got))
	}

	// Tag match needs only one shared tag.
	got = Filter(items, Criteria{Types: []string{"workshop", "market"}})
	if len(got) != 2 {
		t.Errorf("type OR: got %v", titles(got))
	}
}

func TestFilterWeekdayAndBucket(t *testing.T) {
	items := sampleItems()

	// 2025-06-01 is a Sunday.
	got := Filter(items, Criteria{Weekdays: []string{"Sunday"}})
	if len(got) != 2 {
		t.Errorf("weekday: got %v", titles(got))
	}

	got = Filter(items, Criteria{TimeBuckets: []string{"Evening"}})
	if len(got) != 1 || got[0].Title != "Jazz Night" {
		t.Errorf("evening bucket: got %v", titles(got))
	}

	// Unparseable start time matches no bucket filter.
	got = Filter(items, Criteria{TimeBuckets: []string{"Morning", "Midday", "Afternoon", "Evening"}})
	for _, it := range got {
		if it.Title == "Mystery Hour" {
			t.Error("item with junk time should fall out of bucket filtering")
		}
	}
}

func TestFilterOnDate(t *testing.T) {
	got := Filter(sampleItems(), Criteria{OnDate: "2025-06-03"})
	if len(got) != 2 {
		t.Errorf("on-date: got %v", titles(got))
	}
}

func TestFilterIsSubset(t *testing.T) {
	items := sampleItems()
	criteria := []Criteria{
		{},
		{Hoods: []string{"Westside"}},
		{Types: []string{"music"}, Weekdays: []string{"Tuesday"}},
		{TimeBuckets: []string{"Midday"}, OnDate: "2025-06-03"},
		{Hoods: []string{"Nowhere"}},
	}
	for _, crit := range criteria {
		got := Filter(items, crit)
		if len(got) > len(items) {
			t.Fatalf("filter grew the collection: %d > %d", len(got), len(items))
		}
		for _, g := range got {
			found := false
			for _, in := range items {
				if in.Title == g.Title {
					found = true
					break
				}
			}
			if !found {
				t.Errorf("filtered item %q not in input", g.Title)
			}
		}
	}
}

func TestUpcomingKeepsTodayUntilMidnight(t *testing.T) {
	// An event earlier today still counts: the cutoff is end of day.
	now := time.Date(2025, 6, 1, 21, 0, 0, 0, time.Local)
	items := []Item{
		{Title: "Earlier Today", Date: "2025-06-01", TimeStart: "09:00"},
		{Title: "Yesterday", Date: "2025-05-31", TimeStart: "20:00"},
		{Title: "Next Week", Date: "2025-06-08", TimeStart: "20:00"},
		{Title: "No Date", Date: "sometime"},
	}
	got := Upcoming(items, now)
	if len(got) != 2 || got[0].Title != "Earlier Today" || got[1].Title != "Next Week" {
		t.Errorf("Upcoming = %v", titles(got))
	}
}

func TestPastComplementsUpcoming(t *testing.T) {
	now := time.Date(2025, 6, 1, 21, 0, 0, 0, time.Local)
	items := []Item{
		{Title: "Earlier Today", Date: "2025-06-01"},
		{Title: "Yesterday", Date: "2025-05-31"},
		{Title: "No Date", Date: "???"},
	}
	got := Past(items, now)
	if len(got) != 1 || got[0].Title != "Yesterday" {
		t.Errorf("Past = %v", titles(got))
	}
}
