package calendar

import (
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/citybeat/citybeat/internal/listing"
)

var jazzNight = Entry{
	Title:     "Jazz Night",
	Date:      "2025-06-01",
	TimeStart: "19:30",
	TimeEnd:   "22:00",
	Descr:     "Late set, door charge",
	Location:  "12 Canal St",
	Link:      "https://example.com/jazz",
}

func TestFormatStamp(t *testing.T) {
	if got := FormatStamp("2025-06-01", "19:30"); got != "20250601T193000" {
		t.Errorf("FormatStamp = %q", got)
	}
	// Junk clock falls back to midnight rather than failing the export.
	if got := FormatStamp("2025-06-01", ""); got != "20250601T000000" {
		t.Errorf("FormatStamp with empty clock = %q", got)
	}
	if got := FormatStamp("whenever", "19:30"); got != "" {
		t.Errorf("FormatStamp with junk date = %q", got)
	}
}

func TestICSStructure(t *testing.T) {
	now := time.Date(2025, 5, 20, 12, 0, 0, 0, time.UTC)
	payload := ICS(jazzNight, now)

	for _, want := range []string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"BEGIN:VEVENT",
		"DTSTART:20250601T193000",
		"DTEND:20250601T220000",
		"DTSTAMP:20250520T120000Z",
		"SUMMARY:Jazz Night",
		"DESCRIPTION:Late set\\, door charge",
		"LOCATION:12 Canal St",
		"URL:https://example.com/jazz",
		"END:VEVENT",
		"END:VCALENDAR",
	} {
		if !strings.Contains(payload, want) {
			t.Errorf("ICS missing %q", want)
		}
	}

	// RFC5545 wants CRLF endings on every line.
	for i, line := range strings.Split(strings.TrimSuffix(payload, "\r\n"), "\r\n") {
		if strings.Contains(line, "\n") {
			t.Errorf("line %d has a bare newline: %q", i, line)
		}
	}
	if strings.Contains(strings.ReplaceAll(payload, "\r\n", ""), "\n") {
		t.Error("ICS contains LF endings without CR")
	}
}

func TestICSEscaping(t *testing.T) {
	e := Entry{Title: "A;B,C\\D", Date: "2025-06-01", Descr: "line1\nline2"}
	payload := ICS(e, time.Now())
	if !strings.Contains(payload, `SUMMARY:A\;B\,C\\D`) {
		t.Errorf("summary not escaped: %s", payload)
	}
	if !strings.Contains(payload, `DESCRIPTION:line1\nline2`) {
		t.Errorf("description newline not escaped: %s", payload)
	}
}

func TestGoogleLink(t *testing.T) {
	link := GoogleLink(jazzNight)
	u, err := url.Parse(link)
	if err != nil {
		t.Fatal(err)
	}
	if u.Host != "www.google.com" || u.Path != "/calendar/render" {
		t.Errorf("unexpected endpoint %s", link)
	}
	q := u.Query()
	if q.Get("action") != "TEMPLATE" {
		t.Errorf("action = %q", q.Get("action"))
	}
	if q.Get("dates") != "20250601T193000/20250601T220000" {
		t.Errorf("dates = %q", q.Get("dates"))
	}
	if q.Get("text") != "Jazz Night" || q.Get("location") != "12 Canal St" {
		t.Errorf("text/location = %q / %q", q.Get("text"), q.Get("location"))
	}
}

// Both artifacts must agree on start and end once format differences
// are stripped.
func TestICSAndGoogleLinkAgree(t *testing.T) {
	payload := ICS(jazzNight, time.Now())

	var dtstart, dtend string
	for _, line := range strings.Split(payload, "\r\n") {
		if v, ok := strings.CutPrefix(line, "DTSTART:"); ok {
			dtstart = v
		}
		if v, ok := strings.CutPrefix(line, "DTEND:"); ok {
			dtend = v
		}
	}

	u, err := url.Parse(GoogleLink(jazzNight))
	if err != nil {
		t.Fatal(err)
	}
	if got := u.Query().Get("dates"); got != dtstart+"/"+dtend {
		t.Errorf("google dates %q disagree with ICS %q/%q", got, dtstart, dtend)
	}
}

func TestICSOmitsURLWithoutLink(t *testing.T) {
	e := Entry{Title: "Quiet Hour", Date: "2025-06-01"}
	if payload := ICS(e, time.Now()); strings.Contains(payload, "URL:") {
		t.Errorf("ICS should carry no URL property without a link: %s", payload)
	}
}

func TestFromItem(t *testing.T) {
	it := listing.Item{
		Title: "Opening",
		Date:  "2025-06-01",
		Link:  "https://example.com/opening",
		Place: listing.Place{Name: "White Cube", Address: "3 River Rd"},
	}
	if got := FromItem(it).Location; got != "3 River Rd" {
		t.Errorf("location = %q, want address", got)
	}
	if got := FromItem(it).Link; got != "https://example.com/opening" {
		t.Errorf("link = %q, want the item's external link", got)
	}

	it.Place.Address = ""
	if got := FromItem(it).Location; got != "White Cube" {
		t.Errorf("location = %q, want venue name fallback", got)
	}
}

func TestFilename(t *testing.T) {
	if got := Filename("Jazz  Night"); got != "Jazz_Night.ics" {
		t.Errorf("Filename = %q", got)
	}
}
