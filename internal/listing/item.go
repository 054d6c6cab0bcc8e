package listing

import (
	"regexp"
	"strings"

	"github.com/citybeat/citybeat/internal/models"
)

// Item is the collection-neutral shape the filter engine works on.
// Events and exhibitions both flatten into it, with the joined venue or
// gallery normalized to empty strings when the reference is absent.
type Item struct {
	Title     string
	Date      string
	TimeStart string
	TimeEnd   string
	Types     []string
	Descr     string
	Link      string
	Slug      string
	Place     Place
}

// Place is the venue/gallery half of an Item.
type Place struct {
	Name    string
	Address string
	Hood    string
}

func ItemFromEvent(e models.Event) Item {
	return Item{
		Title:     e.Title,
		Date:      e.Date,
		TimeStart: e.TimeStart,
		TimeEnd:   e.TimeEnd,
		Types:     e.Types,
		Descr:     e.Descr,
		Link:      e.Link,
		Slug:      e.Slug,
		Place: Place{
			Name:    e.Venue.Name,
			Address: e.Venue.Address,
			Hood:    e.Venue.Hood,
		},
	}
}

func ItemFromExhibition(e models.Exhibition) Item {
	return Item{
		Title:     e.Title,
		Date:      e.Date,
		TimeStart: e.TimeStart,
		TimeEnd:   e.TimeEnd,
		Types:     e.Types,
		Descr:     e.Descr,
		Link:      e.Link,
		Slug:      e.Slug,
		Place: Place{
			Name:    e.Gallery.Name,
			Address: e.Gallery.Address,
			Hood:    e.Gallery.Hood,
		},
	}
}

var slugRunRe = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify lowercases, collapses runs of non-alphanumerics to a single
// hyphen and trims leading/trailing hyphens. Idempotent.
func Slugify(text string) string {
	s := strings.ToLower(text)
	s = slugRunRe.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// EffectiveSlug is the lookup key for a record: the stored slug when
// present, otherwise one derived from the display name.
func EffectiveSlug(slug, title string) string {
	if slug != "" {
		return slug
	}
	return Slugify(title)
}
