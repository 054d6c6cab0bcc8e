package handlers

import (
	"net/http"
	"time"

	"github.com/citybeat/citybeat/internal/calendar"
	"github.com/citybeat/citybeat/internal/helpers"
	"github.com/citybeat/citybeat/internal/listing"
	"github.com/citybeat/citybeat/internal/middleware"
	"github.com/citybeat/citybeat/internal/models"
	"github.com/gin-gonic/gin"
)

func criteriaFromQuery(c *gin.Context) listing.Criteria {
	return listing.Criteria{
		Hoods:       helpers.ParseListParam(c, "hoods"),
		Types:       helpers.ParseListParam(c, "types"),
		Weekdays:    helpers.ParseListParam(c, "weekdays"),
		TimeBuckets: helpers.ParseListParam(c, "times"),
		OnDate:      c.Query("date"),
	}
}

func eventItems(events []models.Event) []listing.Item {
	items := make([]listing.Item, 0, len(events))
	for _, e := range events {
		items = append(items, listing.ItemFromEvent(e))
	}
	return items
}

func ListEvents(c *gin.Context) {
	st := middleware.GetStore(c)
	if st == nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Store connection not found.")
		return
	}

	items := eventItems(st.ListEvents(c.Request.Context()))
	upcoming := listing.Upcoming(items, time.Now())
	hoods, types := listing.Facets(upcoming)
	groups := listing.GroupByDate(listing.Filter(upcoming, criteriaFromQuery(c)))

	c.JSON(http.StatusOK, gin.H{
		"groups": groups,
		"facets": gin.H{
			"hoods": hoods,
			"types": types,
		},
	})
}

// findEventBySlug scans the full collection, falling back to the
// derived slug when a row carries none. Past events still resolve here.
func findEventBySlug(c *gin.Context, slug string) (models.Event, bool) {
	st := middleware.GetStore(c)
	if st == nil {
		return models.Event{}, false
	}
	for _, e := range st.ListEvents(c.Request.Context()) {
		if listing.EffectiveSlug(e.Slug, e.Title) == slug {
			return e, true
		}
	}
	return models.Event{}, false
}

func GetEvent(c *gin.Context) {
	event, found := findEventBySlug(c, c.Param("slug"))
	if !found {
		helpers.RespondWithError(c, http.StatusNotFound, "Event not found.")
		return
	}

	item := listing.ItemFromEvent(event)
	c.JSON(http.StatusOK, gin.H{
		"event":           event,
		"heading":         listing.FormatDateLong(event.Date),
		"time":            listing.FormatTimeRange(event.TimeStart, event.TimeEnd),
		"google_calendar": calendar.GoogleLink(calendar.FromItem(item)),
	})
}
