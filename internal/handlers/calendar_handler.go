package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/citybeat/citybeat/internal/calendar"
	"github.com/citybeat/citybeat/internal/helpers"
	"github.com/citybeat/citybeat/internal/listing"
	"github.com/citybeat/citybeat/internal/metrics"
	"github.com/gin-gonic/gin"
)

func serveICS(c *gin.Context, entry calendar.Entry) {
	payload := calendar.ICS(entry, time.Now())
	metrics.CalendarExports.WithLabelValues("ics").Inc()

	c.Header("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", calendar.Filename(entry.Title)))
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", []byte(payload))
}

func redirectGoogle(c *gin.Context, entry calendar.Entry) {
	metrics.CalendarExports.WithLabelValues("google").Inc()
	c.Redirect(http.StatusFound, calendar.GoogleLink(entry))
}

func EventICS(c *gin.Context) {
	event, found := findEventBySlug(c, c.Param("slug"))
	if !found {
		helpers.RespondWithError(c, http.StatusNotFound, "Event not found.")
		return
	}
	serveICS(c, calendar.FromItem(listing.ItemFromEvent(event)))
}

func EventGoogleCalendar(c *gin.Context) {
	event, found := findEventBySlug(c, c.Param("slug"))
	if !found {
		helpers.RespondWithError(c, http.StatusNotFound, "Event not found.")
		return
	}
	redirectGoogle(c, calendar.FromItem(listing.ItemFromEvent(event)))
}

func ExhibitionICS(c *gin.Context) {
	exhibition, found := findExhibitionBySlug(c, c.Param("slug"))
	if !found {
		helpers.RespondWithError(c, http.StatusNotFound, "Exhibition not found.")
		return
	}
	serveICS(c, calendar.FromItem(listing.ItemFromExhibition(exhibition)))
}

func ExhibitionGoogleCalendar(c *gin.Context) {
	exhibition, found := findExhibitionBySlug(c, c.Param("slug"))
	if !found {
		helpers.RespondWithError(c, http.StatusNotFound, "Exhibition not found.")
		return
	}
	redirectGoogle(c, calendar.FromItem(listing.ItemFromExhibition(exhibition)))
}
