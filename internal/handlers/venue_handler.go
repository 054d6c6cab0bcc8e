package handlers

import (
	"net/http"
	"time"

	"github.com/citybeat/citybeat/internal/helpers"
	"github.com/citybeat/citybeat/internal/listing"
	"github.com/citybeat/citybeat/internal/middleware"
	"github.com/citybeat/citybeat/internal/models"
	"github.com/gin-gonic/gin"
)

func ListVenues(c *gin.Context) {
	st := middleware.GetStore(c)
	if st == nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Store connection not found.")
		return
	}

	venues := st.ListVenues(c.Request.Context())
	listing.SortByName(venues, func(v models.Venue) string { return v.Name })

	directory := make([]gin.H, 0, len(venues))
	for _, v := range venues {
		directory = append(directory, gin.H{
			"slug": listing.EffectiveSlug(v.Slug, v.Name),
			"name": v.Name,
			"hood": v.Hood,
		})
	}

	c.JSON(http.StatusOK, gin.H{"venues": directory})
}

func GetVenue(c *gin.Context) {
	st := middleware.GetStore(c)
	if st == nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Store connection not found.")
		return
	}

	// Detail pages need both collections; fetch them as a pair.
	eventsCh := make(chan []models.Event, 1)
	go func() { eventsCh <- st.ListEvents(c.Request.Context()) }()
	venues := st.ListVenues(c.Request.Context())
	events := <-eventsCh

	slug := c.Param("slug")
	var venue models.Venue
	found := false
	for _, v := range venues {
		if listing.EffectiveSlug(v.Slug, v.Name) == slug {
			venue, found = v, true
			break
		}
	}
	if !found {
		helpers.RespondWithError(c, http.StatusNotFound, "Venue not found.")
		return
	}

	var matching []listing.Item
	for _, e := range events {
		if e.VenueID != nil && *e.VenueID == venue.ID {
			matching = append(matching, listing.ItemFromEvent(e))
		}
	}

	now := time.Now()
	c.JSON(http.StatusOK, gin.H{
		"venue":    venue,
		"upcoming": listing.GroupByDate(listing.Upcoming(matching, now)),
		"past":     listing.GroupByDate(listing.Past(matching, now)),
	})
}
