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

func exhibitionItems(exhibitions []models.Exhibition) []listing.Item {
	items := make([]listing.Item, 0, len(exhibitions))
	for _, e := range exhibitions {
		items = append(items, listing.ItemFromExhibition(e))
	}
	return items
}

func ListExhibitions(c *gin.Context) {
	st := middleware.GetStore(c)
	if st == nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Store connection not found.")
		return
	}

	items := exhibitionItems(st.ListExhibitions(c.Request.Context()))
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

func findExhibitionBySlug(c *gin.Context, slug string) (models.Exhibition, bool) {
	st := middleware.GetStore(c)
	if st == nil {
		return models.Exhibition{}, false
	}
	for _, e := range st.ListExhibitions(c.Request.Context()) {
		if listing.EffectiveSlug(e.Slug, e.Title) == slug {
			return e, true
		}
	}
	return models.Exhibition{}, false
}

func GetExhibition(c *gin.Context) {
	exhibition, found := findExhibitionBySlug(c, c.Param("slug"))
	if !found {
		helpers.RespondWithError(c, http.StatusNotFound, "Exhibition not found.")
		return
	}

	item := listing.ItemFromExhibition(exhibition)
	c.JSON(http.StatusOK, gin.H{
		"exhibition":      exhibition,
		"heading":         listing.FormatDateLong(exhibition.Date),
		"time":            listing.FormatTimeRange(exhibition.TimeStart, exhibition.TimeEnd),
		"google_calendar": calendar.GoogleLink(calendar.FromItem(item)),
	})
}
