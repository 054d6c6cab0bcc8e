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

func ListGalleries(c *gin.Context) {
	st := middleware.GetStore(c)
	if st == nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Store connection not found.")
		return
	}

	galleries := st.ListGalleries(c.Request.Context())
	listing.SortByName(galleries, func(g models.Gallery) string { return g.Name })

	directory := make([]gin.H, 0, len(galleries))
	for _, g := range galleries {
		directory = append(directory, gin.H{
			"slug": listing.EffectiveSlug(g.Slug, g.Name),
			"name": g.Name,
			"hood": g.Hood,
		})
	}

	c.JSON(http.StatusOK, gin.H{"galleries": directory})
}

func GetGallery(c *gin.Context) {
	st := middleware.GetStore(c)
	if st == nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Store connection not found.")
		return
	}

	exhibitionsCh := make(chan []models.Exhibition, 1)
	go func() { exhibitionsCh <- st.ListExhibitions(c.Request.Context()) }()
	galleries := st.ListGalleries(c.Request.Context())
	exhibitions := <-exhibitionsCh

	slug := c.Param("slug")
	var gallery models.Gallery
	found := false
	for _, g := range galleries {
		if listing.EffectiveSlug(g.Slug, g.Name) == slug {
			gallery, found = g, true
			break
		}
	}
	if !found {
		helpers.RespondWithError(c, http.StatusNotFound, "Gallery not found.")
		return
	}

	var matching []listing.Item
	for _, e := range exhibitions {
		if e.GalleryID != nil && *e.GalleryID == gallery.ID {
			matching = append(matching, listing.ItemFromExhibition(e))
		}
	}

	now := time.Now()
	c.JSON(http.StatusOK, gin.H{
		"gallery":  gallery,
		"upcoming": listing.GroupByDate(listing.Upcoming(matching, now)),
		"past":     listing.GroupByDate(listing.Past(matching, now)),
	})
}
