package server

import (
	"fmt"
	"os"

	"github.com/citybeat/citybeat/config"
	"github.com/citybeat/citybeat/internal/handlers"
	"github.com/citybeat/citybeat/internal/middleware"
	"github.com/citybeat/citybeat/internal/store"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func Start() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %v", err)
	}

	db, err := config.InitDatabase(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %v", err)
	}

	r := gin.Default()

	setupRoutes(r, store.New(db))

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	return r.Run(":" + port)
}

func setupRoutes(r *gin.Engine, st store.Store) {
	r.Use(middleware.StoreMiddleware(st))

	r.GET("/ping", handlers.Ping)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := r.Group("/v1")
	{
		events := v1.Group("/events")
		{
			events.GET("", handlers.ListEvents)
			events.GET("/:slug", handlers.GetEvent)
			events.GET("/:slug/calendar.ics", handlers.EventICS)
			events.GET("/:slug/google-calendar", handlers.EventGoogleCalendar)
		}

		exhibitions := v1.Group("/exhibitions")
		{
			exhibitions.GET("", handlers.ListExhibitions)
			exhibitions.GET("/:slug", handlers.GetExhibition)
			exhibitions.GET("/:slug/calendar.ics", handlers.ExhibitionICS)
			exhibitions.GET("/:slug/google-calendar", handlers.ExhibitionGoogleCalendar)
		}

		venues := v1.Group("/venues")
		{
			venues.GET("", handlers.ListVenues)
			venues.GET("/:slug", handlers.GetVenue)
		}

		galleries := v1.Group("/galleries")
		{
			galleries.GET("", handlers.ListGalleries)
			galleries.GET("/:slug", handlers.GetGallery)
		}
	}
}
