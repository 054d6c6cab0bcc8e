package store

import (
	"context"
	"log/slog"

	"github.com/citybeat/citybeat/internal/metrics"
	"github.com/citybeat/citybeat/internal/models"
	"gorm.io/gorm"
)

// Store is the read-only surface over the hosted relational backend.
//
// Every list operation is fail-open: a broken connection or query error
// degrades to an empty collection, logged for operators but never
// surfaced to the viewer. Callers treat "no rows" and "fetch failed"
// identically.
type Store interface {
	ListEvents(ctx context.Context) []models.Event
	ListExhibitions(ctx context.Context) []models.Exhibition
	ListVenues(ctx context.Context) []models.Venue
	ListGalleries(ctx context.Context) []models.Gallery
}

type gormStore struct {
	db *gorm.DB
}

func New(db *gorm.DB) Store {
	return &gormStore{db: db}
}

func (s *gormStore) ListEvents(ctx context.Context) []models.Event {
	var events []models.Event
	err := s.db.WithContext(ctx).
		Preload("Venue").
		Order("date ASC").
		Find(&events).Error
	if err != nil {
		slog.Error("store: can't list events", "error", err)
		metrics.QueryError("events")
		return []models.Event{}
	}
	metrics.QueryOK("events")
	return events
}

func (s *gormStore) ListExhibitions(ctx context.Context) []models.Exhibition {
	var exhibitions []models.Exhibition
	err := s.db.WithContext(ctx).
		Preload("Gallery").
		Order("date ASC").
		Find(&exhibitions).Error
	if err != nil {
		slog.Error("store: can't list exhibitions", "error", err)
		metrics.QueryError("exhibitions")
		return []models.Exhibition{}
	}
	metrics.QueryOK("exhibitions")
	return exhibitions
}

func (s *gormStore) ListVenues(ctx context.Context) []models.Venue {
	var venues []models.Venue
	err := s.db.WithContext(ctx).
		Order("name ASC").
		Find(&venues).Error
	if err != nil {
		slog.Error("store: can't list venues", "error", err)
		metrics.QueryError("venues")
		return []models.Venue{}
	}
	metrics.QueryOK("venues")
	return venues
}

func (s *gormStore) ListGalleries(ctx context.Context) []models.Gallery {
	var galleries []models.Gallery
	err := s.db.WithContext(ctx).
		Order("name ASC").
		Find(&galleries).Error
	if err != nil {
		slog.Error("store: can't list galleries", "error", err)
		metrics.QueryError("galleries")
		return []models.Gallery{}
	}
	metrics.QueryOK("galleries")
	return galleries
}
