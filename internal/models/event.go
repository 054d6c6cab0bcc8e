package models

// Event is a row in the upstream `events` table joined with its venue.
// Date and times stay as the wall-clock strings the store holds
// ("2006-01-02" and "15:04"); they are never routed through UTC.
type Event struct {
	ID        int64    `gorm:"primaryKey" json:"id"`
	Title     string   `json:"title"`
	Date      string   `json:"date"`
	TimeStart string   `json:"time_start"`
	TimeEnd   string   `json:"time_end"`
	Types     []string `gorm:"serializer:json" json:"types"`
	Descr     string   `json:"descr"`
	Link      string   `json:"link"`
	Slug      string   `json:"slug"`
	VenueID   *int64   `json:"venue_id"`
	Venue     Venue    `json:"venue"`
}
