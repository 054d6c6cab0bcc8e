package models

// Exhibition has the same shape as Event but hangs off a gallery.
type Exhibition struct {
	ID        int64    `gorm:"primaryKey" json:"id"`
	Title     string   `json:"title"`
	Date      string   `json:"date"`
	TimeStart string   `json:"time_start"`
	TimeEnd   string   `json:"time_end"`
	Types     []string `gorm:"serializer:json" json:"types"`
	Descr     string   `json:"descr"`
	Link      string   `json:"link"`
	Slug      string   `json:"slug"`
	GalleryID *int64   `json:"gallery_id"`
	Gallery   Gallery  `json:"gallery"`
}
