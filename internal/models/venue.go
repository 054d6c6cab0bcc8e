package models

// Venue is a row in the upstream `venues` table. WorkingHours is a
// free-form multi-line block, one "day: hours" entry per line.
type Venue struct {
	ID           int64  `gorm:"primaryKey" json:"id"`
	Name         string `json:"name"`
	Address      string `json:"address"`
	Hood         string `json:"hood"`
	WorkingHours string `json:"working_hours"`
	Website      string `json:"website"`
	Slug         string `json:"slug"`
}
