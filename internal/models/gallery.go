package models

type Gallery struct {
	ID           int64  `gorm:"primaryKey" json:"id"`
	Name         string `json:"name"`
	Address      string `json:"address"`
	Hood         string `json:"hood"`
	WorkingHours string `json:"working_hours"`
	Website      string `json:"website"`
	Slug         string `json:"slug"`
}
