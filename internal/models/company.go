package models

import "time"

type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// CompanyInfo is a singleton row. It is seeded once and only ever updated.
type CompanyInfo struct {
	ID          uint        `gorm:"primaryKey" json:"-"`
	Name        string      `json:"name"`
	Tagline     string      `json:"tagline"`
	Subline     string      `json:"subline"`
	Description string      `gorm:"type:text" json:"description"`
	Mission     string      `gorm:"type:text" json:"mission"`
	Phone       string      `json:"phone"`
	Email       string      `json:"email"`
	Address     string      `json:"address"`
	Coordinates Coordinates `gorm:"embedded;embeddedPrefix:coord_" json:"coordinates"`
	MapLink     string      `json:"mapLink"`
	Logo        string      `json:"logo"`
	CreatedAt   time.Time   `json:"-"`
	UpdatedAt   time.Time   `json:"-"`
}

func (CompanyInfo) TableName() string {
	return "company_info"
}
