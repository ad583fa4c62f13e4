package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type Project struct {
	ID              string         `gorm:"primaryKey" json:"id"`
	Title           string         `json:"title"`
	Category        string         `json:"category"`
	Description     string         `gorm:"type:text" json:"description"`
	Year            string         `gorm:"size:8" json:"year"`
	Image           string         `json:"image"`
	DetailedContent *string        `gorm:"type:text" json:"detailedContent,omitempty"`
	Technologies    pq.StringArray `gorm:"type:text[]" json:"technologies,omitempty"`
	CreatedAt       time.Time      `json:"-"`
	UpdatedAt       time.Time      `json:"-"`
}

func (p *Project) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
