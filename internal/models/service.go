package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// ServiceIcon is the closed set of glyphs a service card may carry.
type ServiceIcon string

const (
	IconServer    ServiceIcon = "server"
	IconNetwork   ServiceIcon = "network"
	IconBriefcase ServiceIcon = "briefcase"
)

var serviceIcons = map[ServiceIcon]struct{}{
	IconServer:    {},
	IconNetwork:   {},
	IconBriefcase: {},
}

func (i ServiceIcon) Valid() bool {
	_, ok := serviceIcons[i]
	return ok
}

type Service struct {
	ID              string         `gorm:"primaryKey" json:"id"`
	Category        string         `json:"category"`
	Icon            ServiceIcon    `gorm:"size:32" json:"icon"`
	Description     string         `gorm:"type:text" json:"description"`
	Features        pq.StringArray `gorm:"type:text[]" json:"features"`
	DetailedContent *string        `gorm:"type:text" json:"detailedContent,omitempty"`
	CreatedAt       time.Time      `json:"-"`
	UpdatedAt       time.Time      `json:"-"`
}

func (s *Service) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	if s.Features == nil {
		s.Features = pq.StringArray{}
	}
	return nil
}
