package models

import "time"

// ContactMessage is submitted by the public contact form. Once stored it is
// only ever listed or deleted.
type ContactMessage struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `gorm:"type:text" json:"message"`
	IsRead    bool      `json:"isRead"`
	CreatedAt time.Time `gorm:"index" json:"createdAt"`
}
