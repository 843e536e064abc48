package models

import "time"

// Category values are display hints only; they never affect routing.
const (
	CategoryInfo    = "info"
	CategoryWarning = "warning"
	CategoryError   = "error"
)

type Notification struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index:idx_user_read,priority:1" json:"userId"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	Category  string    `gorm:"size:32;default:info" json:"category"`
	IsRead    bool      `gorm:"index:idx_user_read,priority:2" json:"isRead"`
	CreatedAt time.Time `json:"createdAt"`
}
