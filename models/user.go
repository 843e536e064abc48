package models

import "time"

type User struct {
	ID        uint      `gorm:"primaryKey" json:"userId"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	Role      string    `gorm:"size:32;index;default:user" json:"role"`
	Password  string    `json:"-"`
	IsOnline  bool      `json:"isOnline"`
	LastSeen  time.Time `json:"lastSeen"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"-"`
}
