package models

import "time"

// User is the identity anchor. Every Customer and Referral belongs to
// exactly one User, and all queries are scoped by its numeric ID.
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"size:255;not null;index" json:"name"`
	Email        *string   `gorm:"uniqueIndex;size:255" json:"email"` // nil when not provided (avoids duplicate '' on unique index)
	Phone        *string   `gorm:"uniqueIndex;size:32" json:"phone"`
	Handle       string    `gorm:"uniqueIndex;size:64;not null" json:"handle"` // external login handle
	PasswordHash string    `gorm:"size:255" json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (User) TableName() string { return "users" }
