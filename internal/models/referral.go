package models

import (
	"time"

	"growthpro/internal/domain"
)

// Referral tracks a lead attributed to a User, optionally tied to one of
// their Customers. Only completed referrals contribute reward points to
// earnings; that rule lives in the rewards engine, not in storage.
type Referral struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	UserID       uint      `gorm:"not null;index" json:"user_id"`
	CustomerID   *uint     `gorm:"index" json:"customer_id"`
	ReferredBy   string    `gorm:"size:255" json:"referred_by"`          // free-form origin tag
	Status       string    `gorm:"size:20;not null;index" json:"status"` // pending | accepted | completed
	RewardPoints int       `gorm:"not null;default:0" json:"reward_points"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

func (Referral) TableName() string { return "referrals" }

func (r *Referral) IsCompleted() bool { return r.Status == domain.ReferralStatusCompleted }
