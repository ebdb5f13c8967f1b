package models

import "time"

// Customer is a contact owned by exactly one User. LastContacted is set
// only as a side effect of a recorded Interaction or an explicit contact
// action, never written directly by profile updates.
//
// Customers are hard-deleted. Deleting one orphans its Interactions (the
// ledger is append-only, rows are never removed) and leaves any Referral
// customer links dangling; readers treat customer_id as advisory.
type Customer struct {
	ID            uint       `gorm:"primaryKey" json:"id"`
	UserID        uint       `gorm:"not null;index" json:"user_id"`
	Name          string     `gorm:"size:255;not null;index" json:"name"`
	ContactInfo   string     `gorm:"size:255" json:"contact_info"` // free text, email or phone
	Notes         string     `gorm:"type:text" json:"notes"`
	LastContacted *time.Time `json:"last_contacted"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

func (Customer) TableName() string { return "customers" }
