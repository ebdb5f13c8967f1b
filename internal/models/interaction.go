package models

import "time"

// Interaction is an immutable, append-only ledger entry scoped to one
// Customer. There is no UpdatedAt and no soft delete: entries are never
// mutated or reordered after creation, corrections are new entries.
type Interaction struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	CustomerID uint      `gorm:"not null;index" json:"customer_id"`
	Message    string    `gorm:"type:text;not null" json:"message"`
	Timestamp  time.Time `gorm:"not null;index" json:"timestamp"`
	SentBy     string    `gorm:"size:64;not null" json:"sent_by"` // user_<id> | customer | system

	Customer Customer `gorm:"foreignKey:CustomerID" json:"-"`
}

func (Interaction) TableName() string { return "interactions" }

// IsFromUser reports whether the entry was authored by the owning user.
func (i *Interaction) IsFromUser() bool {
	return len(i.SentBy) > 5 && i.SentBy[:5] == "user_"
}
