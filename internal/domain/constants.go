package domain

import "fmt"

const (
	ReferralStatusPending   = "pending"
	ReferralStatusAccepted  = "accepted"
	ReferralStatusCompleted = "completed"
)

const (
	TierBronze = "Bronze"
	TierSilver = "Silver"
	TierGold   = "Gold"
)

// Completed-referral counts required for each tier.
const (
	SilverThreshold = 20
	GoldThreshold   = 50
)

const (
	PlatformWhatsApp = "whatsapp"
	PlatformSMS      = "sms"
	PlatformEmail    = "email"
)

const (
	SentByCustomer = "customer"
	SentBySystem   = "system"
)

// Activity categories for the dashboard feed.
const (
	ActivityCustomer    = "customer"
	ActivityReward      = "reward"
	ActivityInteraction = "interaction"
)

const (
	OrderAscending  = "asc"
	OrderDescending = "desc"
)

// SentByUser returns the sent_by tag for a message authored by the given user.
func SentByUser(userID uint) string {
	return fmt.Sprintf("user_%d", userID)
}

// ValidReferralStatus reports whether s is one of pending/accepted/completed.
func ValidReferralStatus(s string) bool {
	return s == ReferralStatusPending || s == ReferralStatusAccepted || s == ReferralStatusCompleted
}
