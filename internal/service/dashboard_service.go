package service

import (
	"fmt"
	"math"
	"time"

	"growthpro/internal/domain"
	"growthpro/internal/models"
	"growthpro/internal/repository"
)

// DashboardService aggregates counts from the customer, referral and
// interaction collections into a summary view. The individual count
// queries run without a consistent snapshot; under concurrent writes they
// may reflect slightly different points in time, which is accepted for a
// read-mostly dashboard.
type DashboardService struct {
	customers    *repository.CustomerRepository
	referrals    *repository.ReferralRepository
	interactions *repository.InteractionRepository
}

func NewDashboardService(
	customers *repository.CustomerRepository,
	referrals *repository.ReferralRepository,
	interactions *repository.InteractionRepository,
) *DashboardService {
	return &DashboardService{customers: customers, referrals: referrals, interactions: interactions}
}

type Summary struct {
	TotalCustomers     int64      `json:"total_customers"`
	TotalReferrals     int64      `json:"total_referrals"`
	CompletedReferrals int64      `json:"completed_referrals"`
	TotalEngagements   int64      `json:"total_engagements"`
	EngagementRate     float64    `json:"engagement_rate"`
	RecentActivities   []Activity `json:"recent_activities"`
}

type Activity struct {
	Action string    `json:"action"`
	Type   string    `json:"type"`
	Time   time.Time `json:"time"`
}

const maxRecentActivities = 6

func (s *DashboardService) Summary(userID uint) (*Summary, error) {
	totalCustomers, err := s.customers.CountByOwner(userID)
	if err != nil {
		return nil, err
	}
	totalReferrals, err := s.referrals.CountByOwner(userID)
	if err != nil {
		return nil, err
	}
	completedReferrals, err := s.referrals.CountByOwnerAndStatus(userID, domain.ReferralStatusCompleted)
	if err != nil {
		return nil, err
	}
	totalEngagements, err := s.interactions.CountByOwner(userID)
	if err != nil {
		return nil, err
	}
	activities, err := s.recentActivities(userID)
	if err != nil {
		return nil, err
	}
	return &Summary{
		TotalCustomers:     totalCustomers,
		TotalReferrals:     totalReferrals,
		CompletedReferrals: completedReferrals,
		TotalEngagements:   totalEngagements,
		EngagementRate:     engagementRate(totalEngagements, totalCustomers),
		RecentActivities:   activities,
	}, nil
}

// engagementRate is engagements / (customers + 1) as a percentage, rounded
// to 2 decimals. The +1 denominator both avoids division by zero and damps
// the rate for owners with very few customers; callers depend on the
// damped value, so the formula must not be replaced with a zero guard.
func engagementRate(engagements, customers int64) float64 {
	rate := float64(engagements) / float64(customers+1) * 100
	return math.Round(rate*100) / 100
}

// recentActivities builds the feed from three independent queries: the 3
// newest customers, then the 2 newest completed referrals, then the 2
// newest interactions. The order is category-first, not global recency,
// and the result is capped at 6 entries.
func (s *DashboardService) recentActivities(userID uint) ([]Activity, error) {
	activities := make([]Activity, 0, maxRecentActivities+1)

	customers, err := s.customers.RecentByOwner(userID, 3)
	if err != nil {
		return nil, err
	}
	for _, c := range customers {
		activities = append(activities, Activity{
			Action: fmt.Sprintf("New customer added: %s", c.Name),
			Type:   domain.ActivityCustomer,
			Time:   c.CreatedAt,
		})
	}

	rewards, err := s.referrals.RecentCompleted(userID, 2)
	if err != nil {
		return nil, err
	}
	for _, r := range rewards {
		activities = append(activities, Activity{
			Action: fmt.Sprintf("Referral reward earned: %d points", r.RewardPoints),
			Type:   domain.ActivityReward,
			Time:   r.CreatedAt,
		})
	}

	interactions, err := s.interactions.RecentByOwner(userID, 2)
	if err != nil {
		return nil, err
	}
	for _, in := range interactions {
		activities = append(activities, Activity{
			Action: fmt.Sprintf("Customer interaction: %s", truncate(in.Message, 50)),
			Type:   domain.ActivityInteraction,
			Time:   in.Timestamp,
		})
	}

	if len(activities) > maxRecentActivities {
		activities = activities[:maxRecentActivities]
	}
	return activities, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

// Report is the raw customer and referral snapshot behind the dashboard
// reports view.
type Report struct {
	Customers []models.Customer `json:"customers"`
	Referrals []models.Referral `json:"referrals"`
}

func (s *DashboardService) Report(userID uint) (*Report, error) {
	customers, err := s.customers.ListByOwner(userID, 1000, 0)
	if err != nil {
		return nil, err
	}
	referrals, err := s.referrals.ListByOwner(userID, 1000, 0)
	if err != nil {
		return nil, err
	}
	return &Report{Customers: customers, Referrals: referrals}, nil
}
