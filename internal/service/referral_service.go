package service

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"growthpro/internal/domain"
	"growthpro/internal/repository"
)

// ReferralService computes reward tiers and earnings from a user's
// referral records. Stats is a pure function of the current referral set:
// nothing is cached, every call recomputes from the store.
type ReferralService struct {
	referrals   *repository.ReferralRepository
	linkBaseURL string
}

func NewReferralService(referrals *repository.ReferralRepository, linkBaseURL string) *ReferralService {
	return &ReferralService{referrals: referrals, linkBaseURL: linkBaseURL}
}

type ReferralStats struct {
	TotalReferrals     int64   `json:"total_referrals"`
	CompletedReferrals int64   `json:"completed_referrals"`
	PendingReferrals   int64   `json:"pending_referrals"`
	TotalEarnings      int64   `json:"total_earnings"`
	CurrentTier        string  `json:"current_tier"`
	NextTierProgress   float64 `json:"next_tier_progress"`
}

func (s *ReferralService) Stats(userID uint) (*ReferralStats, error) {
	total, err := s.referrals.CountByOwner(userID)
	if err != nil {
		return nil, err
	}
	completed, err := s.referrals.CountByOwnerAndStatus(userID, domain.ReferralStatusCompleted)
	if err != nil {
		return nil, err
	}
	pending, err := s.referrals.CountByOwnerAndStatus(userID, domain.ReferralStatusPending)
	if err != nil {
		return nil, err
	}
	earnings, err := s.referrals.SumCompletedPoints(userID)
	if err != nil {
		return nil, err
	}
	tier, progress := tierFor(completed)
	return &ReferralStats{
		TotalReferrals:     total,
		CompletedReferrals: completed,
		PendingReferrals:   pending,
		TotalEarnings:      earnings,
		CurrentTier:        tier,
		NextTierProgress:   progress,
	}, nil
}

// tierFor maps a completed-referral count to a tier and a 0-100 progress
// percentage toward the next tier. Gold is terminal and reports 100.
func tierFor(completed int64) (string, float64) {
	var progress float64
	switch {
	case completed >= domain.GoldThreshold:
		return domain.TierGold, 100
	case completed >= domain.SilverThreshold:
		progress = float64(completed-domain.SilverThreshold) / float64(domain.GoldThreshold-domain.SilverThreshold) * 100
		return domain.TierSilver, clamp100(progress)
	default:
		progress = float64(completed) / float64(domain.SilverThreshold) * 100
		return domain.TierBronze, clamp100(progress)
	}
}

func clamp100(v float64) float64 {
	if v > 100 {
		return 100
	}
	return v
}

const linkCodeAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// Link generates a shareable referral link for the user. Codes are not
// persisted; the numeric user id embedded in the code is what attribution
// keys on.
func (s *ReferralService) Link(userID uint) (link, code string, err error) {
	suffix := make([]byte, 6)
	for i := range suffix {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(linkCodeAlphabet))))
		if err != nil {
			return "", "", err
		}
		suffix[i] = linkCodeAlphabet[n.Int64()]
	}
	code = fmt.Sprintf("ref_%d_%s", userID, suffix)
	return fmt.Sprintf("%s/ref/%s", s.linkBaseURL, code), code, nil
}
