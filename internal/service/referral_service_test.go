package service

import (
	"strings"
	"testing"

	"growthpro/internal/domain"
	"growthpro/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTierFor(t *testing.T) {
	cases := []struct {
		completed int64
		tier      string
		progress  float64
	}{
		{0, domain.TierBronze, 0},
		{10, domain.TierBronze, 50},
		{19, domain.TierBronze, 95},
		{20, domain.TierSilver, 0},
		{35, domain.TierSilver, 50},
		{49, domain.TierSilver, 96.666},
		{50, domain.TierGold, 100},
		{120, domain.TierGold, 100},
	}
	for _, tc := range cases {
		tier, progress := tierFor(tc.completed)
		assert.Equal(t, tc.tier, tier, "completed=%d", tc.completed)
		assert.InDelta(t, tc.progress, progress, 0.01, "completed=%d", tc.completed)
	}
}

func TestTierProgressMonotoneAndCapped(t *testing.T) {
	prevTier, prevProgress := tierFor(0)
	for c := int64(1); c <= 80; c++ {
		tier, progress := tierFor(c)
		assert.LessOrEqual(t, progress, 100.0)
		if tier == prevTier {
			assert.GreaterOrEqual(t, progress, prevProgress, "progress must not decrease within a tier (completed=%d)", c)
		}
		prevTier, prevProgress = tier, progress
	}
}

func TestStatsCountsAndEarnings(t *testing.T) {
	db := newTestDB(t)
	owner := seedUser(t, db, "owner")
	other := seedUser(t, db, "other")

	seedReferral(t, db, owner.ID, domain.ReferralStatusCompleted, 100)
	seedReferral(t, db, owner.ID, domain.ReferralStatusCompleted, 50)
	// Nonzero points on non-completed referrals must not count as earnings.
	seedReferral(t, db, owner.ID, domain.ReferralStatusPending, 30)
	seedReferral(t, db, owner.ID, domain.ReferralStatusAccepted, 70)
	seedReferral(t, db, other.ID, domain.ReferralStatusCompleted, 500)

	svc := NewReferralService(repository.NewReferralRepository(db), "https://growthpro.app")
	stats, err := svc.Stats(owner.ID)
	require.NoError(t, err)

	assert.Equal(t, int64(4), stats.TotalReferrals)
	assert.Equal(t, int64(2), stats.CompletedReferrals)
	assert.Equal(t, int64(1), stats.PendingReferrals)
	assert.Equal(t, int64(150), stats.TotalEarnings)
	assert.Equal(t, domain.TierBronze, stats.CurrentTier)
	assert.InDelta(t, 10.0, stats.NextTierProgress, 0.01)
}

func TestStatsZeroReferrals(t *testing.T) {
	db := newTestDB(t)
	owner := seedUser(t, db, "owner")

	svc := NewReferralService(repository.NewReferralRepository(db), "https://growthpro.app")
	stats, err := svc.Stats(owner.ID)
	require.NoError(t, err)

	assert.Equal(t, int64(0), stats.TotalReferrals)
	assert.Equal(t, int64(0), stats.TotalEarnings)
	assert.Equal(t, domain.TierBronze, stats.CurrentTier)
	assert.Zero(t, stats.NextTierProgress)
}

func TestLinkFormat(t *testing.T) {
	svc := NewReferralService(nil, "https://growthpro.app")
	link, code, err := svc.Link(42)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(code, "ref_42_"), "code=%s", code)
	assert.Len(t, code, len("ref_42_")+6)
	assert.Equal(t, "https://growthpro.app/ref/"+code, link)
}
