package repository

import (
	"errors"

	"growthpro/internal/domain"
	"growthpro/internal/models"

	"gorm.io/gorm"
)

type ReferralRepository struct {
	db *gorm.DB
}

func NewReferralRepository(db *gorm.DB) *ReferralRepository {
	return &ReferralRepository{db: db}
}

func (r *ReferralRepository) Create(ref *models.Referral) error {
	return r.db.Create(ref).Error
}

// GetOwned returns the referral only if it belongs to the given user.
func (r *ReferralRepository) GetOwned(id, userID uint) (*models.Referral, error) {
	var ref models.Referral
	err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&ref).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &ref, nil
}

func (r *ReferralRepository) Update(ref *models.Referral) error {
	return r.db.Save(ref).Error
}

func (r *ReferralRepository) ListByOwner(userID uint, limit, offset int) ([]models.Referral, error) {
	var list []models.Referral
	err := r.db.Where("user_id = ?", userID).Limit(limit).Offset(offset).Find(&list).Error
	return list, err
}

func (r *ReferralRepository) ListByOwnerAndStatus(userID uint, status string) ([]models.Referral, error) {
	var list []models.Referral
	err := r.db.Where("user_id = ? AND status = ?", userID, status).Find(&list).Error
	return list, err
}

func (r *ReferralRepository) CountByOwner(userID uint) (int64, error) {
	var c int64
	err := r.db.Model(&models.Referral{}).Where("user_id = ?", userID).Count(&c).Error
	return c, err
}

func (r *ReferralRepository) CountByOwnerAndStatus(userID uint, status string) (int64, error) {
	var c int64
	err := r.db.Model(&models.Referral{}).
		Where("user_id = ? AND status = ?", userID, status).Count(&c).Error
	return c, err
}

// SumCompletedPoints returns the total reward points over completed
// referrals only. Pending and accepted referrals never contribute, even
// when they carry nonzero points.
func (r *ReferralRepository) SumCompletedPoints(userID uint) (int64, error) {
	var sum int64
	err := r.db.Model(&models.Referral{}).
		Where("user_id = ? AND status = ?", userID, domain.ReferralStatusCompleted).
		Select("COALESCE(SUM(reward_points), 0)").
		Scan(&sum).Error
	return sum, err
}

// RecentCompleted returns the most recently created completed referrals,
// newest first.
func (r *ReferralRepository) RecentCompleted(userID uint, limit int) ([]models.Referral, error) {
	var list []models.Referral
	err := r.db.Where("user_id = ? AND status = ?", userID, domain.ReferralStatusCompleted).
		Order("id DESC").Limit(limit).Find(&list).Error
	return list, err
}
