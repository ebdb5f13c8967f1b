package repository

import (
	"errors"

	"growthpro/internal/domain"
	"growthpro/internal/models"

	"gorm.io/gorm"
)

type CustomerRepository struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

func (r *CustomerRepository) Create(c *models.Customer) error {
	return r.db.Create(c).Error
}

// GetOwned returns the customer only if it belongs to the given user.
func (r *CustomerRepository) GetOwned(id, userID uint) (*models.Customer, error) {
	var c models.Customer
	err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CustomerRepository) ListByOwner(userID uint, limit, offset int) ([]models.Customer, error) {
	var list []models.Customer
	err := r.db.Where("user_id = ?", userID).Limit(limit).Offset(offset).Find(&list).Error
	return list, err
}

// Search matches the query against name, contact info and notes, owner-scoped.
func (r *CustomerRepository) Search(userID uint, query string) ([]models.Customer, error) {
	var list []models.Customer
	like := "%" + query + "%"
	err := r.db.Where("user_id = ?", userID).
		Where("name LIKE ? OR contact_info LIKE ? OR notes LIKE ?", like, like, like).
		Find(&list).Error
	return list, err
}

// ListOwnedByIDs returns the subset of ids that exist and belong to the user.
// Callers compare the result size against len(ids) to enforce all-or-nothing
// membership preconditions.
func (r *CustomerRepository) ListOwnedByIDs(userID uint, ids []uint) ([]models.Customer, error) {
	var list []models.Customer
	err := r.db.Where("id IN ? AND user_id = ?", ids, userID).Find(&list).Error
	return list, err
}

// RecentByOwner returns the most recently created customers, newest first.
func (r *CustomerRepository) RecentByOwner(userID uint, limit int) ([]models.Customer, error) {
	var list []models.Customer
	err := r.db.Where("user_id = ?", userID).Order("id DESC").Limit(limit).Find(&list).Error
	return list, err
}

func (r *CustomerRepository) CountByOwner(userID uint) (int64, error) {
	var c int64
	err := r.db.Model(&models.Customer{}).Where("user_id = ?", userID).Count(&c).Error
	return c, err
}

// ContactedCountByOwner counts customers with a recorded last_contacted time.
func (r *CustomerRepository) ContactedCountByOwner(userID uint) (int64, error) {
	var c int64
	err := r.db.Model(&models.Customer{}).
		Where("user_id = ? AND last_contacted IS NOT NULL", userID).Count(&c).Error
	return c, err
}

func (r *CustomerRepository) Update(c *models.Customer) error {
	return r.db.Save(c).Error
}

// Delete hard-deletes the customer row, owner-scoped. Interactions and
// referral links to the customer are deliberately left in place (the ledger
// is append-only; dangling referral customer_ids are tolerated).
func (r *CustomerRepository) Delete(id, userID uint) error {
	res := r.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Customer{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
