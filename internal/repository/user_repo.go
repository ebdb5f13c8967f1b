package repository

import (
	"growthpro/internal/models"

	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(u *models.User) error {
	return r.db.Create(u).Error
}

func (r *UserRepository) GetByID(id uint) (*models.User, error) {
	var u models.User
	if err := r.db.First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) GetByHandle(handle string) (*models.User, error) {
	var u models.User
	if err := r.db.Where("handle = ?", handle).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) Update(u *models.User) error {
	return r.db.Save(u).Error
}

// EmailTaken reports whether another user already registered this email.
func (r *UserRepository) EmailTaken(email string, excludeID uint) (bool, error) {
	var c int64
	err := r.db.Model(&models.User{}).Where("email = ? AND id != ?", email, excludeID).Count(&c).Error
	return c > 0, err
}

// PhoneTaken reports whether another user already registered this phone.
func (r *UserRepository) PhoneTaken(phone string, excludeID uint) (bool, error) {
	var c int64
	err := r.db.Model(&models.User{}).Where("phone = ? AND id != ?", phone, excludeID).Count(&c).Error
	return c > 0, err
}

// HandleTaken reports whether the external login handle is already in use.
func (r *UserRepository) HandleTaken(handle string) (bool, error) {
	var c int64
	err := r.db.Model(&models.User{}).Where("handle = ?", handle).Count(&c).Error
	return c > 0, err
}
