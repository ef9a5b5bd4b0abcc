package database

import (
	"errors"

	"gorm.io/gorm"

	"github.com/khaledev/inkwell/models"
)

type UserRepo struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) *UserRepo {
	return &UserRepo{db}
}

// FindByID returns a user by ID, or nil if no such user exists.
func (r *UserRepo) FindByID(id uint) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByEmail returns a user by email (case-sensitive), or nil if no such
// user exists.
func (r *UserRepo) FindByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Count returns the number of registered users.
func (r *UserRepo) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.User{}).Count(&count).Error
	return count, err
}

// Add inserts a new user into the database. The unique index on email is the
// authoritative duplicate guard; callers must treat a constraint error here
// as "already registered".
//
// The row assigned ID 1 is promoted to administrator inside the same
// transaction. The primary-key sequence is the arbiter, so concurrent first
// registrations can never both end up flagged.
func (r *UserRepo) Add(user *models.User) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		if user.ID == 1 && !user.IsAdmin {
			if err := tx.Model(user).Update("is_admin", true).Error; err != nil {
				return err
			}
			user.IsAdmin = true
		}
		return nil
	})
}
