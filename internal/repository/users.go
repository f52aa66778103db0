package repository

import (
	"context"
	"errors"

	"movie_ratings/internal/domain"

	"gorm.io/gorm"
)

// GetUsers returns all users in primary-key order.
func (r *Repository) GetUsers(ctx context.Context) ([]domain.User, error) {
	var users []domain.User
	if err := r.db.WithContext(ctx).Order("id").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// GetUserByID returns the user with the given id, with their ratings and
// the rated movies preloaded. Returns ErrNotFound if no row matches.
func (r *Repository) GetUserByID(ctx context.Context, id uint) (*domain.User, error) {
	var user domain.User
	err := r.db.WithContext(ctx).Preload("Ratings.Movie").First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUserByEmail looks up a user by email. Absence is an expected outcome
// for both registration and login, so it is reported as (nil, nil) rather
// than an error.
func (r *Repository) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user domain.User
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// CreateUser inserts a new user row. The caller supplies an already
// hashed password. A duplicate email is reported as ErrDuplicateEmail;
// there is no pre-check, the unique index decides.
func (r *Repository) CreateUser(ctx context.Context, email, passwordHash string) (*domain.User, error) {
	user := domain.User{Email: email, PasswordHash: passwordHash}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&user).Error
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil, ErrDuplicateEmail
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}
