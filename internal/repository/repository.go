package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// ErrNotFound indicates the requested entity does not exist.
var ErrNotFound = errors.New("repository: not found")

// ErrDuplicateEmail indicates an account with the given email already
// exists. The unique index on users.email is the authoritative signal,
// so concurrent registrations cannot both succeed.
var ErrDuplicateEmail = errors.New("repository: email already registered")

// Repository exposes typed create/read operations over the data store.
type Repository struct {
	db *gorm.DB
}

// New constructs a Repository backed by the given gorm handle.
func New(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Ping verifies database connectivity.
func (r *Repository) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
