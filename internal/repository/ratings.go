package repository

import (
	"context"

	"movie_ratings/internal/domain"

	"gorm.io/gorm"
)

// CreateRating inserts a rating associating the given user and movie.
// Construction and commit happen in one atomic unit. Repeat ratings by
// the same user for the same movie accumulate as separate rows.
func (r *Repository) CreateRating(ctx context.Context, user *domain.User, movie *domain.Movie, score int) (*domain.Rating, error) {
	rating := domain.Rating{UserID: user.ID, MovieID: movie.ID, Score: score}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&rating).Error
	})
	if err != nil {
		return nil, err
	}
	return &rating, nil
}
