package repository

import (
	"context"
	"errors"

	"movie_ratings/internal/domain"

	"gorm.io/gorm"
)

// GetMovies returns all movies in primary-key order.
func (r *Repository) GetMovies(ctx context.Context) ([]domain.Movie, error) {
	var movies []domain.Movie
	if err := r.db.WithContext(ctx).Order("id").Find(&movies).Error; err != nil {
		return nil, err
	}
	return movies, nil
}

// GetMovieByID returns the movie with the given id, with its ratings and
// the rating users preloaded. Returns ErrNotFound if no row matches.
func (r *Repository) GetMovieByID(ctx context.Context, id uint) (*domain.Movie, error) {
	var movie domain.Movie
	err := r.db.WithContext(ctx).Preload("Ratings.User").First(&movie, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &movie, nil
}
