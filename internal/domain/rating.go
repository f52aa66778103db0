package domain

import "time"

// Rating Model. A user may rate the same movie more than once; each
// submission is its own row (no uniqueness across user+movie).
type Rating struct {
	ID        uint      `gorm:"primaryKey"`     // Primary key
	UserID    uint      `gorm:"index;not null"` // Foreign key to User
	MovieID   uint      `gorm:"index;not null"` // Foreign key to Movie
	Score     int       `gorm:"not null"`       // Star score, 1 through 5
	User      User      // Rating author
	Movie     Movie     // Rated movie
	CreatedAt time.Time
}
