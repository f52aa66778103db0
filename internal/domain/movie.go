package domain

import "time"

// Movie Model
type Movie struct {
	ID          uint      `gorm:"primaryKey"` // Primary key
	Title       string    `gorm:"not null"`   // Display title
	Overview    string    // Short synopsis
	ReleaseDate time.Time // Theatrical release date
	PosterPath  string    // Poster image URL
	Ratings     []Rating  // Ratings received by this movie
}
