package domain

import "time"

// User Model
type User struct {
	ID           uint      `gorm:"primaryKey"`           // Primary key
	Email        string    `gorm:"uniqueIndex;not null"` // Unique login email
	PasswordHash string    `gorm:"not null"`             // bcrypt hash, never the plaintext
	Ratings      []Rating  // Ratings submitted by this user
	CreatedAt    time.Time // Registration time
}
