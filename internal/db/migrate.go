package db

import (
	"movie_ratings/internal/domain" // Importing domain models

	"github.com/sirupsen/logrus"

	"gorm.io/driver/mysql" // MySQL driver for GORM
	"gorm.io/gorm"         // GORM ORM library
)

// Open connects to MySQL with error translation enabled so unique-index
// violations surface as gorm.ErrDuplicatedKey.
func Open(dsn string) (*gorm.DB, error) {
	return gorm.Open(mysql.Open(dsn), &gorm.Config{TranslateError: true})
}

// AutoMigrate creates tables, foreign keys, constraints, and indexes for
// every domain model.
func AutoMigrate(gdb *gorm.DB) error {
	return gdb.AutoMigrate(&domain.User{}, &domain.Movie{}, &domain.Rating{})
}

// Migrate opens the database and performs automatic schema migration.
func Migrate(dsn string) *gorm.DB {
	gdb, err := Open(dsn)
	if err != nil {
		logrus.Fatalf("failed to connect database: %v", err)
	}
	if err := AutoMigrate(gdb); err != nil {
		logrus.Fatalf("migration failed: %v", err)
	}
	logrus.Info("Migration completed.")
	return gdb
}
