package db

import (
	"encoding/json"
	"os"
	"time"

	"movie_ratings/internal/domain"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// seedMovie mirrors one entry of the movies seed JSON.
type seedMovie struct {
	Title       string `json:"title"`
	Overview    string `json:"overview"`
	ReleaseDate string `json:"release_date"` // YYYY-MM-DD
	PosterPath  string `json:"poster_path"`
}

// SeedMovies loads movies from a JSON fixture. It is a no-op when the
// movies table already has rows, so re-running migration is safe.
func SeedMovies(gdb *gorm.DB, path string) error {
	var count int64
	if err := gdb.Model(&domain.Movie{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		logrus.WithField("movies", count).Info("Movies already seeded, skipping")
		return nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var entries []seedMovie
	if err := json.Unmarshal(raw, &entries); err != nil {
		return err
	}

	return gdb.Transaction(func(tx *gorm.DB) error {
		for _, e := range entries {
			released, err := time.Parse("2006-01-02", e.ReleaseDate)
			if err != nil {
				return err
			}
			movie := domain.Movie{
				Title:       e.Title,
				Overview:    e.Overview,
				ReleaseDate: released,
				PosterPath:  e.PosterPath,
			}
			if err := tx.Create(&movie).Error; err != nil {
				return err
			}
		}
		logrus.WithField("movies", len(entries)).Info("Seeded movies")
		return nil
	})
}
