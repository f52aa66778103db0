package main

import (
	"movie_ratings/internal/config" // Custom import path (Config)
	"movie_ratings/internal/db"     // Custom import path (Database)

	"github.com/sirupsen/logrus"
)

// Main entry point for migration and seeding
func main() {
	cfg := config.LoadConfig() // Load configuration

	gdb := db.Migrate(cfg.DSN())
	if cfg.SeedFile != "" {
		if err := db.SeedMovies(gdb, cfg.SeedFile); err != nil {
			logrus.Fatalf("seeding failed: %v", err)
		}
	}
}
