package main

import (
	"context" // context package is needed for Redis operations
	"log"     // log package is needed for logging

	"movie_ratings/internal/api"        // Custom package for API handlers
	"movie_ratings/internal/config"     // Custom package for configuration
	"movie_ratings/internal/db"         // Custom package for database setup
	"movie_ratings/internal/repository" // Custom package for data access
	"movie_ratings/internal/session"    // Custom package for sessions

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logrus for structured logging
)

// Main function to set up and run the server
func main() {
	cfg := config.LoadConfig() // Load configuration

	// Setup logger
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	// Connect to the database
	gdb, err := db.Open(cfg.DSN())
	if err != nil {
		logrus.Fatalf("failed to connect to DB: %v", err)
	}
	repo := repository.New(gdb)

	// Session store: Redis when configured, in-memory otherwise
	var sessions session.Store
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPass,
			DB:       cfg.RedisDB,
		})
		if _, err := redisClient.Ping(context.Background()).Result(); err != nil {
			logrus.Fatalf("failed to connect to Redis: %v", err)
		}
		sessions = session.NewRedisStore(redisClient)
	} else {
		logrus.Warn("REDIS_ADDR not set, sessions are in-memory and lost on restart")
		sessions = session.NewMemoryStore()
	}

	// Set Mode to Release if in production
	if cfg.IsProd {
		gin.SetMode(gin.ReleaseMode)
	}

	r := api.NewRouter(cfg, repo, sessions) // Gin router instance

	// Set trusted proxies for Gin
	if err := r.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		logrus.Fatalf("failed to set trusted proxies: %v", err)
	}

	log.Println("Server running on " + cfg.AppPort) // Log server start
	r.Run(":" + cfg.AppPort)                        // Start the server on port cfg.AppPort
}
