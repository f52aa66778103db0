package api

import (
	"context"
	"net/http"
	"time"

	"movie_ratings/internal/repository"
	"movie_ratings/internal/session"

	"github.com/gin-gonic/gin"
)

// HomepageHandler renders the homepage with login and registration forms.
func HomepageHandler(sessions session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		render(c, sessions, http.StatusOK, "homepage.html", &homePage{})
	}
}

// HealthHandler reports whether the database is reachable.
func HealthHandler(repo *repository.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := repo.Ping(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
