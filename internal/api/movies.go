package api

import (
	"errors"   // Sentinel error checks
	"fmt"      // Flash message formatting
	"net/http" // HTTP status codes

	"movie_ratings/internal/middleware" // Session context access
	"movie_ratings/internal/repository" // Data access layer
	"movie_ratings/internal/session"    // Session store

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// RatingForm is the star-rating form. The binding tags are the
// validation: anything outside 1 through 5, or not a whole number,
// fails the bind.
type RatingForm struct {
	Score int `form:"rating" binding:"required,min=1,max=5"`
}

// AllMoviesHandler renders the list of all movies.
func AllMoviesHandler(repo *repository.Repository, sessions session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		movies, err := repo.GetMovies(c.Request.Context())
		if err != nil {
			logrus.WithField("error", err.Error()).Error("Failed to list movies")
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}
		render(c, sessions, http.StatusOK, "all_movies.html", &moviesPage{Movies: movies})
	}
}

// MovieDetailsHandler renders one movie with its ratings, or a 404 page.
func MovieDetailsHandler(repo *repository.Repository, sessions session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c, "movie_id")
		if !ok {
			renderNotFound(c, sessions, "movie")
			return
		}
		movie, err := repo.GetMovieByID(c.Request.Context(), id)
		if errors.Is(err, repository.ErrNotFound) {
			renderNotFound(c, sessions, "movie")
			return
		}
		if err != nil {
			logrus.WithFields(logrus.Fields{"movie_id": id, "error": err.Error()}).Error("Failed to load movie")
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}
		render(c, sessions, http.StatusOK, "movie_details.html", &moviePage{Movie: movie})
	}
}

// CreateRatingHandler records a star rating for a movie. It requires an
// authenticated session, and the identity is re-resolved against the
// database on every submission; if the account has disappeared since
// login the session is forcibly logged out.
func CreateRatingHandler(repo *repository.Repository, sessions session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := middleware.CurrentSession(c)
		if sess.Anonymous() {
			redirectWithFlash(c, sessions, "You must be logged in to rate a movie.", "/")
			return
		}

		id, ok := parseID(c, "movie_id")
		if !ok {
			renderNotFound(c, sessions, "movie")
			return
		}
		movie, err := repo.GetMovieByID(c.Request.Context(), id)
		if errors.Is(err, repository.ErrNotFound) {
			renderNotFound(c, sessions, "movie")
			return
		}
		if err != nil {
			logrus.WithFields(logrus.Fields{"movie_id": id, "error": err.Error()}).Error("Failed to load movie")
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}

		moviePath := fmt.Sprintf("/movies/%d", movie.ID)
		var form RatingForm
		if err := c.ShouldBind(&form); err != nil {
			redirectWithFlash(c, sessions, "Ratings must be a whole number between 1 and 5.", moviePath)
			return
		}

		user, err := repo.GetUserByEmail(c.Request.Context(), sess.Email)
		if err != nil {
			logrus.WithFields(logrus.Fields{"email": sess.Email, "error": err.Error()}).Error("Failed to resolve session identity")
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}
		if user == nil {
			// The account vanished between login and now; force a logout.
			if err := sessions.ClearIdentity(c.Request.Context(), sess.ID); err != nil {
				logrus.WithFields(logrus.Fields{"session_id": sess.ID, "error": err.Error()}).Error("Failed to clear session identity")
			}
			sess.Email = ""
			redirectWithFlash(c, sessions, "Your account no longer exists. Please log in again.", "/")
			return
		}

		rating, err := repo.CreateRating(c.Request.Context(), user, movie, form.Score)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"user_id":  user.ID,
				"movie_id": movie.ID,
				"score":    form.Score,
				"error":    err.Error(),
			}).Error("Failed to create rating")
			redirectWithFlash(c, sessions, "Could not save your rating. Try again.", moviePath)
			return
		}
		logrus.WithFields(logrus.Fields{
			"rating_id": rating.ID,
			"user_id":   user.ID,
			"movie_id":  movie.ID,
			"score":     rating.Score,
		}).Info("Rating created")
		redirectWithFlash(c, sessions, fmt.Sprintf("You rated %s %d out of 5.", movie.Title, rating.Score), moviePath)
	}
}
