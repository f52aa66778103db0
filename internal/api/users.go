package api

import (
	"errors"   // Sentinel error checks
	"net/http" // HTTP status codes

	"movie_ratings/internal/repository" // Data access layer
	"movie_ratings/internal/session"    // Session store

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
	"golang.org/x/crypto/bcrypt" // Password hashing
)

// RegisterForm is the account creation form.
type RegisterForm struct {
	Email    string `form:"email" binding:"required,email"`
	Password string `form:"password" binding:"required,min=6"`
}

// AllUsersHandler renders the list of all users.
func AllUsersHandler(repo *repository.Repository, sessions session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		users, err := repo.GetUsers(c.Request.Context())
		if err != nil {
			logrus.WithField("error", err.Error()).Error("Failed to list users")
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}
		render(c, sessions, http.StatusOK, "all_users.html", &usersPage{Users: users})
	}
}

// UserDetailsHandler renders one user and their ratings, or a 404 page.
func UserDetailsHandler(repo *repository.Repository, sessions session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c, "user_id")
		if !ok {
			renderNotFound(c, sessions, "user")
			return
		}
		user, err := repo.GetUserByID(c.Request.Context(), id)
		if errors.Is(err, repository.ErrNotFound) {
			renderNotFound(c, sessions, "user")
			return
		}
		if err != nil {
			logrus.WithFields(logrus.Fields{"user_id": id, "error": err.Error()}).Error("Failed to load user")
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}
		render(c, sessions, http.StatusOK, "user_details.html", &userPage{User: user})
	}
}

// RegisterUserHandler creates a new account. The unique index on email is
// the only conflict check; a duplicate insert is reported to the user,
// never as an error page.
func RegisterUserHandler(repo *repository.Repository, sessions session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var form RegisterForm
		if err := c.ShouldBind(&form); err != nil {
			redirectWithFlash(c, sessions, "Enter a valid email address and a password of at least 6 characters.", "/")
			return
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(form.Password), bcrypt.DefaultCost)
		if err != nil {
			logrus.WithField("error", err.Error()).Error("Failed to hash password")
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}
		user, err := repo.CreateUser(c.Request.Context(), form.Email, string(hash))
		if errors.Is(err, repository.ErrDuplicateEmail) {
			redirectWithFlash(c, sessions, "Cannot create an account with that email. Try again.", "/")
			return
		}
		if err != nil {
			logrus.WithFields(logrus.Fields{"email": form.Email, "error": err.Error()}).Error("Failed to create user")
			redirectWithFlash(c, sessions, "Something went wrong creating your account. Try again.", "/")
			return
		}
		logrus.WithFields(logrus.Fields{"user_id": user.ID, "email": user.Email}).Info("User registered")
		redirectWithFlash(c, sessions, "Account created! Please log in.", "/")
	}
}
