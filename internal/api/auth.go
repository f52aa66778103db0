package api

import (
	"net/http" // HTTP status codes

	"movie_ratings/internal/middleware" // Session context access
	"movie_ratings/internal/repository" // Data access layer
	"movie_ratings/internal/session"    // Session store

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
	"golang.org/x/crypto/bcrypt" // Password verification
)

// LoginForm is the login form.
type LoginForm struct {
	Email    string `form:"email" binding:"required"`
	Password string `form:"password" binding:"required"`
}

// LoginHandler authenticates the submitted credentials and attaches the
// user's email to the session. An unknown email and a wrong password
// produce the same message so the response does not reveal which emails
// are registered.
func LoginHandler(repo *repository.Repository, sessions session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var form LoginForm
		if err := c.ShouldBind(&form); err != nil {
			redirectWithFlash(c, sessions, "The email or password you entered was incorrect.", "/")
			return
		}
		user, err := repo.GetUserByEmail(c.Request.Context(), form.Email)
		if err != nil {
			logrus.WithFields(logrus.Fields{"email": form.Email, "error": err.Error()}).Error("Login lookup failed")
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}
		if user == nil || bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(form.Password)) != nil {
			redirectWithFlash(c, sessions, "The email or password you entered was incorrect.", "/")
			return
		}
		sess := middleware.CurrentSession(c)
		if err := sessions.SetIdentity(c.Request.Context(), sess.ID, user.Email); err != nil {
			logrus.WithFields(logrus.Fields{"session_id": sess.ID, "error": err.Error()}).Error("Failed to store session identity")
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}
		sess.Email = user.Email
		logrus.WithFields(logrus.Fields{"user_id": user.ID, "email": user.Email}).Info("User logged in")
		redirectWithFlash(c, sessions, "Logged in as "+user.Email+"!", "/")
	}
}

// LogoutHandler clears the session identity. Logging out while already
// anonymous is harmless.
func LogoutHandler(sessions session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := middleware.CurrentSession(c)
		if err := sessions.ClearIdentity(c.Request.Context(), sess.ID); err != nil {
			logrus.WithFields(logrus.Fields{"session_id": sess.ID, "error": err.Error()}).Error("Failed to clear session identity")
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}
		sess.Email = ""
		redirectWithFlash(c, sessions, "Logged out.", "/")
	}
}
