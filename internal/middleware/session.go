package middleware

import (
	"net/http" // HTTP status codes

	"movie_ratings/internal/session" // Session store
	"movie_ratings/internal/utils"   // Session token signing

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// CookieName is the session cookie set on every client.
const CookieName = "movies_session"

// SessionKey is the gin context key holding the *session.Session.
const SessionKey = "session"

// Session loads the caller's session from the signed cookie, creating a
// fresh anonymous session (and resetting the cookie) when the cookie is
// missing, tampered with, or expired.
func Session(sessions session.Store, secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var sess *session.Session
		if token, err := c.Cookie(CookieName); err == nil {
			if id, err := utils.ParseSessionToken(token, secret); err == nil {
				if loaded, err := sessions.Get(c.Request.Context(), id); err == nil {
					sess = loaded
				}
			}
		}
		if sess == nil {
			created, err := sessions.Create(c.Request.Context())
			if err != nil {
				logrus.WithField("error", err.Error()).Error("Failed to create session")
				c.AbortWithStatus(http.StatusInternalServerError)
				return
			}
			token, err := utils.SignSessionToken(created.ID, secret)
			if err != nil {
				logrus.WithField("error", err.Error()).Error("Failed to sign session token")
				c.AbortWithStatus(http.StatusInternalServerError)
				return
			}
			c.SetCookie(CookieName, token, int(session.TTL.Seconds()), "/", "", false, true)
			sess = created
		}
		c.Set(SessionKey, sess)
		c.Next()
	}
}

// CurrentSession returns the session attached by the Session middleware.
func CurrentSession(c *gin.Context) *session.Session {
	return c.MustGet(SessionKey).(*session.Session)
}
