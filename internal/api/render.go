package api

import (
	"net/http" // HTTP status codes
	"strconv"  // Path parameter parsing

	"movie_ratings/internal/domain"     // Domain models
	"movie_ratings/internal/middleware" // Session context access
	"movie_ratings/internal/session"    // Session store

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// Page is the base view model shared by every template: the pending
// flash messages and the session identity, if any.
type Page struct {
	Flashes   []string
	UserEmail string
}

func (p *Page) base() *Page { return p }

// pageView is satisfied by every view model embedding Page.
type pageView interface {
	base() *Page
}

// View models, one per template.
type homePage struct{ Page }

type moviesPage struct {
	Page
	Movies []domain.Movie
}

type moviePage struct {
	Page
	Movie *domain.Movie
}

type usersPage struct {
	Page
	Users []domain.User
}

type userPage struct {
	Page
	User *domain.User
}

type notFoundPage struct {
	Page
	Resource string
}

// render draws a template after draining the session's flash messages
// into the view model. Flashes are read exactly once; a failed drain is
// logged and the page renders without them.
func render(c *gin.Context, sessions session.Store, status int, name string, view pageView) {
	sess := middleware.CurrentSession(c)
	flashes, err := sessions.PopFlashes(c.Request.Context(), sess.ID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"session_id": sess.ID,
			"error":      err.Error(),
		}).Error("Failed to read flash messages")
	}
	base := view.base()
	base.Flashes = flashes
	base.UserEmail = sess.Email
	c.HTML(status, name, view)
}

// redirectWithFlash queues a one-shot message and redirects the browser.
func redirectWithFlash(c *gin.Context, sessions session.Store, message, location string) {
	sess := middleware.CurrentSession(c)
	if err := sessions.AddFlash(c.Request.Context(), sess.ID, message); err != nil {
		logrus.WithFields(logrus.Fields{
			"session_id": sess.ID,
			"error":      err.Error(),
		}).Error("Failed to store flash message")
	}
	c.Redirect(http.StatusFound, location)
}

// renderNotFound draws the 404 page for a missing movie or user.
func renderNotFound(c *gin.Context, sessions session.Store, resource string) {
	render(c, sessions, http.StatusNotFound, "not_found.html", &notFoundPage{Resource: resource})
}

// parseID parses a numeric path parameter.
func parseID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}
