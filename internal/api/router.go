package api

import (
	"movie_ratings/internal/config"
	"movie_ratings/internal/middleware"
	"movie_ratings/internal/repository"
	"movie_ratings/internal/session"
	"movie_ratings/internal/web"

	"github.com/gin-gonic/gin"
)

// NewRouter builds the gin engine with templates, session middleware,
// and every route.
func NewRouter(cfg *config.Config, repo *repository.Repository, sessions session.Store) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	r.SetHTMLTemplate(web.Templates())

	// Health probes do not need a session cookie.
	r.GET("/healthz", HealthHandler(repo))

	r.Use(middleware.Session(sessions, cfg.SessionSecret))

	r.GET("/", HomepageHandler(sessions))
	r.GET("/movies", AllMoviesHandler(repo, sessions))
	r.GET("/movies/:movie_id", MovieDetailsHandler(repo, sessions))
	r.POST("/movies/:movie_id/ratings", CreateRatingHandler(repo, sessions))
	r.GET("/users", AllUsersHandler(repo, sessions))
	r.GET("/users/:user_id", UserDetailsHandler(repo, sessions))
	r.POST("/users", RegisterUserHandler(repo, sessions))
	r.POST("/login", LoginHandler(repo, sessions))
	r.GET("/logout", LogoutHandler(sessions))

	return r
}
