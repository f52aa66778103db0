package api

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"
	"time"

	"movie_ratings/internal/config"
	"movie_ratings/internal/db"
	"movie_ratings/internal/domain"
	"movie_ratings/internal/repository"
	"movie_ratings/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupServer(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(gdb))

	cfg := &config.Config{SessionSecret: "test-secret"}
	router := NewRouter(cfg, repository.New(gdb), session.NewMemoryStore())
	return router, gdb
}

// client is a minimal cookie-carrying test browser.
type client struct {
	t       *testing.T
	router  *gin.Engine
	cookies map[string]*http.Cookie
}

func newClient(t *testing.T, router *gin.Engine) *client {
	return &client{t: t, router: router, cookies: make(map[string]*http.Cookie)}
}

func (cl *client) do(method, path string, form url.Values) *httptest.ResponseRecorder {
	cl.t.Helper()
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req := httptest.NewRequest(method, path, body)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	for _, ck := range cl.cookies {
		req.AddCookie(ck)
	}
	w := httptest.NewRecorder()
	cl.router.ServeHTTP(w, req)
	for _, ck := range w.Result().Cookies() {
		cl.cookies[ck.Name] = ck
	}
	return w
}

func (cl *client) get(path string) *httptest.ResponseRecorder {
	return cl.do(http.MethodGet, path, nil)
}

func (cl *client) post(path string, form url.Values) *httptest.ResponseRecorder {
	return cl.do(http.MethodPost, path, form)
}

func (cl *client) register(email, password string) *httptest.ResponseRecorder {
	return cl.post("/users", url.Values{"email": {email}, "password": {password}})
}

func (cl *client) login(email, password string) *httptest.ResponseRecorder {
	return cl.post("/login", url.Values{"email": {email}, "password": {password}})
}

func (cl *client) rate(movieID, score string) *httptest.ResponseRecorder {
	return cl.post("/movies/"+movieID+"/ratings", url.Values{"rating": {score}})
}

func seedMovie(t *testing.T, gdb *gorm.DB, id uint, title string) {
	t.Helper()
	require.NoError(t, gdb.Create(&domain.Movie{ID: id, Title: title, ReleaseDate: time.Now()}).Error)
}

func countRatings(t *testing.T, gdb *gorm.DB) int64 {
	t.Helper()
	var count int64
	require.NoError(t, gdb.Model(&domain.Rating{}).Count(&count).Error)
	return count
}

func TestRegisterLoginRateFlow(t *testing.T) {
	router, gdb := setupServer(t)
	seedMovie(t, gdb, 7, "Heat")
	cl := newClient(t, router)

	w := cl.register("a@example.com", "pw1secret")
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))
	assert.Contains(t, cl.get("/").Body.String(), "Account created! Please log in.")

	w = cl.login("a@example.com", "pw1secret")
	require.Equal(t, http.StatusFound, w.Code)
	home := cl.get("/").Body.String()
	assert.Contains(t, home, "Logged in as a@example.com")

	w = cl.rate("7", "4")
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/movies/7", w.Header().Get("Location"))

	detail := cl.get("/movies/7").Body.String()
	assert.Contains(t, detail, "You rated Heat 4 out of 5.")
	assert.Contains(t, detail, "a@example.com")

	var ratings []domain.Rating
	require.NoError(t, gdb.Preload("User").Find(&ratings).Error)
	require.Len(t, ratings, 1)
	assert.Equal(t, 4, ratings[0].Score)
	assert.EqualValues(t, 7, ratings[0].MovieID)
	assert.Equal(t, "a@example.com", ratings[0].User.Email)
}

func TestRatingRequiresLogin(t *testing.T) {
	router, gdb := setupServer(t)
	seedMovie(t, gdb, 1, "Heat")
	cl := newClient(t, router)

	w := cl.rate("1", "5")
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))
	assert.Contains(t, cl.get("/").Body.String(), "You must be logged in to rate a movie.")
	assert.EqualValues(t, 0, countRatings(t, gdb))
}

func TestRatingScoreBounds(t *testing.T) {
	router, gdb := setupServer(t)
	seedMovie(t, gdb, 1, "Heat")
	cl := newClient(t, router)
	cl.register("a@example.com", "pw1secret")
	cl.login("a@example.com", "pw1secret")

	for _, score := range []string{"0", "6", "abc", ""} {
		w := cl.rate("1", score)
		require.Equal(t, http.StatusFound, w.Code, "score %q", score)
		assert.Equal(t, "/movies/1", w.Header().Get("Location"))
		assert.Contains(t, cl.get("/movies/1").Body.String(), "Ratings must be a whole number between 1 and 5.")
	}
	assert.EqualValues(t, 0, countRatings(t, gdb))
}

func TestDuplicateRegistration(t *testing.T) {
	router, gdb := setupServer(t)
	cl := newClient(t, router)

	require.Equal(t, http.StatusFound, cl.register("a@example.com", "pw1secret").Code)
	require.Equal(t, http.StatusFound, cl.register("a@example.com", "otherpw").Code)
	assert.Contains(t, cl.get("/").Body.String(), "Cannot create an account with that email. Try again.")

	var count int64
	require.NoError(t, gdb.Model(&domain.User{}).Where("email = ?", "a@example.com").Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestRegistrationValidation(t *testing.T) {
	router, gdb := setupServer(t)
	cl := newClient(t, router)

	cl.register("not-an-email", "pw1secret")
	cl.register("b@example.com", "pw")
	assert.Contains(t, cl.get("/").Body.String(), "Enter a valid email address")

	var count int64
	require.NoError(t, gdb.Model(&domain.User{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestLoginWrongPassword(t *testing.T) {
	router, gdb := setupServer(t)
	seedMovie(t, gdb, 1, "Heat")
	cl := newClient(t, router)
	cl.register("a@example.com", "pw1secret")

	w := cl.login("a@example.com", "wrong")
	require.Equal(t, http.StatusFound, w.Code)
	home := cl.get("/").Body.String()
	assert.Contains(t, home, "The email or password you entered was incorrect.")
	assert.NotContains(t, home, "Logged in as")

	// Still anonymous, so rating is rejected.
	cl.rate("1", "3")
	assert.EqualValues(t, 0, countRatings(t, gdb))
}

func TestLoginUnknownEmail(t *testing.T) {
	router, _ := setupServer(t)
	cl := newClient(t, router)

	cl.login("nobody@example.com", "whatever")
	assert.Contains(t, cl.get("/").Body.String(), "The email or password you entered was incorrect.")
}

func TestLogout(t *testing.T) {
	router, gdb := setupServer(t)
	seedMovie(t, gdb, 1, "Heat")
	cl := newClient(t, router)
	cl.register("a@example.com", "pw1secret")
	cl.login("a@example.com", "pw1secret")

	w := cl.get("/logout")
	require.Equal(t, http.StatusFound, w.Code)
	home := cl.get("/").Body.String()
	assert.Contains(t, home, "Logged out.")
	assert.NotContains(t, home, "Logged in as")

	cl.rate("1", "3")
	assert.Contains(t, cl.get("/").Body.String(), "You must be logged in to rate a movie.")
	assert.EqualValues(t, 0, countRatings(t, gdb))
}

func TestDeletedAccountForcesLogout(t *testing.T) {
	router, gdb := setupServer(t)
	seedMovie(t, gdb, 1, "Heat")
	cl := newClient(t, router)
	cl.register("a@example.com", "pw1secret")
	cl.login("a@example.com", "pw1secret")

	require.NoError(t, gdb.Where("email = ?", "a@example.com").Delete(&domain.User{}).Error)

	w := cl.rate("1", "3")
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))
	home := cl.get("/").Body.String()
	assert.Contains(t, home, "Your account no longer exists. Please log in again.")
	assert.NotContains(t, home, "Logged in as")
	assert.EqualValues(t, 0, countRatings(t, gdb))
}

func TestFlashIsOneShot(t *testing.T) {
	router, _ := setupServer(t)
	cl := newClient(t, router)
	cl.register("a@example.com", "pw1secret")

	assert.Contains(t, cl.get("/").Body.String(), "Account created! Please log in.")
	assert.NotContains(t, cl.get("/").Body.String(), "Account created! Please log in.")
}

func TestMovieListAndDetail(t *testing.T) {
	router, gdb := setupServer(t)
	seedMovie(t, gdb, 1, "Heat")
	seedMovie(t, gdb, 2, "Ran")
	cl := newClient(t, router)

	list := cl.get("/movies")
	require.Equal(t, http.StatusOK, list.Code)
	assert.Contains(t, list.Body.String(), "Heat")
	assert.Contains(t, list.Body.String(), "Ran")

	detail := cl.get("/movies/2")
	require.Equal(t, http.StatusOK, detail.Code)
	assert.Contains(t, detail.Body.String(), "Ran")
	assert.Contains(t, detail.Body.String(), "No ratings yet.")
}

func TestMovieNotFound(t *testing.T) {
	router, _ := setupServer(t)
	cl := newClient(t, router)

	for _, path := range []string{"/movies/999", "/movies/not-a-number"} {
		w := cl.get(path)
		assert.Equal(t, http.StatusNotFound, w.Code, "path %s", path)
		assert.Contains(t, w.Body.String(), "Not Found")
	}
}

func TestUserListAndDetail(t *testing.T) {
	router, gdb := setupServer(t)
	seedMovie(t, gdb, 1, "Heat")
	cl := newClient(t, router)
	cl.register("a@example.com", "pw1secret")
	cl.login("a@example.com", "pw1secret")
	cl.rate("1", "5")

	list := cl.get("/users")
	require.Equal(t, http.StatusOK, list.Code)
	assert.Contains(t, list.Body.String(), "a@example.com")

	var user domain.User
	require.NoError(t, gdb.Where("email = ?", "a@example.com").First(&user).Error)

	w := cl.get("/users/" + strconv.FormatUint(uint64(user.ID), 10))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Heat")
	assert.Contains(t, w.Body.String(), "5 out of 5")
}

func TestUserNotFound(t *testing.T) {
	router, _ := setupServer(t)
	cl := newClient(t, router)

	w := cl.get("/users/999")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Not Found")
}

func TestHealthz(t *testing.T) {
	router, _ := setupServer(t)
	cl := newClient(t, router)

	w := cl.get("/healthz")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"ok"`)
}
