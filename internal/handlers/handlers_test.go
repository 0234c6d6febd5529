package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"farm-advisor/internal/artifact"
	"farm-advisor/internal/handlers"
	"farm-advisor/internal/repository"
	"farm-advisor/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testApp struct {
	router   *gin.Engine
	userRepo repository.UserRepository
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	gin.SetMode(gin.TestMode)

	userRepo := repository.NewFileUserRepository(filepath.Join(t.TempDir(), "users.json"))
	sessionRepo := repository.NewMemorySessionRepository(time.Minute)
	jwtService := services.NewJWTService("test-secret")
	authService := services.NewAuthService(userRepo, sessionRepo, jwtService)
	inferenceService := services.NewInferenceService(artifact.Load(t.TempDir()))
	accountService := services.NewAccountService(userRepo)
	rainfallService := services.NewRainfallService(nil)

	middleware := handlers.NewMiddleware(authService)

	router := gin.New()
	handlers.NewAuthHandler(authService, middleware, 60).RegisterRoutes(router)
	handlers.NewDashboardHandler(inferenceService, rainfallService, middleware).RegisterRoutes(router)
	handlers.NewPredictHandler(inferenceService, middleware).RegisterRoutes(router)
	handlers.NewAdminHandler(accountService, middleware).RegisterRoutes(router)

	return &testApp{router: router, userRepo: userRepo}
}

func (app *testApp) do(method, path string, form url.Values, cookie *http.Cookie) *httptest.ResponseRecorder {
	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, path, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if cookie != nil {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	app.router.ServeHTTP(w, req)
	return w
}

func (app *testApp) login(t *testing.T, username, password string) *http.Cookie {
	t.Helper()
	w := app.do(http.MethodPost, "/", url.Values{"username": {username}, "password": {password}}, nil)
	require.Equal(t, http.StatusOK, w.Code)
	for _, c := range w.Result().Cookies() {
		if c.Name == handlers.SessionCookie {
			return c
		}
	}
	t.Fatal("no session cookie set on login")
	return nil
}

func TestProtectedRoutesRedirectWithoutSession(t *testing.T) {
	app := newTestApp(t)

	for _, path := range []string{"/dashboard", "/predict", "/rainfall", "/admin"} {
		w := app.do(http.MethodGet, path, nil, nil)
		assert.Equal(t, http.StatusFound, w.Code, path)
		assert.Equal(t, "/", w.Header().Get("Location"), path)
	}
}

func TestLogin(t *testing.T) {
	app := newTestApp(t)

	t.Run("bad credentials", func(t *testing.T) {
		w := app.do(http.MethodPost, "/", url.Values{"username": {"admin"}, "password": {"wrong"}}, nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "INVALID_CREDENTIALS")
	})

	t.Run("good credentials establish a session", func(t *testing.T) {
		cookie := app.login(t, "farmer1", "1234")

		w := app.do(http.MethodGet, "/dashboard", nil, cookie)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Shivanna")
		assert.Contains(t, w.Body.String(), "models_ready")
	})

	t.Run("login form redirects an active session to the dashboard", func(t *testing.T) {
		cookie := app.login(t, "farmer1", "1234")
		w := app.do(http.MethodGet, "/", nil, cookie)
		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/dashboard", w.Header().Get("Location"))
	})
}

func TestLogout(t *testing.T) {
	app := newTestApp(t)
	cookie := app.login(t, "farmer1", "1234")

	w := app.do(http.MethodGet, "/logout", nil, cookie)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))

	// The old cookie no longer resolves to an identity.
	w = app.do(http.MethodGet, "/dashboard", nil, cookie)
	assert.Equal(t, http.StatusFound, w.Code)

	// Logging out again is not an error.
	w = app.do(http.MethodGet, "/logout", nil, cookie)
	assert.Equal(t, http.StatusFound, w.Code)
}

func TestPredictFallback(t *testing.T) {
	app := newTestApp(t)
	cookie := app.login(t, "farmer1", "1234")

	form := url.Values{
		"N":           {"90"},
		"P":           {"garbage"},
		"temperature": {"21"},
	}
	w := app.do(http.MethodPost, "/predict", form, cookie)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"crop":"rice"`)
	assert.Contains(t, w.Body.String(), "95")
}

func TestAdminAccess(t *testing.T) {
	app := newTestApp(t)

	t.Run("non-admin is redirected and mutates nothing", func(t *testing.T) {
		cookie := app.login(t, "farmer1", "1234")

		form := url.Values{"action": {"delete"}, "username": {"farmer2"}}
		w := app.do(http.MethodPost, "/admin", form, cookie)
		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/dashboard", w.Header().Get("Location"))

		accounts, err := app.userRepo.Load()
		require.NoError(t, err)
		assert.Contains(t, accounts, "farmer2")
	})

	t.Run("admin can manage accounts", func(t *testing.T) {
		cookie := app.login(t, "admin", "admin123")

		w := app.do(http.MethodGet, "/admin", nil, cookie)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "farmer1")

		form := url.Values{
			"action":       {"add"},
			"new_username": {"farmer3"},
			"new_password": {"pw"},
			"new_name":     {"Kumar"},
		}
		w = app.do(http.MethodPost, "/admin", form, cookie)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Added Kumar successfully!")

		accounts, err := app.userRepo.Load()
		require.NoError(t, err)
		assert.Contains(t, accounts, "farmer3")
	})

	t.Run("admin cannot delete the admin account", func(t *testing.T) {
		cookie := app.login(t, "admin", "admin123")

		form := url.Values{"action": {"delete"}, "username": {"admin"}}
		w := app.do(http.MethodPost, "/admin", form, cookie)
		require.Equal(t, http.StatusOK, w.Code)

		accounts, err := app.userRepo.Load()
		require.NoError(t, err)
		assert.Contains(t, accounts, "admin")
	})
}
