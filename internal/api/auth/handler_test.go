package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"gallery-storefront/config"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret-pass"), bcrypt.MinCost)
	require.NoError(t, err)

	cfg := &config.Config{JWTSecret: "test-secret"}
	cfg.Admin.Email = "artist@example.com"
	cfg.Admin.PasswordHash = string(hash)
	return cfg
}

func newRouter(h *Handler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/login", h.Login)
	r.GET("/auth/google", h.GoogleStart)
	return r
}

func postLogin(r http.Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestLogin_IssuesAdminToken(t *testing.T) {
	cfg := testConfig(t)
	r := newRouter(NewHandler(cfg))

	w := postLogin(r, `{"email":"Artist@example.com","password":"s3cret-pass"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(resp.Token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte(cfg.JWTSecret), nil
	})
	require.NoError(t, err)
	assert.Equal(t, RoleAdmin, claims["role"])
	assert.Equal(t, "artist@example.com", claims["email"])
}

func TestLogin_Rejects(t *testing.T) {
	r := newRouter(NewHandler(testConfig(t)))

	assert.Equal(t, http.StatusUnauthorized, postLogin(r, `{"email":"artist@example.com","password":"nope"}`).Code)
	assert.Equal(t, http.StatusUnauthorized, postLogin(r, `{"email":"someone@example.com","password":"s3cret-pass"}`).Code)
	assert.Equal(t, http.StatusBadRequest, postLogin(r, `{"email":"not-an-email"}`).Code)
}

func TestLogin_NotConfigured(t *testing.T) {
	r := newRouter(NewHandler(&config.Config{JWTSecret: "x"}))
	w := postLogin(r, `{"email":"artist@example.com","password":"s3cret-pass"}`)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestGoogleStart(t *testing.T) {
	t.Run("disabled", func(t *testing.T) {
		r := newRouter(NewHandler(testConfig(t)))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/auth/google", nil))
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("redirects with state cookie", func(t *testing.T) {
		cfg := testConfig(t)
		cfg.Google.ClientID = "client"
		cfg.Google.ClientSecret = "secret"
		cfg.Google.RedirectURL = "http://localhost:8080/auth/google/callback"
		r := newRouter(NewHandler(cfg))

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/auth/google", nil))
		require.Equal(t, http.StatusFound, w.Code)
		assert.Contains(t, w.Header().Get("Location"), "accounts.google.com")
		assert.Contains(t, w.Header().Get("Set-Cookie"), stateCookie+"=")
	})
}
