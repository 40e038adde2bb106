package middleware

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"gallery-storefront/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "test-secret"

func sign(t *testing.T, key string, method jwt.SigningMethod, claims jwt.MapClaims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(method, claims).SignedString([]byte(key))
	require.NoError(t, err)
	return s
}

func adminRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/admin", AuthMiddleware(secret), RequireRole("admin"), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"email": c.GetString("email")})
	})
	return r
}

func TestAuthMiddleware(t *testing.T) {
	exp := time.Now().Add(time.Hour).Unix()

	cases := []struct {
		name   string
		header string
		code   int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"not bearer", "Token abc", http.StatusUnauthorized},
		{"garbage", "Bearer abc", http.StatusUnauthorized},
		{"wrong key", "Bearer " + sign(t, "other", jwt.SigningMethodHS256, jwt.MapClaims{"role": "admin", "exp": exp}), http.StatusUnauthorized},
		{"expired", "Bearer " + sign(t, secret, jwt.SigningMethodHS256, jwt.MapClaims{"role": "admin", "exp": time.Now().Add(-time.Hour).Unix()}), http.StatusUnauthorized},
		{"not admin", "Bearer " + sign(t, secret, jwt.SigningMethodHS256, jwt.MapClaims{"role": "visitor", "exp": exp}), http.StatusForbidden},
		{"no role", "Bearer " + sign(t, secret, jwt.SigningMethodHS256, jwt.MapClaims{"exp": exp}), http.StatusUnauthorized},
		{"empty bearer", "Bearer  ", http.StatusUnauthorized},
		{"other hmac alg", "Bearer " + sign(t, secret, jwt.SigningMethodHS384, jwt.MapClaims{"role": "admin", "exp": exp}), http.StatusUnauthorized},
		{"no expiry", "Bearer " + sign(t, secret, jwt.SigningMethodHS256, jwt.MapClaims{"role": "admin"}), http.StatusUnauthorized},
		{"role of wrong type", "Bearer " + sign(t, secret, jwt.SigningMethodHS256, jwt.MapClaims{"role": 1, "exp": exp}), http.StatusUnauthorized},
		{"admin", "Bearer " + sign(t, secret, jwt.SigningMethodHS256, jwt.MapClaims{"role": "admin", "email": "owner@example.com", "exp": exp}), http.StatusOK},
	}

	r := adminRouter()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/admin", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			assert.Equal(t, tc.code, w.Code)
		})
	}
}

func TestAuthMiddleware_StoresTypedClaims(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	var got *Claims
	r.GET("/admin", AuthMiddleware(secret), RequireRole("admin"), func(c *gin.Context) {
		got = ClaimsFrom(c)
		c.JSON(http.StatusOK, gin.H{"email": c.GetString("email")})
	})

	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+sign(t, secret, jwt.SigningMethodHS256, jwt.MapClaims{
		"role": "admin", "email": "owner@example.com", "exp": exp.Unix(),
	}))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, got)
	assert.Equal(t, "admin", got.Role)
	assert.Equal(t, "owner@example.com", got.Email)
	require.NotNil(t, got.ExpiresAt)
	assert.True(t, exp.Equal(got.ExpiresAt.Time))
	assert.JSONEq(t, `{"email":"owner@example.com"}`, w.Body.String())
}

func TestAuthMiddleware_NoSecret(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/admin", AuthMiddleware(""), func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestSanitizeInput(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(SanitizeAndCleanInputMiddleware())
	r.POST("/echo", func(c *gin.Context) {
		b, _ := io.ReadAll(c.Request.Body)
		c.Data(http.StatusOK, "application/json", b)
	})

	post := func(contentType, body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/echo", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	w := post("application/json", `{"name":"<b>Mona</b>","tags":["<script>x</script>ok"],"n":2}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"name":"Mona","tags":["ok"],"n":2}`, w.Body.String())

	assert.Equal(t, http.StatusBadRequest, post("application/json", `{"name":`).Code)

	w = post("text/plain", "<b>raw</b>")
	assert.Equal(t, "<b>raw</b>", w.Body.String())
}

func TestRequestLogger_RequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestLogger(logger.Nop()))
	r.GET("/ping", func(c *gin.Context) {
		assert.NotNil(t, logger.FromContext(c.Request.Context()))
		c.Status(http.StatusNoContent)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.NotEmpty(t, w.Header().Get(RequestIDHeader))

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
}
