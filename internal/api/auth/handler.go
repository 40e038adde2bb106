// Package auth signs the gallery owner into the admin area. There are no
// visitor accounts: the only identities are the configured admin email with
// its bcrypt hash and an allow-list of Google accounts.
package auth

import (
	"net/http"
	"strings"
	"time"

	"gallery-storefront/config"
	"gallery-storefront/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const (
	RoleAdmin = "admin"
	tokenTTL  = 24 * time.Hour
)

type Handler struct {
	cfg    *config.Config
	oauth  *oauth2.Config
	issuer string
}

func NewHandler(cfg *config.Config) *Handler {
	h := &Handler{cfg: cfg, issuer: "https://accounts.google.com"}
	if cfg.Google.Enabled() {
		h.oauth = &oauth2.Config{
			ClientID:     cfg.Google.ClientID,
			ClientSecret: cfg.Google.ClientSecret,
			RedirectURL:  cfg.Google.RedirectURL,
			Scopes:       []string{"openid", "email", "profile"},
			Endpoint:     google.Endpoint,
		}
	}
	return h
}

// POST /login
func (h *Handler) Login(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	log := logger.FromContext(c.Request.Context())

	if h.cfg.Admin.Email == "" || h.cfg.Admin.PasswordHash == "" {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Admin login is not configured"})
		return
	}
	if !strings.EqualFold(strings.TrimSpace(input.Email), h.cfg.Admin.Email) {
		log.Warn().Str("email", input.Email).Msg("login attempt for unknown account")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(h.cfg.Admin.PasswordHash), []byte(input.Password)); err != nil {
		log.Warn().Str("email", input.Email).Msg("login attempt with wrong password")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	tokenString, err := IssueToken(h.cfg.JWTSecret, h.cfg.Admin.Email, RoleAdmin)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not create token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": tokenString})
}

// IssueToken signs an HS256 token carrying email and role, valid for a day.
func IssueToken(secret, email, role string) (string, error) {
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"email": email,
		"role":  role,
		"exp":   time.Now().Add(tokenTTL).Unix(),
	})
	return t.SignedString([]byte(secret))
}
