package auth

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"net/http"
	"net/url"

	"gallery-storefront/internal/logger"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/gin-gonic/gin"
	"golang.org/x/oauth2"
)

const stateCookie = "oauth_state"

func randomState() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

// GET /auth/google
func (h *Handler) GoogleStart(c *gin.Context) {
	if h.oauth == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Google sign-in is not enabled"})
		return
	}
	state, err := randomState()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate state"})
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(stateCookie, state, 300, "/", "", h.cfg.IsProduction(), true)

	c.Redirect(http.StatusFound, h.oauth.AuthCodeURL(state, oauth2.AccessTypeOnline))
}

// GET /auth/google/callback
func (h *Handler) GoogleCallback(c *gin.Context) {
	if h.oauth == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Google sign-in is not enabled"})
		return
	}
	log := logger.FromContext(c.Request.Context())

	state := c.Query("state")
	code := c.Query("code")
	if code == "" || state == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing code/state"})
		return
	}
	cookieState, err := c.Cookie(stateCookie)
	if err != nil || cookieState != state {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid oauth state"})
		return
	}

	tok, err := h.oauth.Exchange(c.Request.Context(), code)
	if err != nil {
		log.Warn().Err(err).Msg("google code exchange failed")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "failed to exchange code"})
		return
	}
	rawIDToken, ok := tok.Extra("id_token").(string)
	if !ok || rawIDToken == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing id_token"})
		return
	}

	claims, err := h.verifyGoogleIDToken(c, rawIDToken)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}
	if !claims.EmailVerified || !h.cfg.IsAdminGoogleEmail(claims.Email) {
		log.Warn().Str("email", claims.Email).Msg("google account is not an admin")
		c.JSON(http.StatusForbidden, gin.H{"error": "This Google account cannot manage the gallery"})
		return
	}

	tokenString, err := IssueToken(h.cfg.JWTSecret, claims.Email, RoleAdmin)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create token"})
		return
	}

	redirect := h.cfg.Google.FrontendRedirect
	if redirect == "" {
		c.JSON(http.StatusOK, gin.H{"token": tokenString})
		return
	}
	c.Redirect(http.StatusFound, redirect+"?token="+url.QueryEscape(tokenString))
}

type googleIDClaims struct {
	Sub           string `json:"sub"`
	Email         string `json:"email"`
	EmailVerified bool   `json:"email_verified"`
	Name          string `json:"name"`
}

func (h *Handler) verifyGoogleIDToken(c *gin.Context, rawIDToken string) (*googleIDClaims, error) {
	ctx := c.Request.Context()

	provider, err := oidc.NewProvider(ctx, h.issuer)
	if err != nil {
		return nil, errors.New("failed to init google oidc provider")
	}
	verifier := provider.Verifier(&oidc.Config{ClientID: h.oauth.ClientID})

	idToken, err := verifier.Verify(ctx, rawIDToken)
	if err != nil {
		return nil, errors.New("invalid id_token")
	}

	var claims googleIDClaims
	if err := idToken.Claims(&claims); err != nil {
		return nil, errors.New("failed to decode token claims")
	}
	if claims.Email == "" || claims.Sub == "" {
		return nil, errors.New("token missing required claims")
	}
	return &claims, nil
}
