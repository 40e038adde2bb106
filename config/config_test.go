package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Setenv("DB_URL", "sqlite://gallery.db")
	t.Setenv("JWT_SECRET", "test-secret")
}

func TestParse_Defaults(t *testing.T) {
	setRequired(t)

	cfg, err := Parse()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "egp", cfg.Stripe.Currency)
	assert.Equal(t, "paintings", cfg.S3.Bucket)
	assert.Equal(t, "supabase", cfg.Catalog.StorageMarker)
	assert.Equal(t, "/images/", cfg.Catalog.AssetBasePath)
	assert.Equal(t, "/placeholder-image.jpg", cfg.Catalog.PlaceholderImage)
	assert.True(t, cfg.Catalog.RemoteFirst)
	assert.Equal(t, "session", cfg.Catalog.SeedEditPolicy)
	assert.False(t, cfg.S3.Enabled())
	assert.False(t, cfg.Google.Enabled())
}

func TestParse_MissingRequired(t *testing.T) {
	t.Setenv("DB_URL", "")
	t.Setenv("JWT_SECRET", "x")

	_, err := Parse()
	assert.Error(t, err)
}

func TestParse_NestedPrefixes(t *testing.T) {
	setRequired(t)
	t.Setenv("S3_ENDPOINT", "http://localhost:9000")
	t.Setenv("S3_ACCESS_KEY", "minio")
	t.Setenv("S3_SECRET_KEY", "minio123")
	t.Setenv("ADMIN_GOOGLE_EMAILS", "Artist@Example.com, curator@example.com")
	t.Setenv("CATALOG_REMOTE_FIRST", "false")
	t.Setenv("CONTACT_RECIPIENT", "studio@example.com")

	cfg, err := Parse()
	require.NoError(t, err)

	assert.True(t, cfg.S3.Enabled())
	assert.False(t, cfg.Catalog.RemoteFirst)
	assert.Equal(t, "studio@example.com", cfg.ContactRecipient)
	assert.True(t, cfg.IsAdminGoogleEmail("artist@example.com"))
	assert.True(t, cfg.IsAdminGoogleEmail("CURATOR@example.com"))
	assert.False(t, cfg.IsAdminGoogleEmail("visitor@example.com"))
	assert.False(t, cfg.IsAdminGoogleEmail(""))
}

func TestValidate(t *testing.T) {
	setRequired(t)

	t.Run("bad port", func(t *testing.T) {
		t.Setenv("PORT", "eighty")
		_, err := Parse()
		assert.ErrorContains(t, err, "PORT")
	})

	t.Run("unknown seed edit policy", func(t *testing.T) {
		t.Setenv("SEED_EDIT_POLICY", "merge")
		_, err := Parse()
		assert.ErrorContains(t, err, "SEED_EDIT_POLICY")
	})

	t.Run("stripe without webhook secret", func(t *testing.T) {
		t.Setenv("STRIPE_SECRET_KEY", "sk_test_123")
		_, err := Parse()
		assert.ErrorContains(t, err, "STRIPE_WEBHOOK_SECRET")
	})
}
