package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"gallery-storefront/internal/catalog"
	"gallery-storefront/internal/logger"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	Port       string `env:"PORT" envDefault:"8080"`
	AppEnv     string `env:"APP_ENV" envDefault:"development"`
	CORSOrigin string `env:"CORS_ORIGIN" envDefault:"http://localhost:5173"`
	DBURL      string `env:"DB_URL,required,notEmpty"`
	JWTSecret  string `env:"JWT_SECRET,required,notEmpty"`
	LogLevel   string `env:"LOG_LEVEL" envDefault:"debug"`

	// ContactRecipient receives contact and purchase inquiries.
	ContactRecipient string `env:"CONTACT_RECIPIENT"`

	Admin   Admin   `envPrefix:"ADMIN_"`
	Google  Google  `envPrefix:"GOOGLE_"`
	Stripe  Stripe  `envPrefix:"STRIPE_"`
	S3      S3      `envPrefix:"S3_"`
	SMTP    SMTP    `envPrefix:"SMTP_"`
	Catalog Catalog
}

type Admin struct {
	Email        string   `env:"EMAIL"`
	PasswordHash string   `env:"PASSWORD_HASH"`
	GoogleEmails []string `env:"GOOGLE_EMAILS" envSeparator:","`
}

type Google struct {
	ClientID         string `env:"CLIENT_ID"`
	ClientSecret     string `env:"CLIENT_SECRET"`
	RedirectURL      string `env:"REDIRECT_URL"`
	FrontendRedirect string `env:"FRONTEND_REDIRECT"`
}

func (g Google) Enabled() bool {
	return g.ClientID != "" && g.ClientSecret != "" && g.RedirectURL != ""
}

type Stripe struct {
	SecretKey     string `env:"SECRET_KEY"`
	WebhookSecret string `env:"WEBHOOK_SECRET"`
	Currency      string `env:"CURRENCY" envDefault:"egp"`
}

type S3 struct {
	Endpoint      string `env:"ENDPOINT"`
	Region        string `env:"REGION" envDefault:"us-east-1"`
	Bucket        string `env:"BUCKET" envDefault:"paintings"`
	AccessKey     string `env:"ACCESS_KEY"`
	SecretKey     string `env:"SECRET_KEY"`
	PublicBaseURL string `env:"PUBLIC_BASE_URL"`
}

func (s S3) Enabled() bool {
	return s.Endpoint != "" && s.AccessKey != "" && s.SecretKey != ""
}

type SMTP struct {
	Host     string `env:"HOST"`
	Port     string `env:"PORT" envDefault:"587"`
	From     string `env:"FROM"`
	Password string `env:"PASSWORD"`
}

type Catalog struct {
	StorageMarker    string `env:"STORAGE_HOST_MARKER" envDefault:"supabase"`
	AssetBasePath    string `env:"ASSET_BASE_PATH" envDefault:"/images/"`
	PlaceholderImage string `env:"PLACEHOLDER_IMAGE" envDefault:"/placeholder-image.jpg"`
	LocalStoreDir    string `env:"LOCAL_STORE_DIR" envDefault:"./data"`
	RemoteFirst      bool   `env:"CATALOG_REMOTE_FIRST" envDefault:"true"`
	SeedEditPolicy   string `env:"SEED_EDIT_POLICY" envDefault:"session"`
}

// LoadEnv reads .env when present, then the process environment.
func LoadEnv(log *logger.Logger) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Info().Msg("no .env file found, using system environment variables")
	}
	return Parse()
}

// Parse builds a Config from the process environment and validates it.
func Parse() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("error getting env configs: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	var errs []error

	if p, err := strconv.Atoi(c.Port); err != nil || p <= 0 || p > 65535 {
		errs = append(errs, fmt.Errorf("PORT %q is not a valid port", c.Port))
	}
	if _, err := catalog.ParseSeedEditPolicy(c.Catalog.SeedEditPolicy); err != nil {
		errs = append(errs, fmt.Errorf("SEED_EDIT_POLICY: %w", err))
	}
	if c.Stripe.SecretKey != "" && c.Stripe.WebhookSecret == "" {
		errs = append(errs, errors.New("STRIPE_WEBHOOK_SECRET is required when STRIPE_SECRET_KEY is set"))
	}
	return errors.Join(errs...)
}

// IsAdminGoogleEmail reports whether email may sign in to the admin area
// with Google.
func (c *Config) IsAdminGoogleEmail(email string) bool {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return false
	}
	if strings.EqualFold(c.Admin.Email, email) {
		return true
	}
	for _, e := range c.Admin.GoogleEmails {
		if strings.ToLower(strings.TrimSpace(e)) == email {
			return true
		}
	}
	return false
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}
