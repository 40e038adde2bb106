package main

import (
	"context"
	"os"
	"time"

	"gallery-storefront/config"
	"gallery-storefront/database"
	adminapi "gallery-storefront/internal/api/admin"
	authapi "gallery-storefront/internal/api/auth"
	cartapi "gallery-storefront/internal/api/cart"
	checkoutapi "gallery-storefront/internal/api/checkout"
	inquiriesapi "gallery-storefront/internal/api/inquiries"
	paintingsapi "gallery-storefront/internal/api/paintings"
	stripewebhooks "gallery-storefront/internal/api/stripewebhook"
	routes "gallery-storefront/internal/app/http"
	"gallery-storefront/internal/app/http/middleware"
	"gallery-storefront/internal/cart"
	"gallery-storefront/internal/catalog"
	"gallery-storefront/internal/domain/media"
	"gallery-storefront/internal/infra/mail"
	"gallery-storefront/internal/infra/objectstore"
	"gallery-storefront/internal/infra/stripe"
	"gallery-storefront/internal/localstore"
	"gallery-storefront/internal/logger"
	"gallery-storefront/internal/overrides"
	"gallery-storefront/internal/store/paintingrepo"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	log := logger.NewLogger("gallery-storefront", os.Getenv("LOG_LEVEL"))

	cfg, err := config.LoadEnv(log)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	log = logger.NewLogger("gallery-storefront", cfg.LogLevel)
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.InitDB(cfg.DBURL, log)
	if err != nil {
		log.Fatal().Err(err).Msg("database init failed")
	}

	kv, err := localstore.NewFileKV(cfg.Catalog.LocalStoreDir)
	if err != nil {
		log.Fatal().Err(err).Str("dir", cfg.Catalog.LocalStoreDir).Msg("local store init failed")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// nil keeps inline image uploads disabled
	var blobs catalog.BlobStore
	if cfg.S3.Enabled() {
		s3, err := objectstore.New(ctx, objectstore.Config{
			Endpoint:      cfg.S3.Endpoint,
			Region:        cfg.S3.Region,
			Bucket:        cfg.S3.Bucket,
			AccessKey:     cfg.S3.AccessKey,
			SecretKey:     cfg.S3.SecretKey,
			PublicBaseURL: cfg.S3.PublicBaseURL,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("object storage init failed")
		}
		if err := s3.EnsureBucket(ctx); err != nil {
			log.Warn().Err(err).Str("bucket", cfg.S3.Bucket).Msg("bucket check failed")
		}
		blobs = s3
	} else {
		log.Warn().Msg("S3 not configured, inline image uploads are disabled")
	}

	// Validate already rejected an unknown policy
	policy, _ := catalog.ParseSeedEditPolicy(cfg.Catalog.SeedEditPolicy)
	repo := paintingrepo.New(db)
	cat := catalog.New(catalog.Deps{
		Rows:      repo,
		Blobs:     blobs,
		Overrides: overrides.New(kv, log),
		Log:       log,
	}, catalog.Options{
		RemoteFirst:   cfg.Catalog.RemoteFirst,
		SeedEdits:     policy,
		StorageMarker: cfg.Catalog.StorageMarker,
	})
	if err := cat.Refresh(ctx); err != nil {
		log.Warn().Err(err).Msg("initial catalog refresh failed, serving seed paintings only")
	}

	resolver := media.NewResolver(media.Normalizer{
		AssetBase:     cfg.Catalog.AssetBasePath,
		StorageMarker: cfg.Catalog.StorageMarker,
		Placeholder:   cfg.Catalog.PlaceholderImage,
	}, media.DefaultMaxRetries, media.DefaultRetryWait)

	carts := cart.NewStore(kv, log)
	cartHandler := cartapi.NewHandler(carts, cat, cfg.IsProduction())
	mailer := mail.NewSMTPSender(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.From, cfg.SMTP.Password)

	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(log))

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.CORSOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", middleware.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.RegisterRoutes(r, cfg, routes.Handlers{
		Paintings: paintingsapi.NewHandler(cat, resolver),
		Cart:      cartHandler,
		Checkout:  checkoutapi.NewHandler(db, carts, cartHandler, cat, stripe.NewClient(cfg.Stripe.SecretKey), cfg.Stripe.Currency),
		Inquiries: inquiriesapi.NewHandler(db, cat, mailer, cfg.ContactRecipient),
		Webhook:   stripewebhooks.NewHandler(db, carts, cfg.Stripe.WebhookSecret),
		Auth:      authapi.NewHandler(cfg),
		Admin:     adminapi.NewHandler(db, cat, repo),
	})

	log.Info().Str("port", cfg.Port).Msg("server starting")
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
