package routes

import (
	"gallery-storefront/config"
	adminapi "gallery-storefront/internal/api/admin"
	artistsapi "gallery-storefront/internal/api/artists"
	authapi "gallery-storefront/internal/api/auth"
	cartapi "gallery-storefront/internal/api/cart"
	checkoutapi "gallery-storefront/internal/api/checkout"
	inquiriesapi "gallery-storefront/internal/api/inquiries"
	paintingsapi "gallery-storefront/internal/api/paintings"
	stripewebhooks "gallery-storefront/internal/api/stripewebhook"
	"gallery-storefront/internal/app/http/middleware"

	"github.com/gin-gonic/gin"
)

// Handlers groups everything RegisterRoutes mounts.
type Handlers struct {
	Paintings *paintingsapi.Handler
	Cart      *cartapi.Handler
	Checkout  *checkoutapi.Handler
	Inquiries *inquiriesapi.Handler
	Webhook   *stripewebhooks.Handler
	Auth      *authapi.Handler
	Admin     *adminapi.Handler
}

func RegisterRoutes(r *gin.Engine, cfg *config.Config, h Handlers) {
	r.POST("/webhook", h.Webhook.StripeWebhook)
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	r.GET("/paintings", h.Paintings.List)
	r.GET("/paintings/:id", h.Paintings.Get)
	r.GET("/paintings/:id/image", h.Paintings.Image)

	r.GET("/artists", artistsapi.ListArtists)
	r.GET("/artists/:slug", artistsapi.GetArtist)
	r.GET("/artists/:slug/paintings/:id", artistsapi.GetArtistWork)

	r.GET("/cart", h.Cart.Get)
	r.GET("/auth/google", h.Auth.GoogleStart)
	r.GET("/auth/google/callback", h.Auth.GoogleCallback)

	// Apply input sanitization to visitor-submitted bodies only
	public := r.Group("/")
	public.Use(middleware.SanitizeAndCleanInputMiddleware())

	public.POST("/login", h.Auth.Login)
	public.POST("/cart/items", h.Cart.AddItem)
	public.PUT("/cart/items/:id", h.Cart.SetQuantity)
	public.DELETE("/cart/items/:id", h.Cart.RemoveItem)
	public.DELETE("/cart", h.Cart.Clear)
	public.POST("/checkout/payment-intent", h.Checkout.CreatePaymentIntent)
	public.POST("/contact", h.Inquiries.Contact)
	public.POST("/paintings/:id/inquiry", h.Inquiries.Purchase)

	// Admin routes
	admin := r.Group("/admin")
	admin.Use(middleware.AuthMiddleware(cfg.JWTSecret), middleware.RequireRole(authapi.RoleAdmin))
	admin.GET("/dashboard", h.Admin.Dashboard)
	admin.GET("/status", h.Paintings.Status)
	admin.GET("/orders", h.Admin.ListOrders)
	admin.GET("/orders/:id", h.Admin.GetOrder)
	admin.GET("/inquiries", h.Admin.ListInquiries)

	admin.POST("/paintings", h.Paintings.Create)
	admin.PUT("/paintings/:id", h.Paintings.Update)
	admin.DELETE("/paintings/:id", h.Paintings.Delete)
	admin.POST("/paintings/refresh", h.Paintings.Refresh)
	admin.POST("/paintings/quick-upload", h.Paintings.QuickUpload)
	admin.GET("/paintings/hidden", h.Paintings.Hidden)
	admin.POST("/paintings/:id/restore", h.Paintings.Restore)
	admin.GET("/storage/audit", h.Paintings.AuditStorage)
}
