package stripewebhooks

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"gallery-storefront/internal/cart"
	"gallery-storefront/internal/domain/orders"
	"gallery-storefront/internal/infra/stripe"
	"gallery-storefront/internal/logger"

	"github.com/gin-gonic/gin"
	stripego "github.com/stripe/stripe-go/v75"
	"github.com/stripe/stripe-go/v75/webhook"
	"gorm.io/gorm"
)

const maxBodyBytes = 65536

type Handler struct {
	db            *gorm.DB
	carts         *cart.Store
	webhookSecret string
}

func NewHandler(db *gorm.DB, carts *cart.Store, webhookSecret string) *Handler {
	return &Handler{db: db, carts: carts, webhookSecret: webhookSecret}
}

// POST /webhook
func (h *Handler) StripeWebhook(c *gin.Context) {
	log := logger.FromContext(c.Request.Context())

	if h.webhookSecret == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "STRIPE_WEBHOOK_SECRET not configured"})
		return
	}

	payload, err := readStripeBody(c, maxBodyBytes)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Error reading request body"})
		return
	}

	event, err := webhook.ConstructEventWithOptions(
		payload,
		c.GetHeader("Stripe-Signature"),
		h.webhookSecret,
		webhook.ConstructEventOptions{IgnoreAPIVersionMismatch: true},
	)
	if err != nil {
		log.Warn().Err(err).Msg("stripe signature verification failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Signature verification failed"})
		return
	}

	switch event.Type {
	case "payment_intent.succeeded",
		"payment_intent.processing",
		"payment_intent.payment_failed",
		"payment_intent.canceled":
		var pi stripego.PaymentIntent
		if err := json.Unmarshal(event.Data.Raw, &pi); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to parse payment intent"})
			return
		}
		status := stripe.NormalizePaymentIntentStatus(string(pi.Status))
		// a failed attempt leaves the intent in requires_payment_method
		if event.Type == "payment_intent.payment_failed" {
			status = orders.StatusFailed
		}
		if err := h.handlePaymentIntent(c, pi.ID, status); err != nil {
			log.Error().Err(err).Str("payment_intent", pi.ID).Msg("webhook handling failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "received"})

	default:
		// Acknowledge unknown events to avoid retries
		c.JSON(http.StatusOK, gin.H{"status": "ignored"})
	}
}

// handlePaymentIntent mirrors the intent status onto its order. A paid order
// empties the cart it came from. Intents we never recorded are acknowledged.
func (h *Handler) handlePaymentIntent(c *gin.Context, piID, status string) error {
	log := logger.FromContext(c.Request.Context())

	var order orders.Order
	err := h.db.WithContext(c.Request.Context()).
		Where("payment_intent_id = ?", piID).
		First(&order).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		log.Warn().Str("payment_intent", piID).Msg("webhook for unknown payment intent")
		return nil
	}
	if err != nil {
		return err
	}

	// paid is terminal; late processing or failure events must not roll it back
	if order.Status == orders.StatusPaid && status != orders.StatusPaid {
		return nil
	}

	if order.Status != status {
		if err := h.db.WithContext(c.Request.Context()).
			Model(&order).
			Update("status", status).Error; err != nil {
			return err
		}
		log.Info().Uint("order_id", order.ID).Str("status", status).Msg("order status updated")
	}

	if status == orders.StatusPaid && order.CartID != "" && h.carts != nil {
		if err := h.carts.Clear(order.CartID); err != nil {
			log.Warn().Err(err).Str("cart_id", order.CartID).Msg("failed to clear paid cart")
		}
	}
	return nil
}

func readStripeBody(c *gin.Context, maxBytes int64) ([]byte, error) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
	return io.ReadAll(c.Request.Body)
}
