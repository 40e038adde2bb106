// Package checkout turns a cart into a pending order backed by a Stripe
// payment intent. The browser confirms the card with the returned client
// secret; the webhook settles the order.
package checkout

import (
	"encoding/json"
	"errors"
	"net/http"

	cartapi "gallery-storefront/internal/api/cart"
	"gallery-storefront/internal/cart"
	"gallery-storefront/internal/domain/orders"
	"gallery-storefront/internal/domain/paintings"
	"gallery-storefront/internal/infra/stripe"
	"gallery-storefront/internal/logger"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Handler struct {
	db       *gorm.DB
	carts    *cart.Store
	cartAPI  *cartapi.Handler
	catalog  cartapi.PaintingLookup
	intents  stripe.PaymentIntents
	currency string
}

func NewHandler(db *gorm.DB, carts *cart.Store, cartAPI *cartapi.Handler, catalog cartapi.PaintingLookup, intents stripe.PaymentIntents, currency string) *Handler {
	return &Handler{db: db, carts: carts, cartAPI: cartAPI, catalog: catalog, intents: intents, currency: currency}
}

// current refreshes a cart line from the catalog. Paintings the catalog no
// longer lists are reported as gone.
func (h *Handler) current(it cart.Item) (cart.Item, bool, error) {
	p, err := h.catalog.Get(it.ID)
	if errors.Is(err, paintings.ErrNotFound) {
		return cart.Item{}, false, nil
	}
	if err != nil {
		return cart.Item{}, false, err
	}
	return cart.Item{Title: p.Title, Price: p.Price, Image: p.Image}, true, nil
}

// POST /checkout/payment-intent
func (h *Handler) CreatePaymentIntent(c *gin.Context) {
	log := logger.FromContext(c.Request.Context())

	cartID, ok := h.cartAPI.CartID(c, false)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cart is empty"})
		return
	}
	items, dropped, err := h.carts.Reconcile(cartID, h.current)
	if err != nil {
		log.Error().Err(err).Str("cart_id", cartID).Msg("failed to check cart against catalog")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load cart"})
		return
	}
	if len(dropped) > 0 {
		log.Info().Strs("dropped", dropped).Str("cart_id", cartID).Msg("removed unavailable paintings from cart")
	}
	if len(items) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cart is empty"})
		return
	}

	subtotal := cart.Subtotal(items)
	total := cart.Total(items)
	amount := cart.MinorUnits(total)

	intent, err := h.intents.Create(c.Request.Context(), stripe.CreateIntentParams{
		Amount:      amount,
		Currency:    h.currency,
		CartID:      cartID,
		Description: "Gallery order",
	})
	if err != nil {
		if errors.Is(err, stripe.ErrNotConfigured) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Payments are not configured"})
			return
		}
		log.Error().Err(err).Str("cart_id", cartID).Msg("payment intent creation failed")
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to start payment"})
		return
	}

	itemsJSON, err := json.Marshal(items)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record order"})
		return
	}
	order := orders.Order{
		PaymentIntentID: intent.ID,
		CartID:          cartID,
		Subtotal:        subtotal,
		Amount:          amount,
		Currency:        h.currency,
		Status:          stripe.NormalizePaymentIntentStatus(intent.Status),
		Items:           datatypes.JSON(itemsJSON),
	}
	if err := h.db.WithContext(c.Request.Context()).Create(&order).Error; err != nil {
		log.Error().Err(err).Str("payment_intent", intent.ID).Msg("failed to record order")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record order"})
		return
	}

	log.Info().Uint("order_id", order.ID).Int64("amount", amount).Msg("checkout started")
	c.JSON(http.StatusOK, gin.H{
		"clientSecret": intent.ClientSecret,
		"orderId":      order.ID,
		"amount":       amount,
		"currency":     h.currency,
		"subtotal":     subtotal,
		"total":        total,
		"removed":      dropped,
	})
}
