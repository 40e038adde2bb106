package stripewebhooks_test

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"gallery-storefront/database"
	stripewebhooks "gallery-storefront/internal/api/stripewebhook"
	"gallery-storefront/internal/cart"
	"gallery-storefront/internal/domain/orders"
	"gallery-storefront/internal/localstore"
	"gallery-storefront/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v75/webhook"
	"gorm.io/gorm"
)

const (
	secret = "whsec_test"
	cartID = "cart-1"
)

func setup(t *testing.T) (*gin.Engine, *gorm.DB, *cart.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.OpenInMemory()
	require.NoError(t, err)
	carts := cart.NewStore(localstore.NewMemoryKV(), logger.Nop())

	h := stripewebhooks.NewHandler(db, carts, secret)
	r := gin.New()
	r.POST("/webhook", h.StripeWebhook)
	return r, db, carts
}

func event(typ, piID, status string) []byte {
	return []byte(fmt.Sprintf(`{
		"id": "evt_1",
		"object": "event",
		"type": %q,
		"data": {"object": {"id": %q, "object": "payment_intent", "status": %q}}
	}`, typ, piID, status))
}

func send(r http.Handler, payload []byte, signSecret string) *httptest.ResponseRecorder {
	signed := webhook.GenerateTestSignedPayload(&webhook.UnsignedPayload{
		Payload: payload,
		Secret:  signSecret,
	})
	req := httptest.NewRequest(http.MethodPost, "/webhook", bytes.NewReader(signed.Payload))
	req.Header.Set("Stripe-Signature", signed.Header)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestPaymentSucceeded_MarksPaidAndClearsCart(t *testing.T) {
	r, db, carts := setup(t)

	require.NoError(t, db.Create(&orders.Order{PaymentIntentID: "pi_1", CartID: cartID, Status: orders.StatusPending}).Error)
	_, err := carts.Add(cartID, cart.Item{ID: "nile", Price: 100})
	require.NoError(t, err)

	w := send(r, event("payment_intent.succeeded", "pi_1", "succeeded"), secret)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var order orders.Order
	require.NoError(t, db.First(&order, "payment_intent_id = ?", "pi_1").Error)
	assert.Equal(t, orders.StatusPaid, order.Status)

	items, err := carts.Items(cartID)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestPaymentFailed_KeepsCart(t *testing.T) {
	r, db, carts := setup(t)

	require.NoError(t, db.Create(&orders.Order{PaymentIntentID: "pi_2", CartID: cartID, Status: orders.StatusPending}).Error)
	_, err := carts.Add(cartID, cart.Item{ID: "nile", Price: 100})
	require.NoError(t, err)

	w := send(r, event("payment_intent.payment_failed", "pi_2", "requires_payment_method"), secret)
	require.Equal(t, http.StatusOK, w.Code)

	var order orders.Order
	require.NoError(t, db.First(&order, "payment_intent_id = ?", "pi_2").Error)
	assert.Equal(t, orders.StatusFailed, order.Status)

	items, err := carts.Items(cartID)
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestPaidIsTerminal(t *testing.T) {
	r, db, _ := setup(t)
	require.NoError(t, db.Create(&orders.Order{PaymentIntentID: "pi_3", Status: orders.StatusPaid}).Error)

	w := send(r, event("payment_intent.canceled", "pi_3", "canceled"), secret)
	require.Equal(t, http.StatusOK, w.Code)

	var order orders.Order
	require.NoError(t, db.First(&order, "payment_intent_id = ?", "pi_3").Error)
	assert.Equal(t, orders.StatusPaid, order.Status)
}

func TestBadSignature(t *testing.T) {
	r, _, _ := setup(t)
	w := send(r, event("payment_intent.succeeded", "pi_1", "succeeded"), "whsec_other")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUnknownEventsAreAcknowledged(t *testing.T) {
	r, _, _ := setup(t)

	w := send(r, event("customer.created", "cus_1", ""), secret)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ignored")

	w = send(r, event("payment_intent.succeeded", "pi_unknown", "succeeded"), secret)
	assert.Equal(t, http.StatusOK, w.Code)
}
