package stripe

import (
	"strings"

	"gallery-storefront/internal/domain/orders"
)

// NormalizePaymentIntentStatus maps a Stripe payment intent status (or a
// webhook event outcome) onto an order status.
func NormalizePaymentIntentStatus(s string) string {
	switch strings.TrimSpace(s) {
	case "succeeded":
		return orders.StatusPaid
	case "processing":
		return orders.StatusProcessing
	case "canceled":
		return orders.StatusCanceled
	case "payment_failed":
		return orders.StatusFailed
	default:
		// requires_* and unknown states are still awaiting the customer.
		return orders.StatusPending
	}
}
