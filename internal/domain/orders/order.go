package orders

import (
	"time"

	"gorm.io/datatypes"
)

const (
	StatusPending    = "pending"
	StatusProcessing = "processing"
	StatusPaid       = "paid"
	StatusFailed     = "failed"
	StatusCanceled   = "canceled"
)

// Order records one checkout attempt backed by a payment intent. The payment
// processor owns charge and capture; this row only mirrors its outcome.
type Order struct {
	ID              uint   `gorm:"primaryKey" json:"id"`
	PaymentIntentID string `gorm:"uniqueIndex;not null" json:"payment_intent_id"`
	CartID          string `gorm:"index" json:"cart_id"`

	Subtotal int    `json:"subtotal"`
	Amount   int64  `json:"amount"` // minor units, after discount
	Currency string `json:"currency"`
	Status   string `gorm:"index;not null;default:'pending'" json:"status"`

	Items datatypes.JSON `json:"items"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
