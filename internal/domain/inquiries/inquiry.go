package inquiries

import "time"

const (
	KindContact  = "contact"
	KindPurchase = "purchase"
)

// Inquiry is a visitor message: a general contact form or a request to buy a
// specific painting.
type Inquiry struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	Kind       string `gorm:"type:varchar(20);not null;index" json:"kind"`
	Name       string `gorm:"not null" json:"name"`
	Email      string `gorm:"not null" json:"email"`
	Message    string `json:"message,omitempty"`
	PaintingID string `gorm:"index" json:"painting_id,omitempty"`

	Address    string `json:"address,omitempty"`
	City       string `json:"city,omitempty"`
	Country    string `json:"country,omitempty"`
	PostalCode string `json:"postal_code,omitempty"`

	Notified bool `gorm:"not null;default:false" json:"notified"`

	CreatedAt time.Time `json:"created_at"`
}
