// Package inquiries records visitor contact and purchase requests and
// forwards them to the gallery inbox.
package inquiries

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"gallery-storefront/internal/domain/inquiries"
	"gallery-storefront/internal/domain/paintings"
	"gallery-storefront/internal/infra/mail"
	"gallery-storefront/internal/logger"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const notifyTimeout = 10 * time.Second

type PaintingLookup interface {
	Get(id string) (paintings.Painting, error)
}

type Handler struct {
	db        *gorm.DB
	catalog   PaintingLookup
	mailer    mail.Sender
	recipient string
}

// NewHandler wires the handler. A nil mailer or empty recipient stores
// inquiries without notifying anyone.
func NewHandler(db *gorm.DB, catalog PaintingLookup, mailer mail.Sender, recipient string) *Handler {
	return &Handler{db: db, catalog: catalog, mailer: mailer, recipient: recipient}
}

type contactInput struct {
	Name    string `json:"name" binding:"required,max=200"`
	Email   string `json:"email" binding:"required,email"`
	Message string `json:"message" binding:"required,max=5000"`
}

type purchaseInput struct {
	Name       string `json:"name" binding:"required,max=200"`
	Email      string `json:"email" binding:"required,email"`
	Message    string `json:"message" binding:"max=5000"`
	Address    string `json:"address" binding:"required"`
	City       string `json:"city" binding:"required"`
	Country    string `json:"country" binding:"required"`
	PostalCode string `json:"postalCode"`
}

// POST /contact
func (h *Handler) Contact(c *gin.Context) {
	var in contactInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name, a valid email and a message are required"})
		return
	}

	inq := inquiries.Inquiry{
		Kind:    inquiries.KindContact,
		Name:    strings.TrimSpace(in.Name),
		Email:   strings.TrimSpace(in.Email),
		Message: strings.TrimSpace(in.Message),
	}
	subject := "New message from " + inq.Name
	h.save(c, &inq, subject)
}

// POST /paintings/:id/inquiry
func (h *Handler) Purchase(c *gin.Context) {
	p, err := h.catalog.Get(c.Param("id"))
	if err != nil {
		if errors.Is(err, paintings.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Painting not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load painting"})
		return
	}

	var in purchaseInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name, a valid email and a shipping address are required"})
		return
	}

	inq := inquiries.Inquiry{
		Kind:       inquiries.KindPurchase,
		Name:       strings.TrimSpace(in.Name),
		Email:      strings.TrimSpace(in.Email),
		Message:    strings.TrimSpace(in.Message),
		PaintingID: p.ID,
		Address:    in.Address,
		City:       in.City,
		Country:    in.Country,
		PostalCode: in.PostalCode,
	}
	subject := fmt.Sprintf("Purchase request: %s (%d)", p.Title, p.Price)
	h.save(c, &inq, subject)
}

func (h *Handler) save(c *gin.Context, inq *inquiries.Inquiry, subject string) {
	log := logger.FromContext(c.Request.Context())

	if err := h.db.WithContext(c.Request.Context()).Create(inq).Error; err != nil {
		log.Error().Err(err).Str("kind", inq.Kind).Msg("failed to store inquiry")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send your message"})
		return
	}

	if h.notify(c.Request.Context(), inq, subject) {
		inq.Notified = true
		if err := h.db.WithContext(c.Request.Context()).
			Model(inq).
			Update("notified", true).Error; err != nil {
			log.Warn().Err(err).Uint("inquiry_id", inq.ID).Msg("failed to mark inquiry notified")
		}
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Thank you, we will be in touch soon", "id": inq.ID})
}

// notify is best effort; the inquiry is already stored.
func (h *Handler) notify(ctx context.Context, inq *inquiries.Inquiry, subject string) bool {
	if h.mailer == nil || h.recipient == "" {
		return false
	}
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), notifyTimeout)
	defer cancel()

	err := h.mailer.Send(ctx, mail.Message{
		To:      h.recipient,
		ReplyTo: inq.Email,
		Subject: subject,
		Body:    body(inq),
	})
	if err != nil {
		log := logger.FromContext(ctx)
		if errors.Is(err, mail.ErrDisabled) {
			log.Debug().Msg("smtp disabled, inquiry stored only")
		} else {
			log.Warn().Err(err).Uint("inquiry_id", inq.ID).Msg("failed to send inquiry email")
		}
		return false
	}
	return true
}

func body(inq *inquiries.Inquiry) string {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s <%s>\n", inq.Name, inq.Email)
	if inq.PaintingID != "" {
		fmt.Fprintf(&b, "Painting: %s\n", inq.PaintingID)
		fmt.Fprintf(&b, "Ship to: %s, %s, %s %s\n", inq.Address, inq.City, inq.Country, inq.PostalCode)
	}
	if inq.Message != "" {
		b.WriteString("\n")
		b.WriteString(inq.Message)
		b.WriteString("\n")
	}
	return b.String()
}
