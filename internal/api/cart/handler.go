// Package cart exposes the visitor cart. The cart is identified by a cookie
// and priced from the catalog, never from the request body.
package cart

import (
	"errors"
	"net/http"

	"gallery-storefront/internal/cart"
	"gallery-storefront/internal/domain/paintings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	CookieName   = "cart_id"
	cookieMaxAge = 30 * 24 * 60 * 60
)

type PaintingLookup interface {
	Get(id string) (paintings.Painting, error)
}

type Handler struct {
	carts        *cart.Store
	catalog      PaintingLookup
	secureCookie bool
}

func NewHandler(carts *cart.Store, catalog PaintingLookup, secureCookie bool) *Handler {
	return &Handler{carts: carts, catalog: catalog, secureCookie: secureCookie}
}

type CartDTO struct {
	Items           []cart.Item `json:"items"`
	Count           int         `json:"count"`
	Subtotal        int         `json:"subtotal"`
	Total           float64     `json:"total"`
	DiscountPercent int         `json:"discountPercent"`
}

func ToDTO(items []cart.Item) CartDTO {
	return CartDTO{
		Items:           items,
		Count:           cart.Count(items),
		Subtotal:        cart.Subtotal(items),
		Total:           cart.Total(items),
		DiscountPercent: cart.DiscountPercent,
	}
}

// CartID returns the id from the cart cookie. With create set, a missing
// cookie gets a fresh id.
func (h *Handler) CartID(c *gin.Context, create bool) (string, bool) {
	if id, err := c.Cookie(CookieName); err == nil && id != "" {
		if _, perr := uuid.Parse(id); perr == nil {
			return id, true
		}
	}
	if !create {
		return "", false
	}
	id := uuid.NewString()
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(CookieName, id, cookieMaxAge, "/", "", h.secureCookie, true)
	return id, true
}

// GET /cart
func (h *Handler) Get(c *gin.Context) {
	id, ok := h.CartID(c, false)
	if !ok {
		c.JSON(http.StatusOK, ToDTO([]cart.Item{}))
		return
	}
	items, err := h.carts.Items(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load cart"})
		return
	}
	c.JSON(http.StatusOK, ToDTO(items))
}

// POST /cart/items
func (h *Handler) AddItem(c *gin.Context) {
	var body struct {
		PaintingID string `json:"paintingId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing or invalid paintingId"})
		return
	}

	p, err := h.catalog.Get(body.PaintingID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Painting not found"})
		return
	}

	id, _ := h.CartID(c, true)
	items, err := h.carts.Add(id, cart.Item{ID: p.ID, Title: p.Title, Price: p.Price, Image: p.Image})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart"})
		return
	}
	c.JSON(http.StatusOK, ToDTO(items))
}

// PUT /cart/items/:id
func (h *Handler) SetQuantity(c *gin.Context) {
	var body struct {
		Quantity *int `json:"quantity" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing or invalid quantity"})
		return
	}
	id, ok := h.CartID(c, false)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Cart is empty"})
		return
	}
	items, err := h.carts.SetQuantity(id, c.Param("id"), *body.Quantity)
	h.respond(c, items, err)
}

// DELETE /cart/items/:id
func (h *Handler) RemoveItem(c *gin.Context) {
	id, ok := h.CartID(c, false)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Cart is empty"})
		return
	}
	items, err := h.carts.Remove(id, c.Param("id"))
	h.respond(c, items, err)
}

// DELETE /cart
func (h *Handler) Clear(c *gin.Context) {
	if id, ok := h.CartID(c, false); ok {
		if err := h.carts.Clear(id); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear cart"})
			return
		}
	}
	c.JSON(http.StatusOK, ToDTO([]cart.Item{}))
}

func (h *Handler) respond(c *gin.Context, items []cart.Item, err error) {
	switch {
	case errors.Is(err, cart.ErrItemNotInCart):
		c.JSON(http.StatusNotFound, gin.H{"error": "Item not in cart"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart"})
	default:
		c.JSON(http.StatusOK, ToDTO(items))
	}
}
