package admin

import (
	"context"
	"net/http"
	"time"

	"gallery-storefront/internal/catalog"
	"gallery-storefront/internal/domain/inquiries"
	"gallery-storefront/internal/domain/orders"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CatalogStatus interface {
	Status() catalog.Status
}

type RowCounter interface {
	Count(ctx context.Context) (int64, error)
}

type Handler struct {
	db      *gorm.DB
	catalog CatalogStatus
	rows    RowCounter
	now     func() time.Time
}

func NewHandler(db *gorm.DB, c CatalogStatus, rows RowCounter) *Handler {
	return &Handler{db: db, catalog: c, rows: rows, now: time.Now}
}

type AdminOrder struct {
	ID              uint   `json:"id"`
	PaymentIntentID string `json:"payment_intent_id"`
	Subtotal        int    `json:"subtotal"`
	Amount          int64  `json:"amount"`
	Currency        string `json:"currency"`
	Status          string `json:"status"`
	CreatedAt       string `json:"created_at"`
}

type AdminStats struct {
	Catalog         catalog.Status `json:"catalog"`
	StoredPaintings int64          `json:"stored_paintings"`
	OrdersPerStatus map[string]int `json:"orders_per_status"`
	TotalRevenue    int64          `json:"total_revenue"`
	RecentRevenue   int64          `json:"recent_revenue"`
	InquiriesByKind map[string]int `json:"inquiries_by_kind"`
	PendingNotices  int            `json:"pending_notices"`
}

// GET /admin/dashboard
func (h *Handler) Dashboard(c *gin.Context) {
	db := h.db.WithContext(c.Request.Context())
	stats := AdminStats{
		Catalog:         h.catalog.Status(),
		OrdersPerStatus: map[string]int{},
		InquiriesByKind: map[string]int{},
	}

	// differs from Catalog.Remote until the next refresh after an outside write
	n, err := h.rows.Count(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count paintings"})
		return
	}
	stats.StoredPaintings = n

	type groupCount struct {
		Name  string
		Count int
	}

	var orderCounts []groupCount
	if err := db.Model(&orders.Order{}).
		Select("status AS name, COUNT(id) AS count").
		Group("status").
		Scan(&orderCounts).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load order stats"})
		return
	}
	for _, oc := range orderCounts {
		stats.OrdersPerStatus[oc.Name] = oc.Count
	}

	paid := db.Model(&orders.Order{}).Where("status = ?", orders.StatusPaid)
	if err := paid.Select("COALESCE(SUM(amount), 0)").Scan(&stats.TotalRevenue).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load revenue"})
		return
	}
	thirtyDaysAgo := h.now().AddDate(0, 0, -30)
	if err := db.Model(&orders.Order{}).
		Where("status = ? AND created_at >= ?", orders.StatusPaid, thirtyDaysAgo).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&stats.RecentRevenue).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load revenue"})
		return
	}

	var inquiryCounts []groupCount
	if err := db.Model(&inquiries.Inquiry{}).
		Select("kind AS name, COUNT(id) AS count").
		Group("kind").
		Scan(&inquiryCounts).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load inquiry stats"})
		return
	}
	for _, ic := range inquiryCounts {
		stats.InquiriesByKind[ic.Name] = ic.Count
	}

	var pending int64
	if err := db.Model(&inquiries.Inquiry{}).Where("notified = ?", false).Count(&pending).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count pending notices"})
		return
	}
	stats.PendingNotices = int(pending)

	c.JSON(http.StatusOK, stats)
}

// GET /admin/orders?status=paid
func (h *Handler) ListOrders(c *gin.Context) {
	q := h.db.WithContext(c.Request.Context()).Order("created_at DESC")
	if status := c.Query("status"); status != "" {
		q = q.Where("status = ?", status)
	}

	var list []orders.Order
	if err := q.Find(&list).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load orders"})
		return
	}

	result := make([]AdminOrder, 0, len(list))
	for _, o := range list {
		result = append(result, AdminOrder{
			ID:              o.ID,
			PaymentIntentID: o.PaymentIntentID,
			Subtotal:        o.Subtotal,
			Amount:          o.Amount,
			Currency:        o.Currency,
			Status:          o.Status,
			CreatedAt:       o.CreatedAt.Format("2006-01-02 15:04"),
		})
	}
	c.JSON(http.StatusOK, result)
}

// GET /admin/orders/:id includes the purchased items.
func (h *Handler) GetOrder(c *gin.Context) {
	var order orders.Order
	if err := h.db.WithContext(c.Request.Context()).First(&order, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}
	c.JSON(http.StatusOK, order)
}

// GET /admin/inquiries?kind=purchase
func (h *Handler) ListInquiries(c *gin.Context) {
	q := h.db.WithContext(c.Request.Context()).Order("created_at DESC")
	if kind := c.Query("kind"); kind != "" {
		q = q.Where("kind = ?", kind)
	}

	list := []inquiries.Inquiry{}
	if err := q.Find(&list).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load inquiries"})
		return
	}
	c.JSON(http.StatusOK, list)
}
