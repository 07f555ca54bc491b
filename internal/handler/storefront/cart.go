package storefront

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/omkaralabs/divinestore/internal/domain"
	"github.com/omkaralabs/divinestore/internal/telemetry"
)

// CartHandler handles all cart routes
type CartHandler struct {
	cart    domain.CartService
	catalog domain.CatalogService
	metrics *telemetry.BusinessMetrics
	logger  *slog.Logger
}

// NewCartHandler creates a new cart handler
func NewCartHandler(cart domain.CartService, catalog domain.CatalogService, metrics *telemetry.BusinessMetrics, logger *slog.Logger) *CartHandler {
	return &CartHandler{
		cart:    cart,
		catalog: catalog,
		metrics: metrics,
		logger:  logger,
	}
}

// View handles GET /api/cart
func (h *CartHandler) View(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.cart.Summary())
}

// Add handles POST /api/cart/items
func (h *CartHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ProductID string `json:"productId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}
	if req.ProductID == "" {
		writeBadRequest(w, "productId is required")
		return
	}

	product, err := h.catalog.Lookup(r.Context(), req.ProductID)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	summary, err := h.cart.Add(*product)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	h.metrics.ProductAddToCart.WithLabelValues(product.ID).Inc()
	h.metrics.CartUpdated.WithLabelValues("add").Inc()

	writeJSON(w, http.StatusOK, summary)
}

// Update handles PUT /api/cart/items/{id}
func (h *CartHandler) Update(w http.ResponseWriter, r *http.Request) {
	productID := r.PathValue("id")

	var req struct {
		Quantity *int `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Quantity == nil {
		writeBadRequest(w, "quantity is required")
		return
	}

	summary, err := h.cart.UpdateQuantity(productID, *req.Quantity)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	h.metrics.CartUpdated.WithLabelValues("update").Inc()

	writeJSON(w, http.StatusOK, summary)
}

// Remove handles DELETE /api/cart/items/{id}
func (h *CartHandler) Remove(w http.ResponseWriter, r *http.Request) {
	productID := r.PathValue("id")

	summary, err := h.cart.Remove(productID)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	h.metrics.CartUpdated.WithLabelValues("remove").Inc()

	writeJSON(w, http.StatusOK, summary)
}

// SetOpen handles POST /api/cart/open
func (h *CartHandler) SetOpen(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Open *bool `json:"open"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Open == nil {
		writeBadRequest(w, "open is required")
		return
	}

	h.cart.SetOpen(*req.Open)

	writeJSON(w, http.StatusOK, h.cart.Summary())
}
