package storefront

import (
	"log/slog"
	"net/http"

	"github.com/omkaralabs/divinestore/internal/domain"
	"github.com/omkaralabs/divinestore/internal/telemetry"
)

// ProductHandler serves the static product catalog
type ProductHandler struct {
	catalog domain.CatalogService
	metrics *telemetry.BusinessMetrics
	logger  *slog.Logger
}

// NewProductHandler creates a new product handler
func NewProductHandler(catalog domain.CatalogService, metrics *telemetry.BusinessMetrics, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{
		catalog: catalog,
		metrics: metrics,
		logger:  logger,
	}
}

// List handles GET /api/products?category=&q=
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := domain.ProductFilter{
		Category: r.URL.Query().Get("category"),
		Query:    r.URL.Query().Get("q"),
	}

	products, err := h.catalog.List(r.Context(), filter)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	h.metrics.ProductSearches.WithLabelValues(filterType(filter)).Inc()

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"products": products,
		"count":    len(products),
	})
}

// Detail handles GET /api/products/{id}
func (h *ProductHandler) Detail(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	product, err := h.catalog.Lookup(r.Context(), id)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	h.metrics.ProductViews.WithLabelValues(product.ID).Inc()

	writeJSON(w, http.StatusOK, product)
}

// Categories handles GET /api/categories
func (h *ProductHandler) Categories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.catalog.Categories(r.Context())
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"categories": categories,
	})
}

func filterType(filter domain.ProductFilter) string {
	hasCategory := filter.Category != "" && filter.Category != "all"
	hasQuery := filter.Query != ""

	switch {
	case hasCategory && hasQuery:
		return "both"
	case hasCategory:
		return "category"
	case hasQuery:
		return "query"
	default:
		return "none"
	}
}
