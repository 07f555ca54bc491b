package storefront

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/omkaralabs/divinestore/internal/domain"
	"github.com/omkaralabs/divinestore/internal/telemetry"
)

// CheckoutHandler drives the three-step checkout flow
type CheckoutHandler struct {
	checkout domain.CheckoutService
	cart     domain.CartService
	metrics  *telemetry.BusinessMetrics
	logger   *slog.Logger
}

// NewCheckoutHandler creates a new checkout handler
func NewCheckoutHandler(checkout domain.CheckoutService, cart domain.CartService, metrics *telemetry.BusinessMetrics, logger *slog.Logger) *CheckoutHandler {
	return &CheckoutHandler{
		checkout: checkout,
		cart:     cart,
		metrics:  metrics,
		logger:   logger,
	}
}

// State handles GET /api/checkout
func (h *CheckoutHandler) State(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.checkout.State())
}

// Begin handles POST /api/checkout
// An empty cart is rejected so the client can redirect to its empty-cart view.
func (h *CheckoutHandler) Begin(w http.ResponseWriter, r *http.Request) {
	state, err := h.checkout.Begin()
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	h.metrics.CheckoutStarted.Inc()

	writeJSON(w, http.StatusOK, state)
}

// Contact handles POST /api/checkout/contact
func (h *CheckoutHandler) Contact(w http.ResponseWriter, r *http.Request) {
	var info domain.ContactInfo
	if err := json.NewDecoder(r.Body).Decode(&info); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	state, err := h.checkout.SubmitContact(info)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	h.metrics.CheckoutStep.WithLabelValues(string(domain.StepContact)).Inc()

	writeJSON(w, http.StatusOK, state)
}

// Shipping handles POST /api/checkout/shipping
func (h *CheckoutHandler) Shipping(w http.ResponseWriter, r *http.Request) {
	var info domain.ShippingInfo
	if err := json.NewDecoder(r.Body).Decode(&info); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	state, err := h.checkout.SubmitShipping(info)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	h.metrics.CheckoutStep.WithLabelValues(string(domain.StepShipping)).Inc()

	writeJSON(w, http.StatusOK, state)
}

// PaymentMethod handles POST /api/checkout/payment-method
func (h *CheckoutHandler) PaymentMethod(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Method domain.PaymentMethod `json:"method"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	state, err := h.checkout.SelectPaymentMethod(req.Method)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, state)
}

// Back handles POST /api/checkout/back
func (h *CheckoutHandler) Back(w http.ResponseWriter, r *http.Request) {
	state, err := h.checkout.Back()
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, state)
}

// Submit handles POST /api/checkout/submit
// Blocks for the simulated processing delay, then returns the confirmation.
func (h *CheckoutHandler) Submit(w http.ResponseWriter, r *http.Request) {
	state := h.checkout.State()
	itemCount := h.cart.Summary().TotalItems

	conf, err := h.checkout.PlaceOrder(r.Context())
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	h.metrics.CheckoutStep.WithLabelValues(string(domain.StepPayment)).Inc()
	h.metrics.CheckoutCompleted.Inc()
	h.metrics.OrdersPlaced.WithLabelValues(string(state.Form.PaymentMethod)).Inc()
	h.metrics.OrderValue.Observe(float64(conf.TotalPrice))
	h.metrics.OrderItemCount.Observe(float64(itemCount))

	h.logger.Info("order placed",
		"order_number", conf.OrderNumber,
		"total_price", conf.TotalPrice,
		"payment_method", state.Form.PaymentMethod,
	)

	writeJSON(w, http.StatusOK, conf)
}
