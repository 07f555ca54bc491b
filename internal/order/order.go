package order

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrNoItems is returned when a submission carries no line items.
	ErrNoItems = errors.New("order submission requires at least one item")
)

// Sink accepts a finished checkout and turns it into a placed order.
// Implementations can integrate with a real order backend; the MVP ships with
// a simulated sink that succeeds after a fixed processing delay.
type Sink interface {
	// Submit places the order. The context is the cancellation hook reserved
	// for a future real backend; the simulated sink honors it while waiting.
	Submit(ctx context.Context, sub Submission) (*Confirmation, error)
}

// Item is one order line, captured from the cart at submission time.
type Item struct {
	ProductID string
	Name      string
	Price     int64
	Quantity  int
	LineTotal int64
}

// Contact holds the buyer's contact details.
type Contact struct {
	Name  string
	Email string
	Phone string
}

// ShippingAddress holds the delivery destination.
type ShippingAddress struct {
	Address string
	City    string
	Pincode string
}

// Submission is everything the checkout flow hands to the sink.
type Submission struct {
	Items         []Item
	TotalPrice    int64
	Contact       Contact
	Shipping      ShippingAddress
	PaymentMethod string
}

// Confirmation is returned by the sink on success.
type Confirmation struct {
	OrderID     string    `json:"orderId"`
	OrderNumber string    `json:"orderNumber"`
	TotalPrice  int64     `json:"totalPrice"`
	PlacedAt    time.Time `json:"placedAt"`
}
