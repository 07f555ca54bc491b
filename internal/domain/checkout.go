package domain

import (
	"context"

	"github.com/omkaralabs/divinestore/internal/order"
)

// Checkout-specific errors.
var (
	ErrCartEmpty            = &Error{Code: EINVALID, Message: "Cart is empty"}
	ErrCheckoutNotStarted   = &Error{Code: EINVALID, Message: "Checkout has not been started"}
	ErrCheckoutComplete     = &Error{Code: ECONFLICT, Message: "Checkout is already complete"}
	ErrSubmissionInFlight   = &Error{Code: ECONFLICT, Message: "An order submission is already in flight"}
	ErrInvalidPaymentMethod = &Error{Code: EINVALID, Message: "Invalid payment method"}
	ErrWrongStep            = &Error{Code: EINVALID, Message: "Operation not valid for current checkout step"}
)

// CheckoutStep identifies one of the three sequential data-collection steps.
type CheckoutStep string

const (
	StepContact  CheckoutStep = "contact"
	StepShipping CheckoutStep = "shipping"
	StepPayment  CheckoutStep = "payment"
)

// PaymentMethod is the selected payment option. The default is cash on delivery.
type PaymentMethod string

const (
	PaymentCashOnDelivery PaymentMethod = "cod"
	PaymentCard           PaymentMethod = "card"
)

// Valid reports whether m is a known payment method.
func (m PaymentMethod) Valid() bool {
	return m == PaymentCashOnDelivery || m == PaymentCard
}

// ContactInfo holds the contact step fields. All are required to continue.
type ContactInfo struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required"`
	Phone string `json:"phone" validate:"required"`
}

// ShippingInfo holds the shipping step fields. All are required to continue.
type ShippingInfo struct {
	Address string `json:"address" validate:"required"`
	City    string `json:"city" validate:"required"`
	Pincode string `json:"pincode" validate:"required"`
}

// CheckoutForm aggregates everything entered across the three steps.
// Backward navigation never clears previously entered fields.
type CheckoutForm struct {
	Contact       ContactInfo   `json:"contact"`
	Shipping      ShippingInfo  `json:"shipping"`
	PaymentMethod PaymentMethod `json:"paymentMethod"`
}

// CheckoutState is a snapshot of the checkout flow.
type CheckoutState struct {
	Started       bool                `json:"started"`
	Step          CheckoutStep        `json:"step"`
	Form          CheckoutForm        `json:"form"`
	IsProcessing  bool                `json:"isProcessing"`
	OrderComplete bool                `json:"orderComplete"`
	Confirmation  *order.Confirmation `json:"confirmation,omitempty"`
}

// CheckoutService drives the user through three sequential data-collection
// steps, then performs a single simulated order submission.
//
// Transitions are forward-only on the Submit* operations, each gated by
// presence validation; Back moves one step without clearing data. PlaceOrder
// is terminal: on success the cart is cleared and the session is complete
// until Begin starts a fresh one.
type CheckoutService interface {
	// Begin starts a fresh checkout session at the contact step. It fails
	// with ErrCartEmpty when the cart has no items and with
	// ErrSubmissionInFlight while a submission is processing.
	Begin() (*CheckoutState, error)

	// SubmitContact validates and stores the contact fields, advancing to the
	// shipping step. Validation failures return a *ValidationError and leave
	// the step unchanged.
	SubmitContact(info ContactInfo) (*CheckoutState, error)

	// SubmitShipping validates and stores the shipping fields, advancing to
	// the payment step.
	SubmitShipping(info ShippingInfo) (*CheckoutState, error)

	// SelectPaymentMethod records the payment method. Only valid at the
	// payment step.
	SelectPaymentMethod(method PaymentMethod) (*CheckoutState, error)

	// Back moves one step backward (shipping->contact, payment->shipping)
	// without clearing entered data. Invalid at the contact step.
	Back() (*CheckoutState, error)

	// PlaceOrder submits the order through the sink. It blocks for the
	// simulated processing delay, then clears the cart and marks the session
	// complete. Repeated calls while processing fail with
	// ErrSubmissionInFlight.
	PlaceOrder(ctx context.Context) (*order.Confirmation, error)

	// State returns a snapshot of the current checkout state.
	State() CheckoutState
}
