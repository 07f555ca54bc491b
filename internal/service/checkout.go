package service

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/omkaralabs/divinestore/internal/domain"
	"github.com/omkaralabs/divinestore/internal/order"
)

// checkoutService implements domain.CheckoutService.
//
// The flow is a small state machine over one mutex-guarded session:
// contact -> shipping -> payment -> (processing) -> complete. The sink call in
// PlaceOrder runs outside the lock so State() stays responsive during the
// simulated processing delay; the processing flag keeps every other operation
// out until the submission resolves.
type checkoutService struct {
	cart     domain.CartService
	sink     order.Sink
	validate *validator.Validate

	mu           sync.Mutex
	started      bool
	step         domain.CheckoutStep
	form         domain.CheckoutForm
	processing   bool
	complete     bool
	confirmation *order.Confirmation
}

// NewCheckoutService creates a checkout flow bound to the cart store and an
// order sink.
func NewCheckoutService(cart domain.CartService, sink order.Sink) domain.CheckoutService {
	v := validator.New()

	// Report field errors under their json names so they line up with the
	// request payload.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &checkoutService{
		cart:     cart,
		sink:     sink,
		validate: v,
	}
}

// Begin starts a fresh checkout session at the contact step.
func (s *checkoutService) Begin() (*domain.CheckoutState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.processing {
		return nil, domain.ErrSubmissionInFlight
	}
	if s.cart.Summary().TotalItems == 0 {
		return nil, domain.ErrCartEmpty
	}

	s.started = true
	s.step = domain.StepContact
	s.form = domain.CheckoutForm{PaymentMethod: domain.PaymentCashOnDelivery}
	s.complete = false
	s.confirmation = nil

	state := s.stateLocked()
	return &state, nil
}

// SubmitContact validates and stores the contact fields, advancing to shipping.
func (s *checkoutService) SubmitContact(info domain.ContactInfo) (*domain.CheckoutState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureAtLocked(domain.StepContact); err != nil {
		return nil, err
	}
	if err := s.validateStruct("checkout.contact", info); err != nil {
		return nil, err
	}

	s.form.Contact = info
	s.step = domain.StepShipping

	state := s.stateLocked()
	return &state, nil
}

// SubmitShipping validates and stores the shipping fields, advancing to payment.
func (s *checkoutService) SubmitShipping(info domain.ShippingInfo) (*domain.CheckoutState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureAtLocked(domain.StepShipping); err != nil {
		return nil, err
	}
	if err := s.validateStruct("checkout.shipping", info); err != nil {
		return nil, err
	}

	s.form.Shipping = info
	s.step = domain.StepPayment

	state := s.stateLocked()
	return &state, nil
}

// SelectPaymentMethod records the payment method at the payment step.
func (s *checkoutService) SelectPaymentMethod(method domain.PaymentMethod) (*domain.CheckoutState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureAtLocked(domain.StepPayment); err != nil {
		return nil, err
	}
	if !method.Valid() {
		return nil, domain.ErrInvalidPaymentMethod
	}

	s.form.PaymentMethod = method

	state := s.stateLocked()
	return &state, nil
}

// Back moves one step backward without clearing entered data.
func (s *checkoutService) Back() (*domain.CheckoutState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureActiveLocked(); err != nil {
		return nil, err
	}

	switch s.step {
	case domain.StepShipping:
		s.step = domain.StepContact
	case domain.StepPayment:
		s.step = domain.StepShipping
	default:
		return nil, domain.ErrWrongStep
	}

	state := s.stateLocked()
	return &state, nil
}

// PlaceOrder submits the order through the sink, blocking for the processing
// delay. On success the cart is cleared and the session is complete.
func (s *checkoutService) PlaceOrder(ctx context.Context) (*order.Confirmation, error) {
	s.mu.Lock()
	if err := s.ensureAtLocked(domain.StepPayment); err != nil {
		s.mu.Unlock()
		return nil, err
	}

	summary := s.cart.Summary()
	if summary.TotalItems == 0 {
		s.mu.Unlock()
		return nil, domain.ErrCartEmpty
	}

	sub := buildSubmission(summary, s.form)
	s.processing = true
	s.mu.Unlock()

	conf, err := s.sink.Submit(ctx, sub)

	s.mu.Lock()
	s.processing = false
	if err != nil {
		s.mu.Unlock()
		// Cart contents are untouched; the user can correct and retry from
		// the payment step.
		return nil, domain.Internal(err, "checkout.submit", "order submission failed")
	}
	s.complete = true
	s.confirmation = conf
	s.mu.Unlock()

	// Clearing outside the lock keeps cart subscribers free to read checkout
	// state from their callbacks.
	s.cart.Clear()

	return conf, nil
}

// State returns a snapshot of the current checkout state.
func (s *checkoutService) State() domain.CheckoutState {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.stateLocked()
}

// ensureActiveLocked rejects operations on a session that is missing,
// processing, or complete. Callers must hold s.mu.
func (s *checkoutService) ensureActiveLocked() error {
	if s.processing {
		return domain.ErrSubmissionInFlight
	}
	if !s.started {
		return domain.ErrCheckoutNotStarted
	}
	if s.complete {
		return domain.ErrCheckoutComplete
	}
	return nil
}

// ensureAtLocked additionally requires the session to sit at the given step.
func (s *checkoutService) ensureAtLocked(step domain.CheckoutStep) error {
	if err := s.ensureActiveLocked(); err != nil {
		return err
	}
	if s.step != step {
		return domain.ErrWrongStep
	}
	return nil
}

func (s *checkoutService) stateLocked() domain.CheckoutState {
	return domain.CheckoutState{
		Started:       s.started,
		Step:          s.step,
		Form:          s.form,
		IsProcessing:  s.processing,
		OrderComplete: s.complete,
		Confirmation:  s.confirmation,
	}
}

// validateStruct runs presence validation and converts failures into a
// domain.ValidationError keyed by json field name.
func (s *checkoutService) validateStruct(op string, v interface{}) error {
	err := s.validate.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return domain.Internal(err, op, "validation failed")
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field()] = fieldMessage(fe)
	}

	return &domain.ValidationError{Op: op, Fields: fields}
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}

// buildSubmission captures the cart contents and form data for the sink.
func buildSubmission(summary *domain.CartSummary, form domain.CheckoutForm) order.Submission {
	items := make([]order.Item, len(summary.Items))
	for i, item := range summary.Items {
		items[i] = order.Item{
			ProductID: item.ProductID,
			Name:      item.Name,
			Price:     item.Price,
			Quantity:  item.Quantity,
			LineTotal: item.LineTotal,
		}
	}

	return order.Submission{
		Items:      items,
		TotalPrice: summary.TotalPrice,
		Contact: order.Contact{
			Name:  form.Contact.Name,
			Email: form.Contact.Email,
			Phone: form.Contact.Phone,
		},
		Shipping: order.ShippingAddress{
			Address: form.Shipping.Address,
			City:    form.Shipping.City,
			Pincode: form.Shipping.Pincode,
		},
		PaymentMethod: string(form.PaymentMethod),
	}
}
