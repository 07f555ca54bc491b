package domain

// =============================================================================
// CART DOMAIN ERRORS
// =============================================================================

var (
	ErrOutOfStock = &Error{Code: EINVALID, Message: "Product is out of stock"}
)

// CartService maintains the authoritative cart state and guarantees that the
// derived totals are always consistent with the line items.
//
// The cart is a single process-wide instance created empty at startup. It is
// owned by whoever constructs it and passed explicitly to consumers; there is
// no package-level singleton.
type CartService interface {
	// Add puts one unit of the product in the cart. If a line item for the
	// product already exists its quantity is incremented, otherwise a new line
	// item is appended. Out-of-stock products are rejected with ErrOutOfStock.
	Add(product Product) (*CartSummary, error)

	// UpdateQuantity sets the quantity of a line item to an absolute value.
	// A quantity of zero or less removes the line item. Unknown product ids
	// are a no-op.
	UpdateQuantity(productID string, quantity int) (*CartSummary, error)

	// Remove deletes the line item for the product id. Removing an id that is
	// not in the cart is a no-op, so removal is idempotent.
	Remove(productID string) (*CartSummary, error)

	// Clear empties the cart. Called once, after a successful checkout.
	Clear()

	// SetOpen toggles the drawer visibility flag. It never touches items or totals.
	SetOpen(open bool)

	// Summary returns a snapshot of the current cart state.
	Summary() *CartSummary

	// Subscribe registers fn to be called with a snapshot after every
	// mutation. The returned func unregisters it.
	Subscribe(fn func(CartSummary)) (unsubscribe func())
}

// CartItem is a cart line item derived from a product plus a quantity.
// Quantity is always >= 1; a decrement to zero removes the item instead.
type CartItem struct {
	ProductID string `json:"productId"`
	Name      string `json:"name"`
	Price     int64  `json:"price"`
	Image     string `json:"image"`
	Quantity  int    `json:"quantity"`
	LineTotal int64  `json:"lineTotal"`
}

// CartSummary is a snapshot of cart state with derived totals.
// TotalItems is the sum of quantities; TotalPrice is the sum of price*quantity.
type CartSummary struct {
	Items      []CartItem `json:"items"`
	TotalItems int        `json:"totalItems"`
	TotalPrice int64      `json:"totalPrice"`
	Open       bool       `json:"isOpen"`
}
