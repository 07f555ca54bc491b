package domain

import "context"

var (
	ErrProductNotFound = &Error{Code: ENOTFOUND, Message: "Product not found"}
)

// Product is an immutable catalog entry. Prices are whole rupees.
type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       int64   `json:"price"`
	Image       string  `json:"image"`
	Rating      float64 `json:"rating"`
	Category    string  `json:"category"`
	InStock     bool    `json:"inStock"`
}

// Category groups products for storefront filtering.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"`
}

// ProductFilter narrows a catalog listing. Zero value matches everything.
type ProductFilter struct {
	// Category limits results to a single category id. "all" or "" match every category.
	Category string

	// Query is a case-insensitive substring match against name and description.
	Query string
}

// CatalogService supplies product identity, price, and stock status.
// The catalog is static; there are no mutation operations.
type CatalogService interface {
	// List returns products matching the filter, in catalog order.
	List(ctx context.Context, filter ProductFilter) ([]Product, error)

	// Lookup returns the product with the given id, or ErrProductNotFound.
	Lookup(ctx context.Context, id string) (*Product, error)

	// Categories returns the storefront category list, in display order.
	Categories(ctx context.Context) ([]Category, error)
}
