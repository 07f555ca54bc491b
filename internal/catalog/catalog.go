// Package catalog supplies the static product catalog backing the store.
// The catalog is read-only and lives entirely in memory.
package catalog

import (
	"context"
	"strings"

	"github.com/omkaralabs/divinestore/internal/domain"
)

type catalogService struct {
	products   []domain.Product
	categories []domain.Category
	byID       map[string]int
}

// NewService creates a catalog over the given products and categories.
// Products keep their given order; later duplicates of an id are ignored.
func NewService(products []domain.Product, categories []domain.Category) domain.CatalogService {
	byID := make(map[string]int, len(products))
	kept := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if _, ok := byID[p.ID]; ok {
			continue
		}
		byID[p.ID] = len(kept)
		kept = append(kept, p)
	}

	return &catalogService{
		products:   kept,
		categories: categories,
		byID:       byID,
	}
}

// NewDefaultService creates a catalog seeded with the stock storefront data.
func NewDefaultService() domain.CatalogService {
	return NewService(defaultProducts, defaultCategories)
}

// List returns products matching the filter, in catalog order.
func (s *catalogService) List(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error) {
	query := strings.ToLower(strings.TrimSpace(filter.Query))

	result := make([]domain.Product, 0, len(s.products))
	for _, p := range s.products {
		if !matchesCategory(p, filter.Category) {
			continue
		}
		if query != "" && !matchesQuery(p, query) {
			continue
		}
		result = append(result, p)
	}
	return result, nil
}

// Lookup returns the product with the given id, or ErrProductNotFound.
func (s *catalogService) Lookup(ctx context.Context, id string) (*domain.Product, error) {
	i, ok := s.byID[id]
	if !ok {
		return nil, domain.ErrProductNotFound
	}

	p := s.products[i]
	return &p, nil
}

// Categories returns the storefront category list, in display order.
func (s *catalogService) Categories(ctx context.Context) ([]domain.Category, error) {
	categories := make([]domain.Category, len(s.categories))
	copy(categories, s.categories)
	return categories, nil
}

func matchesCategory(p domain.Product, category string) bool {
	return category == "" || category == "all" || p.Category == category
}

func matchesQuery(p domain.Product, query string) bool {
	return strings.Contains(strings.ToLower(p.Name), query) ||
		strings.Contains(strings.ToLower(p.Description), query)
}
