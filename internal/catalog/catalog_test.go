package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omkaralabs/divinestore/internal/domain"
)

func TestCatalogList(t *testing.T) {
	svc := NewDefaultService()
	ctx := context.Background()

	t.Run("no filter returns the full catalog in order", func(t *testing.T) {
		products, err := svc.List(ctx, domain.ProductFilter{})
		require.NoError(t, err)

		require.Len(t, products, 10)
		assert.Equal(t, "1", products[0].ID)
		assert.Equal(t, "10", products[9].ID)
	})

	t.Run("all category matches everything", func(t *testing.T) {
		products, err := svc.List(ctx, domain.ProductFilter{Category: "all"})
		require.NoError(t, err)

		assert.Len(t, products, 10)
	})

	t.Run("category filter", func(t *testing.T) {
		products, err := svc.List(ctx, domain.ProductFilter{Category: "malas"})
		require.NoError(t, err)

		require.Len(t, products, 2)
		for _, p := range products {
			assert.Equal(t, "malas", p.Category)
		}
	})

	t.Run("query matches name case-insensitively", func(t *testing.T) {
		products, err := svc.List(ctx, domain.ProductFilter{Query: "GANESHA"})
		require.NoError(t, err)

		require.Len(t, products, 1)
		assert.Equal(t, "Brass Ganesha Idol", products[0].Name)
	})

	t.Run("query matches description", func(t *testing.T) {
		products, err := svc.List(ctx, domain.ProductFilter{Query: "flute"})
		require.NoError(t, err)

		require.Len(t, products, 1)
		assert.Equal(t, "8", products[0].ID)
	})

	t.Run("category and query combine", func(t *testing.T) {
		products, err := svc.List(ctx, domain.ProductFilter{Category: "books", Query: "gita"})
		require.NoError(t, err)

		require.Len(t, products, 1)
		assert.Equal(t, "5", products[0].ID)
	})

	t.Run("no matches returns an empty slice", func(t *testing.T) {
		products, err := svc.List(ctx, domain.ProductFilter{Query: "nonexistent"})
		require.NoError(t, err)

		assert.NotNil(t, products)
		assert.Empty(t, products)
	})
}

func TestCatalogLookup(t *testing.T) {
	svc := NewDefaultService()
	ctx := context.Background()

	t.Run("known id", func(t *testing.T) {
		p, err := svc.Lookup(ctx, "7")
		require.NoError(t, err)

		assert.Equal(t, "Complete Pooja Thali Set", p.Name)
		assert.False(t, p.InStock)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := svc.Lookup(ctx, "999")
		require.ErrorIs(t, err, domain.ErrProductNotFound)
	})
}

func TestCatalogCategories(t *testing.T) {
	svc := NewDefaultService()

	categories, err := svc.Categories(context.Background())
	require.NoError(t, err)

	require.Len(t, categories, 6)
	assert.Equal(t, "all", categories[0].ID)
}

func TestCatalogDeduplicatesIDs(t *testing.T) {
	svc := NewService([]domain.Product{
		{ID: "1", Name: "First", InStock: true},
		{ID: "1", Name: "Duplicate", InStock: true},
		{ID: "2", Name: "Second", InStock: true},
	}, nil)

	products, err := svc.List(context.Background(), domain.ProductFilter{})
	require.NoError(t, err)

	require.Len(t, products, 2)
	assert.Equal(t, "First", products[0].Name)

	p, err := svc.Lookup(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, "First", p.Name)
}
