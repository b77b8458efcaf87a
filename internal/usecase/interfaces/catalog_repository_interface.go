package interfaces

import (
	"bemu_storefront/internal/domain/entities"
	"context"
)

// ICatalogRepository abstracts the product catalog (Airtable "Products" and "Categories").
//
// Lookups that find nothing return a zero value and a nil error.
type ICatalogRepository interface {
	ListProducts(ctx context.Context, filter entities.ProductFilter) ([]entities.Product, error)
	GetProductBySlug(ctx context.Context, slug string) (entities.Product, error)
	GetProductByID(ctx context.Context, id string) (entities.Product, error)
	ListCategories(ctx context.Context) ([]entities.Category, error)
	GetCategoryBySlug(ctx context.Context, slug string) (entities.Category, error)
	ListOrganiziroProducts(ctx context.Context) ([]entities.GridBase, error)
}
