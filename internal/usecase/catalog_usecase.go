package usecase

import (
	"bemu_storefront/internal/domain/entities"
	"bemu_storefront/internal/usecase/interfaces"
	"bemu_storefront/pkg/logger"
	"context"
	"errors"
	"net/url"
	"strings"
)

const defaultProductLimit = 100

var (
	ErrProductNotFound  = errors.New("product not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrInvalidSlug      = errors.New("invalid slug")
)

// ICatalogUseCase exposes read access to products, categories and Organiziro bases.

type ICatalogUseCase interface {
	ListProducts(ctx context.Context, filter entities.ProductFilter) ([]entities.Product, error)
	GetProductBySlug(ctx context.Context, slug string) (entities.Product, error)
	GetProductByID(ctx context.Context, id string) (entities.Product, error)
	ListCategories(ctx context.Context) ([]entities.Category, error)
	GetCategoryBySlug(ctx context.Context, slug string) (entities.Category, error)
	ListOrganiziroProducts(ctx context.Context) (gridBases []entities.GridBase, boxes []entities.GridBase, err error)
}

type CatalogUseCase struct {
	repo interfaces.ICatalogRepository
}

var _ ICatalogUseCase = (*CatalogUseCase)(nil)

func NewCatalogUseCase(repo interfaces.ICatalogRepository) *CatalogUseCase {
	return &CatalogUseCase{repo: repo}
}

func (u *CatalogUseCase) ListProducts(ctx context.Context, filter entities.ProductFilter) ([]entities.Product, error) {
	if filter.Limit <= 0 || filter.Limit > defaultProductLimit {
		filter.Limit = defaultProductLimit
	}
	filter.CategorySlug = strings.TrimSpace(filter.CategorySlug)

	products, err := u.repo.ListProducts(ctx, filter)
	if err != nil {
		logger.Component(ctx, "catalog", "usecase").Error().Err(err).Str("category", filter.CategorySlug).Msg("list products failed")
		return nil, err
	}
	if products == nil {
		products = []entities.Product{}
	}
	return products, nil
}

func (u *CatalogUseCase) GetProductBySlug(ctx context.Context, slug string) (entities.Product, error) {
	slug, err := normalizeSlug(slug)
	if err != nil {
		return entities.Product{}, err
	}
	p, err := u.repo.GetProductBySlug(ctx, slug)
	if err != nil {
		return entities.Product{}, err
	}
	if p.ID == "" {
		return entities.Product{}, ErrProductNotFound
	}
	return p, nil
}

func (u *CatalogUseCase) GetProductByID(ctx context.Context, id string) (entities.Product, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Product{}, ErrProductNotFound
	}
	p, err := u.repo.GetProductByID(ctx, id)
	if err != nil {
		return entities.Product{}, err
	}
	if p.ID == "" {
		return entities.Product{}, ErrProductNotFound
	}
	return p, nil
}

func (u *CatalogUseCase) ListCategories(ctx context.Context) ([]entities.Category, error) {
	cats, err := u.repo.ListCategories(ctx)
	if err != nil {
		return nil, err
	}
	if cats == nil {
		cats = []entities.Category{}
	}
	return cats, nil
}

func (u *CatalogUseCase) GetCategoryBySlug(ctx context.Context, slug string) (entities.Category, error) {
	slug, err := normalizeSlug(slug)
	if err != nil {
		return entities.Category{}, err
	}
	c, err := u.repo.GetCategoryBySlug(ctx, slug)
	if err != nil {
		return entities.Category{}, err
	}
	if c.ID == "" {
		return entities.Category{}, ErrCategoryNotFound
	}
	return c, nil
}

// ListOrganiziroProducts splits Organiziro products into tileable grid bases and boxes.
func (u *CatalogUseCase) ListOrganiziroProducts(ctx context.Context) ([]entities.GridBase, []entities.GridBase, error) {
	all, err := u.repo.ListOrganiziroProducts(ctx)
	if err != nil {
		return nil, nil, err
	}
	grids := []entities.GridBase{}
	boxes := []entities.GridBase{}
	for _, g := range all {
		switch g.Kind {
		case entities.OrganiziroKindGrid:
			grids = append(grids, g)
		case entities.OrganiziroKindBox:
			boxes = append(boxes, g)
		}
	}
	return grids, boxes, nil
}

// normalizeSlug accepts percent-encoded slugs as they arrive from links.
func normalizeSlug(slug string) (string, error) {
	slug = strings.TrimSpace(slug)
	if decoded, err := url.PathUnescape(slug); err == nil {
		slug = decoded
	}
	if slug == "" {
		return "", ErrInvalidSlug
	}
	return slug, nil
}
