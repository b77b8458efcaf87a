package airtable

import (
	"context"
	"fmt"
	"net/url"
	"sort"
	"strings"

	"bemu_storefront/internal/domain/entities"
	at "bemu_storefront/internal/infrastructure/airtable"
	"bemu_storefront/internal/usecase/interfaces"
)

const (
	productsTable   = "Products"
	categoriesTable = "Categories"

	defaultProductLimit = 100
)

// recordStore is the subset of the Airtable client the repositories need.
type recordStore interface {
	List(ctx context.Context, table string, q at.Query) ([]at.Record, error)
	Create(ctx context.Context, table string, fields map[string]any) (at.Record, error)
	Update(ctx context.Context, table, id string, fields map[string]any) error
}

var _ recordStore = (*at.Client)(nil)

// CatalogRepository reads products and categories from Airtable.
//
// Organiziro products are rows of the Products table with a non-empty "Organiziro"
// single select ("Grid" or "Box").
type CatalogRepository struct {
	store recordStore
}

var _ interfaces.ICatalogRepository = (*CatalogRepository)(nil)

func NewCatalogRepository(store recordStore) *CatalogRepository {
	return &CatalogRepository{store: store}
}

func (r *CatalogRepository) ListProducts(ctx context.Context, filter entities.ProductFilter) ([]entities.Product, error) {
	var formulas []string
	if filter.Featured {
		formulas = append(formulas, "{Featured} = TRUE()")
	}
	if filter.CategorySlug != "" {
		cat, err := r.GetCategoryBySlug(ctx, filter.CategorySlug)
		if err != nil {
			return nil, err
		}
		if cat.ID != "" {
			formulas = append(formulas, fmt.Sprintf("FIND('%s', ARRAYJOIN({Category})) > 0", escapeFormula(cat.Name)))
		}
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = defaultProductLimit
	}
	q := at.Query{
		MaxRecords: limit,
		Sort:       []at.Sort{{Field: "Created", Direction: "desc"}},
	}
	if len(formulas) > 0 {
		q.Formula = "AND(" + strings.Join(formulas, ", ") + ")"
	}

	records, err := r.store.List(ctx, productsTable, q)
	if err != nil {
		return nil, err
	}
	products := make([]entities.Product, 0, len(records))
	for _, rec := range records {
		products = append(products, toProduct(rec))
	}
	sortNewestFirst(products)
	if len(products) > limit {
		products = products[:limit]
	}
	return products, nil
}

func (r *CatalogRepository) GetProductBySlug(ctx context.Context, slug string) (entities.Product, error) {
	rec, ok, err := r.first(ctx, productsTable, bySlug(slug))
	if err != nil || !ok {
		return entities.Product{}, err
	}
	return toProduct(rec), nil
}

func (r *CatalogRepository) GetProductByID(ctx context.Context, id string) (entities.Product, error) {
	rec, ok, err := r.first(ctx, productsTable, fmt.Sprintf("RECORD_ID() = '%s'", escapeFormula(id)))
	if err != nil || !ok {
		return entities.Product{}, err
	}
	return toProduct(rec), nil
}

func (r *CatalogRepository) ListCategories(ctx context.Context) ([]entities.Category, error) {
	records, err := r.store.List(ctx, categoriesTable, at.Query{
		Sort: []at.Sort{{Field: "Order", Direction: "asc"}},
	})
	if err != nil {
		return nil, err
	}
	categories := make([]entities.Category, 0, len(records))
	for _, rec := range records {
		categories = append(categories, toCategory(rec))
	}
	sort.SliceStable(categories, func(i, j int) bool { return categories[i].Order < categories[j].Order })
	return categories, nil
}

func (r *CatalogRepository) GetCategoryBySlug(ctx context.Context, slug string) (entities.Category, error) {
	rec, ok, err := r.first(ctx, categoriesTable, bySlug(slug))
	if err != nil || !ok {
		return entities.Category{}, err
	}
	return toCategory(rec), nil
}

func (r *CatalogRepository) ListOrganiziroProducts(ctx context.Context) ([]entities.GridBase, error) {
	records, err := r.store.List(ctx, productsTable, at.Query{
		Formula: "NOT({Organiziro} = '')",
		Sort:    []at.Sort{{Field: "Name", Direction: "asc"}},
	})
	if err != nil {
		return nil, err
	}
	out := make([]entities.GridBase, 0, len(records))
	for _, rec := range records {
		if g, ok := toGridBase(rec); ok {
			out = append(out, g)
		}
	}
	return out, nil
}

func (r *CatalogRepository) first(ctx context.Context, table, formula string) (at.Record, bool, error) {
	records, err := r.store.List(ctx, table, at.Query{Formula: formula, MaxRecords: 1})
	if err != nil {
		return at.Record{}, false, err
	}
	if len(records) == 0 {
		return at.Record{}, false, nil
	}
	return records[0], true, nil
}

func bySlug(slug string) string {
	if decoded, err := url.PathUnescape(slug); err == nil {
		slug = decoded
	}
	return fmt.Sprintf("{Slug} = '%s'", escapeFormula(slug))
}

func sortNewestFirst(products []entities.Product) {
	sort.SliceStable(products, func(i, j int) bool {
		return products[i].CreatedAt.After(products[j].CreatedAt)
	})
}

func toProduct(rec at.Record) entities.Product {
	f := rec.Fields
	p := entities.Product{
		ID:               rec.ID,
		Name:             fieldString(f, "Name"),
		Slug:             fieldString(f, "Slug"),
		Description:      fieldString(f, "Description"),
		ShortDescription: fieldString(f, "Short Description"),
		Price:            fieldFloat(f, "Price"),
		CompareAtPrice:   fieldFloat(f, "Compare At Price"),
		Images:           fieldImages(f, "Images"),
		CategoryName:     fieldString(f, "Category Name"),
		InStock:          fieldBool(f, "In Stock", true),
		StockQuantity:    fieldInt(f, "Stock Quantity"),
		Specifications:   fieldString(f, "Specifications"),
		Featured:         fieldBool(f, "Featured", false),
		CreatedAt:        fieldTime(f, "Created", rec.CreatedTime),
		Colors:           fieldVariants(f, "Color"),
		Sizes:            fieldVariants(f, "Size"),
	}
	if links := fieldLinks(f, "Category"); len(links) > 0 {
		p.CategoryID = links[0]
	}
	return p
}

func toCategory(rec at.Record) entities.Category {
	f := rec.Fields
	c := entities.Category{
		ID:          rec.ID,
		Name:        fieldString(f, "Name"),
		Slug:        fieldString(f, "Slug"),
		Description: fieldString(f, "Description"),
		Order:       fieldInt(f, "Order"),
	}
	if imgs := fieldImages(f, "Image"); len(imgs) > 0 {
		c.Image = &entities.CategoryImage{ID: imgs[0].ID, URL: imgs[0].URL, Filename: imgs[0].Filename}
	}
	return c
}

func toGridBase(rec at.Record) (entities.GridBase, bool) {
	f := rec.Fields
	kind := entities.OrganiziroKind(strings.ToLower(strings.TrimSpace(fieldString(f, "Organiziro"))))
	if kind != entities.OrganiziroKindGrid && kind != entities.OrganiziroKindBox {
		return entities.GridBase{}, false
	}
	g := entities.GridBase{
		ID:             rec.ID,
		Name:           fieldString(f, "Name"),
		Slug:           fieldString(f, "Slug"),
		Description:    fieldString(f, "Description"),
		Price:          fieldFloat(f, "Price"),
		Images:         fieldImages(f, "Images"),
		InStock:        fieldBool(f, "In Stock", true),
		StockQuantity:  fieldInt(f, "Stock Quantity"),
		Specifications: fieldString(f, "Specifications"),
		Kind:           kind,
	}
	if kind == entities.OrganiziroKindGrid {
		g.GridWidth, g.GridHeight = gridDimensions(f, g.Slug)
	}
	return g, true
}
