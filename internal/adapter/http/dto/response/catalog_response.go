package response

import (
	"bemu_storefront/internal/domain/entities"
	"time"
)

type ProductResponse struct {
	ID               string                  `json:"id"`
	Name             string                  `json:"name"`
	Slug             string                  `json:"slug"`
	Description      string                  `json:"description"`
	ShortDescription string                  `json:"short_description,omitempty"`
	Price            float64                 `json:"price"`
	CompareAtPrice   float64                 `json:"compare_at_price,omitempty"`
	OnSale           bool                    `json:"on_sale"`
	Images           []entities.ProductImage `json:"images"`
	Category         string                  `json:"category,omitempty"`
	CategoryName     string                  `json:"category_name,omitempty"`
	InStock          bool                    `json:"in_stock"`
	StockQuantity    int                     `json:"stock_quantity"`
	Specifications   string                  `json:"specifications,omitempty"`
	Featured         bool                    `json:"featured"`
	CreatedAt        time.Time               `json:"created_at"`
	Colors           []string                `json:"colors,omitempty"`
	Sizes            []string                `json:"sizes,omitempty"`
}

func FromProduct(p entities.Product) ProductResponse {
	images := p.Images
	if images == nil {
		images = []entities.ProductImage{}
	}
	return ProductResponse{
		ID:               p.ID,
		Name:             p.Name,
		Slug:             p.Slug,
		Description:      p.Description,
		ShortDescription: p.ShortDescription,
		Price:            p.Price,
		CompareAtPrice:   p.CompareAtPrice,
		OnSale:           p.CompareAtPrice > p.Price,
		Images:           images,
		Category:         p.CategoryID,
		CategoryName:     p.CategoryName,
		InStock:          p.InStock,
		StockQuantity:    p.StockQuantity,
		Specifications:   p.Specifications,
		Featured:         p.Featured,
		CreatedAt:        p.CreatedAt,
		Colors:           p.Colors,
		Sizes:            p.Sizes,
	}
}

func FromProducts(ps []entities.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, FromProduct(p))
	}
	return out
}

type CategoryResponse struct {
	ID          string                  `json:"id"`
	Name        string                  `json:"name"`
	Slug        string                  `json:"slug"`
	Description string                  `json:"description,omitempty"`
	Image       *entities.CategoryImage `json:"image,omitempty"`
	Order       int                     `json:"order"`
}

func FromCategory(c entities.Category) CategoryResponse {
	return CategoryResponse{ID: c.ID, Name: c.Name, Slug: c.Slug, Description: c.Description, Image: c.Image, Order: c.Order}
}

func FromCategories(cs []entities.Category) []CategoryResponse {
	out := make([]CategoryResponse, 0, len(cs))
	for _, c := range cs {
		out = append(out, FromCategory(c))
	}
	return out
}

type GridBaseResponse struct {
	ID             string                  `json:"id"`
	Name           string                  `json:"name"`
	Slug           string                  `json:"slug"`
	Description    string                  `json:"description"`
	Price          float64                 `json:"price"`
	Images         []entities.ProductImage `json:"images"`
	InStock        bool                    `json:"in_stock"`
	StockQuantity  int                     `json:"stock_quantity"`
	Specifications string                  `json:"specifications,omitempty"`
	Kind           string                  `json:"kind"`
	GridWidth      int                     `json:"grid_width,omitempty"`
	GridHeight     int                     `json:"grid_height,omitempty"`
}

func FromGridBase(g entities.GridBase) GridBaseResponse {
	images := g.Images
	if images == nil {
		images = []entities.ProductImage{}
	}
	return GridBaseResponse{
		ID:             g.ID,
		Name:           g.Name,
		Slug:           g.Slug,
		Description:    g.Description,
		Price:          g.Price,
		Images:         images,
		InStock:        g.InStock,
		StockQuantity:  g.StockQuantity,
		Specifications: g.Specifications,
		Kind:           string(g.Kind),
		GridWidth:      g.GridWidth,
		GridHeight:     g.GridHeight,
	}
}

func FromGridBases(gs []entities.GridBase) []GridBaseResponse {
	out := make([]GridBaseResponse, 0, len(gs))
	for _, g := range gs {
		out = append(out, FromGridBase(g))
	}
	return out
}

type OrganiziroProductsResponse struct {
	GridBases []GridBaseResponse `json:"grid_bases"`
	Boxes     []GridBaseResponse `json:"boxes"`
}
