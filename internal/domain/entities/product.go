package entities

import "time"

// ProductImage mirrors an Airtable attachment.
type ProductImage struct {
	ID         string           `json:"id"`
	URL        string           `json:"url"`
	Filename   string           `json:"filename"`
	Width      int              `json:"width,omitempty"`
	Height     int              `json:"height,omitempty"`
	Thumbnails *ImageThumbnails `json:"thumbnails,omitempty"`
}

type ImageThumbnail struct {
	URL    string `json:"url"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

type ImageThumbnails struct {
	Small ImageThumbnail `json:"small"`
	Large ImageThumbnail `json:"large"`
	Full  ImageThumbnail `json:"full"`
}

// Product is a sellable catalog entry managed in the Airtable "Products" table.
type Product struct {
	ID               string         `json:"id"`
	Name             string         `json:"name"`
	Slug             string         `json:"slug"`
	Description      string         `json:"description"`
	ShortDescription string         `json:"short_description,omitempty"`
	Price            float64        `json:"price"`
	CompareAtPrice   float64        `json:"compare_at_price,omitempty"`
	Images           []ProductImage `json:"images"`
	CategoryID       string         `json:"category_id,omitempty"`
	CategoryName     string         `json:"category_name,omitempty"`
	InStock          bool           `json:"in_stock"`
	StockQuantity    int            `json:"stock_quantity"`
	Specifications   string         `json:"specifications,omitempty"`
	Featured         bool           `json:"featured"`
	CreatedAt        time.Time      `json:"created_at"`
	Colors           []string       `json:"colors,omitempty"`
	Sizes            []string       `json:"sizes,omitempty"`
}

// PrimaryImageURL returns the first image URL or an empty string.
func (p Product) PrimaryImageURL() string {
	if len(p.Images) == 0 {
		return ""
	}
	return p.Images[0].URL
}

type CategoryImage struct {
	ID       string `json:"id"`
	URL      string `json:"url"`
	Filename string `json:"filename"`
}

// Category groups products; Order drives the listing order.
type Category struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Slug        string         `json:"slug"`
	Description string         `json:"description,omitempty"`
	Image       *CategoryImage `json:"image,omitempty"`
	Order       int            `json:"order"`
}

// ProductFilter narrows product listings.
type ProductFilter struct {
	CategorySlug string
	Featured     bool
	Limit        int
}
