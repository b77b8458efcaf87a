package entities

// OrganiziroKind separates tileable drawer bases from the boxes that sit on them.
type OrganiziroKind string

const (
	OrganiziroKindGrid OrganiziroKind = "grid"
	OrganiziroKindBox  OrganiziroKind = "box"
)

// GridBase is an Organiziro product. Grid bases carry their footprint in grid
// units; a base is tileable only when both GridWidth and GridHeight are set.
type GridBase struct {
	ID             string         `json:"id"`
	Name           string         `json:"name"`
	Slug           string         `json:"slug"`
	Description    string         `json:"description"`
	Price          float64        `json:"price"`
	Images         []ProductImage `json:"images"`
	InStock        bool           `json:"in_stock"`
	StockQuantity  int            `json:"stock_quantity"`
	Specifications string         `json:"specifications,omitempty"`
	Kind           OrganiziroKind `json:"kind,omitempty"`
	GridWidth      int            `json:"grid_width,omitempty"`
	GridHeight     int            `json:"grid_height,omitempty"`
}

// Fits reports whether the base covers a w x h rectangle in either orientation.
func (g GridBase) Fits(w, h int) bool {
	return (g.GridWidth == w && g.GridHeight == h) || (g.GridWidth == h && g.GridHeight == w)
}

func (g GridBase) PrimaryImageURL() string {
	if len(g.Images) == 0 {
		return ""
	}
	return g.Images[0].URL
}
