package tiling

import (
	"bemu_storefront/internal/domain/entities"
	"sort"
)

// RecommendationLine is one purchasable item and how many of it to buy.
type RecommendationLine struct {
	Item     entities.GridBase `json:"item"`
	Quantity int               `json:"quantity"`
}

func (l RecommendationLine) Subtotal() float64 {
	return l.Item.Price * float64(l.Quantity)
}

// Recommendation aggregates placed pieces by inventory item id.
type Recommendation map[string]RecommendationLine

func (r Recommendation) add(item entities.GridBase, qty int) {
	line, ok := r[item.ID]
	if !ok {
		line = RecommendationLine{Item: item}
	}
	line.Quantity += qty
	r[item.ID] = line
}

func (r Recommendation) TotalPrice() float64 {
	total := 0.0
	for _, l := range r {
		total += l.Subtotal()
	}
	return total
}

// Pieces is the total number of placed bases.
func (r Recommendation) Pieces() int {
	n := 0
	for _, l := range r {
		n += l.Quantity
	}
	return n
}

// Lines returns the recommendation ordered by footprint (largest first), then by id.
func (r Recommendation) Lines() []RecommendationLine {
	lines := make([]RecommendationLine, 0, len(r))
	for _, l := range r {
		lines = append(lines, l)
	}
	sort.Slice(lines, func(i, j int) bool {
		ai := lines[i].Item.GridWidth * lines[i].Item.GridHeight
		aj := lines[j].Item.GridWidth * lines[j].Item.GridHeight
		if ai != aj {
			return ai > aj
		}
		return lines[i].Item.ID < lines[j].Item.ID
	})
	return lines
}
