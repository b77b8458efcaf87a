// Package tiling fits modular drawer bases onto a square grid.
//
// A drawer is measured in centimetres, converted to whole grid units and then
// covered greedily, largest shapes first, scanning row by row. Every placed
// shape is mapped back to a purchasable grid base.
package tiling

import (
	"bemu_storefront/internal/domain/entities"
	"errors"
	"math"
	"sort"
)

// GridUnitMM is the side of one grid cell.
const GridUnitMM = 42

// MaxGridUnits bounds each side of a drawer (500 units is 21 m).
const MaxGridUnits = 500

var ErrInvalidDimensions = errors.New("invalid drawer dimensions")

// PieceShape is a rectangle measured in grid units.
type PieceShape struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

func (s PieceShape) Area() int { return s.Width * s.Height }

var defaultCatalog = []PieceShape{
	{Width: 5, Height: 5},
	{Width: 2, Height: 5},
	{Width: 2, Height: 4},
	{Width: 1, Height: 5},
	{Width: 1, Height: 4},
	{Width: 1, Height: 2},
	{Width: 1, Height: 1},
}

// DefaultCatalog returns a copy of the shapes the shop produces.
func DefaultCatalog() []PieceShape {
	out := make([]PieceShape, len(defaultCatalog))
	copy(out, defaultCatalog)
	return out
}

// GridDimensions is a drawer converted to grid units.
type GridDimensions struct {
	WidthUnits        int     `json:"width_units"`
	HeightUnits       int     `json:"height_units"`
	UsedWidthMM       float64 `json:"used_width_mm"`
	UsedHeightMM      float64 `json:"used_height_mm"`
	RemainingWidthMM  float64 `json:"remaining_width_mm"`
	RemainingHeightMM float64 `json:"remaining_height_mm"`
}

// ToGridDimensions floors each side to whole cells of gridUnitMM.
func ToGridDimensions(widthCM, heightCM float64, gridUnitMM int) (GridDimensions, error) {
	if !validLength(widthCM) || !validLength(heightCM) || gridUnitMM <= 0 {
		return GridDimensions{}, ErrInvalidDimensions
	}
	widthMM := widthCM * 10
	heightMM := heightCM * 10
	unit := float64(gridUnitMM)

	wu := math.Floor(widthMM / unit)
	hu := math.Floor(heightMM / unit)
	if wu > MaxGridUnits || hu > MaxGridUnits {
		return GridDimensions{}, ErrInvalidDimensions
	}
	w, h := int(wu), int(hu)
	if w < 1 || h < 1 {
		return GridDimensions{}, ErrInvalidDimensions
	}

	usedW := float64(w * gridUnitMM)
	usedH := float64(h * gridUnitMM)
	return GridDimensions{
		WidthUnits:        w,
		HeightUnits:       h,
		UsedWidthMM:       usedW,
		UsedHeightMM:      usedH,
		RemainingWidthMM:  widthMM - usedW,
		RemainingHeightMM: heightMM - usedH,
	}, nil
}

func validLength(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}

// Placement is one base laid on the grid, anchored at its top-left cell.
type Placement struct {
	X      int               `json:"x"`
	Y      int               `json:"y"`
	Width  int               `json:"width"`
	Height int               `json:"height"`
	Item   entities.GridBase `json:"-"`
	ItemID string            `json:"item_id"`
}

// Layout is the raw output of a tiling pass.
type Layout struct {
	WidthUnits     int
	HeightUnits    int
	Placements     []Placement
	Recommendation Recommendation
}

// CoveredCells counts cells occupied by placements.
func (l Layout) CoveredCells() int {
	n := 0
	for _, p := range l.Placements {
		n += p.Width * p.Height
	}
	return n
}

func (l Layout) UncoveredCells() int {
	return l.WidthUnits*l.HeightUnits - l.CoveredCells()
}

// sortedByArea orders shapes by descending area, keeping declaration order on ties.
func sortedByArea(catalog []PieceShape) []PieceShape {
	out := make([]PieceShape, len(catalog))
	copy(out, catalog)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Area() > out[j].Area() })
	return out
}

// findItem returns the first inventory item covering w x h in either orientation.
func findItem(inventory []entities.GridBase, w, h int) (entities.GridBase, bool) {
	for _, it := range inventory {
		if it.Fits(w, h) {
			return it, true
		}
	}
	return entities.GridBase{}, false
}

// Tile covers a widthUnits x heightUnits grid with the given catalog. Shapes
// without a matching inventory item are never placed; cells nothing fits
// into stay empty. A side outside 1..MaxGridUnits yields an empty layout.
func Tile(widthUnits, heightUnits int, catalog []PieceShape, inventory []entities.GridBase) Layout {
	layout := Layout{WidthUnits: widthUnits, HeightUnits: heightUnits, Recommendation: Recommendation{}}
	if widthUnits <= 0 || heightUnits <= 0 || widthUnits > MaxGridUnits || heightUnits > MaxGridUnits {
		layout.WidthUnits, layout.HeightUnits = 0, 0
		return layout
	}

	grid := newGrid(widthUnits, heightUnits)
	shapes := sortedByArea(catalog)

	for y := 0; y < heightUnits; y++ {
		for x := 0; x < widthUnits; x++ {
			if grid.filled(x, y) {
				continue
			}
			placeAt(grid, &layout, shapes, inventory, x, y)
		}
	}
	return layout
}

func placeAt(grid *occupancy, layout *Layout, shapes []PieceShape, inventory []entities.GridBase, x, y int) {
	for _, s := range shapes {
		for _, o := range [2][2]int{{s.Width, s.Height}, {s.Height, s.Width}} {
			w, h := o[0], o[1]
			if !grid.free(x, y, w, h) {
				continue
			}
			item, ok := findItem(inventory, w, h)
			if !ok {
				continue
			}
			grid.fill(x, y, w, h)
			layout.Placements = append(layout.Placements, Placement{X: x, Y: y, Width: w, Height: h, Item: item, ItemID: item.ID})
			layout.Recommendation.add(item, 1)
			return
		}
	}
}

// PlacePieces runs Tile and returns only the aggregated recommendation.
func PlacePieces(widthUnits, heightUnits int, catalog []PieceShape, inventory []entities.GridBase) Recommendation {
	return Tile(widthUnits, heightUnits, catalog, inventory).Recommendation
}

// Calculation is the full answer for one drawer.
type Calculation struct {
	GridDimensions
	Recommendations []RecommendationLine `json:"recommendations"`
	TotalPrice      float64              `json:"total_price"`
	CoveredCells    int                  `json:"covered_cells"`
	UncoveredCells  int                  `json:"uncovered_cells"`
	Placements      []Placement          `json:"placements"`
}

// Calculate converts a drawer size and tiles it with catalog.
func Calculate(widthCM, heightCM float64, catalog []PieceShape, inventory []entities.GridBase) (Calculation, error) {
	dims, err := ToGridDimensions(widthCM, heightCM, GridUnitMM)
	if err != nil {
		return Calculation{}, err
	}
	layout := Tile(dims.WidthUnits, dims.HeightUnits, catalog, inventory)
	return Calculation{
		GridDimensions:  dims,
		Recommendations: layout.Recommendation.Lines(),
		TotalPrice:      layout.Recommendation.TotalPrice(),
		CoveredCells:    layout.CoveredCells(),
		UncoveredCells:  layout.UncoveredCells(),
		Placements:      layout.Placements,
	}, nil
}
