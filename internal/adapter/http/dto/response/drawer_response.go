package response

import "bemu_storefront/internal/domain/tiling"

const MessageNoBasesAvailable = "no bases available for these dimensions"

type RecommendationResponse struct {
	Item     GridBaseResponse `json:"item"`
	Quantity int              `json:"quantity"`
	Subtotal float64          `json:"subtotal"`
}

type PlacementResponse struct {
	X      int    `json:"x"`
	Y      int    `json:"y"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	ItemID string `json:"item_id"`
}

type DrawerCalculationResponse struct {
	WidthUnits        int                      `json:"width_units"`
	HeightUnits       int                      `json:"height_units"`
	UsedWidthMM       float64                  `json:"used_width_mm"`
	UsedHeightMM      float64                  `json:"used_height_mm"`
	RemainingWidthMM  float64                  `json:"remaining_width_mm"`
	RemainingHeightMM float64                  `json:"remaining_height_mm"`
	Recommendations   []RecommendationResponse `json:"recommendations"`
	TotalPrice        float64                  `json:"total_price"`
	CoveredCells      int                      `json:"covered_cells"`
	UncoveredCells    int                      `json:"uncovered_cells"`
	Placements        []PlacementResponse      `json:"placements"`
	Message           string                   `json:"message,omitempty"`
}

func FromCalculation(calc tiling.Calculation) DrawerCalculationResponse {
	res := DrawerCalculationResponse{
		WidthUnits:        calc.WidthUnits,
		HeightUnits:       calc.HeightUnits,
		UsedWidthMM:       calc.UsedWidthMM,
		UsedHeightMM:      calc.UsedHeightMM,
		RemainingWidthMM:  calc.RemainingWidthMM,
		RemainingHeightMM: calc.RemainingHeightMM,
		Recommendations:   make([]RecommendationResponse, 0, len(calc.Recommendations)),
		TotalPrice:        calc.TotalPrice,
		CoveredCells:      calc.CoveredCells,
		UncoveredCells:    calc.UncoveredCells,
		Placements:        make([]PlacementResponse, 0, len(calc.Placements)),
	}
	for _, l := range calc.Recommendations {
		res.Recommendations = append(res.Recommendations, RecommendationResponse{
			Item:     FromGridBase(l.Item),
			Quantity: l.Quantity,
			Subtotal: l.Subtotal(),
		})
	}
	for _, p := range calc.Placements {
		res.Placements = append(res.Placements, PlacementResponse{X: p.X, Y: p.Y, Width: p.Width, Height: p.Height, ItemID: p.ItemID})
	}
	if len(res.Recommendations) == 0 {
		res.Message = MessageNoBasesAvailable
	}
	return res
}
