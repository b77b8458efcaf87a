package interfaces

import "bemu_storefront/internal/domain/tiling"

// ILayoutExporter renders a calculation as a downloadable workbook.
type ILayoutExporter interface {
	Export(calc tiling.Calculation) ([]byte, error)
}

// IDrawerMetrics records calculator outcomes.
type IDrawerMetrics interface {
	ObserveCalculation(result string, uncoveredCells int)
}
