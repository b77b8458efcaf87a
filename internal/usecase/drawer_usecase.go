package usecase

import (
	"bemu_storefront/internal/domain/entities"
	"bemu_storefront/internal/domain/tiling"
	"bemu_storefront/internal/usecase/interfaces"
	"bemu_storefront/pkg/logger"
	"context"
	"errors"
)

// ErrInvalidDimensions is returned for drawers smaller than one grid cell or non-numeric sizes.
var ErrInvalidDimensions = tiling.ErrInvalidDimensions

var ErrExporterNotConfigured = errors.New("layout exporter not configured")

const (
	DrawerResultOK    = "ok"
	DrawerResultEmpty = "empty"
	DrawerResultError = "invalid"
)

type IDrawerUseCase interface {
	Calculate(ctx context.Context, widthCM, heightCM float64) (tiling.Calculation, error)
	ExportLayout(ctx context.Context, widthCM, heightCM float64) ([]byte, tiling.Calculation, error)
}

type DrawerUseCase struct {
	catalog  interfaces.ICatalogRepository
	exporter interfaces.ILayoutExporter
	metrics  interfaces.IDrawerMetrics
	shapes   []tiling.PieceShape
}

var _ IDrawerUseCase = (*DrawerUseCase)(nil)

func NewDrawerUseCase(catalog interfaces.ICatalogRepository, exporter interfaces.ILayoutExporter, metrics interfaces.IDrawerMetrics) *DrawerUseCase {
	return &DrawerUseCase{catalog: catalog, exporter: exporter, metrics: metrics, shapes: tiling.DefaultCatalog()}
}

// Calculate tiles the drawer with the grid bases currently in the catalog.
func (u *DrawerUseCase) Calculate(ctx context.Context, widthCM, heightCM float64) (tiling.Calculation, error) {
	log := logger.Component(ctx, "drawer", "usecase")

	// Validate before touching the catalog.
	if _, err := tiling.ToGridDimensions(widthCM, heightCM, tiling.GridUnitMM); err != nil {
		u.observe(DrawerResultError, 0)
		log.Info().Float64("width_cm", widthCM).Float64("height_cm", heightCM).Msg("invalid drawer dimensions")
		return tiling.Calculation{}, err
	}

	inventory, err := u.gridBases(ctx)
	if err != nil {
		log.Error().Err(err).Msg("loading grid bases failed")
		return tiling.Calculation{}, err
	}

	calc, err := tiling.Calculate(widthCM, heightCM, u.shapes, inventory)
	if err != nil {
		u.observe(DrawerResultError, 0)
		return tiling.Calculation{}, err
	}

	result := DrawerResultOK
	if len(calc.Recommendations) == 0 {
		result = DrawerResultEmpty
	}
	u.observe(result, calc.UncoveredCells)

	log.Info().
		Int("width_units", calc.WidthUnits).
		Int("height_units", calc.HeightUnits).
		Int("lines", len(calc.Recommendations)).
		Int("uncovered_cells", calc.UncoveredCells).
		Float64("total_price", calc.TotalPrice).
		Msg("drawer calculated")
	return calc, nil
}

func (u *DrawerUseCase) ExportLayout(ctx context.Context, widthCM, heightCM float64) ([]byte, tiling.Calculation, error) {
	if u.exporter == nil {
		return nil, tiling.Calculation{}, ErrExporterNotConfigured
	}
	calc, err := u.Calculate(ctx, widthCM, heightCM)
	if err != nil {
		return nil, tiling.Calculation{}, err
	}
	b, err := u.exporter.Export(calc)
	if err != nil {
		logger.Component(ctx, "drawer", "usecase").Error().Err(err).Msg("layout export failed")
		return nil, tiling.Calculation{}, err
	}
	return b, calc, nil
}

// gridBases keeps only Organiziro grids with a known footprint; boxes never tile.
func (u *DrawerUseCase) gridBases(ctx context.Context) ([]entities.GridBase, error) {
	all, err := u.catalog.ListOrganiziroProducts(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]entities.GridBase, 0, len(all))
	for _, g := range all {
		if g.Kind == entities.OrganiziroKindGrid && g.GridWidth > 0 && g.GridHeight > 0 {
			out = append(out, g)
		}
	}
	return out, nil
}

func (u *DrawerUseCase) observe(result string, uncovered int) {
	if u.metrics != nil {
		u.metrics.ObserveCalculation(result, uncovered)
	}
}
