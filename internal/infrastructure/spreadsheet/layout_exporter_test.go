package spreadsheet

import (
	"bytes"
	"testing"

	"bemu_storefront/internal/domain/entities"
	"bemu_storefront/internal/domain/tiling"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func inventory() []entities.GridBase {
	return []entities.GridBase{
		{ID: "g55", Name: "Base 5x5", Price: 20, GridWidth: 5, GridHeight: 5, Kind: entities.OrganiziroKindGrid},
		{ID: "g12", Name: "Base 1x2", Price: 3, GridWidth: 1, GridHeight: 2, Kind: entities.OrganiziroKindGrid},
	}
}

func open(t *testing.T, data []byte) *excelize.File {
	t.Helper()
	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })
	return f
}

func TestLayoutExporter_Export(t *testing.T) {
	// 29.4 cm -> 7 units, 21 cm -> 5 units
	calc, err := tiling.Calculate(29.4, 21, tiling.DefaultCatalog(), inventory())
	require.NoError(t, err)

	data, err := NewLayoutExporter().Export(calc)
	require.NoError(t, err)
	f := open(t, data)

	assert.Equal(t, []string{LayoutSheet, BOMSheet}, f.GetSheetList())

	label, err := f.GetCellValue(LayoutSheet, "A1")
	require.NoError(t, err)
	assert.Equal(t, "Base 5x5\n5x5", label)

	merged, err := f.GetMergeCells(LayoutSheet)
	require.NoError(t, err)
	require.NotEmpty(t, merged)
	assert.Equal(t, "A1", merged[0].GetStartAxis())
	assert.Equal(t, "E5", merged[0].GetEndAxis())

	item, err := f.GetCellValue(BOMSheet, "A7")
	require.NoError(t, err)
	assert.Equal(t, "Base 5x5", item)

	qty, err := f.GetCellValue(BOMSheet, "C8")
	require.NoError(t, err)
	assert.Equal(t, "5", qty)

	totalLabel, err := f.GetCellValue(BOMSheet, "A9")
	require.NoError(t, err)
	assert.Equal(t, "Total", totalLabel)
}

func TestLayoutExporter_GapsStayBlank(t *testing.T) {
	// 1x2 only: a 3x1 drawer leaves one cell uncovered
	inv := []entities.GridBase{{ID: "g12", Name: "Base 1x2", Price: 3, GridWidth: 1, GridHeight: 2}}
	calc, err := tiling.Calculate(12.6, 4.2, tiling.DefaultCatalog(), inv)
	require.NoError(t, err)
	require.Equal(t, 1, calc.UncoveredCells)

	data, err := NewLayoutExporter().Export(calc)
	require.NoError(t, err)
	f := open(t, data)

	gap, err := f.GetCellValue(LayoutSheet, "C1")
	require.NoError(t, err)
	assert.Empty(t, gap)

	uncovered, err := f.GetCellValue(BOMSheet, "B4")
	require.NoError(t, err)
	assert.Equal(t, "1", uncovered)
}

func TestLayoutExporter_EmptyCalculation(t *testing.T) {
	calc, err := tiling.Calculate(10, 10, tiling.DefaultCatalog(), nil)
	require.NoError(t, err)

	data, err := NewLayoutExporter().Export(calc)
	require.NoError(t, err)
	f := open(t, data)

	total, err := f.GetCellValue(BOMSheet, "A7")
	require.NoError(t, err)
	assert.Equal(t, "Total", total)
}

func TestLayoutExporter_DrawerSummary(t *testing.T) {
	// 10.5 x 30 cm -> 2 x 7 units, 21 mm and 6 mm left over
	calc, err := tiling.Calculate(10.5, 30, tiling.DefaultCatalog(), inventory())
	require.NoError(t, err)

	data, err := NewLayoutExporter().Export(calc)
	require.NoError(t, err)
	f := open(t, data)

	for cell, want := range map[string]string{
		"B1": "2 x 7 units",
		"B2": "84.0 x 294.0",
		"B3": "21.0 x 6.0",
	} {
		got, err := f.GetCellValue(BOMSheet, cell)
		require.NoError(t, err)
		assert.Equal(t, want, got, cell)
	}
}
