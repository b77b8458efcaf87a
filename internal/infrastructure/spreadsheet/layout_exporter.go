package spreadsheet

import (
	"fmt"

	"bemu_storefront/internal/domain/tiling"
	"bemu_storefront/internal/usecase/interfaces"

	"github.com/xuri/excelize/v2"
)

const (
	LayoutSheet = "Layout"
	BOMSheet    = "Bill of materials"
)

var palette = []string{"#8DB3E2", "#C3D69B", "#FAC090", "#B3A2C7", "#93CDDD", "#E6B9B8", "#FFE699"}

// LayoutExporter renders a drawer calculation as an .xlsx workbook: the grid on one
// sheet (one cell per grid unit, gaps left blank) and the shopping list on another.
type LayoutExporter struct{}

var _ interfaces.ILayoutExporter = (*LayoutExporter)(nil)

func NewLayoutExporter() *LayoutExporter {
	return &LayoutExporter{}
}

func (e *LayoutExporter) Export(calc tiling.Calculation) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), LayoutSheet); err != nil {
		return nil, err
	}
	if err := writeLayout(f, calc); err != nil {
		return nil, fmt.Errorf("layout sheet: %w", err)
	}

	if _, err := f.NewSheet(BOMSheet); err != nil {
		return nil, err
	}
	if err := writeBOM(f, calc); err != nil {
		return nil, fmt.Errorf("bill of materials sheet: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeLayout(f *excelize.File, calc tiling.Calculation) error {
	if calc.WidthUnits > 0 {
		last, err := excelize.ColumnNumberToName(calc.WidthUnits)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(LayoutSheet, "A", last, 14); err != nil {
			return err
		}
	}
	for y := 1; y <= calc.HeightUnits; y++ {
		if err := f.SetRowHeight(LayoutSheet, y, 60); err != nil {
			return err
		}
	}

	styles := map[string]int{}
	for _, p := range calc.Placements {
		style, ok := styles[p.ItemID]
		if !ok {
			var err error
			style, err = f.NewStyle(&excelize.Style{
				Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{palette[len(styles)%len(palette)]}},
				Border: []excelize.Border{
					{Type: "left", Color: "#404040", Style: 1},
					{Type: "top", Color: "#404040", Style: 1},
					{Type: "right", Color: "#404040", Style: 1},
					{Type: "bottom", Color: "#404040", Style: 1},
				},
				Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center", WrapText: true},
			})
			if err != nil {
				return err
			}
			styles[p.ItemID] = style
		}

		topLeft, err := excelize.CoordinatesToCellName(p.X+1, p.Y+1)
		if err != nil {
			return err
		}
		bottomRight, err := excelize.CoordinatesToCellName(p.X+p.Width, p.Y+p.Height)
		if err != nil {
			return err
		}
		if topLeft != bottomRight {
			if err := f.MergeCell(LayoutSheet, topLeft, bottomRight); err != nil {
				return err
			}
		}
		if err := f.SetCellStyle(LayoutSheet, topLeft, bottomRight, style); err != nil {
			return err
		}
		label := fmt.Sprintf("%s\n%dx%d", p.Item.Name, p.Width, p.Height)
		if err := f.SetCellValue(LayoutSheet, topLeft, label); err != nil {
			return err
		}
	}
	return nil
}

func writeBOM(f *excelize.File, calc tiling.Calculation) error {
	header, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	money, err := f.NewStyle(&excelize.Style{NumFmt: 4})
	if err != nil {
		return err
	}

	rows := [][]any{
		{"Drawer", fmt.Sprintf("%d x %d units", calc.WidthUnits, calc.HeightUnits)},
		{"Used (mm)", fmt.Sprintf("%.1f x %.1f", calc.UsedWidthMM, calc.UsedHeightMM)},
		{"Remaining (mm)", fmt.Sprintf("%.1f x %.1f", calc.RemainingWidthMM, calc.RemainingHeightMM)},
		{"Uncovered cells", calc.UncoveredCells},
		{},
		{"Item", "Size", "Quantity", "Unit price", "Subtotal"},
	}
	for _, l := range calc.Recommendations {
		rows = append(rows, []any{
			l.Item.Name,
			fmt.Sprintf("%dx%d", l.Item.GridWidth, l.Item.GridHeight),
			l.Quantity,
			l.Item.Price,
			l.Subtotal(),
		})
	}
	rows = append(rows, []any{"Total", nil, nil, nil, calc.TotalPrice})

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if len(row) == 0 {
			continue
		}
		if err := f.SetSheetRow(BOMSheet, cell, &row); err != nil {
			return err
		}
	}

	headerRow := 6
	if err := f.SetCellStyle(BOMSheet, fmt.Sprintf("A%d", headerRow), fmt.Sprintf("E%d", headerRow), header); err != nil {
		return err
	}
	totalRow := len(rows)
	if err := f.SetCellStyle(BOMSheet, fmt.Sprintf("A%d", totalRow), fmt.Sprintf("A%d", totalRow), header); err != nil {
		return err
	}
	if err := f.SetCellStyle(BOMSheet, fmt.Sprintf("D%d", headerRow+1), fmt.Sprintf("E%d", totalRow), money); err != nil {
		return err
	}
	return f.SetColWidth(BOMSheet, "A", "A", 32)
}
