package writer

import (
	"fmt"

	"github.com/mattn/go-runewidth"
	"github.com/ukaji3/branchwise-go/pkg/branchwise/parser"
	"github.com/xuri/excelize/v2"
)

// Format holds the cosmetic settings of the styling pass.
type Format struct {
	// HeaderHeight is the height of the first row in points.
	HeaderHeight float64 `yaml:"header_height" envconfig:"HEADER_HEIGHT" validate:"gt=0,lte=409"`
	// RowHeight is the height of every data row in points.
	RowHeight float64 `yaml:"row_height" envconfig:"ROW_HEIGHT" validate:"gt=0,lte=409"`
	// WidthPadding is added to the longest value of each column.
	WidthPadding float64 `yaml:"width_padding" envconfig:"WIDTH_PADDING" validate:"gte=0"`
	// BorderColor is the hex RGB color of cell borders.
	BorderColor string `yaml:"border_color" envconfig:"BORDER_COLOR" validate:"len=6,hexadecimal"`
}

// DefaultFormat returns the station sheet formatting.
func DefaultFormat() Format {
	return Format{
		HeaderHeight: 30,
		RowHeight:    20,
		WidthPadding: 1,
		BorderColor:  "000000",
	}
}

// borderThin is the excelize border style index for a thin line.
const borderThin = 1

// ApplyFormatting reopens the workbook at path, styles every sheet and saves it.
func ApplyFormatting(path string, format Format) error {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	headerStyle, err := f.NewStyle(format.cellStyle(true))
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}
	bodyStyle, err := f.NewStyle(format.cellStyle(false))
	if err != nil {
		return fmt.Errorf("failed to create body style: %w", err)
	}

	for _, sheetName := range f.GetSheetList() {
		if err := formatSheet(f, sheetName, format, headerStyle, bodyStyle); err != nil {
			return fmt.Errorf("failed to format sheet %q: %w", sheetName, err)
		}
	}

	if err := f.Save(); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

func (fm Format) cellStyle(header bool) *excelize.Style {
	borders := make([]excelize.Border, 0, 4)
	for _, side := range []string{"left", "right", "top", "bottom"} {
		borders = append(borders, excelize.Border{Type: side, Color: fm.BorderColor, Style: borderThin})
	}
	style := &excelize.Style{
		Border: borders,
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
			WrapText:   true,
		},
	}
	if header {
		style.Font = &excelize.Font{Bold: true}
	}
	return style
}

func formatSheet(f *excelize.File, sheetName string, format Format, headerStyle, bodyStyle int) error {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return err
	}
	ref, err := f.GetSheetDimension(sheetName)
	if err != nil {
		return err
	}
	written, err := parser.DimensionBounds(ref)
	if err != nil {
		return err
	}
	bounds := parser.DataBounds(rows).Union(written)
	if bounds.Empty() {
		return nil
	}

	for colIdx, width := range ColumnWidths(rows, bounds.Cols) {
		colName, err := excelize.ColumnNumberToName(colIdx + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(sheetName, colName, colName, clampWidth(float64(width)+format.WidthPadding)); err != nil {
			return err
		}
	}

	lastHeader, err := excelize.CoordinatesToCellName(bounds.Cols, 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheetName, "A1", lastHeader, headerStyle); err != nil {
		return err
	}
	if err := f.SetRowHeight(sheetName, 1, format.HeaderHeight); err != nil {
		return err
	}

	if bounds.Rows < 2 {
		return nil
	}
	lastCell, err := excelize.CoordinatesToCellName(bounds.Cols, bounds.Rows)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheetName, "A2", lastCell, bodyStyle); err != nil {
		return err
	}
	for row := 2; row <= bounds.Rows; row++ {
		if err := f.SetRowHeight(sheetName, row, format.RowHeight); err != nil {
			return err
		}
	}
	return nil
}

// ColumnWidths returns the display width of the widest cell in each of the
// first cols columns, header included.
func ColumnWidths(rows [][]string, cols int) []int {
	widths := make([]int, cols)
	for _, row := range rows {
		for colIdx := 0; colIdx < cols && colIdx < len(row); colIdx++ {
			if w := runewidth.StringWidth(row[colIdx]); w > widths[colIdx] {
				widths[colIdx] = w
			}
		}
	}
	return widths
}

func clampWidth(w float64) float64 {
	if w > excelize.MaxColumnWidth {
		return excelize.MaxColumnWidth
	}
	return w
}
