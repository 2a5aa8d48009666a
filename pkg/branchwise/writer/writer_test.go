package writer

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/branchwise-go/pkg/branchwise/models"
	"github.com/xuri/excelize/v2"
)

func sampleSheets() []Sheet {
	header := []string{"Station", "Stipend", "Preferred Branches"}
	return []Sheet{
		{Name: "Any", Table: &models.Table{
			Headers: header,
			Rows: []models.Row{
				{models.Text("A very long station name"), models.Int(5000), models.Text("Any")},
				{models.Text("Short"), models.Text("N/A"), models.Text("Any")},
			},
		}},
		{Name: "A1", Table: &models.Table{
			Headers: header,
			Rows: []models.Row{
				{models.Text("Alpha"), models.Float(3500.5), models.Text("A1")},
			},
		}},
		{Name: "B5", Table: &models.Table{Headers: header}},
	}
}

func writeSample(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "out.xlsx")
	require.NoError(t, WriteSheets(path, sampleSheets()))
	return path
}

func TestWriteSheets(t *testing.T) {
	path := writeSample(t)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Any", "A1", "B5"}, f.GetSheetList())

	rows, err := f.GetRows("Any")
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"Station", "Stipend", "Preferred Branches"},
		{"A very long station name", "5000", "Any"},
		{"Short", "N/A", "Any"},
	}, rows)

	// Numbers keep their type
	cellType, err := f.GetCellType("A1", "B2")
	require.NoError(t, err)
	assert.NotEqual(t, excelize.CellTypeSharedString, cellType)
	assert.NotEqual(t, excelize.CellTypeInlineString, cellType)

	rows, err = f.GetRows("B5")
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestWriteSheetsNoSheets(t *testing.T) {
	assert.Error(t, WriteSheets(filepath.Join(t.TempDir(), "out.xlsx"), nil))
}

func TestWriteSheetsInvalidName(t *testing.T) {
	sheets := []Sheet{{Name: "bad/name", Table: &models.Table{Headers: []string{"a"}}}}
	assert.Error(t, WriteSheets(filepath.Join(t.TempDir(), "out.xlsx"), sheets))
}

func TestApplyFormatting(t *testing.T) {
	path := writeSample(t)
	format := DefaultFormat()
	require.NoError(t, ApplyFormatting(path, format))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	// Column width is the longest value plus padding
	width, err := f.GetColWidth("Any", "A")
	require.NoError(t, err)
	assert.InDelta(t, float64(len("A very long station name"))+format.WidthPadding, width, 0.01)
	width, err = f.GetColWidth("Any", "C")
	require.NoError(t, err)
	assert.InDelta(t, float64(len("Preferred Branches"))+format.WidthPadding, width, 0.01)

	// Row heights
	h, err := f.GetRowHeight("Any", 1)
	require.NoError(t, err)
	assert.Equal(t, format.HeaderHeight, h)
	for _, row := range []int{2, 3} {
		h, err = f.GetRowHeight("Any", row)
		require.NoError(t, err)
		assert.Equal(t, format.RowHeight, h)
	}

	// Header is bold, body is not; both centered, wrapped and bordered
	header := cellStyle(t, f, "Any", "C1")
	require.NotNil(t, header.Font)
	assert.True(t, header.Font.Bold)
	assertCentered(t, header)
	assertBordered(t, header, format.BorderColor)

	body := cellStyle(t, f, "Any", "B3")
	assert.True(t, body.Font == nil || !body.Font.Bold)
	assertCentered(t, body)
	assertBordered(t, body, format.BorderColor)

	// Header-only sheets still get a styled header
	emptyHeader := cellStyle(t, f, "B5", "A1")
	require.NotNil(t, emptyHeader.Font)
	assert.True(t, emptyHeader.Font.Bold)
}

func TestApplyFormattingBlankColumn(t *testing.T) {
	// Exports ending every line with a comma leave a column with no header
	path := filepath.Join(t.TempDir(), "out.xlsx")
	sheets := []Sheet{{Name: "A1", Table: &models.Table{
		Headers: []string{"Station", "Stipend", ""},
		Rows: []models.Row{
			{models.Text("Alpha"), models.Int(5000), models.Text("")},
			{models.Text("Beta"), models.Int(4000), models.Text("")},
		},
	}}}
	require.NoError(t, WriteSheets(path, sheets))
	format := DefaultFormat()
	require.NoError(t, ApplyFormatting(path, format))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	ref, err := f.GetSheetDimension("A1")
	require.NoError(t, err)
	assert.Equal(t, "A1:C3", ref)

	header := cellStyle(t, f, "A1", "C1")
	require.NotNil(t, header.Font)
	assert.True(t, header.Font.Bold)
	assertBordered(t, header, format.BorderColor)
	for _, cell := range []string{"C2", "C3"} {
		assertBordered(t, cellStyle(t, f, "A1", cell), format.BorderColor)
	}

	width, err := f.GetColWidth("A1", "C")
	require.NoError(t, err)
	assert.InDelta(t, format.WidthPadding, width, 0.01)
}

func TestWriteSheetsDuplicateName(t *testing.T) {
	sheets := sampleSheets()
	sheets[2].Name = "a1"
	err := WriteSheets(filepath.Join(t.TempDir(), "out.xlsx"), sheets)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate sheet name")
}

func TestApplyFormattingMissingFile(t *testing.T) {
	assert.Error(t, ApplyFormatting(filepath.Join(t.TempDir(), "missing.xlsx"), DefaultFormat()))
}

func TestColumnWidths(t *testing.T) {
	rows := [][]string{
		{"Station", "Stipend"},
		{"東京ラボ", "5000"},
		{"x"},
	}
	// Wide characters count double
	assert.Equal(t, []int{8, 7, 0}, ColumnWidths(rows, 3))
}

func cellStyle(t *testing.T, f *excelize.File, sheet, cell string) *excelize.Style {
	t.Helper()
	id, err := f.GetCellStyle(sheet, cell)
	require.NoError(t, err)
	style, err := f.GetStyle(id)
	require.NoError(t, err)
	return style
}

func assertCentered(t *testing.T, style *excelize.Style) {
	t.Helper()
	require.NotNil(t, style.Alignment)
	assert.Equal(t, "center", style.Alignment.Horizontal)
	assert.Equal(t, "center", style.Alignment.Vertical)
	assert.True(t, style.Alignment.WrapText)
}

func assertBordered(t *testing.T, style *excelize.Style, color string) {
	t.Helper()
	sides := map[string]bool{}
	for _, b := range style.Border {
		assert.Equal(t, borderThin, b.Style, "border %s", b.Type)
		assert.Contains(t, b.Color, color)
		sides[b.Type] = true
	}
	for _, side := range []string{"left", "right", "top", "bottom"} {
		assert.True(t, sides[side], "missing %s border", side)
	}
}
