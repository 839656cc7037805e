package ingest

import (
	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"

	"github.com/sells-group/geotech-cli/internal/model"
)

// ReadXLSX parses a borehole log workbook. The first sheet is used unless
// sheetName is set; the layout matches the CSV columns with one header row.
func ReadXLSX(path, sheetName string) ([]model.Borehole, error) {
	f, err := xlsx.OpenFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "ingest: open xlsx %s", path)
	}

	sheet, err := pickSheet(f, sheetName)
	if err != nil {
		return nil, err
	}
	if len(sheet.Rows) == 0 {
		return nil, eris.Errorf("ingest: sheet %s is empty", sheet.Name)
	}

	if err := checkHeader(rowToStrings(sheet.Rows[0])); err != nil {
		return nil, err
	}

	rows := make([][]string, 0, len(sheet.Rows)-1)
	for _, row := range sheet.Rows[1:] {
		rows = append(rows, rowToStrings(row))
	}
	return parseRows(rows)
}

func pickSheet(f *xlsx.File, name string) (*xlsx.Sheet, error) {
	if name == "" {
		if len(f.Sheets) == 0 {
			return nil, eris.New("ingest: workbook has no sheets")
		}
		return f.Sheets[0], nil
	}
	if sheet, ok := f.Sheet[name]; ok {
		return sheet, nil
	}
	return nil, eris.Errorf("ingest: sheet %q not found", name)
}

func rowToStrings(row *xlsx.Row) []string {
	cells := make([]string, len(row.Cells))
	for i, c := range row.Cells {
		cells[i] = c.String()
	}
	return cells
}
