package export

import (
	"sort"

	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"

	"github.com/sells-group/geotech-cli/internal/model"
)

// WriteXLSX writes a workbook with one sheet per borehole, sheets ordered by
// borehole id.
func WriteXLSX(path string, result *model.RunResult) error {
	f := xlsx.NewFile()

	ids := make([]string, 0, len(result.Boreholes))
	for id := range result.Boreholes {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		sheet, err := f.AddSheet(id)
		if err != nil {
			return eris.Wrapf(err, "export: add sheet %s", id)
		}

		header := sheet.AddRow()
		for _, col := range resultColumns {
			header.AddCell().SetString(col)
		}

		for _, r := range result.Boreholes[id] {
			row := sheet.AddRow()
			for _, cell := range buildRow(r) {
				row.AddCell().SetString(cell)
			}
		}
	}

	if err := f.Save(path); err != nil {
		return eris.Wrapf(err, "export: save %s", path)
	}
	return nil
}
