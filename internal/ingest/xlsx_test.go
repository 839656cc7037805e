package ingest

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx/v2"
)

func writeWorkbook(t *testing.T, sheetName string, rows [][]string) string {
	t.Helper()

	f := xlsx.NewFile()
	sheet, err := f.AddSheet(sheetName)
	require.NoError(t, err)
	for _, cells := range rows {
		row := sheet.AddRow()
		for _, v := range cells {
			row.AddCell().SetString(v)
		}
	}

	path := filepath.Join(t.TempDir(), "logs.xlsx")
	require.NoError(t, f.Save(path))
	return path
}

func TestReadXLSX(t *testing.T) {
	path := writeWorkbook(t, "Logs", [][]string{
		{"borehole", "ground_elevation", "water_depth", "depth", "spt_n", "uscs"},
		{"BH-1", "0", "2.5", "1.5", "8", "CH"},
		{"BH-1", "0", "2.5", "3.0", "12", "CL"},
	})

	boreholes, err := ReadXLSX(path, "")
	require.NoError(t, err)
	require.Len(t, boreholes, 1)
	assert.Equal(t, "BH-1", boreholes[0].ID)
	require.Len(t, boreholes[0].Points, 2)
	assert.Equal(t, 12, boreholes[0].Points[1].N)
}

func TestReadXLSXNamedSheet(t *testing.T) {
	path := writeWorkbook(t, "Field Logs", [][]string{
		{"borehole", "ground_elevation", "water_depth", "depth", "spt_n", "uscs"},
		{"BH-7", "10", "1.0", "2.0", "6", "ML"},
	})

	boreholes, err := ReadXLSX(path, "Field Logs")
	require.NoError(t, err)
	require.Len(t, boreholes, 1)
	assert.Equal(t, "BH-7", boreholes[0].ID)

	_, err = ReadXLSX(path, "Missing")
	require.Error(t, err)
}

func TestReadXLSXBadHeader(t *testing.T) {
	path := writeWorkbook(t, "Logs", [][]string{
		{"id", "elev", "water", "depth", "n", "uscs"},
	})

	_, err := ReadXLSX(path, "")
	require.Error(t, err)
}

func TestReadXLSXMissingFile(t *testing.T) {
	_, err := ReadXLSX("/does/not/exist.xlsx", "")
	require.Error(t, err)
}
