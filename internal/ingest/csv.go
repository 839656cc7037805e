// Package ingest parses borehole logs from CSV and XLSX files into the
// model types the pipeline consumes.
package ingest

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/sells-group/geotech-cli/internal/model"
)

// Expected columns, in order:
//
//	borehole, ground_elevation, water_depth, depth, spt_n, uscs
//
// Ground elevation and water depth repeat on every row of a borehole; the
// first row wins.
var expectedHeader = []string{"borehole", "ground_elevation", "water_depth", "depth", "spt_n", "uscs"}

// ReadCSV parses a borehole log CSV. Boreholes come back in first-seen
// order with their points in file order.
func ReadCSV(r io.Reader) ([]model.Borehole, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, eris.Wrap(err, "ingest: read csv header")
	}
	if err := checkHeader(header); err != nil {
		return nil, err
	}

	var rows [][]string
	for line := 2; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, eris.Wrapf(err, "ingest: read csv line %d", line)
		}
		rows = append(rows, record)
	}

	return parseRows(rows)
}

func checkHeader(header []string) error {
	if len(header) < len(expectedHeader) {
		return eris.Errorf("ingest: csv header has %d columns, want %d", len(header), len(expectedHeader))
	}
	for i, want := range expectedHeader {
		if !strings.EqualFold(strings.TrimSpace(header[i]), want) {
			return eris.Errorf("ingest: csv column %d is %q, want %q", i+1, header[i], want)
		}
	}
	return nil
}

// parseRows groups raw rows into boreholes. Shared by the CSV and XLSX
// readers.
func parseRows(rows [][]string) ([]model.Borehole, error) {
	var order []string
	byID := make(map[string]*model.Borehole)

	for i, row := range rows {
		if len(row) == 0 || strings.TrimSpace(strings.Join(row, "")) == "" {
			continue
		}
		if len(row) < len(expectedHeader) {
			return nil, eris.Errorf("ingest: row %d has %d fields, want %d", i+1, len(row), len(expectedHeader))
		}

		id := strings.TrimSpace(row[0])
		if id == "" {
			return nil, eris.Errorf("ingest: row %d has no borehole id", i+1)
		}

		bh, ok := byID[id]
		if !ok {
			groundElev, err := parseFloat(row[1], "ground_elevation", i+1)
			if err != nil {
				return nil, err
			}
			waterDepth, err := parseFloat(row[2], "water_depth", i+1)
			if err != nil {
				return nil, err
			}
			bh = &model.Borehole{ID: id, GroundElevation: groundElev, WaterDepth: waterDepth}
			byID[id] = bh
			order = append(order, id)
		}

		depth, err := parseFloat(row[3], "depth", i+1)
		if err != nil {
			return nil, err
		}
		n, err := parseInt(row[4], "spt_n", i+1)
		if err != nil {
			return nil, err
		}

		bh.Points = append(bh.Points, model.DepthPoint{
			Depth: depth,
			N:     n,
			USCS:  strings.ToUpper(strings.TrimSpace(row[5])),
		})
	}

	boreholes := make([]model.Borehole, 0, len(order))
	for _, id := range order {
		boreholes = append(boreholes, *byID[id])
	}
	return boreholes, nil
}

func parseFloat(s, field string, row int) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, eris.Errorf("ingest: row %d: invalid %s %q", row, field, s)
	}
	return v, nil
}

func parseInt(s, field string, row int) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, eris.Errorf("ingest: row %d: invalid %s %q", row, field, s)
	}
	return v, nil
}
