package ingest

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/geotech-cli/internal/model"
)

const sampleCSV = `borehole,ground_elevation,water_depth,depth,spt_n,uscs
BH-1,0,2.5,1.5,8,CH
BH-1,0,2.5,3.0,12,cl
BH-1,0,2.5,4.5,15,SM
BH-2,99.05,0.7,1.45,8,CH
BH-2,99.05,0.7,2.45,20,SC
`

func TestReadCSV(t *testing.T) {
	boreholes, err := ReadCSV(strings.NewReader(sampleCSV))
	require.NoError(t, err)
	require.Len(t, boreholes, 2)

	bh1 := boreholes[0]
	assert.Equal(t, "BH-1", bh1.ID)
	assert.Equal(t, 0.0, bh1.GroundElevation)
	assert.Equal(t, 2.5, bh1.WaterDepth)
	require.Len(t, bh1.Points, 3)
	assert.Equal(t, model.DepthPoint{Depth: 1.5, N: 8, USCS: "CH"}, bh1.Points[0])
	assert.Equal(t, "CL", bh1.Points[1].USCS) // codes are upper-cased

	bh2 := boreholes[1]
	assert.Equal(t, "BH-2", bh2.ID)
	assert.Equal(t, 99.05, bh2.GroundElevation)
	require.Len(t, bh2.Points, 2)
}

func TestReadCSVSkipsBlankRows(t *testing.T) {
	csv := "borehole,ground_elevation,water_depth,depth,spt_n,uscs\nBH-1,0,2.5,1.5,8,CH\n,,,,,\n"
	boreholes, err := ReadCSV(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, boreholes, 1)
	assert.Len(t, boreholes[0].Points, 1)
}

func TestReadCSVBadHeader(t *testing.T) {
	csv := "hole,elev,water,depth,n,uscs\nBH-1,0,2.5,1.5,8,CH\n"
	_, err := ReadCSV(strings.NewReader(csv))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "csv column")
}

func TestReadCSVBadValues(t *testing.T) {
	tests := []struct {
		name string
		row  string
	}{
		{"bad depth", "BH-1,0,2.5,deep,8,CH"},
		{"bad n", "BH-1,0,2.5,1.5,eight,CH"},
		{"bad elevation", "BH-1,high,2.5,1.5,8,CH"},
		{"missing id", ",0,2.5,1.5,8,CH"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			csv := "borehole,ground_elevation,water_depth,depth,spt_n,uscs\n" + tt.row + "\n"
			_, err := ReadCSV(strings.NewReader(csv))
			require.Error(t, err)
		})
	}
}
