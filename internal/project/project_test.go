package project

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/geotech-cli/internal/correlate"
	"github.com/sells-group/geotech-cli/internal/model"
)

func sampleDocument() *Document {
	su := 42.0
	doc := New("riverside-site", correlate.Settings{
		CorrectionMethod: "liao-whitman",
		StructureType:    "earth-retaining",
		Method:           "driven",
		SurfaceType:      "smooth-concrete",
	})
	doc.Boreholes = []model.Borehole{
		{
			ID:              "BH-1",
			GroundElevation: 99.05,
			WaterDepth:      0.7,
			Points: []model.DepthPoint{
				{Depth: 1.45, N: 8, USCS: "CH"},
				{Depth: 2.45, N: 12, USCS: "CL"},
				{Depth: 3.45, N: 15, USCS: "SM"},
			},
		},
	}
	doc.Overrides = []model.LabOverride{
		{BoreholeID: "BH-1", Depth: 1.45, Su: &su},
	}
	return doc
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "site.json")

	doc := sampleDocument()
	require.NoError(t, doc.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, doc.Name, loaded.Name)
	assert.Equal(t, doc.Settings, loaded.Settings)
	assert.Equal(t, doc.Boreholes, loaded.Boreholes)
	require.Len(t, loaded.Overrides, 1)
	require.NotNil(t, loaded.Overrides[0].Su)
	assert.Equal(t, 42.0, *loaded.Overrides[0].Su)
	assert.False(t, loaded.SavedAt.IsZero())
}

func TestLoadRejectsUnknownSchemaVersion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "site.json")

	raw, err := json.Marshal(map[string]any{"schema_version": 99, "name": "x"})
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, raw, 0o644))

	_, err = Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "schema version")
}

func TestLoadRejectsMalformedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "site.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
}

func TestOverrideSet(t *testing.T) {
	doc := sampleDocument()
	set := doc.OverrideSet()

	byDepth := set.For("BH-1")
	require.NotNil(t, byDepth)
	ov, ok := byDepth[model.DepthKey(1.45)]
	require.True(t, ok)
	assert.NotNil(t, ov.Su)

	assert.Nil(t, set.For("BH-9"))
}

func TestBoreholeLookup(t *testing.T) {
	doc := sampleDocument()
	require.NotNil(t, doc.Borehole("BH-1"))
	assert.Nil(t, doc.Borehole("BH-2"))

	ptrs := doc.BoreholePtrs()
	require.Len(t, ptrs, 1)
	assert.Same(t, &doc.Boreholes[0], ptrs[0])
}
