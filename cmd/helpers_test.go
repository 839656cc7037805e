package main

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/geotech-cli/internal/correlate"
	"github.com/sells-group/geotech-cli/internal/model"
	"github.com/sells-group/geotech-cli/internal/project"
)

func TestMergeSettings(t *testing.T) {
	base := testSettings()

	t.Run("blank project settings keep defaults", func(t *testing.T) {
		assert.Equal(t, base, mergeSettings(base, correlate.Settings{}))
	})

	t.Run("project settings win", func(t *testing.T) {
		merged := mergeSettings(base, correlate.Settings{
			CorrectionMethod: correlate.CorrectionTerzaghi,
			StructureType:    "sheet-pile",
		})
		assert.Equal(t, correlate.CorrectionTerzaghi, merged.CorrectionMethod)
		assert.Equal(t, "sheet-pile", merged.StructureType)
		assert.Equal(t, base.Method, merged.Method)
		assert.Equal(t, base.SurfaceType, merged.SurfaceType)
	})
}

func TestMergeBoreholes(t *testing.T) {
	doc := project.New("test", testSettings())
	doc.Boreholes = []model.Borehole{
		{ID: "BH-1", GroundElevation: 10},
	}

	added, replaced := mergeBoreholes(doc, []model.Borehole{
		{ID: "BH-1", GroundElevation: 12},
		{ID: "BH-2"},
	})

	assert.Equal(t, 1, added)
	assert.Equal(t, 1, replaced)
	require.Len(t, doc.Boreholes, 2)
	assert.Equal(t, 12.0, doc.Borehole("BH-1").GroundElevation)
}

func TestFormatRunsList(t *testing.T) {
	now := time.Date(2026, 8, 24, 10, 30, 0, 0, time.UTC)
	runs := []model.Run{
		{
			ID:        "0123456789abcdef",
			Project:   "harbor-quay",
			Status:    model.RunStatusComplete,
			CreatedAt: now,
			Result: &model.RunResult{
				Boreholes: map[string][]model.CalculationResult{"BH-1": {}},
			},
		},
		{
			ID:        "fedcba",
			Project:   "a-project-with-a-very-long-name-indeed",
			Status:    model.RunStatusQueued,
			CreatedAt: now,
		},
	}

	var sb strings.Builder
	formatRunsList(&sb, runs)
	out := sb.String()

	assert.Contains(t, out, "01234567") // truncated id
	assert.NotContains(t, out, "0123456789abcdef")
	assert.Contains(t, out, "complete")
	assert.Contains(t, out, "...") // long project name truncated
	assert.Contains(t, out, "2026-08-24 10:30")
}
