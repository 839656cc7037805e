// Package project reads and writes the versioned JSON project file that
// carries boreholes, lab overrides, calculation settings, and the last
// computed results.
package project

import (
	"encoding/json"
	"os"
	"time"

	"github.com/rotisserie/eris"

	"github.com/sells-group/geotech-cli/internal/correlate"
	"github.com/sells-group/geotech-cli/internal/model"
)

// SchemaVersion is the current project file schema. Load rejects files with
// a different version instead of guessing at their layout.
const SchemaVersion = 1

// Document is one project: raw inputs plus, after a calculation, the result
// tables. Results are always rewritten wholesale; they are never patched in
// place.
type Document struct {
	SchemaVersion int                 `json:"schema_version"`
	Name          string              `json:"name"`
	Settings      correlate.Settings  `json:"settings"`
	Boreholes     []model.Borehole    `json:"boreholes"`
	Overrides     []model.LabOverride `json:"overrides,omitempty"`
	Results       *model.RunResult    `json:"results,omitempty"`
	SavedAt       time.Time           `json:"saved_at,omitempty"`
}

// New creates an empty document with the current schema version.
func New(name string, settings correlate.Settings) *Document {
	return &Document{
		SchemaVersion: SchemaVersion,
		Name:          name,
		Settings:      settings,
	}
}

// Load reads a project file.
func Load(path string) (*Document, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "project: read %s", path)
	}

	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, eris.Wrapf(err, "project: parse %s", path)
	}
	if doc.SchemaVersion != SchemaVersion {
		return nil, eris.Errorf("project: %s has schema version %d, want %d", path, doc.SchemaVersion, SchemaVersion)
	}
	return &doc, nil
}

// Save writes the document to path, stamping SavedAt.
func (d *Document) Save(path string) error {
	d.SchemaVersion = SchemaVersion
	d.SavedAt = time.Now().UTC()

	raw, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return eris.Wrap(err, "project: marshal")
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return eris.Wrapf(err, "project: write %s", path)
	}
	return nil
}

// BoreholePtrs returns the boreholes as pointers for the pipeline runner.
func (d *Document) BoreholePtrs() []*model.Borehole {
	ptrs := make([]*model.Borehole, len(d.Boreholes))
	for i := range d.Boreholes {
		ptrs[i] = &d.Boreholes[i]
	}
	return ptrs
}

// OverrideSet indexes the document's lab overrides.
func (d *Document) OverrideSet() model.OverrideSet {
	return model.NewOverrideSet(d.Overrides)
}

// Borehole returns the borehole with the given id, or nil.
func (d *Document) Borehole(id string) *model.Borehole {
	for i := range d.Boreholes {
		if d.Boreholes[i].ID == id {
			return &d.Boreholes[i]
		}
	}
	return nil
}
