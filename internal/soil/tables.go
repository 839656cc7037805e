package soil

import (
	"math"
	"os"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"

	"github.com/sells-group/geotech-cli/internal/model"
)

// Unit weight calibration range in kN/m3. Table values outside this range are
// clamped, never extrapolated.
const (
	UnitWeightMin = 15.0
	UnitWeightMax = 20.0
)

// Step is one breakpoint of a piecewise step table: Value applies to inputs
// strictly below Below. The last entry of a table is the catch-all and its
// Below bound is ignored.
type Step struct {
	Below float64 `yaml:"below"`
	Value float64 `yaml:"value"`
}

// StepTable is an ordered piecewise step table. Lookup is interval
// containment, clamped at the extremes.
type StepTable []Step

// Lookup returns the value of the first breakpoint whose bound exceeds x,
// falling through to the last value for inputs at or above every bound.
func (t StepTable) Lookup(x float64) float64 {
	for i := 0; i < len(t)-1; i++ {
		if x < t[i].Below {
			return t[i].Value
		}
	}
	return t[len(t)-1].Value
}

// Point is one control point of a linear interpolation table.
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// InterpTable linearly interpolates between ordered control points and clamps
// to the end values outside the covered range.
type InterpTable []Point

// Lookup interpolates the value at x.
func (t InterpTable) Lookup(x float64) float64 {
	if len(t) == 0 {
		return 0
	}
	if x <= t[0].X {
		return t[0].Y
	}
	last := t[len(t)-1]
	if x >= last.X {
		return last.Y
	}
	for i := 1; i < len(t); i++ {
		if x < t[i].X {
			a, b := t[i-1], t[i]
			frac := (x - a.X) / (b.X - a.X)
			return a.Y + frac*(b.Y-a.Y)
		}
	}
	return last.Y
}

// Band is one threshold of a consistency table: Label applies to strength
// indices strictly below Below, with the last band as catch-all.
type Band struct {
	Below float64 `yaml:"below"`
	Label string  `yaml:"label"`
}

// Tables bundles every calibration table the pipeline reads. Breakpoints are
// data, not logic: engineers recalibrate them through a YAML overlay without
// touching code.
type Tables struct {
	// Saturated unit weight vs. raw N, per category.
	UnitWeightClay StepTable `yaml:"unit_weight_clay"`
	UnitWeightSand StepTable `yaml:"unit_weight_sand"`

	// Su empirical factor per USCS code (Su = Ncor * factor * 9.81), with a
	// fallback for clay codes not listed.
	SuFactor        map[string]float64 `yaml:"su_factor"`
	SuFactorDefault float64            `yaml:"su_factor_default"`

	// Modulus multipliers. Clay: alpha vs. Su band, per structure type.
	// Sand: flat beta per structure type.
	ModulusClay map[string]StepTable `yaml:"modulus_clay"`
	ModulusSand map[string]float64   `yaml:"modulus_sand"`

	// K0 for clay per structure type, with a default band.
	K0Clay        map[string]float64 `yaml:"k0_clay"`
	K0ClayDefault float64            `yaml:"k0_clay_default"`

	// Interface friction. Clay driven piles interpolate on Su; bored piles
	// use a flat ratio. Sand looks up by contact surface.
	RintClayDriven InterpTable        `yaml:"rint_clay_driven"`
	RintClayBored  float64            `yaml:"rint_clay_bored"`
	RintSand       map[string]float64 `yaml:"rint_sand"`

	// Consistency labels: clay banded on Su, sand on Ncor. Lower bounds
	// inclusive, upper bounds exclusive.
	ConsistencyClay []Band `yaml:"consistency_clay"`
	ConsistencySand []Band `yaml:"consistency_sand"`
}

// Defaults returns the built-in calibration.
func Defaults() *Tables {
	return &Tables{
		UnitWeightClay: StepTable{
			{Below: 2, Value: 15},
			{Below: 4, Value: 16},
			{Below: 8, Value: 17},
			{Below: 15, Value: 18},
			{Below: 30, Value: 19},
			{Value: 20},
		},
		UnitWeightSand: StepTable{
			{Below: 4, Value: 16},
			{Below: 10, Value: 17},
			{Below: 20, Value: 18},
			{Below: 30, Value: 19},
			{Value: 20},
		},

		SuFactor: map[string]float64{
			"CH": 0.6739,
			"CL": 0.5077,
		},
		SuFactorDefault: 0.4587,

		ModulusClay: map[string]StepTable{
			"sheet-pile":      {{Below: 2.5, Value: 150}, {Below: 5, Value: 300}, {Value: 500}},
			"earth-retaining": {{Below: 2.5, Value: 250}, {Below: 5, Value: 350}, {Value: 500}},
			"diaphragm-wall":  {{Below: 2.5, Value: 500}, {Below: 5, Value: 750}, {Value: 1000}},
		},
		ModulusSand: map[string]float64{
			"sheet-pile":      0,
			"earth-retaining": 1000,
			"diaphragm-wall":  2000,
		},

		K0Clay:        map[string]float64{"sheet-pile": 0.65},
		K0ClayDefault: 0.80,

		RintClayDriven: InterpTable{
			{X: 2.5, Y: 1.0},
			{X: 7.5, Y: 0.5},
		},
		RintClayBored: 0.45,
		RintSand: map[string]float64{
			"rough-concrete":  1.0,
			"smooth-concrete": 0.8,
			"rough-steel":     0.7,
			"smooth-steel":    0.5,
			"timber":          0.8,
		},

		ConsistencyClay: []Band{
			{Below: 12, Label: "Soft"},
			{Below: 25, Label: "Medium"},
			{Below: 50, Label: "Stiff"},
			{Below: 100, Label: "Very Stiff"},
			{Label: "Hard"},
		},
		ConsistencySand: []Band{
			{Below: 4, Label: "Very Loose"},
			{Below: 10, Label: "Loose"},
			{Below: 30, Label: "Medium Dense"},
			{Below: 50, Label: "Dense"},
			{Label: "Very Dense"},
		},
	}
}

// Load returns the defaults overlaid with the YAML calibration file at path.
// An empty path returns the defaults unchanged.
func Load(path string) (*Tables, error) {
	t := Defaults()
	if path == "" {
		return t, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "soil: read tables %s", path)
	}
	if err := yaml.Unmarshal(raw, t); err != nil {
		return nil, eris.Wrapf(err, "soil: parse tables %s", path)
	}
	return t, nil
}

// UnitWeight estimates the saturated unit weight for a blow count and
// category, clamped into the calibration range. The raw table value is
// returned alongside so callers can record a clamp warning when they differ.
func (t *Tables) UnitWeight(n int, cat model.Category) (gamma, raw float64) {
	var table StepTable
	if cat == model.CategoryClay {
		table = t.UnitWeightClay
	} else {
		table = t.UnitWeightSand
	}
	raw = table.Lookup(float64(n))
	gamma = math.Min(math.Max(raw, UnitWeightMin), UnitWeightMax)
	return gamma, raw
}

// SuFactorFor returns the empirical Su factor for a USCS code.
func (t *Tables) SuFactorFor(code string) float64 {
	if f, ok := t.SuFactor[code]; ok {
		return f
	}
	return t.SuFactorDefault
}

// K0ClayFor returns the at-rest earth pressure constant for a clay layer
// under the given structure type.
func (t *Tables) K0ClayFor(structureType string) float64 {
	if k, ok := t.K0Clay[structureType]; ok {
		return k
	}
	return t.K0ClayDefault
}

// Consistency labels a point from its strength index: Su for clay, Ncor for
// sand.
func (t *Tables) Consistency(cat model.Category, strength float64) string {
	bands := t.ConsistencySand
	if cat == model.CategoryClay {
		bands = t.ConsistencyClay
	}
	for i := 0; i < len(bands)-1; i++ {
		if strength < bands[i].Below {
			return bands[i].Label
		}
	}
	return bands[len(bands)-1].Label
}
