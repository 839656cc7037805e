// Package correlate evaluates the category-conditional SPT correlations for
// one depth point once its effective stress is known.
package correlate

import (
	"math"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/geotech-cli/internal/model"
	"github.com/sells-group/geotech-cli/internal/soil"
)

// Correction methods for the sand blow count.
const (
	CorrectionLiaoWhitman = "liao-whitman"
	CorrectionTerzaghi    = "terzaghi"
)

// Friction angle correlation bounds in degrees. Values outside are clamped
// and a warning recorded.
const (
	PhiMin = 20.0
	PhiMax = 45.0
)

// Atmospheric pressure reference used by the Su correlation, kN/m2.
const pa = 9.81

// Settings selects between the tunable correlation variants. All values are
// validated once at engine construction.
type Settings struct {
	CorrectionMethod string `yaml:"correction_method" mapstructure:"correction_method"`
	StructureType    string `yaml:"structure_type" mapstructure:"structure_type"`
	Method           string `yaml:"method" mapstructure:"method"`
	SurfaceType      string `yaml:"surface_type" mapstructure:"surface_type"`
}

// Engine computes the derived fields for one point. It is stateless across
// points and safe for concurrent use.
type Engine struct {
	tables   *soil.Tables
	settings Settings
}

// NewEngine validates the settings against the tables and returns an engine.
func NewEngine(tables *soil.Tables, settings Settings) (*Engine, error) {
	if settings.CorrectionMethod == "" {
		settings.CorrectionMethod = CorrectionLiaoWhitman
	}
	switch settings.CorrectionMethod {
	case CorrectionLiaoWhitman, CorrectionTerzaghi:
	default:
		return nil, eris.Errorf("correlate: unknown correction method %q", settings.CorrectionMethod)
	}
	if _, ok := tables.ModulusSand[settings.StructureType]; !ok {
		return nil, eris.Errorf("correlate: unknown structure type %q", settings.StructureType)
	}
	switch settings.Method {
	case "driven", "bored":
	default:
		return nil, eris.Errorf("correlate: unknown construction method %q", settings.Method)
	}
	if _, ok := tables.RintSand[settings.SurfaceType]; !ok {
		return nil, eris.Errorf("correlate: unknown surface type %q", settings.SurfaceType)
	}
	return &Engine{tables: tables, settings: settings}, nil
}

// Input is one classified depth point with its accumulated stress. LabSu and
// LabPhi, when set, are operator-authoritative and feed every field derived
// from them.
type Input struct {
	BoreholeID string
	Depth      float64
	USCS       string
	Category   model.Category
	N          int
	SigmaV     float64
	LabSu      *float64
	LabPhi     *float64
}

// Output carries the derived fields for one point. Su is set for clay, Phi
// for sand.
type Output struct {
	CN          float64
	Ncor        float64
	Su          *float64
	SuOverride  bool
	Phi         *float64
	PhiOverride bool
	E           float64
	Nu          float64
	K0          float64
	Rint        float64
	Warnings    []model.ClampWarning
}

// Evaluate computes the correlation fields for one point.
func (e *Engine) Evaluate(in Input) (*Output, error) {
	if in.Category == model.CategoryClay {
		return e.evaluateClay(in), nil
	}
	return e.evaluateSand(in)
}

func (e *Engine) evaluateClay(in Input) *Output {
	out := &Output{
		CN:   1, // no overburden correction for clay
		Ncor: float64(in.N),
		Nu:   0.495,
		K0:   e.tables.K0ClayFor(e.settings.StructureType),
	}

	su := out.Ncor * e.tables.SuFactorFor(in.USCS) * pa
	if in.LabSu != nil {
		su = *in.LabSu
		out.SuOverride = true
	}
	out.Su = &su

	out.E = e.tables.ModulusClay[e.settings.StructureType].Lookup(su) * su

	if e.settings.Method == "driven" {
		out.Rint = e.tables.RintClayDriven.Lookup(su)
	} else {
		out.Rint = e.tables.RintClayBored
	}

	return out
}

func (e *Engine) evaluateSand(in Input) (*Output, error) {
	if in.SigmaV <= 0 {
		return nil, &model.CorrelationError{
			BoreholeID: in.BoreholeID,
			Depth:      in.Depth,
			Reason:     "non-positive effective stress feeding CN",
		}
	}

	out := &Output{
		CN: math.Sqrt(100 / in.SigmaV),
		Nu: 0.333,
	}

	switch e.settings.CorrectionMethod {
	case CorrectionTerzaghi:
		n := float64(in.N)
		if n > 15 {
			out.Ncor = 15 + 0.5*(n-15)
		} else {
			out.Ncor = n
		}
	default:
		out.Ncor = out.CN * float64(in.N)
	}

	phi := 27.1 + 0.3*out.Ncor - 0.00054*out.Ncor*out.Ncor
	if in.LabPhi != nil {
		phi = *in.LabPhi
		out.PhiOverride = true
	}
	if clamped := math.Min(math.Max(phi, PhiMin), PhiMax); clamped != phi {
		w := model.ClampWarning{Depth: in.Depth, Field: "phi", Raw: phi, Clamped: clamped}
		out.Warnings = append(out.Warnings, w)
		zap.L().Warn("correlate: friction angle clamped",
			zap.String("borehole", in.BoreholeID),
			zap.Float64("depth", in.Depth),
			zap.Float64("raw", phi),
			zap.Float64("clamped", clamped),
		)
		phi = clamped
	}
	out.Phi = &phi

	out.E = e.tables.ModulusSand[e.settings.StructureType] * out.Ncor
	out.K0 = 1 - math.Sin(phi*math.Pi/180) // Jaky
	out.Rint = e.tables.RintSand[e.settings.SurfaceType]

	return out, nil
}
