// Package pipeline orchestrates the per-borehole parameter calculation:
// validation, classification, unit weight, effective stress, correlation,
// lab overrides, and consistency labeling.
package pipeline

import (
	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/geotech-cli/internal/correlate"
	"github.com/sells-group/geotech-cli/internal/model"
	"github.com/sells-group/geotech-cli/internal/soil"
	"github.com/sells-group/geotech-cli/internal/stress"
)

// Orchestrator runs the calculation pipeline. It holds only read-only state
// and is safe for concurrent use across boreholes.
type Orchestrator struct {
	tables *soil.Tables
	engine *correlate.Engine
}

// New builds an orchestrator from calibration tables and settings.
func New(tables *soil.Tables, settings correlate.Settings) (*Orchestrator, error) {
	engine, err := correlate.NewEngine(tables, settings)
	if err != nil {
		return nil, err
	}
	return &Orchestrator{tables: tables, engine: engine}, nil
}

// Run calculates the full result table for one borehole. Failure is atomic:
// any error returns no results for this borehole. Lab overrides are applied
// where the pipeline consumes the overridden value, so a gamma override
// cascades into effective stress and everything downstream of it.
func (o *Orchestrator) Run(bh *model.Borehole, overrides map[int64]model.LabOverride) ([]model.CalculationResult, error) {
	if err := bh.Validate(); err != nil {
		return nil, err
	}

	// Classification resolves every point to exactly one category before any
	// correlation runs; an unknown code aborts the whole borehole.
	categories := make([]model.Category, len(bh.Points))
	for i, p := range bh.Points {
		cat, ok := soil.Classify(p.USCS)
		if !ok {
			return nil, &model.ClassificationError{BoreholeID: bh.ID, Depth: p.Depth, Code: p.USCS}
		}
		categories[i] = cat
	}

	results := make([]model.CalculationResult, len(bh.Points))
	state := stress.State{}

	for i, p := range bh.Points {
		r := model.CalculationResult{
			Depth:     p.Depth,
			Elevation: bh.GroundElevation - p.Depth,
			USCS:      p.USCS,
			Category:  categories[i],
			N:         p.N,
		}

		gamma, rawGamma := o.tables.UnitWeight(p.N, r.Category)
		if gamma != rawGamma {
			w := model.ClampWarning{Depth: p.Depth, Field: "gamma", Raw: rawGamma, Clamped: gamma}
			r.Warnings = append(r.Warnings, w)
			zap.L().Warn("pipeline: unit weight clamped",
				zap.String("borehole", bh.ID),
				zap.Float64("depth", p.Depth),
				zap.Float64("raw", rawGamma),
				zap.Float64("clamped", gamma),
			)
		}

		var labSu, labPhi *float64
		if ov, ok := overrides[model.DepthKey(p.Depth)]; ok {
			if ov.Gamma != nil {
				gamma = *ov.Gamma
				r.GammaOverride = true
			}
			labSu = ov.Su
			labPhi = ov.Phi
		}
		r.Gamma = gamma

		next, err := stress.Step(state, stress.Layer{Depth: p.Depth, Gamma: gamma}, bh.WaterDepth)
		if err != nil {
			return nil, eris.Wrapf(err, "pipeline: borehole %s", bh.ID)
		}
		state = next
		r.SigmaV = state.Sigma

		out, err := o.engine.Evaluate(correlate.Input{
			BoreholeID: bh.ID,
			Depth:      p.Depth,
			USCS:       p.USCS,
			Category:   r.Category,
			N:          p.N,
			SigmaV:     r.SigmaV,
			LabSu:      labSu,
			LabPhi:     labPhi,
		})
		if err != nil {
			return nil, err
		}

		r.CN = out.CN
		r.Ncor = out.Ncor
		r.Su = out.Su
		r.SuOverride = out.SuOverride
		r.Phi = out.Phi
		r.PhiOverride = out.PhiOverride
		r.E = out.E
		r.Nu = out.Nu
		r.K0 = out.K0
		r.Rint = out.Rint
		r.Warnings = append(r.Warnings, out.Warnings...)

		// Consistency labels run last so lab strengths take precedence.
		if r.Category == model.CategoryClay {
			r.Consistency = o.tables.Consistency(r.Category, *r.Su)
		} else {
			r.Consistency = o.tables.Consistency(r.Category, r.Ncor)
		}

		results[i] = r
	}

	return results, nil
}
