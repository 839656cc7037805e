package pipeline

import (
	"context"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/sells-group/geotech-cli/internal/model"
)

// RunAll evaluates boreholes independently with at most workers goroutines.
// Boreholes share no mutable state, so one failing never aborts its siblings;
// per-borehole errors land in RunResult.Failures instead of stopping the run.
func (o *Orchestrator) RunAll(ctx context.Context, boreholes []*model.Borehole, overrides model.OverrideSet, workers int) *model.RunResult {
	if workers <= 0 {
		workers = 4
	}

	result := &model.RunResult{
		Boreholes: make(map[string][]model.CalculationResult, len(boreholes)),
		Failures:  make(map[string]string),
	}
	var mu sync.Mutex

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for _, bh := range boreholes {
		if ctx.Err() != nil {
			break
		}
		g.Go(func() error {
			results, err := o.Run(bh, overrides.For(bh.ID))

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				zap.L().Error("pipeline: borehole failed",
					zap.String("borehole", bh.ID),
					zap.Error(err),
				)
				result.Failures[bh.ID] = err.Error()
				return nil
			}
			result.Boreholes[bh.ID] = results
			return nil
		})
	}

	_ = g.Wait() // worker funcs never return an error; failures are per-borehole

	if len(result.Failures) == 0 {
		result.Failures = nil
	}

	zap.L().Info("pipeline: run complete",
		zap.Int("boreholes", len(result.Boreholes)),
		zap.Int("failed", len(result.Failures)),
	)

	return result
}
