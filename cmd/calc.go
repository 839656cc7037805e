package main

import (
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/geotech-cli/internal/correlate"
	"github.com/sells-group/geotech-cli/internal/model"
	"github.com/sells-group/geotech-cli/internal/pipeline"
	"github.com/sells-group/geotech-cli/internal/project"
	"github.com/sells-group/geotech-cli/internal/soil"
)

var calcProjectPath string

var calcCmd = &cobra.Command{
	Use:   "calc",
	Short: "Run the parameter calculation for a project",
	Long:  "Loads a project file, runs the calculation pipeline over its boreholes, writes the results back into the project, and records the run in the store.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		doc, err := project.Load(calcProjectPath)
		if err != nil {
			return err
		}

		tables, err := loadTables()
		if err != nil {
			return err
		}

		orch, err := pipeline.New(tables, mergeSettings(cfg.Calc.Settings, doc.Settings))
		if err != nil {
			return err
		}

		st, err := initStore(ctx)
		if err != nil {
			return err
		}
		defer st.Close() //nolint:errcheck

		run, err := st.CreateRun(ctx, doc.Name)
		if err != nil {
			return err
		}
		if err := st.UpdateRunStatus(ctx, run.ID, model.RunStatusRunning); err != nil {
			return err
		}

		result := orch.RunAll(ctx, doc.BoreholePtrs(), doc.OverrideSet(), cfg.Calc.Workers)

		if err := st.UpdateRunResult(ctx, run.ID, result); err != nil {
			return err
		}

		doc.Results = result
		if err := doc.Save(calcProjectPath); err != nil {
			return err
		}

		zap.L().Info("calculation complete",
			zap.String("run", run.ID),
			zap.String("project", doc.Name),
			zap.Int("boreholes", len(result.Boreholes)),
			zap.Int("failed", len(result.Failures)),
		)

		if len(result.Failures) > 0 && len(result.Boreholes) == 0 {
			return eris.New("calc: all boreholes failed")
		}
		return nil
	},
}

// loadTables builds the calibration tables, applying the optional YAML
// overlay from config.
func loadTables() (*soil.Tables, error) {
	if cfg.Calc.TablesPath == "" {
		return soil.Defaults(), nil
	}
	return soil.Load(cfg.Calc.TablesPath)
}

// mergeSettings prefers the settings stored in the project file and falls
// back to the config defaults for anything the project leaves blank.
func mergeSettings(base, s correlate.Settings) correlate.Settings {
	if s.CorrectionMethod != "" {
		base.CorrectionMethod = s.CorrectionMethod
	}
	if s.StructureType != "" {
		base.StructureType = s.StructureType
	}
	if s.Method != "" {
		base.Method = s.Method
	}
	if s.SurfaceType != "" {
		base.SurfaceType = s.SurfaceType
	}
	return base
}

func init() {
	calcCmd.Flags().StringVar(&calcProjectPath, "project", "", "path to project JSON file (required)")
	_ = calcCmd.MarkFlagRequired("project")
	rootCmd.AddCommand(calcCmd)
}
