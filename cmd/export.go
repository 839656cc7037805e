package main

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/geotech-cli/internal/export"
	"github.com/sells-group/geotech-cli/internal/project"
)

var (
	exportProjectPath string
	exportOutPath     string
	exportBorehole    string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export calculation results to CSV or XLSX",
	Long:  "Writes the result tables of a calculated project to a CSV file (one borehole) or an XLSX workbook (one sheet per borehole).",
	RunE: func(cmd *cobra.Command, _ []string) error {
		doc, err := project.Load(exportProjectPath)
		if err != nil {
			return err
		}
		if doc.Results == nil || len(doc.Results.Boreholes) == 0 {
			return eris.Errorf("export: project %s has no results, run calc first", exportProjectPath)
		}

		switch strings.ToLower(filepath.Ext(exportOutPath)) {
		case ".csv":
			err = exportCSV(doc, exportOutPath, exportBorehole)
		case ".xlsx":
			err = export.WriteXLSX(exportOutPath, doc.Results)
		default:
			return eris.Errorf("export: unsupported file type %s", filepath.Ext(exportOutPath))
		}
		if err != nil {
			return err
		}

		zap.L().Info("export complete",
			zap.String("project", exportProjectPath),
			zap.String("out", exportOutPath),
			zap.Int("boreholes", len(doc.Results.Boreholes)),
		)
		return nil
	},
}

// exportCSV writes one borehole's results. With a single calculated borehole
// the flag may be omitted.
func exportCSV(doc *project.Document, path, boreholeID string) error {
	if boreholeID == "" {
		if len(doc.Results.Boreholes) > 1 {
			ids := make([]string, 0, len(doc.Results.Boreholes))
			for id := range doc.Results.Boreholes {
				ids = append(ids, id)
			}
			sort.Strings(ids)
			return eris.Errorf("export: project has %d boreholes, pick one with --borehole (%s)", len(ids), strings.Join(ids, ", "))
		}
		for id := range doc.Results.Boreholes {
			boreholeID = id
		}
	}

	results, ok := doc.Results.Boreholes[boreholeID]
	if !ok {
		return eris.Errorf("export: no results for borehole %s", boreholeID)
	}

	f, err := os.Create(path)
	if err != nil {
		return eris.Wrapf(err, "export: create %s", path)
	}
	defer f.Close()

	return export.WriteCSV(f, results)
}

func init() {
	exportCmd.Flags().StringVar(&exportProjectPath, "project", "", "path to project JSON file (required)")
	exportCmd.Flags().StringVar(&exportOutPath, "out", "", "output path, .csv or .xlsx (required)")
	exportCmd.Flags().StringVar(&exportBorehole, "borehole", "", "borehole id for CSV export")
	_ = exportCmd.MarkFlagRequired("project")
	_ = exportCmd.MarkFlagRequired("out")
	rootCmd.AddCommand(exportCmd)
}
