package main

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/geotech-cli/internal/ingest"
	"github.com/sells-group/geotech-cli/internal/model"
	"github.com/sells-group/geotech-cli/internal/project"
)

var (
	importLogPath     string
	importSheet       string
	importProjectPath string
	importName        string
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import borehole logs into a project",
	Long:  "Reads SPT borehole logs from a CSV or XLSX file and merges them into a project file, creating the project if it does not exist.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		boreholes, err := readBoreholes(importLogPath, importSheet)
		if err != nil {
			return err
		}
		if len(boreholes) == 0 {
			return eris.Errorf("import: no boreholes found in %s", importLogPath)
		}

		doc, err := project.Load(importProjectPath)
		if err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				return err
			}
			name := importName
			if name == "" {
				name = strings.TrimSuffix(filepath.Base(importProjectPath), filepath.Ext(importProjectPath))
			}
			doc = project.New(name, cfg.Calc.Settings)
		}

		added, replaced := mergeBoreholes(doc, boreholes)

		// Imported logs invalidate any previous calculation.
		doc.Results = nil

		if err := doc.Save(importProjectPath); err != nil {
			return err
		}

		zap.L().Info("import complete",
			zap.String("source", importLogPath),
			zap.String("project", importProjectPath),
			zap.Int("added", added),
			zap.Int("replaced", replaced),
		)
		return nil
	},
}

func readBoreholes(path, sheet string) ([]model.Borehole, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		f, err := os.Open(path)
		if err != nil {
			return nil, eris.Wrapf(err, "import: open %s", path)
		}
		defer f.Close()
		return ingest.ReadCSV(f)
	case ".xlsx":
		return ingest.ReadXLSX(path, sheet)
	default:
		return nil, eris.Errorf("import: unsupported file type %s", filepath.Ext(path))
	}
}

// mergeBoreholes adds the imported boreholes to the document, replacing any
// existing borehole with the same id.
func mergeBoreholes(doc *project.Document, boreholes []model.Borehole) (added, replaced int) {
	for _, bh := range boreholes {
		if existing := doc.Borehole(bh.ID); existing != nil {
			*existing = bh
			replaced++
			continue
		}
		doc.Boreholes = append(doc.Boreholes, bh)
		added++
	}
	return added, replaced
}

func init() {
	importCmd.Flags().StringVar(&importLogPath, "file", "", "path to CSV or XLSX borehole log (required)")
	importCmd.Flags().StringVar(&importSheet, "sheet", "", "XLSX sheet name (default first sheet)")
	importCmd.Flags().StringVar(&importProjectPath, "project", "", "path to project JSON file (required)")
	importCmd.Flags().StringVar(&importName, "name", "", "project name when creating a new project")
	_ = importCmd.MarkFlagRequired("file")
	_ = importCmd.MarkFlagRequired("project")
	rootCmd.AddCommand(importCmd)
}
