// Package export writes calculation result tables to CSV and XLSX files.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/rotisserie/eris"

	"github.com/sells-group/geotech-cli/internal/model"
)

// resultColumns defines the ordered output columns of a result table.
var resultColumns = []string{
	"Depth (m)",
	"Elevation (m)",
	"USCS",
	"Category",
	"N",
	"Gamma (kN/m3)",
	"SigmaV (kN/m2)",
	"CN",
	"Ncor",
	"Su (kN/m2)",
	"Phi (deg)",
	"E (kN/m2)",
	"Nu",
	"K0",
	"Rint",
	"Consistency",
	"Overrides",
}

// WriteCSV writes one borehole's result table as CSV.
func WriteCSV(w io.Writer, results []model.CalculationResult) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(resultColumns); err != nil {
		return eris.Wrap(err, "export: write csv header")
	}
	for _, r := range results {
		if err := cw.Write(buildRow(r)); err != nil {
			return eris.Wrapf(err, "export: write csv row at %.2f m", r.Depth)
		}
	}
	cw.Flush()
	return eris.Wrap(cw.Error(), "export: flush csv")
}

// buildRow maps a CalculationResult to its output cells. Category-absent
// fields render as "-", matching the report tables engineers expect.
func buildRow(r model.CalculationResult) []string {
	return []string{
		fmt.Sprintf("%.2f", r.Depth),
		fmt.Sprintf("%.2f", r.Elevation),
		r.USCS,
		string(r.Category),
		strconv.Itoa(r.N),
		fmt.Sprintf("%.1f", r.Gamma),
		fmt.Sprintf("%.2f", r.SigmaV),
		fmt.Sprintf("%.3f", r.CN),
		fmt.Sprintf("%.2f", r.Ncor),
		optional(r.Su, 2),
		optional(r.Phi, 2),
		fmt.Sprintf("%.0f", r.E),
		fmt.Sprintf("%.3f", r.Nu),
		fmt.Sprintf("%.3f", r.K0),
		fmt.Sprintf("%.2f", r.Rint),
		r.Consistency,
		overrideFlags(r),
	}
}

func optional(v *float64, decimals int) string {
	if v == nil {
		return "-"
	}
	return strconv.FormatFloat(*v, 'f', decimals, 64)
}

func overrideFlags(r model.CalculationResult) string {
	var flags []byte
	if r.GammaOverride {
		flags = append(flags, 'G')
	}
	if r.SuOverride {
		flags = append(flags, 'S')
	}
	if r.PhiOverride {
		flags = append(flags, 'P')
	}
	if len(flags) == 0 {
		return ""
	}
	return string(flags)
}
