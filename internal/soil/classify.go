// Package soil holds the USCS classifier and the calibration lookup tables
// the correlation engine reads from.
package soil

import (
	"strings"

	"github.com/sells-group/geotech-cli/internal/model"
)

// categoryByCode maps USCS group symbols to their pipeline category.
// Fine-grained soils and organics behave as clay for correlation purposes;
// coarse-grained soils behave as sand.
var categoryByCode = map[string]model.Category{
	"CH": model.CategoryClay,
	"CL": model.CategoryClay,
	"CI": model.CategoryClay,
	"MH": model.CategoryClay,
	"ML": model.CategoryClay,
	"OL": model.CategoryClay,
	"OH": model.CategoryClay,
	"PT": model.CategoryClay,

	"SM": model.CategorySand,
	"SC": model.CategorySand,
	"SP": model.CategorySand,
	"SW": model.CategorySand,
	"GP": model.CategorySand,
	"GW": model.CategorySand,
	"GC": model.CategorySand,
	"GM": model.CategorySand,
}

// Classify maps a USCS code to its soil category. Dual symbols such as
// "SP-SM" resolve by their primary symbol. The second return is false for
// codes outside the recognized set; callers must treat that as fatal.
func Classify(code string) (model.Category, bool) {
	c := strings.ToUpper(strings.TrimSpace(code))
	if cat, ok := categoryByCode[c]; ok {
		return cat, true
	}
	if i := strings.IndexByte(c, '-'); i > 0 {
		if cat, ok := categoryByCode[c[:i]]; ok {
			return cat, true
		}
	}
	return "", false
}
