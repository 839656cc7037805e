package model

import "time"

// CalculationResult is the derived record for one depth point. Su and Phi are
// category-conditional: Su is set for clay, Phi for sand, never both.
type CalculationResult struct {
	Depth     float64  `json:"depth"`
	Elevation float64  `json:"elevation"`
	USCS      string   `json:"uscs"`
	Category  Category `json:"category"`
	N         int      `json:"n"`

	Gamma         float64 `json:"gamma"`          // kN/m3, saturated
	GammaOverride bool    `json:"gamma_override"` // lab value replaced the table estimate

	SigmaV float64 `json:"sigma_v"` // kN/m2, vertical effective stress
	CN     float64 `json:"cn"`
	Ncor   float64 `json:"ncor"`

	Su          *float64 `json:"su,omitempty"` // kN/m2, clay only
	SuOverride  bool     `json:"su_override"`
	Phi         *float64 `json:"phi,omitempty"` // degrees, sand only
	PhiOverride bool     `json:"phi_override"`

	E    float64 `json:"e"` // kN/m2
	Nu   float64 `json:"nu"`
	K0   float64 `json:"k0"`
	Rint float64 `json:"rint"`

	Consistency string         `json:"consistency"`
	Warnings    []ClampWarning `json:"warnings,omitempty"`
}

// RunStatus tracks a stored calculation run through its lifecycle.
type RunStatus string

const (
	RunStatusQueued   RunStatus = "queued"
	RunStatusRunning  RunStatus = "running"
	RunStatusComplete RunStatus = "complete"
	RunStatusFailed   RunStatus = "failed"
)

// RunResult is the outcome of one full calculation run across a project's
// boreholes. Failures are per-borehole; a failed borehole has no entry in
// Boreholes and an explanation in Failures.
type RunResult struct {
	Boreholes map[string][]CalculationResult `json:"boreholes"`
	Failures  map[string]string              `json:"failures,omitempty"`
}

// Run is a stored calculation run.
type Run struct {
	ID        string     `json:"id"`
	Project   string     `json:"project"`
	Status    RunStatus  `json:"status"`
	Result    *RunResult `json:"result,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}
