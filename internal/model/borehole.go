// Package model defines the borehole domain types shared across the pipeline.
package model

import "math"

// Category is the two-valued soil classification every depth point resolves
// to before any correlation runs. It never changes after classification.
type Category string

const (
	CategoryClay Category = "Clay"
	CategorySand Category = "Sand"
)

// DepthPoint is one SPT reading from a field log. Immutable once read.
type DepthPoint struct {
	Depth float64 `json:"depth" yaml:"depth"` // m below ground surface
	N     int     `json:"n" yaml:"n"`         // raw SPT blow count
	USCS  string  `json:"uscs" yaml:"uscs"`   // USCS classification code
}

// Borehole is one SPT log: identity, datum, water table, and the ordered
// sequence of depth points.
type Borehole struct {
	ID              string       `json:"id" yaml:"id"`
	GroundElevation float64      `json:"ground_elevation" yaml:"ground_elevation"` // m MSL
	WaterDepth      float64      `json:"water_depth" yaml:"water_depth"`           // m below ground; negative means ponded above ground
	Points          []DepthPoint `json:"points" yaml:"points"`
}

// WaterElevation returns the water table elevation in m MSL.
func (b *Borehole) WaterElevation() float64 {
	return b.GroundElevation - b.WaterDepth
}

// Validate checks the structural invariants of a borehole log: at least one
// point, strictly increasing non-negative depths, and non-negative blow counts.
func (b *Borehole) Validate() error {
	if b.ID == "" {
		return &ValidationError{Reason: "borehole id is empty"}
	}
	if len(b.Points) == 0 {
		return &ValidationError{BoreholeID: b.ID, Reason: "no depth points"}
	}
	prev := 0.0
	for i, p := range b.Points {
		if p.Depth <= 0 {
			return &ValidationError{BoreholeID: b.ID, Depth: p.Depth, Reason: "depth must be positive"}
		}
		if i > 0 && p.Depth <= prev {
			return &ValidationError{BoreholeID: b.ID, Depth: p.Depth, Reason: "depths must be strictly increasing"}
		}
		if p.N < 0 {
			return &ValidationError{BoreholeID: b.ID, Depth: p.Depth, Reason: "negative SPT N-value"}
		}
		prev = p.Depth
	}
	return nil
}

// DepthKey maps a depth to an integer millimetre key so that override lookup
// does not depend on float equality across input formats.
func DepthKey(depth float64) int64 {
	return int64(math.Round(depth * 1000))
}
