package model

import "fmt"

// ValidationError reports a structurally invalid borehole log: non-monotonic
// or non-positive depths, negative blow counts, or missing fields. Fatal for
// the borehole it names.
type ValidationError struct {
	BoreholeID string
	Depth      float64
	Reason     string
}

func (e *ValidationError) Error() string {
	if e.Depth != 0 {
		return fmt.Sprintf("validation: borehole %s at %.2f m: %s", e.BoreholeID, e.Depth, e.Reason)
	}
	return fmt.Sprintf("validation: borehole %s: %s", e.BoreholeID, e.Reason)
}

// ClassificationError reports an unrecognized USCS code. Fatal for the
// borehole; there is no silent default category.
type ClassificationError struct {
	BoreholeID string
	Depth      float64
	Code       string
}

func (e *ClassificationError) Error() string {
	return fmt.Sprintf("classification: borehole %s at %.2f m: unknown USCS code %q", e.BoreholeID, e.Depth, e.Code)
}

// CorrelationError reports a formula domain violation, such as a
// non-positive effective stress feeding the CN correction. Fatal for the
// borehole; the pipeline never emits NaN or Inf instead.
type CorrelationError struct {
	BoreholeID string
	Depth      float64
	Reason     string
}

func (e *CorrelationError) Error() string {
	return fmt.Sprintf("correlation: borehole %s at %.2f m: %s", e.BoreholeID, e.Depth, e.Reason)
}

// ClampWarning records that a computed value hit a table or formula bound.
// Non-fatal: it is carried on the result so correlation limits being exceeded
// stay visible to the engineer.
type ClampWarning struct {
	Depth   float64 `json:"depth"`
	Field   string  `json:"field"`
	Raw     float64 `json:"raw"`
	Clamped float64 `json:"clamped"`
}

func (w ClampWarning) String() string {
	return fmt.Sprintf("%s clamped from %.3f to %.3f at %.2f m", w.Field, w.Raw, w.Clamped, w.Depth)
}
