package model

// LabOverride holds laboratory-measured values for one depth of one borehole.
// A non-nil field marks that parameter as operator-authoritative: it replaces
// the correlated value at that depth.
type LabOverride struct {
	BoreholeID string   `json:"borehole_id" yaml:"borehole_id"`
	Depth      float64  `json:"depth" yaml:"depth"`
	Su         *float64 `json:"su,omitempty" yaml:"su,omitempty"`       // kN/m2
	Phi        *float64 `json:"phi,omitempty" yaml:"phi,omitempty"`     // degrees
	Gamma      *float64 `json:"gamma,omitempty" yaml:"gamma,omitempty"` // kN/m3
}

// Empty reports whether the override carries no values at all.
func (o LabOverride) Empty() bool {
	return o.Su == nil && o.Phi == nil && o.Gamma == nil
}

// OverrideSet indexes lab overrides by borehole and depth.
type OverrideSet map[string]map[int64]LabOverride

// NewOverrideSet builds an indexed set from a flat list. Later entries for
// the same (borehole, depth) replace earlier ones.
func NewOverrideSet(overrides []LabOverride) OverrideSet {
	set := make(OverrideSet)
	for _, o := range overrides {
		if o.Empty() {
			continue
		}
		byDepth, ok := set[o.BoreholeID]
		if !ok {
			byDepth = make(map[int64]LabOverride)
			set[o.BoreholeID] = byDepth
		}
		byDepth[DepthKey(o.Depth)] = o
	}
	return set
}

// For returns the overrides for one borehole, which may be nil.
func (s OverrideSet) For(boreholeID string) map[int64]LabOverride {
	return s[boreholeID]
}
