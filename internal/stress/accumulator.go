// Package stress accumulates vertical effective stress down a borehole.
package stress

import "github.com/rotisserie/eris"

// GammaWater is the unit weight of water in kN/m3.
const GammaWater = 9.81

// State is the running accumulation at one depth. The zero value is the
// ground surface: depth 0, stress 0.
type State struct {
	Depth float64 // m below ground
	Sigma float64 // kN/m2
}

// Layer is one increment: the soil between the previous depth and Depth,
// carried at unit weight Gamma.
type Layer struct {
	Depth float64
	Gamma float64 // kN/m3, saturated
}

// Step advances the accumulation by one layer. waterDepth is the water table
// depth below ground; a negative value means ponded water above the surface.
// An increment straddling the water table is split at the table, with the
// bulk unit weight above and the submerged unit weight below.
//
// Step is a pure function of (prev, layer); the fold over a sorted borehole
// is the caller's loop.
func Step(prev State, layer Layer, waterDepth float64) (State, error) {
	thickness := layer.Depth - prev.Depth
	if thickness <= 0 {
		return State{}, eris.Errorf("stress: non-increasing depth %.2f after %.2f", layer.Depth, prev.Depth)
	}

	var dry, submerged float64
	switch {
	case layer.Depth <= waterDepth:
		dry = thickness
	case prev.Depth >= waterDepth:
		submerged = thickness
	default:
		dry = waterDepth - prev.Depth
		submerged = layer.Depth - waterDepth
	}

	delta := layer.Gamma*dry + (layer.Gamma-GammaWater)*submerged
	next := State{Depth: layer.Depth, Sigma: prev.Sigma + delta}
	if next.Sigma < prev.Sigma {
		return State{}, eris.Errorf(
			"stress: effective stress decreased from %.2f to %.2f at %.2f m (gamma %.2f below water weight)",
			prev.Sigma, next.Sigma, layer.Depth, layer.Gamma,
		)
	}
	return next, nil
}
