package stress

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStepAboveWater(t *testing.T) {
	next, err := Step(State{}, Layer{Depth: 2, Gamma: 18}, 10)
	require.NoError(t, err)
	assert.InDelta(t, 36.0, next.Sigma, 1e-9) // 18 * 2
	assert.Equal(t, 2.0, next.Depth)
}

func TestStepBelowWater(t *testing.T) {
	prev := State{Depth: 2, Sigma: 36}
	next, err := Step(prev, Layer{Depth: 4, Gamma: 18}, 2)
	require.NoError(t, err)
	// (18 - 9.81) * 2 = 16.38
	assert.InDelta(t, 52.38, next.Sigma, 1e-9)
}

func TestStepStraddlesWaterTable(t *testing.T) {
	// Water table at 2.5 m inside a 1.5-4.0 m increment: 1.0 m dry,
	// 1.5 m submerged.
	prev := State{Depth: 1.5, Sigma: 27}
	next, err := Step(prev, Layer{Depth: 4.0, Gamma: 18}, 2.5)
	require.NoError(t, err)
	want := 27 + 18*1.0 + (18-GammaWater)*1.5
	assert.InDelta(t, want, next.Sigma, 1e-9)
}

func TestStepPondedWater(t *testing.T) {
	// Negative water depth means water above ground: everything submerged.
	next, err := Step(State{}, Layer{Depth: 3, Gamma: 17}, -1.5)
	require.NoError(t, err)
	assert.InDelta(t, (17-GammaWater)*3, next.Sigma, 1e-9)
}

func TestStepNonIncreasingDepth(t *testing.T) {
	_, err := Step(State{Depth: 3, Sigma: 50}, Layer{Depth: 3, Gamma: 18}, 10)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "non-increasing depth")
}

func TestStepDecreasingStressIsFatal(t *testing.T) {
	// A submerged layer lighter than water would shed stress; that is a
	// consistency error, never silently clamped.
	_, err := Step(State{Depth: 1, Sigma: 18}, Layer{Depth: 2, Gamma: 9}, 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "effective stress decreased")
}

func TestFoldIsMonotonic(t *testing.T) {
	layers := []Layer{
		{Depth: 1.5, Gamma: 17},
		{Depth: 3.0, Gamma: 18},
		{Depth: 4.5, Gamma: 18},
		{Depth: 6.0, Gamma: 19},
		{Depth: 7.5, Gamma: 19},
	}
	state := State{}
	prev := 0.0
	for _, l := range layers {
		var err error
		state, err = Step(state, l, 2.5)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, state.Sigma, prev)
		prev = state.Sigma
	}
}
