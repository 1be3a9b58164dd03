package eos

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// syntheticPV evaluates the EOS at evenly spaced volumes.
func syntheticPV(v0, b0, b0p float64, lo, hi float64, n int) ([]float64, []float64) {
	volumes := make([]float64, n)
	pressures := make([]float64, n)
	step := (hi - lo) / float64(n-1)
	for i := range volumes {
		v := lo + float64(i)*step
		volumes[i] = v
		pressures[i] = BirchMurnaghan(v, v0, b0, b0p)
	}
	return volumes, pressures
}

func TestInitialV0(t *testing.T) {
	v0 := InitialV0([]float64{10, 12, 20})
	assert.InDelta(t, 22.0, v0, 1e-12) // max + 0.2*(max-min)
}

func TestFitRecoversSyntheticParams(t *testing.T) {
	volumes, pressures := syntheticPV(20, 50, 4.5, 14, 26, 13)

	params, err := Fit("solid", volumes, pressures)
	require.NoError(t, err)

	assert.InDelta(t, 20.0, params.V0, 0.05)
	assert.InDelta(t, 50.0, params.B0, 0.5)
	assert.InDelta(t, 4.5, params.B0Prime, 0.1)
}

func TestFitLengthMismatch(t *testing.T) {
	_, err := Fit("solid", []float64{1, 2, 3}, []float64{1, 2})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "solid")
}

func TestVolumeRoundTrip(t *testing.T) {
	const target = 0.5

	phases := []struct {
		name        string
		v0, b0, b0p float64
	}{
		{"solid", 20, 50, 4.5},
		{"liquid", 22, 30, 4.0},
	}

	for _, ph := range phases {
		t.Run(ph.name, func(t *testing.T) {
			volumes, pressures := syntheticPV(ph.v0, ph.b0, ph.b0p, 14, 26, 13)

			params, err := Fit(ph.name, volumes, pressures)
			require.NoError(t, err)

			vol, err := VolumeAtPressure(ph.name, params, volumes, target)
			require.NoError(t, err)

			// Plugging the solved volume back into the fitted curve must
			// reproduce the target pressure.
			back := BirchMurnaghan(vol, params.V0, params.B0, params.B0Prime)
			assert.InDelta(t, target, back, 1e-6)
		})
	}
}

func TestVolumeAtPressureNotBracketed(t *testing.T) {
	params := Params{V0: 20, B0: 50, B0Prime: 4.5}
	volumes := []float64{14, 18, 22, 26}

	_, err := VolumeAtPressure("solid", params, volumes, 1e9)
	require.ErrorIs(t, err, ErrRootNotBracketed)
	assert.Contains(t, err.Error(), "solid")
	assert.Contains(t, err.Error(), "1e+09")
}

func TestAnalyzePhase(t *testing.T) {
	volumes, pressures := syntheticPV(20, 50, 4.5, 14, 26, 13)

	res, err := AnalyzePhase("solid", volumes, pressures, 0.5)
	require.NoError(t, err)

	assert.Equal(t, "solid", res.Phase)
	assert.InDelta(t, 0.5, BirchMurnaghan(res.VolumeAtTarget, res.Params.V0, res.Params.B0, res.Params.B0Prime), 1e-6)
	assert.InDelta(t, BulkModulus(res.VolumeAtTarget, res.Params.V0, res.Params.B0, res.Params.B0Prime), res.BulkModulus, 1e-12)
}
