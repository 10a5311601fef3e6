package calculator

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"splinther/model"
)

func TestFlowArea(t *testing.T) {
	assert.InDelta(t, math.Pi/4*0.25, FlowArea(0.5), 1e-12)
}

func TestFlowVelocity(t *testing.T) {
	density := SodiumDensity(600.0)
	v := FlowVelocity(10.0, density, FlowArea(0.5))
	assert.Greater(t, v, 0.0)
	assert.Less(t, v, 50.0)
}

func TestFlowVelocityZeroFlow(t *testing.T) {
	assert.Zero(t, FlowVelocity(0, SodiumDensity(600.0), FlowArea(0.5)))
}

func TestReynoldsNumber(t *testing.T) {
	density := SodiumDensity(600.0)
	viscosity := SodiumViscosity(600.0)
	v := FlowVelocity(10.0, density, FlowArea(0.5))
	re := ReynoldsNumber(density, v, 0.5, viscosity)
	// Typical reactor conditions are turbulent.
	assert.Greater(t, re, model.ReTurbulentMin)
}

func TestReynoldsNumberZeroVelocity(t *testing.T) {
	assert.Zero(t, ReynoldsNumber(900.0, 0, 0.5, 0.001))
}

func TestClassifyRegime(t *testing.T) {
	cases := []struct {
		re   float64
		want model.FlowRegime
	}{
		{0, model.Laminar},
		{1000, model.Laminar},
		{2299.9, model.Laminar},
		{2300, model.Transition},
		{3000, model.Transition},
		{4000, model.Transition},
		{4000.1, model.Turbulent},
		{50000, model.Turbulent},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, ClassifyRegime(c.re), "Re = %g", c.re)
	}
}

func TestFrictionFactorLaminar(t *testing.T) {
	assert.Equal(t, 64.0/1000.0, FrictionFactor(1000.0))
}

func TestFrictionFactorTurbulent(t *testing.T) {
	want := 0.316 / math.Pow(10000.0, 0.25)
	assert.InDelta(t, want, FrictionFactor(10000.0), 1e-9)
}

func TestFrictionFactorZeroReynolds(t *testing.T) {
	// Degenerate no-flow case is defined, not a division by zero.
	assert.Zero(t, FrictionFactor(0))
}

// The transition interpolation keeps the friction factor continuous at
// both regime boundaries.
func TestFrictionFactorContinuity(t *testing.T) {
	const eps = 1e-6
	for _, re := range []float64{model.ReLaminarMax, model.ReTurbulentMin} {
		below := FrictionFactor(re - eps)
		above := FrictionFactor(re + eps)
		assert.InDelta(t, below, above, 1e-6, "discontinuity at Re = %g", re)
	}
}

func TestFrictionFactorTransitionEndpoints(t *testing.T) {
	assert.InDelta(t, 64.0/2300.0, FrictionFactor(2300.0), 1e-12)
	assert.InDelta(t, 0.316/math.Pow(4000.0, 0.25), FrictionFactor(4000.0), 1e-12)
}
