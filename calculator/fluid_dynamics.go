package calculator

import (
	"math"

	"splinther/model"
)

// Fluid dynamics engine: velocity, Reynolds number, regime classification
// and friction factor.

// FlowArea returns the circular cross-sectional flow area [m²].
func FlowArea(diameter float64) float64 {
	return math.Pi * diameter * diameter / 4.0
}

// FlowVelocity returns the bulk coolant velocity [m/s]. Zero flow is an
// explicit zero, not a division artifact.
func FlowVelocity(flowRate, density, area float64) float64 {
	if flowRate == 0 {
		return 0
	}
	return flowRate / (density * area)
}

// ReynoldsNumber returns Re = ρ·V·D/μ. Zero velocity gives Re = 0.
func ReynoldsNumber(density, velocity, diameter, viscosity float64) float64 {
	if velocity == 0 {
		return 0
	}
	return density * velocity * diameter / viscosity
}

// ClassifyRegime maps a Reynolds number onto a flow regime using the fixed
// 2300 / 4000 thresholds.
func ClassifyRegime(re float64) model.FlowRegime {
	switch {
	case re < model.ReLaminarMax:
		return model.Laminar
	case re <= model.ReTurbulentMin:
		return model.Transition
	default:
		return model.Turbulent
	}
}

// blasius is the turbulent Darcy friction factor, f = 0.316·Re^-0.25.
func blasius(re float64) float64 {
	return 0.316 / math.Pow(re, 0.25)
}

// FrictionFactor returns the Darcy friction factor for a Reynolds number.
// Laminar flow uses 64/Re, turbulent flow the Blasius correlation, and the
// transition region interpolates linearly between the laminar value at
// Re = 2300 and the Blasius value at Re = 4000 so the factor stays
// continuous across both regime boundaries. The degenerate no-flow case
// (Re = 0) is defined as f = 0.
func FrictionFactor(re float64) float64 {
	switch {
	case re == 0:
		return 0
	case re < model.ReLaminarMax:
		return 64.0 / re
	case re <= model.ReTurbulentMin:
		fLam := 64.0 / model.ReLaminarMax
		fTurb := blasius(model.ReTurbulentMin)
		frac := (re - model.ReLaminarMax) / (model.ReTurbulentMin - model.ReLaminarMax)
		return fLam + (fTurb-fLam)*frac
	default:
		return blasius(re)
	}
}
