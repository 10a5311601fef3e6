package calculator

import (
	"math"

	"splinther/model"
)

// Heat transfer engine: Prandtl and Nusselt numbers, heat-transfer
// coefficient and heat-flux diagnostics.

// PrandtlNumber returns Pr = cp·μ/k.
func PrandtlNumber(cp, viscosity, conductivity float64) float64 {
	return cp * viscosity / conductivity
}

// nusseltLaminar is the constant Nusselt number for fully developed
// laminar tube flow.
const nusseltLaminar = 3.66

// dittusBoelter is the turbulent Nusselt correlation for heating,
// Nu = 0.023·Re^0.8·Pr^0.4.
func dittusBoelter(re, pr float64) float64 {
	return 0.023 * math.Pow(re, 0.8) * math.Pow(pr, 0.4)
}

// NusseltNumber returns the Nusselt number for a Reynolds/Prandtl pair.
// The transition region uses the same endpoint interpolation policy as the
// friction factor: linear between the laminar constant and the
// Dittus-Boelter value at Re = 4000.
func NusseltNumber(re, pr float64) float64 {
	switch {
	case re < model.ReLaminarMax:
		return nusseltLaminar
	case re <= model.ReTurbulentMin:
		nuTurb := dittusBoelter(model.ReTurbulentMin, pr)
		frac := (re - model.ReLaminarMax) / (model.ReTurbulentMin - model.ReLaminarMax)
		return nusseltLaminar + (nuTurb-nusseltLaminar)*frac
	default:
		return dittusBoelter(re, pr)
	}
}

// HeatTransferCoefficient returns h = Nu·k/D [W/(m²·K)].
func HeatTransferCoefficient(nusselt, conductivity, diameter float64) float64 {
	return nusselt * conductivity / diameter
}

// WallHeatFlux returns the convective flux h·(T_wall − T_bulk) [W/m²].
// Only meaningful when a wall temperature is supplied.
func WallHeatFlux(h, wallTemp, bulkTemp float64) float64 {
	return h * (wallTemp - bulkTemp)
}

// SurfaceHeatFlux returns the core-average surface flux power/(π·D·H)
// [W/m²], the driving flux for the fuel temperature estimate.
func SurfaceHeatFlux(power, diameter, height float64) float64 {
	return power / (math.Pi * diameter * height)
}
