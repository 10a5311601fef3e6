package calculator

import (
	"fmt"
	"math"

	"splinther/model"
)

// Temperature-dependent properties of liquid sodium. The correlations are
// defined in Celsius and shifted internally; all public temperatures are
// Kelvin.

// SodiumDensity returns coolant density [kg/m³] at temperature t [K].
func SodiumDensity(t float64) float64 {
	return model.SodiumDensityRef - model.SodiumDensitySlope*(t-model.KelvinOffset)
}

// SodiumViscosity returns dynamic viscosity [Pa·s] at temperature t [K].
func SodiumViscosity(t float64) float64 {
	tc := t - model.KelvinOffset
	return model.SodiumViscosityBase * math.Exp(model.SodiumViscosityTempCoef*tc+1.0)
}

// SodiumConductivity returns thermal conductivity [W/(m·K)] at temperature
// t [K].
func SodiumConductivity(t float64) float64 {
	return model.SodiumConductivityRef - model.SodiumConductivitySlope*(t-model.KelvinOffset)
}

// sodiumProperties bundles the property set evaluated at one temperature.
// Recomputed on every call, never cached.
type sodiumProperties struct {
	Density      float64 // kg/m³
	Viscosity    float64 // Pa·s
	Conductivity float64 // W/(m·K)
	Cp           float64 // J/(kg·K)
}

// checkLiquidRange flags an evaluation temperature outside the sodium
// liquid range. In strict mode the flag is an error; in permissive mode it
// is a warning string and the evaluation proceeds.
func checkLiquidRange(t float64, mode model.Mode) (string, error) {
	if t >= model.SodiumLiquidMin && t <= model.SodiumLiquidMax {
		return "", nil
	}
	if mode == model.Strict {
		return "", &model.CalcError{
			Engine:   "properties",
			Quantity: "evaluation_temperature",
			Value:    t,
			Wrapped:  model.ErrOutOfRangeProperty,
		}
	}
	return fmt.Sprintf("properties: evaluation temperature %.2f K outside sodium liquid range [%.0f K, %.0f K]",
		t, model.SodiumLiquidMin, model.SodiumLiquidMax), nil
}

// evalSodium evaluates the full property set at t, applying the range
// policy for the given mode.
func evalSodium(t float64, mode model.Mode) (sodiumProperties, string, error) {
	warn, err := checkLiquidRange(t, mode)
	if err != nil {
		return sodiumProperties{}, "", err
	}
	return sodiumProperties{
		Density:      SodiumDensity(t),
		Viscosity:    SodiumViscosity(t),
		Conductivity: SodiumConductivity(t),
		Cp:           model.SodiumCp,
	}, warn, nil
}
