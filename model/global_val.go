package model

import "strings"

// Physical constants and correlation coefficients for liquid sodium.
// Reference: Fink, J.K., Leibowitz, L. (1995), "Thermodynamic and Transport
// Properties of Sodium Liquid and Vapor".
const (
	KelvinOffset = 273.15

	SodiumCp = 1270.0 // specific heat [J/(kg·K)], treated as constant

	SodiumDensityRef   = 1014.0 // density correlation intercept [kg/m³]
	SodiumDensitySlope = 0.235  // density correlation slope [kg/(m³·K)]

	SodiumViscosityBase     = 0.001    // base viscosity [Pa·s]
	SodiumViscosityTempCoef = -2.45e-4 // viscosity exponent coefficient [1/K]

	SodiumConductivityRef   = 86.0  // conductivity correlation intercept [W/(m·K)]
	SodiumConductivitySlope = 0.047 // conductivity correlation slope [W/(m·K²)]

	// Valid liquid range of the correlations above. Evaluations outside it
	// are flagged, never silently clamped.
	SodiumLiquidMin = 371.0  // melting point [K]
	SodiumLiquidMax = 1255.0 // boiling point at 1 atm [K]
)

// Flow regime thresholds on Reynolds number.
const (
	ReLaminarMax   = 2300.0
	ReTurbulentMin = 4000.0
)

// Gravitational acceleration per environment [m/s²].
const (
	GravityEarth = 9.81
	GravityMoon  = 1.62
	GravityMars  = 3.71
	GravitySpace = 0.0
)

// Gravity returns the gravitational acceleration for an environment
// selector. Matching is case-insensitive; unknown selectors fall back to
// Earth (the validator rejects them before the pipeline runs).
func Gravity(env string) float64 {
	switch strings.ToLower(env) {
	case "moon", "lunar":
		return GravityMoon
	case "mars":
		return GravityMars
	case "space", "microgravity":
		return GravitySpace
	default:
		return GravityEarth
	}
}

// KnownGravityEnv reports whether env names a supported environment.
// The empty selector is allowed and means Earth.
func KnownGravityEnv(env string) bool {
	switch strings.ToLower(env) {
	case "", "earth", "moon", "lunar", "mars", "space", "microgravity":
		return true
	}
	return false
}
