package calculator

// Pressure drop engine: Darcy-Weisbach friction, elevation head under the
// configured gravity, acceleration from coolant heat-up, form losses and
// pump power.

// FrictionPressureDrop returns the Darcy-Weisbach loss
// f·(L/D)·ρ·V²/2 [Pa] over a flow path of length [m].
func FrictionPressureDrop(frictionFactor, length, diameter, density, velocity float64) float64 {
	return frictionFactor * (length / diameter) * density * velocity * velocity / 2.0
}

// ElevationPressureDrop returns ρ·g·Δh [Pa]. With the space environment
// (g = 0) the term vanishes exactly.
func ElevationPressureDrop(density, gravity, heightChange float64) float64 {
	return density * gravity * heightChange
}

// AccelerationPressureDrop returns ρ·(V₂²−V₁²)/2 [Pa], with the inlet and
// outlet velocities evaluated at the inlet- and outlet-temperature
// densities so coolant heat-up shows up as a (small) acceleration loss.
// Negative values mean a pressure recovery.
func AccelerationPressureDrop(density, v1, v2 float64) float64 {
	return density * (v2*v2 - v1*v1) / 2.0
}

// FormLossPressureDrop returns K·ρ·V²/2 [Pa] for a lumped form-loss
// coefficient K.
func FormLossPressureDrop(k, density, velocity float64) float64 {
	return k * density * velocity * velocity / 2.0
}

// PumpPower returns the ideal-pump power ΔP·Q̇/η [W], with the volumetric
// flow Q̇ = ṁ/ρ. Zero mass flow needs no pumping.
func PumpPower(pressureDrop, flowRate, density, efficiency float64) float64 {
	if flowRate == 0 {
		return 0
	}
	return pressureDrop * (flowRate / density) / efficiency
}
