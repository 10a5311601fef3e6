package calculator

import "splinther/model"

// Thermal hydraulics engine: energy-balance temperatures and the fuel
// temperature estimate. Depends only on the configuration, not on the
// other engines' outputs.

// OutletTemperature returns T_in + Q/(ṁ·cp) [K]. Zero flow with nonzero
// power is physically undefined (infinite temperature rise) and is
// reported as an error instead of an infinity; zero flow with zero power
// leaves the coolant at the inlet temperature.
func OutletTemperature(inletTemp, power, flowRate float64) (float64, error) {
	if flowRate == 0 {
		if power == 0 {
			return inletTemp, nil
		}
		return 0, &model.CalcError{
			Engine:   "thermal_hydraulics",
			Quantity: "outlet_temperature",
			Value:    power,
			Wrapped:  model.ErrUndefinedResult,
		}
	}
	return inletTemp + power/(flowRate*model.SodiumCp), nil
}

// AverageCoolantTemp returns the arithmetic mean of the inlet and outlet
// temperatures. This is the characteristic temperature at which all bulk
// properties are evaluated.
func AverageCoolantTemp(inletTemp, outletTemp float64) float64 {
	return (inletTemp + outletTemp) / 2.0
}

// MaxFuelTemperature estimates the peak fuel temperature as the average
// coolant temperature plus a conduction-resistance offset:
// ΔT = q″/h scaled by an empirical rise factor. The factor is a model
// input, not derived from fuel geometry.
func MaxFuelTemperature(avgCoolantTemp, power, h, height, diameter, riseFactor float64) (float64, error) {
	if h == 0 {
		return 0, &model.CalcError{
			Engine:   "thermal_hydraulics",
			Quantity: "max_fuel_temperature",
			Value:    h,
			Wrapped:  model.ErrUndefinedResult,
		}
	}
	flux := SurfaceHeatFlux(power, diameter, height)
	return avgCoolantTemp + (flux/h)*riseFactor, nil
}
