package calculator

import (
	log "github.com/sirupsen/logrus"

	"splinther/model"
)

// Calculator runs the steady-state analysis for one reactor configuration.
//
// The pipeline is pure: it holds no state beyond the configuration it was
// given and touches nothing shared, so independent Calculators may run
// concurrently without synchronization (see Sweep).
type Calculator interface {
	// Config returns the configuration the calculator was built with.
	Config() model.ReactorConfig

	// Calculate runs the full pipeline and returns the result set, or the
	// first error encountered. No partial results are returned.
	Calculate() (model.Results, error)
}

type reactorCalculator struct {
	cfg  model.ReactorConfig
	mode model.Mode
}

// NewCalculator builds a calculator for one configuration. Optional model
// inputs left at zero are filled from the active settings.
func NewCalculator(cfg model.ReactorConfig, mode model.Mode) Calculator {
	if cfg.PumpEfficiency == 0 {
		cfg.PumpEfficiency = calSettings.PumpEfficiency
	}
	if cfg.FuelTempRiseFactor == 0 {
		cfg.FuelTempRiseFactor = calSettings.FuelTempRiseFactor
	}
	if cfg.FormLossK == 0 {
		cfg.FormLossK = calSettings.FormLossK
	}
	return &reactorCalculator{cfg: cfg, mode: mode}
}

func (r *reactorCalculator) Config() model.ReactorConfig {
	return r.cfg
}

func invalidConfig(field string, value float64) error {
	return &model.CalcError{
		Engine:   "configuration",
		Quantity: field,
		Value:    value,
		Wrapped:  model.ErrInvalidConfiguration,
	}
}

// validate re-checks the core invariants even when an external validator
// already ran.
func (r *reactorCalculator) validate() error {
	cfg := r.cfg
	switch {
	case cfg.CoolantInletTemp <= 0:
		return invalidConfig("coolant_inlet_temp", cfg.CoolantInletTemp)
	case cfg.CoolantFlowRate < 0:
		return invalidConfig("coolant_flow_rate", cfg.CoolantFlowRate)
	case cfg.ReactorPower < 0:
		return invalidConfig("reactor_power", cfg.ReactorPower)
	case cfg.CoreHeight <= 0:
		return invalidConfig("core_height", cfg.CoreHeight)
	case cfg.CoreDiameter <= 0:
		return invalidConfig("core_diameter", cfg.CoreDiameter)
	case cfg.Pressure <= 0:
		return invalidConfig("pressure", cfg.Pressure)
	case cfg.PumpEfficiency <= 0 || cfg.PumpEfficiency > 1:
		return invalidConfig("pump_efficiency", cfg.PumpEfficiency)
	case cfg.FormLossK < 0:
		return invalidConfig("form_loss_k", cfg.FormLossK)
	case cfg.FuelTempRiseFactor <= 0:
		return invalidConfig("fuel_temp_rise_factor", cfg.FuelTempRiseFactor)
	case cfg.WallTemp < 0:
		return invalidConfig("wall_temp", cfg.WallTemp)
	}
	return nil
}

func (r *reactorCalculator) Calculate() (model.Results, error) {
	cfg := r.cfg
	var warnings []string

	// 1. Configuration invariants before any correlation is touched.
	if err := r.validate(); err != nil {
		return model.Results{}, err
	}

	// 2. Energy balance: outlet and average coolant temperatures.
	outletTemp, err := OutletTemperature(cfg.CoolantInletTemp, cfg.ReactorPower, cfg.CoolantFlowRate)
	if err != nil {
		return model.Results{}, err
	}
	avgTemp := AverageCoolantTemp(cfg.CoolantInletTemp, outletTemp)

	// 3. Bulk properties at the average coolant temperature.
	props, warn, err := evalSodium(avgTemp, r.mode)
	if err != nil {
		return model.Results{}, err
	}
	if warn != "" {
		warnings = append(warnings, warn)
	}

	// 4. Fluid dynamics.
	area := FlowArea(cfg.CoreDiameter)
	velocity := FlowVelocity(cfg.CoolantFlowRate, props.Density, area)
	reynolds := ReynoldsNumber(props.Density, velocity, cfg.CoreDiameter, props.Viscosity)
	regime := ClassifyRegime(reynolds)
	frictionFactor := FrictionFactor(reynolds)

	// 5. Heat transfer.
	prandtl := PrandtlNumber(props.Cp, props.Viscosity, props.Conductivity)
	nusselt := NusseltNumber(reynolds, prandtl)
	htc := HeatTransferCoefficient(nusselt, props.Conductivity, cfg.CoreDiameter)
	var wallFlux float64
	if cfg.WallTemp > 0 {
		wallFlux = WallHeatFlux(htc, cfg.WallTemp, avgTemp)
	}

	// 6. Pressure drop components and pump power. Inlet/outlet densities
	// feed the acceleration term; their evaluation temperatures are range
	// checked like any other.
	inProps, warn, err := evalSodium(cfg.CoolantInletTemp, r.mode)
	if err != nil {
		return model.Results{}, err
	}
	if warn != "" {
		warnings = append(warnings, warn)
	}
	outProps, warn, err := evalSodium(outletTemp, r.mode)
	if err != nil {
		return model.Results{}, err
	}
	if warn != "" {
		warnings = append(warnings, warn)
	}
	gravity := model.Gravity(cfg.GravityEnv)
	dp := model.PressureDropBreakdown{
		Friction:  FrictionPressureDrop(frictionFactor, cfg.CoreHeight, cfg.CoreDiameter, props.Density, velocity),
		Elevation: ElevationPressureDrop(props.Density, gravity, cfg.CoreHeight),
		Acceleration: AccelerationPressureDrop(props.Density,
			FlowVelocity(cfg.CoolantFlowRate, inProps.Density, area),
			FlowVelocity(cfg.CoolantFlowRate, outProps.Density, area)),
		FormLoss: FormLossPressureDrop(cfg.FormLossK, props.Density, velocity),
	}
	dp.Total = dp.Friction + dp.Elevation + dp.Acceleration + dp.FormLoss
	pumpPower := PumpPower(dp.Total, cfg.CoolantFlowRate, props.Density, cfg.PumpEfficiency)

	// 7. Peak fuel temperature estimate.
	maxFuelTemp, err := MaxFuelTemperature(avgTemp, cfg.ReactorPower, htc,
		cfg.CoreHeight, cfg.CoreDiameter, cfg.FuelTempRiseFactor)
	if err != nil {
		return model.Results{}, err
	}

	for _, w := range warnings {
		log.WithField("reactor", cfg.Name).Warn(w)
	}

	// 8. Assemble. Ownership of the result transfers to the caller.
	return model.Results{
		Velocity:         velocity,
		ReynoldsNumber:   reynolds,
		FrictionFactor:   frictionFactor,
		Regime:           regime,
		PrandtlNumber:    prandtl,
		NusseltNumber:    nusselt,
		OutletTemp:       outletTemp,
		AvgCoolantTemp:   avgTemp,
		PressureDrop:     dp,
		HeatTransferCoef: htc,
		PumpPower:        pumpPower,
		MaxFuelTemp:      maxFuelTemp,
		WallHeatFlux:     wallFlux,
		Warnings:         warnings,
	}, nil
}
