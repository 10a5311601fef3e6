package config

import (
	"errors"
	"fmt"
	"strings"

	"splinther/model"
)

// Engineering bounds for compact liquid-metal reactors. Narrower than the
// core's own invariants on purpose: the core rejects the non-physical, the
// validator rejects the impractical.
const (
	minTemp = 273.15 // coolant freezing floor [K]
	maxTemp = 1500.0 // K

	minFlowRate = 0.1    // kg/s
	maxFlowRate = 1000.0 // kg/s

	minPower = 1e3 // 1 kW
	maxPower = 1e8 // 100 MW

	minDimension = 0.01 // m
	maxDimension = 10.0 // m

	minPressure = 1e3 // 1 kPa
	maxPressure = 1e8 // 1000 bar
)

// lowTempWarn marks inlet temperatures that are technically valid but
// unusually cold for a liquid-metal coolant.
const lowTempWarn = 400.0

// largeTempRise is the temperature rise [K] beyond which the thermal
// balance draws a warning.
const largeTempRise = 200.0

// ErrValidation is returned by ValidateStrict when a configuration fails.
var ErrValidation = errors.New("configuration validation failed")

// Validate screens a configuration against the engineering bounds. It
// returns whether the configuration passes plus every error and warning
// message found. With strict set, warnings count against the verdict.
func Validate(cfg model.ReactorConfig, strict bool) (bool, []string) {
	var errs, warns []string

	if cfg.CoolantInletTemp < minTemp {
		errs = append(errs, fmt.Sprintf(
			"coolant inlet temperature (%gK) below minimum (%gK)", cfg.CoolantInletTemp, minTemp))
	} else if cfg.CoolantInletTemp < lowTempWarn {
		warns = append(warns, fmt.Sprintf(
			"coolant inlet temperature (%gK) is unusually low for liquid metal coolants", cfg.CoolantInletTemp))
	}
	if cfg.CoolantInletTemp > maxTemp {
		errs = append(errs, fmt.Sprintf(
			"coolant inlet temperature (%gK) exceeds maximum (%gK)", cfg.CoolantInletTemp, maxTemp))
	}

	if cfg.CoolantFlowRate < minFlowRate {
		errs = append(errs, fmt.Sprintf(
			"coolant flow rate (%g kg/s) below minimum (%g kg/s)", cfg.CoolantFlowRate, minFlowRate))
	}
	if cfg.CoolantFlowRate > maxFlowRate {
		errs = append(errs, fmt.Sprintf(
			"coolant flow rate (%g kg/s) exceeds maximum (%g kg/s)", cfg.CoolantFlowRate, maxFlowRate))
	}

	if cfg.ReactorPower < minPower {
		errs = append(errs, fmt.Sprintf(
			"reactor power (%g W) below minimum (%g W)", cfg.ReactorPower, minPower))
	}
	if cfg.ReactorPower > maxPower {
		errs = append(errs, fmt.Sprintf(
			"reactor power (%g W) exceeds maximum (%g W)", cfg.ReactorPower, maxPower))
	}

	if cfg.CoreHeight < minDimension {
		errs = append(errs, fmt.Sprintf(
			"core height (%g m) below minimum (%g m)", cfg.CoreHeight, minDimension))
	}
	if cfg.CoreHeight > maxDimension {
		errs = append(errs, fmt.Sprintf(
			"core height (%g m) exceeds maximum (%g m)", cfg.CoreHeight, maxDimension))
	}
	if cfg.CoreDiameter < minDimension {
		errs = append(errs, fmt.Sprintf(
			"core diameter (%g m) below minimum (%g m)", cfg.CoreDiameter, minDimension))
	}
	if cfg.CoreDiameter > maxDimension {
		errs = append(errs, fmt.Sprintf(
			"core diameter (%g m) exceeds maximum (%g m)", cfg.CoreDiameter, maxDimension))
	}

	if cfg.Pressure < minPressure {
		errs = append(errs, fmt.Sprintf(
			"system pressure (%g Pa) below minimum (%g Pa)", cfg.Pressure, minPressure))
	}
	if cfg.Pressure > maxPressure {
		errs = append(errs, fmt.Sprintf(
			"system pressure (%g Pa) exceeds maximum (%g Pa)", cfg.Pressure, maxPressure))
	}

	if !model.KnownGravityEnv(cfg.GravityEnv) {
		errs = append(errs, fmt.Sprintf(
			"unknown gravity environment %q: use earth, moon, mars or space", cfg.GravityEnv))
	}

	// Thermal balance check, warning only.
	if cfg.CoolantFlowRate >= minFlowRate {
		tempRise := cfg.ReactorPower / (cfg.CoolantFlowRate * model.SodiumCp)
		if tempRise > largeTempRise {
			warns = append(warns, fmt.Sprintf(
				"large temperature rise expected (%.1fK), consider increasing flow rate", tempRise))
		}
	}

	messages := append(errs, warns...)
	if strict {
		return len(messages) == 0, messages
	}
	return len(errs) == 0, messages
}

// ValidateStrict validates in strict mode and folds any findings into a
// single error.
func ValidateStrict(cfg model.ReactorConfig) error {
	ok, messages := Validate(cfg, true)
	if ok {
		return nil
	}
	return fmt.Errorf("%w:\n  - %s", ErrValidation, strings.Join(messages, "\n  - "))
}
