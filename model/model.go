package model

// Shared data model passed between the config, calculator and export packages.

// Mode selects how an out-of-range property evaluation is reported.
type Mode int

const (
	// Permissive appends out-of-range readings to the result warnings.
	Permissive Mode = iota
	// Strict turns out-of-range readings into pipeline errors.
	Strict
)

func (m Mode) String() string {
	if m == Strict {
		return "strict"
	}
	return "permissive"
}

// FlowRegime classifies coolant flow by Reynolds number.
type FlowRegime string

const (
	Laminar    FlowRegime = "laminar"
	Transition FlowRegime = "transition"
	Turbulent  FlowRegime = "turbulent"
)

// ReactorConfig holds the engineering inputs for one steady-state case.
// It is passed by value into the calculator and never mutated.
type ReactorConfig struct {
	Name        string `json:"name,omitempty" yaml:"name,omitempty" mapstructure:"name"`
	Description string `json:"description,omitempty" yaml:"description,omitempty" mapstructure:"description"`

	CoolantInletTemp float64 `json:"coolant_inlet_temp" yaml:"coolant_inlet_temp" mapstructure:"coolant_inlet_temp"` // K
	CoolantFlowRate  float64 `json:"coolant_flow_rate" yaml:"coolant_flow_rate" mapstructure:"coolant_flow_rate"`    // kg/s
	ReactorPower     float64 `json:"reactor_power" yaml:"reactor_power" mapstructure:"reactor_power"`                // W
	CoreHeight       float64 `json:"core_height" yaml:"core_height" mapstructure:"core_height"`                      // m
	CoreDiameter     float64 `json:"core_diameter" yaml:"core_diameter" mapstructure:"core_diameter"`                // m
	Pressure         float64 `json:"pressure" yaml:"pressure" mapstructure:"pressure"`                               // Pa

	// GravityEnv selects the gravitational environment: earth, moon (lunar),
	// mars or space (microgravity).
	GravityEnv string `json:"gravity_env" yaml:"gravity_env" mapstructure:"gravity_env"`

	// Optional model inputs. Zero means "take the calculator settings default".
	PumpEfficiency     float64 `json:"pump_efficiency,omitempty" yaml:"pump_efficiency,omitempty" mapstructure:"pump_efficiency"`             // 0 < η ≤ 1
	FormLossK          float64 `json:"form_loss_k,omitempty" yaml:"form_loss_k,omitempty" mapstructure:"form_loss_k"`                         // dimensionless
	FuelTempRiseFactor float64 `json:"fuel_temp_rise_factor,omitempty" yaml:"fuel_temp_rise_factor,omitempty" mapstructure:"fuel_temp_rise_factor"` // dimensionless

	// WallTemp enables the wall heat-flux diagnostic when > 0.
	WallTemp float64 `json:"wall_temp,omitempty" yaml:"wall_temp,omitempty" mapstructure:"wall_temp"` // K
}

// PressureDropBreakdown splits the total core pressure drop into its terms.
type PressureDropBreakdown struct {
	Friction     float64 `json:"friction" yaml:"friction"`         // Pa
	Elevation    float64 `json:"elevation" yaml:"elevation"`       // Pa
	Acceleration float64 `json:"acceleration" yaml:"acceleration"` // Pa
	FormLoss     float64 `json:"form_loss" yaml:"form_loss"`       // Pa
	Total        float64 `json:"total" yaml:"total"`               // Pa
}

// Results is the immutable output of one pipeline run. Ownership transfers
// to the caller; the calculator keeps no reference to it.
type Results struct {
	Velocity        float64    `json:"velocity" yaml:"velocity"`                 // m/s
	ReynoldsNumber  float64    `json:"reynolds_number" yaml:"reynolds_number"`   // dimensionless
	FrictionFactor  float64    `json:"friction_factor" yaml:"friction_factor"`   // dimensionless
	Regime          FlowRegime `json:"flow_regime" yaml:"flow_regime"`
	PrandtlNumber   float64    `json:"prandtl_number" yaml:"prandtl_number"`     // dimensionless
	NusseltNumber   float64    `json:"nusselt_number" yaml:"nusselt_number"`     // dimensionless

	OutletTemp     float64 `json:"outlet_temperature" yaml:"outlet_temperature"`             // K
	AvgCoolantTemp float64 `json:"average_coolant_temperature" yaml:"average_coolant_temperature"` // K

	PressureDrop     PressureDropBreakdown `json:"pressure_drop" yaml:"pressure_drop"`
	HeatTransferCoef float64               `json:"heat_transfer_coefficient" yaml:"heat_transfer_coefficient"` // W/(m²·K)
	PumpPower        float64               `json:"pump_power" yaml:"pump_power"`                               // W
	MaxFuelTemp      float64               `json:"max_fuel_temperature" yaml:"max_fuel_temperature"`           // K

	// WallHeatFlux is only set when the configuration supplies a wall
	// temperature.
	WallHeatFlux float64 `json:"wall_heat_flux,omitempty" yaml:"wall_heat_flux,omitempty"` // W/m²

	Warnings []string `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}
