// Package export formats calculation results as plain text, JSON or YAML.
// The calculator itself has no formatting responsibility.
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"splinther/model"
)

// FormatResults renders a result set as a human-readable report.
// Temperatures carry both K and °C, pressures both Pa and bar.
func FormatResults(res model.Results) string {
	var b strings.Builder

	b.WriteString("Reactor Fluid Dynamics Results\n")
	b.WriteString(strings.Repeat("=", 40) + "\n")

	fmt.Fprintf(&b, "Flow Regime: %s\n", res.Regime)
	fmt.Fprintf(&b, "Velocity: %.4f m/s\n", res.Velocity)
	fmt.Fprintf(&b, "Reynolds Number: %.2e\n", res.ReynoldsNumber)
	fmt.Fprintf(&b, "Friction Factor: %.5f\n", res.FrictionFactor)
	fmt.Fprintf(&b, "Prandtl Number: %.4f\n", res.PrandtlNumber)
	fmt.Fprintf(&b, "Nusselt Number: %.2f\n", res.NusseltNumber)
	writeTemperature(&b, "Outlet Temperature", res.OutletTemp)
	writeTemperature(&b, "Average Coolant Temperature", res.AvgCoolantTemp)
	writePressure(&b, "Friction Pressure Drop", res.PressureDrop.Friction)
	writePressure(&b, "Elevation Pressure Drop", res.PressureDrop.Elevation)
	writePressure(&b, "Acceleration Pressure Drop", res.PressureDrop.Acceleration)
	if res.PressureDrop.FormLoss != 0 {
		writePressure(&b, "Form Loss Pressure Drop", res.PressureDrop.FormLoss)
	}
	writePressure(&b, "Total Pressure Drop", res.PressureDrop.Total)
	fmt.Fprintf(&b, "Heat Transfer Coefficient: %.2f W/m²·K\n", res.HeatTransferCoef)
	fmt.Fprintf(&b, "Pump Power: %.2e W\n", res.PumpPower)
	writeTemperature(&b, "Max Fuel Temperature", res.MaxFuelTemp)
	if res.WallHeatFlux != 0 {
		fmt.Fprintf(&b, "Wall Heat Flux: %.2e W/m²\n", res.WallHeatFlux)
	}

	if len(res.Warnings) > 0 {
		b.WriteString("\nWarnings:\n")
		for _, w := range res.Warnings {
			fmt.Fprintf(&b, "  - %s\n", w)
		}
	}

	return b.String()
}

func writeTemperature(w io.Writer, label string, kelvin float64) {
	fmt.Fprintf(w, "%s: %.2f K (%.2f °C)\n", label, kelvin, kelvin-model.KelvinOffset)
}

func writePressure(w io.Writer, label string, pascal float64) {
	fmt.Fprintf(w, "%s: %.2e Pa (%.2f bar)\n", label, pascal, pascal/1e5)
}

// JSON writes v to w as indented JSON.
func JSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// YAML writes v to w as YAML.
func YAML(w io.Writer, v interface{}) error {
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	return enc.Encode(v)
}

// WriteJSON writes v to a file as indented JSON.
func WriteJSON(v interface{}, path string) error {
	return writeFile(v, path, JSON)
}

// WriteYAML writes v to a file as YAML.
func WriteYAML(v interface{}, path string) error {
	return writeFile(v, path, YAML)
}

func writeFile(v interface{}, path string, encode func(io.Writer, interface{}) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return encode(f, v)
}
