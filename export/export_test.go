package export

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"splinther/model"
)

func sampleResults() model.Results {
	return model.Results{
		Velocity:       0.0549,
		ReynoldsNumber: 10247.0,
		FrictionFactor: 0.0314,
		Regime:         model.Turbulent,
		PrandtlNumber:  0.0459,
		NusseltNumber:  12.3,
		OutletTemp:     678.74,
		AvgCoolantTemp: 639.37,
		PressureDrop: model.PressureDropBreakdown{
			Friction:     1.2,
			Elevation:    18207.0,
			Acceleration: 0.5,
			Total:        18208.7,
		},
		HeatTransferCoef: 1692.0,
		PumpPower:        196.2,
		MaxFuelTemp:      1110.0,
	}
}

func TestFormatResults(t *testing.T) {
	out := FormatResults(sampleResults())

	assert.True(t, strings.HasPrefix(out, "Reactor Fluid Dynamics Results\n"))
	assert.Contains(t, out, "Flow Regime: turbulent")
	// Temperatures in both K and °C.
	assert.Contains(t, out, "Outlet Temperature: 678.74 K (405.59 °C)")
	// Pressures in both Pa and bar.
	assert.Contains(t, out, "Total Pressure Drop: 1.82e+04 Pa (0.18 bar)")
	// Reynolds number in scientific notation.
	assert.Contains(t, out, "Reynolds Number: 1.02e+04")
	// No form-loss or wall-flux lines unless those terms are present.
	assert.NotContains(t, out, "Form Loss")
	assert.NotContains(t, out, "Wall Heat Flux")
	assert.NotContains(t, out, "Warnings:")
}

func TestFormatResultsWarnings(t *testing.T) {
	res := sampleResults()
	res.Warnings = []string{"something looks off"}
	out := FormatResults(res)
	assert.Contains(t, out, "Warnings:")
	assert.Contains(t, out, "  - something looks off")
}

func TestJSONRoundTrip(t *testing.T) {
	res := sampleResults()
	var buf bytes.Buffer
	require.NoError(t, JSON(&buf, res))

	var got model.Results
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, res, got)
}

func TestYAMLRoundTrip(t *testing.T) {
	res := sampleResults()
	var buf bytes.Buffer
	require.NoError(t, YAML(&buf, res))

	var got model.Results
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, res, got)
}

func TestWriteFiles(t *testing.T) {
	dir := t.TempDir()
	res := sampleResults()
	require.NoError(t, WriteJSON(res, filepath.Join(dir, "out.json")))
	require.NoError(t, WriteYAML(res, filepath.Join(dir, "out.yaml")))
}
