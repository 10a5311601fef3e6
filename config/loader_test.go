package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"splinther/model"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadYAML(t *testing.T) {
	path := writeTemp(t, "reactor.yaml", `name: Test Reactor
description: unit test core
coolant_inlet_temp: 600.0
coolant_flow_rate: 10.0
reactor_power: 1.0e6
core_height: 2.0
core_diameter: 0.5
pressure: 1.0e7
gravity_env: moon
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Test Reactor", cfg.Name)
	assert.Equal(t, 600.0, cfg.CoolantInletTemp)
	assert.Equal(t, 10.0, cfg.CoolantFlowRate)
	assert.Equal(t, 1e6, cfg.ReactorPower)
	assert.Equal(t, 2.0, cfg.CoreHeight)
	assert.Equal(t, 0.5, cfg.CoreDiameter)
	assert.Equal(t, 1e7, cfg.Pressure)
	assert.Equal(t, "moon", cfg.GravityEnv)
}

func TestLoadJSON(t *testing.T) {
	path := writeTemp(t, "reactor.json", `{
  "name": "JSON Reactor",
  "coolant_inlet_temp": 650.0,
  "coolant_flow_rate": 20.0,
  "reactor_power": 2.0e6,
  "core_height": 2.5,
  "core_diameter": 0.6,
  "pressure": 1.0e7,
  "gravity_env": "mars",
  "pump_efficiency": 0.8
}`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "JSON Reactor", cfg.Name)
	assert.Equal(t, 650.0, cfg.CoolantInletTemp)
	assert.Equal(t, 0.8, cfg.PumpEfficiency)
	assert.Equal(t, "mars", cfg.GravityEnv)
}

func TestLoadDefaultsGravityToEarth(t *testing.T) {
	path := writeTemp(t, "reactor.yaml", `coolant_inlet_temp: 600.0
coolant_flow_rate: 10.0
reactor_power: 1.0e6
core_height: 2.0
core_diameter: 0.5
pressure: 1.0e7
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "earth", cfg.GravityEnv)
}

func TestLoadUnsupportedExtension(t *testing.T) {
	path := writeTemp(t, "reactor.toml", "coolant_inlet_temp = 600.0\n")
	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestSaveRoundTrip(t *testing.T) {
	cfg := model.ReactorConfig{
		Name:             "Round Trip",
		CoolantInletTemp: 600.0,
		CoolantFlowRate:  10.0,
		ReactorPower:     1e6,
		CoreHeight:       2.0,
		CoreDiameter:     0.5,
		Pressure:         1e7,
		GravityEnv:       "space",
	}

	dir := t.TempDir()
	yamlPath := filepath.Join(dir, "out.yaml")
	require.NoError(t, SaveYAML(cfg, yamlPath))
	got, err := Load(yamlPath)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)

	jsonPath := filepath.Join(dir, "out.json")
	require.NoError(t, SaveJSON(cfg, jsonPath))
	got, err = Load(jsonPath)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}
