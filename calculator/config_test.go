package calculator

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSettings(t *testing.T) {
	def := defaultSettings()
	assert.Equal(t, 1.0, def.PumpEfficiency)
	assert.Equal(t, 2.5, def.FuelTempRiseFactor)
	assert.Zero(t, def.FormLossK)
	assert.False(t, def.Strict)
}

func TestLoadSettingsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.ini")
	require.NoError(t, os.WriteFile(path, []byte(`[calculator]
PumpEfficiency = 0.85
FuelTempRiseFactor = 3.0
Workers = 8
Strict = true
`), 0o644))

	prev := calSettings
	defer func() { calSettings = prev }()

	require.NoError(t, LoadSettingsFile(path))
	s := ActiveSettings()
	assert.Equal(t, 0.85, s.PumpEfficiency)
	assert.Equal(t, 3.0, s.FuelTempRiseFactor)
	assert.Equal(t, 8, s.Workers)
	assert.True(t, s.Strict)
	// Absent keys keep their defaults.
	assert.Zero(t, s.FormLossK)
}

func TestLoadSettingsFileMissing(t *testing.T) {
	err := LoadSettingsFile(filepath.Join(t.TempDir(), "nope.ini"))
	assert.Error(t, err)
}
