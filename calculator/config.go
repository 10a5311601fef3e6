package calculator

import (
	log "github.com/sirupsen/logrus"
	"gopkg.in/ini.v1"
)

// Settings are the tunable calculator defaults, loaded from an ini file.
// Per-reactor configuration values override them when set.
type Settings struct {
	PumpEfficiency     float64
	FuelTempRiseFactor float64
	FormLossK          float64
	Workers            int
	Strict             bool
}

var calSettings = defaultSettings()

func defaultSettings() Settings {
	return Settings{
		PumpEfficiency:     1.0, // ideal pump
		FuelTempRiseFactor: 2.5, // pellet + gap + clad resistance, Todreas & Kazimi
		FormLossK:          0.0,
		Workers:            4,
		Strict:             false,
	}
}

func init() {
	file, err := ini.Load("conf/config.ini")
	if err != nil {
		// Defaults stand when no settings file sits next to the binary.
		return
	}
	loadSettings(file)
}

// LoadSettingsFile replaces the active settings from an ini file.
func LoadSettingsFile(path string) error {
	file, err := ini.Load(path)
	if err != nil {
		return err
	}
	loadSettings(file)
	log.WithField("path", path).Info("calculator settings loaded")
	return nil
}

func loadSettings(file *ini.File) {
	def := defaultSettings()
	sec := file.Section("calculator")
	calSettings = Settings{
		PumpEfficiency:     sec.Key("PumpEfficiency").MustFloat64(def.PumpEfficiency),
		FuelTempRiseFactor: sec.Key("FuelTempRiseFactor").MustFloat64(def.FuelTempRiseFactor),
		FormLossK:          sec.Key("FormLossCoefficient").MustFloat64(def.FormLossK),
		Workers:            sec.Key("Workers").MustInt(def.Workers),
		Strict:             sec.Key("Strict").MustBool(def.Strict),
	}
}

// ActiveSettings returns a copy of the settings currently in effect.
func ActiveSettings() Settings {
	return calSettings
}
