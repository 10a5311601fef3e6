// Package config is the host-side collaborator around the calculator core:
// it loads reactor configurations from YAML or JSON files and screens them
// against engineering bounds before the pipeline runs.
package config

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"splinther/model"
)

// Load reads a reactor configuration from a YAML or JSON file, chosen by
// extension. Defaults are applied for the optional fields; the numeric
// model inputs left at zero are filled later from the calculator settings.
func Load(path string) (model.ReactorConfig, error) {
	var cfg model.ReactorConfig

	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml", ".json":
	default:
		return cfg, fmt.Errorf("unsupported config format %q: use .yaml, .yml or .json", ext)
	}

	v := viper.New()
	v.SetConfigFile(path)

	// default values
	v.SetDefault("gravity_env", "earth")

	if err := v.ReadInConfig(); err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}

	log.WithFields(log.Fields{
		"path":    path,
		"reactor": cfg.Name,
	}).Info("reactor configuration loaded")
	return cfg, nil
}

// SaveYAML writes a configuration back out as YAML.
func SaveYAML(cfg model.ReactorConfig, path string) error {
	return save(cfg, path, "yaml")
}

// SaveJSON writes a configuration back out as JSON.
func SaveJSON(cfg model.ReactorConfig, path string) error {
	return save(cfg, path, "json")
}

func save(cfg model.ReactorConfig, path, format string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	switch format {
	case "yaml":
		err = encodeYAML(f, cfg)
	case "json":
		err = encodeJSON(f, cfg)
	}
	if err != nil {
		return fmt.Errorf("write config %s: %w", path, err)
	}
	return nil
}

func encodeYAML(w io.Writer, v interface{}) error {
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	return enc.Encode(v)
}

func encodeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
