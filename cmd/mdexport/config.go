package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// fileConfig holds defaults read from the optional config file at
// <user config dir>/mdexport/config.yaml. Flags always win over file values.
type fileConfig struct {
	Application string `yaml:"application"`
	Creator     string `yaml:"creator"`
	Compress    string `yaml:"compress"`
}

func configPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "mdexport", "config.yaml")
}

func loadConfig() (fileConfig, error) {
	return loadConfigFile(configPath())
}

// loadConfigFile reads path. A missing or unset path is not an error: the
// zero config is returned so defaults apply.
func loadConfigFile(path string) (fileConfig, error) {
	var cfg fileConfig
	if path == "" {
		return cfg, nil
	}
	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}
