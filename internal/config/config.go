package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config is the top-level configuration for hashhound. Everything has a
// working default: the tool must run on a box it has never been
// configured on.
type Config struct {
	// DisplayCap is how many accounts the console table shows per group
	// before collapsing the rest into "+N more". Exports ignore it.
	DisplayCap int `json:"display_cap"`

	// StoreRoot is where imported credentials are persisted.
	StoreRoot string `json:"store_root"`

	// Engagement scopes imported credentials when --engagement is not
	// given on the command line.
	Engagement string `json:"engagement"`
}

// Default returns the built-in configuration.
func Default() *Config {
	home, _ := os.UserHomeDir()
	return &Config{
		DisplayCap: 7,
		StoreRoot:  filepath.Join(home, ".local", "share", "hashhound"),
		Engagement: "default",
	}
}

// DefaultConfigPath returns the default config file location.
func DefaultConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "hashhound", "config.json"), nil
}

// Load reads configuration from disk. A missing file is not an error and
// yields Default(); a present but unparseable file is.
func Load() (*Config, error) {
	path, err := DefaultConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFile(path)
}

// LoadFile reads configuration from an explicit path, filling unset
// fields from Default().
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg := Default()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if cfg.DisplayCap <= 0 {
		cfg.DisplayCap = Default().DisplayCap
	}
	if cfg.StoreRoot == "" {
		cfg.StoreRoot = Default().StoreRoot
	}
	if cfg.Engagement == "" {
		cfg.Engagement = "default"
	}
	return cfg, nil
}
