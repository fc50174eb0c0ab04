// Package config handles the CLI's persisted settings: the config directory,
// display preferences, and the path of the contract registry file.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

const (
	defaultDecimals = 18

	configFile    = "config.json"
	contractsFile = "contracts.json"
)

// Config holds all kairos CLI configuration.
type Config struct {
	// DisplayDecimals is how many decimals integer token amounts are
	// rendered with in command output.
	DisplayDecimals int `json:"display_decimals"`

	// DefaultABI is the builtin or registry name used when a command needs
	// an ABI and none is given.
	DefaultABI string `json:"default_abi,omitempty"`

	// internal: config dir path used for Save()
	configDir string
}

// Load reads config from dir (or creates defaults). dir defaults to ~/.kairos.
func Load(dir string) (*Config, error) {
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("could not determine home dir: %w", err)
		}
		dir = filepath.Join(home, ".kairos")
	}

	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("could not create config dir: %w", err)
	}

	cfg := defaults(dir)

	path := filepath.Join(dir, configFile)
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	cfg.configDir = dir
	if cfg.DisplayDecimals <= 0 {
		cfg.DisplayDecimals = defaultDecimals
	}
	return cfg, nil
}

// Save writes the config to disk.
func (c *Config) Save() error {
	if err := os.MkdirAll(c.configDir, 0o700); err != nil {
		return err
	}
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(c.configDir, configFile), data, 0o600)
}

// Dir returns the config directory.
func (c *Config) Dir() string {
	return c.configDir
}

// ContractsPath returns the path of the contract registry file.
func (c *Config) ContractsPath() string {
	return filepath.Join(c.configDir, contractsFile)
}

func defaults(dir string) *Config {
	return &Config{
		DisplayDecimals: defaultDecimals,
		configDir:       dir,
	}
}
