package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/thorrdu/cutc/internal/clients"
	"github.com/thorrdu/cutc/internal/utils"
)

// Config holds user defaults from config.toml
type Config struct {
	// IDE is the default target used when --ide is not given: "cursor", "windsurf" or "both"
	IDE string `toml:"ide"`

	// KeepInstaller disables self-removal after a successful run
	KeepInstaller bool `toml:"keep-installer"`
}

// Load loads the configuration from the user config file.
// A missing file yields an empty config.
func Load() (*Config, error) {
	configFile, err := utils.GetConfigFile()
	if err != nil {
		return nil, fmt.Errorf("failed to get config file path: %w", err)
	}
	return LoadFrom(configFile)
}

// LoadFrom loads and validates the configuration at path
func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("unknown keys in config file %s: %s", path, strings.Join(keys, ", "))
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration in %s: %w", path, err)
	}

	return &cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.IDE == "" {
		return nil
	}
	if _, err := clients.ParseTarget(c.IDE); err != nil {
		return err
	}
	return nil
}

// DefaultTarget returns the configured target, if any
func (c *Config) DefaultTarget() (clients.Target, bool) {
	if c.IDE == "" {
		return "", false
	}
	t, err := clients.ParseTarget(c.IDE)
	if err != nil {
		return "", false
	}
	return t, true
}
