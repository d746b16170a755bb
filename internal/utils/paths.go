package utils

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/thorrdu/cutc/internal/constants"
)

// EnsureDir ensures that a directory exists, creating it if necessary
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0755)
}

// GetConfigDir returns the path to the cutc config directory
// Uses platform-specific config directories:
// - Linux: ~/.config/cutc (or $XDG_CONFIG_HOME/cutc)
// - macOS: ~/Library/Application Support/cutc
// - Windows: %AppData%/cutc
func GetConfigDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to determine config directory: %w", err)
	}

	return filepath.Join(configDir, constants.AppName), nil
}

// GetConfigFile returns the path to the config.toml file
func GetConfigFile() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, constants.ConfigFile), nil
}

// FileExists checks if a file exists
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// IsDirectory checks if a path is a directory
func IsDirectory(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}
