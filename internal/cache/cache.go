package cache

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/thorrdu/cutc/internal/constants"
)

// GetCacheDir returns the cutc cache directory
func GetCacheDir() (string, error) {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		// Fallback to platform-specific defaults
		cacheDir, err = getFallbackCacheDir()
		if err != nil {
			return "", fmt.Errorf("failed to determine cache directory: %w", err)
		}
	}

	return filepath.Join(cacheDir, constants.AppName), nil
}

// getFallbackCacheDir returns platform-specific fallback cache directories
func getFallbackCacheDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(homeDir, "Library", "Caches"), nil
	case "windows":
		return filepath.Join(homeDir, "AppData", "Local"), nil
	default:
		return filepath.Join(homeDir, ".cache"), nil
	}
}

// GetLogPath returns the path of the rotating log file
func GetLogPath() (string, error) {
	cacheDir, err := GetCacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(cacheDir, constants.LogFile), nil
}
