package profile

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	// ConfigDirName is the per-user configuration directory
	ConfigDirName = ".ghswitch"

	// ConfigDirEnv overrides the configuration directory, mainly for tests
	ConfigDirEnv = "GHSWITCH_CONFIG_DIR"

	ProfilesFileName = "profiles.json"
	CurrentFileName  = "current_profile.json"
)

// DefaultDir returns the path to the ghswitch config directory
func DefaultDir() (string, error) {
	if dir := os.Getenv(ConfigDirEnv); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ConfigDirName), nil
}
