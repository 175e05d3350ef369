package project

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/eisla/eisla/internal/model"
)

// DefaultConfigDir returns the default directory for application state.
// On all platforms this is ~/.eisla/
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".eisla")
}

// DefaultConfigPath returns the default path for the application config file.
func DefaultConfigPath() string {
	return filepath.Join(DefaultConfigDir(), "config.json")
}

// DefaultJobsRoot returns the default workspace directory for job output.
func DefaultJobsRoot() string {
	return filepath.Join(DefaultConfigDir(), "jobs")
}

// ResolveWorkspace returns the configured workspace root, falling back to
// the default jobs directory when unset.
func ResolveWorkspace(config model.AppConfig) string {
	if config.WorkspaceRoot != "" {
		return config.WorkspaceRoot
	}
	return DefaultJobsRoot()
}

// SaveAppConfig persists an AppConfig to the given path as JSON. It creates
// any missing parent directories and replaces the file through a rename.
func SaveAppConfig(path string, config model.AppConfig) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// LoadAppConfig reads an AppConfig from the given path.
// If the file does not exist, it returns DefaultAppConfig with no error.
func LoadAppConfig(path string) (model.AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return model.DefaultAppConfig(), nil
		}
		return model.AppConfig{}, err
	}
	var config model.AppConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return model.AppConfig{}, err
	}
	// Ensure RecentJobs is never nil
	if config.RecentJobs == nil {
		config.RecentJobs = []string{}
	}
	return config, nil
}
