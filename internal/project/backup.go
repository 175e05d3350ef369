package project

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/eisla/eisla/internal/model"
)

// backupVersion marks the backup file format.
const backupVersion = "1.0.0"

// BackupData is the top-level structure for import/export of all application data.
type BackupData struct {
	Version        string                `json:"version"`
	CreatedAt      string                `json:"created_at"`
	Config         model.AppConfig       `json:"config"`
	CustomProfiles []model.AnnealProfile `json:"custom_profiles"`
	Templates      model.TemplateStore   `json:"templates"`
	Presets        model.Presets         `json:"presets"`
}

// CollectAllData gathers the config and every store from their default paths
// into one backup document. Missing files contribute their defaults.
func CollectAllData() (BackupData, error) {
	config, err := LoadAppConfig(DefaultConfigPath())
	if err != nil {
		return BackupData{}, fmt.Errorf("failed to read config: %w", err)
	}
	profiles, err := LoadCustomProfiles(DefaultProfilesPath())
	if err != nil {
		return BackupData{}, fmt.Errorf("failed to read custom profiles: %w", err)
	}
	templates, err := LoadTemplates(DefaultTemplatePath())
	if err != nil {
		return BackupData{}, fmt.Errorf("failed to read templates: %w", err)
	}
	presets, err := LoadPresets(DefaultPresetsPath())
	if err != nil {
		return BackupData{}, fmt.Errorf("failed to read presets: %w", err)
	}
	return BackupData{
		Config:         config,
		CustomProfiles: profiles,
		Templates:      templates,
		Presets:        presets,
	}, nil
}

// ExportAllData exports all application data to a single JSON file at the
// specified path, stamping the backup version and creation time.
func ExportAllData(exportPath string, data BackupData) error {
	data.Version = backupVersion
	data.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	payload, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal backup data: %w", err)
	}

	dir := filepath.Dir(exportPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create export directory: %w", err)
	}

	if err := os.WriteFile(exportPath, payload, 0644); err != nil {
		return fmt.Errorf("failed to write backup file: %w", err)
	}
	return nil
}

// ImportAllData reads a backup JSON file and returns the contained data.
// The caller is responsible for applying the imported stores.
func ImportAllData(importPath string) (BackupData, error) {
	data, err := os.ReadFile(importPath)
	if err != nil {
		return BackupData{}, fmt.Errorf("failed to read backup file: %w", err)
	}
	var backup BackupData
	if err := json.Unmarshal(data, &backup); err != nil {
		return BackupData{}, fmt.Errorf("failed to parse backup file: %w", err)
	}
	if backup.Version == "" {
		return BackupData{}, fmt.Errorf("invalid backup file: missing version field")
	}
	// Ensure slices are never nil
	if backup.Config.RecentJobs == nil {
		backup.Config.RecentJobs = []string{}
	}
	if backup.CustomProfiles == nil {
		backup.CustomProfiles = []model.AnnealProfile{}
	}
	if backup.Templates.Templates == nil {
		backup.Templates.Templates = []model.DesignTemplate{}
	}
	return backup, nil
}

// RestoreAllData writes every store in the backup to its default path.
// An empty presets section leaves the existing presets store untouched.
func RestoreAllData(data BackupData) error {
	if err := SaveAppConfig(DefaultConfigPath(), data.Config); err != nil {
		return fmt.Errorf("failed to restore config: %w", err)
	}
	if err := SaveCustomProfiles(DefaultProfilesPath(), data.CustomProfiles); err != nil {
		return fmt.Errorf("failed to restore custom profiles: %w", err)
	}
	if err := SaveTemplates(DefaultTemplatePath(), data.Templates); err != nil {
		return fmt.Errorf("failed to restore templates: %w", err)
	}
	if len(data.Presets.Profiles) > 0 || len(data.Presets.Boards) > 0 {
		if err := SavePresets(DefaultPresetsPath(), data.Presets); err != nil {
			return fmt.Errorf("failed to restore presets: %w", err)
		}
	}
	return nil
}
