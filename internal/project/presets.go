package project

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/eisla/eisla/internal/model"
)

// DefaultPresetsPath returns the default file path for the presets store.
// This is located at ~/.eisla/presets.json.
func DefaultPresetsPath() string {
	return filepath.Join(DefaultConfigDir(), "presets.json")
}

// SavePresets writes the presets to the specified JSON file.
// It creates parent directories if they do not exist.
func SavePresets(path string, p model.Presets) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadPresets reads the presets from the specified JSON file.
// If the file does not exist, it returns the default presets and saves them.
func LoadPresets(path string) (model.Presets, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			p := model.DefaultPresets()
			if saveErr := SavePresets(path, p); saveErr != nil {
				return p, saveErr
			}
			return p, nil
		}
		return model.Presets{}, err
	}
	var p model.Presets
	if err := json.Unmarshal(data, &p); err != nil {
		return model.Presets{}, err
	}
	return p, nil
}

// LoadOrCreatePresets loads the presets from the default path.
// If the file does not exist, it creates one with the built-in entries.
func LoadOrCreatePresets() (model.Presets, string, error) {
	path := DefaultPresetsPath()
	p, err := LoadPresets(path)
	return p, path, err
}

// ExportPresets exports the presets to a user-specified JSON file.
func ExportPresets(path string, p model.Presets) error {
	return SavePresets(path, p)
}

// ImportPresets imports presets from a user-specified JSON file, merging
// them with the existing presets. Duplicate profile names and board ids
// are skipped.
func ImportPresets(path string, existing model.Presets) (model.Presets, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return existing, err
	}
	var imported model.Presets
	if err := json.Unmarshal(data, &imported); err != nil {
		return existing, err
	}

	// Build sets of existing keys for deduplication
	profileNames := make(map[string]bool, len(existing.Profiles))
	for _, pr := range existing.Profiles {
		profileNames[pr.Name] = true
	}
	boardIDs := make(map[string]bool, len(existing.Boards))
	for _, b := range existing.Boards {
		boardIDs[b.ID] = true
	}

	// Merge profiles
	for _, pr := range imported.Profiles {
		if !profileNames[pr.Name] {
			existing.Profiles = append(existing.Profiles, pr)
			profileNames[pr.Name] = true
		}
	}

	// Merge boards
	for _, b := range imported.Boards {
		if !boardIDs[b.ID] {
			existing.Boards = append(existing.Boards, b)
			boardIDs[b.ID] = true
		}
	}

	return existing, nil
}
