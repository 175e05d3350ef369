package project

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/eisla/eisla/internal/model"
)

// OverridesFileName is the per-job override file consumed before preview
// rendering and export.
const OverridesFileName = "placement_overrides.json"

// LoadOverrides reads a placement override file. A missing file yields an
// empty override set with no error.
func LoadOverrides(path string) (model.PlacementOverrides, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return model.PlacementOverrides{}, nil
		}
		return nil, err
	}

	var overrides model.PlacementOverrides
	if err := json.Unmarshal(data, &overrides); err != nil {
		return nil, fmt.Errorf("parsing overrides %s: %w", path, err)
	}
	return overrides, nil
}

// SaveOverrides writes a placement override file, creating parent
// directories as needed.
func SaveOverrides(path string, overrides model.PlacementOverrides) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(overrides, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// MergeOverrides layers extra onto base per ref and per field, returning a
// new set. Fields set in extra win; nil fields keep the base value.
func MergeOverrides(base, extra model.PlacementOverrides) model.PlacementOverrides {
	merged := make(model.PlacementOverrides, len(base)+len(extra))
	for ref, ov := range base {
		merged[ref] = ov
	}
	for ref, ov := range extra {
		cur := merged[ref]
		if ov.XMM != nil {
			cur.XMM = ov.XMM
		}
		if ov.YMM != nil {
			cur.YMM = ov.YMM
		}
		if ov.RotationDeg != nil {
			cur.RotationDeg = ov.RotationDeg
		}
		merged[ref] = cur
	}
	return merged
}
