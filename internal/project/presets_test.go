package project

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/eisla/eisla/internal/model"
)

func TestDefaultPresetsPath(t *testing.T) {
	path := DefaultPresetsPath()
	if path == "" {
		t.Fatal("expected non-empty path")
	}
	if filepath.Base(path) != "presets.json" {
		t.Errorf("expected filename presets.json, got %s", filepath.Base(path))
	}
	dir := filepath.Base(filepath.Dir(path))
	if dir != ".eisla" {
		t.Errorf("expected parent dir .eisla, got %s", dir)
	}
}

func TestSaveAndLoadPresets(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "test_presets.json")

	p := model.Presets{
		Profiles: []model.AnnealProfile{
			{Name: "Slow Burn", Description: "Test schedule", Settings: model.AnnealSettings{
				InitialTemp:   90,
				MinTemp:       0.5,
				CoolingRate:   0.998,
				MaxIterations: 12000,
				TimeBudgetSec: 20,
			}},
		},
		Boards: []model.BoardPreset{
			model.NewBoardPreset("Test Board", 120, 90, 4),
		},
	}

	if err := SavePresets(path, p); err != nil {
		t.Fatalf("SavePresets failed: %v", err)
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Fatal("presets file was not created")
	}

	loaded, err := LoadPresets(path)
	if err != nil {
		t.Fatalf("LoadPresets failed: %v", err)
	}

	if len(loaded.Profiles) != 1 {
		t.Errorf("expected 1 profile, got %d", len(loaded.Profiles))
	}
	if loaded.Profiles[0].Name != "Slow Burn" {
		t.Errorf("expected profile name 'Slow Burn', got %q", loaded.Profiles[0].Name)
	}
	if loaded.Profiles[0].Settings.MaxIterations != 12000 {
		t.Errorf("expected 12000 iterations, got %d", loaded.Profiles[0].Settings.MaxIterations)
	}

	if len(loaded.Boards) != 1 {
		t.Errorf("expected 1 board, got %d", len(loaded.Boards))
	}
	if loaded.Boards[0].Name != "Test Board" {
		t.Errorf("expected board name 'Test Board', got %q", loaded.Boards[0].Name)
	}
	if loaded.Boards[0].WidthMM != 120 {
		t.Errorf("expected width 120, got %f", loaded.Boards[0].WidthMM)
	}
}

func TestLoadPresetsCreatesDefault(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "nonexistent", "presets.json")

	p, err := LoadPresets(path)
	if err != nil {
		t.Fatalf("LoadPresets failed: %v", err)
	}

	// Should have created defaults
	if len(p.Profiles) == 0 {
		t.Error("expected default profiles, got none")
	}
	if len(p.Boards) == 0 {
		t.Error("expected default boards, got none")
	}

	// Should have written the file
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Fatal("expected default presets file to be created")
	}
}

func TestImportPresets(t *testing.T) {
	tmpDir := t.TempDir()

	existing := model.Presets{
		Profiles: []model.AnnealProfile{
			{Name: "fast", Description: "Existing schedule"},
		},
		Boards: []model.BoardPreset{
			{ID: "board-001", Name: "Existing Board", WidthMM: 100, HeightMM: 80, Layers: 2},
		},
	}

	imported := model.Presets{
		Profiles: []model.AnnealProfile{
			{Name: "fast", Description: "Duplicate name, should be skipped"},
			{Name: "turbo", Description: "New schedule"},
		},
		Boards: []model.BoardPreset{
			{ID: "board-002", Name: "New Board", WidthMM: 80, HeightMM: 60, Layers: 2},
		},
	}

	// Write import file
	importPath := filepath.Join(tmpDir, "import.json")
	data, _ := json.MarshalIndent(imported, "", "  ")
	if err := os.WriteFile(importPath, data, 0644); err != nil {
		t.Fatalf("failed to write import file: %v", err)
	}

	merged, err := ImportPresets(importPath, existing)
	if err != nil {
		t.Fatalf("ImportPresets failed: %v", err)
	}

	if len(merged.Profiles) != 2 {
		t.Errorf("expected 2 profiles after merge, got %d", len(merged.Profiles))
	}
	if merged.Profiles[0].Description != "Existing schedule" {
		t.Errorf("expected the existing profile to win, got %q", merged.Profiles[0].Description)
	}
	if merged.Profiles[1].Name != "turbo" {
		t.Errorf("expected second profile to be 'turbo', got %q", merged.Profiles[1].Name)
	}

	if len(merged.Boards) != 2 {
		t.Errorf("expected 2 boards after merge, got %d", len(merged.Boards))
	}
	if merged.Boards[1].Name != "New Board" {
		t.Errorf("expected second board to be 'New Board', got %q", merged.Boards[1].Name)
	}
}

func TestExportPresets(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "export.json")

	p := model.DefaultPresets()
	if err := ExportPresets(path, p); err != nil {
		t.Fatalf("ExportPresets failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read exported file: %v", err)
	}

	var loaded model.Presets
	if err := json.Unmarshal(data, &loaded); err != nil {
		t.Fatalf("failed to unmarshal exported presets: %v", err)
	}

	if len(loaded.Profiles) != len(p.Profiles) {
		t.Errorf("expected %d profiles, got %d", len(p.Profiles), len(loaded.Profiles))
	}
	if len(loaded.Boards) != len(p.Boards) {
		t.Errorf("expected %d boards, got %d", len(p.Boards), len(loaded.Boards))
	}
}

func TestPresetsFindByName(t *testing.T) {
	p := model.DefaultPresets()

	profile := p.FindProfileByName("balanced")
	if profile == nil {
		t.Fatal("expected to find 'balanced'")
	}
	if profile.Settings.MaxIterations != 8000 {
		t.Errorf("expected 8000 iterations, got %d", profile.Settings.MaxIterations)
	}

	missing := p.FindProfileByName("nonexistent schedule")
	if missing != nil {
		t.Error("expected nil for nonexistent profile")
	}

	board := p.FindBoardByName("Eurocard 100x160")
	if board == nil {
		t.Fatal("expected to find the Eurocard board preset")
	}

	missingBoard := p.FindBoardByName("Nonexistent Board")
	if missingBoard != nil {
		t.Error("expected nil for nonexistent board")
	}
}

func TestPresetsProfileAndBoardNames(t *testing.T) {
	p := model.DefaultPresets()

	profileNames := p.ProfileNames()
	if len(profileNames) != len(p.Profiles) {
		t.Errorf("expected %d profile names, got %d", len(p.Profiles), len(profileNames))
	}

	boardNames := p.BoardNames()
	if len(boardNames) != len(p.Boards) {
		t.Errorf("expected %d board names, got %d", len(p.Boards), len(boardNames))
	}
}

func TestBoardPresetToBoardConfig(t *testing.T) {
	bp := model.NewBoardPreset("Feather", 50.8, 22.9, 2)
	bc := bp.ToBoardConfig()

	if len(bc.DimensionsMM) != 2 {
		t.Fatalf("expected 2 dimensions, got %d", len(bc.DimensionsMM))
	}
	if bc.DimensionsMM[0] != 50.8 {
		t.Errorf("expected width 50.8, got %f", bc.DimensionsMM[0])
	}
	if bc.Layers != 2 {
		t.Errorf("expected 2 layers, got %d", bc.Layers)
	}

	board := bc.Size()
	if board.HeightMM != 22.9 {
		t.Errorf("expected height 22.9, got %f", board.HeightMM)
	}
}
