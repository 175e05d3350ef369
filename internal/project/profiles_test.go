package project

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/eisla/eisla/internal/model"
)

func testProfiles() []model.AnnealProfile {
	return []model.AnnealProfile{
		{
			Name:        "aggressive",
			Description: "Hot start, fast cooling",
			Settings: model.AnnealSettings{
				InitialTemp:   120,
				MinTemp:       0.5,
				CoolingRate:   0.99,
				MaxIterations: 4000,
				TimeBudgetSec: 5,
			},
		},
		{
			Name:        "overnight",
			Description: "Very slow cooling for final spins",
			Settings: model.AnnealSettings{
				InitialTemp:   80,
				MinTemp:       0.1,
				CoolingRate:   0.9999,
				MaxIterations: 200000,
				TimeBudgetSec: 600,
			},
		},
	}
}

func TestSaveAndLoadCustomProfiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "profiles.yaml")

	if err := SaveCustomProfiles(path, testProfiles()); err != nil {
		t.Fatalf("SaveCustomProfiles: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("profiles file was not created: %v", err)
	}
	if !strings.Contains(string(data), "cooling_rate: 0.99") {
		t.Error("expected YAML keys from the settings tags in the saved file")
	}

	loaded, err := LoadCustomProfiles(path)
	if err != nil {
		t.Fatalf("LoadCustomProfiles: %v", err)
	}

	if len(loaded) != 2 {
		t.Fatalf("expected 2 profiles, got %d", len(loaded))
	}
	if loaded[0].Name != "aggressive" {
		t.Errorf("expected name aggressive, got %s", loaded[0].Name)
	}
	if loaded[1].Name != "overnight" {
		t.Errorf("expected name overnight, got %s", loaded[1].Name)
	}
	if loaded[0].Settings.CoolingRate != 0.99 {
		t.Errorf("expected cooling rate 0.99, got %g", loaded[0].Settings.CoolingRate)
	}
	if loaded[1].Settings.MaxIterations != 200000 {
		t.Errorf("expected 200000 iterations, got %d", loaded[1].Settings.MaxIterations)
	}
}

func TestLoadCustomProfilesNonExistent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nonexistent.yaml")

	profiles, err := LoadCustomProfiles(path)
	if err != nil {
		t.Fatalf("expected no error for nonexistent file, got: %v", err)
	}
	if len(profiles) != 0 {
		t.Fatalf("expected 0 profiles for nonexistent file, got %d", len(profiles))
	}
}

func TestLoadCustomProfilesInvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")

	if err := os.WriteFile(path, []byte("profiles: 42"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := LoadCustomProfiles(path)
	if err == nil {
		t.Fatal("expected error for invalid profile document")
	}
}

func TestLoadCustomProfilesRejectsBadSchedule(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "profiles.yaml")

	broken := testProfiles()
	broken[0].Settings.CoolingRate = 1.5
	if err := SaveCustomProfiles(path, broken); err != nil {
		t.Fatalf("SaveCustomProfiles: %v", err)
	}

	_, err := LoadCustomProfiles(path)
	if err == nil {
		t.Fatal("expected error for cooling rate above 1")
	}
	if !strings.Contains(err.Error(), "cooling_rate") {
		t.Errorf("expected cooling_rate in error, got: %v", err)
	}
}

func TestValidateProfile(t *testing.T) {
	valid := testProfiles()[0]

	tests := []struct {
		name    string
		mutate  func(*model.AnnealProfile)
		wantErr bool
	}{
		{"valid", func(p *model.AnnealProfile) {}, false},
		{"builtin balanced", func(p *model.AnnealProfile) { *p = model.AnnealProfiles[1] }, false},
		{"no name", func(p *model.AnnealProfile) { p.Name = "" }, true},
		{"zero initial temp", func(p *model.AnnealProfile) { p.Settings.InitialTemp = 0 }, true},
		{"zero min temp", func(p *model.AnnealProfile) { p.Settings.MinTemp = 0 }, true},
		{"min above initial", func(p *model.AnnealProfile) { p.Settings.MinTemp = 200 }, true},
		{"zero cooling rate", func(p *model.AnnealProfile) { p.Settings.CoolingRate = 0 }, true},
		{"cooling rate of one", func(p *model.AnnealProfile) { p.Settings.CoolingRate = 1 }, true},
		{"zero iterations", func(p *model.AnnealProfile) { p.Settings.MaxIterations = 0 }, true},
		{"negative budget", func(p *model.AnnealProfile) { p.Settings.TimeBudgetSec = -1 }, true},
	}

	for _, tt := range tests {
		p := valid
		tt.mutate(&p)
		err := ValidateProfile(p)
		if tt.wantErr && err == nil {
			t.Errorf("%s: expected error, got nil", tt.name)
		}
		if !tt.wantErr && err != nil {
			t.Errorf("%s: expected no error, got: %v", tt.name, err)
		}
	}
}

func TestMergedProfiles(t *testing.T) {
	custom := []model.AnnealProfile{
		{
			Name:        "balanced",
			Description: "Tuned balanced schedule",
			Settings: model.AnnealSettings{
				InitialTemp:   80,
				MinTemp:       0.5,
				CoolingRate:   0.997,
				MaxIterations: 9999,
				TimeBudgetSec: 10,
			},
		},
		testProfiles()[0],
	}

	merged := MergedProfiles(custom)
	if len(merged) != len(model.AnnealProfiles)+1 {
		t.Fatalf("expected %d profiles, got %d", len(model.AnnealProfiles)+1, len(merged))
	}
	if merged[0].Name != "fast" {
		t.Errorf("expected builtin order to start with fast, got %s", merged[0].Name)
	}
	if merged[1].Settings.MaxIterations != 9999 {
		t.Errorf("expected custom balanced to replace the builtin, got %d iterations", merged[1].Settings.MaxIterations)
	}
	if merged[len(merged)-1].Name != "aggressive" {
		t.Errorf("expected new custom profile appended last, got %s", merged[len(merged)-1].Name)
	}
}

func TestMergedProfilesNoCustom(t *testing.T) {
	merged := MergedProfiles(nil)
	if len(merged) != len(model.AnnealProfiles) {
		t.Fatalf("expected the builtin profiles only, got %d", len(merged))
	}
}

func TestExportAndImportProfile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "exported.yaml")

	original := testProfiles()[1]

	if err := ExportProfile(path, original); err != nil {
		t.Fatalf("ExportProfile: %v", err)
	}

	imported, err := ImportProfile(path)
	if err != nil {
		t.Fatalf("ImportProfile: %v", err)
	}

	if imported.Name != "overnight" {
		t.Errorf("expected name overnight, got %s", imported.Name)
	}
	if imported.Settings.CoolingRate != 0.9999 {
		t.Errorf("expected cooling rate 0.9999, got %g", imported.Settings.CoolingRate)
	}
	if imported.Settings.TimeBudgetSec != 600 {
		t.Errorf("expected budget 600, got %g", imported.Settings.TimeBudgetSec)
	}
}

func TestImportProfileNoName(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "noname.yaml")

	if err := os.WriteFile(path, []byte("description: no name here"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := ImportProfile(path)
	if err == nil {
		t.Fatal("expected error for profile without name")
	}
}

func TestImportProfileInvalidSchedule(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.yaml")

	doc := "name: broken\nsettings:\n  initial_temp: 0\n"
	if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := ImportProfile(path)
	if err == nil {
		t.Fatal("expected error for unusable schedule")
	}
}

func TestSaveCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "dir")
	path := filepath.Join(dir, "profiles.yaml")

	if err := SaveCustomProfiles(path, []model.AnnealProfile{}); err != nil {
		t.Fatalf("SaveCustomProfiles should create directories: %v", err)
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Fatal("file was not created in nested directory")
	}
}
