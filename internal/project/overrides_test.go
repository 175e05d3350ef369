package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/eisla/eisla/internal/model"
)

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }

func TestSaveAndLoadOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, OverridesFileName)

	overrides := model.PlacementOverrides{
		"U1": {XMM: floatPtr(30), YMM: floatPtr(22.5)},
		"C3": {RotationDeg: intPtr(90)},
	}

	if err := SaveOverrides(path, overrides); err != nil {
		t.Fatalf("SaveOverrides failed: %v", err)
	}

	loaded, err := LoadOverrides(path)
	if err != nil {
		t.Fatalf("LoadOverrides failed: %v", err)
	}

	if len(loaded) != 2 {
		t.Fatalf("expected 2 overrides, got %d", len(loaded))
	}
	u1 := loaded["U1"]
	if u1.XMM == nil || *u1.XMM != 30 {
		t.Errorf("expected U1 x=30, got %v", u1.XMM)
	}
	if u1.RotationDeg != nil {
		t.Error("expected U1 rotation to stay unset")
	}
	c3 := loaded["C3"]
	if c3.RotationDeg == nil || *c3.RotationDeg != 90 {
		t.Errorf("expected C3 rotation=90, got %v", c3.RotationDeg)
	}
}

func TestLoadOverridesMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nonexistent.json")

	overrides, err := LoadOverrides(path)
	if err != nil {
		t.Fatalf("expected no error for missing file, got: %v", err)
	}
	if len(overrides) != 0 {
		t.Errorf("expected empty override set, got %d entries", len(overrides))
	}
}

func TestLoadOverridesInvalidJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.json")

	if err := os.WriteFile(path, []byte("{broken"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := LoadOverrides(path)
	if err == nil {
		t.Fatal("expected error for invalid JSON")
	}
}

func TestMergeOverrides(t *testing.T) {
	base := model.PlacementOverrides{
		"U1": {XMM: floatPtr(10), RotationDeg: intPtr(90)},
	}
	extra := model.PlacementOverrides{
		"U1": {XMM: floatPtr(99), YMM: floatPtr(5)},
		"R9": {RotationDeg: intPtr(180)},
	}

	merged := MergeOverrides(base, extra)

	if len(merged) != 2 {
		t.Fatalf("expected 2 refs, got %d", len(merged))
	}
	u1 := merged["U1"]
	if u1.XMM == nil || *u1.XMM != 99 {
		t.Errorf("expected extra x=99 to win, got %v", u1.XMM)
	}
	if u1.YMM == nil || *u1.YMM != 5 {
		t.Errorf("expected y=5 from extra, got %v", u1.YMM)
	}
	if u1.RotationDeg == nil || *u1.RotationDeg != 90 {
		t.Errorf("expected rotation=90 kept from base, got %v", u1.RotationDeg)
	}
	r9 := merged["R9"]
	if r9.RotationDeg == nil || *r9.RotationDeg != 180 {
		t.Errorf("expected R9 rotation=180, got %v", r9.RotationDeg)
	}
}

func TestMergeOverridesNilBase(t *testing.T) {
	extra := model.PlacementOverrides{
		"U1": {XMM: floatPtr(12)},
	}

	merged := MergeOverrides(nil, extra)
	if len(merged) != 1 {
		t.Fatalf("expected 1 ref, got %d", len(merged))
	}
	if merged["U1"].XMM == nil || *merged["U1"].XMM != 12 {
		t.Error("expected extra override carried into merged set")
	}
}

func TestLoadedOverridesApply(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, OverridesFileName)

	overrides := model.PlacementOverrides{
		"U1": {XMM: floatPtr(60), YMM: floatPtr(20), RotationDeg: intPtr(90)},
	}
	if err := SaveOverrides(path, overrides); err != nil {
		t.Fatalf("SaveOverrides failed: %v", err)
	}

	loaded, err := LoadOverrides(path)
	if err != nil {
		t.Fatalf("LoadOverrides failed: %v", err)
	}

	result := &model.PlacementResult{
		Board: model.DefaultBoard(),
		Components: []model.PlacedComponent{
			{Ref: "U1", XMM: 50, YMM: 40, WidthMM: 18, HeightMM: 25.5},
		},
	}
	applied := loaded.Apply(result)

	if len(applied) != 1 || applied[0] != "U1" {
		t.Fatalf("expected U1 applied, got %v", applied)
	}
	if result.Components[0].XMM != 60 {
		t.Errorf("expected x=60 after apply, got %f", result.Components[0].XMM)
	}
	if result.Components[0].RotationDeg != 90 {
		t.Errorf("expected rotation=90 after apply, got %d", result.Components[0].RotationDeg)
	}
}
