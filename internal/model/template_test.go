package model

import (
	"testing"
)

func sensorDesign() Design {
	return Design{
		Name:  "node",
		Board: BoardConfig{DimensionsMM: []float64{60, 40}, Layers: 2},
		Components: []Instance{
			{ComponentID: "esp32_wroom_32"},
			{ComponentID: "bme280"},
		},
		MCUID: "esp32_wroom_32",
	}
}

func TestNewDesignTemplate(t *testing.T) {
	tmpl := NewDesignTemplate("Sensor Node", "Basic sensing board", sensorDesign())

	if tmpl.Name != "Sensor Node" {
		t.Errorf("expected name 'Sensor Node', got %q", tmpl.Name)
	}
	if tmpl.Description != "Basic sensing board" {
		t.Errorf("unexpected description %q", tmpl.Description)
	}
	if tmpl.ID == "" {
		t.Error("expected non-empty ID")
	}
	if tmpl.CreatedAt == "" {
		t.Error("expected non-empty CreatedAt")
	}
	if len(tmpl.Components) != 2 {
		t.Errorf("expected 2 components, got %d", len(tmpl.Components))
	}
	if tmpl.MCUID != "esp32_wroom_32" {
		t.Errorf("expected MCU id carried over, got %q", tmpl.MCUID)
	}
}

func TestDesignTemplate_ToDesign(t *testing.T) {
	tmpl := NewDesignTemplate("Test", "desc", sensorDesign())
	d := tmpl.ToDesign("My Board")

	if d.Name != "My Board" {
		t.Errorf("expected design name 'My Board', got %q", d.Name)
	}
	if len(d.Components) != 2 {
		t.Fatalf("expected 2 components, got %d", len(d.Components))
	}

	// The design's list must be independent of the template.
	d.Components[0].ComponentID = "changed"
	if tmpl.Components[0].ComponentID != "esp32_wroom_32" {
		t.Error("editing the design must not touch the template")
	}
}

func TestTemplateStoreAddRemoveFind(t *testing.T) {
	ts := NewTemplateStore()
	if len(ts.Templates) != 0 {
		t.Fatal("new store should be empty")
	}

	a := NewDesignTemplate("A", "", sensorDesign())
	b := NewDesignTemplate("B", "", sensorDesign())
	ts.Add(a)
	ts.Add(b)

	if got := ts.FindByID(a.ID); got == nil || got.Name != "A" {
		t.Error("FindByID failed for A")
	}
	if got := ts.FindByName("B"); got == nil || got.ID != b.ID {
		t.Error("FindByName failed for B")
	}
	if ts.FindByID("missing") != nil {
		t.Error("expected nil for unknown id")
	}

	names := ts.Names()
	if len(names) != 2 || names[0] != "A" || names[1] != "B" {
		t.Errorf("expected [A B], got %v", names)
	}

	if !ts.Remove(a.ID) {
		t.Error("expected Remove to report success")
	}
	if ts.Remove(a.ID) {
		t.Error("expected Remove to fail for already-removed id")
	}
	if len(ts.Templates) != 1 {
		t.Errorf("expected 1 template left, got %d", len(ts.Templates))
	}
}

func TestBuiltinTemplates(t *testing.T) {
	builtins := BuiltinTemplates()
	if len(builtins) == 0 {
		t.Fatal("expected built-in templates")
	}

	for _, tmpl := range builtins {
		if tmpl.Name == "" || tmpl.ID == "" {
			t.Errorf("template missing name or id: %+v", tmpl)
		}
		if len(tmpl.Components) == 0 {
			t.Errorf("template %q has no components", tmpl.Name)
		}
		if tmpl.MCUID == "" {
			t.Errorf("template %q has no MCU", tmpl.Name)
		}
		found := false
		for _, c := range tmpl.Components {
			if c.ComponentID == tmpl.MCUID {
				found = true
			}
		}
		if !found {
			t.Errorf("template %q names MCU %q outside its component list", tmpl.Name, tmpl.MCUID)
		}
	}

	if builtins[0].Name != "esp32-sensor-node" {
		t.Errorf("expected esp32-sensor-node first, got %s", builtins[0].Name)
	}
}
