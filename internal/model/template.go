package model

import (
	"time"

	"github.com/google/uuid"
)

// DesignTemplate represents a reusable design configuration that captures
// the board, component list and MCU designation but not placement results.
type DesignTemplate struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	CreatedAt   string      `json:"created_at"`
	UpdatedAt   string      `json:"updated_at"`
	Board       BoardConfig `json:"board"`
	Components  []Instance  `json:"components"`
	MCUID       string      `json:"mcu_id"`
}

// NewDesignTemplate creates a new template from the given design.
// It copies the board and component list but intentionally excludes results.
func NewDesignTemplate(name, description string, d Design) DesignTemplate {
	now := time.Now().UTC().Format(time.RFC3339)
	return DesignTemplate{
		ID:          uuid.New().String()[:8],
		Name:        name,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
		Board:       d.Board,
		Components:  copyInstances(d.Components),
		MCUID:       d.MCUID,
	}
}

// ToDesign creates a new Design from this template. The component list is
// copied so edits to the design do not touch the template.
func (t DesignTemplate) ToDesign(designName string) Design {
	return Design{
		Name:       designName,
		Board:      t.Board,
		Components: copyInstances(t.Components),
		MCUID:      t.MCUID,
	}
}

// TemplateStore holds a collection of design templates.
type TemplateStore struct {
	Templates []DesignTemplate `json:"templates"`
}

// NewTemplateStore creates an empty template store.
func NewTemplateStore() TemplateStore {
	return TemplateStore{
		Templates: []DesignTemplate{},
	}
}

// Add adds a template to the store.
func (ts *TemplateStore) Add(t DesignTemplate) {
	ts.Templates = append(ts.Templates, t)
}

// Remove removes a template by ID. Returns true if found and removed.
func (ts *TemplateStore) Remove(id string) bool {
	for i, t := range ts.Templates {
		if t.ID == id {
			ts.Templates = append(ts.Templates[:i], ts.Templates[i+1:]...)
			return true
		}
	}
	return false
}

// FindByID returns a pointer to the template with the given ID, or nil.
func (ts *TemplateStore) FindByID(id string) *DesignTemplate {
	for i := range ts.Templates {
		if ts.Templates[i].ID == id {
			return &ts.Templates[i]
		}
	}
	return nil
}

// Names returns a list of template names in order.
func (ts *TemplateStore) Names() []string {
	names := make([]string, len(ts.Templates))
	for i, t := range ts.Templates {
		names[i] = t.Name
	}
	return names
}

// FindByName returns a pointer to the first template with the given name, or nil.
func (ts *TemplateStore) FindByName(name string) *DesignTemplate {
	for i := range ts.Templates {
		if ts.Templates[i].Name == name {
			return &ts.Templates[i]
		}
	}
	return nil
}

// BuiltinTemplates returns the starter designs shipped with the application.
func BuiltinTemplates() []DesignTemplate {
	return []DesignTemplate{
		NewDesignTemplate("esp32-sensor-node", "ESP32 with BME280 environment sensor over I2C", Design{
			Board: BoardConfig{DimensionsMM: []float64{60, 40}, Layers: 2, PowerSource: "usb"},
			Components: []Instance{
				{ComponentID: "esp32_wroom_32"},
				{ComponentID: "ams1117_33"},
				{ComponentID: "bme280"},
				{ComponentID: "usb_c_connector"},
				{ComponentID: "cap_10uf_0805"},
				{ComponentID: "cap_100nf_0402", Quantity: 2},
				{ComponentID: "res_4k7_0402", Quantity: 2},
				{ComponentID: "led_0603_red"},
				{ComponentID: "res_2k2_0402"},
			},
			MCUID: "esp32_wroom_32",
		}),
		NewDesignTemplate("rp2040-dev-board", "RP2040 breakout with USB-C and ESD protection", Design{
			Board: BoardConfig{DimensionsMM: []float64{50, 50}, Layers: 2, PowerSource: "usb"},
			Components: []Instance{
				{ComponentID: "rp2040"},
				{ComponentID: "ams1117_33"},
				{ComponentID: "usb_c_connector"},
				{ComponentID: "usblc6_2sc6"},
				{ComponentID: "cap_10uf_0805"},
				{ComponentID: "cap_100nf_0402", Quantity: 3},
				{ComponentID: "led_0603_red"},
				{ComponentID: "res_2k2_0402"},
			},
			MCUID: "rp2040",
		}),
		NewDesignTemplate("lora-field-sensor", "Battery powered LoRa node with environment sensing", Design{
			Board: BoardConfig{DimensionsMM: []float64{80, 60}, Layers: 2, PowerSource: "lipo"},
			Components: []Instance{
				{ComponentID: "esp32_wroom_32"},
				{ComponentID: "rfm95w"},
				{ComponentID: "sma_edge_connector"},
				{ComponentID: "tp4056"},
				{ComponentID: "conn_jst_ph_2"},
				{ComponentID: "bme280"},
				{ComponentID: "cap_100nf_0402", Quantity: 2},
				{ComponentID: "res_4k7_0402", Quantity: 2},
				{ComponentID: "mounting_hole_m3", Quantity: 4},
			},
			MCUID: "esp32_wroom_32",
		}),
	}
}

// copyInstances creates a copy of an instance slice.
func copyInstances(in []Instance) []Instance {
	if in == nil {
		return []Instance{}
	}
	cp := make([]Instance, len(in))
	copy(cp, in)
	return cp
}
