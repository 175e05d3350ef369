package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/eisla/eisla/internal/model"
)

// DefaultClearanceMM pads a courtyard on every side when an entry carries
// no explicit clearance.
const DefaultClearanceMM = 0.25

// Dimensions is a component body size in millimetres.
type Dimensions struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// OutputCapReq describes the output capacitor a regulator requires
// downstream to stay stable.
type OutputCapReq struct {
	Value string `json:"value"`
	Type  string `json:"type,omitempty"`
	Notes string `json:"notes,omitempty"`
}

// PowerPin ties a group of pads to a raw supply net name (GND, 3V3, VIN).
type PowerPin struct {
	Net  string   `json:"net"`
	Pins []string `json:"pins"`
}

// OutputPin marks a regulator output pad and the net it drives.
type OutputPin struct {
	Net  string `json:"net"`
	VOUT string `json:"VOUT,omitempty"`
}

// PinMap carries the electrical pin data the netlist builder consumes.
// Interfaces maps an interface name (I2C, SPI, UART, USB, CAN, 1-Wire) to
// its signal roles and pad numbers, e.g. {"I2C": {"SDA": "21", "SCL": "22"}}.
type PinMap struct {
	Power      []PowerPin                   `json:"power,omitempty"`
	Output     *OutputPin                   `json:"output,omitempty"`
	Interfaces map[string]map[string]string `json:"interfaces,omitempty"`
}

// Definition is one catalog entry: the static, design-independent
// description of a part. Physical fields are optional; Resolve fills gaps
// from per-category fallback tables so placement never stalls on sparse
// entries.
type Definition struct {
	ID           string `json:"id"`
	DisplayName  string `json:"display_name"`
	Category     string `json:"category"`
	Subcategory  string `json:"subcategory,omitempty"`
	MPN          string `json:"mpn,omitempty"`
	Manufacturer string `json:"manufacturer,omitempty"`
	Package      string `json:"package,omitempty"`

	DimensionsMM       *Dimensions `json:"dimensions_mm,omitempty"`
	PlacementZone      string      `json:"placement_zone,omitempty"`
	PlacementPriority  *int        `json:"placement_priority,omitempty"`
	CourtyardClearance *float64    `json:"courtyard_clearance_mm,omitempty"`
	RefPrefix          string      `json:"ref_designator_prefix,omitempty"`

	KiCadSymbol    string `json:"kicad_symbol,omitempty"`
	KiCadFootprint string `json:"kicad_footprint,omitempty"`

	Interfaces   []string `json:"interfaces,omitempty"`
	Capabilities []string `json:"capabilities,omitempty"`

	RequiresDecoupling bool          `json:"requires_decoupling,omitempty"`
	RequiredOutputCap  *OutputCapReq `json:"required_output_cap,omitempty"`
	PowerDrawMA        int           `json:"power_consumption_ma,omitempty"`
	LogicVoltage       float64       `json:"logic_voltage_v,omitempty"`

	Price1    float64 `json:"price_1,omitempty"`
	Price10   float64 `json:"price_10,omitempty"`
	Price100  float64 `json:"price_100,omitempty"`
	DigiKeyPN string  `json:"digikey_pn,omitempty"`
	LCSCPN    string  `json:"lcsc_pn,omitempty"`

	Pins *PinMap `json:"pins,omitempty"`
}

// UnitCost returns the per-unit price at the given order quantity, using
// the best matching price break. Entries without pricing return 0.
func (d Definition) UnitCost(qty int) float64 {
	switch {
	case qty >= 100 && d.Price100 > 0:
		return d.Price100
	case qty >= 10 && d.Price10 > 0:
		return d.Price10
	default:
		return d.Price1
	}
}

// SymbolLib returns the KiCad symbol library name, or "" when unset.
func (d Definition) SymbolLib() string {
	if lib, _, found := strings.Cut(d.KiCadSymbol, ":"); found {
		return lib
	}
	return ""
}

// FootprintLib returns the KiCad footprint library name, or "" when unset.
func (d Definition) FootprintLib() string {
	if lib, _, found := strings.Cut(d.KiCadFootprint, ":"); found {
		return lib
	}
	return ""
}

// HasInterface reports whether the entry lists the named bus interface.
func (d Definition) HasInterface(name string) bool {
	for _, iface := range d.Interfaces {
		if strings.EqualFold(iface, name) {
			return true
		}
	}
	return false
}

// HasCapability reports whether the entry lists the named capability.
func (d Definition) HasCapability(name string) bool {
	for _, cap := range d.Capabilities {
		if strings.EqualFold(cap, name) {
			return true
		}
	}
	return false
}

// Fallback physical data keyed by category, applied when an entry omits
// the field. Unknown categories use the zero-key defaults below.
var fallbackDims = map[model.Category]Dimensions{
	model.CategoryMCU:         {Width: 10.0, Height: 10.0},
	model.CategoryPower:       {Width: 6.0, Height: 4.0},
	model.CategorySensor:      {Width: 5.0, Height: 4.0},
	model.CategoryComms:       {Width: 16.0, Height: 16.0},
	model.CategoryMotorDriver: {Width: 5.0, Height: 5.0},
	model.CategoryDisplay:     {Width: 30.0, Height: 25.0},
	model.CategoryConnector:   {Width: 8.0, Height: 6.0},
	model.CategoryPassive:     {Width: 1.0, Height: 0.5},
}

var defaultDims = Dimensions{Width: 5.0, Height: 5.0}

var fallbackZone = map[model.Category]model.Zone{
	model.CategoryMCU:         model.ZoneCentre,
	model.CategoryPower:       model.ZonePowerColumn,
	model.CategorySensor:      model.ZoneCentreRight,
	model.CategoryComms:       model.ZoneEdgeTop,
	model.CategoryMotorDriver: model.ZoneEdgeBottom,
	model.CategoryDisplay:     model.ZoneEdgeTop,
	model.CategoryConnector:   model.ZoneEdgeBottom,
	model.CategoryPassive:     model.ZoneAny,
}

var fallbackPriority = map[model.Category]int{
	model.CategoryMCU:         1,
	model.CategoryComms:       2,
	model.CategoryConnector:   3,
	model.CategoryPower:       4,
	model.CategoryMotorDriver: 5,
	model.CategoryDisplay:     6,
	model.CategorySensor:      7,
	model.CategoryPassive:     9,
}

const defaultPriority = 9

var categoryPrefix = map[model.Category]string{
	model.CategoryMCU:         "U",
	model.CategoryPower:       "U",
	model.CategorySensor:      "U",
	model.CategoryComms:       "U",
	model.CategoryMotorDriver: "U",
	model.CategoryDisplay:     "LCD",
	model.CategoryConnector:   "J",
	model.CategoryPassive:     "?",
}

var subcategoryPrefix = map[string]string{
	"capacitor":     "C",
	"resistor":      "R",
	"diode":         "D",
	"diode_flyback": "D",
	"led":           "LED",
	"mosfet_n":      "Q",
	"mosfet_p":      "Q",
	"tvs_esd":       "D",
	"tvs_diode":     "D",
	"crystal":       "X",
	"inductor":      "L",
	"fuse":          "F",
	"test_point":    "TP",
	"fiducial":      "FID",
}

// Catalog is an immutable component database. It is safe for concurrent
// readers; Merge returns a new catalog instead of mutating.
type Catalog struct {
	defs map[string]Definition
	ids  []string
}

// New builds a catalog from definitions. Later duplicates of an ID win.
func New(defs []Definition) *Catalog {
	c := &Catalog{defs: make(map[string]Definition, len(defs))}
	for _, d := range defs {
		if d.ID == "" {
			continue
		}
		if _, seen := c.defs[d.ID]; !seen {
			c.ids = append(c.ids, d.ID)
		}
		c.defs[d.ID] = d
	}
	sort.Strings(c.ids)
	return c
}

// Load reads a catalog overlay file: a JSON object keyed by component ID.
// The ID key wins over any id field inside the entry.
func Load(path string) ([]Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog file: %w", err)
	}
	byID := map[string]Definition{}
	if err := json.Unmarshal(data, &byID); err != nil {
		return nil, fmt.Errorf("parsing catalog file %s: %w", path, err)
	}
	defs := make([]Definition, 0, len(byID))
	for id, d := range byID {
		d.ID = id
		defs = append(defs, d)
	}
	sort.Slice(defs, func(i, j int) bool { return defs[i].ID < defs[j].ID })
	return defs, nil
}

// Len returns the number of entries.
func (c *Catalog) Len() int { return len(c.defs) }

// Get looks up an entry by ID.
func (c *Catalog) Get(id string) (Definition, bool) {
	d, ok := c.defs[id]
	return d, ok
}

// IDs returns all entry IDs in sorted order.
func (c *Catalog) IDs() []string {
	out := make([]string, len(c.ids))
	copy(out, c.ids)
	return out
}

// All returns every definition sorted by ID.
func (c *Catalog) All() []Definition {
	out := make([]Definition, 0, len(c.ids))
	for _, id := range c.ids {
		out = append(out, c.defs[id])
	}
	return out
}

// ByCategory returns the definitions in one category, sorted by ID.
func (c *Catalog) ByCategory(cat model.Category) []Definition {
	var out []Definition
	for _, id := range c.ids {
		if model.Category(c.defs[id].Category) == cat {
			out = append(out, c.defs[id])
		}
	}
	return out
}

// Search returns definitions whose ID, display name or MPN contains the
// term, case-insensitively, sorted by ID.
func (c *Catalog) Search(term string) []Definition {
	needle := strings.ToLower(strings.TrimSpace(term))
	if needle == "" {
		return c.All()
	}
	var out []Definition
	for _, id := range c.ids {
		d := c.defs[id]
		if strings.Contains(strings.ToLower(d.ID), needle) ||
			strings.Contains(strings.ToLower(d.DisplayName), needle) ||
			strings.Contains(strings.ToLower(d.MPN), needle) {
			out = append(out, d)
		}
	}
	return out
}

// Merge returns a new catalog with overlay entries added on top of this
// one. Overlay entries replace same-ID entries.
func (c *Catalog) Merge(overlay []Definition) *Catalog {
	merged := make([]Definition, 0, len(c.defs)+len(overlay))
	merged = append(merged, c.All()...)
	merged = append(merged, overlay...)
	return New(merged)
}

// Resolve turns one design instance into a concrete placeable component.
// Missing catalog entries and missing fields never fail: dimensions, zone,
// priority and ref prefix fall back per category, and a fully unknown ID
// resolves to a 5x5 mm part in the "any" zone at the lowest priority.
func (c *Catalog) Resolve(inst model.Instance) model.Component {
	def, known := c.Get(inst.ComponentID)

	rawCat := model.Category(def.Category)

	dims := defaultDims
	if def.DimensionsMM != nil && def.DimensionsMM.Width > 0 && def.DimensionsMM.Height > 0 {
		dims = *def.DimensionsMM
	} else if d, ok := fallbackDims[rawCat]; ok {
		dims = d
	}

	zone := model.ZoneAny
	if def.PlacementZone != "" {
		zone = model.ParseZone(def.PlacementZone)
	} else if z, ok := fallbackZone[rawCat]; ok {
		zone = z
	}

	priority := defaultPriority
	if def.PlacementPriority != nil {
		priority = *def.PlacementPriority
	} else if p, ok := fallbackPriority[rawCat]; ok {
		priority = p
	}

	clearance := DefaultClearanceMM
	if def.CourtyardClearance != nil {
		clearance = *def.CourtyardClearance
	}

	prefix := def.RefPrefix
	if prefix == "" {
		if p, ok := subcategoryPrefix[def.Subcategory]; ok {
			prefix = p
		} else if p, ok := categoryPrefix[rawCat]; ok {
			prefix = p
		} else {
			prefix = "U"
		}
	}

	name := inst.DisplayName
	if name == "" {
		name = def.DisplayName
	}
	if name == "" {
		name = inst.ComponentID
	}

	outCat := rawCat
	if !known || outCat == "" {
		outCat = model.CategoryPassive
	}

	return model.Component{
		ComponentID: inst.ComponentID,
		DisplayName: name,
		RefPrefix:   prefix,
		Category:    outCat,
		Subcategory: def.Subcategory,
		WidthMM:     dims.Width,
		HeightMM:    dims.Height,
		ClearanceMM: clearance,
		Zone:        zone,
		Priority:    priority,
	}
}

// ResolveAll resolves a component list in order.
func (c *Catalog) ResolveAll(insts []model.Instance) []model.Component {
	out := make([]model.Component, 0, len(insts))
	for _, inst := range insts {
		out = append(out, c.Resolve(inst))
	}
	return out
}
