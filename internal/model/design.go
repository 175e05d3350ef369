package model

// Instance is one entry of the component list to place. Multiples are
// represented as repeated entries, one per physical part; Quantity is
// metadata carried for review output and never expands entries here.
type Instance struct {
	ComponentID string   `json:"component_id"`
	DisplayName string   `json:"display_name,omitempty"`
	Category    string   `json:"category,omitempty"`
	Quantity    int      `json:"quantity,omitempty"`
	Satisfies   []string `json:"satisfies,omitempty"`
	AutoAdded   bool     `json:"auto_added,omitempty"`
	PowerDrawMA int      `json:"power_consumption_ma,omitempty"`
}

// Count returns the effective instance count, treating a zero quantity
// as one.
func (in Instance) Count() int {
	if in.Quantity > 1 {
		return in.Quantity
	}
	return 1
}

// PowerBudget summarizes the design's estimated current draw.
type PowerBudget struct {
	TotalMA int    `json:"total_ma"`
	Source  string `json:"source,omitempty"`
}

// BoardConfig is the board descriptor as designs supply it.
type BoardConfig struct {
	DimensionsMM []float64 `json:"dimensions_mm,omitempty"` // [width, height]
	Layers       int       `json:"layers,omitempty"`
	PowerSource  string    `json:"power_source,omitempty"` // usb, lipo, dc_jack, mains
}

// Size resolves the board dimensions, falling back to the 100x80 default
// when absent or malformed.
func (bc BoardConfig) Size() Board {
	if len(bc.DimensionsMM) >= 2 && bc.DimensionsMM[0] > 0 && bc.DimensionsMM[1] > 0 {
		return Board{WidthMM: bc.DimensionsMM[0], HeightMM: bc.DimensionsMM[1]}
	}
	return DefaultBoard()
}

// Design is the full pipeline input: board, ordered component list and the
// optional MCU designation used as the wiring-cost hub.
type Design struct {
	Name       string      `json:"name,omitempty"`
	Board      BoardConfig `json:"board"`
	Components []Instance  `json:"components"`
	MCUID      string      `json:"mcu_id,omitempty"`
}

// TotalDrawMA sums the per-instance current estimates, scaled by quantity.
func (d Design) TotalDrawMA() int {
	var total int
	for _, inst := range d.Components {
		total += inst.PowerDrawMA * inst.Count()
	}
	return total
}

// ResolvedInput mirrors the resolved.json artifact written into a job
// directory: the component list, the MCU pick and the power budget.
type ResolvedInput struct {
	ResolvedComponents []Instance   `json:"resolved_components"`
	MCU                *MCUPick     `json:"mcu,omitempty"`
	PowerBudget        *PowerBudget `json:"power_budget,omitempty"`
}

// MCUPick identifies the catalog entry designated as the wiring hub.
type MCUPick struct {
	ID string `json:"id"`
}

// ToResolvedInput converts a design into the resolved.json document shape.
func (d Design) ToResolvedInput() ResolvedInput {
	ri := ResolvedInput{ResolvedComponents: d.Components}
	if ri.ResolvedComponents == nil {
		ri.ResolvedComponents = []Instance{}
	}
	if d.MCUID != "" {
		ri.MCU = &MCUPick{ID: d.MCUID}
	}
	ri.PowerBudget = &PowerBudget{
		TotalMA: d.TotalDrawMA(),
		Source:  d.Board.PowerSource,
	}
	return ri
}

// ToDesign reassembles a design from the split job artifacts.
func (ri ResolvedInput) ToDesign(bc BoardConfig) Design {
	d := Design{Board: bc, Components: ri.ResolvedComponents}
	if ri.MCU != nil {
		d.MCUID = ri.MCU.ID
	}
	return d
}
