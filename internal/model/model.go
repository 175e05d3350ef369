package model

import "math"

// BoardMarginMM is the usable-area inset from every board edge. Component
// centres are always clamped so footprints stay inside the margin.
const BoardMarginMM = 3.0

// Zone represents a named placement region on the board.
type Zone string

const (
	ZoneEdgeTop     Zone = "edge_top"
	ZoneEdgeBottom  Zone = "edge_bottom"
	ZoneEdgeLeft    Zone = "edge_left"
	ZoneEdgeRight   Zone = "edge_right"
	ZoneCentre      Zone = "centre"
	ZoneCentreRight Zone = "centre_right"
	ZonePowerColumn Zone = "power_column"
	ZoneAny         Zone = "any"
)

// knownZones lists every zone with a dedicated centroid.
var knownZones = map[Zone]bool{
	ZoneEdgeTop: true, ZoneEdgeBottom: true, ZoneEdgeLeft: true,
	ZoneEdgeRight: true, ZoneCentre: true, ZoneCentreRight: true,
	ZonePowerColumn: true, ZoneAny: true,
}

// ParseZone normalizes a zone name. Empty and unrecognized names map to
// ZoneAny, which targets the board centre and carries no zone penalty.
func ParseZone(s string) Zone {
	z := Zone(s)
	if knownZones[z] {
		return z
	}
	return ZoneAny
}

func (z Zone) String() string { return string(z) }

// Category classifies a component for wiring weight and fallback lookups.
type Category string

const (
	CategoryMCU         Category = "mcu"
	CategoryPower       Category = "power"
	CategorySensor      Category = "sensor"
	CategoryComms       Category = "comms"
	CategoryMotorDriver Category = "motor_driver"
	CategoryDisplay     Category = "display"
	CategoryConnector   Category = "connector"
	CategoryPassive     Category = "passive"
)

func (c Category) String() string { return string(c) }

// Board is the rectangular placement surface.
type Board struct {
	WidthMM  float64 `json:"w_mm"`
	HeightMM float64 `json:"h_mm"`
}

// DefaultBoard returns the 100x80 mm board used when a design omits
// dimensions.
func DefaultBoard() Board {
	return Board{WidthMM: 100, HeightMM: 80}
}

// InnerWidth returns the usable width inside the margin.
func (b Board) InnerWidth() float64 { return b.WidthMM - 2*BoardMarginMM }

// InnerHeight returns the usable height inside the margin.
func (b Board) InnerHeight() float64 { return b.HeightMM - 2*BoardMarginMM }

// AreaMM2 returns the total board area in square mm.
func (b Board) AreaMM2() float64 { return b.WidthMM * b.HeightMM }

// Component is one physical part instance with its catalog attributes
// resolved to concrete values. Everything except the assigned ref is fixed
// at resolution time; position and rotation live in Placement.
type Component struct {
	ComponentID string   `json:"component_id"`
	DisplayName string   `json:"display_name"`
	Ref         string   `json:"ref,omitempty"`
	RefPrefix   string   `json:"ref_prefix,omitempty"`
	Category    Category `json:"category"`
	Subcategory string   `json:"subcategory,omitempty"`
	WidthMM     float64  `json:"width_mm"`
	HeightMM    float64  `json:"height_mm"`
	ClearanceMM float64  `json:"clearance_mm"`
	Zone        Zone     `json:"placement_zone"`
	Priority    int      `json:"placement_priority"`
}

// CourtyardWidth returns the footprint width inflated by clearance on both
// sides, used for overlap detection.
func (c Component) CourtyardWidth() float64 { return c.WidthMM + 2*c.ClearanceMM }

// CourtyardHeight returns the footprint height inflated by clearance on both
// sides.
func (c Component) CourtyardHeight() float64 { return c.HeightMM + 2*c.ClearanceMM }

// AreaMM2 returns the nominal footprint area in square mm.
func (c Component) AreaMM2() float64 { return c.WidthMM * c.HeightMM }

// Position is the mutable placement state of one component: the footprint
// centre and rotation in degrees (0, 90, 180 or 270).
type Position struct {
	XMM         float64 `json:"x_mm"`
	YMM         float64 `json:"y_mm"`
	RotationDeg int     `json:"rotation_deg"`
}

// Placement maps assigned refs to positions.
type Placement map[string]Position

// Clone returns an independent copy of the placement state.
func (p Placement) Clone() Placement {
	cp := make(Placement, len(p))
	for ref, pos := range p {
		cp[ref] = pos
	}
	return cp
}

// PlacedComponent is one entry of the final placement artifact.
type PlacedComponent struct {
	ComponentID   string   `json:"component_id"`
	Ref           string   `json:"ref"`
	DisplayName   string   `json:"display_name"`
	Category      Category `json:"category"`
	Subcategory   string   `json:"subcategory"`
	XMM           float64  `json:"x_mm"`
	YMM           float64  `json:"y_mm"`
	RotationDeg   int      `json:"rotation_deg"`
	WidthMM       float64  `json:"width_mm"`
	HeightMM      float64  `json:"height_mm"`
	PlacementZone Zone     `json:"placement_zone"`
}

// PlacedWidth returns the effective footprint width after rotation.
func (p PlacedComponent) PlacedWidth() float64 {
	if p.RotationDeg == 90 || p.RotationDeg == 270 {
		return p.HeightMM
	}
	return p.WidthMM
}

// PlacedHeight returns the effective footprint height after rotation.
func (p PlacedComponent) PlacedHeight() float64 {
	if p.RotationDeg == 90 || p.RotationDeg == 270 {
		return p.WidthMM
	}
	return p.HeightMM
}

// ScoreSummary carries the score telemetry of one optimizer run.
type ScoreSummary struct {
	Initial        float64 `json:"initial"`
	Final          float64 `json:"final"`
	ImprovementPct float64 `json:"improvement_pct"`
}

// PlacementResult is the placement.json document: final positions plus
// run-level telemetry. Field order matches the serialized artifact.
type PlacementResult struct {
	Board      Board             `json:"board"`
	Components []PlacedComponent `json:"components"`
	MCURef     *string           `json:"mcu_ref"`
	Score      ScoreSummary      `json:"score"`
	Iterations int               `json:"iterations"`
}

// FindByRef returns the placed component with the given ref, or nil.
func (r *PlacementResult) FindByRef(ref string) *PlacedComponent {
	for i := range r.Components {
		if r.Components[i].Ref == ref {
			return &r.Components[i]
		}
	}
	return nil
}

// UsedArea returns the total footprint area of all placed components.
func (r *PlacementResult) UsedArea() float64 {
	var total float64
	for _, c := range r.Components {
		total += c.WidthMM * c.HeightMM
	}
	return total
}

// Utilization returns the percentage of board area covered by footprints.
func (r *PlacementResult) Utilization() float64 {
	ba := r.Board.AreaMM2()
	if ba == 0 {
		return 0
	}
	return r.UsedArea() / ba * 100.0
}

// AnnealSettings holds the simulated annealing schedule.
type AnnealSettings struct {
	InitialTemp   float64 `json:"initial_temp" yaml:"initial_temp"`
	MinTemp       float64 `json:"min_temp" yaml:"min_temp"`
	CoolingRate   float64 `json:"cooling_rate" yaml:"cooling_rate"`
	MaxIterations int     `json:"max_iterations" yaml:"max_iterations"`
	TimeBudgetSec float64 `json:"time_budget_sec" yaml:"time_budget_sec"`
}

func DefaultSettings() AnnealSettings {
	return AnnealSettings{
		InitialTemp:   80.0,
		MinTemp:       0.5,
		CoolingRate:   0.997,
		MaxIterations: 8000,
		TimeBudgetSec: 10.0,
	}
}

// AnnealProfile is a named annealing schedule.
type AnnealProfile struct {
	Name        string         `json:"name" yaml:"name"`
	Description string         `json:"description" yaml:"description"`
	Settings    AnnealSettings `json:"settings" yaml:"settings"`
}

// Built-in annealing profiles
var AnnealProfiles = []AnnealProfile{
	{
		Name:        "fast",
		Description: "Quick refinement for interactive previews",
		Settings: AnnealSettings{
			InitialTemp:   80.0,
			MinTemp:       0.5,
			CoolingRate:   0.994,
			MaxIterations: 2000,
			TimeBudgetSec: 2.0,
		},
	},
	{
		Name:        "balanced",
		Description: "Default schedule",
		Settings:    DefaultSettings(),
	},
	{
		Name:        "thorough",
		Description: "Slow cooling for dense boards",
		Settings: AnnealSettings{
			InitialTemp:   80.0,
			MinTemp:       0.5,
			CoolingRate:   0.9994,
			MaxIterations: 8000,
			TimeBudgetSec: 30.0,
		},
	},
}

// GetProfile returns an annealing profile by name, or the balanced profile
// if not found.
func GetProfile(name string) AnnealProfile {
	for _, p := range AnnealProfiles {
		if p.Name == name {
			return p
		}
	}
	return AnnealProfiles[1] // balanced
}

// GetProfileNames returns a list of all built-in profile names.
func GetProfileNames() []string {
	var names []string
	for _, p := range AnnealProfiles {
		names = append(names, p.Name)
	}
	return names
}

// RoundMM rounds a coordinate to 2 decimal places. Positions are rounded on
// every write so identical runs serialize identically.
func RoundMM(v float64) float64 {
	return math.Round(v*100) / 100
}

// Round1 rounds to 1 decimal place, used for score telemetry.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}
