package model

import "github.com/google/uuid"

// BoardPreset represents a reusable board outline definition.
type BoardPreset struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	WidthMM  float64 `json:"width_mm"`
	HeightMM float64 `json:"height_mm"`
	Layers   int     `json:"layers"`
}

// NewBoardPreset creates a new BoardPreset with a generated ID.
func NewBoardPreset(name string, width, height float64, layers int) BoardPreset {
	return BoardPreset{
		ID:       uuid.New().String()[:8],
		Name:     name,
		WidthMM:  width,
		HeightMM: height,
		Layers:   layers,
	}
}

// ToBoardConfig converts a board preset into a design board descriptor.
func (bp BoardPreset) ToBoardConfig() BoardConfig {
	return BoardConfig{
		DimensionsMM: []float64{bp.WidthMM, bp.HeightMM},
		Layers:       bp.Layers,
	}
}

// Presets holds the user's saved annealing profiles and board outlines.
type Presets struct {
	Profiles []AnnealProfile `json:"profiles"`
	Boards   []BoardPreset   `json:"boards"`
}

// DefaultPresets returns presets populated with the built-in annealing
// profiles and common board outlines.
func DefaultPresets() Presets {
	return Presets{
		Profiles: append([]AnnealProfile{}, AnnealProfiles...),
		Boards: []BoardPreset{
			NewBoardPreset("Half Eurocard 100x80", 100, 80, 2),
			NewBoardPreset("Eurocard 100x160", 100, 160, 2),
			NewBoardPreset("Arduino Shield 68.6x53.3", 68.6, 53.3, 2),
			NewBoardPreset("Raspberry Pi HAT 65x56.5", 65, 56.5, 2),
			NewBoardPreset("Adafruit Feather 50.8x22.9", 50.8, 22.9, 2),
			NewBoardPreset("Square 50x50", 50, 50, 2),
		},
	}
}

// FindProfileByName returns a pointer to the first profile with the given
// name, or nil.
func (p *Presets) FindProfileByName(name string) *AnnealProfile {
	for i := range p.Profiles {
		if p.Profiles[i].Name == name {
			return &p.Profiles[i]
		}
	}
	return nil
}

// FindBoardByID returns a pointer to the board preset with the given ID, or nil.
func (p *Presets) FindBoardByID(id string) *BoardPreset {
	for i := range p.Boards {
		if p.Boards[i].ID == id {
			return &p.Boards[i]
		}
	}
	return nil
}

// FindBoardByName returns a pointer to the first board preset with the given
// name, or nil.
func (p *Presets) FindBoardByName(name string) *BoardPreset {
	for i := range p.Boards {
		if p.Boards[i].Name == name {
			return &p.Boards[i]
		}
	}
	return nil
}

// ProfileNames returns the profile names in order.
func (p *Presets) ProfileNames() []string {
	names := make([]string, len(p.Profiles))
	for i, pr := range p.Profiles {
		names[i] = pr.Name
	}
	return names
}

// BoardNames returns the board preset names in order.
func (p *Presets) BoardNames() []string {
	names := make([]string, len(p.Boards))
	for i, b := range p.Boards {
		names[i] = b.Name
	}
	return names
}
