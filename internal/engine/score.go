package engine

import (
	"math"

	"github.com/eisla/eisla/internal/model"
)

// Wiring weights by category: how strongly each class is pulled toward
// the MCU hub. Unlisted categories weigh 0.5.
var wireWeights = map[model.Category]float64{
	model.CategoryMCU:         0.0,
	model.CategoryPower:       0.8,
	model.CategorySensor:      1.0,
	model.CategoryComms:       1.2,
	model.CategoryMotorDriver: 0.6,
	model.CategoryDisplay:     0.5,
	model.CategoryConnector:   0.3,
	model.CategoryPassive:     0.1,
}

const (
	defaultWireWeight = 0.5
	overlapFactor     = 50.0
)

// Scorer evaluates placements against the combined objective: star-wiring
// length from the MCU, zone adherence and courtyard overlap. Lower is
// better. Per-component constants are precomputed once so the hot Score
// call touches no maps except the placement itself.
type Scorer struct {
	comps  []model.Component
	mcuRef string

	wireWeight []float64
	courtW     []float64
	courtH     []float64
	zoneX      []float64
	zoneY      []float64
	zoneWeight []float64 // 0 disables the zone term ("any" zone)
}

// NewScorer precomputes scoring constants for a fixed component list and
// board. mcuRef may be empty when no wiring hub is designated.
func NewScorer(comps []model.Component, b model.Board, mcuRef string) *Scorer {
	s := &Scorer{
		comps:      comps,
		mcuRef:     mcuRef,
		wireWeight: make([]float64, len(comps)),
		courtW:     make([]float64, len(comps)),
		courtH:     make([]float64, len(comps)),
		zoneX:      make([]float64, len(comps)),
		zoneY:      make([]float64, len(comps)),
		zoneWeight: make([]float64, len(comps)),
	}

	for i, c := range comps {
		w, ok := wireWeights[c.Category]
		if !ok {
			w = defaultWireWeight
		}
		s.wireWeight[i] = w
		s.courtW[i] = c.CourtyardWidth()
		s.courtH[i] = c.CourtyardHeight()

		if c.Zone != model.ZoneAny {
			s.zoneX[i], s.zoneY[i] = ZoneCentre(c.Zone, b)
			// Higher-priority components get stronger zone enforcement.
			s.zoneWeight[i] = math.Max(0.1, float64(10-c.Priority)*0.3)
		}
	}
	return s
}

// Score returns the combined objective for one placement state.
func (s *Scorer) Score(p model.Placement) float64 {
	wire, zone, overlap := s.Breakdown(p)
	return wire + zone + overlap
}

// Breakdown returns the three score terms separately.
func (s *Scorer) Breakdown(p model.Placement) (wire, zone, overlap float64) {
	return s.WireLength(p), s.ZonePenalty(p), s.OverlapPenalty(p)
}

// WireLength sums the weighted distances from the MCU centroid to every
// other component, a star-topology estimate of routing cost. Returns 0
// when no MCU ref is designated or it has no position.
func (s *Scorer) WireLength(p model.Placement) float64 {
	if s.mcuRef == "" {
		return 0
	}
	mcu, ok := p[s.mcuRef]
	if !ok {
		return 0
	}

	var total float64
	for i, c := range s.comps {
		if c.Ref == s.mcuRef {
			continue
		}
		pos := p[c.Ref]
		total += math.Hypot(pos.XMM-mcu.XMM, pos.YMM-mcu.YMM) * s.wireWeight[i]
	}
	return total
}

// ZonePenalty charges each zoned component its distance from the zone
// centroid, weighted by priority. "any"-zoned components are free.
func (s *Scorer) ZonePenalty(p model.Placement) float64 {
	var total float64
	for i, c := range s.comps {
		w := s.zoneWeight[i]
		if w == 0 {
			continue
		}
		pos := p[c.Ref]
		total += math.Hypot(pos.XMM-s.zoneX[i], pos.YMM-s.zoneY[i]) * w
	}
	return total
}

// OverlapPenalty charges every pair of components whose clearance-inflated
// courtyards intersect, proportional to the overlap area.
func (s *Scorer) OverlapPenalty(p model.Placement) float64 {
	var total float64
	for i := 0; i < len(s.comps); i++ {
		pi := p[s.comps[i].Ref]
		for j := i + 1; j < len(s.comps); j++ {
			pj := p[s.comps[j].Ref]

			dx := math.Abs(pi.XMM - pj.XMM)
			dy := math.Abs(pi.YMM - pj.YMM)
			minDx := (s.courtW[i] + s.courtW[j]) / 2
			minDy := (s.courtH[i] + s.courtH[j]) / 2

			if dx < minDx && dy < minDy {
				total += (minDx - dx) * (minDy - dy) * overlapFactor
			}
		}
	}
	return total
}
