package engine

import (
	"math"
	"testing"

	"github.com/eisla/eisla/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testComp(ref string, cat model.Category, w, h float64, zone model.Zone, priority int) model.Component {
	return model.Component{
		ComponentID: ref + "_id",
		DisplayName: ref,
		Ref:         ref,
		RefPrefix:   "U",
		Category:    cat,
		WidthMM:     w,
		HeightMM:    h,
		ClearanceMM: 0.25,
		Zone:        zone,
		Priority:    priority,
	}
}

func TestZoneCentre_AllZones(t *testing.T) {
	b := model.Board{WidthMM: 100, HeightMM: 80}

	cases := []struct {
		zone model.Zone
		x, y float64
	}{
		{model.ZoneEdgeTop, 50, 10.4},
		{model.ZoneEdgeBottom, 50, 69.6},
		{model.ZoneEdgeLeft, 12.4, 40},
		{model.ZoneEdgeRight, 87.6, 40},
		{model.ZoneCentre, 50, 40},
		{model.ZoneCentreRight, 68.8, 40},
		{model.ZonePowerColumn, 17.1, 40},
		{model.ZoneAny, 50, 40},
	}

	for _, tc := range cases {
		x, y := ZoneCentre(tc.zone, b)
		assert.InDelta(t, tc.x, x, 1e-9, "zone %s x", tc.zone)
		assert.InDelta(t, tc.y, y, 1e-9, "zone %s y", tc.zone)
	}
}

func TestWireLength_StarFromMCU(t *testing.T) {
	b := model.DefaultBoard()
	comps := []model.Component{
		testComp("U1", model.CategoryMCU, 10, 10, model.ZoneCentre, 1),
		testComp("U2", model.CategorySensor, 5, 4, model.ZoneAny, 7),
		testComp("J1", model.CategoryConnector, 8, 6, model.ZoneAny, 3),
	}
	p := model.Placement{
		"U1": {XMM: 50, YMM: 40},
		"U2": {XMM: 53, YMM: 44}, // dist 5, weight 1.0
		"J1": {XMM: 50, YMM: 52}, // dist 12, weight 0.3
	}

	s := NewScorer(comps, b, "U1")

	assert.InDelta(t, 5.0+3.6, s.WireLength(p), 1e-9)
}

func TestWireLength_NoMCU(t *testing.T) {
	b := model.DefaultBoard()
	comps := []model.Component{
		testComp("U1", model.CategorySensor, 5, 4, model.ZoneAny, 7),
		testComp("U2", model.CategorySensor, 5, 4, model.ZoneAny, 7),
	}
	p := model.Placement{"U1": {XMM: 10, YMM: 10}, "U2": {XMM: 90, YMM: 70}}

	assert.Zero(t, NewScorer(comps, b, "").WireLength(p))
	// Designated hub without a position scores zero as well.
	assert.Zero(t, NewScorer(comps, b, "U9").WireLength(p))
}

func TestWireLength_UnknownCategoryGetsDefaultWeight(t *testing.T) {
	b := model.DefaultBoard()
	comps := []model.Component{
		testComp("U1", model.CategoryMCU, 10, 10, model.ZoneAny, 1),
		testComp("U2", model.Category("exotic"), 5, 5, model.ZoneAny, 9),
	}
	p := model.Placement{
		"U1": {XMM: 50, YMM: 40},
		"U2": {XMM: 60, YMM: 40}, // dist 10, default weight 0.5
	}

	assert.InDelta(t, 5.0, NewScorer(comps, b, "U1").WireLength(p), 1e-9)
}

func TestZonePenalty_WeightedByPriority(t *testing.T) {
	b := model.DefaultBoard()
	comps := []model.Component{
		testComp("U1", model.CategoryMCU, 10, 10, model.ZoneCentre, 1),
	}
	// 3-4-5 triangle from the centre (50,40).
	p := model.Placement{"U1": {XMM: 53, YMM: 44}}

	s := NewScorer(comps, b, "")

	// dist 5 x weight (10-1)*0.3 = 2.7
	assert.InDelta(t, 13.5, s.ZonePenalty(p), 1e-9)
}

func TestZonePenalty_AnyZoneIsFree(t *testing.T) {
	b := model.DefaultBoard()
	comps := []model.Component{
		testComp("U1", model.CategoryPassive, 1, 0.5, model.ZoneAny, 9),
	}
	p := model.Placement{"U1": {XMM: 95, YMM: 5}}

	assert.Zero(t, NewScorer(comps, b, "").ZonePenalty(p))
}

func TestZonePenalty_LowPriorityFloorsAtTenth(t *testing.T) {
	b := model.DefaultBoard()
	// Priority 12 would give a negative weight without the floor.
	comps := []model.Component{
		testComp("U1", model.CategorySensor, 5, 4, model.ZoneCentre, 12),
	}
	p := model.Placement{"U1": {XMM: 60, YMM: 40}}

	assert.InDelta(t, 1.0, NewScorer(comps, b, "").ZonePenalty(p), 1e-9)
}

func TestOverlapPenalty_ProportionalToArea(t *testing.T) {
	b := model.DefaultBoard()
	comps := []model.Component{
		testComp("U1", model.CategoryMCU, 10, 10, model.ZoneAny, 1),
		testComp("U2", model.CategoryMCU, 10, 10, model.ZoneAny, 1),
	}
	// Courtyards are 10.5x10.5; dx=3, dy=4 overlaps 7.5x6.5.
	p := model.Placement{
		"U1": {XMM: 50, YMM: 40},
		"U2": {XMM: 53, YMM: 44},
	}

	s := NewScorer(comps, b, "")

	assert.InDelta(t, 7.5*6.5*50.0, s.OverlapPenalty(p), 1e-9)
}

func TestOverlapPenalty_TouchingIsFree(t *testing.T) {
	b := model.DefaultBoard()
	comps := []model.Component{
		testComp("U1", model.CategoryMCU, 10, 10, model.ZoneAny, 1),
		testComp("U2", model.CategoryMCU, 10, 10, model.ZoneAny, 1),
	}
	// Exactly courtyard-touching on x: dx equals (10.5+10.5)/2.
	p := model.Placement{
		"U1": {XMM: 40, YMM: 40},
		"U2": {XMM: 50.5, YMM: 40},
	}

	assert.Zero(t, NewScorer(comps, b, "").OverlapPenalty(p))
}

func TestScore_SumsAllTerms(t *testing.T) {
	b := model.DefaultBoard()
	comps := []model.Component{
		testComp("U1", model.CategoryMCU, 10, 10, model.ZoneCentre, 1),
		testComp("U2", model.CategorySensor, 5, 4, model.ZoneAny, 7),
	}
	p := model.Placement{
		"U1": {XMM: 50, YMM: 40},
		"U2": {XMM: 56, YMM: 40},
	}

	s := NewScorer(comps, b, "U1")
	wire, zone, overlap := s.Breakdown(p)

	assert.InDelta(t, wire+zone+overlap, s.Score(p), 1e-9)
	assert.InDelta(t, 6.0, wire, 1e-9)
	assert.Zero(t, zone)
	// Courtyards 10.5x10.5 and 5.5x4.5: dx=6 < 8, dy=0 < 7.5.
	assert.InDelta(t, 2.0*7.5*50.0, overlap, 1e-9)
}

func TestScore_MissingRefReadsOrigin(t *testing.T) {
	b := model.DefaultBoard()
	comps := []model.Component{
		testComp("U1", model.CategoryMCU, 10, 10, model.ZoneAny, 1),
		testComp("U2", model.CategorySensor, 5, 4, model.ZoneAny, 7),
	}
	// U2 has no entry; it reads as (0,0) rather than failing.
	p := model.Placement{"U1": {XMM: 30, YMM: 40}}

	s := NewScorer(comps, b, "U1")

	require.InDelta(t, math.Hypot(30, 40), s.WireLength(p), 1e-9)
}
