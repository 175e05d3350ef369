package engine

import (
	"context"
	"encoding/json"
	"io"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/eisla/eisla/internal/catalog"
	"github.com/eisla/eisla/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intp(v int) *int { return &v }

func quietPlacer(cat *catalog.Catalog) *Placer {
	return NewPlacer(cat, log.New(io.Discard))
}

// A small fixed catalog: one MCU, one regulator, one sensor and one
// passive, with the exact dimensions the engine tests reason about.
func testCatalog() *catalog.Catalog {
	return catalog.New([]catalog.Definition{
		{
			ID: "mcu_main", DisplayName: "Main MCU", Category: "mcu",
			DimensionsMM:  &catalog.Dimensions{Width: 10, Height: 10},
			PlacementZone: "centre", PlacementPriority: intp(1),
		},
		{
			ID: "reg_33", DisplayName: "3.3V Regulator", Category: "power",
			DimensionsMM:  &catalog.Dimensions{Width: 6, Height: 4},
			PlacementZone: "power_column", PlacementPriority: intp(4),
		},
		{
			ID: "temp_sensor", DisplayName: "Temp Sensor", Category: "sensor",
			DimensionsMM:  &catalog.Dimensions{Width: 5, Height: 4},
			PlacementZone: "centre_right", PlacementPriority: intp(7),
		},
		{
			ID: "blob", DisplayName: "Passive", Category: "passive",
			DimensionsMM:  &catalog.Dimensions{Width: 1, Height: 0.5},
			PlacementZone: "any", PlacementPriority: intp(9),
		},
	})
}

func scenarioDesign() model.Design {
	return model.Design{
		Name:  "scenario",
		Board: model.BoardConfig{DimensionsMM: []float64{100, 80}},
		Components: []model.Instance{
			{ComponentID: "mcu_main"},
			{ComponentID: "reg_33"},
			{ComponentID: "temp_sensor"},
			{ComponentID: "blob"},
			{ComponentID: "blob"},
			{ComponentID: "blob"},
			{ComponentID: "blob"},
		},
		MCUID: "mcu_main",
	}
}

func TestPlace_FullRun(t *testing.T) {
	p := quietPlacer(testCatalog())
	design := scenarioDesign()

	settings := model.DefaultSettings()
	settings.TimeBudgetSec = 1.0

	res := p.Place(context.Background(), Request{Design: design, Settings: settings, Seed: 7})

	require.Len(t, res.Components, 7)
	assert.Equal(t, 100.0, res.Board.WidthMM)
	assert.Equal(t, 80.0, res.Board.HeightMM)
	assert.Greater(t, res.Iterations, 0)
	assert.LessOrEqual(t, res.Score.Final, res.Score.Initial)
	assert.GreaterOrEqual(t, res.Score.ImprovementPct, 0.0)

	refs := make(map[string]bool)
	for _, c := range res.Components {
		refs[c.Ref] = true
	}
	assert.Equal(t, map[string]bool{
		"U1": true, "U2": true, "U3": true,
		"?1": true, "?2": true, "?3": true, "?4": true,
	}, refs)

	require.NotNil(t, res.MCURef)
	assert.Equal(t, "U1", *res.MCURef)

	// Rebuild the engine view and check hard rules on the final state.
	comps := p.Components(design)
	placement := make(model.Placement, len(res.Components))
	for _, c := range res.Components {
		placement[c.Ref] = model.Position{XMM: c.XMM, YMM: c.YMM, RotationDeg: c.RotationDeg}
	}
	assert.Empty(t, VerifyPlacement(comps, placement, res.Board))

	// A second at this size is enough for the annealer to pull every
	// courtyard apart; the full run must end overlap-free.
	scorer := NewScorer(comps, res.Board, "U1")
	assert.Zero(t, scorer.OverlapPenalty(placement))
}

func TestPlace_ByteIdenticalForSameSeed(t *testing.T) {
	settings := model.DefaultSettings()
	settings.TimeBudgetSec = 1.0

	run := func(seed int64) []byte {
		p := quietPlacer(testCatalog())
		res := p.Place(context.Background(), Request{Design: scenarioDesign(), Settings: settings, Seed: seed})
		data, err := json.Marshal(res)
		require.NoError(t, err)
		return data
	}

	a := run(1234)
	b := run(1234)
	c := run(1235)

	assert.Equal(t, string(a), string(b))
	assert.NotEqual(t, string(a), string(c))
}

func TestPlace_EmptyDesign(t *testing.T) {
	p := quietPlacer(testCatalog())

	res := p.Place(context.Background(), Request{Design: model.Design{}, Settings: model.DefaultSettings(), Seed: 1})

	assert.NotNil(t, res.Components)
	assert.Empty(t, res.Components)
	assert.Nil(t, res.MCURef)
	assert.Zero(t, res.Iterations)
	assert.Zero(t, res.Score.Initial)
	assert.Zero(t, res.Score.Final)
	// default board applies when the design has none
	assert.Equal(t, model.DefaultBoard(), res.Board)

	data, err := json.Marshal(res)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"components":[]`)
	assert.Contains(t, string(data), `"mcu_ref":null`)
}

func TestPlace_SingleComponentSkipsSearch(t *testing.T) {
	p := quietPlacer(testCatalog())
	design := model.Design{
		Components: []model.Instance{{ComponentID: "mcu_main"}},
		MCUID:      "mcu_main",
	}

	res := p.Place(context.Background(), Request{Design: design, Settings: model.DefaultSettings(), Seed: 3})

	require.Len(t, res.Components, 1)
	assert.Zero(t, res.Iterations)
	assert.Zero(t, res.Score.Initial)
	assert.Zero(t, res.Score.Final)
	require.NotNil(t, res.MCURef)
	assert.Equal(t, "U1", *res.MCURef)
}

func TestPlace_UnknownMCUIDLeavesHubUnset(t *testing.T) {
	p := quietPlacer(testCatalog())
	design := scenarioDesign()
	design.MCUID = "not_in_design"

	settings := model.DefaultSettings()
	settings.TimeBudgetSec = 0.2

	res := p.Place(context.Background(), Request{Design: design, Settings: settings, Seed: 3})

	assert.Nil(t, res.MCURef)
	assert.LessOrEqual(t, res.Score.Final, res.Score.Initial)
}

func TestPlace_UnknownCatalogIDStillPlaces(t *testing.T) {
	p := quietPlacer(testCatalog())
	design := model.Design{
		Components: []model.Instance{
			{ComponentID: "mcu_main"},
			{ComponentID: "mystery_part"},
		},
		MCUID: "mcu_main",
	}

	settings := model.DefaultSettings()
	settings.TimeBudgetSec = 0.2

	res := p.Place(context.Background(), Request{Design: design, Settings: settings, Seed: 3})

	require.Len(t, res.Components, 2)
	mystery := res.Components[1]
	assert.Equal(t, "U2", mystery.Ref)
	assert.Equal(t, model.CategoryPassive, mystery.Category)
	assert.Equal(t, 5.0, mystery.WidthMM)
	assert.Equal(t, 5.0, mystery.HeightMM)
	assert.Equal(t, model.ZoneAny, mystery.PlacementZone)
}

func TestVerifyPlacement_FlagsHardRuleBreaks(t *testing.T) {
	b := model.Board{WidthMM: 100, HeightMM: 80}

	comps := []model.Component{
		testComp("U1", model.CategoryMCU, 10, 10, model.ZoneCentre, 1),
		testComp("U2", model.CategorySensor, 5, 4, model.ZoneAny, 7),
	}

	clean := model.Placement{
		"U1": {XMM: 50, YMM: 40},
		"U2": {XMM: 80, YMM: 20},
	}
	assert.Empty(t, VerifyPlacement(comps, clean, b))

	t.Run("out of bounds", func(t *testing.T) {
		p := clean.Clone()
		p["U1"] = model.Position{XMM: 7.9, YMM: 40} // lower bound is 8.0
		vs := VerifyPlacement(comps, p, b)
		require.Len(t, vs, 1)
		assert.Equal(t, "out_of_bounds", vs[0].Kind)
		assert.Equal(t, "U1", vs[0].RefA)
	})

	t.Run("rounding slack is legal", func(t *testing.T) {
		p := clean.Clone()
		p["U1"] = model.Position{XMM: 92.0, YMM: 40} // exact upper bound
		assert.Empty(t, VerifyPlacement(comps, p, b))
	})

	t.Run("overlap", func(t *testing.T) {
		p := clean.Clone()
		p["U2"] = model.Position{XMM: 52, YMM: 41}
		vs := VerifyPlacement(comps, p, b)
		require.Len(t, vs, 1)
		assert.Equal(t, "overlap", vs[0].Kind)
		assert.Equal(t, "U1", vs[0].RefA)
		assert.Equal(t, "U2", vs[0].RefB)
		assert.Greater(t, vs[0].Amount, 0.0)
	})

	t.Run("bad rotation", func(t *testing.T) {
		p := clean.Clone()
		p["U2"] = model.Position{XMM: 80, YMM: 20, RotationDeg: 45}
		vs := VerifyPlacement(comps, p, b)
		require.Len(t, vs, 1)
		assert.Equal(t, "bad_rotation", vs[0].Kind)
	})

	t.Run("missing position", func(t *testing.T) {
		p := model.Placement{"U1": {XMM: 50, YMM: 40}}
		vs := VerifyPlacement(comps, p, b)
		require.Len(t, vs, 1)
		assert.Equal(t, "missing_position", vs[0].Kind)
		assert.Equal(t, "U2", vs[0].RefA)
	})

	t.Run("duplicate ref", func(t *testing.T) {
		dup := []model.Component{comps[0], comps[0]}
		vs := VerifyPlacement(dup, clean, b)
		found := false
		for _, v := range vs {
			if v.Kind == "duplicate_ref" {
				found = true
			}
		}
		assert.True(t, found)
	})
}
