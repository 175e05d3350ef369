package engine

import (
	"math"
	"math/rand"
	"sort"

	"github.com/eisla/eisla/internal/model"
)

// InitialPlacement seeds every component at its zone centroid, staggered
// into a 4-column grid per zone so same-zone parts do not stack, with a
// ±1 mm jitter to break exact coincidences. Components are placed in
// ascending priority order; the sort is stable, so equal priorities keep
// their input order. All positions start at rotation 0.
func InitialPlacement(comps []model.Component, b model.Board, rng *rand.Rand) model.Placement {
	ordered := make([]model.Component, len(comps))
	copy(ordered, comps)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Priority < ordered[j].Priority
	})

	placement := make(model.Placement, len(ordered))
	zoneCounts := make(map[model.Zone]int)

	for _, c := range ordered {
		cx, cy := ZoneCentre(c.Zone, b)

		n := zoneCounts[c.Zone]
		row := n / 4
		col := n % 4
		stepX := math.Max(c.WidthMM+2.0, 6.0)
		stepY := math.Max(c.HeightMM+2.0, 6.0)

		x := cx + (float64(col)-1.5)*stepX + (rng.Float64()*2 - 1)
		y := cy + (float64(row)-0.5)*stepY + (rng.Float64()*2 - 1)
		x, y = clampCentre(x, y, c.WidthMM/2, c.HeightMM/2, b)

		placement[c.Ref] = model.Position{XMM: model.RoundMM(x), YMM: model.RoundMM(y)}
		zoneCounts[c.Zone] = n + 1
	}
	return placement
}
