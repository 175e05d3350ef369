package engine

import (
	"math"

	"github.com/eisla/eisla/internal/model"
)

// ZoneCentre returns the target centroid of a placement zone on the given
// board. Zones hug the board edges at 10% of the usable span; unknown
// zones aim at the board centre.
func ZoneCentre(z model.Zone, b model.Board) (x, y float64) {
	m := model.BoardMarginMM
	iw := b.InnerWidth()
	ih := b.InnerHeight()

	switch z {
	case model.ZoneEdgeTop:
		return b.WidthMM / 2, m + ih*0.1
	case model.ZoneEdgeBottom:
		return b.WidthMM / 2, m + ih*0.9
	case model.ZoneEdgeLeft:
		return m + iw*0.1, b.HeightMM / 2
	case model.ZoneEdgeRight:
		return m + iw*0.9, b.HeightMM / 2
	case model.ZoneCentreRight:
		return m + iw*0.7, b.HeightMM / 2
	case model.ZonePowerColumn:
		return m + iw*0.15, b.HeightMM / 2
	default:
		return b.WidthMM / 2, b.HeightMM / 2
	}
}

// clampCentre keeps a footprint centre inside the margin-inset rectangle.
// Half-dimensions are the component's nominal halves regardless of
// rotation, matching the bounds contract used everywhere else.
func clampCentre(x, y, hw, hh float64, b model.Board) (float64, float64) {
	x = math.Max(model.BoardMarginMM+hw, math.Min(b.WidthMM-model.BoardMarginMM-hw, x))
	y = math.Max(model.BoardMarginMM+hh, math.Min(b.HeightMM-model.BoardMarginMM-hh, y))
	return x, y
}
