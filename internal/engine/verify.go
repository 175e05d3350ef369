package engine

import (
	"fmt"
	"math"

	"github.com/eisla/eisla/internal/model"
)

// Positions are rounded to 0.01 mm after clamping, so a legal placement
// can sit up to half a rounding step outside the exact bound.
const boundsEps = 0.005 + 1e-9

// Violation flags a placement that breaks a hard geometric rule.
type Violation struct {
	Kind   string  `json:"kind"`
	RefA   string  `json:"ref_a"`
	RefB   string  `json:"ref_b,omitempty"`
	Amount float64 `json:"amount,omitempty"`
	Detail string  `json:"detail"`
}

// VerifyPlacement checks a placement against the hard rules: unique refs,
// every component positioned, centres inside the margin-inset rectangle,
// quarter-turn rotations only, and no courtyard overlap. Returns nil when
// clean.
func VerifyPlacement(comps []model.Component, p model.Placement, b model.Board) []Violation {
	var out []Violation

	seen := make(map[string]bool, len(comps))
	for _, c := range comps {
		if seen[c.Ref] {
			out = append(out, Violation{
				Kind: "duplicate_ref", RefA: c.Ref,
				Detail: fmt.Sprintf("ref %s assigned more than once", c.Ref),
			})
		}
		seen[c.Ref] = true

		pos, ok := p[c.Ref]
		if !ok {
			out = append(out, Violation{
				Kind: "missing_position", RefA: c.Ref,
				Detail: fmt.Sprintf("%s has no position", c.Ref),
			})
			continue
		}

		if pos.RotationDeg%90 != 0 || pos.RotationDeg < 0 || pos.RotationDeg >= 360 {
			out = append(out, Violation{
				Kind: "bad_rotation", RefA: c.Ref, Amount: float64(pos.RotationDeg),
				Detail: fmt.Sprintf("%s rotated %d degrees", c.Ref, pos.RotationDeg),
			})
		}

		hw, hh := c.WidthMM/2, c.HeightMM/2
		m := model.BoardMarginMM
		if pos.XMM < m+hw-boundsEps || pos.XMM > b.WidthMM-m-hw+boundsEps ||
			pos.YMM < m+hh-boundsEps || pos.YMM > b.HeightMM-m-hh+boundsEps {
			out = append(out, Violation{
				Kind: "out_of_bounds", RefA: c.Ref,
				Detail: fmt.Sprintf("%s centre (%.2f, %.2f) leaves the usable area", c.Ref, pos.XMM, pos.YMM),
			})
		}
	}

	for i := 0; i < len(comps); i++ {
		pi, ok := p[comps[i].Ref]
		if !ok {
			continue
		}
		for j := i + 1; j < len(comps); j++ {
			pj, ok := p[comps[j].Ref]
			if !ok {
				continue
			}
			dx := math.Abs(pi.XMM - pj.XMM)
			dy := math.Abs(pi.YMM - pj.YMM)
			minDx := (comps[i].CourtyardWidth() + comps[j].CourtyardWidth()) / 2
			minDy := (comps[i].CourtyardHeight() + comps[j].CourtyardHeight()) / 2

			if dx < minDx && dy < minDy {
				area := (minDx - dx) * (minDy - dy)
				out = append(out, Violation{
					Kind: "overlap", RefA: comps[i].Ref, RefB: comps[j].Ref, Amount: area,
					Detail: fmt.Sprintf("%s and %s courtyards overlap by %.2f mm2", comps[i].Ref, comps[j].Ref, area),
				})
			}
		}
	}

	return out
}
