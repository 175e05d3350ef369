package model

import "sort"

// PlacementOverride adjusts one placed component. Nil fields keep the
// optimizer's value.
type PlacementOverride struct {
	XMM         *float64 `json:"x_mm,omitempty"`
	YMM         *float64 `json:"y_mm,omitempty"`
	RotationDeg *int     `json:"rotation_deg,omitempty"`
}

// PlacementOverrides maps refs to manual adjustments applied after the
// optimizer and before preview rendering and export.
type PlacementOverrides map[string]PlacementOverride

// normalizeRotation brings a rotation into [0, 360) and snaps it to the
// nearest quarter turn.
func normalizeRotation(deg int) int {
	deg = ((deg % 360) + 360) % 360
	return ((deg + 45) / 90 * 90) % 360
}

// Apply merges the overrides into the result in place: rotation first, then
// position clamped to the usable area with the rotated footprint and rounded
// like optimizer output. Unknown refs are ignored. Returns the refs that
// were changed, sorted.
func (o PlacementOverrides) Apply(r *PlacementResult) []string {
	if len(o) == 0 {
		return nil
	}

	var applied []string
	for i := range r.Components {
		c := &r.Components[i]
		ov, ok := o[c.Ref]
		if !ok || (ov.XMM == nil && ov.YMM == nil && ov.RotationDeg == nil) {
			continue
		}

		if ov.RotationDeg != nil {
			c.RotationDeg = normalizeRotation(*ov.RotationDeg)
		}
		if ov.XMM != nil {
			c.XMM = *ov.XMM
		}
		if ov.YMM != nil {
			c.YMM = *ov.YMM
		}

		hw := c.PlacedWidth() / 2
		hh := c.PlacedHeight() / 2
		c.XMM = RoundMM(clampAxis(c.XMM, hw, r.Board.WidthMM))
		c.YMM = RoundMM(clampAxis(c.YMM, hh, r.Board.HeightMM))

		applied = append(applied, c.Ref)
	}

	sort.Strings(applied)
	return applied
}

// clampAxis keeps a centre coordinate inside the margin box on one axis.
// The lower bound wins for parts wider than the usable area.
func clampAxis(v, half, boardDim float64) float64 {
	if v > boardDim-BoardMarginMM-half {
		v = boardDim - BoardMarginMM - half
	}
	if v < BoardMarginMM+half {
		v = BoardMarginMM + half
	}
	return v
}
