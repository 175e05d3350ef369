package model

import (
	"math"
	"sort"
)

// FreeRegion represents a clear rectangular area of board surface inside the
// margin, away from every component courtyard.
type FreeRegion struct {
	XMM      float64 `json:"x_mm"`      // Position (mm from left)
	YMM      float64 `json:"y_mm"`      // Position (mm from top)
	WidthMM  float64 `json:"width_mm"`  // Usable width (mm)
	HeightMM float64 `json:"height_mm"` // Usable height (mm)
}

// AreaMM2 returns the area of the region in square mm.
func (r FreeRegion) AreaMM2() float64 {
	return r.WidthMM * r.HeightMM
}

// MinRegionDimensionMM is the minimum width or height (in mm) for a clear
// area to be reported. Narrower gaps are routing channels, not regions.
const MinRegionDimensionMM = 10.0

// MinRegionAreaMM2 is the minimum area (in sq mm) for a clear area to be reported.
const MinRegionAreaMM2 = 400.0 // 20mm x 20mm equivalent

// DetectFreeRegions analyzes a placement result and identifies rectangular
// clear areas big enough to host late additions like connectors or antennas.
// It scans the strips beyond the right-most and bottom-most courtyards.
func DetectFreeRegions(r *PlacementResult, clearance float64) []FreeRegion {
	left := BoardMarginMM
	top := BoardMarginMM
	right := r.Board.WidthMM - BoardMarginMM
	bottom := r.Board.HeightMM - BoardMarginMM
	if right <= left || bottom <= top {
		return nil
	}

	if len(r.Components) == 0 {
		// Entire usable area is clear.
		return []FreeRegion{{
			XMM:      left,
			YMM:      top,
			WidthMM:  right - left,
			HeightMM: bottom - top,
		}}
	}

	// Find the extents of all courtyards to identify large unused strips.
	maxRight := left
	maxBottom := top
	for _, c := range r.Components {
		cr := c.XMM + c.PlacedWidth()/2 + clearance
		cb := c.YMM + c.PlacedHeight()/2 + clearance
		if cr > maxRight {
			maxRight = cr
		}
		if cb > maxBottom {
			maxBottom = cb
		}
	}

	var regions []FreeRegion

	// Right strip: area to the right of all courtyards
	stripW := right - maxRight
	if stripW >= MinRegionDimensionMM && bottom-top >= MinRegionDimensionMM && stripW*(bottom-top) >= MinRegionAreaMM2 {
		regions = append(regions, FreeRegion{
			XMM:      maxRight,
			YMM:      top,
			WidthMM:  stripW,
			HeightMM: bottom - top,
		})
	}

	// Bottom strip: area below all courtyards (only up to the right edge of
	// the courtyards to avoid overlapping the right strip)
	stripH := bottom - maxBottom
	usableW := math.Min(maxRight, right) - left
	if stripH >= MinRegionDimensionMM && usableW >= MinRegionDimensionMM && stripH*usableW >= MinRegionAreaMM2 {
		regions = append(regions, FreeRegion{
			XMM:      left,
			YMM:      maxBottom,
			WidthMM:  usableW,
			HeightMM: stripH,
		})
	}

	// Sort by area descending (largest regions first)
	sort.Slice(regions, func(i, j int) bool {
		return regions[i].AreaMM2() > regions[j].AreaMM2()
	})

	return regions
}

// TotalFreeArea returns the total area of all free regions in square mm.
func TotalFreeArea(regions []FreeRegion) float64 {
	var total float64
	for _, r := range regions {
		total += r.AreaMM2()
	}
	return total
}
