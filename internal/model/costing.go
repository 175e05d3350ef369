package model

import (
	"math"
	"sort"
)

// CostLine is one priced line of a bill of materials: a single placed
// component with the unit cost resolved at its quantity break.
type CostLine struct {
	Ref         string   `json:"ref"`
	ComponentID string   `json:"component_id"`
	MPN         string   `json:"mpn"`
	Category    Category `json:"category"`
	UnitCost    float64  `json:"unit_cost"`
}

// CostEstimate holds the results of a component purchasing calculation.
type CostEstimate struct {
	LineCount        int      `json:"line_count"`         // All BOM lines, priced or not
	PricedCount      int      `json:"priced_count"`       // Lines with pricing data
	Subtotal         float64  `json:"subtotal"`           // Sum of priced unit costs
	OveragePercent   float64  `json:"overage_percent"`    // Attrition allowance applied (e.g. 10 for 10%)
	TotalWithOverage float64  `json:"total_with_overage"` // Subtotal with overage, rounded to cents
	UnpricedRefs     []string `json:"unpriced_refs"`      // Refs of lines without pricing data
}

// roundCents rounds a currency amount to two decimals.
func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}

// EstimateCost computes the purchase cost of a bill of materials.
// Assembly houses lose small parts to pick-and-place attrition, so an
// overage percentage is added on top of the priced subtotal.
func EstimateCost(lines []CostLine, overagePercent float64) CostEstimate {
	var subtotal float64
	var priced int
	var unpriced []string

	for _, l := range lines {
		if l.UnitCost > 0 {
			subtotal += l.UnitCost
			priced++
		} else {
			unpriced = append(unpriced, l.Ref)
		}
	}

	overageFactor := 1.0 + (overagePercent / 100.0)

	return CostEstimate{
		LineCount:        len(lines),
		PricedCount:      priced,
		Subtotal:         roundCents(subtotal),
		OveragePercent:   overagePercent,
		TotalWithOverage: roundCents(subtotal * overageFactor),
		UnpricedRefs:     unpriced,
	}
}

// CategoryCost is a per-category breakdown of BOM spend.
type CategoryCost struct {
	Category Category `json:"category"`
	Count    int      `json:"count"`    // Number of parts in this category
	Subtotal float64  `json:"subtotal"` // Priced subtotal for the category
}

// CostByCategory returns a breakdown of BOM spend per component category,
// most expensive category first.
func CostByCategory(lines []CostLine) []CategoryCost {
	byCat := make(map[Category]*CategoryCost)
	for _, l := range lines {
		cc, ok := byCat[l.Category]
		if !ok {
			cc = &CategoryCost{Category: l.Category}
			byCat[l.Category] = cc
		}
		cc.Count++
		if l.UnitCost > 0 {
			cc.Subtotal += l.UnitCost
		}
	}

	results := make([]CategoryCost, 0, len(byCat))
	for _, cc := range byCat {
		cc.Subtotal = roundCents(cc.Subtotal)
		results = append(results, *cc)
	}
	sort.Slice(results, func(i, j int) bool {
		if results[i].Subtotal != results[j].Subtotal {
			return results[i].Subtotal > results[j].Subtotal
		}
		return results[i].Category < results[j].Category
	})
	return results
}
