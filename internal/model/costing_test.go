package model

import (
	"math"
	"testing"
)

func TestEstimateCostBasic(t *testing.T) {
	lines := []CostLine{
		{Ref: "U1", ComponentID: "esp32_wroom_32", Category: CategoryMCU, UnitCost: 3.80},
		{Ref: "U2", ComponentID: "ams1117_33", Category: CategoryPower, UnitCost: 0.45},
		{Ref: "C1", ComponentID: "cap_100nf_0402", Category: CategoryPassive, UnitCost: 0.01},
		{Ref: "C2", ComponentID: "cap_100nf_0402", Category: CategoryPassive, UnitCost: 0.01},
	}
	est := EstimateCost(lines, 10.0)

	if est.LineCount != 4 {
		t.Errorf("expected 4 lines, got %d", est.LineCount)
	}
	if est.PricedCount != 4 {
		t.Errorf("expected 4 priced lines, got %d", est.PricedCount)
	}
	if math.Abs(est.Subtotal-4.27) > 0.001 {
		t.Errorf("expected subtotal 4.27, got %.4f", est.Subtotal)
	}
	if math.Abs(est.TotalWithOverage-4.70) > 0.001 {
		t.Errorf("expected total with overage 4.70, got %.4f", est.TotalWithOverage)
	}
	if est.TotalWithOverage < est.Subtotal {
		t.Error("total with overage should be >= subtotal")
	}
	if len(est.UnpricedRefs) != 0 {
		t.Errorf("expected no unpriced refs, got %v", est.UnpricedRefs)
	}
}

func TestEstimateCostUnpricedLines(t *testing.T) {
	lines := []CostLine{
		{Ref: "U1", UnitCost: 2.50},
		{Ref: "H1", UnitCost: 0},
		{Ref: "FID1", UnitCost: 0},
	}
	est := EstimateCost(lines, 0)

	if est.PricedCount != 1 {
		t.Errorf("expected 1 priced line, got %d", est.PricedCount)
	}
	if len(est.UnpricedRefs) != 2 {
		t.Fatalf("expected 2 unpriced refs, got %d", len(est.UnpricedRefs))
	}
	if est.UnpricedRefs[0] != "H1" || est.UnpricedRefs[1] != "FID1" {
		t.Errorf("expected [H1 FID1], got %v", est.UnpricedRefs)
	}
	if est.Subtotal != 2.50 {
		t.Errorf("expected subtotal 2.50, got %.2f", est.Subtotal)
	}
	if est.TotalWithOverage != 2.50 {
		t.Errorf("expected total 2.50 with 0%% overage, got %.2f", est.TotalWithOverage)
	}
}

func TestEstimateCostEmpty(t *testing.T) {
	est := EstimateCost(nil, 15.0)
	if est.LineCount != 0 || est.Subtotal != 0 || est.TotalWithOverage != 0 {
		t.Errorf("expected zero estimate for empty BOM, got %+v", est)
	}
}

func TestCostByCategoryOrdersBySpend(t *testing.T) {
	lines := []CostLine{
		{Ref: "C1", Category: CategoryPassive, UnitCost: 0.01},
		{Ref: "U1", Category: CategoryMCU, UnitCost: 3.80},
		{Ref: "C2", Category: CategoryPassive, UnitCost: 0.01},
		{Ref: "U2", Category: CategorySensor, UnitCost: 1.20},
		{Ref: "J1", Category: CategoryConnector, UnitCost: 0},
	}
	breakdown := CostByCategory(lines)

	if len(breakdown) != 4 {
		t.Fatalf("expected 4 categories, got %d", len(breakdown))
	}
	if breakdown[0].Category != CategoryMCU {
		t.Errorf("expected mcu first, got %s", breakdown[0].Category)
	}
	if breakdown[1].Category != CategorySensor {
		t.Errorf("expected sensor second, got %s", breakdown[1].Category)
	}
	if breakdown[2].Category != CategoryPassive || breakdown[2].Count != 2 {
		t.Errorf("expected passive with 2 parts third, got %+v", breakdown[2])
	}
	if breakdown[3].Category != CategoryConnector || breakdown[3].Subtotal != 0 {
		t.Errorf("expected unpriced connector last, got %+v", breakdown[3])
	}
}
