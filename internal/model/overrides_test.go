package model

import (
	"testing"
)

func fptr(v float64) *float64 { return &v }
func iptr(v int) *int         { return &v }

func overrideResult() *PlacementResult {
	return &PlacementResult{
		Board: Board{WidthMM: 100, HeightMM: 80},
		Components: []PlacedComponent{
			{Ref: "U1", XMM: 50, YMM: 40, WidthMM: 10, HeightMM: 10},
			{Ref: "U2", XMM: 20, YMM: 20, WidthMM: 30, HeightMM: 10},
		},
	}
}

func TestOverridesApplyPartialFields(t *testing.T) {
	r := overrideResult()
	ov := PlacementOverrides{
		"U1": {XMM: fptr(30)},
	}

	applied := ov.Apply(r)

	if len(applied) != 1 || applied[0] != "U1" {
		t.Fatalf("expected [U1], got %v", applied)
	}
	if r.Components[0].XMM != 30 {
		t.Errorf("expected x=30, got %.2f", r.Components[0].XMM)
	}
	if r.Components[0].YMM != 40 || r.Components[0].RotationDeg != 0 {
		t.Error("unset fields must keep optimizer values")
	}
}

func TestOverridesApplyClampsToUsableArea(t *testing.T) {
	r := overrideResult()
	ov := PlacementOverrides{
		"U1": {XMM: fptr(999), YMM: fptr(-5)},
	}

	ov.Apply(r)

	// Half width 5, margin 3: x in [8, 92], y in [8, 72].
	if r.Components[0].XMM != 92 {
		t.Errorf("expected x clamped to 92, got %.2f", r.Components[0].XMM)
	}
	if r.Components[0].YMM != 8 {
		t.Errorf("expected y clamped to 8, got %.2f", r.Components[0].YMM)
	}
}

func TestOverridesApplyRotationBeforeClamp(t *testing.T) {
	r := overrideResult()
	// U2 is 30x10; rotated it occupies 10x30, so x can go much further right.
	ov := PlacementOverrides{
		"U2": {XMM: fptr(999), RotationDeg: iptr(90)},
	}

	ov.Apply(r)

	if r.Components[1].RotationDeg != 90 {
		t.Fatalf("expected rotation 90, got %d", r.Components[1].RotationDeg)
	}
	if r.Components[1].XMM != 92 {
		t.Errorf("expected x clamped with rotated width to 92, got %.2f", r.Components[1].XMM)
	}
}

func TestOverridesNormalizeRotation(t *testing.T) {
	cases := map[int]int{
		0:    0,
		90:   90,
		360:  0,
		450:  90,
		-90:  270,
		-270: 90,
		100:  90,
		140:  180,
	}
	for in, want := range cases {
		if got := normalizeRotation(in); got != want {
			t.Errorf("normalizeRotation(%d) = %d, want %d", in, got, want)
		}
	}
}

func TestOverridesIgnoreUnknownRefsAndEmpty(t *testing.T) {
	r := overrideResult()
	ov := PlacementOverrides{
		"U9": {XMM: fptr(10)},
		"U1": {},
	}

	applied := ov.Apply(r)
	if applied != nil {
		t.Errorf("expected no applied refs, got %v", applied)
	}
	if r.Components[0].XMM != 50 {
		t.Error("empty override must not move the component")
	}

	if PlacementOverrides(nil).Apply(r) != nil {
		t.Error("nil overrides should be a no-op")
	}
}

func TestOverridesApplySorted(t *testing.T) {
	r := overrideResult()
	ov := PlacementOverrides{
		"U2": {XMM: fptr(60)},
		"U1": {XMM: fptr(30)},
	}

	applied := ov.Apply(r)
	if len(applied) != 2 || applied[0] != "U1" || applied[1] != "U2" {
		t.Errorf("expected sorted [U1 U2], got %v", applied)
	}
}
