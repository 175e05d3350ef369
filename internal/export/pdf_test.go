package export

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-pdf/fpdf"

	"github.com/eisla/eisla/internal/catalog"
	"github.com/eisla/eisla/internal/model"
)

// buildTestPlacement creates a realistic placement result whose component
// ids resolve against the builtin catalog.
func buildTestPlacement() *model.PlacementResult {
	mcu := "U1"
	return &model.PlacementResult{
		Board: model.DefaultBoard(),
		Components: []model.PlacedComponent{
			{
				ComponentID: "esp32_wroom_32", Ref: "U1", DisplayName: "ESP32-WROOM-32E",
				Category: model.CategoryMCU, Subcategory: "wifi_ble",
				XMM: 50, YMM: 40, WidthMM: 18.0, HeightMM: 25.5, PlacementZone: "centre",
			},
			{
				ComponentID: "ams1117_33", Ref: "U2", DisplayName: "AMS1117-3.3 LDO",
				Category: model.CategoryPower, Subcategory: "ldo",
				XMM: 15, YMM: 40, WidthMM: 6.5, HeightMM: 7.0, PlacementZone: "power_column",
			},
			{
				ComponentID: "bme280", Ref: "U3", DisplayName: "BME280 Environmental Sensor",
				Category: model.CategorySensor, Subcategory: "environmental",
				XMM: 75, YMM: 40, RotationDeg: 90, WidthMM: 2.5, HeightMM: 2.5, PlacementZone: "centre_right",
			},
			{
				ComponentID: "usb_c_connector", Ref: "J1", DisplayName: "USB-C Receptacle",
				Category: model.CategoryConnector, Subcategory: "usb",
				XMM: 50, YMM: 70, WidthMM: 9.0, HeightMM: 7.3, PlacementZone: "edge_bottom",
			},
			{
				ComponentID: "cap_100nf_0402", Ref: "C1", DisplayName: "100nF 0402 Capacitor",
				Category: model.CategoryPassive, Subcategory: "capacitor",
				XMM: 52, YMM: 26, WidthMM: 1.0, HeightMM: 0.5, PlacementZone: "any",
			},
			{
				ComponentID: "mounting_hole_m3", Ref: "H1", DisplayName: "M3 Mounting Hole",
				Category: model.CategoryPassive, Subcategory: "mechanical",
				XMM: 6, YMM: 6, WidthMM: 6.0, HeightMM: 6.0, PlacementZone: "any",
			},
		},
		MCURef: &mcu,
		Score: model.ScoreSummary{
			Initial:        120.5,
			Final:          85.3,
			ImprovementPct: 29.2,
		},
		Iterations: 1690,
	}
}

func TestExportReportPDF_CreatesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "report.pdf")

	err := ExportReportPDF(path, buildTestPlacement(), catalog.BuiltIn())
	if err != nil {
		t.Fatalf("ExportReportPDF returned error: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("PDF file was not created: %v", err)
	}
	if info.Size() == 0 {
		t.Fatal("PDF file is empty")
	}
	// A valid PDF with 3 pages (board, summary, BOM) should be a reasonable size
	if info.Size() < 500 {
		t.Errorf("PDF file seems too small: %d bytes", info.Size())
	}
}

func TestExportReportPDF_EmptyPlacement(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.pdf")

	p := &model.PlacementResult{Board: model.DefaultBoard()}

	err := ExportReportPDF(path, p, catalog.BuiltIn())
	if err == nil {
		t.Fatal("expected error for empty placement, got nil")
	}
}

func TestExportReportPDF_UnknownComponents(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "unknown.pdf")

	p := buildTestPlacement()
	p.Components = append(p.Components, model.PlacedComponent{
		ComponentID: "custom_part_x", Ref: "X1", DisplayName: "Custom Part",
		Category: model.Category("rf_frontend"),
		XMM:      30, YMM: 60, WidthMM: 12, HeightMM: 10, PlacementZone: "any",
	})

	err := ExportReportPDF(path, p, catalog.BuiltIn())
	if err != nil {
		t.Fatalf("ExportReportPDF returned error: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("PDF file was not created: %v", err)
	}
	if info.Size() == 0 {
		t.Fatal("PDF file is empty")
	}
}

func TestExportReportPDF_ManyComponents(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "many.pdf")

	// Enough BOM rows to force the table onto a second page
	p := buildTestPlacement()
	for i := 0; i < 60; i++ {
		p.Components = append(p.Components, model.PlacedComponent{
			ComponentID: "cap_100nf_0402",
			Ref:         fmt.Sprintf("C%d", i+2),
			DisplayName: "100nF 0402 Capacitor",
			Category:    model.CategoryPassive, Subcategory: "capacitor",
			XMM: float64(5 + (i%20)*4), YMM: float64(10 + (i/20)*4),
			WidthMM: 1.0, HeightMM: 0.5, PlacementZone: "any",
		})
	}

	err := ExportReportPDF(path, p, catalog.BuiltIn())
	if err != nil {
		t.Fatalf("ExportReportPDF returned error: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("PDF file was not created: %v", err)
	}
	if info.Size() == 0 {
		t.Fatal("PDF file is empty")
	}
}

func TestColorFor(t *testing.T) {
	if got := colorFor(model.CategoryMCU); got != (partColor{R: 79, G: 142, B: 247}) {
		t.Errorf("colorFor(mcu) = %+v, want MCU blue", got)
	}
	fallback := partColor{R: 149, G: 165, B: 166}
	if got := colorFor(model.Category("rf_frontend")); got != fallback {
		t.Errorf("colorFor(unknown) = %+v, want %+v", got, fallback)
	}
	if got := colorFor(model.Category("")); got != fallback {
		t.Errorf("colorFor(empty) = %+v, want %+v", got, fallback)
	}
}

func TestSortCategories(t *testing.T) {
	cats := []model.Category{
		model.CategoryPassive,
		"zeta_custom",
		model.CategoryMCU,
		"alpha_custom",
		model.CategoryPower,
	}
	sortCategories(cats)

	want := []model.Category{
		model.CategoryMCU,
		model.CategoryPower,
		model.CategoryPassive,
		"alpha_custom",
		"zeta_custom",
	}
	for i := range want {
		if cats[i] != want[i] {
			t.Fatalf("sortCategories order = %v, want %v", cats, want)
		}
	}
}

func TestFitText(t *testing.T) {
	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "", 9)

	if got := fitText(pdf, "short", 50); got != "short" {
		t.Errorf("fitText(short) = %q, want unchanged", got)
	}

	long := "Package_DFN_QFN:QFN-56-1EP_7x7mm_P0.4mm_EP3.2x3.2mm_ThermalVias"
	got := fitText(pdf, long, 30)
	if got == long {
		t.Error("fitText did not truncate an over-width string")
	}
	if len(got) < 4 || got[len(got)-3:] != "..." {
		t.Errorf("fitText(%q) = %q, want ellipsis suffix", long, got)
	}
	if pdf.GetStringWidth(got) > 30 {
		t.Errorf("fitText result %q is still wider than the limit", got)
	}
}

func TestJoinRefs(t *testing.T) {
	refs := []string{"C1", "C2", "C3", "C4"}
	if got := joinRefs(refs, 4); got != "C1, C2, C3, C4" {
		t.Errorf("joinRefs full = %q", got)
	}
	if got := joinRefs(refs, 2); got != "C1, C2 and 2 more" {
		t.Errorf("joinRefs elided = %q", got)
	}
}

func TestLabelFontSize(t *testing.T) {
	tests := []struct {
		w, h float64
		want float64
	}{
		{50, 50, 8},
		{30, 25, 7},
		{10, 15, 6},
	}
	for _, tt := range tests {
		got := labelFontSize(tt.w, tt.h)
		if got != tt.want {
			t.Errorf("labelFontSize(%v, %v) = %v, want %v", tt.w, tt.h, got, tt.want)
		}
	}
}
