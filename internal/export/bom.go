// Package export writes the deliverable artifacts of a finished placement
// run: purchasing and assembly files, a PDF report, and the delivery archive.
package export

import (
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"sort"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/eisla/eisla/internal/catalog"
	"github.com/eisla/eisla/internal/model"
)

// BOMLine is one row of the bill of materials: a single placed component
// with its purchasing data resolved from the catalog. ComponentID is kept
// for cross-referencing but is not a spreadsheet column.
type BOMLine struct {
	Ref         string
	ComponentID string
	Value       string
	MPN         string
	Package     string
	DigiKeyPN   string
	LCSCPN      string
	UnitCost    float64 // 0 when the catalog carries no pricing
	Category    string
}

// bomHeader is the column order shared by the CSV and XLSX exports.
var bomHeader = []string{"Ref", "Value", "MPN", "Package", "DigiKey_PN", "LCSC_PN", "Unit_Cost", "Category"}

// CollectBOM builds the bill of materials for a placement, one line per
// placed component, sorted by ref designator. Components missing from the
// catalog fall back to their component id and carry no purchasing data.
func CollectBOM(p *model.PlacementResult, cat *catalog.Catalog) []BOMLine {
	lines := make([]BOMLine, 0, len(p.Components))

	for _, c := range p.Components {
		def, _ := cat.Get(c.ComponentID)
		value := def.DisplayName
		if value == "" {
			value = c.ComponentID
		}

		lines = append(lines, BOMLine{
			Ref:         c.Ref,
			ComponentID: c.ComponentID,
			Value:       value,
			MPN:         def.MPN,
			Package:     def.KiCadFootprint,
			DigiKeyPN:   def.DigiKeyPN,
			LCSCPN:      def.LCSCPN,
			UnitCost:    def.UnitCost(1),
			Category:    def.Category,
		})
	}

	sort.Slice(lines, func(i, j int) bool { return lines[i].Ref < lines[j].Ref })
	return lines
}

// CostLines converts BOM lines to the costing model's shape so the cost
// estimator can price a placement without a second catalog pass.
func CostLines(lines []BOMLine) []model.CostLine {
	out := make([]model.CostLine, len(lines))
	for i, l := range lines {
		out[i] = model.CostLine{
			Ref:         l.Ref,
			ComponentID: l.ComponentID,
			MPN:         l.MPN,
			Category:    model.Category(l.Category),
			UnitCost:    l.UnitCost,
		}
	}
	return out
}

// costString formats a unit cost for spreadsheet cells. Unpriced lines
// render as an empty cell rather than 0.
func costString(cost float64) string {
	if cost <= 0 {
		return ""
	}
	return strconv.FormatFloat(cost, 'f', -1, 64)
}

// ExportBOMCSV writes the bill of materials as CSV.
func ExportBOMCSV(path string, p *model.PlacementResult, cat *catalog.Catalog) error {
	if len(p.Components) == 0 {
		return fmt.Errorf("no components to export")
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cannot create BOM file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(bomHeader); err != nil {
		return err
	}
	for _, l := range CollectBOM(p, cat) {
		row := []string{l.Ref, l.Value, l.MPN, l.Package, l.DigiKeyPN, l.LCSCPN, costString(l.UnitCost), l.Category}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}

	return f.Close()
}

// ExportBOMXLSX writes the bill of materials as an Excel workbook with a
// bold header, one row per component, and a totals row summing the priced
// unit costs.
func ExportBOMXLSX(path string, p *model.PlacementResult, cat *catalog.Catalog) error {
	if len(p.Components) == 0 {
		return fmt.Errorf("no components to export")
	}

	lines := CollectBOM(p, cat)

	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)

	header := make([]interface{}, len(bomHeader))
	for i, h := range bomHeader {
		header[i] = h
	}
	if err := setRow(f, sheet, 1, header); err != nil {
		return err
	}

	var subtotal float64
	var priced int
	for i, l := range lines {
		var cost interface{} = ""
		if l.UnitCost > 0 {
			cost = l.UnitCost
			subtotal += l.UnitCost
			priced++
		}
		row := []interface{}{l.Ref, l.Value, l.MPN, l.Package, l.DigiKeyPN, l.LCSCPN, cost, l.Category}
		if err := setRow(f, sheet, i+2, row); err != nil {
			return err
		}
	}

	totalsRow := len(lines) + 2
	totals := []interface{}{
		"TOTAL", fmt.Sprintf("%d components (%d priced)", len(lines), priced),
		"", "", "", "", math.Round(subtotal*100) / 100, "",
	}
	if err := setRow(f, sheet, totalsRow, totals); err != nil {
		return err
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	lastCol, err := excelize.CoordinatesToCellName(len(bomHeader), 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", lastCol, bold); err != nil {
		return err
	}
	totalsStart, err := excelize.CoordinatesToCellName(1, totalsRow)
	if err != nil {
		return err
	}
	totalsEnd, err := excelize.CoordinatesToCellName(len(bomHeader), totalsRow)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, totalsStart, totalsEnd, bold); err != nil {
		return err
	}
	if err := f.SetColWidth(sheet, "A", "H", 18); err != nil {
		return err
	}

	return f.SaveAs(path)
}

// setRow writes one spreadsheet row starting at column A.
func setRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	for col, v := range values {
		cell, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return err
		}
	}
	return nil
}
