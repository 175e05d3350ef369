package export

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/go-pdf/fpdf"

	"github.com/eisla/eisla/internal/catalog"
	"github.com/eisla/eisla/internal/model"
)

// partColor represents an RGB fill for a drawn component.
type partColor struct {
	R, G, B int
}

// categoryColors mirrors the color scheme used by the SVG preview renderer.
var categoryColors = map[model.Category]partColor{
	model.CategoryMCU:         {R: 79, G: 142, B: 247},
	model.CategoryPower:       {R: 247, G: 168, B: 79},
	model.CategorySensor:      {R: 107, G: 203, B: 119},
	model.CategoryComms:       {R: 155, G: 89, B: 182},
	model.CategoryMotorDriver: {R: 231, G: 76, B: 60},
	model.CategoryDisplay:     {R: 26, G: 188, B: 156},
	model.CategoryConnector:   {R: 243, G: 156, B: 18},
	model.CategoryPassive:     {R: 189, G: 195, B: 199},
}

// colorFor returns the fill color for a category, with a neutral fallback
// for categories outside the builtin set.
func colorFor(cat model.Category) partColor {
	if c, ok := categoryColors[cat]; ok {
		return c
	}
	return partColor{R: 149, G: 165, B: 166}
}

// Page layout constants (A4 landscape in mm).
const (
	pageWidth    = 297.0
	pageHeight   = 210.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 15.0
	headerHeight = 12.0
	statsHeight  = 20.0
	drawAreaTop  = marginTop + headerHeight + 5.0
)

// bomOveragePercent is the attrition allowance applied to the cost estimate.
const bomOveragePercent = 10.0

// ExportReportPDF generates the placement report: a to-scale board drawing
// with per-category colors, followed by a summary page with score, cost,
// and free-area statistics, and a bill-of-materials table.
func ExportReportPDF(path string, p *model.PlacementResult, cat *catalog.Catalog) error {
	if len(p.Components) == 0 {
		return fmt.Errorf("no placed components to export")
	}

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, marginBottom)

	pdf.AddPage()
	renderBoardPage(pdf, p)

	bom := CollectBOM(p, cat)

	pdf.AddPage()
	renderSummaryPage(pdf, p, bom)

	pdf.AddPage()
	renderBOMPages(pdf, bom)

	return pdf.OutputFileAndClose(path)
}

// renderBoardPage draws the placed board to scale on the current page.
func renderBoardPage(pdf *fpdf.Fpdf, p *model.PlacementResult) {
	// Title
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(marginLeft, marginTop)
	title := fmt.Sprintf("Component Placement: %.0f x %.0f mm board", p.Board.WidthMM, p.Board.HeightMM)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, headerHeight, title, "", 0, "L", false, 0, "")

	// Stats line
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(marginLeft, marginTop+headerHeight)
	stats := fmt.Sprintf("Components: %d | Score: %.1f -> %.1f (%.1f%% improvement) | Iterations: %d | Utilization: %.1f%%",
		len(p.Components), p.Score.Initial, p.Score.Final, p.Score.ImprovementPct, p.Iterations, p.Utilization())
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 5, stats, "", 0, "L", false, 0, "")

	// Calculate drawing area
	drawWidth := pageWidth - marginLeft - marginRight
	drawHeight := pageHeight - drawAreaTop - marginBottom - statsHeight

	// Calculate scale to fit the board within the drawing area
	scaleX := drawWidth / p.Board.WidthMM
	scaleY := drawHeight / p.Board.HeightMM
	scale := math.Min(scaleX, scaleY)

	canvasW := p.Board.WidthMM * scale
	canvasH := p.Board.HeightMM * scale

	// Center the drawing horizontally
	offsetX := marginLeft + (drawWidth-canvasW)/2
	offsetY := drawAreaTop

	// Board substrate
	pdf.SetFillColor(255, 253, 231)
	pdf.SetDrawColor(33, 33, 33)
	pdf.SetLineWidth(0.5)
	pdf.Rect(offsetX, offsetY, canvasW, canvasH, "FD")

	// Placement margin keepout
	m := model.BoardMarginMM * scale
	pdf.SetDrawColor(150, 150, 150)
	pdf.SetLineWidth(0.2)
	pdf.SetDashPattern([]float64{1.5, 1.5}, 0)
	pdf.Rect(offsetX+m, offsetY+m, canvasW-2*m, canvasH-2*m, "D")
	pdf.SetDashPattern([]float64{}, 0)

	// Placed components, positions are footprint centres
	for _, c := range p.Components {
		col := colorFor(c.Category)
		pw := c.PlacedWidth() * scale
		ph := c.PlacedHeight() * scale
		px := offsetX + (c.XMM-c.PlacedWidth()/2)*scale
		py := offsetY + (c.YMM-c.PlacedHeight()/2)*scale

		pdf.SetFillColor(col.R, col.G, col.B)
		pdf.SetDrawColor(30, 30, 30)
		pdf.SetLineWidth(0.3)
		pdf.Rect(px, py, pw, ph, "FD")

		// Ref label (only if the footprint is large enough)
		if pw > 15 && ph > 8 {
			pdf.SetFont("Helvetica", "", labelFontSize(pw, ph))
			pdf.SetTextColor(0, 0, 0)

			dims := fmt.Sprintf("%.0fx%.0f", c.WidthMM, c.HeightMM)
			refW := pdf.GetStringWidth(c.Ref)
			dimsW := pdf.GetStringWidth(dims)

			// First line: ref designator
			if refW < pw-2 {
				pdf.SetXY(px+(pw-refW)/2, py+ph/2-4)
				pdf.CellFormat(refW, 4, c.Ref, "", 0, "C", false, 0, "")
			}

			// Second line: footprint dimensions
			if ph > 14 && dimsW < pw-2 {
				pdf.SetXY(px+(pw-dimsW)/2, py+ph/2)
				pdf.CellFormat(dimsW, 4, dims, "", 0, "C", false, 0, "")
			}
		}
	}

	drawDimensionAnnotations(pdf, p.Board, offsetX, offsetY, canvasW, canvasH)
	drawCategoryLegend(pdf, p, offsetY+canvasH+5)
}

// drawDimensionAnnotations adds width and height labels outside the board rectangle.
func drawDimensionAnnotations(pdf *fpdf.Fpdf, board model.Board, offsetX, offsetY, canvasW, canvasH float64) {
	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(80, 80, 80)

	// Width annotation (below the board)
	widthLabel := fmt.Sprintf("%.0f mm", board.WidthMM)
	wLabelW := pdf.GetStringWidth(widthLabel)
	pdf.SetXY(offsetX+(canvasW-wLabelW)/2, offsetY+canvasH+1)
	pdf.CellFormat(wLabelW, 4, widthLabel, "", 0, "C", false, 0, "")

	// Height annotation (to the left of the board, rotated)
	heightLabel := fmt.Sprintf("%.0f mm", board.HeightMM)
	pdf.TransformBegin()
	pdf.TransformRotate(90, offsetX-3, offsetY+canvasH/2)
	hLabelW := pdf.GetStringWidth(heightLabel)
	pdf.SetXY(offsetX-3-hLabelW/2, offsetY+canvasH/2-2)
	pdf.CellFormat(hLabelW, 4, heightLabel, "", 0, "C", false, 0, "")
	pdf.TransformEnd()

	pdf.SetTextColor(0, 0, 0)
}

// drawCategoryLegend renders a compact legend of the categories present on
// the board, with component counts.
func drawCategoryLegend(pdf *fpdf.Fpdf, p *model.PlacementResult, startY float64) {
	counts := make(map[model.Category]int)
	for _, c := range p.Components {
		counts[c.Category]++
	}
	if len(counts) == 0 {
		return
	}

	cats := make([]model.Category, 0, len(counts))
	for cat := range counts {
		cats = append(cats, cat)
	}
	sortCategories(cats)

	pdf.SetFont("Helvetica", "B", 8)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(marginLeft, startY)
	pdf.CellFormat(30, 4, "Categories:", "", 0, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 7)
	xPos := marginLeft + 32
	maxX := pageWidth - marginRight

	for _, cat := range cats {
		col := colorFor(cat)
		name := string(cat)
		if name == "" {
			name = "uncategorized"
		}
		label := fmt.Sprintf("%s (%d)", name, counts[cat])
		labelW := pdf.GetStringWidth(label) + 6

		// Wrap to the next line if needed
		if xPos+labelW > maxX {
			startY += 5
			xPos = marginLeft
		}

		pdf.SetFillColor(col.R, col.G, col.B)
		pdf.Rect(xPos, startY+0.5, 3, 3, "F")

		pdf.SetXY(xPos+4, startY)
		pdf.CellFormat(labelW-4, 4, label, "", 0, "L", false, 0, "")

		xPos += labelW + 2
	}
}

// renderSummaryPage draws run statistics, the cost estimate, and the
// free-region breakdown.
func renderSummaryPage(pdf *fpdf.Fpdf, p *model.PlacementResult, bom []BOMLine) {
	// Title
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetXY(marginLeft, marginTop)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 10, "Placement Summary", "", 0, "L", false, 0, "")

	// Separator line
	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.5)
	pdf.Line(marginLeft, marginTop+12, pageWidth-marginRight, marginTop+12)

	y := marginTop + 18

	regions := model.DetectFreeRegions(p, catalog.DefaultClearanceMM)

	// Overall statistics
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(100, 7, "Optimization Result", "", 0, "L", false, 0, "")
	y += 9

	summaryItems := []struct {
		label string
		value string
	}{
		{"Board", fmt.Sprintf("%.0f x %.0f mm", p.Board.WidthMM, p.Board.HeightMM)},
		{"Components Placed", fmt.Sprintf("%d", len(p.Components))},
		{"Initial Score", fmt.Sprintf("%.1f", p.Score.Initial)},
		{"Final Score", fmt.Sprintf("%.1f", p.Score.Final)},
		{"Improvement", fmt.Sprintf("%.1f%%", p.Score.ImprovementPct)},
		{"Iterations", fmt.Sprintf("%d", p.Iterations)},
		{"Board Utilization", fmt.Sprintf("%.1f%%", p.Utilization())},
		{"Free Area", fmt.Sprintf("%.0f mm² in %d regions", model.TotalFreeArea(regions), len(regions))},
	}

	pdf.SetFont("Helvetica", "", 10)
	for _, item := range summaryItems {
		pdf.SetXY(marginLeft+5, y)
		pdf.CellFormat(60, 6, item.label+":", "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(60, 6, item.value, "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		y += 7
	}

	y += 5
	y = renderCostSection(pdf, bom, y)

	// Free region table
	if len(regions) > 0 {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.SetTextColor(0, 0, 0)
		pdf.SetXY(marginLeft, y)
		pdf.CellFormat(100, 7, "Largest Free Regions", "", 0, "L", false, 0, "")
		y += 9

		colWidths := []float64{22, 30, 30, 45, 40}
		headers := []string{"Region", "X (mm)", "Y (mm)", "Size (mm)", "Area (mm²)"}

		pdf.SetFont("Helvetica", "B", 9)
		pdf.SetFillColor(230, 230, 230)
		xPos := marginLeft
		for i, header := range headers {
			pdf.SetXY(xPos, y)
			pdf.CellFormat(colWidths[i], 6, header, "1", 0, "C", true, 0, "")
			xPos += colWidths[i]
		}
		y += 6

		shown := regions
		if len(shown) > 5 {
			shown = shown[:5]
		}

		pdf.SetFont("Helvetica", "", 9)
		for i, r := range shown {
			xPos = marginLeft
			rowData := []string{
				fmt.Sprintf("%d", i+1),
				fmt.Sprintf("%.1f", r.XMM),
				fmt.Sprintf("%.1f", r.YMM),
				fmt.Sprintf("%.1f x %.1f", r.WidthMM, r.HeightMM),
				fmt.Sprintf("%.0f", r.AreaMM2()),
			}

			if i%2 == 0 {
				pdf.SetFillColor(245, 245, 245)
			} else {
				pdf.SetFillColor(255, 255, 255)
			}

			for j, cell := range rowData {
				pdf.SetXY(xPos, y)
				pdf.CellFormat(colWidths[j], 6, cell, "1", 0, "C", true, 0, "")
				xPos += colWidths[j]
			}
			y += 6
		}
	}

	// Footer
	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(120, 120, 120)
	pdf.SetXY(marginLeft, pageHeight-marginBottom)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 4, "Generated by eisla - PCB Placement Pipeline", "", 0, "C", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
}

// renderCostSection draws the purchase cost estimate and the per-category
// spend breakdown. Returns the next free y position.
func renderCostSection(pdf *fpdf.Fpdf, bom []BOMLine, y float64) float64 {
	lines := CostLines(bom)
	est := model.EstimateCost(lines, bomOveragePercent)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(100, 7, "Cost Estimate", "", 0, "L", false, 0, "")
	y += 9

	costItems := []struct {
		label string
		value string
	}{
		{"Priced Lines", fmt.Sprintf("%d of %d", est.PricedCount, est.LineCount)},
		{"Subtotal", fmt.Sprintf("%.2f", est.Subtotal)},
		{"With Overage", fmt.Sprintf("%.2f (+%.0f%%)", est.TotalWithOverage, est.OveragePercent)},
	}

	pdf.SetFont("Helvetica", "", 10)
	for _, item := range costItems {
		pdf.SetXY(marginLeft+5, y)
		pdf.CellFormat(60, 6, item.label+":", "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(60, 6, item.value, "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		y += 7
	}

	// Per-category spend, rendered beside the cost items
	byCat := model.CostByCategory(lines)
	catY := y - float64(len(costItems))*7
	for _, cc := range byCat {
		pdf.SetXY(marginLeft+140, catY)
		pdf.SetFont("Helvetica", "", 9)
		name := string(cc.Category)
		if name == "" {
			name = "uncategorized"
		}
		pdf.CellFormat(45, 5, fmt.Sprintf("%s (%d):", name, cc.Count), "", 0, "L", false, 0, "")
		pdf.CellFormat(25, 5, fmt.Sprintf("%.2f", cc.Subtotal), "", 0, "R", false, 0, "")
		catY += 5
	}
	if catY > y {
		y = catY
	}

	if len(est.UnpricedRefs) > 0 {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.SetTextColor(200, 0, 0)
		pdf.SetXY(marginLeft+5, y)
		warn := fmt.Sprintf("No pricing data: %s", joinRefs(est.UnpricedRefs, 12))
		pdf.CellFormat(240, 6, warn, "", 0, "L", false, 0, "")
		pdf.SetTextColor(0, 0, 0)
		y += 8
	}

	return y + 4
}

// renderBOMPages draws the full bill of materials table, starting new
// pages as needed.
func renderBOMPages(pdf *fpdf.Fpdf, bom []BOMLine) {
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(marginLeft, marginTop)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 10, "Bill of Materials", "", 0, "L", false, 0, "")

	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.5)
	pdf.Line(marginLeft, marginTop+12, pageWidth-marginRight, marginTop+12)

	y := marginTop + 18

	colWidths := []float64{15, 55, 45, 85, 22, 45}
	headers := []string{"Ref", "Value", "MPN", "Package", "Cost", "Category"}

	drawHeader := func() {
		pdf.SetFont("Helvetica", "B", 9)
		pdf.SetFillColor(230, 230, 230)
		xPos := marginLeft
		for i, header := range headers {
			pdf.SetXY(xPos, y)
			pdf.CellFormat(colWidths[i], 6, header, "1", 0, "C", true, 0, "")
			xPos += colWidths[i]
		}
		y += 6
	}
	drawHeader()

	pdf.SetFont("Helvetica", "", 9)
	for i, l := range bom {
		if y > pageHeight-marginBottom-8 {
			pdf.AddPage()
			y = marginTop
			drawHeader()
			pdf.SetFont("Helvetica", "", 9)
		}

		rowData := []string{l.Ref, l.Value, l.MPN, l.Package, costString(l.UnitCost), l.Category}

		if i%2 == 0 {
			pdf.SetFillColor(245, 245, 245)
		} else {
			pdf.SetFillColor(255, 255, 255)
		}

		xPos := marginLeft
		for j, cell := range rowData {
			pdf.SetXY(xPos, y)
			pdf.CellFormat(colWidths[j], 6, fitText(pdf, cell, colWidths[j]-2), "1", 0, "L", true, 0, "")
			xPos += colWidths[j]
		}
		y += 6
	}
}

// joinRefs joins ref designators for display, eliding the tail when the
// list is long.
func joinRefs(refs []string, limit int) string {
	if len(refs) <= limit {
		return strings.Join(refs, ", ")
	}
	return fmt.Sprintf("%s and %d more", strings.Join(refs[:limit], ", "), len(refs)-limit)
}

// fitText truncates a string with an ellipsis so it fits the given width
// at the current font.
func fitText(pdf *fpdf.Fpdf, s string, maxW float64) string {
	if pdf.GetStringWidth(s) <= maxW {
		return s
	}
	for len(s) > 0 && pdf.GetStringWidth(s+"...") > maxW {
		s = s[:len(s)-1]
	}
	return s + "..."
}

// labelFontSize returns an appropriate font size for a drawn footprint.
func labelFontSize(w, h float64) float64 {
	minDim := math.Min(w, h)
	switch {
	case minDim > 40:
		return 8
	case minDim > 20:
		return 7
	default:
		return 6
	}
}

// sortCategories orders categories by the builtin placement weight order,
// unknown categories last alphabetically.
func sortCategories(cats []model.Category) {
	rank := map[model.Category]int{
		model.CategoryMCU:         0,
		model.CategoryPower:       1,
		model.CategorySensor:      2,
		model.CategoryComms:       3,
		model.CategoryMotorDriver: 4,
		model.CategoryDisplay:     5,
		model.CategoryConnector:   6,
		model.CategoryPassive:     7,
	}
	sort.Slice(cats, func(i, j int) bool {
		ri, iKnown := rank[cats[i]]
		rj, jKnown := rank[cats[j]]
		switch {
		case iKnown && jKnown:
			return ri < rj
		case iKnown:
			return true
		case jKnown:
			return false
		default:
			return cats[i] < cats[j]
		}
	})
}
