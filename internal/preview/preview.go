// Package preview renders a placement as an SVG board drawing: the board
// outline with a 10mm grid, color-coded component footprints with ref
// labels and pin-1 markers, dashed ratsnest lines from the MCU, and an
// orange glow on parts named by validation findings. Scale is 10 px per mm.
package preview

import (
	"bytes"
	"fmt"
	"io"
	"sort"

	svg "github.com/ajstarks/svgo/float"
	"github.com/charmbracelet/log"

	"github.com/eisla/eisla/internal/model"
	"github.com/eisla/eisla/internal/validate"
)

const (
	pxPerMM  = 10.0
	marginPx = 20.0 // canvas border around the board

	warnStrokePx = 3.0
	pinMarkPx    = 2.0
	labelFontPx  = 7.0

	warnColor = "#FF8C00"
)

var categoryFill = map[model.Category]string{
	model.CategoryMCU:         "#4F8EF7",
	model.CategoryPower:       "#F7A84F",
	model.CategorySensor:      "#6BCB77",
	model.CategoryComms:       "#9B59B6",
	model.CategoryMotorDriver: "#E74C3C",
	model.CategoryDisplay:     "#1ABC9C",
	model.CategoryConnector:   "#F39C12",
	model.CategoryPassive:     "#BDC3C7",
}

var categoryStroke = map[model.Category]string{
	model.CategoryMCU:         "#1A5FCC",
	model.CategoryPower:       "#C87D1A",
	model.CategorySensor:      "#2E8B3E",
	model.CategoryComms:       "#6C3483",
	model.CategoryMotorDriver: "#A93226",
	model.CategoryDisplay:     "#148F77",
	model.CategoryConnector:   "#B7770D",
	model.CategoryPassive:     "#7F8C8D",
}

func fillFor(cat model.Category) string {
	if c, ok := categoryFill[cat]; ok {
		return c
	}
	return "#95A5A6"
}

func strokeFor(cat model.Category) string {
	if c, ok := categoryStroke[cat]; ok {
		return c
	}
	return "#5D6D7E"
}

// WarnedRefs collects the refs of placed components named by validation
// findings. Findings carry component ids; every placed instance of a
// flagged id gets the warning glow.
func WarnedRefs(p *model.PlacementResult, findings []validate.Finding) map[string]bool {
	byID := make(map[string][]string)
	for _, c := range p.Components {
		byID[c.ComponentID] = append(byID[c.ComponentID], c.Ref)
	}
	warned := make(map[string]bool)
	for _, f := range findings {
		for _, id := range f.AffectedComponents {
			for _, ref := range byID[id] {
				warned[ref] = true
			}
		}
	}
	return warned
}

// Renderer draws placement results as SVG documents.
type Renderer struct {
	log *log.Logger
}

// NewRenderer returns a renderer. A nil logger disables logging.
func NewRenderer(logger *log.Logger) *Renderer {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Renderer{log: logger}
}

// Render returns the SVG preview for a placed board. warned marks refs
// that carry validation findings.
func (r *Renderer) Render(p *model.PlacementResult, warned map[string]bool) string {
	var buf bytes.Buffer
	canvas := svg.New(&buf)

	wPx := p.Board.WidthMM * pxPerMM
	hPx := p.Board.HeightMM * pxPerMM
	canvasW := wPx + 2*marginPx
	canvasH := hPx + 2*marginPx

	canvas.Startview(canvasW, canvasH, 0, 0, canvasW, canvasH)
	canvas.Rect(0, 0, canvasW, canvasH, "fill:#F0F0F0")

	// Board coordinates start at the margin offset.
	canvas.Translate(marginPx, marginPx)
	drawBoard(canvas, p.Board, wPx, hPx)
	drawRatsnest(canvas, p)
	drawComponents(canvas, p.Components, warned)
	drawDimensions(canvas, p.Board, wPx, hPx)
	canvas.Gend()

	drawLegend(canvas, p.Components, canvasW)
	canvas.End()

	r.log.Info("preview rendered",
		"components", len(p.Components),
		"warned", len(warned),
		"canvas_px", fmt.Sprintf("%.0fx%.0f", canvasW, canvasH))
	return buf.String()
}

func drawBoard(canvas *svg.SVG, b model.Board, wPx, hPx float64) {
	canvas.Rect(0, 0, wPx, hPx, "fill:#FFFDE7;stroke:#212121;stroke-width:2")

	const grid = "stroke:#D0D0D0;stroke-width:0.5"
	for x := 0.0; x <= b.WidthMM; x += 10 {
		canvas.Line(x*pxPerMM, 0, x*pxPerMM, hPx, grid)
	}
	for y := 0.0; y <= b.HeightMM; y += 10 {
		canvas.Line(0, y*pxPerMM, wPx, y*pxPerMM, grid)
	}
}

// drawRatsnest draws the star topology from the MCU centroid to every
// other component.
func drawRatsnest(canvas *svg.SVG, p *model.PlacementResult) {
	if p.MCURef == nil {
		return
	}
	mcu := p.FindByRef(*p.MCURef)
	if mcu == nil {
		return
	}
	mx, my := mcu.XMM*pxPerMM, mcu.YMM*pxPerMM
	for _, c := range p.Components {
		if c.Ref == mcu.Ref {
			continue
		}
		canvas.Line(mx, my, c.XMM*pxPerMM, c.YMM*pxPerMM,
			"stroke:#AAAAAA;stroke-width:0.5;stroke-dasharray:2,3;opacity:0.6")
	}
}

func drawComponents(canvas *svg.SVG, comps []model.PlacedComponent, warned map[string]bool) {
	for _, c := range comps {
		w, h := c.WidthMM, c.HeightMM
		if w <= 0 {
			w = 5
		}
		if h <= 0 {
			h = 5
		}

		// Placement stores the centre; rects use the top-left corner.
		cx := c.XMM * pxPerMM
		cy := c.YMM * pxPerMM
		wp := w * pxPerMM
		hp := h * pxPerMM
		x := cx - wp/2
		y := cy - hp/2
		stroke := strokeFor(c.Category)

		canvas.Gtransform(fmt.Sprintf("rotate(%d,%.2f,%.2f)", c.RotationDeg, cx, cy))
		if warned[c.Ref] {
			canvas.Roundrect(x-warnStrokePx, y-warnStrokePx, wp+2*warnStrokePx, hp+2*warnStrokePx, 1, 1,
				fmt.Sprintf("fill:none;stroke:%s;stroke-width:%g;opacity:0.8", warnColor, warnStrokePx*2))
		}
		canvas.Roundrect(x, y, wp, hp, 1, 1,
			fmt.Sprintf("fill:%s;stroke:%s;stroke-width:1;opacity:0.85", fillFor(c.Category), stroke))
		canvas.Rect(x, y, pinMarkPx, pinMarkPx, "fill:"+stroke)
		canvas.Gend()

		// Ref label stays horizontal, outside the rotation group.
		canvas.Text(cx, cy+labelFontPx*0.35, c.Ref,
			"text-anchor:middle;font-family:monospace;font-size:7px;font-weight:bold;fill:#1A1A1A")
	}
}

func drawDimensions(canvas *svg.SVG, b model.Board, wPx, hPx float64) {
	const style = "text-anchor:middle;font-family:sans-serif;font-size:9px;fill:#555555"
	canvas.Text(wPx/2, hPx+14, fmt.Sprintf("%.0fmm", b.WidthMM), style)

	canvas.Gtransform(fmt.Sprintf("rotate(-90,%.2f,%.2f)", -10.0, hPx/2))
	canvas.Text(-10, hPx/2, fmt.Sprintf("%.0fmm", b.HeightMM), style)
	canvas.Gend()
}

// drawLegend lists the categories present on the board. Skipped on small
// canvases where it would overlap the drawing.
func drawLegend(canvas *svg.SVG, comps []model.PlacedComponent, canvasW float64) {
	if canvasW <= 500 {
		return
	}

	seen := make(map[model.Category]bool)
	var cats []string
	for _, c := range comps {
		if !seen[c.Category] {
			seen[c.Category] = true
			cats = append(cats, string(c.Category))
		}
	}
	sort.Strings(cats)

	x := canvasW - 118
	for i, name := range cats {
		cat := model.Category(name)
		if name == "" {
			name = "default"
		}
		y := marginPx + float64(i)*14
		canvas.Rect(x, y, 8, 8,
			fmt.Sprintf("fill:%s;stroke:%s;stroke-width:1", fillFor(cat), strokeFor(cat)))
		canvas.Text(x+12, y+7, name, "font-family:sans-serif;font-size:8px;fill:#333333")
	}
}
