package export

import (
	"fmt"

	"github.com/yofu/dxf"
	"github.com/yofu/dxf/color"
	"github.com/yofu/dxf/drawing"
	"github.com/yofu/dxf/table"

	"github.com/eisla/eisla/internal/model"
)

// DXF layer names for the mechanical outline export.
const (
	layerOutline    = "BoardOutline"
	layerMargin     = "PlacementMargin"
	layerCourtyards = "Courtyards"
	layerDrills     = "Drills"
)

// ExportOutlineDXF writes a mechanical outline drawing: the board edge,
// the placement margin keepout, every component courtyard, and drill
// circles for mechanical parts, each on its own layer.
func ExportOutlineDXF(path string, p *model.PlacementResult, clearanceMM float64) error {
	if p.Board.WidthMM <= 0 || p.Board.HeightMM <= 0 {
		return fmt.Errorf("board has no dimensions")
	}

	d := dxf.NewDrawing()

	d.AddLayer(layerOutline, dxf.DefaultColor, dxf.DefaultLineType, true)
	drawRect(d, 0, 0, p.Board.WidthMM, p.Board.HeightMM)

	m := model.BoardMarginMM
	if p.Board.WidthMM > 2*m && p.Board.HeightMM > 2*m {
		d.AddLayer(layerMargin, color.Cyan, table.LT_HIDDEN, true)
		drawRect(d, m, m, p.Board.WidthMM-m, p.Board.HeightMM-m)
	}

	d.AddLayer(layerCourtyards, color.Red, dxf.DefaultLineType, true)
	for _, c := range p.Components {
		halfW := c.PlacedWidth()/2 + clearanceMM
		halfH := c.PlacedHeight()/2 + clearanceMM
		drawRect(d, c.XMM-halfW, c.YMM-halfH, c.XMM+halfW, c.YMM+halfH)
	}

	drills := mechanicalDrills(p)
	if len(drills) > 0 {
		d.AddLayer(layerDrills, color.Yellow, dxf.DefaultLineType, true)
		for _, c := range drills {
			r := min(c.WidthMM, c.HeightMM) / 2
			if r > 0 {
				d.Circle(c.XMM, c.YMM, 0, r)
			}
		}
	}

	return d.SaveAs(path)
}

// drawRect draws an axis-aligned rectangle as four LINE entities on the
// current layer.
func drawRect(d *drawing.Drawing, x0, y0, x1, y1 float64) {
	d.Line(x0, y0, 0, x1, y0, 0)
	d.Line(x1, y0, 0, x1, y1, 0)
	d.Line(x1, y1, 0, x0, y1, 0)
	d.Line(x0, y1, 0, x0, y0, 0)
}

// mechanicalDrills returns the placed components that represent physical
// holes (mounting hardware) rather than soldered parts.
func mechanicalDrills(p *model.PlacementResult) []model.PlacedComponent {
	var out []model.PlacedComponent
	for _, c := range p.Components {
		if c.Subcategory == "mechanical" {
			out = append(out, c)
		}
	}
	return out
}
