package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"sort"

	"github.com/eisla/eisla/internal/catalog"
	"github.com/eisla/eisla/internal/model"
)

// pnpHeader is the pick-and-place column order expected by assembly houses.
var pnpHeader = []string{"Ref", "Val", "Package", "PosX", "PosY", "Rot", "Side"}

// pnpRows builds the pick-and-place rows for a placement, sorted by ref.
// Val falls back MPN -> display name -> component id, positions and
// rotation are fixed to two decimals, and every part sits on the top side.
func pnpRows(p *model.PlacementResult, cat *catalog.Catalog) [][]string {
	rows := make([][]string, 0, len(p.Components))

	for _, c := range p.Components {
		def, _ := cat.Get(c.ComponentID)
		val := def.MPN
		if val == "" {
			val = def.DisplayName
		}
		if val == "" {
			val = c.ComponentID
		}

		rows = append(rows, []string{
			c.Ref,
			val,
			def.KiCadFootprint,
			fmt.Sprintf("%.2f", c.XMM),
			fmt.Sprintf("%.2f", c.YMM),
			fmt.Sprintf("%.2f", float64(c.RotationDeg)),
			"top",
		})
	}

	sort.Slice(rows, func(i, j int) bool { return rows[i][0] < rows[j][0] })
	return rows
}

// ExportPickAndPlace writes the machine placement file as CSV.
func ExportPickAndPlace(path string, p *model.PlacementResult, cat *catalog.Catalog) error {
	if len(p.Components) == 0 {
		return fmt.Errorf("no components to export")
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cannot create pick-and-place file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(pnpHeader); err != nil {
		return err
	}
	for _, row := range pnpRows(p, cat) {
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
