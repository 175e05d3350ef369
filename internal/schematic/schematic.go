// Package schematic writes KiCad 6+ schematic files in s-expression
// format. There is no programmable schematic API to target, so the
// file format is emitted directly; the output opens natively in
// KiCad 6 through 9.
//
// Layout: component symbols on a coarse grid in rows, power rail
// symbols along the top edge, one global label per signal net placed
// near the net's first member.
package schematic

import (
	"fmt"
	"hash/fnv"
	"io"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/eisla/eisla/internal/catalog"
	"github.com/eisla/eisla/internal/model"
	"github.com/eisla/eisla/internal/netlist"
)

// Sheet layout in mils, KiCad's native schematic grid unit.
const (
	colStepMil  = 1000
	rowStepMil  = 1000
	compsPerRow = 5
	originXMil  = 500
	originYMil  = 500

	powerXMil    = 200
	powerYMil    = 200
	powerStepMil = 400
)

const fallbackSymbol = "Device:Module"

// Writer generates board.kicad_sch content for a placed design.
type Writer struct {
	catalog *catalog.Catalog
	log     *log.Logger
}

// NewWriter wires a writer to a catalog. A nil logger falls back to a
// discard logger.
func NewWriter(cat *catalog.Catalog, logger *log.Logger) *Writer {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Writer{catalog: cat, log: logger}
}

// milMM converts mils to schematic millimetres, rounded to 4 decimals
// the way KiCad writes coordinates.
func milMM(mil float64) float64 {
	return round4(mil * 0.0254)
}

func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}

// num formats a coordinate without trailing zeros.
func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func quote(s string) string {
	return `"` + s + `"`
}

// powerRefNum derives a stable two-digit suffix for a power symbol
// reference from the net name.
func powerRefNum(net string) uint32 {
	h := fnv.New32a()
	h.Write([]byte(net))
	return h.Sum32() % 100
}

var powerNetKeywords = []string{"GND", "VCC", "3V3", "5V", "VBAT"}

func isPowerNet(name string) bool {
	for _, kw := range powerNetKeywords {
		if strings.Contains(name, kw) {
			return true
		}
	}
	return false
}

// symbolBlock renders one component symbol instance.
func symbolBlock(ref, libID, value, footprint string, xMM, yMM float64) string {
	x, y := num(xMM), num(yMM)
	refY := num(round4(yMM - 2.54))
	valY := num(round4(yMM + 2.54))
	return fmt.Sprintf(`  (symbol
    (lib_id %s)
    (at %s %s 0)
    (unit 1)
    (exclude_from_sim no)
    (in_bom yes)
    (on_board yes)
    (dnp no)
    (uuid %s)
    (property "Reference" %s (at %s %s 0)
      (effects (font (size 1.27 1.27))))
    (property "Value" %s (at %s %s 0)
      (effects (font (size 1.27 1.27))))
    (property "Footprint" %s (at %s %s 0)
      (effects (font (size 1.27 1.27)) (hide yes)))
  )`,
		quote(libID), x, y, quote(uuid.NewString()),
		quote(ref), x, refY,
		quote(value), x, valY,
		quote(footprint), x, y)
}

// powerSymbolBlock renders a power rail symbol.
func powerSymbolBlock(netName string, xMM, yMM float64) string {
	libID := "power:+5V"
	switch {
	case strings.Contains(netName, "GND"):
		libID = "power:GND"
	case strings.Contains(netName, "3V3"):
		libID = "power:+3.3V"
	}
	if strings.Contains(netName, "VBAT") {
		libID = "power:VBAT"
	}

	x, y := num(xMM), num(yMM)
	valY := num(round4(yMM + 2))
	ref := fmt.Sprintf("#PWR0%d", powerRefNum(netName))
	return fmt.Sprintf(`  (symbol
    (lib_id %s)
    (at %s %s 0)
    (unit 1)
    (exclude_from_sim no)
    (in_bom yes)
    (on_board yes)
    (dnp no)
    (uuid %s)
    (property "Reference" %s (at %s %s 0)
      (effects (font (size 1.27 1.27)) (hide yes)))
    (property "Value" %s (at %s %s 0)
      (effects (font (size 1.27 1.27))))
  )`,
		quote(libID), x, y, quote(uuid.NewString()),
		quote(ref), x, y,
		quote(netName), x, valY)
}

// netLabelBlock renders a global label connecting a signal net.
func netLabelBlock(netName string, xMM, yMM float64) string {
	x, y := num(xMM), num(yMM)
	return fmt.Sprintf(`  (global_label %s
    (shape input)
    (at %s %s 0)
    (effects (font (size 1.27 1.27)))
    (uuid %s)
    (property "Intersheet References" "" (at %s %s 0)
      (effects (font (size 1.27 1.27)) (hide yes)))
  )`,
		quote(netName), x, y, quote(uuid.NewString()),
		x, y)
}

// Generate renders the full .kicad_sch document for a placement and its
// netlist. Components flagged for engineer review, and components whose
// symbol library is not installed, use the Device:Module fallback
// symbol so the sheet always opens cleanly.
func (w *Writer) Generate(placement *model.PlacementResult, nl *netlist.Result) string {
	erRefs := make(map[string]bool)
	if nl != nil {
		for _, flag := range nl.EngineerReview {
			erRefs[flag.Ref] = true
		}
	}
	for _, pc := range placement.Components {
		def, known := w.catalog.Get(pc.ComponentID)
		if !known {
			continue
		}
		if lib := def.SymbolLib(); netlist.SymbolLibMissing(lib) && !erRefs[pc.Ref] {
			erRefs[pc.Ref] = true
			w.log.Warn("symbol library not installed, using fallback",
				"ref", pc.Ref, "lib", lib)
		}
	}

	var lines []string
	lines = append(lines,
		"(kicad_sch",
		"  (version 20230121)",
		`  (generator "eisla")`,
		`  (paper "A3")`,
		fmt.Sprintf("  (uuid %s)", quote(uuid.NewString())),
		"")

	// Component symbols on the sheet grid.
	for i, pc := range placement.Components {
		col := i % compsPerRow
		row := i / compsPerRow
		xMM := milMM(float64(originXMil + col*colStepMil))
		yMM := milMM(float64(originYMil + row*rowStepMil))

		def, known := w.catalog.Get(pc.ComponentID)
		libID := def.KiCadSymbol
		if !known || libID == "" {
			libID = fallbackSymbol
		}
		lib := "Device"
		if name, _, found := strings.Cut(libID, ":"); found {
			lib = name
		}
		if netlist.SymbolLibMissing(lib) || erRefs[pc.Ref] {
			libID = fallbackSymbol
		}

		value := def.MPN
		if value == "" {
			value = def.DisplayName
		}
		if value == "" {
			value = pc.Ref
		}

		lines = append(lines, symbolBlock(pc.Ref, libID, value, def.KiCadFootprint, xMM, yMM))
	}
	lines = append(lines, "")

	// Power rail symbols along the top edge.
	var netNames []string
	if nl != nil && nl.Nets != nil {
		netNames = nl.Nets.Names()
	}
	var powerNets []string
	for _, name := range netNames {
		if isPowerNet(name) {
			powerNets = append(powerNets, name)
		}
	}
	sort.Strings(powerNets)
	for j, pnet := range powerNets {
		xMM := milMM(float64(powerXMil + j*powerStepMil))
		lines = append(lines, powerSymbolBlock(pnet, xMM, milMM(powerYMil)))
	}
	lines = append(lines, "")

	// One global label per signal net, near its first member.
	type gridPos struct{ col, row int }
	positions := make(map[string]gridPos)
	for i, pc := range placement.Components {
		positions[pc.Ref] = gridPos{col: i % compsPerRow, row: i / compsPerRow}
	}

	var signalNets []string
	for _, name := range netNames {
		if !isPowerNet(name) {
			signalNets = append(signalNets, name)
		}
	}
	sort.Strings(signalNets)
	labelOffset := 0
	for _, name := range signalNets {
		nodes := nl.Nets.Nodes(name)
		if len(nodes) == 0 {
			continue
		}
		pos := positions[nodes[0].Ref]
		xMM := milMM(float64(originXMil + pos.col*colStepMil + labelOffset*200))
		yMM := milMM(float64(originYMil + pos.row*rowStepMil + 400))
		labelOffset = (labelOffset + 1) % 3
		lines = append(lines, netLabelBlock(name, xMM, yMM))
	}

	lines = append(lines, "", ")")

	w.log.Info("schematic generated",
		"symbols", len(placement.Components),
		"nets", len(netNames),
		"fallback_refs", len(erRefs))
	return strings.Join(lines, "\n")
}
