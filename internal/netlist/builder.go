package netlist

import (
	"fmt"
	"io"
	"sort"

	"github.com/charmbracelet/log"

	"github.com/eisla/eisla/internal/catalog"
	"github.com/eisla/eisla/internal/model"
)

// Footprint and symbol libraries referenced by catalog entries but not
// part of the standard KiCad install. Parts using them still get nets;
// they are flagged for engineer review instead of failing the build.
var missingFootprintLibs = map[string]bool{
	"RF_Cellular": true,
}

var missingSymbolLibs = map[string]bool{
	"Connector_Card":     true,
	"Interface_I2C":      true,
	"Interface_NFC":      true,
	"Logic_LevelShifter": true,
	"RF_Cellular":        true,
}

// SymbolLibMissing reports whether the named KiCad symbol library is
// absent from the standard install. The schematic writer swaps symbols
// from these libraries for a generic fallback.
func SymbolLibMissing(lib string) bool {
	return missingSymbolLibs[lib]
}

// ReviewFlag marks a part whose schematic or footprint needs manual
// attention before fabrication.
type ReviewFlag struct {
	Ref         string   `json:"ref"`
	ComponentID string   `json:"component_id"`
	DisplayName string   `json:"display_name"`
	Reasons     []string `json:"reasons"`
}

// Result is the netlist.json artifact.
type Result struct {
	Nets           *Netlist     `json:"nets"`
	NetCount       int          `json:"net_count"`
	EngineerReview []ReviewFlag `json:"engineer_review"`
}

// Builder derives nets for placed components from their catalog pin maps.
type Builder struct {
	catalog *catalog.Catalog
	log     *log.Logger
}

// NewBuilder wires a builder to a catalog. A nil logger falls back to a
// discard logger.
func NewBuilder(cat *catalog.Catalog, logger *log.Logger) *Builder {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Builder{catalog: cat, log: logger}
}

// powerNetName folds a raw pin net label from the catalog onto its
// canonical rail name. An empty result means the label was a regulator
// output placeholder and the net must come from ldoOutputNet.
func powerNetName(raw string) string {
	switch raw {
	case "GND", "AGND", "PGND", "VSS":
		return "GND"
	case "3V3", "VCC_3V3", "VDD_3V3":
		return "VCC_3V3"
	case "5V", "VCC_5V", "VIN", "VUSB":
		return "VCC_5V"
	case "VBAT":
		return "VBAT"
	case "VBAT_COIN":
		return "VBAT_COIN"
	case "VOUT":
		return ""
	default:
		return raw
	}
}

// ldoOutputNet names the rail a regulator drives. Regulators whose
// output pin carries a concrete rail label use that; generic VOUT
// outputs are assumed to feed the 3.3V rail.
func ldoOutputNet(pins *catalog.PinMap) string {
	if pins != nil && pins.Output != nil {
		if net := powerNetName(pins.Output.Net); net != "" {
			return net
		}
	}
	return "VCC_3V3"
}

func reviewReasons(def catalog.Definition) []string {
	var reasons []string
	if fpLib := def.FootprintLib(); missingFootprintLibs[fpLib] {
		reasons = append(reasons, fmt.Sprintf("footprint library '%s' not installed", fpLib))
	}
	if symLib := def.SymbolLib(); missingSymbolLibs[symLib] {
		reasons = append(reasons, fmt.Sprintf("symbol library '%s' not installed", symLib))
	}
	if def.KiCadFootprint == "" {
		reasons = append(reasons, "kicad_footprint missing from component database")
	}
	return reasons
}

// firstPad returns the first non-empty pad among the named signals.
func firstPad(iface map[string]string, signals ...string) string {
	for _, sig := range signals {
		if pad := iface[sig]; pad != "" {
			return pad
		}
	}
	return ""
}

// Build walks the resolved component list in order, looks up each
// instance's placed reference designator, and attaches its pads to nets.
// Components absent from the catalog or from the placement contribute
// nothing. The walk order fixes net order, so identical inputs produce
// byte-identical netlist.json artifacts.
func (b *Builder) Build(placement *model.PlacementResult, resolved []model.Instance) *Result {
	nets := New()
	review := []ReviewFlag{}

	// Reference designators per component id, in placement order.
	refsByID := make(map[string][]string)
	if placement != nil {
		for _, pc := range placement.Components {
			refsByID[pc.ComponentID] = append(refsByID[pc.ComponentID], pc.Ref)
		}
	}

	instanceIdx := make(map[string]int)
	spiCSCount := 0
	uartCount := 0

	for _, inst := range resolved {
		cid := inst.ComponentID
		idx := instanceIdx[cid]
		instanceIdx[cid] = idx + 1

		def, known := b.catalog.Get(cid)
		if !known {
			b.log.Warn("skipping unknown component", "component_id", cid)
			continue
		}
		refs := refsByID[cid]
		if len(refs) == 0 {
			continue
		}
		ref := refs[min(idx, len(refs)-1)]

		if reasons := reviewReasons(def); len(reasons) > 0 {
			name := def.DisplayName
			if name == "" {
				name = cid
			}
			review = append(review, ReviewFlag{
				Ref:         ref,
				ComponentID: cid,
				DisplayName: name,
				Reasons:     reasons,
			})
		}

		pins := def.Pins
		if pins == nil {
			continue
		}

		for _, pw := range pins.Power {
			net := powerNetName(pw.Net)
			if net == "" {
				net = ldoOutputNet(pins)
			}
			for _, pad := range pw.Pins {
				nets.Add(net, ref, pad)
			}
		}

		// A regulator's output pad joins the rail it drives.
		if pins.Output != nil && pins.Output.Net != "" {
			outNet := powerNetName(pins.Output.Net)
			if outNet == "" {
				outNet = ldoOutputNet(pins)
			}
			if pins.Output.VOUT != "" {
				nets.Add(outNet, ref, pins.Output.VOUT)
			}
		}

		ifaces := pins.Interfaces

		if pad := ifaces["I2C"]["SDA"]; pad != "" {
			nets.Add("I2C_SDA", ref, pad)
		}
		if pad := ifaces["I2C"]["SCL"]; pad != "" {
			nets.Add("I2C_SCL", ref, pad)
		}

		if spi := ifaces["SPI"]; len(spi) > 0 {
			if pad := spi["MOSI"]; pad != "" {
				nets.Add("SPI_MOSI", ref, pad)
			}
			if pad := spi["MISO"]; pad != "" {
				nets.Add("SPI_MISO", ref, pad)
			}
			if pad := spi["SCK"]; pad != "" {
				nets.Add("SPI_SCK", ref, pad)
			}
			if pad := spi["CS"]; pad != "" {
				// The MCU's CS pin joins the first select line;
				// each peripheral gets the next numbered line.
				if def.Category == "mcu" {
					nets.Add("SPI_CS_1", ref, pad)
				} else {
					spiCSCount++
					nets.Add(fmt.Sprintf("SPI_CS_%d", spiCSCount), ref, pad)
				}
			}
		}

		if uart := ifaces["UART"]; len(uart) > 0 {
			uartCount++
			if pad := uart["TX"]; pad != "" {
				nets.Add(fmt.Sprintf("UART%d_TX", uartCount), ref, pad)
			}
			if pad := uart["RX"]; pad != "" {
				nets.Add(fmt.Sprintf("UART%d_RX", uartCount), ref, pad)
			}
		}

		if usb := ifaces["USB"]; len(usb) > 0 {
			if pad := firstPad(usb, "DP", "D+"); pad != "" {
				nets.Add("USB_DP", ref, pad)
			}
			if pad := firstPad(usb, "DM", "D-"); pad != "" {
				nets.Add("USB_DM", ref, pad)
			}
		}

		if pad := ifaces["CAN"]["CANH"]; pad != "" {
			nets.Add("CAN_H", ref, pad)
		}
		if pad := ifaces["CAN"]["CANL"]; pad != "" {
			nets.Add("CAN_L", ref, pad)
		}

		oneWire := ifaces["1-Wire"]
		if len(oneWire) == 0 {
			oneWire = ifaces["OneWire"]
		}
		if pad := oneWire["DQ"]; pad != "" {
			nets.Add("ONEWIRE_DQ", ref, pad)
		}

		// Interrupt and reset pins get per-reference nets no matter
		// which bus interface declares them.
		ifaceNames := make([]string, 0, len(ifaces))
		for name := range ifaces {
			ifaceNames = append(ifaceNames, name)
		}
		sort.Strings(ifaceNames)
		for _, sig := range []struct{ key, prefix string }{
			{"INT", "INT"}, {"IRQ", "INT"}, {"RST", "RST"}, {"RESET", "RST"},
		} {
			for _, name := range ifaceNames {
				if pad := ifaces[name][sig.key]; pad != "" {
					nets.Add(sig.prefix+"_"+ref, ref, pad)
				}
			}
		}
	}

	for _, flag := range review {
		b.log.Warn("component needs engineer review",
			"ref", flag.Ref, "component_id", flag.ComponentID)
	}
	b.log.Info("netlist built", "nets", nets.Len(), "review_flags", len(review))

	return &Result{Nets: nets, NetCount: nets.Len(), EngineerReview: review}
}
