package validate

import (
	"fmt"
	"strings"

	"github.com/eisla/eisla/internal/model"
)

func (v *Validator) componentIDs(resolved []model.Instance) map[string]bool {
	ids := make(map[string]bool, len(resolved))
	for _, rc := range resolved {
		ids[rc.ComponentID] = true
	}
	return ids
}

// capacitorIDs returns the ids of resolved components the catalog knows
// as capacitors.
func (v *Validator) capacitorIDs(resolved []model.Instance) map[string]bool {
	caps := make(map[string]bool)
	for _, rc := range resolved {
		if def, ok := v.catalog.Get(rc.ComponentID); ok && def.Subcategory == "capacitor" {
			caps[rc.ComponentID] = true
		}
	}
	return caps
}

func anyIDContains(ids map[string]bool, substrings ...string) bool {
	for id := range ids {
		lower := strings.ToLower(id)
		for _, sub := range substrings {
			if strings.Contains(lower, sub) {
				return true
			}
		}
	}
	return false
}

// A design wants exactly one MCU: with none the wiring objective has no
// hub and placement quality degrades; with several the first instance
// silently becomes the hub.
func (v *Validator) checkMCUCount(resolved []model.Instance) []Finding {
	if !v.enabled(RuleMCUCount) || len(resolved) == 0 {
		return nil
	}

	var mcus []string
	for _, rc := range resolved {
		category := rc.Category
		if def, ok := v.catalog.Get(rc.ComponentID); ok {
			category = def.Category
		}
		if category == "mcu" {
			mcus = append(mcus, rc.ComponentID)
		}
	}

	switch {
	case len(mcus) == 0:
		f := v.finding(RuleMCUCount,
			"No MCU in design — wiring optimization disabled",
			"No microcontroller is in the component list. Placement treats the MCU as the "+
				"hub of all signal wiring; without one the wiring objective is skipped and "+
				"component grouping will be zone-driven only.")
		return []Finding{f}
	case len(mcus) > 1:
		f := v.finding(RuleMCUCount,
			fmt.Sprintf("Multiple MCUs in design (%d) — %s is the wiring hub", len(mcus), mcus[0]),
			fmt.Sprintf("%d microcontrollers detected (%s). Wiring optimization uses the first "+
				"as the star hub; the others are placed by zone only. If one is a coprocessor "+
				"this is fine, otherwise remove the extras.", len(mcus), strings.Join(mcus, ", ")))
		f.AffectedComponents = mcus
		return []Finding{f}
	}
	return nil
}

// Every IC marked requires_decoupling needs a 100nF or 10uF cap in the
// BOM. Missing caps are auto-added, one per IC.
func (v *Validator) checkDecouplingCaps(resolved []model.Instance, autoAdds *[]AutoAdd) []Finding {
	if !v.enabled(RuleDecouplingCap) {
		return nil
	}

	caps := v.capacitorIDs(resolved)
	hasBypass := anyIDContains(caps, "100nf", "100n") || anyIDContains(caps, "10uf", "10u")

	var affected []string
	for _, rc := range resolved {
		if def, ok := v.catalog.Get(rc.ComponentID); ok && def.RequiresDecoupling {
			affected = append(affected, rc.ComponentID)
		}
	}
	if len(affected) == 0 || hasBypass {
		return nil
	}

	n := len(affected)
	*autoAdds = append(*autoAdds, AutoAdd{
		ComponentID: "cap_100nf_0402",
		Quantity:    n,
		AutoAdded:   true,
		Reason:      "Decoupling capacitor auto-added for IC bypass",
	})

	plural := ""
	if n > 1 {
		plural = "s"
	}
	f := v.finding(RuleDecouplingCap,
		fmt.Sprintf("Missing decoupling capacitors (%d IC%s)", n, plural),
		fmt.Sprintf("%d IC(s) require bypass capacitors but none are present. "+
			"A 100nF 0402 capacitor has been auto-added for each.", n))
	f.AffectedComponents = affected
	f.AutoResolved = true
	f.Resolution = ptr(fmt.Sprintf("auto_added %dx cap_100nf_0402", n))
	return []Finding{f}
}

// Regulators that declare a required output capacitor need a 10uF or
// larger cap somewhere in the BOM, or they may oscillate.
func (v *Validator) checkLDOOutputCap(resolved []model.Instance) []Finding {
	if !v.enabled(RuleLDOOutputCap) {
		return nil
	}

	caps := v.capacitorIDs(resolved)
	hasSuitable := anyIDContains(caps, "10uf", "22uf", "47uf", "100uf")

	var findings []Finding
	for _, rc := range resolved {
		def, ok := v.catalog.Get(rc.ComponentID)
		if !ok || def.RequiredOutputCap == nil || hasSuitable {
			continue
		}
		req := def.RequiredOutputCap
		value := req.Value
		if value == "" {
			value = "10uF"
		}
		capType := req.Type
		if capType == "" {
			capType = "ceramic"
		}
		desc := fmt.Sprintf("%s requires a %s output capacitor (%s) for stability. "+
			"Without it the regulator may oscillate.", def.DisplayName, value, capType)
		if req.Notes != "" {
			desc += " " + req.Notes
		}
		f := v.finding(RuleLDOOutputCap,
			fmt.Sprintf("LDO output capacitor missing for %s", def.DisplayName), desc)
		f.Severity = SeverityError
		f.AffectedComponents = []string{rc.ComponentID}
		findings = append(findings, f)
	}
	return findings
}

var sourceLimitsMA = map[string]int{
	"usb":           500,
	"power_usb":     500,
	"lipo":          1000,
	"power_lipo":    1000,
	"dc_jack":       2000,
	"power_dc_jack": 2000,
	"mains":         5000,
}

// Total current draw must fit the power source.
func (v *Validator) checkPowerBudget(budget model.PowerBudget, board model.BoardConfig) []Finding {
	if !v.enabled(RulePowerBudget) {
		return nil
	}

	source := board.PowerSource
	if source == "" {
		source = budget.Source
	}
	if source == "" {
		source = "usb"
	}
	limit, ok := sourceLimitsMA[source]
	if !ok {
		limit = 500
	}

	if budget.TotalMA <= limit {
		return nil
	}
	over := budget.TotalMA - limit
	f := v.finding(RulePowerBudget,
		fmt.Sprintf("Power budget exceeded by %dmA", over),
		fmt.Sprintf("Total estimated current draw: %dmA. Source limit (%s): %dmA. "+
			"Exceeded by %dmA. Consider switching to a higher-capacity power source "+
			"or removing power-hungry components.", budget.TotalMA, source, limit, over))
	f.Severity = SeverityError
	return []Finding{f}
}

// Battery boards should carry reverse polarity protection.
func (v *Validator) checkReversePolarity(resolved []model.Instance, board model.BoardConfig) []Finding {
	if !v.enabled(RuleReversePolarity) {
		return nil
	}

	source := board.PowerSource
	if !strings.Contains(source, "lipo") && !strings.Contains(source, "battery") {
		return nil
	}

	ids := v.componentIDs(resolved)
	if ids["usblc6_2sc6"] || ids["ao3401a"] || anyIDContains(ids, "tvs", "mosfet_p") {
		return nil
	}

	f := v.finding(RuleReversePolarity,
		"No reverse polarity protection on battery-powered board",
		"Battery-powered boards are susceptible to damage from reversed connections. "+
			"Consider adding a P-channel MOSFET (e.g. AO3401A) or Schottky diode for protection.")
	f.Severity = SeverityInfo
	return []Finding{f}
}

// USB data lines need controlled differential routing downstream.
func (v *Validator) checkUSBDifferentialPair(resolved []model.Instance) []Finding {
	if !v.enabled(RuleUSBDiffPair) {
		return nil
	}

	hasUSB := false
	for _, rc := range resolved {
		def, _ := v.catalog.Get(rc.ComponentID)
		if strings.Contains(def.Subcategory, "usb") {
			hasUSB = true
			break
		}
		for _, sat := range rc.Satisfies {
			if sat == "usb_device" || sat == "usb_host" {
				hasUSB = true
				break
			}
		}
		if hasUSB {
			break
		}
	}
	if !hasUSB {
		return nil
	}

	f := v.finding(RuleUSBDiffPair,
		"USB differential pair detected — requires controlled routing",
		"USB D+ and D- lines must be routed as a differential pair with matched length "+
			"and impedance. FreeRouting will apply diff-pair constraints. "+
			"Keep traces short and symmetric; avoid vias where possible.")
	f.Severity = SeverityInfo
	f.AutoResolved = true
	f.Resolution = ptr("diff_pair_net_class_assigned")
	return []Finding{f}
}

// I2C buses need pull-ups on SDA/SCL; a 4.7k pair is auto-added when
// none are present.
func (v *Validator) checkI2CPullups(resolved []model.Instance, autoAdds *[]AutoAdd) []Finding {
	if !v.enabled(RuleI2CPullup) {
		return nil
	}

	hasI2C := false
	for _, rc := range resolved {
		if def, ok := v.catalog.Get(rc.ComponentID); ok && def.HasInterface("I2C") {
			hasI2C = true
			break
		}
	}
	if !hasI2C {
		return nil
	}

	ids := v.componentIDs(resolved)
	if anyIDContains(ids, "res_4k7", "res_2k2", "i2c") {
		return nil
	}

	*autoAdds = append(*autoAdds, AutoAdd{
		ComponentID: "res_4k7_0402",
		Quantity:    2,
		AutoAdded:   true,
		Reason:      "I2C SDA/SCL pull-up resistors (4.7k x 2)",
	})
	f := v.finding(RuleI2CPullup,
		"I2C pull-up resistors auto-added",
		"I2C bus (SDA/SCL) requires pull-up resistors. Two 4.7kΩ 0402 resistors have been "+
			"auto-added (suitable for 100kHz standard mode). Use 2.2kΩ for 400kHz fast mode.")
	f.AutoResolved = true
	f.Resolution = ptr("auto_added 2x res_4k7_0402")
	return []Finding{f}
}

// With two or more UART devices the TX/RX crossover must be verified.
func (v *Validator) checkUARTCrossover(resolved []model.Instance) []Finding {
	if !v.enabled(RuleUARTCrossover) {
		return nil
	}

	var affected []string
	for _, rc := range resolved {
		if def, ok := v.catalog.Get(rc.ComponentID); ok && def.HasInterface("UART") {
			affected = append(affected, rc.ComponentID)
		}
	}
	if len(affected) < 2 {
		return nil
	}

	f := v.finding(RuleUARTCrossover,
		fmt.Sprintf("Multiple UART devices — verify TX/RX crossover (%d devices)", len(affected)),
		"When multiple UART devices are connected, TX of each device must connect to RX "+
			"of the other (and vice versa). Straight TX→TX connections are a common mistake. "+
			"Verify crossover in the netlist before routing.")
	f.AffectedComponents = affected
	return []Finding{f}
}

// Multiple SPI devices each need a dedicated chip-select GPIO.
func (v *Validator) checkSPISharedCS(resolved []model.Instance) []Finding {
	if !v.enabled(RuleSPISharedCS) {
		return nil
	}

	var affected []string
	for _, rc := range resolved {
		if def, ok := v.catalog.Get(rc.ComponentID); ok && def.HasInterface("SPI") {
			affected = append(affected, rc.ComponentID)
		}
	}
	if len(affected) < 2 {
		return nil
	}

	n := len(affected)
	f := v.finding(RuleSPISharedCS,
		fmt.Sprintf("Multiple SPI devices — each requires a dedicated chip-select (%d devices)", n),
		fmt.Sprintf("%d SPI devices detected. Each requires its own dedicated CS (chip-select) "+
			"GPIO line from the MCU. They cannot share a single CS line. "+
			"Verify the MCU has sufficient GPIO pins for all CS lines.", n))
	f.AffectedComponents = affected
	return []Finding{f}
}

// LoRa and WiFi radios on one board must not transmit at the same time.
func (v *Validator) checkLoRaWiFiConflict(resolved []model.Instance) []Finding {
	if !v.enabled(RuleLoRaWiFi) {
		return nil
	}

	allCaps := make(map[string]bool)
	hasLora := false
	for _, rc := range resolved {
		for _, sat := range rc.Satisfies {
			allCaps[sat] = true
		}
		if def, ok := v.catalog.Get(rc.ComponentID); ok {
			for _, cap := range def.Capabilities {
				allCaps[cap] = true
			}
			if def.Subcategory == "lora" {
				hasLora = true
			}
		}
	}
	hasWifi := false
	for cap := range allCaps {
		if strings.Contains(cap, "lora") {
			hasLora = true
		}
		if strings.Contains(cap, "wifi") {
			hasWifi = true
		}
	}
	if !hasLora || !hasWifi {
		return nil
	}

	f := v.finding(RuleLoRaWiFi,
		"LoRa and WiFi present — firmware must use time-division multiplexing",
		"Both LoRa and WiFi radios are on the board. Simultaneous transmission can cause "+
			"interference. The firmware must not activate both radios at the same time. "+
			"Implement time-division multiplexing (transmit on one, then the other).")
	return []Finding{f}
}

var rfSubcategories = map[string]bool{
	"lora":           true,
	"cellular_lpwan": true,
	"nfc":            true,
}

// RF modules that radiate need an antenna connector in the BOM.
func (v *Validator) checkRFAntenna(resolved []model.Instance) []Finding {
	if !v.enabled(RuleRFAntenna) {
		return nil
	}

	var affected []string
	for _, rc := range resolved {
		if def, ok := v.catalog.Get(rc.ComponentID); ok && rfSubcategories[def.Subcategory] {
			affected = append(affected, rc.ComponentID)
		}
	}
	if len(affected) == 0 {
		return nil
	}

	ids := v.componentIDs(resolved)
	hasAntenna := ids["sma_edge_connector"]
	if !hasAntenna {
		for id := range ids {
			if def, ok := v.catalog.Get(id); ok && def.Subcategory == "antenna" {
				hasAntenna = true
				break
			}
		}
	}
	if hasAntenna {
		return nil
	}

	f := v.finding(RuleRFAntenna,
		fmt.Sprintf("RF module without antenna (%s)", strings.Join(affected, ", ")),
		"An RF module requiring an external antenna is in the BOM but no antenna connector "+
			"has been added. Add an SMA edge connector or wire antenna for the RF module.")
	f.Severity = SeverityError
	f.AffectedComponents = affected
	return []Finding{f}
}

// An average SMT part takes roughly 16mm² of board including courtyard;
// past 75% coverage placement gets very tight.
func (v *Validator) checkBoardDensity(resolved []model.Instance, board model.BoardConfig) []Finding {
	if !v.enabled(RuleBoardDensity) {
		return nil
	}

	dims := board.DimensionsMM
	if dims == nil {
		dims = []float64{100, 100}
	}
	if len(dims) < 2 {
		return nil
	}

	boardArea := dims[0] * dims[1]
	estimated := len(resolved) * 16
	densityPct := float64(estimated) / boardArea * 100

	if densityPct <= 75 {
		return nil
	}
	f := v.finding(RuleBoardDensity,
		fmt.Sprintf("High board density (~%d%%) — placement may be very tight", int(densityPct)),
		fmt.Sprintf("Estimated component footprint area (%dmm²) is %d%% "+
			"of board area (%gmm²). Placement may be very tight. "+
			"Consider increasing board dimensions or removing optional components.",
			estimated, int(densityPct), boardArea))
	return []Finding{f}
}

// A part larger than the usable area can never be placed inside the
// margins, no matter what the optimizer does.
func (v *Validator) checkBoardFit(resolved []model.Instance, board model.BoardConfig) []Finding {
	if !v.enabled(RuleBoardFit) {
		return nil
	}

	b := board.Size()
	innerW := b.InnerWidth()
	innerH := b.InnerHeight()

	var findings []Finding
	seen := make(map[string]bool)
	for _, rc := range resolved {
		def, ok := v.catalog.Get(rc.ComponentID)
		if !ok || def.DimensionsMM == nil || seen[rc.ComponentID] {
			continue
		}
		w := def.DimensionsMM.Width
		h := def.DimensionsMM.Height
		if (w <= innerW && h <= innerH) || (h <= innerW && w <= innerH) {
			continue
		}
		seen[rc.ComponentID] = true

		f := v.finding(RuleBoardFit,
			fmt.Sprintf("%s (%g×%gmm) does not fit the board", def.DisplayName, w, h),
			fmt.Sprintf("The usable area inside the %gmm margin is %g×%gmm, too small for "+
				"%s at %g×%gmm in either orientation. Increase the board dimensions.",
				model.BoardMarginMM, innerW, innerH, def.DisplayName, w, h))
		f.Severity = SeverityError
		f.AffectedComponents = []string{rc.ComponentID}
		findings = append(findings, f)
	}
	return findings
}

// Boards larger than 50x50mm should carry mounting holes.
func (v *Validator) checkMountingHoles(resolved []model.Instance, board model.BoardConfig) []Finding {
	if !v.enabled(RuleMountingHoles) {
		return nil
	}

	dims := board.DimensionsMM
	if dims == nil {
		dims = []float64{100, 100}
	}
	if len(dims) < 2 {
		return nil
	}
	if dims[0] <= 50 && dims[1] <= 50 {
		return nil
	}

	for id := range v.componentIDs(resolved) {
		if def, ok := v.catalog.Get(id); ok {
			if def.Subcategory == "mechanical" || def.Subcategory == "fiducial" {
				return nil
			}
		}
	}

	f := v.finding(RuleMountingHoles,
		"No mounting holes — board may be difficult to secure",
		fmt.Sprintf("Board size %g×%gmm has no mounting holes in the component list. "+
			"Consider adding M3 standoff holes at the corners for enclosure mounting.",
			dims[0], dims[1]))
	f.Severity = SeverityInfo
	return []Finding{f}
}

// Motor drivers switch inductive loads; without flyback diodes the
// back-EMF spike kills the driver.
func (v *Validator) checkMotorFlyback(resolved []model.Instance) []Finding {
	if !v.enabled(RuleMotorFlyback) {
		return nil
	}

	var affected []string
	for _, rc := range resolved {
		if def, ok := v.catalog.Get(rc.ComponentID); ok && def.Category == "motor_driver" {
			affected = append(affected, rc.ComponentID)
		}
	}
	if len(affected) == 0 {
		return nil
	}

	ids := v.componentIDs(resolved)
	if ids["diode_1n4148w"] || anyIDContains(ids, "flyback", "1n4148") {
		return nil
	}

	f := v.finding(RuleMotorFlyback,
		fmt.Sprintf("Motor driver without flyback diodes (%s)", strings.Join(affected, ", ")),
		"Motor drivers and relays generate back-EMF when the load switches off. "+
			"Without flyback diodes, this voltage spike will damage the driver IC. "+
			"Add 1N4148W diodes across each motor/relay winding.")
	f.Severity = SeverityError
	f.AffectedComponents = affected
	return []Finding{f}
}

var finePitchSubcategories = map[string]bool{
	"arm_cortex_m7": true,
	"wifi_ble":      true,
	"ble_zigbee":    true,
}

// Fine-pitch packages cannot be hand-soldered.
func (v *Validator) checkFinePitch(resolved []model.Instance) []Finding {
	if !v.enabled(RuleFinePitch) {
		return nil
	}

	var affected []string
	for _, rc := range resolved {
		if def, ok := v.catalog.Get(rc.ComponentID); ok && finePitchSubcategories[def.Subcategory] {
			affected = append(affected, rc.ComponentID)
		}
	}
	if len(affected) == 0 {
		return nil
	}

	f := v.finding(RuleFinePitch,
		"Fine-pitch component detected — requires reflow assembly",
		"QFN or fine-pitch packages detected. These cannot be hand-soldered reliably. "+
			"Professional SMT assembly with solder paste and reflow oven is required.")
	f.Severity = SeverityInfo
	f.AffectedComponents = affected
	return []Finding{f}
}

// Displays and comms peripherals must speak the MCU's logic voltage or
// go through level shifting. Parts without a known logic voltage are
// skipped.
func (v *Validator) checkVoltageCompat(resolved []model.Instance) []Finding {
	if !v.enabled(RuleVoltageCompat) {
		return nil
	}

	var mcuV float64
	var mcuID string
	for _, rc := range resolved {
		if def, ok := v.catalog.Get(rc.ComponentID); ok && def.Category == "mcu" && def.LogicVoltage > 0 {
			mcuV = def.LogicVoltage
			mcuID = rc.ComponentID
			break
		}
	}
	if mcuV == 0 {
		return nil
	}

	var findings []Finding
	seen := make(map[string]bool)
	for _, rc := range resolved {
		def, ok := v.catalog.Get(rc.ComponentID)
		if !ok || seen[rc.ComponentID] {
			continue
		}
		if def.Category != "display" && def.Category != "comms" {
			continue
		}
		if def.LogicVoltage == 0 || def.LogicVoltage == mcuV {
			continue
		}
		seen[rc.ComponentID] = true

		f := v.finding(RuleVoltageCompat,
			fmt.Sprintf("%s logic level (%gV) does not match MCU (%gV)", def.DisplayName, def.LogicVoltage, mcuV),
			fmt.Sprintf("%s runs %gV logic but the MCU (%s) runs %gV. Connecting them "+
				"directly risks damage or unreliable signalling. Add a level shifter on the "+
				"shared bus lines.", def.DisplayName, def.LogicVoltage, mcuID, mcuV))
		f.AffectedComponents = []string{mcuID, rc.ComponentID}
		findings = append(findings, f)
	}
	return findings
}
