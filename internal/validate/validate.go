// Package validate checks a resolved component list for common PCB
// design mistakes before placement: missing decoupling or bulk caps,
// blown power budgets, shared chip selects, RF modules without
// antennas. Some findings auto-add the missing support parts; the rest
// are reported with a severity for the review stage.
package validate

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/eisla/eisla/internal/catalog"
	"github.com/eisla/eisla/internal/model"
)

const (
	SeverityError   = "error"
	SeverityWarning = "warning"
	SeverityInfo    = "info"
)

// Finding is one validation result in the validation_warnings.json
// artifact.
type Finding struct {
	ID                 string   `json:"id"`
	Severity           string   `json:"severity"`
	Rule               string   `json:"rule"`
	Title              string   `json:"title"`
	Description        string   `json:"description"`
	AffectedComponents []string `json:"affected_components"`
	AutoResolved       bool     `json:"auto_resolved"`
	Resolution         *string  `json:"resolution"`
}

// AutoAdd is a support component injected by a check, to be appended to
// the resolved list before placement.
type AutoAdd struct {
	ComponentID string `json:"component_id"`
	Quantity    int    `json:"quantity"`
	AutoAdded   bool   `json:"auto_added"`
	Reason      string `json:"reason"`
}

// Result aggregates all findings and auto-added components.
type Result struct {
	Findings     []Finding `json:"findings"`
	AutoAdds     []AutoAdd `json:"auto_adds"`
	ErrorCount   int       `json:"error_count"`
	WarningCount int       `json:"warning_count"`
	InfoCount    int       `json:"info_count"`
}

// Rule identifiers, also used as finding ids.
const (
	RuleMCUCount        = "mcu_count"
	RuleDecouplingCap   = "decoupling_cap_required"
	RuleLDOOutputCap    = "ldo_output_cap"
	RulePowerBudget     = "power_budget_exceeded"
	RuleReversePolarity = "reverse_polarity_missing"
	RuleUSBDiffPair     = "usb_differential_pair"
	RuleI2CPullup       = "i2c_pullup_missing"
	RuleUARTCrossover   = "uart_rx_tx_cross"
	RuleSPISharedCS     = "spi_shared_cs"
	RuleLoRaWiFi        = "lora_wifi_simultaneous"
	RuleRFAntenna       = "rf_no_antenna"
	RuleBoardDensity    = "board_density_high"
	RuleBoardFit        = "board_too_small"
	RuleMountingHoles   = "no_mounting_holes"
	RuleMotorFlyback    = "motor_flyback_missing"
	RuleFinePitch       = "fine_pitch_assembly"
	RuleVoltageCompat   = "logic_voltage_mismatch"
)

// Severity used when a check does not set one explicitly.
var defaultSeverity = map[string]string{
	RuleDecouplingCap: SeverityWarning,
	RuleI2CPullup:     SeverityWarning,
}

// Validator runs the rule suite against a resolved design.
type Validator struct {
	catalog  *catalog.Catalog
	log      *log.Logger
	disabled map[string]bool
}

// NewValidator wires a validator to a catalog. A nil logger falls back
// to a discard logger.
func NewValidator(cat *catalog.Catalog, logger *log.Logger) *Validator {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Validator{catalog: cat, log: logger, disabled: make(map[string]bool)}
}

// Disable turns the named rules off for subsequent Validate calls.
func (v *Validator) Disable(ruleIDs ...string) {
	for _, id := range ruleIDs {
		v.disabled[id] = true
	}
}

func (v *Validator) enabled(ruleID string) bool {
	return !v.disabled[ruleID]
}

func (v *Validator) finding(rule, title, description string) Finding {
	sev := defaultSeverity[rule]
	if sev == "" {
		sev = SeverityWarning
	}
	return Finding{
		ID:                 rule,
		Severity:           sev,
		Rule:               rule,
		Title:              title,
		Description:        description,
		AffectedComponents: []string{},
	}
}

func ptr[T any](v T) *T { return &v }

// Validate runs every enabled check in a fixed order, so findings come
// out deterministic for identical inputs.
func (v *Validator) Validate(resolved []model.Instance, budget model.PowerBudget, board model.BoardConfig) *Result {
	findings := []Finding{}
	autoAdds := []AutoAdd{}

	findings = append(findings, v.checkMCUCount(resolved)...)
	findings = append(findings, v.checkDecouplingCaps(resolved, &autoAdds)...)
	findings = append(findings, v.checkLDOOutputCap(resolved)...)
	findings = append(findings, v.checkPowerBudget(budget, board)...)
	findings = append(findings, v.checkReversePolarity(resolved, board)...)
	findings = append(findings, v.checkUSBDifferentialPair(resolved)...)
	findings = append(findings, v.checkI2CPullups(resolved, &autoAdds)...)
	findings = append(findings, v.checkUARTCrossover(resolved)...)
	findings = append(findings, v.checkSPISharedCS(resolved)...)
	findings = append(findings, v.checkLoRaWiFiConflict(resolved)...)
	findings = append(findings, v.checkRFAntenna(resolved)...)
	findings = append(findings, v.checkBoardDensity(resolved, board)...)
	findings = append(findings, v.checkBoardFit(resolved, board)...)
	findings = append(findings, v.checkMountingHoles(resolved, board)...)
	findings = append(findings, v.checkMotorFlyback(resolved)...)
	findings = append(findings, v.checkFinePitch(resolved)...)
	findings = append(findings, v.checkVoltageCompat(resolved)...)

	res := &Result{Findings: findings, AutoAdds: autoAdds}
	for _, f := range findings {
		switch f.Severity {
		case SeverityError:
			res.ErrorCount++
		case SeverityWarning:
			res.WarningCount++
		case SeverityInfo:
			res.InfoCount++
		}
	}

	v.log.Info("validation complete",
		"errors", res.ErrorCount,
		"warnings", res.WarningCount,
		"info", res.InfoCount,
		"auto_adds", len(autoAdds))
	return res
}
