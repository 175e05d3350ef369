package export

import (
	"fmt"
	"os"
	"strings"

	"github.com/eisla/eisla/internal/drc"
	"github.com/eisla/eisla/internal/validate"
)

// ExportDRCText writes a plain-English DRC failure summary. Returns false
// without writing when there is no report or the report is clean.
func ExportDRCText(path string, report *drc.Report) (bool, error) {
	if report == nil || report.Clean {
		return false, nil
	}

	lines := []string{"EISLA DESIGN RULE CHECK REPORT", strings.Repeat("=", 40), ""}

	if len(report.Errors) > 0 {
		lines = append(lines, fmt.Sprintf("ERRORS (%d):", len(report.Errors)))
		for _, e := range report.Errors {
			lines = append(lines, violationLine(e))
		}
		lines = append(lines, "")
	}

	if report.UnroutedCount > 0 {
		lines = append(lines,
			fmt.Sprintf("UNROUTED CONNECTIONS: %d", report.UnroutedCount),
			"  Some nets could not be routed automatically.",
			"  These may need manual routing or design adjustment.",
			"")
	}

	if len(report.Warnings) > 0 {
		lines = append(lines, fmt.Sprintf("WARNINGS (%d):", len(report.Warnings)))
		for _, w := range report.Warnings {
			lines = append(lines, violationLine(w))
		}
		lines = append(lines, "")
	}

	lines = append(lines,
		"These results are included for reference.",
		"DRC errors do not block delivery of design files.")

	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")), 0644); err != nil {
		return false, err
	}
	return true, nil
}

// violationLine formats one DRC violation as a summary bullet.
func violationLine(v drc.Violation) string {
	loc := ""
	if v.Location != nil {
		loc = fmt.Sprintf(" at %s", *v.Location)
	}
	return fmt.Sprintf("  - %s: %s%s", v.Type, v.Message, loc)
}

// ExportValidationText writes a plain-English validation summary: open
// warnings first, then the checks that resolved themselves by adding
// components. Returns false without writing when there is nothing to say.
func ExportValidationText(path string, res *validate.Result) (bool, error) {
	if res == nil {
		return false, nil
	}

	var warns, auto []validate.Finding
	for _, f := range res.Findings {
		if f.AutoResolved {
			auto = append(auto, f)
		} else {
			warns = append(warns, f)
		}
	}
	if len(warns) == 0 && len(auto) == 0 {
		return false, nil
	}

	lines := []string{"EISLA DESIGN VALIDATION REPORT", strings.Repeat("=", 40), ""}

	if len(warns) > 0 {
		lines = append(lines, fmt.Sprintf("WARNINGS (%d):", len(warns)))
		for _, w := range warns {
			lines = append(lines,
				fmt.Sprintf("  [%s] %s", strings.ToUpper(w.Severity), w.Rule),
				fmt.Sprintf("    %s", w.Description))
		}
		lines = append(lines, "")
	}

	if len(auto) > 0 {
		lines = append(lines, fmt.Sprintf("AUTO-RESOLVED (%d):", len(auto)))
		for _, a := range auto {
			msg := a.Description
			if a.Resolution != nil {
				msg = *a.Resolution
			}
			lines = append(lines, fmt.Sprintf("  %s: %s", a.Rule, msg))
		}
		lines = append(lines, "")
	}

	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")), 0644); err != nil {
		return false, err
	}
	return true, nil
}
