// Package drc parses KiCad DRC text reports into structured results.
// Routing and rule checking happen outside the pipeline; only the report
// file comes back, and this package never invokes the checker itself.
package drc

import (
	"regexp"
	"strconv"
	"strings"
)

// Violation is one reported rule breach.
type Violation struct {
	Type     string  `json:"type"`
	Message  string  `json:"message"`
	Location *string `json:"location"`
}

// Report is the parsed drc_report.json artifact. Clean tracks the raw
// parse: a report whose summary count cannot be reconciled with its
// blocks is never clean, even when ErrorCount clamps to zero.
type Report struct {
	ErrorCount    int         `json:"error_count"`
	WarningCount  int         `json:"warning_count"`
	UnroutedCount int         `json:"unrouted_count"`
	Errors        []Violation `json:"errors"`
	Warnings      []Violation `json:"warnings"`
	Clean         bool        `json:"clean"`
}

// Parse reads a KiCad text DRC report. The format carries a summary line
// ("** Found N DRC violations **"), violation blocks of the form
// "[severity type]: message" with indented "@(x mm, y mm): item" lines,
// and an unconnected items count.
func Parse(text string) *Report {
	totalRe := regexp.MustCompile(`(?i)(\d+)\s+DRC\s+violations`)
	unroutedRe := regexp.MustCompile(`(?i)(\d+)\s+unconnected\s+items`)
	headerRe := regexp.MustCompile(`(?i)\[(error|warning)\s+([^\]]+)\]:\s*`)
	locRe := regexp.MustCompile(`@\(([^)]+)\)`)
	splitRe := regexp.MustCompile(`\n\s+@\(`)

	total := captureInt(totalRe, text)
	unrouted := captureInt(unroutedRe, text)

	errors := []Violation{}
	warnings := []Violation{}

	// A violation body runs from its header to the next header, or to the
	// end of the report for the last block.
	headers := headerRe.FindAllStringSubmatchIndex(text, -1)
	for i, m := range headers {
		end := len(text)
		if i+1 < len(headers) {
			end = headers[i+1][0]
		}
		severity := strings.ToLower(text[m[2]:m[3]])
		vtype := strings.TrimSpace(text[m[4]:m[5]])
		body := strings.TrimSpace(text[m[1]:end])

		var location *string
		if lm := locRe.FindStringSubmatch(body); lm != nil {
			l := strings.TrimSpace(lm[1])
			location = &l
		}
		message := strings.TrimSpace(splitRe.Split(body, 2)[0])

		v := Violation{Type: vtype, Message: message, Location: location}
		if severity == "error" {
			errors = append(errors, v)
		} else {
			warnings = append(warnings, v)
		}
	}

	// Reports whose blocks did not parse still carry the summary count;
	// attribute the remainder after warnings to errors.
	errorCount := len(errors)
	if len(errors) == 0 {
		errorCount = total - len(warnings)
	}

	return &Report{
		ErrorCount:    max(errorCount, 0),
		WarningCount:  len(warnings),
		UnroutedCount: unrouted,
		Errors:        errors,
		Warnings:      warnings,
		Clean:         errorCount == 0 && unrouted == 0,
	}
}

func captureInt(re *regexp.Regexp, text string) int {
	m := re.FindStringSubmatch(text)
	if m == nil {
		return 0
	}
	n, _ := strconv.Atoi(m[1])
	return n
}

// Failed reports whether the board needs rework: hard errors or unrouted
// nets. Warnings alone do not fail a board.
func (r *Report) Failed() bool {
	return r.ErrorCount > 0 || r.UnroutedCount > 0
}

// Verdict returns "PASS" for a clean report and "FAIL" otherwise.
func (r *Report) Verdict() string {
	if r.Clean {
		return "PASS"
	}
	return "FAIL"
}

// Breakdown counts violations by rule type across both severities.
func (r *Report) Breakdown() map[string]int {
	counts := make(map[string]int)
	for _, v := range r.Errors {
		counts[v.Type]++
	}
	for _, v := range r.Warnings {
		counts[v.Type]++
	}
	return counts
}
